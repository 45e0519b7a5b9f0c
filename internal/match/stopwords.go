package match

import (
	"bufio"
	_ "embed"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Stopwords is a read-only set of filler words excluded from profiles.
// Built once at startup and shared by every scoring call.
type Stopwords map[string]struct{}

//go:embed stopwords.txt
var bundledStopwords string

// LoadStopwords builds the stopword set. An empty path uses the bundled
// English list. A configured file that cannot be read degrades to an empty
// set (no filtering) with a warning rather than failing startup.
func LoadStopwords(path string) Stopwords {
	if path == "" {
		return parseStopwords(strings.NewReader(bundledStopwords))
	}

	f, err := os.Open(path)
	if err != nil {
		slog.Warn("stopword file unavailable, matching runs without stopword filtering",
			"path", path, "error", err)
		return Stopwords{}
	}
	defer f.Close()

	return parseStopwords(f)
}

// parseStopwords reads one word per line, skipping blanks and # comments.
func parseStopwords(r io.Reader) Stopwords {
	set := make(Stopwords)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(strings.ToLower(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		set[word] = struct{}{}
	}
	return set
}
