// Package extract converts uploaded resume documents into plain text.
// Extraction is best effort: a document that cannot be parsed yields an
// empty string, never an error, and matching simply degrades.
package extract

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"golang.org/x/text/encoding/charmap"
)

// Format identifies a supported document format. It is derived from the
// uploaded filename's extension, never sniffed from content.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDocx Format = "docx"
	FormatDoc  Format = "doc"
	FormatTxt  Format = "txt"
)

// FormatFromFilename maps a filename extension to a Format.
func FormatFromFilename(name string) (Format, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	switch Format(ext) {
	case FormatPDF, FormatDocx, FormatDoc, FormatTxt:
		return Format(ext), true
	}
	return "", false
}

// Text extracts plain text from a document. Unrecognized formats and parse
// failures return an empty string.
func Text(data []byte, format Format) string {
	switch format {
	case FormatPDF:
		return pdfText(data)
	case FormatDocx:
		return docxText(data)
	case FormatDoc:
		// No structural parser for the legacy binary format; reading the
		// raw bytes as text is a known-lossy fallback.
		return decodeText(data)
	case FormatTxt:
		return decodeText(data)
	default:
		return ""
	}
}

// pdfText extracts page text in document order. The parser is fed
// untrusted bytes, so panics are recovered alongside errors.
func pdfText(data []byte) (text string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("pdf extraction panicked", "panic", r)
			text = ""
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		slog.Warn("pdf extraction failed", "error", err)
		return ""
	}

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			slog.Warn("pdf page extraction failed", "page", i, "error", err)
			continue
		}
		builder.WriteString(pageText)
		builder.WriteString("\n")
	}
	return builder.String()
}

// paragraphPattern and runPattern pull paragraph and text runs out of the
// WordprocessingML document body.
var (
	paragraphPattern = regexp.MustCompile(`(?s)<w:p[ >].*?</w:p>`)
	runPattern       = regexp.MustCompile(`(?s)<w:t(?: [^>]*)?>(.*?)</w:t>`)
)

var xmlEntities = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
)

// docxText concatenates paragraph texts in document order, one paragraph
// per line.
func docxText(data []byte) string {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		slog.Warn("docx extraction failed", "error", err)
		return ""
	}
	defer doc.Close()

	content := doc.Editable().GetContent()

	var paragraphs []string
	for _, paragraph := range paragraphPattern.FindAllString(content, -1) {
		var runs strings.Builder
		for _, run := range runPattern.FindAllStringSubmatch(paragraph, -1) {
			runs.WriteString(xmlEntities.Replace(run[1]))
		}
		paragraphs = append(paragraphs, runs.String())
	}
	return strings.Join(paragraphs, "\n")
}

// decodeText reads raw bytes as text permissively: valid UTF-8 passes
// through, anything else is decoded as Windows-1252 so no byte sequence is
// ever fatal.
func decodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return strings.ToValidUTF8(string(data), string(utf8.RuneError))
	}
	return string(decoded)
}
