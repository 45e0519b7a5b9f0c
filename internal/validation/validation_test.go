package validation

import (
	"strings"
	"testing"
)

func TestAllowedFile(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"resume.pdf", true},
		{"resume.PDF", true},
		{"cv.docx", true},
		{"cv.doc", true},
		{"notes.txt", true},
		{"resume.odt", false},
		{"script.sh", false},
		{"resume", false},
		{"", false},
		{"archive.tar.gz", false},
		{"jane.doe.resume.docx", true},
	}

	for _, tt := range tests {
		if got := AllowedFile(tt.filename); got != tt.want {
			t.Errorf("AllowedFile(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"plain", "resume.pdf", "resume.pdf"},
		{"spaces", "my resume.pdf", "my_resume.pdf"},
		{"path traversal", "../../etc/passwd", "passwd"},
		{"windows path", `C:\Users\jane\resume.docx`, "resume.docx"},
		{"shell characters", "resume;rm -rf.pdf", "resume_rm_-rf.pdf"},
		{"unicode", "résumé.pdf", "r_sum_.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFilename(tt.filename); got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestSanitizeFilenameLength(t *testing.T) {
	long := strings.Repeat("a", 300) + ".pdf"
	got := SanitizeFilename(long)
	if len(got) > 128 {
		t.Errorf("SanitizeFilename returned %d characters, want <= 128", len(got))
	}
	if !strings.HasSuffix(got, ".pdf") {
		t.Errorf("SanitizeFilename(%q...) = %q, extension should survive truncation", long[:10], got)
	}
}

func TestRequiredFields(t *testing.T) {
	if !RequiredFields("Acme", "Engineer", "Build things") {
		t.Error("RequiredFields rejected non-empty values")
	}
	if RequiredFields("Acme", "  ", "Build things") {
		t.Error("RequiredFields accepted a blank value")
	}
	if RequiredFields("") {
		t.Error("RequiredFields accepted an empty value")
	}
}
