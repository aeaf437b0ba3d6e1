// Package source reads manual documents in their various authoring
// formats and emits the plain-text line convention the classifier
// consumes: `=`-framed major sections, dash-underlined subsections,
// glyph-prefixed list items, blank-line separated paragraphs.
package source

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Reader converts one document format into manual-convention lines.
type Reader interface {
	Lines(r io.Reader) ([]string, error)
}

// SupportedExtensions lists the manual formats this module accepts.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".docx":     true,
}

// ForFile returns the reader for a filename's extension.
func ForFile(filename string) (Reader, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextReader{}, nil
	case ".md", ".markdown":
		return &MarkdownReader{}, nil
	case ".html", ".htm":
		return &HTMLReader{}, nil
	case ".docx":
		return &DOCXReader{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks whether a filename can be read.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

const sectionDelimiter = "=================================================="

// frameSection renders a title in the major-section convention.
func frameSection(title string) []string {
	return []string{"", sectionDelimiter, strings.ToUpper(title), sectionDelimiter, ""}
}

// underlineSubsection renders a title in the dash-underlined convention.
func underlineSubsection(title string) []string {
	n := len(title)
	if n < 5 {
		n = 5
	}
	return []string{"", title, strings.Repeat("-", n), ""}
}
