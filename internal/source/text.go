package source

import (
	"bufio"
	"io"
)

// TextReader passes plain-text manuals through untouched; they already
// carry the line convention.
type TextReader struct{}

func (p *TextReader) Lines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
