package source

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownReader converts markdown-authored manuals using goldmark:
// level-1 headings become delimiter-framed major sections, deeper
// headings become dash-underlined subsections, list items become glyph
// lines.
type MarkdownReader struct{}

func (p *MarkdownReader) Lines(r io.Reader) ([]string, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var lines []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := string(node.Text(src))
			if node.Level == 1 {
				lines = append(lines, frameSection(title)...)
			} else {
				lines = append(lines, underlineSubsection(title)...)
			}
		case *ast.List:
			lines = append(lines, listLines(node, src)...)
			lines = append(lines, "")
		default:
			if t := extractText(n, src); t != "" {
				lines = append(lines, splitNodeText(t)...)
				lines = append(lines, "")
			}
		}
	}
	return lines, nil
}

// listLines renders list items in the manual glyph convention.
func listLines(list *ast.List, src []byte) []string {
	var lines []string
	num := list.Start
	if num == 0 {
		num = 1
	}
	for li := list.FirstChild(); li != nil; li = li.NextSibling() {
		t := extractText(li, src)
		if t == "" {
			continue
		}
		if list.IsOrdered() {
			lines = append(lines, fmt.Sprintf("%d. %s", num, t))
			num++
		} else {
			lines = append(lines, "• "+t)
		}
	}
	return lines
}

// splitNodeText keeps hard line breaks inside a block as separate
// manual lines.
func splitNodeText(t string) []string {
	parts := strings.Split(t, "\n")
	var out []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// extractText gets the text content of a goldmark AST node. Block
// nodes that carry source lines use those directly; container nodes
// recurse into their children.
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(src))
		}
		return strings.TrimSpace(buf.String())
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.WriteString(extractText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
