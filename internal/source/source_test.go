package source

import (
	"strings"
	"testing"

	"github.com/isaachorowitz/freedom-tools-manuals/internal/classify"
	"github.com/isaachorowitz/freedom-tools-manuals/internal/manual"
)

func TestForFile(t *testing.T) {
	tests := []struct {
		filename string
		ok       bool
	}{
		{"manual.txt", true},
		{"manual.md", true},
		{"manual.markdown", true},
		{"manual.HTML", true},
		{"manual.docx", true},
		{"manual.pdf", false},
		{"manual.csv", false},
	}
	for _, tt := range tests {
		_, err := ForFile(tt.filename)
		if (err == nil) != tt.ok {
			t.Errorf("ForFile(%q): err=%v, want ok=%v", tt.filename, err, tt.ok)
		}
		if got := IsSupportedExtension(tt.filename); got != tt.ok {
			t.Errorf("IsSupportedExtension(%q) = %v, want %v", tt.filename, got, tt.ok)
		}
	}
}

func TestTextReader_PassThrough(t *testing.T) {
	input := "Line one\n\nLine two"
	lines, err := (&TextReader{}).Lines(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Line one", "", "Line two"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines %v, want %d", len(lines), lines, len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line[%d]: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestMarkdownReader_Convention(t *testing.T) {
	input := "# Safety Instructions\n\nRead everything first.\n\n## Battery Care\n\n- Charge fully\n- Store cool\n\n1. Insert battery.\n2. Press trigger.\n"
	lines, err := (&MarkdownReader{}).Lines(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	blocks := classify.Scan(lines)
	var kinds []manual.Kind
	var texts []string
	for _, st := range blocks {
		if st.Block != nil {
			kinds = append(kinds, st.Block.Kind)
			texts = append(texts, st.Block.Text)
		}
	}

	want := []manual.Kind{
		manual.KindMajorSection,
		manual.KindParagraph,
		manual.KindSubsection,
		manual.KindBullet,
		manual.KindBullet,
		manual.KindNumbered,
		manual.KindNumbered,
	}
	if len(kinds) != len(want) {
		t.Fatalf("got kinds %v (texts %v), want %v", kinds, texts, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("block[%d]: got %s, want %s", i, kinds[i], want[i])
		}
	}
	if texts[0] != "SAFETY INSTRUCTIONS" {
		t.Errorf("major section title: got %q", texts[0])
	}
	if texts[2] != "Battery Care" {
		t.Errorf("subsection title: got %q", texts[2])
	}
}

func TestHTMLReader_Convention(t *testing.T) {
	input := `<html><head><title>x</title><style>p{}</style></head><body>
<h1>Operation</h1>
<p>Hold the tool firmly.</p>
<h2>Speed Control</h2>
<ul><li>Low for screws</li><li>High for drilling</li></ul>
</body></html>`
	lines, err := (&HTMLReader{}).Lines(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	blocks := classify.Blocks(strings.Join(lines, "\n"))
	want := []struct {
		kind manual.Kind
		text string
	}{
		{manual.KindMajorSection, "OPERATION"},
		{manual.KindParagraph, "Hold the tool firmly."},
		{manual.KindSubsection, "Speed Control"},
		{manual.KindBullet, "• Low for screws"},
		{manual.KindBullet, "• High for drilling"},
	}
	if len(blocks) != len(want) {
		t.Fatalf("got %d blocks %v, want %d", len(blocks), blocks, len(want))
	}
	for i, w := range want {
		if blocks[i].Kind != w.kind || blocks[i].Text != w.text {
			t.Errorf("block[%d]: got %s %q, want %s %q", i, blocks[i].Kind, blocks[i].Text, w.kind, w.text)
		}
	}
}

func TestUnderlineSubsection_MinimumRule(t *testing.T) {
	lines := underlineSubsection("Oil")
	// The underline must still count as a dash rule for the classifier.
	found := false
	for _, l := range lines {
		if strings.Count(l, "-") == len(l) && len(l) >= 5 {
			found = true
		}
	}
	if !found {
		t.Errorf("no valid dash rule in %v", lines)
	}
}
