package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/isaachorowitz/freedom-tools-manuals/internal/manual"
)

func sampleDoc() manual.Document {
	return manual.Document{
		Title: "18V Cordless Drill",
		Model: "FT1001",
		Blocks: []manual.Block{
			{Kind: manual.KindMajorSection, Text: "SAFETY INSTRUCTIONS"},
			{Kind: manual.KindWarning, Text: "WARNING: Read all safety warnings."},
			{Kind: manual.KindSubsection, Text: "Battery Care"},
			{Kind: manual.KindNote, Text: "NOTE: Charge fully before first use."},
			{Kind: manual.KindProblem, Text: "PROBLEM: Tool does not start."},
			{Kind: manual.KindNumbered, Text: "1. Check the battery."},
			{Kind: manual.KindChecklist, Text: "Charger and cable"},
			{Kind: manual.KindBullet, Text: "• Keep hands clear."},
			{Kind: manual.KindParagraph, Text: "Thank you for your purchase."},
		},
	}
}

func TestRender_ProducesPDF(t *testing.T) {
	var buf bytes.Buffer
	res, err := New(nil).Render(sampleDoc(), Options{}, &buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output does not start with PDF header")
	}
	if res.Pages < 2 {
		t.Errorf("expected cover plus content pages, got %d", res.Pages)
	}
}

func TestRender_FooterPageAddsAPage(t *testing.T) {
	var without, with bytes.Buffer
	r := New(DefaultStyles())
	resA, err := r.Render(sampleDoc(), Options{}, &without)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	resB, err := r.Render(sampleDoc(), Options{FooterPage: true}, &with)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if resB.Pages != resA.Pages+1 {
		t.Errorf("footer page: got %d pages, want %d", resB.Pages, resA.Pages+1)
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"⚠ Do not modify the plug.", "! Do not modify the plug."},
		{"□ Battery pack", "Battery pack"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := sanitize(tt.in); got != tt.want {
			t.Errorf("sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDefaultStyles_BoxContrast(t *testing.T) {
	st := DefaultStyles()
	if st.Warning.Border == st.Note.Border {
		t.Error("warning and note boxes must be visually distinct")
	}
	if !strings.EqualFold(st.Body.Font, "helvetica") {
		t.Errorf("unexpected body font %q", st.Body.Font)
	}
}
