package classify

import (
	"strings"
	"testing"

	"github.com/isaachorowitz/freedom-tools-manuals/internal/manual"
)

func kinds(blocks []manual.Block) []manual.Kind {
	out := make([]manual.Kind, len(blocks))
	for i, b := range blocks {
		out[i] = b.Kind
	}
	return out
}

func TestBlocks_MajorSectionUnit(t *testing.T) {
	input := "==========\nSAFETY\n==========\nDo not touch blade.\n"
	blocks := Blocks(input)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d: %v", len(blocks), blocks)
	}
	if blocks[0].Kind != manual.KindMajorSection || blocks[0].Text != "SAFETY" {
		t.Errorf("block[0]: got %s %q", blocks[0].Kind, blocks[0].Text)
	}
	if blocks[1].Kind != manual.KindParagraph || blocks[1].Text != "Do not touch blade." {
		t.Errorf("block[1]: got %s %q", blocks[1].Kind, blocks[1].Text)
	}
}

func TestBlocks_MajorSectionUnitWithBlankPadding(t *testing.T) {
	input := "==========\n\nASSEMBLY\n\n==========\nAttach the handle.\n"
	blocks := Blocks(input)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d: %v", len(blocks), blocks)
	}
	if blocks[0].Kind != manual.KindMajorSection || blocks[0].Text != "ASSEMBLY" {
		t.Errorf("block[0]: got %s %q", blocks[0].Kind, blocks[0].Text)
	}
}

func TestBlocks_UnderlinedSubsection(t *testing.T) {
	input := "Battery Care\n------------\nCharge fully before first use.\n"
	blocks := Blocks(input)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d: %v", len(blocks), blocks)
	}
	if blocks[0].Kind != manual.KindSubsection || blocks[0].Text != "Battery Care" {
		t.Errorf("block[0]: got %s %q", blocks[0].Kind, blocks[0].Text)
	}
	if blocks[1].Kind != manual.KindParagraph {
		t.Errorf("block[1]: got %s", blocks[1].Kind)
	}
}

func TestBlocks_WarningAggregation(t *testing.T) {
	input := "WARNING: Risk of fire.\nKeep away from water.\n\nNext paragraph.\n"
	blocks := Blocks(input)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d: %v", len(blocks), blocks)
	}
	if blocks[0].Kind != manual.KindWarning {
		t.Fatalf("block[0]: got %s", blocks[0].Kind)
	}
	want := "WARNING: Risk of fire. Keep away from water."
	if blocks[0].Text != want {
		t.Errorf("warning text: got %q, want %q", blocks[0].Text, want)
	}
	if blocks[1].Kind != manual.KindParagraph || blocks[1].Text != "Next paragraph." {
		t.Errorf("block[1]: got %s %q", blocks[1].Kind, blocks[1].Text)
	}
}

func TestBlocks_ProblemThenNumbered(t *testing.T) {
	input := "PROBLEM: Tool won't start.\n1. Check battery.\n"
	blocks := Blocks(input)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d: %v", len(blocks), blocks)
	}
	if blocks[0].Kind != manual.KindProblem || blocks[0].Text != "PROBLEM: Tool won't start." {
		t.Errorf("block[0]: got %s %q", blocks[0].Kind, blocks[0].Text)
	}
	if blocks[1].Kind != manual.KindNumbered || blocks[1].Text != "1. Check battery." {
		t.Errorf("block[1]: got %s %q", blocks[1].Kind, blocks[1].Text)
	}
}

// Rule order is part of the contract; these cases pin the precedences
// that are easiest to silently break in a rewrite.
func TestBlocks_RulePrecedence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  manual.Kind
	}{
		// A warning start that is also all upper-case is a warning,
		// because warning detection precedes upper-case detection.
		{"upper-case warning", "WARNING DO NOT OPERATE WET\n", manual.KindWarning},
		{"upper-case caution", "CAUTION: HOT SURFACE\n", manual.KindNote},
		// An upper-case problem line is a problem header, not a heading.
		{"upper-case problem", "PROBLEM: NO POWER\n", manual.KindProblem},
		// Rule 5's glyph gap: a bullet-glyph upper-case line classifies
		// as a subsection header under the literal rule order.
		{"bullet glyph upper-case", "• READ ALL INSTRUCTIONS\n", manual.KindSubsection},
		// A marker ending in a colon is never a bare subsection header.
		{"note colon line", "NOTE: charge indicator blinks:\n", manual.KindNote},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := Blocks(tt.input)
			if len(blocks) != 1 {
				t.Fatalf("expected 1 block, got %d: %v", len(blocks), blocks)
			}
			if blocks[0].Kind != tt.kind {
				t.Errorf("got %s, want %s", blocks[0].Kind, tt.kind)
			}
		})
	}
}

func TestBlocks_UnderlinePrecedesUpperCase(t *testing.T) {
	// An upper-case title directly above a dash rule is the two-line
	// underlined form, not a standalone heading plus stray noise.
	input := "MAINTENANCE\n-----------\nWipe with a dry cloth.\n"
	steps := Scan(SplitLines(input))
	if steps[0].End-steps[0].Start != 2 {
		t.Fatalf("expected first step to consume 2 lines, consumed %d", steps[0].End-steps[0].Start)
	}
	if steps[0].Block == nil || steps[0].Block.Kind != manual.KindSubsection {
		t.Fatalf("expected subsection, got %+v", steps[0].Block)
	}
	if steps[0].Block.Text != "MAINTENANCE" {
		t.Errorf("title: got %q", steps[0].Block.Text)
	}
}

func TestBlocks_NoteTerminatesWarning(t *testing.T) {
	// A note start ends a running warning aggregation without being
	// consumed by it.
	input := "WARNING: Blade is sharp.\nHandle with care.\nNOTE: Blade is replaceable.\n"
	blocks := Blocks(input)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d: %v", len(blocks), blocks)
	}
	if blocks[0].Kind != manual.KindWarning {
		t.Errorf("block[0]: got %s", blocks[0].Kind)
	}
	if got, want := blocks[0].Text, "WARNING: Blade is sharp. Handle with care."; got != want {
		t.Errorf("warning text: got %q, want %q", got, want)
	}
	if blocks[1].Kind != manual.KindNote || blocks[1].Text != "NOTE: Blade is replaceable." {
		t.Errorf("block[1]: got %s %q", blocks[1].Kind, blocks[1].Text)
	}
}

func TestBlocks_NoteAggregationTerminators(t *testing.T) {
	tests := []struct {
		name       string
		terminator string
	}{
		{"blank line", ""},
		{"upper-case line", "STORAGE"},
		{"checklist item", "□ Battery charged"},
		{"bullet item", "• Use eye protection"},
		{"dash bullet", "- Use eye protection"},
		{"numbered item", "3. Insert the bit."},
		{"colon header", "Before each use:"},
		{"problem header", "PROBLEM: Excess vibration."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "NOTE: First line.\nSecond line.\n" + tt.terminator + "\n"
			blocks := Blocks(input)
			if len(blocks) < 1 {
				t.Fatal("no blocks")
			}
			if blocks[0].Kind != manual.KindNote {
				t.Fatalf("block[0]: got %s", blocks[0].Kind)
			}
			if got, want := blocks[0].Text, "NOTE: First line. Second line."; got != want {
				t.Errorf("note text: got %q, want %q", got, want)
			}
		})
	}
}

func TestBlocks_WarningGlyphNormalized(t *testing.T) {
	input := "⚠Do not modify the plug.\n"
	blocks := Blocks(input)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if got, want := blocks[0].Text, "⚠ Do not modify the plug."; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBlocks_ChecklistStripsGlyph(t *testing.T) {
	blocks := Blocks("□ Charger and cable\n")
	if len(blocks) != 1 || blocks[0].Kind != manual.KindChecklist {
		t.Fatalf("got %v", blocks)
	}
	if blocks[0].Text != "Charger and cable" {
		t.Errorf("got %q", blocks[0].Text)
	}
}

func TestBlocks_ColonHeaderTrimmed(t *testing.T) {
	blocks := Blocks("To install the blade:\n")
	if len(blocks) != 1 || blocks[0].Kind != manual.KindSubsection {
		t.Fatalf("got %v", blocks)
	}
	if blocks[0].Text != "To install the blade" {
		t.Errorf("got %q", blocks[0].Text)
	}
}

func TestBlocks_LongColonLineIsParagraph(t *testing.T) {
	long := strings.Repeat("x", 85) + ":"
	blocks := Blocks(long + "\n")
	if len(blocks) != 1 || blocks[0].Kind != manual.KindParagraph {
		t.Fatalf("got %v", blocks)
	}
}

func TestBlocks_DashBulletNeedsSpaceAndContent(t *testing.T) {
	tests := []struct {
		input string
		kind  manual.Kind
	}{
		{"- Keep hands clear", manual.KindBullet},
		{"-not a bullet", manual.KindParagraph},
		{"• Standard bullet", manual.KindBullet},
	}
	for _, tt := range tests {
		blocks := Blocks(tt.input + "\n")
		if len(blocks) != 1 || blocks[0].Kind != tt.kind {
			t.Errorf("%q: got %v, want kind %s", tt.input, blocks, tt.kind)
		}
	}
}

func TestBlocks_CoverNoiseSkipped(t *testing.T) {
	input := strings.Join([]string{
		"FREEDOM TOOLS",
		"MODEL: FT1001",
		"INSTRUCTION MANUAL",
		"",
		"Thank you for your purchase.",
	}, "\n")
	blocks := Blocks(input)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d: %v", len(blocks), blocks)
	}
	if blocks[0].Kind != manual.KindParagraph || blocks[0].Text != "Thank you for your purchase." {
		t.Errorf("got %s %q", blocks[0].Kind, blocks[0].Text)
	}
}

func TestBlocks_DecorativeBannerUnitEmitsNothing(t *testing.T) {
	input := "==========\nFREEDOM TOOLS\n==========\nReal content.\n"
	blocks := Blocks(input)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d: %v", len(blocks), blocks)
	}
	if blocks[0].Text != "Real content." {
		t.Errorf("got %q", blocks[0].Text)
	}
}

func TestBlocks_ShortDelimiterIsNotASection(t *testing.T) {
	// Nine '=' is below the delimiter threshold.
	blocks := Blocks("=========\nSAFETY\n=========\n")
	for _, b := range blocks {
		if b.Kind == manual.KindMajorSection {
			t.Fatalf("short rule treated as delimiter: %v", blocks)
		}
	}
}

func TestBlocks_UnpairedDelimiterIsNoise(t *testing.T) {
	input := "==========\nNot followed by a closer.\nMore text.\n"
	blocks := Blocks(input)
	if got := kinds(blocks); len(got) != 2 || got[0] != manual.KindParagraph {
		t.Fatalf("got %v", blocks)
	}
}

func TestBlocks_EmptyInput(t *testing.T) {
	if blocks := Blocks(""); len(blocks) != 0 {
		t.Errorf("expected no blocks, got %v", blocks)
	}
}

func TestScan_CoverageAndTotality(t *testing.T) {
	input := strings.Join([]string{
		"==========",
		"FREEDOM TOOLS",
		"==========",
		"MODEL: FT1003",
		"INSTRUCTION MANUAL",
		"",
		"==========",
		"SAFETY INSTRUCTIONS",
		"==========",
		"",
		"⚠ WARNING: Read all safety warnings.",
		"Failure to follow may result in injury.",
		"",
		"GENERAL POWER TOOL SAFETY",
		"Work area safety:",
		"• Keep work area clean and well lit.",
		"• Do not operate in explosive atmospheres.",
		"",
		"Battery Care",
		"------------",
		"NOTE: Charge fully before first use.",
		"Store between 10°C and 40°C.",
		"",
		"TROUBLESHOOTING",
		"PROBLEM: Tool does not start.",
		"1. Check the battery charge.",
		"2. Inspect the trigger lock.",
		"□ Battery pack",
		"- Charger base",
		"Final paragraph of the manual.",
	}, "\n")

	lines := SplitLines(input)
	steps := Scan(lines)
	if err := Verify(steps, len(lines)); err != nil {
		t.Fatalf("verify failed: %v", err)
	}

	want := []manual.Kind{
		manual.KindMajorSection, // SAFETY INSTRUCTIONS (banner unit dropped)
		manual.KindWarning,
		manual.KindSubsection, // GENERAL POWER TOOL SAFETY
		manual.KindSubsection, // Work area safety
		manual.KindBullet,
		manual.KindBullet,
		manual.KindSubsection, // Battery Care (underlined)
		manual.KindNote,
		manual.KindSubsection, // TROUBLESHOOTING
		manual.KindProblem,
		manual.KindNumbered,
		manual.KindNumbered,
		manual.KindChecklist,
		manual.KindBullet,
		manual.KindParagraph,
	}
	got := kinds(Blocks(input))
	if len(got) != len(want) {
		t.Fatalf("expected %d blocks, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("block[%d]: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestVerify_RejectsBrokenTraces(t *testing.T) {
	tests := []struct {
		name  string
		steps []Step
		count int
	}{
		{"gap", []Step{{Start: 0, End: 1}, {Start: 2, End: 3}}, 3},
		{"overlap", []Step{{Start: 0, End: 2}, {Start: 1, End: 3}}, 3},
		{"no advance", []Step{{Start: 0, End: 0}}, 1},
		{"short", []Step{{Start: 0, End: 1}}, 2},
		{"empty warning", []Step{{Start: 0, End: 1, Block: &manual.Block{Kind: manual.KindWarning}}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Verify(tt.steps, tt.count); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
