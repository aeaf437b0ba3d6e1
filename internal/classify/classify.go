// Package classify partitions a manual's raw line stream into typed,
// renderable blocks using only local syntactic cues: delimiter lines,
// dash underlines, trailing colons, case, and leading glyphs.
//
// Rules are evaluated top to bottom per cursor position and the first
// match wins; the ordering is part of the contract. Marker lines
// (WARNING, NOTE:, PROBLEM: and friends) are excluded from every
// heading rule, so "WARNING: ..." is a warning even though it is
// upper-case and "CAUTION:" is a note even though it ends in a colon.
package classify

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/isaachorowitz/freedom-tools-manuals/internal/manual"
)

// Step records one classifier decision: the half-open line range
// [Start, End) it consumed and the block it produced. Structural noise
// (blank lines, delimiter and underline rules, decorative cover lines)
// consumes lines without producing a block, leaving Block nil.
type Step struct {
	Start int           `json:"start"`
	End   int           `json:"end"`
	Block *manual.Block `json:"block,omitempty"`
}

// Blocks classifies a whole manual text and returns its block stream.
func Blocks(text string) []manual.Block {
	steps := Scan(SplitLines(text))
	var blocks []manual.Block
	for _, st := range steps {
		if st.Block != nil {
			blocks = append(blocks, *st.Block)
		}
	}
	return blocks
}

// SplitLines splits text on line boundaries. Callers that already hold
// a line slice can pass it to Scan directly.
func SplitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// Scan runs the single-pass scanner over the line sequence. Every line
// is consumed by exactly one step, the cursor strictly advances, and
// the function is total: any remaining non-empty line falls through to
// a paragraph step.
func Scan(lines []string) []Step {
	var steps []Step
	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])

		// Major section units: a ='-delimiter line, a title, and a
		// closing delimiter, with blank lines allowed in between.
		if isDelimiter(line) {
			j := skipBlank(lines, i+1)
			if j >= len(lines) {
				// Trailing delimiter with no title; the remainder is noise.
				steps = append(steps, Step{Start: i, End: len(lines)})
				break
			}
			title := strings.TrimSpace(lines[j])
			k := skipBlank(lines, j+1)
			if k < len(lines) && isDelimiter(strings.TrimSpace(lines[k])) {
				st := Step{Start: i, End: k + 1}
				// Decorative front-matter banners produce no block.
				if !isCoverNoise(title) && !strings.HasPrefix(title, "FREEDOM ") {
					st.Block = &manual.Block{Kind: manual.KindMajorSection, Text: title}
				}
				steps = append(steps, st)
				i = k + 1
				continue
			}
			// Delimiter without a closing pair: noise on its own.
			steps = append(steps, Step{Start: i, End: i + 1})
			i++
			continue
		}

		// Decorative cover lines and blank lines.
		if isCoverNoise(line) {
			steps = append(steps, Step{Start: i, End: i + 1})
			i++
			continue
		}

		// A dash underline whose title was consumed by an earlier
		// lookahead, or one orphaned with nothing above it.
		if isDashRule(line) {
			steps = append(steps, Step{Start: i, End: i + 1})
			i++
			continue
		}

		// Title followed by a dash underline: subsection header unit.
		if i+1 < len(lines) && isDashRule(strings.TrimSpace(lines[i+1])) && !isMarker(line) {
			steps = append(steps, Step{
				Start: i,
				End:   i + 2,
				Block: &manual.Block{Kind: manual.KindSubsection, Text: line},
			})
			i += 2
			continue
		}

		// Standalone upper-case heading.
		if isUpper(line) && utf8.RuneCountInString(line) > 3 && !isMarker(line) {
			steps = append(steps, Step{
				Start: i,
				End:   i + 1,
				Block: &manual.Block{Kind: manual.KindSubsection, Text: line},
			})
			i++
			continue
		}

		if isProblemStart(line) {
			steps = append(steps, Step{
				Start: i,
				End:   i + 1,
				Block: &manual.Block{Kind: manual.KindProblem, Text: line},
			})
			i++
			continue
		}

		// Short line ending in a colon: bare subsection header.
		if isColonHeader(line) {
			title := strings.TrimSpace(strings.TrimRight(strings.TrimRight(line, ":"), "-"))
			steps = append(steps, Step{
				Start: i,
				End:   i + 1,
				Block: &manual.Block{Kind: manual.KindSubsection, Text: title},
			})
			i++
			continue
		}

		if isWarningStart(line) {
			text, next := collectUntil(lines, i, isAggregationTerminator)
			steps = append(steps, Step{
				Start: i,
				End:   next,
				Block: &manual.Block{Kind: manual.KindWarning, Text: normalizeGlyphs(text)},
			})
			i = next
			continue
		}

		if isNoteStart(line) {
			text, next := collectUntil(lines, i, isAggregationTerminator)
			steps = append(steps, Step{
				Start: i,
				End:   next,
				Block: &manual.Block{Kind: manual.KindNote, Text: normalizeGlyphs(text)},
			})
			i = next
			continue
		}

		if strings.HasPrefix(line, checkboxGlyph) {
			steps = append(steps, Step{
				Start: i,
				End:   i + 1,
				Block: &manual.Block{Kind: manual.KindChecklist, Text: strings.TrimSpace(strings.TrimPrefix(line, checkboxGlyph))},
			})
			i++
			continue
		}

		if isBulletStart(line) {
			steps = append(steps, Step{
				Start: i,
				End:   i + 1,
				Block: &manual.Block{Kind: manual.KindBullet, Text: line},
			})
			i++
			continue
		}

		if numberedRe.MatchString(line) {
			steps = append(steps, Step{
				Start: i,
				End:   i + 1,
				Block: &manual.Block{Kind: manual.KindNumbered, Text: line},
			})
			i++
			continue
		}

		// Catch-all: plain paragraph.
		steps = append(steps, Step{
			Start: i,
			End:   i + 1,
			Block: &manual.Block{Kind: manual.KindParagraph, Text: line},
		})
		i++
	}
	return steps
}

// skipBlank returns the index of the first non-blank line at or after i.
func skipBlank(lines []string, i int) int {
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	return i
}

const (
	warningGlyph  = "⚠" // U+26A0
	bulletGlyph   = "•" // U+2022
	checkboxGlyph = "□" // U+25A1
)

var numberedRe = regexp.MustCompile(`^\d+\.`)

// collectUntil gathers the aggregation opened at lines[start] plus
// every following line until term reports a terminator, joining the
// collected lines with single spaces. The terminating line is not
// consumed; it becomes the next classification target.
func collectUntil(lines []string, start int, term func(string) bool) (string, int) {
	parts := []string{strings.TrimSpace(lines[start])}
	i := start + 1
	for i < len(lines) {
		next := strings.TrimSpace(lines[i])
		if term(next) {
			break
		}
		parts = append(parts, next)
		i++
	}
	return strings.Join(parts, " "), i
}

// isAggregationTerminator is the shared terminator predicate for
// warning and note aggregation: blank lines, any marker start, an
// upper-case line, any list-item start, a dash line, or a bare
// colon header end the aggregation.
func isAggregationTerminator(s string) bool {
	switch {
	case s == "",
		isWarningStart(s),
		isNoteStart(s),
		isProblemStart(s),
		isUpper(s),
		strings.HasPrefix(s, checkboxGlyph),
		strings.HasPrefix(s, bulletGlyph),
		strings.HasPrefix(s, "-"),
		numberedRe.MatchString(s),
		isColonHeader(s):
		return true
	}
	return false
}

// isDelimiter reports a major-section delimiter: ten or more '='.
func isDelimiter(s string) bool {
	return len(s) >= 10 && strings.Count(s, "=") == len(s)
}

// isDashRule reports a subsection underline: five or more '-'.
func isDashRule(s string) bool {
	return len(s) >= 5 && strings.Count(s, "-") == len(s)
}

// isCoverNoise reports decorative front-matter carried in the source
// text: brand banners, the MODEL line, the manual subtitle, and blanks.
func isCoverNoise(s string) bool {
	if s == "" {
		return true
	}
	if strings.Contains(s, "FREEDOM") && strings.Contains(s, "TOOLS") {
		return true
	}
	return strings.HasPrefix(s, "MODEL:") || s == "INSTRUCTION MANUAL"
}

func isWarningStart(s string) bool {
	return strings.HasPrefix(s, warningGlyph) || strings.HasPrefix(s, "WARNING")
}

func isNoteStart(s string) bool {
	return strings.HasPrefix(s, "NOTE:") || strings.HasPrefix(s, "IMPORTANT:") || strings.HasPrefix(s, "CAUTION:")
}

func isProblemStart(s string) bool {
	return strings.HasPrefix(s, "PROBLEM:")
}

// isMarker groups the starts that must never be mistaken for headings.
func isMarker(s string) bool {
	return isWarningStart(s) || isNoteStart(s) || isProblemStart(s)
}

// isBulletStart matches "• ..." bullets and "- " dash bullets with
// content after the space.
func isBulletStart(s string) bool {
	if strings.HasPrefix(s, bulletGlyph) {
		return true
	}
	return strings.HasPrefix(s, "-") && len(s) > 2 && s[1] == ' '
}

// isColonHeader matches short lines ending in a colon that are not
// themselves markers or list items.
func isColonHeader(s string) bool {
	if !strings.HasSuffix(s, ":") || utf8.RuneCountInString(s) >= 80 {
		return false
	}
	if isMarker(s) {
		return false
	}
	if strings.HasPrefix(s, bulletGlyph) || strings.HasPrefix(s, checkboxGlyph) {
		return false
	}
	return true
}

// isUpper reports whether s contains at least one letter and every
// letter is upper-case.
func isUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// normalizeGlyphs puts a single space after each warning glyph and
// collapses any doubled spaces the join introduced.
func normalizeGlyphs(s string) string {
	s = strings.ReplaceAll(s, warningGlyph, warningGlyph+" ")
	return strings.Join(strings.Fields(s), " ")
}
