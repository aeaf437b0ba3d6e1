package classify

import (
	"fmt"

	"github.com/isaachorowitz/freedom-tools-manuals/internal/manual"
)

var knownKinds = map[manual.Kind]bool{
	manual.KindMajorSection: true,
	manual.KindSubsection:   true,
	manual.KindProblem:      true,
	manual.KindWarning:      true,
	manual.KindNote:         true,
	manual.KindChecklist:    true,
	manual.KindBullet:       true,
	manual.KindNumbered:     true,
	manual.KindParagraph:    true,
}

// Verify checks a scan trace against the scanner's structural
// guarantees: the consumed ranges tile [0, lineCount) exactly, with the
// cursor strictly advancing, every emitted kind is one the renderer can
// map, and no warning or note carries empty text. A non-nil error on a
// well-formed scan is a classifier defect.
func Verify(steps []Step, lineCount int) error {
	cursor := 0
	for n, st := range steps {
		if st.Start != cursor {
			return fmt.Errorf("step %d: starts at line %d, expected %d (gap or overlap)", n, st.Start, cursor)
		}
		if st.End <= st.Start {
			return fmt.Errorf("step %d: consumed no lines (%d..%d)", n, st.Start, st.End)
		}
		if st.End > lineCount {
			return fmt.Errorf("step %d: end %d past input length %d", n, st.End, lineCount)
		}
		cursor = st.End

		if st.Block == nil {
			continue
		}
		if !knownKinds[st.Block.Kind] {
			return fmt.Errorf("step %d: unknown block kind %q", n, st.Block.Kind)
		}
		switch st.Block.Kind {
		case manual.KindWarning, manual.KindNote:
			if st.Block.Text == "" {
				return fmt.Errorf("step %d: empty %s text", n, st.Block.Kind)
			}
		}
	}
	if cursor != lineCount {
		return fmt.Errorf("scan stopped at line %d of %d", cursor, lineCount)
	}
	return nil
}
