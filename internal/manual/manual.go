package manual

// Kind identifies the rendering treatment a block receives.
type Kind string

const (
	KindMajorSection Kind = "major_section" // full-width header bar
	KindSubsection   Kind = "subsection"    // medium heading
	KindProblem      Kind = "problem"       // troubleshooting entry marker
	KindWarning      Kind = "warning"       // high-visibility bordered box
	KindNote         Kind = "note"          // medium-visibility bordered box
	KindChecklist    Kind = "checklist"     // checkbox list entry
	KindBullet       Kind = "bullet"        // bullet list entry
	KindNumbered     Kind = "numbered"      // numbered list entry
	KindParagraph    Kind = "paragraph"     // body text
)

// Block is one classified unit of manual content. Blocks are never
// mutated after creation.
type Block struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

// Document is the ordered block sequence for one manual, handed to the
// renderer by value. The sequence is flat: source manuals are
// single-level sectioned.
type Document struct {
	Title  string  `json:"title"`
	Model  string  `json:"model"`
	Blocks []Block `json:"blocks"`
}
