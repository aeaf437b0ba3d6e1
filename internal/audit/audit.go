// Package audit compares a rewritten manual against the original
// document and reports safety/compliance keywords that did not survive
// the rewrite.
package audit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Pair names one original/rewritten document pairing for a model.
type Pair struct {
	Model        string `yaml:"model"`
	OriginalPDF  string `yaml:"original_pdf"`
	RewrittenTxt string `yaml:"rewritten_txt"`
}

// Report is the audit result for one pair: the keywords present in the
// original but absent from the rewrite, in keyword-list order.
type Report struct {
	Model     string   `json:"model"`
	Original  string   `json:"original"`
	Rewritten string   `json:"rewritten"`
	Missing   []string `json:"missing"`
}

// MissingKeywords returns the keywords whose normalized form appears in
// reference but not in candidate. Report order follows the keyword
// list, not discovery order.
func MissingKeywords(reference, candidate string, keywords []string) []string {
	ref := Normalize(reference)
	cand := Normalize(candidate)

	var missing []string
	for _, kw := range keywords {
		nkw := Normalize(kw)
		if strings.Contains(ref, nkw) && !strings.Contains(cand, nkw) {
			missing = append(missing, kw)
		}
	}
	return missing
}

// Check audits one pair, reading both documents relative to dir. The
// original must be a PDF; extraction is best-effort per page.
func Check(dir string, p Pair, keywords []string) (Report, error) {
	origText, err := ExtractPDFText(filepath.Join(dir, p.OriginalPDF))
	if err != nil {
		return Report{}, fmt.Errorf("extract %s: %w", p.OriginalPDF, err)
	}

	rewritten, err := os.ReadFile(filepath.Join(dir, p.RewrittenTxt))
	if err != nil {
		return Report{}, fmt.Errorf("read %s: %w", p.RewrittenTxt, err)
	}

	return Report{
		Model:     p.Model,
		Original:  p.OriginalPDF,
		Rewritten: p.RewrittenTxt,
		Missing:   MissingKeywords(origText, string(rewritten), keywords),
	}, nil
}
