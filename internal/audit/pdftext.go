package audit

import (
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// ExtractPDFText pulls the plain text of every page of a PDF. A page
// whose extraction fails contributes an empty string rather than
// aborting the audit, so a partly unreadable original still yields a
// reduced report instead of none.
func ExtractPDFText(path string) (string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}
	return strings.Join(pages, "\n"), nil
}
