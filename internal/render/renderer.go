// Package render lays a classified block stream out as a paginated PDF
// manual with a cover page, running header/footer, and page numbers.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/isaachorowitz/freedom-tools-manuals/internal/manual"
)

// Renderer maps block kinds to visual styles and drives gofpdf. One
// Renderer may render many documents; each Render call owns its own
// page state.
type Renderer struct {
	styles *StyleSheet
}

// Options configures a render run.
type Options struct {
	Brand      string // cover/header brand name, e.g. "FREEDOM"
	FooterPage bool   // append the trailing company page
}

// New returns a Renderer using styles, or the default style sheet when
// styles is nil.
func New(styles *StyleSheet) *Renderer {
	if styles == nil {
		styles = DefaultStyles()
	}
	return &Renderer{styles: styles}
}

// Result summarizes a completed render.
type Result struct {
	Pages int
}

const (
	pageMargin = 43.2 // 0.6in in points
	lineHeight = 12
)

// Render writes doc as a paginated PDF to w.
func (r *Renderer) Render(doc manual.Document, opts Options, w io.Writer) (Result, error) {
	if opts.Brand == "" {
		opts.Brand = "FREEDOM"
	}

	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetTitle(doc.Title, true)
	pdf.SetAuthor(opts.Brand+" TOOLS", true)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin+14)
	pdf.AliasNbPages("")

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	st := r.styles

	pageW, pageH := pdf.GetPageSize()
	inner := pageW - 2*pageMargin

	// Running decorations on every page after the cover.
	pdf.SetHeaderFuncMode(func() {
		if pdf.PageNo() == 1 {
			return
		}
		pdf.SetFont("Helvetica", "", 9)
		setText(pdf, st.Muted)
		pdf.Text(pageMargin, 38, tr(fmt.Sprintf("%s TOOLS  |  %s", opts.Brand, doc.Model)))
		title := tr(doc.Title)
		pdf.Text(pageW-pageMargin-pdf.GetStringWidth(title), 38, title)
		setDraw(pdf, st.Accent)
		pdf.SetLineWidth(0.5)
		pdf.Line(pageMargin, 42, pageW-pageMargin, 42)
	}, true)

	pdf.SetFooterFunc(func() {
		if pdf.PageNo() == 1 {
			return
		}
		setDraw(pdf, st.Accent)
		pdf.SetLineWidth(0.5)
		pdf.Line(pageMargin, pageH-48, pageW-pageMargin, pageH-48)
		pdf.SetFont("Helvetica", "", 9)
		setText(pdf, st.Muted)
		pageText := fmt.Sprintf("Page %d of {nb}", pdf.PageNo())
		pdf.Text((pageW-pdf.GetStringWidth(pageText))/2, pageH-34, pageText)
		pdf.SetFont("Helvetica", "", 8)
		pdf.Text(pageMargin, pageH-34, tr(fmt.Sprintf("© %d %s Tools", time.Now().Year(), titleCaseBrand(opts.Brand))))
	})

	r.coverPage(pdf, tr, doc, opts, inner)

	for _, b := range doc.Blocks {
		r.block(pdf, tr, b, inner)
	}

	if opts.FooterPage {
		r.footerPage(pdf, tr, opts, inner, pageH)
	}

	if err := pdf.Output(w); err != nil {
		return Result{}, fmt.Errorf("write pdf: %w", err)
	}
	return Result{Pages: pdf.PageCount()}, nil
}

func (r *Renderer) coverPage(pdf *gofpdf.Fpdf, tr func(string) string, doc manual.Document, opts Options, inner float64) {
	st := r.styles
	pdf.AddPage()
	pdf.Ln(120)

	setFont(pdf, st.CoverBrand)
	pdf.CellFormat(inner, 36, tr(opts.Brand), "", 1, "C", false, 0, "")
	pdf.Ln(8)

	setFont(pdf, st.CoverTitle)
	pdf.CellFormat(inner, 28, tr(doc.Title), "", 1, "C", false, 0, "")
	pdf.Ln(20)

	setFont(pdf, st.CoverModel)
	pdf.CellFormat(inner, 22, tr("MODEL "+doc.Model), "", 1, "C", false, 0, "")
	pdf.Ln(40)

	setFont(pdf, st.CoverSubtitle)
	pdf.CellFormat(inner, 20, "INSTRUCTION MANUAL", "", 1, "C", false, 0, "")
	pdf.Ln(80)

	notice := "! IMPORTANT: Please read this manual carefully before using your tool. " +
		"Keep it in a safe place for future reference. Failure to follow instructions " +
		"may result in serious injury."
	r.box(pdf, tr, st.Warning, notice, inner)

	pdf.AddPage()
}

func (r *Renderer) block(pdf *gofpdf.Fpdf, tr func(string) string, b manual.Block, inner float64) {
	st := r.styles
	text := sanitize(b.Text)

	switch b.Kind {
	case manual.KindMajorSection:
		pdf.Ln(10)
		setFont(pdf, st.MajorSection.TextStyle)
		setFill(pdf, st.MajorSection.Fill)
		pdf.CellFormat(inner, 26, tr("  "+text), "", 1, "L", true, 0, "")
		pdf.Ln(8)

	case manual.KindSubsection:
		pdf.Ln(8)
		setFont(pdf, st.Subsection)
		pdf.MultiCell(inner, 14, tr(text), "", "L", false)
		pdf.Ln(2)

	case manual.KindProblem:
		pdf.Ln(6)
		setFont(pdf, st.Problem)
		pdf.MultiCell(inner, 13, tr(text), "", "L", false)

	case manual.KindWarning:
		r.box(pdf, tr, st.Warning, text, inner)

	case manual.KindNote:
		r.box(pdf, tr, st.Note, text, inner)

	case manual.KindChecklist:
		setFont(pdf, st.List)
		pdf.SetX(pageMargin + 18)
		pdf.MultiCell(inner-18, lineHeight, tr("• "+text), "", "L", false)

	case manual.KindBullet, manual.KindNumbered:
		setFont(pdf, st.List)
		pdf.SetX(pageMargin + 18)
		pdf.MultiCell(inner-18, lineHeight, tr(text), "", "L", false)

	default:
		setFont(pdf, st.Body)
		pdf.MultiCell(inner, lineHeight, tr(text), "", "L", false)
		pdf.Ln(2)
	}
}

// box draws a bordered, filled callout spanning the content width.
func (r *Renderer) box(pdf *gofpdf.Fpdf, tr func(string) string, style BoxStyle, text string, inner float64) {
	pdf.Ln(8)
	setFont(pdf, style.TextStyle)
	setFill(pdf, style.Fill)
	setDraw(pdf, style.Border)
	pdf.SetLineWidth(1.5)
	pdf.MultiCell(inner, lineHeight, tr("  "+text+"  "), "1", "L", true)
	pdf.Ln(8)
}

func (r *Renderer) footerPage(pdf *gofpdf.Fpdf, tr func(string) string, opts Options, inner, pageH float64) {
	st := r.styles
	pdf.AddPage()
	pdf.Ln(pageH / 3)

	setFont(pdf, TextStyle{Font: "Helvetica", Style: "B", Size: 16, Color: st.Accent})
	pdf.CellFormat(inner, 20, tr(opts.Brand+" TOOLS"), "", 1, "C", false, 0, "")
	setFont(pdf, TextStyle{Font: "Helvetica", Size: 12, Color: RGB{26, 26, 26}})
	pdf.CellFormat(inner, 18, "Built for Performance, Designed for You", "", 1, "C", false, 0, "")
	pdf.Ln(40)

	setFont(pdf, TextStyle{Font: "Helvetica", Size: 9, Color: st.Muted})
	pdf.CellFormat(inner, 13, tr(fmt.Sprintf("© %d %s Tools. All rights reserved.", time.Now().Year(), titleCaseBrand(opts.Brand))), "", 1, "C", false, 0, "")
	pdf.CellFormat(inner, 13, "Specifications subject to change without notice.", "", 1, "C", false, 0, "")
}

// sanitize replaces marker glyphs that have no cp1252 mapping before
// translation; the bullet glyph survives (cp1252 0x95).
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "⚠", "!")
	s = strings.ReplaceAll(s, "□", "")
	return strings.TrimSpace(s)
}

func titleCaseBrand(brand string) string {
	if brand == "" {
		return brand
	}
	lower := strings.ToLower(brand)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

func setFont(pdf *gofpdf.Fpdf, t TextStyle) {
	pdf.SetFont(t.Font, t.Style, t.Size)
	setText(pdf, t.Color)
}

func setText(pdf *gofpdf.Fpdf, c RGB) { pdf.SetTextColor(c.R, c.G, c.B) }
func setFill(pdf *gofpdf.Fpdf, c RGB) { pdf.SetFillColor(c.R, c.G, c.B) }
func setDraw(pdf *gofpdf.Fpdf, c RGB) { pdf.SetDrawColor(c.R, c.G, c.B) }
