// Package pdf renders assembled page descriptions into a PDF document.
// It is the engine's only binding to the document-rendering library.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/clientlens/reportgen/pkg/models/domain"
)

var (
	colorText      = [3]int{44, 62, 80}
	colorMuted     = [3]int{127, 140, 141}
	colorCardFill  = [3]int{248, 249, 250}
	colorTableAlt  = [3]int{241, 245, 249}
	colorPositive  = [3]int{46, 204, 113}
	colorWarning   = [3]int{241, 196, 15}
	colorNegative  = [3]int{231, 76, 60}
	defaultPrimary = [3]int{30, 58, 95}
)

// Renderer writes page descriptions to an A4 PDF
type Renderer struct{}

// NewRenderer creates a PDF renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces the document bytes for an assembled page sequence.
// It honors context cancellation between pages.
func (r *Renderer) Render(
	ctx context.Context,
	pages []domain.PageDescription,
	branding domain.Branding,
) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(20, 20, 20)
	doc.SetAutoPageBreak(true, 25)

	primary := parseHexColor(branding.PrimaryColor)

	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		doc.AddPage()
		switch page.Kind {
		case domain.PageCover:
			writeCover(doc, page, primary)
		case domain.PageMetricGrid:
			writeHeader(doc, page, primary)
			writeGrid(doc, page.Grid, primary)
		case domain.PageDataTable:
			writeHeader(doc, page, primary)
			writeTable(doc, page.Table, primary)
		case domain.PageNarrative:
			writeHeader(doc, page, primary)
			writeNarrative(doc, page.Narrative)
		case domain.PageContact:
			writeHeader(doc, page, primary)
			writeContact(doc, page.Contact, primary)
		default:
			return nil, fmt.Errorf("unknown page kind %q", page.Kind)
		}

		if page.Kind != domain.PageCover {
			writeFooter(doc, page)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

// parseHexColor accepts "#RRGGBB"; anything else falls back to the
// default navy
func parseHexColor(hex string) [3]int {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return defaultPrimary
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return defaultPrimary
	}
	return [3]int{int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)}
}

func writeCover(doc *fpdf.Fpdf, page domain.PageDescription, primary [3]int) {
	cover := page.Cover
	pageWidth, pageHeight := doc.GetPageSize()

	doc.SetFillColor(primary[0], primary[1], primary[2])
	doc.Rect(0, 0, pageWidth, 8, "F")

	doc.SetY(70)
	doc.SetFont("Arial", "B", 30)
	doc.SetTextColor(primary[0], primary[1], primary[2])
	doc.CellFormat(0, 14, cover.ClientName, "", 1, "C", false, 0, "")

	doc.SetFont("Arial", "", 15)
	doc.SetTextColor(colorMuted[0], colorMuted[1], colorMuted[2])
	doc.CellFormat(0, 10, cover.Subtitle, "", 1, "C", false, 0, "")

	doc.Ln(8)
	doc.SetFont("Arial", "", 11)
	period := fmt.Sprintf("%s - %s",
		cover.Period.Start.Format("January 2, 2006"),
		cover.Period.End.Format("January 2, 2006"))
	doc.CellFormat(0, 8, period, "", 1, "C", false, 0, "")

	doc.SetY(pageHeight - 40)
	doc.SetFont("Arial", "B", 11)
	doc.SetTextColor(colorText[0], colorText[1], colorText[2])
	doc.CellFormat(0, 8, fmt.Sprintf("Prepared by %s", cover.CompanyName), "", 1, "C", false, 0, "")
}

func writeHeader(doc *fpdf.Fpdf, page domain.PageDescription, primary [3]int) {
	doc.SetFont("Arial", "B", 18)
	doc.SetTextColor(primary[0], primary[1], primary[2])
	doc.CellFormat(0, 12, page.Title, "", 1, "L", false, 0, "")

	doc.SetDrawColor(primary[0], primary[1], primary[2])
	doc.SetLineWidth(0.6)
	doc.Line(20, doc.GetY(), 120, doc.GetY())
	doc.Ln(8)
}

func writeFooter(doc *fpdf.Fpdf, page domain.PageDescription) {
	_, pageHeight := doc.GetPageSize()
	doc.SetY(pageHeight - 15)
	doc.SetFont("Arial", "", 8)
	doc.SetTextColor(colorMuted[0], colorMuted[1], colorMuted[2])
	doc.CellFormat(0, 6, fmt.Sprintf("Page %d of %d", page.PageNumber, page.TotalPages),
		"", 0, "C", false, 0, "")
}

// writeGrid lays simple metrics out as cards in the planned column
// count
func writeGrid(doc *fpdf.Fpdf, grid *domain.MetricGridPage, primary [3]int) {
	const cardHeight = 30.0
	const gutter = 5.0

	pageWidth, _ := doc.GetPageSize()
	usable := pageWidth - 40
	cardWidth := (usable - gutter*float64(grid.Columns-1)) / float64(grid.Columns)

	startY := doc.GetY()
	for i, m := range grid.Metrics {
		col := i % grid.Columns
		row := i / grid.Columns
		x := 20 + float64(col)*(cardWidth+gutter)
		y := startY + float64(row)*(cardHeight+gutter)

		doc.SetFillColor(colorCardFill[0], colorCardFill[1], colorCardFill[2])
		doc.Rect(x, y, cardWidth, cardHeight, "F")

		doc.SetXY(x+4, y+5)
		doc.SetFont("Arial", "", 9)
		doc.SetTextColor(colorMuted[0], colorMuted[1], colorMuted[2])
		doc.CellFormat(cardWidth-8, 5, m.Descriptor.Label, "", 0, "L", false, 0, "")

		doc.SetXY(x+4, y+13)
		doc.SetFont("Arial", "B", 16)
		if m.Missing {
			doc.SetTextColor(colorMuted[0], colorMuted[1], colorMuted[2])
		} else {
			doc.SetTextColor(primary[0], primary[1], primary[2])
		}
		doc.CellFormat(cardWidth-8, 10, m.Formatted, "", 0, "L", false, 0, "")
	}

	rows := (len(grid.Metrics) + grid.Columns - 1) / grid.Columns
	doc.SetY(startY + float64(rows)*(cardHeight+gutter))
}

func writeTable(doc *fpdf.Fpdf, table *domain.DataTablePage, primary [3]int) {
	widths := []float64{80, 45, 45}

	doc.SetFont("Arial", "B", 10)
	doc.SetFillColor(primary[0], primary[1], primary[2])
	doc.SetTextColor(255, 255, 255)
	for i, h := range table.Headers {
		doc.CellFormat(widths[i], 9, h, "", 0, "L", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Arial", "", 10)
	doc.SetTextColor(colorText[0], colorText[1], colorText[2])
	for i, row := range table.Rows {
		fill := i%2 == 1
		doc.SetFillColor(colorTableAlt[0], colorTableAlt[1], colorTableAlt[2])
		for j, cell := range row {
			align := "L"
			if j > 0 {
				align = "R"
			}
			doc.CellFormat(widths[j], 8, cell, "", 0, align, fill, 0, "")
		}
		doc.Ln(-1)
	}
}

func writeNarrative(doc *fpdf.Fpdf, narrative *domain.NarrativePage) {
	for _, item := range narrative.Insights {
		tone := toneColor(item.Tone)
		doc.SetFillColor(tone[0], tone[1], tone[2])
		doc.Rect(20, doc.GetY()+1, 1.5, 12, "F")

		doc.SetX(26)
		doc.SetFont("Arial", "B", 11)
		doc.SetTextColor(colorText[0], colorText[1], colorText[2])
		doc.CellFormat(0, 6, item.Title, "", 1, "L", false, 0, "")

		doc.SetX(26)
		doc.SetFont("Arial", "", 10)
		doc.SetTextColor(colorMuted[0], colorMuted[1], colorMuted[2])
		doc.MultiCell(150, 5, item.Body, "", "L", false)
		doc.Ln(4)
	}
}

func writeContact(doc *fpdf.Fpdf, contact *domain.ContactPage, primary [3]int) {
	doc.Ln(10)
	doc.SetFont("Arial", "B", 14)
	doc.SetTextColor(primary[0], primary[1], primary[2])
	doc.CellFormat(0, 9, contact.CompanyName, "", 1, "L", false, 0, "")

	doc.SetFont("Arial", "", 11)
	doc.SetTextColor(colorText[0], colorText[1], colorText[2])
	doc.MultiCell(150, 6, contact.ContactInfo, "", "L", false)

	doc.Ln(10)
	doc.SetFont("Arial", "", 10)
	doc.SetTextColor(colorMuted[0], colorMuted[1], colorMuted[2])
	doc.CellFormat(0, 6, "Questions about this report? We are happy to walk through it with you.",
		"", 1, "L", false, 0, "")
}

func toneColor(tone domain.Tone) [3]int {
	switch tone {
	case domain.TonePositive:
		return colorPositive
	case domain.ToneWarning:
		return colorWarning
	case domain.ToneNegative:
		return colorNegative
	default:
		return colorMuted
	}
}
