// Package fpdf renders printable reports of the manifest aggregates.
package fpdf

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	mdb "github.com/skypies/manifestdb"
	"github.com/skypies/manifestdb/report"
)

// {{{ NewSummaryPdf

func NewSummaryPdf() *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "", 10)
	return pdf
}

// }}}
// {{{ drawTitle, drawLine

func drawTitle(pdf *gofpdf.Fpdf, y float64, title string) {
	pdf.SetFont("Arial", "B", 13)
	pdf.MoveTo(10, y)
	pdf.Cell(180, 8, title)
	pdf.SetFont("Arial", "", 10)
}

func drawLine(pdf *gofpdf.Fpdf, y float64, text string) {
	pdf.MoveTo(14, y)
	pdf.Cell(170, 6, text)
}

// }}}

// {{{ WriteSummary

// WriteSummary renders the voyage summary (headline stats, class/gender/
// port/age breakdowns) as a one-page PDF.
func WriteSummary(output io.Writer, t *mdb.Table) error {
	pdf := NewSummaryPdf()

	drawTitle(pdf, 10, "RMS Titanic - Voyage Summary")

	y := 20.0
	s := report.Summarize(t)
	drawLine(pdf, y, fmt.Sprintf("Passengers: %d   Survivors: %d   Lost: %d   Survival rate: %.1f%%",
		s.Total, s.Survivors, s.Lost, s.SurvRate))
	y += 6
	if s.AvgAge != nil {
		drawLine(pdf, y, fmt.Sprintf("Average age: %.1f yrs", *s.AvgAge))
		y += 6
	}
	if s.AvgFare != nil && s.MaxFare != nil {
		drawLine(pdf, y, fmt.Sprintf("Average fare: %.2f   Max fare: %.2f", *s.AvgFare, *s.MaxFare))
		y += 6
	}

	y += 4
	drawTitle(pdf, y, "Survival by class")
	y += 10
	for _, row := range report.ByClass(t) {
		drawLine(pdf, y, fmt.Sprintf("%-10s  %d/%d survived (%d%%)", row.Label, row.Survived, row.Total, row.Pct))
		y += 6
	}

	y += 4
	drawTitle(pdf, y, "Survival by gender")
	y += 10
	for _, row := range report.ByGender(t) {
		drawLine(pdf, y, fmt.Sprintf("%-10s  %d survived, %d lost", row.Label, row.Survived, row.Lost))
		y += 6
	}

	y += 4
	drawTitle(pdf, y, "Boarding ports")
	y += 10
	for _, row := range report.ByPort(t) {
		drawLine(pdf, y, fmt.Sprintf("%-14s  %d passengers (%d%%)", row.Port, row.Count, row.Pct))
		y += 6
	}

	y += 4
	drawTitle(pdf, y, "Age groups")
	y += 10
	for _, row := range report.ByAgeGroup(t) {
		drawLine(pdf, y, fmt.Sprintf("%-22s  %d/%d survived (%d%%)", row.Group, row.Survived, row.Total, row.Pct))
		y += 6
	}

	return pdf.Output(output)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
