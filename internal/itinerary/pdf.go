package itinerary

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// RenderPDF renders generated itinerary text as a simple A4 document and
// returns the raw bytes; nothing touches the filesystem.
func RenderPDF(req Request, itinerary string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()
	// Core fonts are cp1252; translate UTF-8 output (°C and friends).
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Header bar
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 24, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(20, 7)
	pdf.CellFormat(170, 8, "Tripsmith", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(20, 15)
	pdf.CellFormat(170, 5, "AI travel itinerary", "", 1, "L", false, 0, "")

	pdf.SetY(30)
	pdf.SetTextColor(0, 0, 0)

	// Trip overview
	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(45, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(125, 7, tr(value), "", 1, "L", false, 0, "")
	}
	row("Destination", req.Country)
	row("Arrival", req.ArrivalDate.Format("02 Jan 2006"))
	row("Duration", fmt.Sprintf("%d days", req.Days))
	interests := defaultInterests
	if len(req.Interests) > 0 {
		interests = strings.Join(req.Interests, ", ")
	}
	row("Interests", interests)
	pdf.Ln(4)

	// Itinerary body; day headings get their own weight.
	for _, line := range strings.Split(itinerary, "\n") {
		trimmed := strings.TrimSpace(line)
		if dayLineRe.MatchString(trimmed) {
			pdf.Ln(2)
			pdf.SetFont("Helvetica", "B", 11)
		} else {
			pdf.SetFont("Helvetica", "", 10)
		}
		pdf.MultiCell(170, 5, tr(trimmed), "", "L", false)
	}

	// Footer
	pdf.SetY(-18)
	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8,
		tr(fmt.Sprintf("Generated %s - climate figures are historical averages, not forecasts",
			time.Now().UTC().Format("02 Jan 2006"))),
		"", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output failed: %w", err)
	}
	return buf.Bytes(), nil
}
