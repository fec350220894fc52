package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/dentaltrip/internal/domain"
	"github.com/Domenick1991/dentaltrip/internal/estimate"
	"github.com/jung-kurt/gofpdf"
)

const disclaimer = "This is an estimate, not a quote or a booking. Flight and hotel prices change often; " +
	"the clinic will confirm the treatment plan and final costs after your consultation."

// EstimatePDF renders the session's current breakdown as an A4 document.
func EstimatePDF(s *estimate.Session, generated time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(v string) string {
		return tr(strings.ReplaceAll(v, "→", "-"))
	}

	// Header
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(170, 10, "Treatment Trip Cost Estimate", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, text(fmt.Sprintf("Reference %s  |  Generated %s", s.ID, generated.UTC().Format("02 Jan 2006, 15:04 UTC"))), "", 1, "L", false, 0, "")
	pdf.SetY(36)
	pdf.SetTextColor(0, 0, 0)

	section := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+text(title), "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}
	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, text(label), "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, text(value), "", 1, "L", false, 0, "")
	}
	note := func(v string) {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(110, 110, 110)
		pdf.MultiCell(170, 5, text(v), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
	}

	b := s.Breakdown

	section("Trip Overview")
	row("Departure", fmt.Sprintf("%s (%s)", s.Trip.Departure, s.DepartureCode))
	row("Destination", s.Trip.Destination)
	row("Outbound", orDash(s.Trip.OutboundDate))
	row("Return", orDash(s.Trip.ReturnDate))
	row("Nights", fmt.Sprintf("%d", b.Nights))
	if t, err := domain.LookupTreatment(s.Trip.Treatment); err == nil {
		row("Treatment", t.Label)
	}
	row("Accommodation level", s.Trip.Accommodation)
	pdf.Ln(4)

	section("Flight")
	switch f := s.SelectedFlight; {
	case f == nil:
		note("No flight price could be found. The flight line is counted as $0.")
	case f.PriceOnly() || f.Detail == nil:
		row("Round-trip price", money(f.Price))
		note("Only a price was available for this route; carrier and schedule details were not returned.")
	default:
		if airlines := f.Detail.Airlines(); len(airlines) > 0 {
			row("Airline", strings.Join(airlines, ", "))
		}
		row("Route", f.Detail.Route())
		row("Duration", f.Detail.DurationText())
		row("Stops", stops(len(f.Detail.Layovers)))
		row("Round-trip price", money(f.Price))
	}
	pdf.Ln(4)

	section("Hotel")
	if h := s.SelectedHotel; h != nil {
		row("Hotel", h.Name)
		if h.Location != "" {
			row("Location", h.Location)
		}
		if h.Rating != nil {
			row("Rating", fmt.Sprintf("%.1f / 5 (%d reviews)", *h.Rating, h.ReviewsOrZero()))
		}
		row("Nightly rate", money(b.NightlyRate))
	} else if s.HotelPriced() {
		row("Nightly rate", money(b.NightlyRate)+" (cheapest available)")
	} else {
		row("Nightly rate", money(b.NightlyRate))
		note(fmt.Sprintf("Flat %s rate; no live hotel prices were available.", s.Trip.Accommodation))
	}
	pdf.Ln(4)

	section("Cost Estimate")
	row("Treatment", money(b.Treatment))
	row("Accommodation", fmt.Sprintf("%s (%d x %s)", money(b.Accommodation), b.Nights, money(b.NightlyRate)))
	row("Flight", money(b.Flight))
	pdf.SetDrawColor(13, 24, 37)
	pdf.Line(20, pdf.GetY()+1, 190, pdf.GetY()+1)
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(55, 9, "Total", "", 0, "L", false, 0, "")
	pdf.CellFormat(115, 9, money(b.Total), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	if warnings := s.Warnings(); len(warnings) > 0 {
		section("Notes")
		for _, w := range warnings {
			note("- " + w)
		}
		pdf.Ln(2)
	}

	pdf.SetFillColor(255, 248, 225)
	pdf.SetTextColor(130, 90, 20)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.MultiCell(170, 4, text(disclaimer), "", "C", true)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render estimate pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func money(v float64) string {
	return fmt.Sprintf("$%.0f", v)
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func stops(n int) string {
	switch n {
	case 0:
		return "Direct"
	case 1:
		return "1 stop"
	default:
		return fmt.Sprintf("%d stops", n)
	}
}
