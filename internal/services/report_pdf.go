package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"tripplanner/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ReportPDF renders the trip budget report as an A4 PDF.
func (s BudgetService) ReportPDF(ctx context.Context, userID, tripID int64) ([]byte, string, error) {
	rep, err := s.TripReport(ctx, userID, tripID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "budget", "report_pdf", fmt.Sprintf("trip_id=%d", tripID))
	return buildBudgetReportPDF(rep, time.Now())
}

func buildBudgetReportPDF(r TripBudgetReport, generatedAt time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Trip Budget Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRIP BUDGET REPORT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Trip           : %s", safe(r.Title, "-")),
		fmt.Sprintf("Dates          : %s to %s", safe(deref(r.StartDate), "-"), safe(deref(r.EndDate), "-")),
		fmt.Sprintf("Duration       : %d day(s)", r.DurationDays),
		fmt.Sprintf("Planned budget : %s", money(r.PlannedBudget)),
		fmt.Sprintf("Spent          : %s", money(r.Spent.TotalAmount)),
		fmt.Sprintf("Remaining      : %s", money(r.Remaining)),
		fmt.Sprintf("Generated      : %s", utils.FormatDateTime(generatedAt)),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	if r.Estimate != nil {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, fmt.Sprintf("Estimate (%s comfort): %s", r.Estimate.ComfortLevel, money(r.Estimate.TotalBudget)))
		pdf.Ln(8)
	}

	pdf.SetFont("Helvetica", "B", 11)
	widths := []float64{50, 45, 45, 45}
	for i, h := range []string{"Category", "Estimated", "Spent", "Variance"} {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 11)
	for _, c := range r.Categories {
		pdf.CellFormat(widths[0], 7, c.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, money(c.Estimated), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 7, money(c.Spent), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, money(c.Variance), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Estimates use current city prices and are indicative only.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("BUDGET_%d_%s.pdf", r.TripID, safeFilenamePart(r.Title))
	return buf.Bytes(), filename, nil
}

func money(v float64) string {
	return utils.FormatINR(utils.RoundToInt(v))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
