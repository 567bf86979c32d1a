package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/fdg312/health-tracker/internal/state"
)

// pdfTableRows — сколько последних дней попадает в таблицу PDF
const pdfTableRows = 14

// Generator generates PDF/CSV reports from day snapshots
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders in according to format.
func (g *Generator) Generate(format string, in Input) ([]byte, error) {
	switch format {
	case FormatPDF:
		return g.generatePDF(in)
	case FormatCSV:
		return g.generateCSV(in)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, format)
	}
}

func (g *Generator) generateCSV(in Input) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"date", "calories", "protein_g", "carbs_g", "fat_g", "hydration_ml",
		"water_events", "supplements_taken", "supplements_total", "calories_pct", "hydration_pct",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, d := range in.Days {
		if d == nil {
			continue
		}
		row := []string{
			d.DateKey,
			strconv.Itoa(d.Totals.Calories),
			strconv.Itoa(d.Totals.ProteinG),
			strconv.Itoa(d.Totals.CarbsG),
			strconv.Itoa(d.Totals.FatG),
			strconv.Itoa(d.HydrationMl),
			strconv.Itoa(len(d.WaterEvents)),
			strconv.Itoa(d.SupplementsTaken),
			strconv.Itoa(len(d.Supplements)),
			strconv.Itoa(state.Progress(d.Totals.Calories, in.Goals.Calories)),
			strconv.Itoa(state.Progress(d.HydrationMl, in.Goals.HydrationMl)),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) generatePDF(in Input) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	const font = "Helvetica"

	pdf.AddPage()
	pdf.SetFont(font, "B", 16)
	pdf.Cell(0, 10, "Health Tracker Report")
	pdf.Ln(8)

	pdf.SetFont(font, "", 12)
	from, to := period(in.Days)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s - %s", from, to))
	pdf.Ln(6)
	if !in.GeneratedAt.IsZero() {
		pdf.SetFont(font, "", 9)
		pdf.Cell(0, 6, "Generated: "+in.GeneratedAt.Format("2006-01-02 15:04"))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	summary := Summarize(in)

	pdf.SetFont(font, "B", 14)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)

	pdf.SetFont(font, "", 10)
	lines := []string{
		fmt.Sprintf("Average calories: %s (goal %d kcal)", formatInt(summary.AvgCalories), in.Goals.Calories),
		fmt.Sprintf("Average protein: %s (goal %d g)", formatInt(summary.AvgProteinG), in.Goals.ProteinG),
		fmt.Sprintf("Average hydration: %s (goal %d mL)", formatInt(summary.AvgHydrationMl), in.Goals.HydrationMl),
		fmt.Sprintf("Days calorie goal met: %d of %d", summary.DaysCaloriesMet, summary.Days),
		fmt.Sprintf("Days hydration goal met: %d of %d", summary.DaysHydrationMet, summary.Days),
		fmt.Sprintf("Supplement doses taken: %d", summary.SupplementsTaken),
		fmt.Sprintf("Workouts this week: %d of %d (%d min)", summary.Workouts, in.Goals.WeeklyWorkouts, summary.WorkoutMinutes),
	}
	for _, l := range lines {
		pdf.Cell(0, 6, l)
		pdf.Ln(5)
	}
	pdf.Ln(7)

	pdf.SetFont(font, "B", 14)
	pdf.Cell(0, 8, "Recent days")
	pdf.Ln(8)
	g.drawDaysTable(pdf, in)

	if in.Week != nil && len(in.Week.CompletedWorkouts) > 0 {
		pdf.Ln(8)
		pdf.SetFont(font, "B", 14)
		pdf.Cell(0, 8, "Workouts "+in.Week.WeekKey)
		pdf.Ln(8)
		pdf.SetFont(font, "", 10)
		for _, w := range in.Week.CompletedWorkouts {
			pdf.Cell(0, 6, tr(fmt.Sprintf("%s  %s  %d min", w.DisplayDate, w.Name, w.Minutes)))
			pdf.Ln(5)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *Generator) drawDaysTable(pdf *gofpdf.Fpdf, in Input) {
	days := in.Days
	if len(days) > pdfTableRows {
		days = days[len(days)-pdfTableRows:]
	}

	pdf.SetFont("Helvetica", "", 8)
	header := []string{"Date", "kcal", "Protein", "Carbs", "Fat", "Water mL", "Supps", "kcal %"}
	widths := []float64{25, 20, 20, 20, 20, 22, 18, 18}
	for i, h := range header {
		pdf.CellFormat(widths[i], 6, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	for _, d := range days {
		if d == nil {
			continue
		}
		cells := []string{
			d.DateKey,
			strconv.Itoa(d.Totals.Calories),
			strconv.Itoa(d.Totals.ProteinG),
			strconv.Itoa(d.Totals.CarbsG),
			strconv.Itoa(d.Totals.FatG),
			strconv.Itoa(d.HydrationMl),
			fmt.Sprintf("%d/%d", d.SupplementsTaken, len(d.Supplements)),
			strconv.Itoa(state.Progress(d.Totals.Calories, in.Goals.Calories)),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, c, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// Summarize считает средние по дням, где есть данные.
func Summarize(in Input) Summary {
	var s Summary
	var totalCal, totalProtein, countMeals int
	var totalWater, countWater int

	for _, d := range in.Days {
		if d == nil {
			continue
		}
		s.Days++
		if len(d.Meals) > 0 {
			totalCal += d.Totals.Calories
			totalProtein += d.Totals.ProteinG
			countMeals++
		}
		if len(d.WaterEvents) > 0 {
			totalWater += d.HydrationMl
			countWater++
		}
		if state.Progress(d.Totals.Calories, in.Goals.Calories) >= 100 {
			s.DaysCaloriesMet++
		}
		if state.Progress(d.HydrationMl, in.Goals.HydrationMl) >= 100 {
			s.DaysHydrationMet++
		}
		s.SupplementsTaken += d.SupplementsTaken
	}

	if countMeals > 0 {
		cal := totalCal / countMeals
		protein := totalProtein / countMeals
		s.AvgCalories = &cal
		s.AvgProteinG = &protein
	}
	if countWater > 0 {
		water := totalWater / countWater
		s.AvgHydrationMl = &water
	}
	if in.Week != nil {
		s.Workouts = len(in.Week.CompletedWorkouts)
		for _, w := range in.Week.CompletedWorkouts {
			s.WorkoutMinutes += w.Minutes
		}
	}
	return s
}

func period(days []*state.DaySnapshot) (from, to string) {
	if len(days) == 0 {
		return "-", "-"
	}
	return days[0].DateKey, days[len(days)-1].DateKey
}

func formatInt(val *int) string {
	if val == nil {
		return "no data"
	}
	return strconv.Itoa(*val)
}
