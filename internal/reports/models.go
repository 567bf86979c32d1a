package reports

import (
	"errors"
	"time"

	"github.com/fdg312/health-tracker/internal/state"
)

const (
	FormatPDF = "pdf"
	FormatCSV = "csv"
)

var (
	ErrInvalidFormat = errors.New("invalid format")
	ErrRangeTooLarge = errors.New("day range too large")
)

// Request — параметры отчёта
type Request struct {
	Format string
	Days   int
	// Upload кладёт отчёт в объектное хранилище и возвращает ссылку
	Upload bool
}

// Input — данные, из которых строится отчёт
type Input struct {
	Goals       state.Goals
	Days        []*state.DaySnapshot
	Week        *state.Week
	GeneratedAt time.Time
}

// Report — готовый отчёт
type Report struct {
	Format      string
	Filename    string
	From        string
	To          string
	Data        []byte
	SizeBytes   int64
	ObjectKey   string
	DownloadURL string
}

// Summary — средние значения за период
type Summary struct {
	Days             int
	AvgCalories      *int
	AvgProteinG      *int
	AvgHydrationMl   *int
	DaysCaloriesMet  int
	DaysHydrationMet int
	SupplementsTaken int
	Workouts         int
	WorkoutMinutes   int
}

func contentType(format string) string {
	if format == FormatCSV {
		return "text/csv"
	}
	return "application/pdf"
}
