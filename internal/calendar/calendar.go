// Package calendar содержит чистую арифметику дат: ключ дня, ключ ISO-недели,
// смещение по дням и формат отображения.
package calendar

import (
	"fmt"
	"time"
)

const (
	// DateLayout — формат ключа дня (YYYY-MM-DD)
	DateLayout = "2006-01-02"
	// DisplayLayout — формат даты для отображения (DD.MM.YYYY)
	DisplayLayout = "02.01.2006"
)

// Clock возвращает текущий момент. Часовой пояс результата определяет границу дня.
type Clock interface {
	Now() time.Time
}

// SystemClock — реальные часы в заданном часовом поясе
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// FixedClock всегда возвращает один и тот же момент. Используется в тестах.
type FixedClock struct {
	T time.Time
}

func (c *FixedClock) Now() time.Time { return c.T }

// Advance сдвигает часы на d.
func (c *FixedClock) Advance(d time.Duration) { c.T = c.T.Add(d) }

// AdvanceDays сдвигает часы на n календарных дней.
func (c *FixedClock) AdvanceDays(n int) { c.T = OffsetDays(c.T, n) }

// DateKey returns the local calendar day of t as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// WeekKey returns the ISO-8601 week of t as YYYY-Www.
func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// OffsetDays shifts t by n calendar days keeping the wall clock.
func OffsetDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DisplayDate formats t as DD.MM.YYYY.
func DisplayDate(t time.Time) string {
	return t.Format(DisplayLayout)
}

// ParseDateKey parses a YYYY-MM-DD key as midnight in loc.
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, key, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q: %w", key, err)
	}
	return t, nil
}

// LastNDates returns n date keys ending at now, oldest first.
func LastNDates(now time.Time, n int) []string {
	if n <= 0 {
		return []string{}
	}
	keys := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		keys = append(keys, DateKey(OffsetDays(now, -i)))
	}
	return keys
}

// LoadLocation resolves a time zone name; empty or "Local" means the process zone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}
