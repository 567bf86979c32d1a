// Package history ведёт журнал событий по дням и денормализованные снимки дня.
package history

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fdg312/health-tracker/internal/calendar"
	"github.com/fdg312/health-tracker/internal/state"
)

// MaxDays — верхняя граница окна RecentDays
const MaxDays = 366

// LogEvent добавляет событие в History[dateKey(now)], создавая запись дня
// при необходимости. data сериализуется в JSON; nil означает событие без данных.
func LogEvent(root *state.Root, now time.Time, eventType string, data any) (state.Event, error) {
	var raw json.RawMessage
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return state.Event{}, fmt.Errorf("encode %s event: %w", eventType, err)
		}
		raw = b
	}

	ev := state.Event{
		ID:        uuid.NewString(),
		Timestamp: now,
		Type:      eventType,
		Data:      raw,
	}
	entry := root.Entry(calendar.DateKey(now))
	entry.Events = append(entry.Events, ev)
	return ev, nil
}

// BuildSnapshot строит снимок дня: копии приёмов пищи, добавок и воды
// плюс итоги и число принятых добавок.
func BuildSnapshot(day *state.Day) *state.DaySnapshot {
	if day == nil {
		return nil
	}
	cp := day.Clone()
	return &state.DaySnapshot{
		DateKey:          cp.DateKey,
		Meals:            cp.Meals,
		Supplements:      cp.Supplements,
		WaterEvents:      cp.WaterEvents,
		HydrationMl:      cp.HydrationMl,
		Totals:           state.DailyTotals(cp),
		SupplementsTaken: state.SupplementsTaken(cp),
	}
}

// RefreshSnapshot перезаписывает History[day.DateKey].Snapshot, сохраняя события.
func RefreshSnapshot(root *state.Root, day *state.Day) {
	if day == nil {
		return
	}
	root.Entry(day.DateKey).Snapshot = BuildSnapshot(day)
}

// EmptySnapshot — нулевой снимок для даты без данных
func EmptySnapshot(dateKey string) *state.DaySnapshot {
	return &state.DaySnapshot{
		DateKey:     dateKey,
		Meals:       []state.Meal{},
		Supplements: map[string]state.SupplementEntry{},
		WaterEvents: []int{},
	}
}

// RecentDays возвращает n снимков от старого к новому, заканчивая сегодняшним
// днём. Для каждой даты берётся сохранённый снимок; для сегодняшнего дня без
// снимка строится живой (не сохраняется); иначе нулевой. n ограничено [0, MaxDays].
func RecentDays(root *state.Root, now time.Time, n int) []*state.DaySnapshot {
	n = state.Clamp(n, 0, MaxDays)
	today := calendar.DateKey(now)

	keys := calendar.LastNDates(now, n)
	out := make([]*state.DaySnapshot, 0, len(keys))
	for _, key := range keys {
		if entry, ok := root.History[key]; ok && entry != nil && entry.Snapshot != nil {
			out = append(out, entry.Snapshot.Clone())
			continue
		}
		if key == today && root.Day != nil && root.Day.DateKey == today {
			out = append(out, BuildSnapshot(root.Day))
			continue
		}
		out = append(out, EmptySnapshot(key))
	}
	return out
}

// Events returns a copy of the events logged on dateKey.
func Events(root *state.Root, dateKey string) []state.Event {
	entry, ok := root.History[dateKey]
	if !ok || entry == nil {
		return []state.Event{}
	}
	return entry.Clone().Events
}
