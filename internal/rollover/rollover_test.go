package rollover

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fdg312/health-tracker/internal/calendar"
	"github.com/fdg312/health-tracker/internal/state"
)

// суббота, неделя 2026-W42
var saturday = time.Date(2026, 10, 17, 21, 0, 0, 0, time.UTC)

func TestApplySameDayIsNoop(t *testing.T) {
	root := state.NewDefault(saturday, true)
	before := root.Clone()

	res := Apply(root, saturday, Options{SeedExampleData: true})
	assert.False(t, res.Changed())
	assert.Equal(t, before, root)
}

func TestApplyDayRolloverArchives(t *testing.T) {
	root := state.NewDefault(saturday, true)
	sunday := calendar.OffsetDays(saturday, 1)

	res := Apply(root, sunday, Options{})
	require.True(t, res.DayRolled)
	assert.False(t, res.WeekRolled, "saturday and sunday share an ISO week")
	assert.Equal(t, "2026-10-17", res.ArchivedDate)

	archived := root.History["2026-10-17"]
	require.NotNil(t, archived)
	require.NotNil(t, archived.Snapshot)
	assert.Equal(t, 750, archived.Snapshot.Totals.Calories)
	assert.Equal(t, 1500, archived.Snapshot.HydrationMl)

	assert.Equal(t, "2026-10-18", root.Day.DateKey)
	assert.Empty(t, root.Day.Meals)
	assert.Empty(t, root.Day.WaterEvents)
	assert.Zero(t, root.Day.HydrationMl)
	require.Len(t, root.Day.Supplements, 3)
	for name, s := range root.Day.Supplements {
		assert.False(t, s.Taken, name)
	}
	assert.Equal(t, "2000 IU", root.Day.Supplements["Vitamin D3"].Dose)
	assert.Len(t, root.Week.CompletedWorkouts, 2)
}

func TestApplyPreservesEventsOfArchivedDay(t *testing.T) {
	root := state.NewDefault(saturday, false)
	entry := root.Entry("2026-10-17")
	entry.Events = append(entry.Events, state.Event{ID: "e1", Timestamp: saturday, Type: state.EventWaterAdd})

	Apply(root, calendar.OffsetDays(saturday, 1), Options{})
	require.Len(t, root.History["2026-10-17"].Events, 1)
	assert.NotNil(t, root.History["2026-10-17"].Snapshot)
}

func TestApplyWeekRolloverDropsWorkouts(t *testing.T) {
	root := state.NewDefault(saturday, true)
	monday := calendar.OffsetDays(saturday, 2)

	res := Apply(root, monday, Options{})
	require.True(t, res.WeekRolled)
	assert.Equal(t, "2026-W43", root.Week.WeekKey)
	assert.Empty(t, root.Week.CompletedWorkouts)

	// повторный вызов ничего не меняет
	again := Apply(root, monday, Options{})
	assert.False(t, again.Changed())
}

func TestApplyMissingDayAndWeek(t *testing.T) {
	t.Run("seeded", func(t *testing.T) {
		root := &state.Root{History: map[string]*state.HistoryEntry{}}
		res := Apply(root, saturday, Options{SeedExampleData: true})
		require.True(t, res.DayRolled)
		require.True(t, res.WeekRolled)
		assert.Empty(t, res.ArchivedDate)
		assert.Len(t, root.Day.Supplements, 3)
		assert.Zero(t, state.SupplementsTaken(root.Day))
		assert.Equal(t, "2026-W42", root.Week.WeekKey)
	})

	t.Run("not seeded", func(t *testing.T) {
		root := &state.Root{History: map[string]*state.HistoryEntry{}}
		Apply(root, saturday, Options{})
		assert.Empty(t, root.Day.Supplements)
		assert.Empty(t, root.History)
	})
}

func TestApplyAfterLongGap(t *testing.T) {
	root := state.NewDefault(saturday, true)
	later := calendar.OffsetDays(saturday, 30)

	res := Apply(root, later, Options{})
	assert.True(t, res.DayRolled)
	assert.True(t, res.WeekRolled)
	// промежуточные дни не создаются
	assert.Len(t, root.History, 1)
}
