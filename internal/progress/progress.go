package progress

import (
	"sort"
	"time"

	"github.com/dpatel-fit/smart-health-advisor/backend/internal/models"
)

// DateLayout is the calendar date format used by log entries.
const DateLayout = "2006-01-02"

// DailySummary aggregates one user's completed exercises on one date.
// An empty summary (no exercises completed) is a valid state, not an
// error.
type DailySummary struct {
	Date          string               `json:"date"`
	Count         int                  `json:"count"`
	TotalCalories float64              `json:"total_calories"`
	Entries       []models.ActivityLog `json:"entries"`
}

// DayTotal is one point in a weekly trend series.
type DayTotal struct {
	Date          string  `json:"date"`
	TotalCalories float64 `json:"total_calories"`
	ExerciseCount int     `json:"exercise_count"`
}

// Daily reduces log entries to the summary for a single date. Only
// completed entries count.
func Daily(logs []models.ActivityLog, date string) DailySummary {
	s := DailySummary{Date: date}
	for _, l := range logs {
		if l.Date != date || !l.Completed {
			continue
		}
		s.Entries = append(s.Entries, l)
		s.Count++
		s.TotalCalories += l.Calories
	}
	return s
}

// Weekly reduces log entries within [from, to] inclusive into a
// per-date series sorted by date ascending. Dates with no entries are
// absent from the series: the engine does not zero-fill, chart padding
// belongs to the presentation layer.
func Weekly(logs []models.ActivityLog, from, to time.Time) []DayTotal {
	fromStr := from.Format(DateLayout)
	toStr := to.Format(DateLayout)

	byDate := make(map[string]*DayTotal)
	for _, l := range logs {
		if !l.Completed {
			continue
		}
		if l.Date < fromStr || l.Date > toStr {
			continue
		}
		dt, ok := byDate[l.Date]
		if !ok {
			dt = &DayTotal{Date: l.Date}
			byDate[l.Date] = dt
		}
		dt.TotalCalories += l.Calories
		dt.ExerciseCount++
	}

	series := make([]DayTotal, 0, len(byDate))
	for _, dt := range byDate {
		series = append(series, *dt)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date < series[j].Date })
	return series
}

// TrailingWeek returns the window for a weekly summary ending today:
// today minus six days through today, inclusive.
func TrailingWeek(today time.Time) (time.Time, time.Time) {
	return today.AddDate(0, 0, -6), today
}
