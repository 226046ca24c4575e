// Package service holds the pure reporting logic: window math, aggregation
// and period-menu pagination. Nothing here touches storage, the clock or the
// transport; callers pass entries and windows in.
package service

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/VolentCry/Your-Daily-Helper-Bot/internal"
)

// MenuPageSize is how many month buttons fit on one period-menu page. The
// rolling-week pseudo-item on the first page does not consume a slot.
const MenuPageSize = 4

const monthKeyLayout = "2006-01"

// Aggregate counts entries per category inside the half-open window.
// Categories with no entries are absent from the result; callers treat
// absence as zero. An empty map means "no data for this period".
func Aggregate(entries []internal.MoodEntry, window internal.ReportWindow) map[int]int {
	counts := make(map[int]int)
	for _, e := range entries {
		if window.Contains(e.Timestamp) {
			counts[e.Category]++
		}
	}
	return counts
}

// AvailableMonths returns the distinct "YYYY-MM" keys present among the
// entries, most recent first. Months with no entries never appear.
func AvailableMonths(entries []internal.MoodEntry) []string {
	seen := make(map[string]struct{})
	for _, e := range entries {
		seen[e.Timestamp.Format(monthKeyLayout)] = struct{}{}
	}
	months := make([]string, 0, len(seen))
	for key := range seen {
		months = append(months, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months
}

// PaginateMonths slices the month list into a fixed-size page. Out-of-range
// page indices are clamped.
func PaginateMonths(months []string, pageSize, page int) internal.Page {
	totalPages := (len(months) + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 0 {
		page = 0
	}
	if page > totalPages-1 {
		page = totalPages - 1
	}
	start := page * pageSize
	end := start + pageSize
	if start > len(months) {
		start = len(months)
	}
	if end > len(months) {
		end = len(months)
	}
	return internal.Page{
		Months:   months[start:end],
		WithWeek: page == 0,
		Index:    page,
		HasPrev:  page > 0,
		HasNext:  page < totalPages-1,
	}
}

// MonthWindow builds the calendar-month window [YYYY-MM-01, next-month-01)
// for a month key, with bounds in the given location.
func MonthWindow(key string, loc *time.Location) (internal.ReportWindow, error) {
	start, err := time.ParseInLocation(monthKeyLayout, key, loc)
	if err != nil {
		return internal.ReportWindow{}, fmt.Errorf("service: bad month key %q: %w", key, err)
	}
	return internal.ReportWindow{
		Start: start,
		End:   start.AddDate(0, 1, 0),
		Label: start.Month().String(),
		Year:  strconv.Itoa(start.Year()),
		Key:   "month_" + key,
	}, nil
}

// WeekWindow builds the rolling 7-day window [now-7d, now).
func WeekWindow(now time.Time) internal.ReportWindow {
	return internal.ReportWindow{
		Start: now.AddDate(0, 0, -7),
		End:   now,
		Label: "last week",
		Key:   "week",
	}
}

// MonthLabel renders a month key as button text, e.g. "March 2024".
func MonthLabel(key string) string {
	t, err := time.Parse(monthKeyLayout, key)
	if err != nil {
		return key
	}
	return fmt.Sprintf("%s %d", t.Month(), t.Year())
}
