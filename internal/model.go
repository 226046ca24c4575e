package internal

import "time"

// MoodEntry is one row of the append-only mood ledger. Entries are never
// updated or deleted; reporting always works from the full history.
type MoodEntry struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Category  int       `json:"category"`
}

// ReportWindow is a half-open interval [Start, End) over which mood entries
// are aggregated, plus the labels shown to the user.
type ReportWindow struct {
	Start time.Time
	End   time.Time
	Label string
	Year  string // empty for rolling windows
	Key   string // stable identifier used in artifact names, e.g. "week", "month_2024-03"
}

func (w ReportWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

func (w ReportWindow) Title() string {
	if w.Year == "" {
		return w.Label
	}
	return w.Label + " " + w.Year
}

// Page is one page of the period-selection menu.
type Page struct {
	Months   []string // month keys on this page, "YYYY-MM"
	WithWeek bool     // rolling-week pseudo-item, first page only
	Index    int
	HasPrev  bool
	HasNext  bool
}
