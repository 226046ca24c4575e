package bot

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/VolentCry/Your-Daily-Helper-Bot/internal"
	"github.com/VolentCry/Your-Daily-Helper-Bot/internal/mood"
	"github.com/VolentCry/Your-Daily-Helper-Bot/internal/service"
)

// Event is the closed set of inbound UI actions. Callback payload strings are
// parsed into these once, here at the transport boundary; everything past
// this point switches on the variant, never on string prefixes.
type Event interface {
	isEvent()
}

// ShowMoodMenu opens the mood-selection keyboard.
type ShowMoodMenu struct{}

// RecordMood appends one entry for the chosen category.
type RecordMood struct {
	Category int
}

// ShowPeriodMenu opens the first page of the period-selection keyboard.
type ShowPeriodMenu struct{}

// SelectPeriod requests a chart over the resolved window.
type SelectPeriod struct {
	Window internal.ReportWindow
}

// Paginate moves the period keyboard to another page.
type Paginate struct {
	Page int
}

// ShowWeekNumber replies with the current academic week number.
type ShowWeekNumber struct{}

func (ShowMoodMenu) isEvent()   {}
func (RecordMood) isEvent()     {}
func (ShowPeriodMenu) isEvent() {}
func (SelectPeriod) isEvent()   {}
func (Paginate) isEvent()       {}
func (ShowWeekNumber) isEvent() {}

// ParseCallback maps a raw callback payload onto an Event. The payload scheme
// is mood_<categoryId>, plot_week, plot_month_<YYYY-MM>, plot_page_<n> plus
// the fixed menu buttons. Period windows resolve in now's location.
func ParseCallback(data string, now time.Time) (Event, error) {
	switch {
	case data == "record_mood":
		return ShowMoodMenu{}, nil
	case data == "plot_of_mood" || data == "plot_back":
		return ShowPeriodMenu{}, nil
	case data == "week_cnt":
		return ShowWeekNumber{}, nil
	case data == "plot_week":
		return SelectPeriod{Window: service.WeekWindow(now)}, nil
	case strings.HasPrefix(data, "plot_page_"):
		page, err := strconv.Atoi(strings.TrimPrefix(data, "plot_page_"))
		if err != nil {
			return nil, fmt.Errorf("bot: bad page in %q: %w", data, err)
		}
		return Paginate{Page: page}, nil
	case strings.HasPrefix(data, "plot_month_"):
		window, err := service.MonthWindow(strings.TrimPrefix(data, "plot_month_"), now.Location())
		if err != nil {
			return nil, fmt.Errorf("bot: bad month in %q: %w", data, err)
		}
		return SelectPeriod{Window: window}, nil
	case strings.HasPrefix(data, "mood_"):
		id, err := strconv.Atoi(strings.TrimPrefix(data, "mood_"))
		if err != nil {
			return nil, fmt.Errorf("bot: bad category in %q: %w", data, err)
		}
		if !mood.Valid(id) {
			return nil, internal.ErrInvalidCategory
		}
		return RecordMood{Category: id}, nil
	}
	return nil, fmt.Errorf("bot: unknown callback %q", data)
}
