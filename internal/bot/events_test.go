package bot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VolentCry/Your-Daily-Helper-Bot/internal"
)

var parseNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.Local)

func TestParseCallbackMenuButtons(t *testing.T) {
	ev, err := ParseCallback("record_mood", parseNow)
	require.NoError(t, err)
	assert.IsType(t, ShowMoodMenu{}, ev)

	ev, err = ParseCallback("plot_of_mood", parseNow)
	require.NoError(t, err)
	assert.IsType(t, ShowPeriodMenu{}, ev)

	ev, err = ParseCallback("plot_back", parseNow)
	require.NoError(t, err)
	assert.IsType(t, ShowPeriodMenu{}, ev)

	ev, err = ParseCallback("week_cnt", parseNow)
	require.NoError(t, err)
	assert.IsType(t, ShowWeekNumber{}, ev)
}

func TestParseCallbackMood(t *testing.T) {
	ev, err := ParseCallback("mood_7", parseNow)
	require.NoError(t, err)
	assert.Equal(t, RecordMood{Category: 7}, ev)
}

func TestParseCallbackMoodOutOfRange(t *testing.T) {
	_, err := ParseCallback("mood_99", parseNow)
	assert.ErrorIs(t, err, internal.ErrInvalidCategory)

	_, err = ParseCallback("mood_x", parseNow)
	assert.Error(t, err)
}

func TestParseCallbackWeekPeriod(t *testing.T) {
	ev, err := ParseCallback("plot_week", parseNow)
	require.NoError(t, err)

	sel, ok := ev.(SelectPeriod)
	require.True(t, ok)
	assert.Equal(t, "week", sel.Window.Key)
	assert.Equal(t, parseNow, sel.Window.End)
}

func TestParseCallbackMonthPeriod(t *testing.T) {
	ev, err := ParseCallback("plot_month_2024-03", parseNow)
	require.NoError(t, err)

	sel, ok := ev.(SelectPeriod)
	require.True(t, ok)
	assert.Equal(t, "month_2024-03", sel.Window.Key)
	assert.Equal(t, "March 2024", sel.Window.Title())
}

func TestParseCallbackPagination(t *testing.T) {
	ev, err := ParseCallback("plot_page_2", parseNow)
	require.NoError(t, err)
	assert.Equal(t, Paginate{Page: 2}, ev)

	_, err = ParseCallback("plot_page_two", parseNow)
	assert.Error(t, err)
}

func TestParseCallbackUnknown(t *testing.T) {
	for _, data := range []string{"", "weather", "plot_", "mood_"} {
		_, err := ParseCallback(data, parseNow)
		assert.Error(t, err, "payload %q", data)
	}
}

func TestParseCallbackMonthPeriodKeepsLocation(t *testing.T) {
	yekt := time.FixedZone("YEKT", 5*60*60)
	ev, err := ParseCallback("plot_month_2024-03", parseNow.In(yekt))
	require.NoError(t, err)

	sel, ok := ev.(SelectPeriod)
	require.True(t, ok)
	assert.Equal(t, yekt, sel.Window.Start.Location())
}
