package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/VolentCry/Your-Daily-Helper-Bot/internal"
	"github.com/VolentCry/Your-Daily-Helper-Bot/internal/mood"
	"github.com/VolentCry/Your-Daily-Helper-Bot/internal/service"
)

func mainMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📝 Record mood", "record_mood"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📈 Mood chart", "plot_of_mood"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📅 Week number", "week_cnt"),
		),
	)
}

func moodKeyboard() tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, mood.Count)
	for _, cat := range mood.All() {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(cat.Label, fmt.Sprintf("mood_%d", cat.ID)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// periodKeyboard lays out one page of the period menu: the rolling-week
// button on the first page, one button per month key, then navigation.
func periodKeyboard(page internal.Page) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	if page.WithWeek {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Last week", "plot_week"),
		))
	}
	for _, key := range page.Months {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(service.MonthLabel(key), "plot_month_"+key),
		))
	}
	var nav []tgbotapi.InlineKeyboardButton
	if page.HasPrev {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("◀️ Back", fmt.Sprintf("plot_page_%d", page.Index-1)))
	}
	if page.HasNext {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("Next ▶️", fmt.Sprintf("plot_page_%d", page.Index+1)))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
