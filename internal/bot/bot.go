// Package bot adapts the telegram transport onto the mood tracking core.
package bot

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/VolentCry/Your-Daily-Helper-Bot/internal"
	"github.com/VolentCry/Your-Daily-Helper-Bot/internal/chart"
	"github.com/VolentCry/Your-Daily-Helper-Bot/internal/mood"
	"github.com/VolentCry/Your-Daily-Helper-Bot/internal/service"
	"github.com/VolentCry/Your-Daily-Helper-Bot/internal/storage"
)

type Bot struct {
	api      *tgbotapi.BotAPI
	store    storage.MoodRepository
	renderer *chart.Renderer
	ownerID  int64
	loc      *time.Location
	logger   internal.Logger
}

func New(token string, ownerID int64, loc *time.Location, store storage.MoodRepository, renderer *chart.Renderer, logger internal.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("bot: connecting to telegram: %w", err)
	}
	logger.Infof("bot: authorized as @%s", api.Self.UserName)
	return &Bot{
		api:      api,
		store:    store,
		renderer: renderer,
		ownerID:  ownerID,
		loc:      loc,
		logger:   logger,
	}, nil
}

// Run polls for updates until the context is canceled. All handling is
// sequential; the store only ever sees one writer.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update := <-updates:
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.Message != nil:
		b.handleMessage(update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	}
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	if msg.Chat.ID != b.ownerID {
		b.logger.Warnf("bot: refused chat %d", msg.Chat.ID)
		b.reply(msg.Chat.ID, "⛔️ You are not allowed to use this bot.", nil)
		return
	}
	switch msg.Command() {
	case "start":
		text := fmt.Sprintf("👋 Hi, %s!\nI am your personal assistant. How can I help?", msg.From.FirstName)
		b.reply(msg.Chat.ID, text, mainMenuKeyboard())
	case "menu":
		b.reply(msg.Chat.ID, "Menu:", mainMenuKeyboard())
	case "week":
		b.reply(msg.Chat.ID, service.FormatWeekMessage(time.Now().In(b.loc)), mainMenuKeyboard())
	}
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil || cb.Message.Chat.ID != b.ownerID {
		b.answer(cb.ID, "Not allowed.")
		return
	}

	event, err := ParseCallback(cb.Data, time.Now().In(b.loc))
	if err != nil {
		b.logger.Errorf("bot: %v", err)
		b.answer(cb.ID, "Unknown action.")
		return
	}

	chatID := cb.Message.Chat.ID
	messageID := cb.Message.MessageID

	switch ev := event.(type) {
	case ShowMoodMenu:
		b.edit(chatID, messageID, "How are you feeling today?", moodKeyboard())
		b.answer(cb.ID, "")

	case RecordMood:
		b.recordMood(ctx, cb, ev.Category)

	case ShowPeriodMenu:
		b.showPeriodMenu(ctx, chatID, messageID, 0)
		b.answer(cb.ID, "")

	case Paginate:
		b.showPeriodMenu(ctx, chatID, messageID, ev.Page)
		b.answer(cb.ID, "")

	case SelectPeriod:
		b.answer(cb.ID, "Generating your chart...")
		b.sendReport(ctx, chatID, messageID, ev.Window)

	case ShowWeekNumber:
		b.reply(chatID, service.FormatWeekMessage(time.Now().In(b.loc)), mainMenuKeyboard())
		b.answer(cb.ID, "")
	}
}

func (b *Bot) recordMood(ctx context.Context, cb *tgbotapi.CallbackQuery, category int) {
	cat, _ := mood.Get(category)
	if _, err := b.store.Append(ctx, category); err != nil {
		b.logger.Errorf("bot: failed to record mood: %v", err)
		b.edit(cb.Message.Chat.ID, cb.Message.MessageID, "Could not save your mood, try again later.", mainMenuKeyboard())
		b.answer(cb.ID, "")
		return
	}
	b.logger.Infof("bot: recorded mood %q", cat.Label)

	b.edit(cb.Message.Chat.ID, cb.Message.MessageID,
		fmt.Sprintf("Mood '<b>%s</b>' recorded!\nThank you! ✨", cat.Label), nil)
	b.answer(cb.ID, "Recorded: "+cat.Label)
	b.reply(cb.Message.Chat.ID, "What next?", mainMenuKeyboard())
}

func (b *Bot) showPeriodMenu(ctx context.Context, chatID int64, messageID, pageIndex int) {
	entries, err := b.store.AllEntries(ctx)
	if err != nil {
		b.logger.Errorf("bot: failed to load mood history: %v", err)
		b.edit(chatID, messageID, "Could not load your mood history.", mainMenuKeyboard())
		return
	}
	months := service.AvailableMonths(entries)
	page := service.PaginateMonths(months, service.MenuPageSize, pageIndex)
	b.edit(chatID, messageID, "Pick a period for your mood chart:", periodKeyboard(page))
}

func (b *Bot) sendReport(ctx context.Context, chatID int64, messageID int, window internal.ReportWindow) {
	entries, err := b.store.AllEntries(ctx)
	if err != nil {
		b.logger.Errorf("bot: failed to load mood history: %v", err)
		b.edit(chatID, messageID, "Could not load your mood history.", mainMenuKeyboard())
		return
	}

	counts := service.Aggregate(entries, window)
	path, err := b.renderer.Render(window, counts)
	if err != nil {
		b.logger.Errorf("bot: chart failed for %s: %v", window.Key, err)
		path = ""
	}
	if path == "" {
		b.edit(chatID, messageID,
			fmt.Sprintf("No data to chart for <b>%s</b>.", window.Title()), mainMenuKeyboard())
		return
	}

	caption := fmt.Sprintf("Your mood for <b>%s</b>\n\n%s", window.Title(), chart.Legend(counts))
	if err := b.SendPhoto(chatID, path, caption); err != nil {
		b.logger.Errorf("bot: failed to send chart: %v", err)
		return
	}
	if _, err := b.api.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		b.logger.Warnf("bot: failed to delete menu message: %v", err)
	}
}

// SendText delivers a plain HTML-formatted message. Also used by the
// scheduled dispatcher.
func (b *Bot) SendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	_, err := b.api.Send(msg)
	return err
}

// SendPhoto delivers an image artifact from disk with a caption.
func (b *Bot) SendPhoto(chatID int64, path, caption string) error {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(path))
	photo.Caption = caption
	photo.ParseMode = tgbotapi.ModeHTML
	photo.ReplyMarkup = mainMenuKeyboard()
	_, err := b.api.Send(photo)
	return err
}

func (b *Bot) reply(chatID int64, text string, markup interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if markup != nil {
		msg.ReplyMarkup = markup
	}
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Errorf("bot: failed to send message: %v", err)
	}
}

// edit rewrites a previously sent message in place; a nil markup drops the
// keyboard.
func (b *Bot) edit(chatID int64, messageID int, text string, markup interface{}) {
	var cfg tgbotapi.EditMessageTextConfig
	if kb, ok := markup.(tgbotapi.InlineKeyboardMarkup); ok {
		cfg = tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, kb)
	} else {
		cfg = tgbotapi.NewEditMessageText(chatID, messageID, text)
	}
	cfg.ParseMode = tgbotapi.ModeHTML
	if _, err := b.api.Send(cfg); err != nil {
		b.logger.Errorf("bot: failed to edit message: %v", err)
	}
}

func (b *Bot) answer(callbackID, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		b.logger.Warnf("bot: failed to answer callback: %v", err)
	}
}
