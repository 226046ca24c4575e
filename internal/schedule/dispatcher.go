// Package schedule runs the recurring mood reports against the chat session.
package schedule

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/VolentCry/Your-Daily-Helper-Bot/internal"
	"github.com/VolentCry/Your-Daily-Helper-Bot/internal/chart"
	"github.com/VolentCry/Your-Daily-Helper-Bot/internal/service"
	"github.com/VolentCry/Your-Daily-Helper-Bot/internal/storage"
)

// Notifier is the slice of the chat transport the dispatcher needs.
type Notifier interface {
	SendText(chatID int64, text string) error
	SendPhoto(chatID int64, path, caption string) error
}

type Dispatcher struct {
	cron     *cron.Cron
	loc      *time.Location
	store    storage.MoodRepository
	renderer *chart.Renderer
	notifier Notifier
	ownerID  int64
	logger   internal.Logger

	mu   sync.Mutex
	jobs map[string]cron.EntryID
}

func NewDispatcher(loc *time.Location, store storage.MoodRepository, renderer *chart.Renderer, notifier Notifier, ownerID int64, logger internal.Logger) *Dispatcher {
	return &Dispatcher{
		cron:     cron.New(cron.WithLocation(loc)),
		loc:      loc,
		store:    store,
		renderer: renderer,
		notifier: notifier,
		ownerID:  ownerID,
		logger:   logger,
		jobs:     make(map[string]cron.EntryID),
	}
}

// Register schedules fn under id, replacing any previous registration with
// the same id. Failures inside a run are logged and swallowed; the job stays
// scheduled for its next tick.
func (d *Dispatcher) Register(id, spec string, fn func(context.Context) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if old, ok := d.jobs[id]; ok {
		d.cron.Remove(old)
	}
	entryID, err := d.cron.AddFunc(spec, func() { d.runJob(id, fn) })
	if err != nil {
		return fmt.Errorf("schedule: registering %s: %w", id, err)
	}
	d.jobs[id] = entryID
	d.logger.Infof("schedule: job %s registered (%s)", id, spec)
	return nil
}

func (d *Dispatcher) runJob(id string, fn func(context.Context) error) {
	runID := uuid.NewString()
	defer func() {
		if r := recover(); r != nil {
			d.logger.Errorf("schedule: [run_id=%s] job %s panicked: %v", runID, id, r)
		}
	}()
	d.logger.Infof("schedule: [run_id=%s] job %s fired", runID, id)
	if err := fn(context.Background()); err != nil {
		d.logger.Errorf("schedule: [run_id=%s] job %s failed, waiting for next tick: %v", runID, id, err)
	}
}

func (d *Dispatcher) Start() {
	d.cron.Start()
}

// Stop halts scheduling; the returned context is done once running jobs
// finish.
func (d *Dispatcher) Stop() context.Context {
	return d.cron.Stop()
}

func (d *Dispatcher) RegisterWeeklyReport(spec string) error {
	return d.Register("weekly_mood_report", spec, d.weeklyReport)
}

// RegisterMonthlyReport expects a spec covering days 28-31; the job body
// skips ticks that are not the actual last day of the month, since cron has
// no last-day token.
func (d *Dispatcher) RegisterMonthlyReport(spec string) error {
	return d.Register("monthly_mood_report", spec, d.monthlyReport)
}

func (d *Dispatcher) weeklyReport(ctx context.Context) error {
	window := service.WeekWindow(time.Now().In(d.loc))
	return d.deliverReport(ctx, "💌 <b>Your weekly mood report:</b>", window)
}

func (d *Dispatcher) monthlyReport(ctx context.Context) error {
	now := time.Now().In(d.loc)
	if now.AddDate(0, 0, 1).Month() == now.Month() {
		return nil
	}
	window, err := service.MonthWindow(now.Format("2006-01"), d.loc)
	if err != nil {
		return err
	}
	return d.deliverReport(ctx, "🗓️ <b>Your monthly mood report:</b>", window)
}

// deliverReport runs the aggregate, render, deliver sequence. A render
// failure is logged as an error but reads as "not enough data" to the user,
// same as an empty window.
func (d *Dispatcher) deliverReport(ctx context.Context, header string, window internal.ReportWindow) error {
	entries, err := d.store.AllEntries(ctx)
	if err != nil {
		return fmt.Errorf("loading mood history: %w", err)
	}
	counts := service.Aggregate(entries, window)

	path, err := d.renderer.Render(window, counts)
	if err != nil {
		d.logger.Errorf("schedule: chart failed for %s: %v", window.Key, err)
		path = ""
	}
	if path == "" {
		return d.notifier.SendText(d.ownerID, header+"\n\nNot enough data for this period.")
	}

	if err := d.notifier.SendText(d.ownerID, header); err != nil {
		return fmt.Errorf("sending report header: %w", err)
	}
	caption := fmt.Sprintf("Mood for %s.\n\n%s", window.Title(), chart.Legend(counts))
	if err := d.notifier.SendPhoto(d.ownerID, path, caption); err != nil {
		return fmt.Errorf("sending report chart: %w", err)
	}
	return nil
}
