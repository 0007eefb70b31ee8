package sync

import (
	"context"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/yorutsuke/ledgersync/internal/models"
)

const (
	// DefaultDebounce is the quiet period after the last mutation before
	// an automatic sync fires
	DefaultDebounce = 3 * time.Second

	// retryBase is the first backoff delay after a failed automatic pass
	retryBase = 1 * time.Second

	// retryCap bounds the exponential backoff between attempts
	retryCap = 60 * time.Second

	// retryMax is the number of backoff retries per automatic pass
	retryMax = 5
)

type eventKind int

const (
	eventMutation eventKind = iota
	eventReconnect
	eventManual
	eventDebounceFired
	eventRetryFired
)

type triggerEvent struct {
	kind eventKind
	gen  uint64
}

// AutoTrigger converts app-level signals (record mutations, network
// reconnects, explicit user requests) into sync passes. Mutations are
// debounced so a burst of edits costs one pass; reconnects and manual
// requests bypass the debounce and fire immediately.
//
// Продюсеры (Notify*/TriggerNow) никогда не блокируются: при переполненном
// канале событие отбрасывается, коалесценция в контроллере все равно
// гарантирует не больше одного прохода за раз.
type AutoTrigger struct {
	controller *Controller
	logger     *slog.Logger
	events     chan triggerEvent
	debounce   time.Duration

	// Доступ только из цикла Run. Таймеры дебаунса и повтора - два
	// одно-слотовых расписания: взведение одного гасит другой, так что
	// запланированный проход всегда ровно один.
	timer      *time.Timer
	gen        uint64
	retryTimer *time.Timer
	retryGen   uint64
	backoff    retry.Backoff
}

// NewAutoTrigger creates a new auto trigger over the controller
func NewAutoTrigger(controller *Controller, debounce time.Duration, logger *slog.Logger) *AutoTrigger {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &AutoTrigger{
		controller: controller,
		logger:     logger,
		events:     make(chan triggerEvent, 16),
		debounce:   debounce,
	}
}

// NotifyMutation signals that a local record changed. Non-blocking.
func (t *AutoTrigger) NotifyMutation() {
	t.send(triggerEvent{kind: eventMutation})
}

// NotifyReconnect signals that network connectivity returned. Non-blocking.
func (t *AutoTrigger) NotifyReconnect() {
	t.send(triggerEvent{kind: eventReconnect})
}

// TriggerNow requests an immediate sync pass. Non-blocking.
func (t *AutoTrigger) TriggerNow() {
	t.send(triggerEvent{kind: eventManual})
}

func (t *AutoTrigger) send(ev triggerEvent) {
	select {
	case t.events <- ev:
	default:
		// Канал полон - проход уже назревает, сигнал избыточен
	}
}

// Run consumes trigger events until ctx is cancelled. Single consumer:
// таймеры и счетчики поколений трогает только эта горутина. Сам проход
// тоже короткий: ожидания бэкоффа живут в таймере, а не в цикле, поэтому
// ручной запуск и реконнект обрабатываются немедленно даже между
// повторами провалившегося автоматического прохода.
func (t *AutoTrigger) Run(ctx context.Context, owner string, dateRange *models.DateRange) {
	defer t.stopDebounce()
	defer t.stopRetry()

	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-t.events:
			switch ev.kind {
			case eventMutation:
				// Каждая мутация перезапускает одно-слотовый таймер:
				// пачка правок схлопывается в один проход. Назревший
				// повтор вытесняется - дебаунс сам доведет работу
				t.restartDebounce()

			case eventReconnect, eventManual:
				// Немедленный запуск, любое назревшее расписание
				// отменяется. Провал такого прохода повторы не взводит:
				// бэкофф - политика автоматических запусков
				t.stopDebounce()
				t.stopRetry()
				t.runSync(ctx, owner, dateRange, false)

			case eventDebounceFired:
				if ev.gen != t.gen {
					// Устаревшее срабатывание перезапущенного таймера
					continue
				}
				t.runSync(ctx, owner, dateRange, true)

			case eventRetryFired:
				if ev.gen != t.retryGen {
					continue
				}
				t.runSync(ctx, owner, dateRange, true)
			}
		}
	}
}

// restartDebounce arms the single debounce slot, displacing any pending fire
func (t *AutoTrigger) restartDebounce() {
	t.stopRetry()

	t.gen++
	gen := t.gen

	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.debounce, func() {
		t.send(triggerEvent{kind: eventDebounceFired, gen: gen})
	})
}

func (t *AutoTrigger) stopDebounce() {
	t.gen++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

func (t *AutoTrigger) stopRetry() {
	t.retryGen++
	if t.retryTimer != nil {
		t.retryTimer.Stop()
		t.retryTimer = nil
	}
	t.backoff = nil
}

// runSync runs exactly one pass. Провал автоматического прохода взводит
// таймер повтора по экспоненциальному бэкоффу; успех сбрасывает цепочку.
func (t *AutoTrigger) runSync(ctx context.Context, owner string, dateRange *models.DateRange, retryOnFailure bool) {
	status := t.controller.Sync(ctx, owner, dateRange)

	failed, ok := status.(StatusFailed)
	if !ok {
		t.backoff = nil
		return
	}

	if !retryOnFailure {
		t.logger.Warn("Requested sync pass failed",
			"owner", owner,
			"error", failed.Message)
		return
	}
	t.scheduleRetry(owner, failed.Message)
}

// scheduleRetry arms the single retry slot using go-retry as the delay
// policy. Цепочка живет, пока проходы проваливаются; WithMaxRetries
// останавливает ее после retryMax повторов.
func (t *AutoTrigger) scheduleRetry(owner, message string) {
	if t.backoff == nil {
		backoff := retry.NewExponential(retryBase)
		backoff = retry.WithCappedDuration(retryCap, backoff)
		backoff = retry.WithMaxRetries(retryMax, backoff)
		t.backoff = backoff
	}

	delay, stop := t.backoff.Next()
	if stop {
		t.logger.Error("Automatic sync gave up after retries",
			"owner", owner,
			"error", message)
		t.backoff = nil
		return
	}

	t.logger.Warn("Automatic sync pass failed, retry scheduled",
		"owner", owner,
		"delay", delay,
		"error", message)

	t.retryGen++
	gen := t.retryGen
	if t.retryTimer != nil {
		t.retryTimer.Stop()
	}
	t.retryTimer = time.AfterFunc(delay, func() {
		t.send(triggerEvent{kind: eventRetryFired, gen: gen})
	})
}
