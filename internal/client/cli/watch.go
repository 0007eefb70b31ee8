package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yorutsuke/ledgersync/internal/client/storage"
)

// период опроса локального хранилища на предмет новых грязных записей
const dirtyPollInterval = 2 * time.Second

func (c *Cli) runWatch(ctx context.Context) error {
	session, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Возврат сети немедленно запускает проход, минуя дебаунс
	c.probe.OnReconnect(c.trigger.NotifyReconnect)

	go c.probe.Watch(ctx)
	go c.trigger.Run(ctx, session.UserID, nil)

	// Рост числа грязных записей - сигнал мутации для дебаунса
	go pollDirtyRecords(ctx, c.records, session.UserID, dirtyPollInterval, c.trigger.NotifyMutation, c.logger)

	// Начальный проход: подхватываем все, что скопилось офлайн
	c.trigger.TriggerNow()

	fmt.Println("Watching for changes, Ctrl+C to stop")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	fmt.Println("Stopping")
	return nil
}

// pollDirtyRecords периодически считает грязные записи владельца и дергает
// notify, когда счетчик вырос: так локальные правки из других процессов
// попадают в дебаунс без подписки на само хранилище
func pollDirtyRecords(
	ctx context.Context,
	records storage.RecordStorage,
	owner string,
	interval time.Duration,
	notify func(),
	logger *slog.Logger,
) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := 0
	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			count, err := records.CountDirty(ctx, owner)
			if err != nil {
				logger.Warn("Failed to count dirty records", "error", err)
				continue
			}
			if count > last {
				notify()
			}
			last = count
		}
	}
}
