package cli

import (
	"context"
	"fmt"

	syncengine "github.com/yorutsuke/ledgersync/internal/client/sync"
)

func (c *Cli) runSync(ctx context.Context) error {
	session, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	fmt.Println("Syncing...")
	status := c.controller.Sync(ctx, session.UserID, nil)

	switch s := status.(type) {
	case syncengine.StatusSuccess:
		fmt.Printf("Pushed:    %d\n", s.Result.Push.SyncedCount)
		if s.Result.Push.QueuedCount > 0 {
			fmt.Printf("Queued:    %d (will retry later)\n", s.Result.Push.QueuedCount)
		}
		fmt.Printf("Pulled:    %d\n", s.Result.Pull.SyncedCount)
		if s.Result.Pull.ConflictCount > 0 {
			fmt.Printf("Conflicts: %d (resolved)\n", s.Result.Pull.ConflictCount)
		}
		if media := s.Result.Pull.MediaResult; media != nil && media.Orphaned > 0 {
			fmt.Printf("Warning: %d orphaned media reference(s): %v\n", media.Orphaned, media.OrphanedIDs)
		}
		// Изолированные ошибки отдельных записей не роняют проход,
		// но пользователь должен их видеть
		for _, msg := range s.Result.Pull.Errors {
			fmt.Printf("Warning: %s\n", msg)
		}
		return nil

	case syncengine.StatusFailed:
		return fmt.Errorf("sync failed: %s", s.Message)

	default:
		// Проход уже шел в другом процессе watch
		fmt.Println("Sync already in progress")
		return nil
	}
}
