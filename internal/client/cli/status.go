package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/yorutsuke/ledgersync/internal/client/auth"
)

func (c *Cli) runStatus(ctx context.Context) error {
	session, err := c.requireSession(ctx)
	if err != nil {
		if errors.Is(err, auth.ErrNotAuthenticated) {
			fmt.Println("Not logged in")
			return nil
		}
		return err
	}

	fmt.Printf("Logged in as: %s\n", session.Email)

	status, err := c.recovery.CheckStatus(ctx, session.UserID)
	if err != nil {
		return fmt.Errorf("failed to check sync state: %w", err)
	}

	if status.LastSyncedAt.IsZero() {
		fmt.Println("Last sync:    never")
	} else {
		fmt.Printf("Last sync:    %s\n", status.LastSyncedAt.Local().Format("2006-01-02 15:04:05"))
	}
	fmt.Printf("Unsynced:     %d record(s)\n", status.DirtyCount)

	if status.QueuePending {
		fmt.Println("Queue:        a sync attempt is pending")
	}
	if status.HasUnsyncedWork() {
		fmt.Println()
		fmt.Println("Run 'ledgersync sync' to push pending changes, or 'ledgersync discard' to drop them.")
	}
	return nil
}
