package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runDiscard(ctx context.Context) error {
	session, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	status, err := c.recovery.CheckStatus(ctx, session.UserID)
	if err != nil {
		return fmt.Errorf("failed to check sync state: %w", err)
	}
	if !status.HasUnsyncedWork() {
		fmt.Println("Nothing to discard")
		return nil
	}

	fmt.Printf("This will permanently drop %d unsynced record change(s).\n", status.DirtyCount)

	// Сброс несинхронизированного - потеря данных, только по явному согласию
	answer, err := readInput("Type 'yes' to confirm: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if answer != "yes" {
		fmt.Println("Aborted")
		return nil
	}

	discarded, err := c.recovery.Discard(ctx, session.UserID)
	if err != nil {
		return fmt.Errorf("failed to discard unsynced state: %w", err)
	}

	fmt.Printf("Discarded %d record(s)\n", discarded)
	return nil
}
