package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/yorutsuke/ledgersync/internal/models"
)

func (c *Cli) runAdd(ctx context.Context) error {
	session, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	amountStr, err := readInput("Amount (smallest currency unit, e.g. 1250): ")
	if err != nil {
		return fmt.Errorf("failed to read amount: %w", err)
	}
	amount, err := strconv.ParseInt(amountStr, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amountStr, err)
	}

	currency, err := readInput("Currency [JPY]: ")
	if err != nil {
		return fmt.Errorf("failed to read currency: %w", err)
	}
	if currency == "" {
		currency = "JPY"
	}

	memo, err := readInput("Memo: ")
	if err != nil {
		return fmt.Errorf("failed to read memo: %w", err)
	}

	occurredStr, err := readInput("Date (YYYY-MM-DD, empty for today): ")
	if err != nil {
		return fmt.Errorf("failed to read date: %w", err)
	}
	occurredAt := time.Now().UTC()
	if occurredStr != "" {
		occurredAt, err = time.Parse("2006-01-02", occurredStr)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", occurredStr, err)
		}
	}

	now := time.Now().UTC()
	tx := &models.Transaction{
		ID:         models.NewID(),
		Owner:      session.UserID,
		Amount:     amount,
		Currency:   currency,
		Memo:       memo,
		OccurredAt: occurredAt,
		CreatedAt:  now,
		UpdatedAt:  now,
		Dirty:      true,
	}

	if err := c.records.Upsert(ctx, tx); err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}

	fmt.Printf("Added %s (will be pushed on next sync)\n", tx.ID)
	return nil
}
