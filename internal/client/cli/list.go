package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/yorutsuke/ledgersync/internal/models"
)

func (c *Cli) runList(ctx context.Context, args []string) error {
	session, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	// Опциональный аргумент - месяц вида 2025-06
	var dateRange *models.DateRange
	if len(args) > 0 {
		month, err := time.Parse("2006-01", args[0])
		if err != nil {
			return fmt.Errorf("invalid month %q, expected YYYY-MM: %w", args[0], err)
		}
		dateRange = &models.DateRange{
			From: month,
			To:   month.AddDate(0, 1, 0).Add(-time.Second),
		}
	}

	records, err := c.records.List(ctx, session.UserID, dateRange)
	if err != nil {
		return fmt.Errorf("failed to list transactions: %w", err)
	}

	if len(records) == 0 {
		fmt.Println("No transactions")
		return nil
	}

	for _, tx := range records {
		marker := " "
		if tx.Dirty {
			marker = "*"
		}
		fmt.Printf("%s %s  %s  %8d %s  %s\n",
			marker,
			tx.ID,
			tx.OccurredAt.Format("2006-01-02"),
			tx.Amount,
			tx.Currency,
			tx.Memo)
	}
	fmt.Println()
	fmt.Printf("%d transaction(s); * marks unsynced\n", len(records))
	return nil
}
