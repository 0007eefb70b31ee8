// Package cli implements the ledgersync command-line interface.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/yorutsuke/ledgersync/internal/client/auth"
	"github.com/yorutsuke/ledgersync/internal/client/netprobe"
	"github.com/yorutsuke/ledgersync/internal/client/storage"
	syncengine "github.com/yorutsuke/ledgersync/internal/client/sync"
)

// Cli связывает сервисы клиента с консольными командами
type Cli struct {
	authService *auth.Service
	records     storage.RecordStorage
	recovery    *syncengine.RecoveryManager
	controller  *syncengine.Controller
	trigger     *syncengine.AutoTrigger
	probe       *netprobe.HTTPProbe
	logger      *slog.Logger
}

// New создает новый CLI
func New(
	authService *auth.Service,
	records storage.RecordStorage,
	recovery *syncengine.RecoveryManager,
	controller *syncengine.Controller,
	trigger *syncengine.AutoTrigger,
	probe *netprobe.HTTPProbe,
	logger *slog.Logger,
) *Cli {
	return &Cli{
		authService: authService,
		records:     records,
		recovery:    recovery,
		controller:  controller,
		trigger:     trigger,
		probe:       probe,
		logger:      logger,
	}
}

// requireSession возвращает текущую сессию или понятную ошибку
func (c *Cli) requireSession(ctx context.Context) (*storage.Session, error) {
	session, err := c.authService.CurrentSession(ctx)
	if err != nil {
		return nil, err
	}
	return session, nil
}

func PrintUsage() {
	fmt.Println("ledgersync - receipt ledger sync client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  ledgersync [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version        Show version information")
	fmt.Println("  --server URL     Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH        Path to local ledger database (default: ledgersync.db)")
	fmt.Println("  --state PATH     Path to sync-state database (default: ledgersync-state.db)")
	fmt.Println("  --log-dir PATH   Directory for JSON telemetry logs (default: .)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register                 Register new user")
	fmt.Println("  login                    Login to server")
	fmt.Println("  logout                   Logout (delete local session)")
	fmt.Println("  status                   Show session and unsynced-state summary")
	fmt.Println("  add                      Add a ledger transaction")
	fmt.Println("  list [YYYY-MM]           List local transactions, optionally one month")
	fmt.Println("  sync                     Run one full push+pull pass")
	fmt.Println("  discard                  Drop unsynced local changes (asks for confirmation)")
	fmt.Println("  watch                    Run in the background: auto-sync on changes and reconnects")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  ledgersync register")
	fmt.Println("  ledgersync login")
	fmt.Println("  ledgersync add")
	fmt.Println("  ledgersync list 2025-06")
	fmt.Println("  ledgersync --server https://ledger.example.com sync")
}

// readInput читает строку из stdin
func readInput(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// readPassword читает пароль без отображения на экране
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(passwordBytes), nil
}
