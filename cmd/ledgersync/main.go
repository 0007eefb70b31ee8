package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	clientapi "github.com/yorutsuke/ledgersync/internal/client/api"
	"github.com/yorutsuke/ledgersync/internal/client/auth"
	"github.com/yorutsuke/ledgersync/internal/client/cli"
	"github.com/yorutsuke/ledgersync/internal/client/netprobe"
	"github.com/yorutsuke/ledgersync/internal/client/storage/boltdb"
	"github.com/yorutsuke/ledgersync/internal/client/storage/sqlite"
	syncengine "github.com/yorutsuke/ledgersync/internal/client/sync"
	"github.com/yorutsuke/ledgersync/internal/client/telemetry"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const probeInterval = 15 * time.Second

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "ledgersync.db", "Path to local ledger database")
	statePath := flag.String("state", "ledgersync-state.db", "Path to sync-state database")
	logDir := flag.String("log-dir", ".", "Directory for JSON telemetry logs")
	debug := flag.Bool("debug", false, "Enable debug logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	ctx := context.Background()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := telemetry.NewLogger(*logDir, level)

	// Локальное хранилище записей (SQLite, миграции применяются при открытии)
	recordStore, err := sqlite.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open ledger database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := recordStore.Close(); err != nil {
			logger.Error("failed to close ledger database", "error", err)
		}
	}()

	// Хранилище sync-state и сессии (BoltDB)
	stateStore, err := boltdb.New(ctx, *statePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open state database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := stateStore.Close(); err != nil {
			logger.Error("failed to close state database", "error", err)
		}
	}()

	apiClient := clientapi.NewClient(*serverURL)
	probe := netprobe.NewHTTPProbe(*serverURL+"/api/v1/health", probeInterval, logger)
	authService := auth.NewService(apiClient, stateStore, logger)

	// Сборка движка синхронизации
	queue := syncengine.NewOfflineQueue(stateStore, logger)
	push := syncengine.NewPushEngine(apiClient, recordStore, stateStore, queue, probe, authService.AccessToken, logger)
	media := syncengine.NewMediaSyncEngine(recordStore, logger)
	pull := syncengine.NewPullEngine(apiClient, recordStore, media, authService.AccessToken, logger)
	coordinator := syncengine.NewCoordinator(push, pull, queue, logger)
	controller := syncengine.NewController(coordinator, stateStore, logger)
	trigger := syncengine.NewAutoTrigger(controller, syncengine.DefaultDebounce, logger)
	recovery := syncengine.NewRecoveryManager(recordStore, stateStore, queue, logger)

	c := cli.New(authService, recordStore, recovery, controller, trigger, probe, logger)
	c.Run(ctx, command, args[1:])
}

func printVersion() {
	fmt.Printf("ledgersync client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
