package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/yorutsuke/ledgersync/internal/server"
	"github.com/yorutsuke/ledgersync/internal/server/handlers"
	"github.com/yorutsuke/ledgersync/internal/server/store"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 30 * 24 * time.Hour
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", ":8080", "Listen address")
	jwtSecret := flag.String("jwt-secret", "", "JWT signing secret (random if empty)")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	secret := *jwtSecret
	if secret == "" {
		// Случайный секрет на время жизни процесса: после рестарта все
		// выданные токены протухают, для dev сервера это приемлемо
		secretBytes := make([]byte, 32)
		if _, err := rand.Read(secretBytes); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate JWT secret: %v\n", err)
			os.Exit(1)
		}
		secret = base64.RawURLEncoding.EncodeToString(secretBytes)
	}

	cfg := server.Config{
		JWT: handlers.JWTConfig{
			Secret:          []byte(secret),
			AccessTokenTTL:  accessTokenTTL,
			RefreshTokenTTL: refreshTokenTTL,
		},
		Version: Version,
	}

	handler := server.NewHandler(logger, store.New(), cfg)

	logger.Info("Dev server starting", "addr", *addr, "version", Version)
	srv := &http.Server{
		Addr:              *addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("ledgersync dev server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
