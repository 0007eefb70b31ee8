// Package netprobe provides network status detection for the sync engine.
// The engine only depends on the Prober interface; the default
// implementation polls the API host with cheap HEAD requests.
package netprobe

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

//go:generate moq -out probe_mock.go . Prober

// Prober defines interface for network status detection
type Prober interface {
	// IsOnline reports whether the remote store is currently reachable
	IsOnline(ctx context.Context) bool

	// OnReconnect registers a callback fired on an offline->online transition
	OnReconnect(fn func())
}

// HTTPProbe проверяет доступность сервера HEAD-запросами.
type HTTPProbe struct {
	url       string
	client    *http.Client
	logger    *slog.Logger
	interval  time.Duration
	mu        sync.Mutex
	online    bool
	checked   bool
	callbacks []func()
}

// Compile-time check that HTTPProbe implements Prober
var _ Prober = (*HTTPProbe)(nil)

// NewHTTPProbe creates a probe polling the given URL (typically the API
// server's health endpoint).
func NewHTTPProbe(url string, interval time.Duration, logger *slog.Logger) *HTTPProbe {
	return &HTTPProbe{
		url:      url,
		interval: interval,
		logger:   logger,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// IsOnline reports whether the remote store is currently reachable
func (p *HTTPProbe) IsOnline(ctx context.Context) bool {
	online := p.check(ctx)

	p.mu.Lock()
	p.online = online
	p.checked = true
	p.mu.Unlock()

	return online
}

// OnReconnect registers a callback fired on an offline->online transition
func (p *HTTPProbe) OnReconnect(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.callbacks = append(p.callbacks, fn)
}

// Watch опрашивает сервер с заданным интервалом и дергает reconnect
// callbacks при переходе offline -> online. Блокируется до отмены ctx.
func (p *HTTPProbe) Watch(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			online := p.check(ctx)

			p.mu.Lock()
			wasOffline := p.checked && !p.online
			p.online = online
			p.checked = true
			var callbacks []func()
			if online && wasOffline {
				callbacks = make([]func(), len(p.callbacks))
				copy(callbacks, p.callbacks)
			}
			p.mu.Unlock()

			if len(callbacks) > 0 {
				p.logger.Info("Network reconnected", "url", p.url)
				for _, fn := range callbacks {
					fn()
				}
			}
		}
	}
}

// check выполняет один HEAD-запрос
func (p *HTTPProbe) check(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.url, nil)
	if err != nil {
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	_ = resp.Body.Close()

	// Любой ответ означает достижимость, даже не-2xx
	return true
}
