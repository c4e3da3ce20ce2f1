package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-budget-vault/internal/logger"
)

// Pinger is the liveness check the monitor probes.
type Pinger interface {
	Ping(ctx context.Context) error
}

type connectivityMonitor struct {
	pinger   Pinger
	interval time.Duration
	logger   *logger.Logger

	mu          sync.Mutex
	online      bool
	subscribers []func(ctx context.Context, online bool)

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewConnectivityMonitor returns a monitor that starts online. With a nil
// pinger or a non-positive interval Start does nothing and the signal comes
// only from SetOnline.
func NewConnectivityMonitor(pinger Pinger, interval time.Duration, logger *logger.Logger) ConnectivityMonitor {
	return &connectivityMonitor{
		pinger:   pinger,
		interval: interval,
		logger:   logger,
		online:   true,
	}
}

func (m *connectivityMonitor) Start(ctx context.Context) {
	if m.pinger == nil || m.interval <= 0 {
		return
	}

	m.Stop()

	m.mu.Lock()
	probeCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()
		t := time.NewTicker(m.interval)
		defer t.Stop()

		for {
			select {
			case <-probeCtx.Done():
				return
			case <-t.C:
				m.probe(probeCtx)
			}
		}
	}()
}

func (m *connectivityMonitor) probe(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()

	err := m.pinger.Ping(pingCtx)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).
			Str("func", "connectivityMonitor.probe").
			Msg("remote health probe failed")
	}
	m.SetOnline(ctx, err == nil)
}

// Stop ends the probe loop and waits for it.
func (m *connectivityMonitor) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}

// SetOnline records the signal and notifies subscribers on a change only.
func (m *connectivityMonitor) SetOnline(ctx context.Context, online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	subscribers := append([]func(context.Context, bool){}, m.subscribers...)
	m.mu.Unlock()

	logger.FromContext(ctx).Info().
		Str("func", "connectivityMonitor.SetOnline").
		Bool("online", online).
		Msg("connectivity changed")

	for _, fn := range subscribers {
		fn(ctx, online)
	}
}

func (m *connectivityMonitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

func (m *connectivityMonitor) Subscribe(fn func(ctx context.Context, online bool)) {
	m.mu.Lock()
	m.subscribers = append(m.subscribers, fn)
	m.mu.Unlock()
}
