package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-budget-vault/internal/service"
)

// AutoSync drives periodic sync cycles of a [service.SyncEngine].
type AutoSync struct {
	engine   service.SyncEngine
	interval time.Duration
}

func NewAutoSync(engine service.SyncEngine, interval time.Duration) *AutoSync {
	return &AutoSync{engine: engine, interval: interval}
}

func (a *AutoSync) Start(ctx context.Context) {
	a.engine.EnableAutoSync(ctx, a.interval)
}

func (a *AutoSync) Stop() {
	a.engine.DisableAutoSync()
}
