// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-budget-vault/internal/mock"
)

// recordingWorker appends its name to a shared journal on every call.
type recordingWorker struct {
	name    string
	journal *[]string
}

func (r *recordingWorker) Start(context.Context) { *r.journal = append(*r.journal, "start "+r.name) }
func (r *recordingWorker) Stop()                 { *r.journal = append(*r.journal, "stop "+r.name) }

func TestWorkers_StartInOrderStopInReverse(t *testing.T) {
	var journal []string
	ws := NewWorkers(
		&recordingWorker{name: "monitor", journal: &journal},
		nil,
		&recordingWorker{name: "autosync", journal: &journal},
	)

	ws.Start(context.Background())
	ws.Start(context.Background())
	ws.Stop()
	ws.Stop()

	assert.Equal(t, []string{"start monitor", "start autosync", "stop autosync", "stop monitor"}, journal)
}

func TestWorkers_StopWithoutStart(t *testing.T) {
	var journal []string
	ws := NewWorkers(&recordingWorker{name: "monitor", journal: &journal})

	ws.Stop()

	assert.Empty(t, journal)
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	assert.NotPanics(t, func() {
		ws.Start(context.Background())
		ws.Stop()
	})
}

func TestAutoSync_DrivesEngine(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mock.NewMockSyncEngine(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		engine.EXPECT().EnableAutoSync(ctx, 30*time.Second),
		engine.EXPECT().DisableAutoSync(),
	)

	ws := NewWorkers(NewAutoSync(engine, 30*time.Second))
	ws.Start(ctx)
	ws.Stop()
}
