package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-budget-vault/internal/adapter"
	"github.com/MKhiriev/go-budget-vault/internal/config"
	"github.com/MKhiriev/go-budget-vault/internal/crypto"
	"github.com/MKhiriev/go-budget-vault/internal/logger"
	"github.com/MKhiriev/go-budget-vault/internal/store"
	"github.com/MKhiriev/go-budget-vault/models"
)

// WatermarkAdvancesOnSeen makes the pull watermark move to the newest remote
// timestamp in the batch, including entries that lost conflict resolution or
// failed to apply. A failed entry is therefore never fetched again.
const WatermarkAdvancesOnSeen = true

// pushBatchSize keeps each upsert request under the server's batch limit.
const pushBatchSize = 500

const (
	defaultSyncInterval   = 30 * time.Second
	defaultDebounceDelay  = 2 * time.Second
	defaultRetryBaseDelay = time.Second
	defaultRetryMaxDelay  = 5 * time.Minute
	defaultMaxAttempts    = 5
)

var (
	errMissingPayload  = errors.New("remote entry has no payload")
	errPayloadMismatch = errors.New("payload id does not match entity id")
)

// SyncEngineConfig holds the engine timings. Zero values take defaults.
type SyncEngineConfig struct {
	RetryBaseDelay time.Duration
	RetryMaxDelay  time.Duration
	MaxAttempts    int
	DebounceDelay  time.Duration
}

// NewSyncEngineConfig copies the relevant client worker settings.
func NewSyncEngineConfig(cfg config.ClientWorkers) SyncEngineConfig {
	return SyncEngineConfig{
		RetryBaseDelay: cfg.RetryBaseDelay,
		RetryMaxDelay:  cfg.RetryMaxDelay,
		MaxAttempts:    cfg.MaxAttempts,
		DebounceDelay:  cfg.DebounceDelay,
	}
}

func (c *SyncEngineConfig) applyDefaults() {
	setDefault(&c.RetryBaseDelay, defaultRetryBaseDelay)
	setDefault(&c.RetryMaxDelay, defaultRetryMaxDelay)
	setDefault(&c.MaxAttempts, defaultMaxAttempts)
	setDefault(&c.DebounceDelay, defaultDebounceDelay)
	if c.RetryMaxDelay < c.RetryBaseDelay {
		c.RetryMaxDelay = c.RetryBaseDelay
	}
}

func setDefault[T int | time.Duration](field *T, value T) {
	if *field <= 0 {
		*field = value
	}
}

// SyncOption customises a sync engine.
type SyncOption func(*syncEngine)

// WithSyncGuard skips a cycle (the engine goes back to idle) whenever guard
// returns true, for example while the vault is sealed.
func WithSyncGuard(guard func(ctx context.Context) bool) SyncOption {
	return func(e *syncEngine) {
		e.guard = guard
	}
}

type syncEngine struct {
	changelog  store.ChangeLogRepository
	entities   store.EntityStore
	watermarks store.WatermarkStore
	remote     adapter.RemoteChangeLog
	caps       Capabilities
	enc        crypto.EncryptionService
	cfg        SyncEngineConfig
	guard      func(ctx context.Context) bool
	now        func() time.Time
	logger     *logger.Logger

	mu           sync.Mutex
	state        models.SyncState
	running      bool
	online       bool
	retryCount   int
	lastSyncedAt time.Time
	nextRetryAt  time.Time
	lastError    string
	disposed     bool

	// pending records a debounced request that arrived mid-cycle.
	pending bool

	retryTimer    *time.Timer
	retryGen      uint64
	debounceTimer *time.Timer
	debounceGen   uint64

	autoCancel context.CancelFunc
	autoWG     sync.WaitGroup

	onStateChange func(models.SyncStatus)
	onError       func(error)
}

// NewSyncEngine builds the [SyncEngine]. A nil remote means sync is not
// configured and every trigger is a no-op. The engine starts idle and
// online.
func NewSyncEngine(
	changelog store.ChangeLogRepository,
	entities store.EntityStore,
	watermarks store.WatermarkStore,
	remote adapter.RemoteChangeLog,
	caps Capabilities,
	enc crypto.EncryptionService,
	cfg SyncEngineConfig,
	logger *logger.Logger,
	opts ...SyncOption,
) SyncEngine {
	cfg.applyDefaults()
	e := &syncEngine{
		changelog:  changelog,
		entities:   entities,
		watermarks: watermarks,
		remote:     remote,
		caps:       caps,
		enc:        enc,
		cfg:        cfg,
		now:        models.Now,
		logger:     logger,
		state:      models.SyncStateIdle,
		online:     true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// TriggerSync implements SyncEngine. It runs one push, pull and prune cycle
// and returns its counters. The call is a no-op while a cycle is already
// running or no remote is configured; offline it only moves to offline.
func (e *syncEngine) TriggerSync(ctx context.Context) models.SyncResult {
	return e.trigger(ctx, false)
}

// Retry implements SyncEngine. It resets the attempt counter and triggers a
// cycle, which is the only way out of the error state besides TriggerSync.
func (e *syncEngine) Retry(ctx context.Context) models.SyncResult {
	e.mu.Lock()
	if !e.running {
		e.retryCount = 0
	}
	e.mu.Unlock()
	return e.trigger(ctx, false)
}

// trigger runs one cycle. Automatic triggers (timers, ticker, connectivity)
// never leave the error state.
func (e *syncEngine) trigger(ctx context.Context, automatic bool) models.SyncResult {
	e.mu.Lock()
	if e.disposed || e.remote == nil || e.running || (automatic && e.state == models.SyncStateError) {
		e.mu.Unlock()
		return models.SyncResult{}
	}
	if !e.online {
		e.stopRetryLocked()
		changed := e.setStateLocked(models.SyncStateOffline)
		status, notify := e.statusLocked(), e.onStateChange
		e.mu.Unlock()
		if changed {
			emit(notify, status)
		}
		return models.SyncResult{}
	}

	e.stopRetryLocked()
	e.running = true
	e.nextRetryAt = time.Time{}
	e.setStateLocked(models.SyncStateSyncing)
	status, notify := e.statusLocked(), e.onStateChange
	e.mu.Unlock()
	emit(notify, status)

	result, synced, err := e.runCycle(ctx)
	if err != nil {
		e.fail(ctx, err)
		return result
	}
	e.succeed(ctx, synced)
	return result
}

func (e *syncEngine) succeed(ctx context.Context, synced bool) {
	e.mu.Lock()
	e.running = false
	e.retryCount = 0
	e.lastError = ""
	if synced {
		e.lastSyncedAt = e.now()
	}
	if e.online {
		e.setStateLocked(models.SyncStateIdle)
	} else {
		e.setStateLocked(models.SyncStateOffline)
	}
	rerun := e.pending && e.online && !e.disposed
	e.pending = false
	status, notify := e.statusLocked(), e.onStateChange
	e.mu.Unlock()

	emit(notify, status)
	if rerun {
		e.DebouncedSync(ctx)
	}
}

func (e *syncEngine) fail(ctx context.Context, err error) {
	e.mu.Lock()
	e.running = false
	e.pending = false
	e.retryCount++
	e.lastError = UserMessage(err)

	switch {
	case !e.online:
		e.setStateLocked(models.SyncStateOffline)
	case errors.Is(err, ErrPasswordRequired), e.retryCount >= e.cfg.MaxAttempts, e.disposed:
		e.setStateLocked(models.SyncStateError)
	default:
		delay := backoffDelay(e.cfg.RetryBaseDelay, e.cfg.RetryMaxDelay, e.retryCount-1)
		e.nextRetryAt = e.now().Add(delay)
		e.setStateLocked(models.SyncStateRetryPending)
		e.scheduleRetryLocked(ctx, delay)
	}

	status, notify, onErr := e.statusLocked(), e.onStateChange, e.onError
	e.mu.Unlock()

	logger.FromContext(ctx).Err(err).
		Str("func", "syncEngine.fail").
		Str("state", string(status.State)).
		Int("retry_count", status.RetryCount).
		Msg("sync cycle failed")

	emit(notify, status)
	if onErr != nil {
		onErr(err)
	}
}

// backoffDelay returns min(base·2^attempt, maxDelay).
func backoffDelay(base, maxDelay time.Duration, attempt int) time.Duration {
	delay := base
	for range attempt {
		if delay >= maxDelay/2 {
			return maxDelay
		}
		delay *= 2
	}
	return min(delay, maxDelay)
}

func (e *syncEngine) scheduleRetryLocked(ctx context.Context, delay time.Duration) {
	e.retryGen++
	gen := e.retryGen
	detached := context.WithoutCancel(ctx)
	e.retryTimer = time.AfterFunc(delay, func() { e.fireRetry(detached, gen) })
}

func (e *syncEngine) fireRetry(ctx context.Context, gen uint64) {
	e.mu.Lock()
	if gen != e.retryGen || e.state != models.SyncStateRetryPending {
		e.mu.Unlock()
		return
	}
	e.retryTimer = nil
	e.mu.Unlock()

	e.trigger(ctx, true)
}

func (e *syncEngine) stopRetryLocked() {
	if e.retryTimer != nil {
		e.retryTimer.Stop()
		e.retryTimer = nil
	}
	e.retryGen++
}

// EnableAutoSync implements SyncEngine. It replaces any running ticker with
// one that triggers a cycle every interval until ctx is done or auto-sync
// is disabled.
func (e *syncEngine) EnableAutoSync(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	e.DisableAutoSync()

	e.mu.Lock()
	if e.disposed {
		e.mu.Unlock()
		return
	}
	jobCtx, cancel := context.WithCancel(ctx)
	e.autoCancel = cancel
	e.autoWG.Add(1)
	e.mu.Unlock()

	go func() {
		defer e.autoWG.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				// the cycle runs off the loop so DisableAutoSync never waits
				// on it, even when called from a callback of that cycle
				go e.trigger(context.WithoutCancel(jobCtx), true)
			}
		}
	}()
}

// DisableAutoSync implements SyncEngine. It stops the ticker and waits for
// the ticker loop to exit. A cycle already started by a tick keeps running.
func (e *syncEngine) DisableAutoSync() {
	e.mu.Lock()
	cancel := e.autoCancel
	e.autoCancel = nil
	e.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	e.autoWG.Wait()
}

// DebouncedSync implements SyncEngine. Calls arriving within the debounce
// delay collapse into one cycle; a request landing mid-cycle is replayed
// after it.
func (e *syncEngine) DebouncedSync(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.disposed {
		return
	}
	if e.debounceTimer != nil {
		e.debounceTimer.Stop()
	}
	e.debounceGen++
	gen := e.debounceGen
	detached := context.WithoutCancel(ctx)
	e.debounceTimer = time.AfterFunc(e.cfg.DebounceDelay, func() { e.fireDebounce(detached, gen) })
}

func (e *syncEngine) fireDebounce(ctx context.Context, gen uint64) {
	e.mu.Lock()
	if gen != e.debounceGen || e.disposed {
		e.mu.Unlock()
		return
	}
	e.debounceTimer = nil
	if e.running {
		e.pending = true
		e.mu.Unlock()
		return
	}
	e.mu.Unlock()

	e.trigger(ctx, true)
}

// HandleConnectivity implements SyncEngine. Going offline cancels a pending
// retry; coming back online triggers a cycle.
func (e *syncEngine) HandleConnectivity(ctx context.Context, online bool) {
	e.mu.Lock()
	if e.disposed {
		e.mu.Unlock()
		return
	}

	if !online {
		e.online = false
		e.stopRetryLocked()
		e.nextRetryAt = time.Time{}
		changed := e.setStateLocked(models.SyncStateOffline)
		status, notify := e.statusLocked(), e.onStateChange
		e.mu.Unlock()
		if changed {
			emit(notify, status)
		}
		return
	}

	restored := !e.online || e.state == models.SyncStateOffline
	e.online = true
	changed := false
	if e.state == models.SyncStateOffline {
		if e.running {
			// the cycle still in flight reports syncing and is followed by
			// a fresh one once it finishes
			changed = e.setStateLocked(models.SyncStateSyncing)
			e.pending = true
		} else {
			changed = e.setStateLocked(models.SyncStateIdle)
		}
	}
	running := e.running
	status, notify := e.statusLocked(), e.onStateChange
	e.mu.Unlock()

	if changed {
		emit(notify, status)
	}
	if restored && !running {
		e.trigger(ctx, true)
	}
}

// Status implements SyncEngine.
func (e *syncEngine) Status() models.SyncStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.statusLocked()
}

// OnStateChange registers the state callback, called outside the engine lock.
func (e *syncEngine) OnStateChange(fn func(models.SyncStatus)) {
	e.mu.Lock()
	e.onStateChange = fn
	e.mu.Unlock()
}

func (e *syncEngine) OnError(fn func(error)) {
	e.mu.Lock()
	e.onError = fn
	e.mu.Unlock()
}

// Dispose implements SyncEngine. It stops every timer and the ticker and
// rejects further triggers. An in-flight cycle is left to finish.
func (e *syncEngine) Dispose() {
	e.mu.Lock()
	if e.disposed {
		e.mu.Unlock()
		return
	}
	e.disposed = true
	e.stopRetryLocked()
	if e.debounceTimer != nil {
		e.debounceTimer.Stop()
		e.debounceTimer = nil
	}
	e.debounceGen++
	e.mu.Unlock()

	e.DisableAutoSync()
}

func (e *syncEngine) setStateLocked(state models.SyncState) bool {
	if e.state == state {
		return false
	}
	e.state = state
	return true
}

func (e *syncEngine) statusLocked() models.SyncStatus {
	return models.SyncStatus{
		State:        e.state,
		RetryCount:   e.retryCount,
		LastSyncedAt: e.lastSyncedAt,
		NextRetryAt:  e.nextRetryAt,
		LastError:    e.lastError,
	}
}

func emit(fn func(models.SyncStatus), status models.SyncStatus) {
	if fn != nil {
		fn(status)
	}
}

// runCycle performs push, pull and prune for the active scope. synced is
// false when the cycle was skipped.
func (e *syncEngine) runCycle(ctx context.Context) (result models.SyncResult, synced bool, err error) {
	if e.guard != nil && e.guard(ctx) {
		return result, false, nil
	}

	mode, err := e.caps.StorageMode(ctx)
	if err != nil {
		return result, false, err
	}
	if mode == models.StorageModeLocalOnly {
		return result, false, nil
	}

	scopeID, err := e.caps.ActiveScopeID(ctx)
	if err != nil {
		return result, false, err
	}
	if scopeID == "" {
		return result, false, nil
	}

	var password string
	if mode.RequiresEncryption() {
		if password, err = e.caps.EncryptionPassword(ctx); err != nil {
			return result, false, err
		}
		if password == "" {
			return result, false, ErrPasswordRequired
		}
	}

	keys := newCycleKeys(e.enc, e.caps, password)
	defer keys.close()

	if result.Pushed, err = e.push(ctx, scopeID, mode, keys); err != nil {
		return result, false, fmt.Errorf("push: %w", err)
	}

	watermark, err := e.pull(ctx, scopeID, keys, &result)
	if err != nil {
		return result, false, fmt.Errorf("pull: %w", err)
	}
	result.Watermark = watermark

	if !watermark.IsZero() {
		if result.Pruned, err = e.changelog.PruneSynced(ctx, scopeID, watermark); err != nil {
			return result, false, fmt.Errorf("prune: %w", err)
		}
	}

	logger.FromContext(ctx).Info().
		Str("func", "syncEngine.runCycle").
		Str("scope_id", scopeID).
		Int("pushed", result.Pushed).
		Int("pulled", result.Pulled).
		Int("applied", result.Applied).
		Int("rejected", result.Rejected).
		Int("failed", result.Failed).
		Int64("pruned", result.Pruned).
		Msg("sync cycle completed")
	return result, true, nil
}

// push upserts every unsynced entry of the scope and marks each batch synced
// once the remote accepted it.
func (e *syncEngine) push(ctx context.Context, scopeID string, mode models.StorageMode, keys *cycleKeys) (int, error) {
	entries, err := e.changelog.GetUnsynced(ctx, scopeID)
	if err != nil {
		return 0, fmt.Errorf("read unsynced entries: %w", err)
	}

	pushed := 0
	for start := 0; start < len(entries); start += pushBatchSize {
		batch := entries[start:min(start+pushBatchSize, len(entries))]

		rows := make([]models.RemoteChangeLogEntry, 0, len(batch))
		ids := make([]string, 0, len(batch))
		for _, entry := range batch {
			row, err := toRemote(ctx, entry, mode, keys)
			if err != nil {
				return pushed, err
			}
			rows = append(rows, row)
			ids = append(ids, entry.ID)
		}

		if err = e.remote.Upsert(ctx, rows); err != nil {
			return pushed, err
		}
		if err = e.changelog.MarkSynced(ctx, ids...); err != nil {
			return pushed, fmt.Errorf("mark synced: %w", err)
		}
		pushed += len(batch)
	}
	return pushed, nil
}

func toRemote(ctx context.Context, entry models.ChangeLogEntry, mode models.StorageMode, keys *cycleKeys) (models.RemoteChangeLogEntry, error) {
	row := models.RemoteChangeLogEntry{
		ID:         entry.ID,
		ScopeID:    entry.ScopeID,
		EntityType: string(entry.EntityType),
		EntityID:   entry.EntityID,
		Operation:  string(entry.Operation),
		Timestamp:  entry.Timestamp,
	}
	if len(entry.Payload) == 0 {
		return row, nil
	}

	if !mode.RequiresEncryption() {
		payload := string(entry.Payload)
		row.Payload = &payload
		return row, nil
	}

	sealed, err := keys.seal(ctx, entry.Payload)
	if err != nil {
		return row, fmt.Errorf("encrypt payload of %s: %w", entry.ID, err)
	}
	raw, err := json.Marshal(sealed)
	if err != nil {
		return row, fmt.Errorf("marshal encrypted payload of %s: %w", entry.ID, err)
	}
	payload := string(raw)
	row.Payload = &payload
	row.IsEncrypted = true
	return row, nil
}

// pull fetches remote rows after the watermark, applies the accepted ones in
// one transaction and advances the watermark. It returns the watermark in
// effect after the pull.
func (e *syncEngine) pull(ctx context.Context, scopeID string, keys *cycleKeys, result *models.SyncResult) (time.Time, error) {
	log := logger.FromContext(ctx)

	watermark, _, err := e.watermarks.Get(ctx, store.PurposeSyncWatermark, scopeID)
	if err != nil {
		return time.Time{}, fmt.Errorf("read watermark: %w", err)
	}

	rows, err := e.remote.FetchSince(ctx, scopeID, watermark)
	if err != nil {
		return watermark, err
	}
	result.Pulled = len(rows)

	seen, applied := watermark, watermark
	ops := make([]store.EntityOp, 0, len(rows))
	for _, row := range rows {
		if row.Timestamp.After(seen) {
			seen = row.Timestamp
		}

		op, accepted, err := e.resolve(ctx, scopeID, row, keys)
		if err != nil {
			result.Failed++
			log.Warn().Err(err).
				Str("func", "syncEngine.pull").
				Str("scope_id", scopeID).
				Str("entry_id", row.ID).
				Str("entity_type", row.EntityType).
				Str("entity_id", row.EntityID).
				Msg("skipping remote entry")
			continue
		}
		if !accepted {
			result.Rejected++
			continue
		}
		ops = append(ops, op)
		if row.Timestamp.After(applied) {
			applied = row.Timestamp
		}
	}

	if len(ops) > 0 {
		if err = e.entities.Apply(ctx, ops); err != nil {
			return watermark, fmt.Errorf("apply pulled entries: %w", err)
		}
	}
	result.Applied = len(ops)

	next := applied
	if WatermarkAdvancesOnSeen {
		next = seen
	}
	if next.After(watermark) {
		if err = e.watermarks.Advance(ctx, store.PurposeSyncWatermark, scopeID, next); err != nil {
			return watermark, fmt.Errorf("advance watermark: %w", err)
		}
		watermark = next
	}
	return watermark, nil
}

// resolve decides whether a remote row wins over local history. A delete
// always wins; anything else must be strictly newer than the latest local
// entry for the same entity.
func (e *syncEngine) resolve(ctx context.Context, scopeID string, row models.RemoteChangeLogEntry, keys *cycleKeys) (store.EntityOp, bool, error) {
	entityType, err := models.ParseEntityType(row.EntityType)
	if err != nil {
		return store.EntityOp{}, false, err
	}
	operation, err := models.ParseOperation(row.Operation)
	if err != nil {
		return store.EntityOp{}, false, err
	}
	if row.EntityID == "" {
		return store.EntityOp{}, false, fmt.Errorf("%w: empty entity id", store.ErrInvalidEntityPayload)
	}

	if operation == models.OperationDelete {
		return store.EntityOp{EntityType: entityType, EntityID: row.EntityID, Delete: true}, true, nil
	}

	latest, found, err := e.changelog.GetLatestForEntity(ctx, scopeID, entityType, row.EntityID)
	if err != nil {
		return store.EntityOp{}, false, fmt.Errorf("read local history: %w", err)
	}
	if found && !row.Timestamp.After(latest.Timestamp) {
		return store.EntityOp{}, false, nil
	}

	payload, err := openPayload(ctx, row, keys)
	if err != nil {
		return store.EntityOp{}, false, err
	}
	if err = checkPayload(entityType, row.EntityID, payload); err != nil {
		return store.EntityOp{}, false, err
	}

	return store.EntityOp{EntityType: entityType, EntityID: row.EntityID, Payload: payload}, true, nil
}

func openPayload(ctx context.Context, row models.RemoteChangeLogEntry, keys *cycleKeys) (json.RawMessage, error) {
	if row.Payload == nil {
		return nil, errMissingPayload
	}
	if !row.IsEncrypted {
		return json.RawMessage(*row.Payload), nil
	}

	var envelope models.EncryptedPayload
	if err := json.Unmarshal([]byte(*row.Payload), &envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", crypto.ErrDecryptionFailed, err)
	}
	plain, err := keys.open(ctx, envelope)
	if err != nil {
		return nil, err
	}
	return plain, nil
}

// checkPayload decodes payload the way the store will, so a bad row is
// skipped alone instead of failing the whole apply transaction.
func checkPayload(entityType models.EntityType, entityID string, payload json.RawMessage) error {
	var id string
	if entityType == models.EntityAttachment {
		var a models.Attachment
		if err := json.Unmarshal(payload, &a); err != nil {
			return fmt.Errorf("%w: %w", store.ErrInvalidEntityPayload, err)
		}
		id = a.ID
	} else {
		var ent models.Entity
		if err := json.Unmarshal(payload, &ent); err != nil {
			return fmt.Errorf("%w: %w", store.ErrInvalidEntityPayload, err)
		}
		id = ent.ID
	}
	if id != entityID {
		return fmt.Errorf("%w: %q vs %q", errPayloadMismatch, id, entityID)
	}
	return nil
}
