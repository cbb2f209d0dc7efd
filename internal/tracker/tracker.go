package tracker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"civicradar/config"
	"civicradar/internal/domain/entity"
	"civicradar/internal/errors"
	"civicradar/internal/geo"

	"github.com/google/uuid"
)

// Params are the tracker's collaborators. Permission, Source, Alerter and
// Uploader are required.
type Params struct {
	Permission PermissionProvider
	Source     LocationSource
	Alerter    Alerter
	Uploader   LocationUploader
	Cooldowns  CooldownStore // defaults to an in-memory store
	Logger     *slog.Logger
	Now        func() time.Time

	CooldownWindow time.Duration
	Forwarder      ForwarderOptions
}

// Tracker consumes location fixes serially, alerts once per region per
// cooldown window and forwards every fix upstream.
type Tracker struct {
	permission PermissionProvider
	source     LocationSource
	alerter    Alerter
	cooldowns  CooldownStore
	forwarder  *Forwarder
	logger     *slog.Logger
	now        func() time.Time
	window     time.Duration

	regions regionSet

	cooldownMu   sync.Mutex
	lastNotified map[uuid.UUID]time.Time

	lifecycleMu sync.Mutex
	stop        context.CancelFunc
	done        chan struct{}
}

func New(params Params) (*Tracker, error) {
	if params.Permission == nil || params.Source == nil || params.Alerter == nil || params.Uploader == nil {
		return nil, errors.New("tracker requires permission, source, alerter and uploader")
	}

	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cooldowns := params.Cooldowns
	if cooldowns == nil {
		cooldowns = NewMemoryCooldownStore()
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	window := params.CooldownWindow
	if window <= 0 {
		window = config.DefaultCooldownWindow
	}

	return &Tracker{
		permission:   params.Permission,
		source:       params.Source,
		alerter:      params.Alerter,
		cooldowns:    cooldowns,
		forwarder:    NewForwarder(params.Uploader, params.Forwarder, logger),
		logger:       logger,
		now:          now,
		window:       window,
		lastNotified: make(map[uuid.UUID]time.Time),
	}, nil
}

// RequestPermission reports whether location access was granted.
func (t *Tracker) RequestPermission(ctx context.Context) bool {
	granted, err := t.permission.Request(ctx)
	if err != nil {
		t.logger.Warn("Location permission unavailable", slog.Any("error", err))

		return false
	}
	if !granted {
		t.logger.Info("Location permission denied")
	}

	return granted
}

// StartTracking begins consuming fixes. It is a no-op returning true when
// tracking is already active. Cancelling ctx also stops tracking.
func (t *Tracker) StartTracking(ctx context.Context) bool {
	t.lifecycleMu.Lock()
	defer t.lifecycleMu.Unlock()

	if t.activeLocked() {
		return true
	}
	if !t.RequestPermission(ctx) {
		return false
	}

	t.restoreCooldowns(ctx)

	watchCtx, cancel := context.WithCancel(ctx)
	fixes, err := t.source.Watch(watchCtx)
	if err != nil {
		cancel()
		t.logger.Error("Failed to start location watch", slog.Any("error", err))

		return false
	}

	done := make(chan struct{})
	go t.consume(watchCtx, fixes, done)

	t.stop = cancel
	t.done = done
	t.logger.Info("Tracking started", slog.Int("regions", len(t.regions.snapshot())))

	return true
}

// StopTracking stops the watch and waits for the consumer to exit.
func (t *Tracker) StopTracking() {
	t.lifecycleMu.Lock()
	defer t.lifecycleMu.Unlock()

	if t.stop == nil {
		return
	}

	t.stop()
	<-t.done
	t.stop = nil
	t.done = nil
	t.logger.Info("Tracking stopped")
}

// Tracking reports whether a watch is active.
func (t *Tracker) Tracking() bool {
	t.lifecycleMu.Lock()
	defer t.lifecycleMu.Unlock()

	return t.activeLocked()
}

// activeLocked reports whether the consumer is still running and clears the
// state of one that has exited on its own. lifecycleMu must be held.
func (t *Tracker) activeLocked() bool {
	if t.stop == nil {
		return false
	}

	select {
	case <-t.done:
		t.stop()
		t.stop = nil
		t.done = nil

		return false
	default:
		return true
	}
}

// Done is closed when the current watch ends, either because the source ran
// dry or tracking was stopped. It returns nil before tracking starts.
func (t *Tracker) Done() <-chan struct{} {
	t.lifecycleMu.Lock()
	defer t.lifecycleMu.Unlock()

	return t.done
}

// Close stops tracking and the upload worker.
func (t *Tracker) Close() {
	t.StopTracking()
	t.forwarder.Close()
}

func (t *Tracker) consume(ctx context.Context, fixes <-chan Location, done chan<- struct{}) {
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			return
		case fix, ok := <-fixes:
			if !ok {
				t.logger.Info("Location source exhausted")

				return
			}
			t.OnLocationUpdate(ctx, fix)
		}
	}
}

// OnLocationUpdate alerts for every region containing loc whose cooldown has
// elapsed, then queues loc for upload. Upload failures never surface here.
func (t *Tracker) OnLocationUpdate(ctx context.Context, loc Location) {
	here := geo.Point{Latitude: loc.Latitude, Longitude: loc.Longitude}
	now := t.now()

	for _, region := range t.regions.snapshot() {
		distance := geo.DistanceMeters(here, geo.Point{Latitude: region.Latitude, Longitude: region.Longitude})
		if distance > region.RadiusMeters {
			continue
		}
		if !t.claimCooldown(region.ID, now) {
			continue
		}

		if err := t.alerter.Alert(ctx, region, distance); err != nil {
			t.logger.Warn("Failed to raise alert",
				slog.String("region_id", region.ID.String()),
				slog.Any("error", err),
			)
		}
		if err := t.cooldowns.Save(ctx, region.ID, now); err != nil {
			t.logger.Warn("Failed to persist cooldown",
				slog.String("region_id", region.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	t.forwarder.Enqueue(loc)
}

// claimCooldown stamps regionID and reports true when it had no record or the
// last alert is older than the window.
func (t *Tracker) claimCooldown(regionID uuid.UUID, now time.Time) bool {
	t.cooldownMu.Lock()
	defer t.cooldownMu.Unlock()

	if last, ok := t.lastNotified[regionID]; ok && now.Sub(last) <= t.window {
		return false
	}
	t.lastNotified[regionID] = now

	return true
}

func (t *Tracker) restoreCooldowns(ctx context.Context) {
	records, err := t.cooldowns.Load(ctx)
	if err != nil {
		t.logger.Warn("Failed to load cooldowns, starting fresh", slog.Any("error", err))

		return
	}

	t.cooldownMu.Lock()
	defer t.cooldownMu.Unlock()

	for id, at := range records {
		if at.After(t.lastNotified[id]) {
			t.lastNotified[id] = at
		}
	}
}

// AddRegion registers region, replacing one with the same ID.
func (t *Tracker) AddRegion(region entity.GeofenceRegion) {
	t.regions.add(region)
}

// RemoveRegion reports whether a region was removed.
func (t *Tracker) RemoveRegion(id uuid.UUID) bool {
	return t.regions.remove(id)
}

// SetRegions replaces the whole set.
func (t *Tracker) SetRegions(regions []entity.GeofenceRegion) {
	t.regions.set(regions)
}

// Regions returns a copy of the current set.
func (t *Tracker) Regions() []entity.GeofenceRegion {
	snapshot := t.regions.snapshot()
	out := make([]entity.GeofenceRegion, len(snapshot))
	copy(out, snapshot)

	return out
}
