package tracker

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"civicradar/config"
	"civicradar/internal/domain/lifecycle"
	"civicradar/internal/errors"

	"github.com/sethvargo/go-retry"
)

// ForwarderOptions bounds the upload queue and its retries.
type ForwarderOptions struct {
	QueueSize  int
	MaxRetries uint64
	BaseDelay  time.Duration
	// DrainTimeout is how long Close keeps uploading queued fixes.
	DrainTimeout time.Duration
}

func (o ForwarderOptions) withDefaults() ForwarderOptions {
	if o.QueueSize <= 0 {
		o.QueueSize = config.DefaultForwardQueueSize
	}
	if o.MaxRetries == 0 {
		o.MaxRetries = config.DefaultForwardRetries
	}
	if o.BaseDelay <= 0 {
		o.BaseDelay = config.DefaultForwardBaseDelay
	}
	if o.DrainTimeout <= 0 {
		o.DrainTimeout = lifecycle.CleanupTimeout
	}

	return o
}

// Forwarder uploads fixes in the background. Enqueue never blocks: when the
// queue is full the oldest fix is dropped.
type Forwarder struct {
	uploader LocationUploader
	logger   *slog.Logger
	opts     ForwarderOptions

	mu    sync.Mutex
	queue []Location
	busy  bool

	wake    chan struct{}
	settled chan struct{}
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// NewForwarder starts the upload worker. Call Close to stop it.
func NewForwarder(uploader LocationUploader, opts ForwarderOptions, logger *slog.Logger) *Forwarder {
	ctx, cancel := context.WithCancel(context.Background())
	f := &Forwarder{
		uploader: uploader,
		logger:   logger,
		opts:     opts.withDefaults(),
		wake:     make(chan struct{}, 1),
		settled:  make(chan struct{}, 1),
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}

	go f.run()

	return f
}

// Enqueue schedules loc for upload. It reports false when an older fix had
// to be dropped to make room.
func (f *Forwarder) Enqueue(loc Location) bool {
	f.mu.Lock()
	kept := true
	if len(f.queue) >= f.opts.QueueSize {
		dropped := f.queue[0]
		f.queue = f.queue[1:]
		kept = false
		f.logger.Warn("Upload queue full, dropping oldest location",
			slog.Time("dropped_timestamp", dropped.Timestamp),
			slog.Int("queue_size", f.opts.QueueSize),
		)
	}
	f.queue = append(f.queue, loc)
	f.mu.Unlock()

	select {
	case f.wake <- struct{}{}:
	default:
	}

	return kept
}

// Pending returns the number of queued fixes.
func (f *Forwarder) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.queue)
}

// Close uploads what is still queued for up to DrainTimeout, then stops the
// worker. Fixes left after that are discarded.
func (f *Forwarder) Close() {
	f.once.Do(func() {
		f.drain()
		f.cancel()
		<-f.done

		if n := f.Pending(); n > 0 {
			f.logger.Info("Forwarder closed with pending locations", slog.Int("discarded", n))
		}
	})
}

func (f *Forwarder) drain() {
	timer := time.NewTimer(f.opts.DrainTimeout)
	defer timer.Stop()

	for !f.idle() {
		select {
		case <-f.settled:
		case <-timer.C:
			return
		}
	}
}

func (f *Forwarder) idle() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.queue) == 0 && !f.busy
}

func (f *Forwarder) run() {
	defer close(f.done)

	for {
		loc, ok := f.next()
		if !ok {
			select {
			case <-f.ctx.Done():
				return
			case <-f.wake:
				continue
			}
		}

		f.upload(loc)
		f.finish()
		if f.ctx.Err() != nil {
			return
		}
	}
}

func (f *Forwarder) next() (Location, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return Location{}, false
	}
	loc := f.queue[0]
	f.queue = f.queue[1:]
	f.busy = true

	return loc, true
}

func (f *Forwarder) finish() {
	f.mu.Lock()
	f.busy = false
	empty := len(f.queue) == 0
	f.mu.Unlock()

	if empty {
		select {
		case f.settled <- struct{}{}:
		default:
		}
	}
}

func (f *Forwarder) upload(loc Location) {
	backoff := retry.WithMaxRetries(f.opts.MaxRetries, retry.NewExponential(f.opts.BaseDelay))

	err := retry.Do(f.ctx, backoff, func(ctx context.Context) error {
		err := f.uploader.UploadLocation(ctx, loc)
		if err != nil && isRetryableUpload(err) {
			return retry.RetryableError(err)
		}

		return err
	})
	if err != nil {
		f.logger.Warn("Dropping location after failed upload",
			slog.Time("timestamp", loc.Timestamp),
			slog.Any("error", err),
		)
	}
}

// StatusError is a non-2xx answer from the server.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return "server answered " + http.StatusText(e.StatusCode) + ": " + e.Body
}

// isRetryableUpload treats client errors other than 429 as final.
func isRetryableUpload(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= http.StatusInternalServerError || statusErr.StatusCode == http.StatusTooManyRequests
	}

	return true
}
