package tracker

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"civicradar/internal/errors"

	"github.com/stretchr/testify/assert"
)

type flakyUploader struct {
	calls    atomic.Int32
	failures int32
	err      error
}

func (u *flakyUploader) UploadLocation(context.Context, Location) error {
	if u.calls.Add(1) <= u.failures {
		return u.err
	}

	return nil
}

func fastOptions() ForwarderOptions {
	return ForwarderOptions{QueueSize: 4, MaxRetries: 3, BaseDelay: time.Millisecond, DrainTimeout: 50 * time.Millisecond}
}

func TestForwarder_RetriesTransientFailures(t *testing.T) {
	uploader := &flakyUploader{failures: 2, err: &StatusError{StatusCode: http.StatusBadGateway}}
	f := NewForwarder(uploader, fastOptions(), slog.New(slog.DiscardHandler))
	defer f.Close()

	f.Enqueue(nearby)

	assert.Eventually(t, func() bool { return uploader.calls.Load() == 3 }, time.Second, time.Millisecond)
}

func TestForwarder_GivesUpAfterMaxRetries(t *testing.T) {
	uploader := &flakyUploader{failures: 100, err: errors.New("connection refused")}
	f := NewForwarder(uploader, fastOptions(), slog.New(slog.DiscardHandler))
	defer f.Close()

	f.Enqueue(nearby)
	f.Enqueue(farAway)

	// 1 attempt + 3 retries for each of the two fixes
	assert.Eventually(t, func() bool { return uploader.calls.Load() == 8 }, time.Second, time.Millisecond)
	assert.Never(t, func() bool { return uploader.calls.Load() > 8 }, 50*time.Millisecond, 5*time.Millisecond)
}

func TestForwarder_ClientErrorsAreFinal(t *testing.T) {
	uploader := &flakyUploader{failures: 100, err: &StatusError{StatusCode: http.StatusUnauthorized}}
	f := NewForwarder(uploader, fastOptions(), slog.New(slog.DiscardHandler))
	defer f.Close()

	f.Enqueue(nearby)

	assert.Eventually(t, func() bool { return uploader.calls.Load() == 1 }, time.Second, time.Millisecond)
	assert.Never(t, func() bool { return uploader.calls.Load() > 1 }, 50*time.Millisecond, 5*time.Millisecond)
}

func TestForwarder_DropsOldestWhenFull(t *testing.T) {
	block := make(chan struct{})
	uploader := &recordingUploader{block: block}
	f := NewForwarder(uploader, ForwarderOptions{QueueSize: 2, MaxRetries: 1, BaseDelay: time.Millisecond, DrainTimeout: 50 * time.Millisecond}, slog.New(slog.DiscardHandler))
	defer f.Close()

	first := Location{Latitude: 1}
	f.Enqueue(first)
	// Wait for the worker to take the first fix so the queue is empty.
	assert.Eventually(t, func() bool { return f.Pending() == 0 }, time.Second, time.Millisecond)

	assert.True(t, f.Enqueue(Location{Latitude: 2}))
	assert.True(t, f.Enqueue(Location{Latitude: 3}))
	assert.False(t, f.Enqueue(Location{Latitude: 4}))
	assert.Equal(t, 2, f.Pending())

	close(block)
	assert.Eventually(t, func() bool { return uploader.count() == 3 }, time.Second, time.Millisecond)

	uploader.mu.Lock()
	defer uploader.mu.Unlock()
	got := []float64{uploader.uploaded[0].Latitude, uploader.uploaded[1].Latitude, uploader.uploaded[2].Latitude}
	assert.Equal(t, []float64{1, 3, 4}, got)
}

func TestForwarder_CloseIsIdempotent(t *testing.T) {
	f := NewForwarder(&recordingUploader{}, fastOptions(), slog.New(slog.DiscardHandler))

	f.Close()
	f.Close()
}

func TestForwarder_CloseUploadsQueuedFixes(t *testing.T) {
	block := make(chan struct{})
	uploader := &recordingUploader{block: block}
	f := NewForwarder(uploader, ForwarderOptions{QueueSize: 4, MaxRetries: 1, BaseDelay: time.Millisecond, DrainTimeout: time.Second}, slog.New(slog.DiscardHandler))

	for i := range 3 {
		f.Enqueue(Location{Latitude: float64(i)})
	}
	time.AfterFunc(20*time.Millisecond, func() { close(block) })

	f.Close()

	assert.Equal(t, 3, uploader.count())
	assert.Zero(t, f.Pending())
}

func TestForwarder_CloseGivesUpAfterDrainTimeout(t *testing.T) {
	uploader := &recordingUploader{block: make(chan struct{})}
	f := NewForwarder(uploader, ForwarderOptions{QueueSize: 4, MaxRetries: 1, BaseDelay: time.Millisecond, DrainTimeout: 30 * time.Millisecond}, slog.New(slog.DiscardHandler))

	f.Enqueue(nearby)
	f.Enqueue(farAway)

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		f.Close()
	}()

	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("Close did not return after the drain timeout")
	}
	assert.Zero(t, uploader.count())
}

func TestIsRetryableUpload(t *testing.T) {
	assert.True(t, isRetryableUpload(errors.New("dial tcp: refused")))
	assert.True(t, isRetryableUpload(&StatusError{StatusCode: http.StatusServiceUnavailable}))
	assert.True(t, isRetryableUpload(&StatusError{StatusCode: http.StatusTooManyRequests}))
	assert.False(t, isRetryableUpload(&StatusError{StatusCode: http.StatusBadRequest}))
	assert.False(t, isRetryableUpload(errors.Wrap(&StatusError{StatusCode: http.StatusUnauthorized}, "upload")))
}
