package service

import (
	"context"
	"fmt"

	"civicradar/internal/domain/entity"
	"civicradar/internal/errors"
)

// PushSender delivers one payload to one subscription.
//
// A nil error means the push service accepted the message. Failures are
// reported as *PermanentDeliveryError when the endpoint is gone for good and
// *TransientDeliveryError for everything else.
type PushSender interface {
	Send(ctx context.Context, sub *entity.PushSubscription, payload *entity.NotificationPayload) error
}

// PermanentDeliveryError means the endpoint will never accept messages again.
type PermanentDeliveryError struct {
	StatusCode int
	Err        error
}

func (e *PermanentDeliveryError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("permanent delivery failure (status %d): %v", e.StatusCode, e.Err)
	}

	return fmt.Sprintf("permanent delivery failure: %v", e.Err)
}

func (e *PermanentDeliveryError) Unwrap() error { return e.Err }

// TransientDeliveryError means the attempt failed but the endpoint may still be valid.
type TransientDeliveryError struct {
	StatusCode int
	Err        error
}

func (e *TransientDeliveryError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transient delivery failure (status %d): %v", e.StatusCode, e.Err)
	}

	return fmt.Sprintf("transient delivery failure: %v", e.Err)
}

func (e *TransientDeliveryError) Unwrap() error { return e.Err }

// IsPermanentDeliveryError reports whether err marks a dead subscription.
func IsPermanentDeliveryError(err error) bool {
	var permanent *PermanentDeliveryError

	return errors.As(err, &permanent)
}
