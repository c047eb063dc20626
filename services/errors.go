package services

import (
	"errors"
	"fmt"
)

// Validation rejections. Surfaced verbatim to the caller for user-facing
// messaging; never retried.
var (
	ErrEmptyCart         = errors.New("cart has no items")
	ErrOfferNotFound     = errors.New("offer not found")
	ErrOfferInactive     = errors.New("offer is not active")
	ErrOfferExpired      = errors.New("offer has expired")
	ErrOfferNotYetValid  = errors.New("offer is not valid yet")
	ErrNotFirstOrder     = errors.New("offer is for first orders only")
	ErrUsageLimitReached = errors.New("offer usage limit exceeded")
	ErrBelowMinimumOrder = errors.New("order value below offer minimum")
)

// Data-integrity faults. Fatal to the request, an operator has to fix the data.
var ErrScheduleNotConfigured = errors.New("weekly schedule is not configured for this day")

// Store states as resolved by the availability service.
const (
	StoreOpen          = "OPEN"
	StoreClosedManual  = "CLOSED_MANUAL"
	StoreClosedHoliday = "CLOSED_HOLIDAY"
	StoreClosedHours   = "CLOSED_HOURS"
)

// StoreClosedError rejects pricing while the restaurant is not accepting
// orders. State is one of the CLOSED_* constants, Reason the human text.
type StoreClosedError struct {
	State  string
	Reason string
}

func (e *StoreClosedError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("store is closed (%s)", e.State)
	}
	return fmt.Sprintf("store is closed (%s): %s", e.State, e.Reason)
}

// IsRejection reports whether err is a user-facing validation or
// availability rejection rather than an internal failure.
func IsRejection(err error) bool {
	var sc *StoreClosedError
	if errors.As(err, &sc) {
		return true
	}
	for _, e := range []error{
		ErrEmptyCart, ErrOfferNotFound, ErrOfferInactive, ErrOfferExpired,
		ErrOfferNotYetValid, ErrNotFirstOrder, ErrUsageLimitReached,
		ErrBelowMinimumOrder,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
