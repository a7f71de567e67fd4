package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrForbidden        = errors.New("forbidden")
)

var (
	ErrBookingNotFound        = errors.New("booking not found")
	ErrBookingItemNotFound    = errors.New("booking item not found")
	ErrCustomerNotFound       = errors.New("customer not found")
	ErrRoomNotFound           = errors.New("room not found")
	ErrRoomTypeNotFound       = errors.New("room type not found")
	ErrInvoiceNotFound        = errors.New("invoice not found")
	ErrHotelServiceNotFound   = errors.New("hotel service not found")
	ErrServiceRequestNotFound = errors.New("service request not found")
)

var (
	ErrInvalidDateRange = errors.New("check-out must be at least one night after check-in")
	ErrRoomTypeMismatch = errors.New("room does not match the item's room type")
	ErrRoomUnavailable  = errors.New("room is already assigned to an active booking")
	ErrRoomRequired     = errors.New("booking has no assigned room")
	ErrInvoiceClosed    = errors.New("invoice is already settled or cancelled")
)

var ErrValidation = errors.New("validation error")

// ErrStatusTransition is the errors.Is target for every StatusError.
var ErrStatusTransition = errors.New("illegal status transition")

// StatusError reports a transition attempted from a state that does not
// allow it.
type StatusError struct {
	Current   BookingStatus
	Attempted BookingStatus
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("illegal status transition: %s -> %s", e.Current, e.Attempted)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrStatusTransition
}
