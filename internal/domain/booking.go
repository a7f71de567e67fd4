package domain

import "time"

type BookingStatus string

const (
	BookingStatusPendingApproval BookingStatus = "PENDING_APPROVAL"
	BookingStatusPendingPayment  BookingStatus = "PENDING_PAYMENT"
	BookingStatusConfirmed       BookingStatus = "CONFIRMED"
	BookingStatusCheckedIn       BookingStatus = "CHECKED_IN"
	BookingStatusCheckedOut      BookingStatus = "CHECKED_OUT"
	BookingStatusCancelled       BookingStatus = "CANCELLED"
)

// LiveStatuses are the states in which a booking holds its assigned rooms.
var LiveStatuses = []BookingStatus{BookingStatusConfirmed, BookingStatusCheckedIn}

func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCheckedOut || s == BookingStatusCancelled
}

type BookingEvent string

const (
	EventApprove  BookingEvent = "approve"
	EventCheckIn  BookingEvent = "checkIn"
	EventCheckOut BookingEvent = "checkOut"
	EventCancel   BookingEvent = "cancel"
)

// transitions maps an event to the single state it may fire from and the
// state it leads to. Approve lands on PENDING_PAYMENT here; the orchestrator
// may substitute CONFIRMED when policy says so (both are legal targets).
var transitions = map[BookingEvent]struct {
	from, to BookingStatus
}{
	EventApprove:  {BookingStatusPendingApproval, BookingStatusPendingPayment},
	EventCheckIn:  {BookingStatusConfirmed, BookingStatusCheckedIn},
	EventCheckOut: {BookingStatusCheckedIn, BookingStatusCheckedOut},
}

// NextStatus computes the state an event leads to from the given state. It
// performs no I/O; callers persist the result under their own transaction.
func NextStatus(from BookingStatus, ev BookingEvent) (BookingStatus, error) {
	if ev == EventCancel {
		if from.Terminal() {
			return "", &StatusError{Current: from, Attempted: BookingStatusCancelled}
		}
		return BookingStatusCancelled, nil
	}
	t, ok := transitions[ev]
	if !ok || t.from != from {
		return "", &StatusError{Current: from, Attempted: t.to}
	}
	return t.to, nil
}

type Booking struct {
	ID         string        `json:"id"`
	Code       string        `json:"code"`
	CustomerID string        `json:"customer_id"`
	CheckIn    time.Time     `json:"check_in"`
	CheckOut   time.Time     `json:"check_out"`
	Guests     int           `json:"guests"`
	Status     BookingStatus `json:"status"`
	Notes      string        `json:"notes"`
	Items      []BookingItem `json:"items"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// TotalCents sums item prices. Unpriced items count as zero: a partially
// priced booking is still billable under current policy.
func (b *Booking) TotalCents() int64 {
	var total int64
	for _, it := range b.Items {
		if it.PriceCents != nil {
			total += *it.PriceCents
		}
	}
	return total
}

// HasAssignedRoom reports whether at least one item has a room set, the
// precondition for check-in.
func (b *Booking) HasAssignedRoom() bool {
	for _, it := range b.Items {
		if it.RoomID != nil {
			return true
		}
	}
	return false
}

type BookingItem struct {
	ID           string  `json:"id"`
	BookingID    string  `json:"booking_id"`
	RoomTypeID   string  `json:"room_type_id"`
	PriceCents   *int64  `json:"price_cents"`
	OccupantName *string `json:"occupant_name,omitempty"`
	RoomID       *string `json:"room_id,omitempty"`
}

type CreateBookingItemInput struct {
	RoomTypeID   string
	OccupantName *string
}

type CreateBookingInput struct {
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
	Notes    string
	Items    []CreateBookingItemInput
}

// BookingPatch carries a staff partial update. Nil fields are left untouched.
type BookingPatch struct {
	Guests *int
	Notes  *string
}

func (p BookingPatch) Empty() bool {
	return p.Guests == nil && p.Notes == nil
}
