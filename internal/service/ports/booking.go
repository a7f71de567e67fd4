package ports

import (
	"context"
	"time"

	"github.com/MoisesNEY/hotel-management-system-sub001/internal/domain"
)

type BookingRepo interface {
	// Create persists a booking and its items in one transaction.
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// GetByIDForCustomer restricts the lookup to the owning customer at the
	// query boundary; a foreign booking reads as not found.
	GetByIDForCustomer(ctx context.Context, id, customerID string) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error)
	// UpdateStatus performs the guarded transition write. When the booking is
	// no longer in `from`, the result is a *domain.StatusError built from the
	// actual current status.
	UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) error
	// AssignRoom runs the full assignment check-and-write under one
	// serializing transaction (booking and room rows locked).
	AssignRoom(ctx context.Context, bookingID, itemID, roomID string) error
	Patch(ctx context.Context, id string, p domain.BookingPatch) error
	// CancelStale cancels bookings stuck in the given status for longer than
	// olderThan and returns what it cancelled.
	CancelStale(ctx context.Context, in domain.BookingStatus, olderThan time.Duration) ([]*domain.Booking, error)
}
