package ports

import (
	"context"

	"github.com/MoisesNEY/hotel-management-system-sub001/internal/domain"
)

// BookingNotifier is fire and forget: implementations log failures and never
// return them, so notification problems cannot roll back a booking.
type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, customer *domain.Customer, booking *domain.Booking)
	NotifyBookingStatusChanged(ctx context.Context, customer *domain.Customer, booking *domain.Booking)
	NotifyInvoiceIssued(ctx context.Context, customer *domain.Customer, invoice *domain.Invoice)
}
