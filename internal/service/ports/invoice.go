package ports

import (
	"context"

	"github.com/MoisesNEY/hotel-management-system-sub001/internal/domain"
)

type InvoiceRepo interface {
	// CreateIdempotent inserts the invoice unless the booking already has
	// one, in which case the existing invoice is returned unchanged.
	CreateIdempotent(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
	GetByBooking(ctx context.Context, bookingID string) (*domain.Invoice, error)
	List(ctx context.Context) ([]*domain.Invoice, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Invoice, error)
	// ApplyPayment records the payment and flips the invoice to PAID inside
	// one transaction with the invoice row locked. Closed invoices yield
	// domain.ErrInvoiceClosed.
	ApplyPayment(ctx context.Context, p *domain.Payment) (*domain.Invoice, error)
	// CancelDrafts cancels any DRAFT invoices of the booking. No-op when
	// there are none.
	CancelDrafts(ctx context.Context, bookingID string) error
}
