package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/MoisesNEY/hotel-management-system-sub001/internal/domain"
	"github.com/MoisesNEY/hotel-management-system-sub001/internal/service/ports"
)

// InvoicePolicy is the billing side of the settlement policy: the flat tax
// rate in basis points and the invoice currency.
type InvoicePolicy struct {
	TaxRateBP int64
	Currency  string
}

type InvoiceService struct {
	invoiceRepo  ports.InvoiceRepo
	bookingRepo  ports.BookingRepo
	customerRepo ports.CustomerRepo
	notifier     ports.BookingNotifier
	policy       InvoicePolicy
	logger       logger.Logger
}

func NewInvoiceService(
	invoiceRepo ports.InvoiceRepo,
	bookingRepo ports.BookingRepo,
	customerRepo ports.CustomerRepo,
	notifier ports.BookingNotifier,
	policy InvoicePolicy,
	logger logger.Logger,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		bookingRepo:  bookingRepo,
		customerRepo: customerRepo,
		notifier:     notifier,
		policy:       policy,
		logger:       logger,
	}
}

// DeriveForBooking builds the invoice from the booking's items and persists
// it. Calling it twice for the same booking yields the same single invoice;
// the unique constraint on booking_id closes the concurrent case. Items
// without a price count as zero. The booking's own status is not touched.
func (s *InvoiceService) DeriveForBooking(ctx context.Context, b *domain.Booking) (*domain.Invoice, error) {
	total := b.TotalCents()
	inv := &domain.Invoice{
		ID:         uuid.New().String(),
		Code:       "INV-" + b.Code,
		BookingID:  b.ID,
		Status:     domain.InvoiceStatusIssued,
		IssuedAt:   time.Now().UTC(),
		TotalCents: total,
		TaxCents:   domain.TaxCents(total, s.policy.TaxRateBP),
		Currency:   s.policy.Currency,
	}

	created, err := s.invoiceRepo.CreateIdempotent(ctx, inv)
	if err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}

	if created.ID == inv.ID {
		s.logger.Info("invoice issued",
			logger.String("invoice_id", created.ID),
			logger.String("booking_id", b.ID),
			logger.Int64("total_cents", created.TotalCents),
		)
		if customer, err := s.customerRepo.GetByID(ctx, b.CustomerID); err == nil {
			go s.notifier.NotifyInvoiceIssued(context.WithoutCancel(ctx), customer, created)
		}
	}

	return created, nil
}

// CancelDrafts voids any DRAFT invoice of a cancelled booking.
func (s *InvoiceService) CancelDrafts(ctx context.Context, bookingID string) error {
	return s.invoiceRepo.CancelDrafts(ctx, bookingID)
}

// Get returns one invoice. Staff read anything; a customer must own the
// billing chain (invoice -> booking -> customer).
func (s *InvoiceService) Get(ctx context.Context, actor domain.Actor, id string) (*domain.Invoice, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrNotAuthenticated
	}

	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.Staff() {
		if err = s.checkOwnership(ctx, actor, inv); err != nil {
			return nil, err
		}
	}

	return inv, nil
}

// GetForBooking is the staff-side lookup of a booking's invoice.
func (s *InvoiceService) GetForBooking(ctx context.Context, actor domain.Actor, bookingID string) (*domain.Invoice, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}
	return s.invoiceRepo.GetByBooking(ctx, bookingID)
}

// List returns every invoice for staff and the caller's own for customers.
func (s *InvoiceService) List(ctx context.Context, actor domain.Actor) ([]*domain.Invoice, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrNotAuthenticated
	}
	if actor.Staff() {
		return s.invoiceRepo.List(ctx)
	}

	customer, err := s.customerRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("resolve customer: %w", err)
	}
	return s.invoiceRepo.ListByCustomer(ctx, customer.ID)
}

// Pay settles an invoice in full. Checks run in a fixed order: identity,
// existence, ownership, open status, amount; only then is anything written.
// The payment itself is not idempotent; a caller retrying after a timeout
// must re-read the invoice status first.
func (s *InvoiceService) Pay(ctx context.Context, actor domain.Actor, invoiceID string, amountCents int64, method domain.PaymentMethod) (*domain.Invoice, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrNotAuthenticated
	}

	inv, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if err = s.checkOwnership(ctx, actor, inv); err != nil {
		return nil, err
	}

	if inv.Status.Closed() {
		return nil, domain.ErrInvoiceClosed
	}
	if amountCents <= 0 {
		return nil, fmt.Errorf("%w: payment amount must be positive", domain.ErrValidation)
	}
	if amountCents != inv.TotalCents {
		return nil, fmt.Errorf("%w: payment must settle the invoice total", domain.ErrValidation)
	}

	payment := &domain.Payment{
		ID:          uuid.New().String(),
		InvoiceID:   inv.ID,
		AmountCents: amountCents,
		Method:      method,
		PaidAt:      time.Now().UTC(),
	}

	updated, err := s.invoiceRepo.ApplyPayment(ctx, payment)
	if err != nil {
		return nil, err
	}

	// Full settlement confirms a booking still awaiting payment. For any
	// other booking state the guarded update matches no row and the
	// resulting StatusError is dropped.
	err = s.bookingRepo.UpdateStatus(ctx, inv.BookingID,
		domain.BookingStatusPendingPayment, domain.BookingStatusConfirmed)
	if err != nil {
		var se *domain.StatusError
		if !errors.As(err, &se) {
			return nil, fmt.Errorf("confirm booking: %w", err)
		}
	} else {
		s.logger.Info("booking confirmed by payment",
			logger.String("booking_id", inv.BookingID),
		)
	}

	s.logger.Info("invoice paid",
		logger.String("invoice_id", updated.ID),
		logger.Int64("amount_cents", amountCents),
		logger.String("method", string(method)),
	)

	return updated, nil
}

// checkOwnership walks Invoice -> Booking -> Customer and compares against
// the caller. An actor without a customer record owns nothing.
func (s *InvoiceService) checkOwnership(ctx context.Context, actor domain.Actor, inv *domain.Invoice) error {
	booking, err := s.bookingRepo.GetByID(ctx, inv.BookingID)
	if err != nil {
		return fmt.Errorf("get invoice booking: %w", err)
	}

	customer, err := s.customerRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return domain.ErrForbidden
		}
		return fmt.Errorf("resolve customer: %w", err)
	}

	if booking.CustomerID != customer.ID {
		return domain.ErrForbidden
	}

	return nil
}
