package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MoisesNEY/hotel-management-system-sub001/internal/domain"
	"github.com/MoisesNEY/hotel-management-system-sub001/internal/service/ports/mocks"
)

type invoiceFixture struct {
	invoiceRepo  *mocks.MockInvoiceRepo
	bookingRepo  *mocks.MockBookingRepo
	customerRepo *mocks.MockCustomerRepo
	notifier     *mocks.MockBookingNotifier
	svc          *InvoiceService
}

func newInvoiceFixture(t *testing.T) *invoiceFixture {
	t.Helper()

	f := &invoiceFixture{
		invoiceRepo:  mocks.NewMockInvoiceRepo(t),
		bookingRepo:  mocks.NewMockBookingRepo(t),
		customerRepo: mocks.NewMockCustomerRepo(t),
		notifier:     mocks.NewMockBookingNotifier(t),
	}
	f.svc = NewInvoiceService(
		f.invoiceRepo, f.bookingRepo, f.customerRepo, f.notifier,
		InvoicePolicy{TaxRateBP: 1500, Currency: "USD"},
		newTestLogger(t),
	)

	return f
}

func TestInvoiceService_DeriveForBooking(t *testing.T) {
	f := newInvoiceFixture(t)

	price := int64(30_000)
	booking := &domain.Booking{
		ID:         "b1",
		Code:       "BK-TEST",
		CustomerID: "c1",
		Items:      []domain.BookingItem{{ID: "i1", PriceCents: &price}},
	}

	customer := &domain.Customer{ID: "c1"}
	f.invoiceRepo.EXPECT().CreateIdempotent(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
			return inv, nil
		})
	f.customerRepo.EXPECT().GetByID(mock.Anything, "c1").Return(customer, nil)
	f.notifier.EXPECT().NotifyInvoiceIssued(mock.Anything, customer, mock.Anything).Return()

	invoice, err := f.svc.DeriveForBooking(context.Background(), booking)

	require.NoError(t, err)
	assert.Equal(t, "INV-BK-TEST", invoice.Code)
	assert.Equal(t, int64(30_000), invoice.TotalCents)
	assert.Equal(t, int64(4_500), invoice.TaxCents)
	assert.Equal(t, "USD", invoice.Currency)
	assert.Equal(t, domain.InvoiceStatusIssued, invoice.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestInvoiceService_DeriveForBooking_AlreadyExists(t *testing.T) {
	f := newInvoiceFixture(t)

	booking := &domain.Booking{ID: "b1", Code: "BK-TEST", CustomerID: "c1"}
	existing := &domain.Invoice{ID: "inv1", BookingID: "b1", Status: domain.InvoiceStatusIssued}

	f.invoiceRepo.EXPECT().CreateIdempotent(mock.Anything, mock.Anything).Return(existing, nil)

	invoice, err := f.svc.DeriveForBooking(context.Background(), booking)

	// The existing invoice comes back untouched and nobody is re-notified.
	require.NoError(t, err)
	assert.Equal(t, "inv1", invoice.ID)
}

func TestInvoiceService_DeriveForBooking_UnpricedItemsCountZero(t *testing.T) {
	f := newInvoiceFixture(t)

	price := int64(10_000)
	booking := &domain.Booking{
		ID:         "b1",
		Code:       "BK-TEST",
		CustomerID: "c1",
		Items: []domain.BookingItem{
			{ID: "i1", PriceCents: &price},
			{ID: "i2", PriceCents: nil},
		},
	}

	f.invoiceRepo.EXPECT().CreateIdempotent(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
			return inv, nil
		})
	f.customerRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Customer{ID: "c1"}, nil)
	f.notifier.EXPECT().NotifyInvoiceIssued(mock.Anything, mock.Anything, mock.Anything).Return()

	invoice, err := f.svc.DeriveForBooking(context.Background(), booking)

	require.NoError(t, err)
	assert.Equal(t, int64(10_000), invoice.TotalCents)
	assert.Equal(t, int64(1_500), invoice.TaxCents)

	time.Sleep(50 * time.Millisecond)
}

func TestInvoiceService_Get_OwnershipEnforced(t *testing.T) {
	f := newInvoiceFixture(t)

	inv := &domain.Invoice{ID: "inv1", BookingID: "b1"}
	f.invoiceRepo.EXPECT().GetByID(mock.Anything, "inv1").Return(inv, nil)
	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1", CustomerID: "c2"}, nil)
	f.customerRepo.EXPECT().GetByUserID(mock.Anything, "u1").
		Return(&domain.Customer{ID: "c1", UserID: "u1"}, nil)

	_, err := f.svc.Get(context.Background(), client, "inv1")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestInvoiceService_Get_StaffSkipsOwnership(t *testing.T) {
	f := newInvoiceFixture(t)

	inv := &domain.Invoice{ID: "inv1", BookingID: "b1"}
	f.invoiceRepo.EXPECT().GetByID(mock.Anything, "inv1").Return(inv, nil)

	got, err := f.svc.Get(context.Background(), staff, "inv1")

	require.NoError(t, err)
	assert.Equal(t, "inv1", got.ID)
}

func TestInvoiceService_Pay(t *testing.T) {
	f := newInvoiceFixture(t)

	inv := &domain.Invoice{
		ID:         "inv1",
		BookingID:  "b1",
		Status:     domain.InvoiceStatusIssued,
		TotalCents: 30_000,
	}
	paid := &domain.Invoice{ID: "inv1", BookingID: "b1", Status: domain.InvoiceStatusPaid, TotalCents: 30_000}

	f.invoiceRepo.EXPECT().GetByID(mock.Anything, "inv1").Return(inv, nil)
	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1", CustomerID: "c1"}, nil)
	f.customerRepo.EXPECT().GetByUserID(mock.Anything, "u1").
		Return(&domain.Customer{ID: "c1", UserID: "u1"}, nil)
	f.invoiceRepo.EXPECT().ApplyPayment(mock.Anything, mock.Anything).
		Run(func(_ context.Context, p *domain.Payment) {
			assert.Equal(t, "inv1", p.InvoiceID)
			assert.Equal(t, int64(30_000), p.AmountCents)
			assert.Equal(t, domain.PaymentMethodCreditCard, p.Method)
		}).
		Return(paid, nil)

	// The usual case: the invoice was derived at check-out, so the booking
	// is terminal and the confirmation update is a rejected no-op.
	f.bookingRepo.EXPECT().
		UpdateStatus(mock.Anything, "b1", domain.BookingStatusPendingPayment, domain.BookingStatusConfirmed).
		Return(&domain.StatusError{
			Current:   domain.BookingStatusCheckedOut,
			Attempted: domain.BookingStatusConfirmed,
		})

	got, err := f.svc.Pay(context.Background(), client, "inv1", 30_000, domain.PaymentMethodCreditCard)

	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPaid, got.Status)
}

func TestInvoiceService_Pay_ConfirmsPendingBooking(t *testing.T) {
	f := newInvoiceFixture(t)

	inv := &domain.Invoice{ID: "inv1", BookingID: "b1", Status: domain.InvoiceStatusIssued, TotalCents: 30_000}
	paid := &domain.Invoice{ID: "inv1", BookingID: "b1", Status: domain.InvoiceStatusPaid, TotalCents: 30_000}

	f.invoiceRepo.EXPECT().GetByID(mock.Anything, "inv1").Return(inv, nil)
	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1", CustomerID: "c1", Status: domain.BookingStatusPendingPayment}, nil)
	f.customerRepo.EXPECT().GetByUserID(mock.Anything, "u1").
		Return(&domain.Customer{ID: "c1", UserID: "u1"}, nil)
	f.invoiceRepo.EXPECT().ApplyPayment(mock.Anything, mock.Anything).Return(paid, nil)
	f.bookingRepo.EXPECT().
		UpdateStatus(mock.Anything, "b1", domain.BookingStatusPendingPayment, domain.BookingStatusConfirmed).
		Return(nil)

	got, err := f.svc.Pay(context.Background(), client, "inv1", 30_000, domain.PaymentMethodCreditCard)

	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPaid, got.Status)
}

func TestInvoiceService_List_ClientScoped(t *testing.T) {
	f := newInvoiceFixture(t)

	own := []*domain.Invoice{{ID: "inv1", BookingID: "b1"}}
	f.customerRepo.EXPECT().GetByUserID(mock.Anything, "u1").
		Return(&domain.Customer{ID: "c1", UserID: "u1"}, nil)
	f.invoiceRepo.EXPECT().ListByCustomer(mock.Anything, "c1").Return(own, nil)

	got, err := f.svc.List(context.Background(), client)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestInvoiceService_List_StaffUnrestricted(t *testing.T) {
	f := newInvoiceFixture(t)

	// Staff have no customer record of their own; the listing must not try
	// to resolve one.
	all := []*domain.Invoice{
		{ID: "inv1", BookingID: "b1"},
		{ID: "inv2", BookingID: "b2"},
	}
	f.invoiceRepo.EXPECT().List(mock.Anything).Return(all, nil)

	got, err := f.svc.List(context.Background(), staff)

	require.NoError(t, err)
	assert.Len(t, got, 2)
	f.customerRepo.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
}

func TestInvoiceService_Pay_ForeignInvoice(t *testing.T) {
	f := newInvoiceFixture(t)

	inv := &domain.Invoice{ID: "inv1", BookingID: "b1", Status: domain.InvoiceStatusIssued, TotalCents: 30_000}
	f.invoiceRepo.EXPECT().GetByID(mock.Anything, "inv1").Return(inv, nil)
	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1", CustomerID: "c2"}, nil)
	f.customerRepo.EXPECT().GetByUserID(mock.Anything, "u1").
		Return(&domain.Customer{ID: "c1", UserID: "u1"}, nil)

	_, err := f.svc.Pay(context.Background(), client, "inv1", 30_000, domain.PaymentMethodCash)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestInvoiceService_Pay_StaffWithoutCustomerRecord(t *testing.T) {
	f := newInvoiceFixture(t)

	// Ownership binds every payer, including staff. An actor with no
	// customer record owns nothing.
	inv := &domain.Invoice{ID: "inv1", BookingID: "b1", Status: domain.InvoiceStatusIssued, TotalCents: 30_000}
	f.invoiceRepo.EXPECT().GetByID(mock.Anything, "inv1").Return(inv, nil)
	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1", CustomerID: "c1"}, nil)
	f.customerRepo.EXPECT().GetByUserID(mock.Anything, "staff1").
		Return(nil, domain.ErrCustomerNotFound)

	_, err := f.svc.Pay(context.Background(), staff, "inv1", 30_000, domain.PaymentMethodCash)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestInvoiceService_Pay_Closed(t *testing.T) {
	f := newInvoiceFixture(t)

	inv := &domain.Invoice{ID: "inv1", BookingID: "b1", Status: domain.InvoiceStatusPaid, TotalCents: 30_000}
	f.invoiceRepo.EXPECT().GetByID(mock.Anything, "inv1").Return(inv, nil)
	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1", CustomerID: "c1"}, nil)
	f.customerRepo.EXPECT().GetByUserID(mock.Anything, "u1").
		Return(&domain.Customer{ID: "c1", UserID: "u1"}, nil)

	_, err := f.svc.Pay(context.Background(), client, "inv1", 30_000, domain.PaymentMethodCash)

	assert.ErrorIs(t, err, domain.ErrInvoiceClosed)
}

func TestInvoiceService_Pay_PartialAmountRejected(t *testing.T) {
	f := newInvoiceFixture(t)

	inv := &domain.Invoice{ID: "inv1", BookingID: "b1", Status: domain.InvoiceStatusIssued, TotalCents: 30_000}
	f.invoiceRepo.EXPECT().GetByID(mock.Anything, "inv1").Return(inv, nil)
	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1", CustomerID: "c1"}, nil)
	f.customerRepo.EXPECT().GetByUserID(mock.Anything, "u1").
		Return(&domain.Customer{ID: "c1", UserID: "u1"}, nil)

	_, err := f.svc.Pay(context.Background(), client, "inv1", 15_000, domain.PaymentMethodCash)

	assert.ErrorIs(t, err, domain.ErrValidation)
}
