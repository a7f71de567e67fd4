package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/MoisesNEY/hotel-management-system-sub001/internal/domain"
	"github.com/MoisesNEY/hotel-management-system-sub001/internal/service/ports"
)

// BookingPolicy is the part of the settlement policy the orchestrator needs:
// where walk-ins start, where approval lands, and how long an unpaid booking
// may wait before the scheduler cancels it.
type BookingPolicy struct {
	WalkInStatus  domain.BookingStatus
	ApproveTarget domain.BookingStatus
	PaymentTTL    time.Duration
}

// invoiceDeriver is the slice of the invoice service the orchestrator calls
// at transition boundaries.
type invoiceDeriver interface {
	DeriveForBooking(ctx context.Context, b *domain.Booking) (*domain.Invoice, error)
	CancelDrafts(ctx context.Context, bookingID string) error
}

type BookingService struct {
	bookingRepo  ports.BookingRepo
	roomTypeRepo ports.RoomTypeRepo
	customerRepo ports.CustomerRepo
	invoices     invoiceDeriver
	notifier     ports.BookingNotifier
	policy       BookingPolicy
	logger       logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	roomTypeRepo ports.RoomTypeRepo,
	customerRepo ports.CustomerRepo,
	invoices invoiceDeriver,
	notifier ports.BookingNotifier,
	policy BookingPolicy,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		roomTypeRepo: roomTypeRepo,
		customerRepo: customerRepo,
		invoices:     invoices,
		notifier:     notifier,
		policy:       policy,
		logger:       logger,
	}
}

func requireStaff(actor domain.Actor) error {
	if !actor.Authenticated() {
		return domain.ErrNotAuthenticated
	}
	if !actor.Staff() {
		return domain.ErrForbidden
	}
	return nil
}

func newBookingCode() string {
	return "BK-" + strings.ToUpper(uuid.New().String()[:8])
}

// Create opens a booking for the calling customer. The initial status is
// always PENDING_APPROVAL and every item is priced here from its room type;
// whatever status, price or room the client sent never reaches this point.
func (s *BookingService) Create(ctx context.Context, actor domain.Actor, input domain.CreateBookingInput) (*domain.Booking, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrNotAuthenticated
	}

	customer, err := s.customerRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("resolve customer: %w", err)
	}

	booking, err := s.build(ctx, customer.ID, input, domain.BookingStatusPendingApproval)
	if err != nil {
		return nil, err
	}

	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("code", booking.Code),
		logger.String("customer_id", customer.ID),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), customer, booking)

	return booking, nil
}

// CreateWalkIn opens a booking at the front desk on behalf of a customer.
// The initial status comes from policy.
func (s *BookingService) CreateWalkIn(ctx context.Context, actor domain.Actor, customerID string, input domain.CreateBookingInput) (*domain.Booking, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("resolve customer: %w", err)
	}

	booking, err := s.build(ctx, customer.ID, input, s.policy.WalkInStatus)
	if err != nil {
		return nil, err
	}

	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create walk-in booking: %w", err)
	}

	s.logger.Info("walk-in booking created",
		logger.String("booking_id", booking.ID),
		logger.String("customer_id", customer.ID),
		logger.String("status", string(booking.Status)),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), customer, booking)

	return booking, nil
}

func (s *BookingService) build(ctx context.Context, customerID string, input domain.CreateBookingInput, status domain.BookingStatus) (*domain.Booking, error) {
	if input.Guests < 1 {
		return nil, fmt.Errorf("%w: at least one guest required", domain.ErrValidation)
	}
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("%w: booking needs at least one room item", domain.ErrValidation)
	}
	if _, err := domain.Nights(input.CheckIn, input.CheckOut); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:         uuid.New().String(),
		Code:       newBookingCode(),
		CustomerID: customerID,
		CheckIn:    input.CheckIn,
		CheckOut:   input.CheckOut,
		Guests:     input.Guests,
		Status:     status,
		Notes:      input.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	for _, in := range input.Items {
		rt, err := s.roomTypeRepo.GetByID(ctx, in.RoomTypeID)
		if err != nil {
			return nil, fmt.Errorf("resolve room type: %w", err)
		}
		price, err := domain.StayPriceCents(input.CheckIn, input.CheckOut, rt.NightlyRateCents)
		if err != nil {
			return nil, err
		}
		booking.Items = append(booking.Items, domain.BookingItem{
			ID:           uuid.New().String(),
			BookingID:    booking.ID,
			RoomTypeID:   rt.ID,
			PriceCents:   &price,
			OccupantName: in.OccupantName,
		})
	}

	return booking, nil
}

// Get returns one booking. Staff see any booking; customers only their own,
// scoped inside the query so foreign bookings read as not found.
func (s *BookingService) Get(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrNotAuthenticated
	}
	if actor.Staff() {
		return s.bookingRepo.GetByID(ctx, id)
	}

	customer, err := s.customerRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("resolve customer: %w", err)
	}
	return s.bookingRepo.GetByIDForCustomer(ctx, id, customer.ID)
}

func (s *BookingService) List(ctx context.Context, actor domain.Actor) ([]*domain.Booking, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrNotAuthenticated
	}
	if actor.Staff() {
		return s.bookingRepo.List(ctx)
	}

	customer, err := s.customerRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("resolve customer: %w", err)
	}
	return s.bookingRepo.ListByCustomer(ctx, customer.ID)
}

// Approve moves a booking out of PENDING_APPROVAL. The target comes from
// policy; both PENDING_PAYMENT and CONFIRMED are legal.
func (s *BookingService) Approve(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	next, err := domain.NextStatus(booking.Status, domain.EventApprove)
	if err != nil {
		return nil, err
	}
	if s.policy.ApproveTarget != "" {
		next = s.policy.ApproveTarget
	}

	if err = s.bookingRepo.UpdateStatus(ctx, id, booking.Status, next); err != nil {
		return nil, err
	}
	booking.Status = next

	s.logger.Info("booking approved",
		logger.String("booking_id", booking.ID),
		logger.String("status", string(next)),
	)

	s.notifyStatus(ctx, booking)

	return booking, nil
}

// AssignRoom delegates the whole check-and-write to the repository, which
// runs it under one serializing transaction.
func (s *BookingService) AssignRoom(ctx context.Context, actor domain.Actor, bookingID, itemID, roomID string) (*domain.Booking, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}

	if err := s.bookingRepo.AssignRoom(ctx, bookingID, itemID, roomID); err != nil {
		return nil, err
	}

	s.logger.Info("room assigned",
		logger.String("booking_id", bookingID),
		logger.String("item_id", itemID),
		logger.String("room_id", roomID),
	)

	return s.bookingRepo.GetByID(ctx, bookingID)
}

func (s *BookingService) CheckIn(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	next, err := domain.NextStatus(booking.Status, domain.EventCheckIn)
	if err != nil {
		return nil, err
	}
	if !booking.HasAssignedRoom() {
		return nil, domain.ErrRoomRequired
	}

	if err = s.bookingRepo.UpdateStatus(ctx, id, booking.Status, next); err != nil {
		return nil, err
	}
	booking.Status = next

	s.logger.Info("booking checked in", logger.String("booking_id", booking.ID))

	return booking, nil
}

// CheckOut closes the stay and derives the invoice. The status write and
// the derivation commit separately, so a booking already CHECKED_OUT skips
// the transition and goes straight to the idempotent derivation; a failure
// between the two writes is repaired by calling CheckOut again.
func (s *BookingService) CheckOut(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, *domain.Invoice, error) {
	if err := requireStaff(actor); err != nil {
		return nil, nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.Status != domain.BookingStatusCheckedOut {
		next, err := domain.NextStatus(booking.Status, domain.EventCheckOut)
		if err != nil {
			return nil, nil, err
		}

		if err = s.bookingRepo.UpdateStatus(ctx, id, booking.Status, next); err != nil {
			return nil, nil, err
		}
		booking.Status = next
	}

	invoice, err := s.invoices.DeriveForBooking(ctx, booking)
	if err != nil {
		return nil, nil, fmt.Errorf("derive invoice: %w", err)
	}

	s.logger.Info("booking checked out",
		logger.String("booking_id", booking.ID),
		logger.String("invoice_id", invoice.ID),
	)

	return booking, invoice, nil
}

// Cancel is allowed from any non-terminal state. Staff cancel any booking,
// customers only their own. A DRAFT invoice, if one exists, is cancelled
// with the booking; no new invoice is ever created on this path.
func (s *BookingService) Cancel(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrNotAuthenticated
	}

	var (
		booking *domain.Booking
		err     error
	)
	if actor.Staff() {
		booking, err = s.bookingRepo.GetByID(ctx, id)
	} else {
		var customer *domain.Customer
		customer, err = s.customerRepo.GetByUserID(ctx, actor.UserID)
		if err != nil {
			return nil, fmt.Errorf("resolve customer: %w", err)
		}
		booking, err = s.bookingRepo.GetByIDForCustomer(ctx, id, customer.ID)
	}
	if err != nil {
		return nil, err
	}

	next, err := domain.NextStatus(booking.Status, domain.EventCancel)
	if err != nil {
		return nil, err
	}

	if err = s.bookingRepo.UpdateStatus(ctx, id, booking.Status, next); err != nil {
		return nil, err
	}
	booking.Status = next

	if err = s.invoices.CancelDrafts(ctx, booking.ID); err != nil {
		return nil, fmt.Errorf("cancel draft invoices: %w", err)
	}

	s.logger.Info("booking cancelled", logger.String("booking_id", booking.ID))

	s.notifyStatus(ctx, booking)

	return booking, nil
}

// Patch applies a staff partial update. Nil fields stay untouched.
func (s *BookingService) Patch(ctx context.Context, actor domain.Actor, id string, patch domain.BookingPatch) (*domain.Booking, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}
	if patch.Empty() {
		return s.bookingRepo.GetByID(ctx, id)
	}
	if patch.Guests != nil && *patch.Guests < 1 {
		return nil, fmt.Errorf("%w: at least one guest required", domain.ErrValidation)
	}

	if err := s.bookingRepo.Patch(ctx, id, patch); err != nil {
		return nil, err
	}

	return s.bookingRepo.GetByID(ctx, id)
}

// CancelStale cancels bookings that sat unpaid past the policy TTL. Called
// by the scheduler, not by request handlers.
func (s *BookingService) CancelStale(ctx context.Context) ([]*domain.Booking, error) {
	cancelled, err := s.bookingRepo.CancelStale(ctx, domain.BookingStatusPendingPayment, s.policy.PaymentTTL)
	if err != nil {
		return nil, fmt.Errorf("cancel stale: %w", err)
	}

	if len(cancelled) > 0 {
		s.logger.Info("stale bookings cancelled", logger.Int("count", len(cancelled)))
		go s.notifyCancelled(context.WithoutCancel(ctx), cancelled)
	}

	return cancelled, nil
}

func (s *BookingService) notifyCancelled(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		customer, err := s.customerRepo.GetByID(ctx, b.CustomerID)
		if err != nil {
			s.logger.Error("failed to get customer for cancel notification",
				logger.String("customer_id", b.CustomerID),
			)
			continue
		}
		s.notifier.NotifyBookingStatusChanged(ctx, customer, b)
	}
}

func (s *BookingService) notifyStatus(ctx context.Context, b *domain.Booking) {
	customer, err := s.customerRepo.GetByID(ctx, b.CustomerID)
	if err != nil {
		s.logger.Error("failed to get customer for notification",
			logger.String("customer_id", b.CustomerID),
			logger.String("error", err.Error()),
		)
		return
	}
	go s.notifier.NotifyBookingStatusChanged(context.WithoutCancel(ctx), customer, b)
}
