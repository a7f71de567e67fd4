package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/MoisesNEY/hotel-management-system-sub001/internal/domain"
	"github.com/MoisesNEY/hotel-management-system-sub001/internal/service/ports"
)

type ServiceRequestService struct {
	requestRepo  ports.ServiceRequestRepo
	bookingRepo  ports.BookingRepo
	customerRepo ports.CustomerRepo
	serviceRepo  ports.HotelServiceRepo
	logger       logger.Logger
}

func NewServiceRequestService(
	requestRepo ports.ServiceRequestRepo,
	bookingRepo ports.BookingRepo,
	customerRepo ports.CustomerRepo,
	serviceRepo ports.HotelServiceRepo,
	logger logger.Logger,
) *ServiceRequestService {
	return &ServiceRequestService{
		requestRepo:  requestRepo,
		bookingRepo:  bookingRepo,
		customerRepo: customerRepo,
		serviceRepo:  serviceRepo,
		logger:       logger,
	}
}

// Create opens a request against the caller's own booking. The request
// lifecycle is independent of the booking status.
func (s *ServiceRequestService) Create(ctx context.Context, actor domain.Actor, bookingID, hotelServiceID, details string) (*domain.ServiceRequest, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrNotAuthenticated
	}

	var (
		booking *domain.Booking
		err     error
	)
	if actor.Staff() {
		booking, err = s.bookingRepo.GetByID(ctx, bookingID)
	} else {
		var customer *domain.Customer
		customer, err = s.customerRepo.GetByUserID(ctx, actor.UserID)
		if err != nil {
			return nil, fmt.Errorf("resolve customer: %w", err)
		}
		booking, err = s.bookingRepo.GetByIDForCustomer(ctx, bookingID, customer.ID)
	}
	if err != nil {
		return nil, err
	}

	if _, err = s.serviceRepo.GetByID(ctx, hotelServiceID); err != nil {
		return nil, err
	}

	request := &domain.ServiceRequest{
		ID:             uuid.New().String(),
		BookingID:      booking.ID,
		HotelServiceID: hotelServiceID,
		Details:        details,
		Status:         domain.ServiceRequestStatusOpen,
		CreatedAt:      time.Now().UTC(),
	}

	if err = s.requestRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("create service request: %w", err)
	}

	s.logger.Info("service request created",
		logger.String("request_id", request.ID),
		logger.String("booking_id", booking.ID),
	)

	return request, nil
}

func (s *ServiceRequestService) List(ctx context.Context, actor domain.Actor) ([]*domain.ServiceRequest, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrNotAuthenticated
	}

	customer, err := s.customerRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("resolve customer: %w", err)
	}
	return s.requestRepo.ListByCustomer(ctx, customer.ID)
}

// UpdateStatus advances a request along OPEN -> IN_PROGRESS -> COMPLETED or
// REJECTED. Staff only.
func (s *ServiceRequestService) UpdateStatus(ctx context.Context, actor domain.Actor, id string, to domain.ServiceRequestStatus) (*domain.ServiceRequest, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}

	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.ValidServiceRequestTransition(request.Status, to) {
		return nil, fmt.Errorf("%w: service request %s -> %s", domain.ErrStatusTransition, request.Status, to)
	}

	if err = s.requestRepo.UpdateStatus(ctx, id, request.Status, to); err != nil {
		return nil, err
	}
	request.Status = to

	s.logger.Info("service request updated",
		logger.String("request_id", request.ID),
		logger.String("status", string(to)),
	)

	return request, nil
}
