package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MoisesNEY/hotel-management-system-sub001/internal/domain"
	"github.com/MoisesNEY/hotel-management-system-sub001/internal/service/ports/mocks"
)

type requestFixture struct {
	requestRepo  *mocks.MockServiceRequestRepo
	bookingRepo  *mocks.MockBookingRepo
	customerRepo *mocks.MockCustomerRepo
	serviceRepo  *mocks.MockHotelServiceRepo
	svc          *ServiceRequestService
}

func newRequestFixture(t *testing.T) *requestFixture {
	t.Helper()

	f := &requestFixture{
		requestRepo:  mocks.NewMockServiceRequestRepo(t),
		bookingRepo:  mocks.NewMockBookingRepo(t),
		customerRepo: mocks.NewMockCustomerRepo(t),
		serviceRepo:  mocks.NewMockHotelServiceRepo(t),
	}
	f.svc = NewServiceRequestService(
		f.requestRepo, f.bookingRepo, f.customerRepo, f.serviceRepo,
		newTestLogger(t),
	)

	return f
}

func TestServiceRequestService_Create(t *testing.T) {
	f := newRequestFixture(t)

	f.customerRepo.EXPECT().GetByUserID(mock.Anything, "u1").
		Return(&domain.Customer{ID: "c1"}, nil)
	f.bookingRepo.EXPECT().GetByIDForCustomer(mock.Anything, "b1", "c1").
		Return(&domain.Booking{ID: "b1", CustomerID: "c1", Status: domain.BookingStatusCheckedIn}, nil)
	f.serviceRepo.EXPECT().GetByID(mock.Anything, "svc1").
		Return(&domain.HotelService{ID: "svc1", Name: "Laundry"}, nil)
	f.requestRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	request, err := f.svc.Create(context.Background(), client, "b1", "svc1", "two shirts")

	require.NoError(t, err)
	assert.Equal(t, domain.ServiceRequestStatusOpen, request.Status)
	assert.Equal(t, "b1", request.BookingID)
	assert.NotEmpty(t, request.ID)
}

func TestServiceRequestService_Create_ForeignBooking(t *testing.T) {
	f := newRequestFixture(t)

	f.customerRepo.EXPECT().GetByUserID(mock.Anything, "u1").
		Return(&domain.Customer{ID: "c1"}, nil)
	f.bookingRepo.EXPECT().GetByIDForCustomer(mock.Anything, "b1", "c1").
		Return(nil, domain.ErrBookingNotFound)

	_, err := f.svc.Create(context.Background(), client, "b1", "svc1", "")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestServiceRequestService_Create_DeletedService(t *testing.T) {
	f := newRequestFixture(t)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1"}, nil)
	f.serviceRepo.EXPECT().GetByID(mock.Anything, "svc1").
		Return(nil, domain.ErrHotelServiceNotFound)

	_, err := f.svc.Create(context.Background(), staff, "b1", "svc1", "")

	assert.ErrorIs(t, err, domain.ErrHotelServiceNotFound)
}

func TestServiceRequestService_UpdateStatus(t *testing.T) {
	f := newRequestFixture(t)

	f.requestRepo.EXPECT().GetByID(mock.Anything, "sr1").
		Return(&domain.ServiceRequest{ID: "sr1", Status: domain.ServiceRequestStatusOpen}, nil)
	f.requestRepo.EXPECT().
		UpdateStatus(mock.Anything, "sr1", domain.ServiceRequestStatusOpen, domain.ServiceRequestStatusInProgress).
		Return(nil)

	request, err := f.svc.UpdateStatus(context.Background(), staff, "sr1", domain.ServiceRequestStatusInProgress)

	require.NoError(t, err)
	assert.Equal(t, domain.ServiceRequestStatusInProgress, request.Status)
}

func TestServiceRequestService_UpdateStatus_IllegalTransition(t *testing.T) {
	f := newRequestFixture(t)

	f.requestRepo.EXPECT().GetByID(mock.Anything, "sr1").
		Return(&domain.ServiceRequest{ID: "sr1", Status: domain.ServiceRequestStatusCompleted}, nil)

	_, err := f.svc.UpdateStatus(context.Background(), staff, "sr1", domain.ServiceRequestStatusInProgress)

	assert.ErrorIs(t, err, domain.ErrStatusTransition)
}

func TestServiceRequestService_UpdateStatus_ClientForbidden(t *testing.T) {
	f := newRequestFixture(t)

	_, err := f.svc.UpdateStatus(context.Background(), client, "sr1", domain.ServiceRequestStatusInProgress)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}
