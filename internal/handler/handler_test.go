package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/MoisesNEY/hotel-management-system-sub001/internal/domain"
	"github.com/MoisesNEY/hotel-management-system-sub001/internal/handler/dto"
	hmocks "github.com/MoisesNEY/hotel-management-system-sub001/internal/handler/mocks"
)

var testActor = domain.Actor{UserID: "u1", Role: domain.RoleClient}

func setupRouter(t *testing.T) (*hmocks.MockBookingSvc, *hmocks.MockInvoiceSvc, *hmocks.MockServiceRequestSvc, http.Handler) {
	t.Helper()
	bookingSvc := hmocks.NewMockBookingSvc(t)
	invoiceSvc := hmocks.NewMockInvoiceSvc(t)
	requestSvc := hmocks.NewMockServiceRequestSvc(t)

	h := NewHandler(bookingSvc, invoiceSvc, requestSvc)

	r := ginext.New("test")
	r.Use(func(c *ginext.Context) {
		c.Set("actor", testActor)
	})
	api := r.Group("/api")
	{
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/bookings/:id/approve", h.ApproveBooking)
		api.POST("/bookings/:id/assign-room", h.AssignRoom)
		api.POST("/bookings/:id/check-in", h.CheckInBooking)
		api.POST("/bookings/:id/check-out", h.CheckOutBooking)
		api.GET("/invoices/:id", h.GetInvoice)
		api.POST("/invoices/:id/pay", h.PayInvoice)
		api.POST("/bookings/:id/service-requests", h.CreateServiceRequest)
		api.POST("/service-requests/:id/status", h.UpdateServiceRequestStatus)
	}

	return bookingSvc, invoiceSvc, requestSvc, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	booking := &domain.Booking{
		ID:         uuid.New().String(),
		Code:       "BK-ABCD1234",
		CustomerID: uuid.New().String(),
		CheckIn:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
		Guests:     2,
		Status:     domain.BookingStatusPendingApproval,
	}
	bookingSvc.EXPECT().Create(mock.Anything, testActor, mock.Anything).Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		CheckIn:  "2025-06-01",
		CheckOut: "2025-06-04",
		Guests:   2,
		Items:    []dto.CreateBookingItemRequest{{RoomTypeID: uuid.New().String()}},
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, booking.ID, resp.ID)
	assert.Equal(t, "2025-06-01", resp.CheckIn)
	assert.Equal(t, string(domain.BookingStatusPendingApproval), resp.Status)
}

func TestHandler_CreateBooking_BadDate(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		CheckIn:  "June 1st",
		CheckOut: "2025-06-04",
		Guests:   2,
		Items:    []dto.CreateBookingItemRequest{{RoomTypeID: uuid.New().String()}},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_MissingItems(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", map[string]any{
		"check_in":  "2025-06-01",
		"check_out": "2025-06-04",
		"guests":    2,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBooking_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Get(mock.Anything, testActor, id).Return(nil, domain.ErrBookingNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ApproveBooking_Conflict(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Approve(mock.Anything, testActor, id).
		Return(nil, &domain.StatusError{
			Current:   domain.BookingStatusConfirmed,
			Attempted: domain.BookingStatusPendingPayment,
		})

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/approve", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CheckInBooking_RoomRequired(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().CheckIn(mock.Anything, testActor, id).Return(nil, domain.ErrRoomRequired)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/check-in", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CheckOutBooking_Success(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	booking := &domain.Booking{ID: id, Status: domain.BookingStatusCheckedOut}
	invoice := &domain.Invoice{
		ID:         uuid.New().String(),
		BookingID:  id,
		Status:     domain.InvoiceStatusIssued,
		TotalCents: 30_000,
		TaxCents:   4_500,
		Currency:   "USD",
	}
	bookingSvc.EXPECT().CheckOut(mock.Anything, testActor, id).Return(booking, invoice, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/check-out", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CheckOutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(domain.BookingStatusCheckedOut), resp.Booking.Status)
	assert.Equal(t, int64(30_000), resp.Invoice.TotalCents)
	assert.Equal(t, int64(4_500), resp.Invoice.TaxCents)
}

func TestHandler_AssignRoom_Unavailable(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	itemID := uuid.New().String()
	roomID := uuid.New().String()
	bookingSvc.EXPECT().AssignRoom(mock.Anything, testActor, id, itemID, roomID).
		Return(nil, domain.ErrRoomUnavailable)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/assign-room", dto.AssignRoomRequest{
		ItemID: itemID,
		RoomID: roomID,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelBooking_Forbidden(t *testing.T) {
	bookingSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Cancel(mock.Anything, testActor, id).Return(nil, domain.ErrForbidden)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/cancel", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Invoices ---

func TestHandler_PayInvoice_Success(t *testing.T) {
	_, invoiceSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	paid := &domain.Invoice{ID: id, Status: domain.InvoiceStatusPaid, TotalCents: 30_000, Currency: "USD"}
	invoiceSvc.EXPECT().
		Pay(mock.Anything, testActor, id, int64(30_000), domain.PaymentMethodCreditCard).
		Return(paid, nil)

	w := doJSON(t, r, http.MethodPost, "/api/invoices/"+id+"/pay", dto.PayInvoiceRequest{
		AmountCents: 30_000,
		Method:      "CREDIT_CARD",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.InvoiceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(domain.InvoiceStatusPaid), resp.Status)
}

func TestHandler_PayInvoice_UnknownMethod(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/invoices/"+uuid.New().String()+"/pay", dto.PayInvoiceRequest{
		AmountCents: 30_000,
		Method:      "BARTER",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_PayInvoice_Closed(t *testing.T) {
	_, invoiceSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	invoiceSvc.EXPECT().
		Pay(mock.Anything, testActor, id, int64(30_000), domain.PaymentMethodCash).
		Return(nil, domain.ErrInvoiceClosed)

	w := doJSON(t, r, http.MethodPost, "/api/invoices/"+id+"/pay", dto.PayInvoiceRequest{
		AmountCents: 30_000,
		Method:      "CASH",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetInvoice_NotAuthenticated(t *testing.T) {
	_, invoiceSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	invoiceSvc.EXPECT().Get(mock.Anything, testActor, id).Return(nil, domain.ErrNotAuthenticated)

	w := doJSON(t, r, http.MethodGet, "/api/invoices/"+id, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Service requests ---

func TestHandler_CreateServiceRequest_Success(t *testing.T) {
	_, _, requestSvc, r := setupRouter(t)

	bookingID := uuid.New().String()
	serviceID := uuid.New().String()
	request := &domain.ServiceRequest{
		ID:             uuid.New().String(),
		BookingID:      bookingID,
		HotelServiceID: serviceID,
		Status:         domain.ServiceRequestStatusOpen,
	}
	requestSvc.EXPECT().
		Create(mock.Anything, testActor, bookingID, serviceID, "extra towels").
		Return(request, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+bookingID+"/service-requests", dto.CreateServiceRequestRequest{
		HotelServiceID: serviceID,
		Details:        "extra towels",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ServiceRequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(domain.ServiceRequestStatusOpen), resp.Status)
}

func TestHandler_UpdateServiceRequestStatus_UnknownStatus(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/service-requests/"+uuid.New().String()+"/status",
		dto.UpdateServiceRequestStatusRequest{Status: "DONE"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateServiceRequestStatus_Conflict(t *testing.T) {
	_, _, requestSvc, r := setupRouter(t)

	id := uuid.New().String()
	requestSvc.EXPECT().
		UpdateStatus(mock.Anything, testActor, id, domain.ServiceRequestStatusCompleted).
		Return(nil, domain.ErrStatusTransition)

	w := doJSON(t, r, http.MethodPost, "/api/service-requests/"+id+"/status",
		dto.UpdateServiceRequestStatusRequest{Status: "COMPLETED"})

	assert.Equal(t, http.StatusConflict, w.Code)
}
