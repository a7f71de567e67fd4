package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/MoisesNEY/hotel-management-system-sub001/internal/domain"
	"github.com/MoisesNEY/hotel-management-system-sub001/internal/handler/dto"
	"github.com/MoisesNEY/hotel-management-system-sub001/internal/middleware"
)

const dateLayout = "2006-01-02"

type BookingSvc interface {
	Create(ctx context.Context, actor domain.Actor, input domain.CreateBookingInput) (*domain.Booking, error)
	CreateWalkIn(ctx context.Context, actor domain.Actor, customerID string, input domain.CreateBookingInput) (*domain.Booking, error)
	Get(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error)
	List(ctx context.Context, actor domain.Actor) ([]*domain.Booking, error)
	Approve(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error)
	AssignRoom(ctx context.Context, actor domain.Actor, bookingID, itemID, roomID string) (*domain.Booking, error)
	CheckIn(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error)
	CheckOut(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, *domain.Invoice, error)
	Cancel(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error)
	Patch(ctx context.Context, actor domain.Actor, id string, patch domain.BookingPatch) (*domain.Booking, error)
}

type InvoiceSvc interface {
	Get(ctx context.Context, actor domain.Actor, id string) (*domain.Invoice, error)
	GetForBooking(ctx context.Context, actor domain.Actor, bookingID string) (*domain.Invoice, error)
	List(ctx context.Context, actor domain.Actor) ([]*domain.Invoice, error)
	Pay(ctx context.Context, actor domain.Actor, invoiceID string, amountCents int64, method domain.PaymentMethod) (*domain.Invoice, error)
}

type ServiceRequestSvc interface {
	Create(ctx context.Context, actor domain.Actor, bookingID, hotelServiceID, details string) (*domain.ServiceRequest, error)
	List(ctx context.Context, actor domain.Actor) ([]*domain.ServiceRequest, error)
	UpdateStatus(ctx context.Context, actor domain.Actor, id string, to domain.ServiceRequestStatus) (*domain.ServiceRequest, error)
}

type Handler struct {
	bookingService BookingSvc
	invoiceService InvoiceSvc
	requestService ServiceRequestSvc
}

func NewHandler(bookingService BookingSvc, invoiceService InvoiceSvc, requestService ServiceRequestSvc) *Handler {
	return &Handler{
		bookingService: bookingService,
		invoiceService: invoiceService,
		requestService: requestService,
	}
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input, ok := h.bookingInput(c, req.CheckIn, req.CheckOut, req.Guests, req.Notes, req.Items)
	if !ok {
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), middleware.ActorFromContext(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) CreateWalkInBooking(c *ginext.Context) {
	var req dto.WalkInBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input, ok := h.bookingInput(c, req.CheckIn, req.CheckOut, req.Guests, req.Notes, req.Items)
	if !ok {
		return
	}

	booking, err := h.bookingService.CreateWalkIn(c.Request.Context(), middleware.ActorFromContext(c), req.CustomerID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) bookingInput(c *ginext.Context, checkIn, checkOut string, guests int, notes string, items []dto.CreateBookingItemRequest) (domain.CreateBookingInput, bool) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid check_in, expected YYYY-MM-DD"})
		return domain.CreateBookingInput{}, false
	}

	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid check_out, expected YYYY-MM-DD"})
		return domain.CreateBookingInput{}, false
	}

	inputItems := make([]domain.CreateBookingItemInput, 0, len(items))
	for _, it := range items {
		inputItems = append(inputItems, domain.CreateBookingItemInput{
			RoomTypeID:   it.RoomTypeID,
			OccupantName: it.OccupantName,
		})
	}

	return domain.CreateBookingInput{
		CheckIn:  in,
		CheckOut: out,
		Guests:   guests,
		Notes:    notes,
		Items:    inputItems,
	}, true
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.Get(c.Request.Context(), middleware.ActorFromContext(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	bookings, err := h.bookingService.List(c.Request.Context(), middleware.ActorFromContext(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func (h *Handler) PatchBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.PatchBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	patch := domain.BookingPatch{Guests: req.Guests, Notes: req.Notes}
	booking, err := h.bookingService.Patch(c.Request.Context(), middleware.ActorFromContext(c), id, patch)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ApproveBooking(c *ginext.Context) {
	h.transition(c, h.bookingService.Approve)
}

func (h *Handler) CheckInBooking(c *ginext.Context) {
	h.transition(c, h.bookingService.CheckIn)
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	h.transition(c, h.bookingService.Cancel)
}

func (h *Handler) transition(c *ginext.Context, fn func(context.Context, domain.Actor, string) (*domain.Booking, error)) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := fn(c.Request.Context(), middleware.ActorFromContext(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CheckOutBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, invoice, err := h.bookingService.CheckOut(c.Request.Context(), middleware.ActorFromContext(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CheckOutResponse{
		Booking: dto.ToBookingResponse(booking),
		Invoice: dto.ToInvoiceResponse(invoice),
	})
}

func (h *Handler) AssignRoom(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.AssignRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.AssignRoom(c.Request.Context(), middleware.ActorFromContext(c), id, req.ItemID, req.RoomID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// Invoices

func (h *Handler) GetInvoice(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid invoice id"})
		return
	}

	invoice, err := h.invoiceService.Get(c.Request.Context(), middleware.ActorFromContext(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

func (h *Handler) GetBookingInvoice(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	invoice, err := h.invoiceService.GetForBooking(c.Request.Context(), middleware.ActorFromContext(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

func (h *Handler) ListInvoices(c *ginext.Context) {
	invoices, err := h.invoiceService.List(c.Request.Context(), middleware.ActorFromContext(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponses(invoices))
}

func (h *Handler) PayInvoice(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid invoice id"})
		return
	}

	var req dto.PayInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	method, err := domain.ParsePaymentMethod(req.Method)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "unknown payment method"})
		return
	}

	invoice, err := h.invoiceService.Pay(c.Request.Context(), middleware.ActorFromContext(c), id, req.AmountCents, method)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// Service requests

func (h *Handler) CreateServiceRequest(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.CreateServiceRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	sr, err := h.requestService.Create(c.Request.Context(), middleware.ActorFromContext(c), bookingID, req.HotelServiceID, req.Details)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToServiceRequestResponse(sr))
}

func (h *Handler) ListServiceRequests(c *ginext.Context) {
	requests, err := h.requestService.List(c.Request.Context(), middleware.ActorFromContext(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToServiceRequestResponses(requests))
}

func (h *Handler) UpdateServiceRequestStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid service request id"})
		return
	}

	var req dto.UpdateServiceRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	status, err := domain.ParseServiceRequestStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "unknown service request status"})
		return
	}

	sr, err := h.requestService.UpdateStatus(c.Request.Context(), middleware.ActorFromContext(c), id, status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToServiceRequestResponse(sr))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrBookingItemNotFound),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrRoomNotFound),
		errors.Is(err, domain.ErrRoomTypeNotFound),
		errors.Is(err, domain.ErrInvoiceNotFound),
		errors.Is(err, domain.ErrHotelServiceNotFound),
		errors.Is(err, domain.ErrServiceRequestNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrStatusTransition),
		errors.Is(err, domain.ErrRoomTypeMismatch),
		errors.Is(err, domain.ErrRoomUnavailable),
		errors.Is(err, domain.ErrRoomRequired),
		errors.Is(err, domain.ErrInvoiceClosed):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidDateRange):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
