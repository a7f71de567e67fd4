package dto

import (
	"time"

	"github.com/MoisesNEY/hotel-management-system-sub001/internal/domain"
)

const dateLayout = "2006-01-02"

type BookingItemResponse struct {
	ID           string  `json:"id"`
	RoomTypeID   string  `json:"room_type_id"`
	PriceCents   *int64  `json:"price_cents"`
	OccupantName *string `json:"occupant_name,omitempty"`
	RoomID       *string `json:"room_id,omitempty"`
}

type BookingResponse struct {
	ID         string                `json:"id"`
	Code       string                `json:"code"`
	CustomerID string                `json:"customer_id"`
	CheckIn    string                `json:"check_in"`
	CheckOut   string                `json:"check_out"`
	Guests     int                   `json:"guests"`
	Status     string                `json:"status"`
	Notes      string                `json:"notes,omitempty"`
	TotalCents int64                 `json:"total_cents"`
	Items      []BookingItemResponse `json:"items"`
	CreatedAt  string                `json:"created_at"`
	UpdatedAt  string                `json:"updated_at"`
}

type CheckOutResponse struct {
	Booking BookingResponse `json:"booking"`
	Invoice InvoiceResponse `json:"invoice"`
}

type PaymentResponse struct {
	ID          string `json:"id"`
	AmountCents int64  `json:"amount_cents"`
	Method      string `json:"method"`
	PaidAt      string `json:"paid_at"`
}

type InvoiceResponse struct {
	ID         string            `json:"id"`
	Code       string            `json:"code"`
	BookingID  string            `json:"booking_id"`
	Status     string            `json:"status"`
	IssuedAt   string            `json:"issued_at"`
	TotalCents int64             `json:"total_cents"`
	TaxCents   int64             `json:"tax_cents"`
	Currency   string            `json:"currency"`
	Payments   []PaymentResponse `json:"payments"`
}

type ServiceRequestResponse struct {
	ID             string `json:"id"`
	BookingID      string `json:"booking_id"`
	HotelServiceID string `json:"hotel_service_id"`
	Details        string `json:"details,omitempty"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	items := make([]BookingItemResponse, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, BookingItemResponse{
			ID:           it.ID,
			RoomTypeID:   it.RoomTypeID,
			PriceCents:   it.PriceCents,
			OccupantName: it.OccupantName,
			RoomID:       it.RoomID,
		})
	}

	return BookingResponse{
		ID:         b.ID,
		Code:       b.Code,
		CustomerID: b.CustomerID,
		CheckIn:    b.CheckIn.Format(dateLayout),
		CheckOut:   b.CheckOut.Format(dateLayout),
		Guests:     b.Guests,
		Status:     string(b.Status),
		Notes:      b.Notes,
		TotalCents: b.TotalCents(),
		Items:      items,
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  b.UpdatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponses(bookings []*domain.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, ToBookingResponse(b))
	}
	return out
}

func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	payments := make([]PaymentResponse, 0, len(inv.Payments))
	for _, p := range inv.Payments {
		payments = append(payments, PaymentResponse{
			ID:          p.ID,
			AmountCents: p.AmountCents,
			Method:      string(p.Method),
			PaidAt:      p.PaidAt.Format(time.RFC3339),
		})
	}

	return InvoiceResponse{
		ID:         inv.ID,
		Code:       inv.Code,
		BookingID:  inv.BookingID,
		Status:     string(inv.Status),
		IssuedAt:   inv.IssuedAt.Format(time.RFC3339),
		TotalCents: inv.TotalCents,
		TaxCents:   inv.TaxCents,
		Currency:   inv.Currency,
		Payments:   payments,
	}
}

func ToInvoiceResponses(invoices []*domain.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, ToInvoiceResponse(inv))
	}
	return out
}

func ToServiceRequestResponse(sr *domain.ServiceRequest) ServiceRequestResponse {
	return ServiceRequestResponse{
		ID:             sr.ID,
		BookingID:      sr.BookingID,
		HotelServiceID: sr.HotelServiceID,
		Details:        sr.Details,
		Status:         string(sr.Status),
		CreatedAt:      sr.CreatedAt.Format(time.RFC3339),
	}
}

func ToServiceRequestResponses(requests []*domain.ServiceRequest) []ServiceRequestResponse {
	out := make([]ServiceRequestResponse, 0, len(requests))
	for _, sr := range requests {
		out = append(out, ToServiceRequestResponse(sr))
	}
	return out
}
