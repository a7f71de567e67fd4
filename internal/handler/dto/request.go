package dto

type CreateBookingItemRequest struct {
	RoomTypeID   string  `json:"room_type_id" binding:"required,uuid"`
	OccupantName *string `json:"occupant_name"`
}

type CreateBookingRequest struct {
	CheckIn  string                     `json:"check_in" binding:"required"`
	CheckOut string                     `json:"check_out" binding:"required"`
	Guests   int                        `json:"guests" binding:"required,gt=0"`
	Notes    string                     `json:"notes"`
	Items    []CreateBookingItemRequest `json:"items" binding:"required,min=1,dive"`
}

type WalkInBookingRequest struct {
	CustomerID string                     `json:"customer_id" binding:"required,uuid"`
	CheckIn    string                     `json:"check_in" binding:"required"`
	CheckOut   string                     `json:"check_out" binding:"required"`
	Guests     int                        `json:"guests" binding:"required,gt=0"`
	Notes      string                     `json:"notes"`
	Items      []CreateBookingItemRequest `json:"items" binding:"required,min=1,dive"`
}

// PatchBookingRequest distinguishes absent fields from zero values: a nil
// pointer means "leave unchanged".
type PatchBookingRequest struct {
	Guests *int    `json:"guests"`
	Notes  *string `json:"notes"`
}

type AssignRoomRequest struct {
	ItemID string `json:"item_id" binding:"required,uuid"`
	RoomID string `json:"room_id" binding:"required,uuid"`
}

type PayInvoiceRequest struct {
	AmountCents int64  `json:"amount_cents" binding:"required,gt=0"`
	Method      string `json:"method" binding:"required"`
}

type CreateServiceRequestRequest struct {
	HotelServiceID string `json:"hotel_service_id" binding:"required,uuid"`
	Details        string `json:"details"`
}

type UpdateServiceRequestStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
