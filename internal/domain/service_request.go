package domain

import "time"

// HotelService is reference data: an ancillary service customers can request
// against a booking. Managed elsewhere; only read here.
type HotelService struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Deleted    bool   `json:"-"`
}

type ServiceRequestStatus string

const (
	ServiceRequestStatusOpen       ServiceRequestStatus = "OPEN"
	ServiceRequestStatusInProgress ServiceRequestStatus = "IN_PROGRESS"
	ServiceRequestStatusCompleted  ServiceRequestStatus = "COMPLETED"
	ServiceRequestStatusRejected   ServiceRequestStatus = "REJECTED"
)

var serviceRequestTransitions = map[ServiceRequestStatus][]ServiceRequestStatus{
	ServiceRequestStatusOpen:       {ServiceRequestStatusInProgress, ServiceRequestStatusRejected},
	ServiceRequestStatusInProgress: {ServiceRequestStatusCompleted, ServiceRequestStatusRejected},
}

// ValidServiceRequestTransition reports whether a request may move between
// the two statuses. The lifecycle is independent of the booking's.
func ValidServiceRequestTransition(from, to ServiceRequestStatus) bool {
	for _, t := range serviceRequestTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

func ParseServiceRequestStatus(s string) (ServiceRequestStatus, error) {
	switch st := ServiceRequestStatus(s); st {
	case ServiceRequestStatusOpen, ServiceRequestStatusInProgress,
		ServiceRequestStatusCompleted, ServiceRequestStatusRejected:
		return st, nil
	}
	return "", ErrValidation
}

type ServiceRequest struct {
	ID             string               `json:"id"`
	BookingID      string               `json:"booking_id"`
	HotelServiceID string               `json:"hotel_service_id"`
	Details        string               `json:"details"`
	Status         ServiceRequestStatus `json:"status"`
	CreatedAt      time.Time            `json:"created_at"`
}
