package ports

import (
	"context"

	"github.com/MoisesNEY/hotel-management-system-sub001/internal/domain"
)

type ServiceRequestRepo interface {
	Create(ctx context.Context, r *domain.ServiceRequest) error
	GetByID(ctx context.Context, id string) (*domain.ServiceRequest, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.ServiceRequest, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.ServiceRequestStatus) error
}
