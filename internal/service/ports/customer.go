package ports

import (
	"context"

	"github.com/MoisesNEY/hotel-management-system-sub001/internal/domain"
)

type CustomerRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	// GetByUserID resolves the identity provider's subject to a customer.
	GetByUserID(ctx context.Context, userID string) (*domain.Customer, error)
}

type RoomTypeRepo interface {
	GetByID(ctx context.Context, id string) (*domain.RoomType, error)
}

type HotelServiceRepo interface {
	// GetByID does not return soft-deleted services.
	GetByID(ctx context.Context, id string) (*domain.HotelService, error)
}
