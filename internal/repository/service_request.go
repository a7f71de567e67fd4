package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/MoisesNEY/hotel-management-system-sub001/internal/domain"
)

type ServiceRequestRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewServiceRequestRepo(db *dbpg.DB) *ServiceRequestRepository {
	return &ServiceRequestRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ServiceRequestRepository) Create(ctx context.Context, sr *domain.ServiceRequest) error {
	query := `INSERT INTO service_requests (id, booking_id, hotel_service_id, details, status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		sr.ID, sr.BookingID, sr.HotelServiceID, sr.Details, sr.Status, sr.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert service request: %w", err)
	}
	return nil
}

func (r *ServiceRequestRepository) GetByID(ctx context.Context, id string) (*domain.ServiceRequest, error) {
	query := `SELECT id, booking_id, hotel_service_id, details, status, created_at
			  FROM service_requests
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get service request: %w", err)
	}

	var sr domain.ServiceRequest
	if err = row.Scan(&sr.ID, &sr.BookingID, &sr.HotelServiceID, &sr.Details, &sr.Status, &sr.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrServiceRequestNotFound
		}
		return nil, fmt.Errorf("scan service request: %w", err)
	}

	return &sr, nil
}

func (r *ServiceRequestRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.ServiceRequest, error) {
	query := `SELECT sr.id, sr.booking_id, sr.hotel_service_id, sr.details, sr.status, sr.created_at
			  FROM service_requests sr
			  JOIN bookings b ON b.id = sr.booking_id
			  WHERE b.customer_id = $1
			  ORDER BY sr.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list service requests: %w", err)
	}
	defer rows.Close()

	var res []*domain.ServiceRequest
	for rows.Next() {
		var sr domain.ServiceRequest
		if err = rows.Scan(&sr.ID, &sr.BookingID, &sr.HotelServiceID, &sr.Details, &sr.Status, &sr.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan service request: %w", err)
		}
		res = append(res, &sr)
	}

	return res, rows.Err()
}

func (r *ServiceRequestRepository) UpdateStatus(ctx context.Context, id string, from, to domain.ServiceRequestStatus) error {
	query := `UPDATE service_requests SET status = $3 WHERE id = $1 AND status = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, from, to)
	if err != nil {
		return fmt.Errorf("update service request status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("service request rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrServiceRequestNotFound
	}

	return nil
}
