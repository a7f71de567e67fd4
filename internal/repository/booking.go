package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/MoisesNEY/hotel-management-system-sub001/internal/domain"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO bookings (id, code, customer_id, check_in, check_out, guests, status, notes, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = tx.ExecContext(
		ctx, query,
		b.ID, b.Code, b.CustomerID, b.CheckIn, b.CheckOut,
		b.Guests, b.Status, b.Notes, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	if len(b.Items) > 0 {
		itemQuery := `INSERT INTO booking_items (id, booking_id, room_type_id, price_cents, occupant_name, room_id) VALUES `
		args := make([]interface{}, 0, len(b.Items)*6)
		placeholders := make([]string, 0, len(b.Items))
		for i, it := range b.Items {
			n := i * 6
			placeholders = append(placeholders, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4, n+5, n+6))
			args = append(args, it.ID, it.BookingID, it.RoomTypeID, it.PriceCents, it.OccupantName, it.RoomID)
		}
		if _, err = tx.ExecContext(ctx, itemQuery+strings.Join(placeholders, ","), args...); err != nil {
			return fmt.Errorf("insert booking items: %w", err)
		}
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *BookingRepository) GetByIDForCustomer(ctx context.Context, id, customerID string) (*domain.Booking, error) {
	// Ownership lives in the query itself so a foreign booking is
	// indistinguishable from a missing one.
	return r.getOne(ctx, `WHERE id = $1 AND customer_id = $2`, id, customerID)
}

func (r *BookingRepository) getOne(ctx context.Context, where string, args ...interface{}) (*domain.Booking, error) {
	query := `SELECT id, code, customer_id, check_in, check_out, guests, status, notes, created_at, updated_at
			  FROM bookings ` + where

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.Booking
	if err = row.Scan(
		&b.ID, &b.Code, &b.CustomerID, &b.CheckIn, &b.CheckOut,
		&b.Guests, &b.Status, &b.Notes, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	if err = r.loadItems(ctx, []*domain.Booking{&b}); err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	return r.list(ctx, ``)
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error) {
	return r.list(ctx, `WHERE customer_id = $1`, customerID)
}

func (r *BookingRepository) list(ctx context.Context, where string, args ...interface{}) ([]*domain.Booking, error) {
	query := `SELECT id, code, customer_id, check_in, check_out, guests, status, notes, created_at, updated_at
			  FROM bookings ` + where + `
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(
			&b.ID, &b.Code, &b.CustomerID, &b.CheckIn, &b.CheckOut,
			&b.Guests, &b.Status, &b.Notes, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = r.loadItems(ctx, res); err != nil {
		return nil, err
	}

	return res, nil
}

// loadItems populates Items for all bookings in one query.
func (r *BookingRepository) loadItems(ctx context.Context, bookings []*domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	ids := make([]string, 0, len(bookings))
	index := make(map[string]*domain.Booking, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
		index[b.ID] = b
	}

	query := `SELECT id, booking_id, room_type_id, price_cents, occupant_name, room_id
			  FROM booking_items
			  WHERE booking_id = ANY($1)
			  ORDER BY booking_id, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("list booking items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it domain.BookingItem
		if err = rows.Scan(&it.ID, &it.BookingID, &it.RoomTypeID, &it.PriceCents, &it.OccupantName, &it.RoomID); err != nil {
			return fmt.Errorf("scan booking item: %w", err)
		}
		if b, ok := index[it.BookingID]; ok {
			b.Items = append(b.Items, it)
		}
	}

	return rows.Err()
}

// UpdateStatus moves a booking from one status to another. The WHERE clause
// on the old status makes the transition atomic; when nothing matches, the
// current row is re-read to tell a missing booking from an illegal
// transition.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) error {
	query := `UPDATE bookings
			  SET status = $3, updated_at = now()
			  WHERE id = $1 AND status = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, from, to)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		var current domain.BookingStatus
		row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT status FROM bookings WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("check booking status: %w", err)
		}
		if err = row.Scan(&current); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrBookingNotFound
			}
			return fmt.Errorf("scan booking status: %w", err)
		}
		return &domain.StatusError{Current: current, Attempted: to}
	}

	return nil
}

// AssignRoom sets the room on a booking item. Both the booking row and the
// room row are locked before validation, so two assignments racing for the
// same room serialize on the room lock and the loser sees the winner's
// write.
func (r *BookingRepository) AssignRoom(ctx context.Context, bookingID, itemID, roomID string) error {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var status domain.BookingStatus
	if err = tx.QueryRowContext(ctx,
		`SELECT status FROM bookings WHERE id = $1 FOR UPDATE`, bookingID,
	).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("lock booking: %w", err)
	}
	if status != domain.BookingStatusConfirmed {
		return &domain.StatusError{Current: status, Attempted: domain.BookingStatusConfirmed}
	}

	var item domain.BookingItem
	if err = tx.QueryRowContext(ctx,
		`SELECT id, booking_id, room_type_id FROM booking_items WHERE id = $1 AND booking_id = $2`,
		itemID, bookingID,
	).Scan(&item.ID, &item.BookingID, &item.RoomTypeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookingItemNotFound
		}
		return fmt.Errorf("get booking item: %w", err)
	}

	var room domain.Room
	if err = tx.QueryRowContext(ctx,
		`SELECT id, room_type_id, number, status, deleted FROM rooms WHERE id = $1 FOR UPDATE`, roomID,
	).Scan(&room.ID, &room.RoomTypeID, &room.Number, &room.Status, &room.Deleted); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrRoomNotFound
		}
		return fmt.Errorf("lock room: %w", err)
	}
	if err = room.CanHost(&item); err != nil {
		return err
	}

	var taken int
	if err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*)
		 FROM booking_items bi
		 JOIN bookings b ON b.id = bi.booking_id
		 WHERE bi.room_id = $1 AND bi.id <> $2 AND b.status = ANY($3)`,
		roomID, itemID, pq.Array(domain.LiveStatuses),
	).Scan(&taken); err != nil {
		return fmt.Errorf("check live assignment: %w", err)
	}
	if taken > 0 {
		return domain.ErrRoomUnavailable
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE booking_items SET room_id = $2 WHERE id = $1`, itemID, roomID,
	); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrRoomUnavailable
		}
		return fmt.Errorf("assign room: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) Patch(ctx context.Context, id string, p domain.BookingPatch) error {
	set := []string{"updated_at = now()"}
	args := []interface{}{id}
	if p.Guests != nil {
		args = append(args, *p.Guests)
		set = append(set, fmt.Sprintf("guests = $%d", len(args)))
	}
	if p.Notes != nil {
		args = append(args, *p.Notes)
		set = append(set, fmt.Sprintf("notes = $%d", len(args)))
	}

	query := `UPDATE bookings SET ` + strings.Join(set, ", ") + ` WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return fmt.Errorf("patch booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

func (r *BookingRepository) CancelStale(ctx context.Context, in domain.BookingStatus, olderThan time.Duration) ([]*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE status = $1
			    AND updated_at + make_interval(secs => $3) < now()
			  RETURNING id, code, customer_id, check_in, check_out, guests, status, notes, created_at, updated_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		in, domain.BookingStatusCancelled, olderThan.Seconds(),
	)
	if err != nil {
		return nil, fmt.Errorf("cancel stale bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(
			&b.ID, &b.Code, &b.CustomerID, &b.CheckIn, &b.CheckOut,
			&b.Guests, &b.Status, &b.Notes, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}
