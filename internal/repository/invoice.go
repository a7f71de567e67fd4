package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/MoisesNEY/hotel-management-system-sub001/internal/domain"
)

type InvoiceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewInvoiceRepo(db *dbpg.DB) *InvoiceRepository {
	return &InvoiceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// CreateIdempotent inserts an invoice for a booking, relying on the unique
// constraint on booking_id to close the derivation race: when two triggers
// insert concurrently, the loser gets 23505 and returns the winner's row.
func (r *InvoiceRepository) CreateIdempotent(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	existing, err := r.GetByBooking(ctx, inv.BookingID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrInvoiceNotFound) {
		return nil, err
	}

	query := `INSERT INTO invoices (id, code, booking_id, status, issued_at, total_cents, tax_cents, currency)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		inv.ID, inv.Code, inv.BookingID, inv.Status, inv.IssuedAt,
		inv.TotalCents, inv.TaxCents, inv.Currency,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return r.GetByBooking(ctx, inv.BookingID)
		}
		return nil, fmt.Errorf("insert invoice: %w", err)
	}

	inv.Payments = []domain.Payment{}
	return inv, nil
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *InvoiceRepository) GetByBooking(ctx context.Context, bookingID string) (*domain.Invoice, error) {
	return r.getOne(ctx, `WHERE booking_id = $1`, bookingID)
}

func (r *InvoiceRepository) getOne(ctx context.Context, where string, args ...interface{}) (*domain.Invoice, error) {
	query := `SELECT id, code, booking_id, status, issued_at, total_cents, tax_cents, currency
			  FROM invoices ` + where

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}

	var inv domain.Invoice
	if err = row.Scan(
		&inv.ID, &inv.Code, &inv.BookingID, &inv.Status, &inv.IssuedAt,
		&inv.TotalCents, &inv.TaxCents, &inv.Currency,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("scan invoice: %w", err)
	}

	if err = r.loadPayments(ctx, &inv); err != nil {
		return nil, err
	}

	return &inv, nil
}

func (r *InvoiceRepository) loadPayments(ctx context.Context, inv *domain.Invoice) error {
	query := `SELECT id, invoice_id, amount_cents, method, paid_at
			  FROM payments
			  WHERE invoice_id = $1
			  ORDER BY paid_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, inv.ID)
	if err != nil {
		return fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	inv.Payments = []domain.Payment{}
	for rows.Next() {
		var p domain.Payment
		if err = rows.Scan(&p.ID, &p.InvoiceID, &p.AmountCents, &p.Method, &p.PaidAt); err != nil {
			return fmt.Errorf("scan payment: %w", err)
		}
		inv.Payments = append(inv.Payments, p)
	}

	return rows.Err()
}

func (r *InvoiceRepository) List(ctx context.Context) ([]*domain.Invoice, error) {
	query := `SELECT id, code, booking_id, status, issued_at, total_cents, tax_cents, currency
			  FROM invoices
			  ORDER BY issued_at DESC`
	return r.list(ctx, query)
}

func (r *InvoiceRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Invoice, error) {
	query := `SELECT i.id, i.code, i.booking_id, i.status, i.issued_at, i.total_cents, i.tax_cents, i.currency
			  FROM invoices i
			  JOIN bookings b ON b.id = i.booking_id
			  WHERE b.customer_id = $1
			  ORDER BY i.issued_at DESC`
	return r.list(ctx, query, customerID)
}

func (r *InvoiceRepository) list(ctx context.Context, query string, args ...interface{}) ([]*domain.Invoice, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var res []*domain.Invoice
	for rows.Next() {
		var inv domain.Invoice
		if err = rows.Scan(
			&inv.ID, &inv.Code, &inv.BookingID, &inv.Status, &inv.IssuedAt,
			&inv.TotalCents, &inv.TaxCents, &inv.Currency,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		res = append(res, &inv)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for _, inv := range res {
		if err = r.loadPayments(ctx, inv); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// ApplyPayment records a payment and marks the invoice paid. The invoice row
// is locked for the whole check-and-write, so a second payment racing in
// sees PAID and fails with ErrInvoiceClosed instead of double-settling.
func (r *InvoiceRepository) ApplyPayment(ctx context.Context, p *domain.Payment) (*domain.Invoice, error) {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var status domain.InvoiceStatus
	if err = tx.QueryRowContext(ctx,
		`SELECT status FROM invoices WHERE id = $1 FOR UPDATE`, p.InvoiceID,
	).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("lock invoice: %w", err)
	}
	if status.Closed() {
		return nil, domain.ErrInvoiceClosed
	}

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO payments (id, invoice_id, amount_cents, method, paid_at) VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.InvoiceID, p.AmountCents, p.Method, p.PaidAt,
	); err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE invoices SET status = $2 WHERE id = $1`,
		p.InvoiceID, domain.InvoiceStatusPaid,
	); err != nil {
		return nil, fmt.Errorf("mark invoice paid: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit payment: %w", err)
	}

	return r.GetByID(ctx, p.InvoiceID)
}

func (r *InvoiceRepository) CancelDrafts(ctx context.Context, bookingID string) error {
	query := `UPDATE invoices SET status = $2 WHERE booking_id = $1 AND status = $3`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		bookingID, domain.InvoiceStatusCancelled, domain.InvoiceStatusDraft,
	)
	if err != nil {
		return fmt.Errorf("cancel draft invoices: %w", err)
	}
	return nil
}
