package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/MoisesNEY/hotel-management-system-sub001/internal/domain"
)

func newBookingRepoMock(t *testing.T) (*BookingRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewBookingRepo(&dbpg.DB{Master: db}), mock
}

const (
	lockBookingQuery = `SELECT status FROM bookings WHERE id = $1 FOR UPDATE`
	itemQuery        = `SELECT id, booking_id, room_type_id FROM booking_items WHERE id = $1 AND booking_id = $2`
	lockRoomQuery    = `SELECT id, room_type_id, number, status, deleted FROM rooms WHERE id = $1 FOR UPDATE`
	liveCountQuery   = `FROM booking_items bi`
	assignQuery      = `UPDATE booking_items SET room_id = $2 WHERE id = $1`
)

func TestBookingRepository_AssignRoom_RequiresConfirmed(t *testing.T) {
	repo, mock := newBookingRepoMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lockBookingQuery)).
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("PENDING_APPROVAL"))
	mock.ExpectRollback()

	err := repo.AssignRoom(context.Background(), "b1", "i1", "r1")

	assert.ErrorIs(t, err, domain.ErrStatusTransition)
	var se *domain.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, domain.BookingStatusPendingApproval, se.Current)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_AssignRoom_RoomTypeMismatch(t *testing.T) {
	repo, mock := newBookingRepoMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lockBookingQuery)).
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("CONFIRMED"))
	mock.ExpectQuery(regexp.QuoteMeta(itemQuery)).
		WithArgs("i1", "b1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id", "room_type_id"}).
			AddRow("i1", "b1", "rt1"))
	mock.ExpectQuery(regexp.QuoteMeta(lockRoomQuery)).
		WithArgs("r1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_type_id", "number", "status", "deleted"}).
			AddRow("r1", "rt2", "101", "AVAILABLE", false))
	mock.ExpectRollback()

	err := repo.AssignRoom(context.Background(), "b1", "i1", "r1")

	assert.ErrorIs(t, err, domain.ErrRoomTypeMismatch)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_AssignRoom_DeletedRoomInvisible(t *testing.T) {
	repo, mock := newBookingRepoMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lockBookingQuery)).
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("CONFIRMED"))
	mock.ExpectQuery(regexp.QuoteMeta(itemQuery)).
		WithArgs("i1", "b1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id", "room_type_id"}).
			AddRow("i1", "b1", "rt1"))
	mock.ExpectQuery(regexp.QuoteMeta(lockRoomQuery)).
		WithArgs("r1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_type_id", "number", "status", "deleted"}).
			AddRow("r1", "rt1", "101", "AVAILABLE", true))
	mock.ExpectRollback()

	err := repo.AssignRoom(context.Background(), "b1", "i1", "r1")

	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_AssignRoom_RoomHeldByLiveBooking(t *testing.T) {
	repo, mock := newBookingRepoMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lockBookingQuery)).
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("CONFIRMED"))
	mock.ExpectQuery(regexp.QuoteMeta(itemQuery)).
		WithArgs("i1", "b1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id", "room_type_id"}).
			AddRow("i1", "b1", "rt1"))
	mock.ExpectQuery(regexp.QuoteMeta(lockRoomQuery)).
		WithArgs("r1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_type_id", "number", "status", "deleted"}).
			AddRow("r1", "rt1", "101", "OCCUPIED", false))
	mock.ExpectQuery(regexp.QuoteMeta(liveCountQuery)).
		WithArgs("r1", "i1", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	err := repo.AssignRoom(context.Background(), "b1", "i1", "r1")

	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_AssignRoom_LostRaceOnUniqueViolation(t *testing.T) {
	repo, mock := newBookingRepoMock(t)

	// The loser of two concurrent assignments passes the count check and
	// fails on the write.
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lockBookingQuery)).
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("CONFIRMED"))
	mock.ExpectQuery(regexp.QuoteMeta(itemQuery)).
		WithArgs("i1", "b1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id", "room_type_id"}).
			AddRow("i1", "b1", "rt1"))
	mock.ExpectQuery(regexp.QuoteMeta(lockRoomQuery)).
		WithArgs("r1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_type_id", "number", "status", "deleted"}).
			AddRow("r1", "rt1", "101", "AVAILABLE", false))
	mock.ExpectQuery(regexp.QuoteMeta(liveCountQuery)).
		WithArgs("r1", "i1", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(regexp.QuoteMeta(assignQuery)).
		WithArgs("i1", "r1").
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	err := repo.AssignRoom(context.Background(), "b1", "i1", "r1")

	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_AssignRoom_Success(t *testing.T) {
	repo, mock := newBookingRepoMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lockBookingQuery)).
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("CONFIRMED"))
	mock.ExpectQuery(regexp.QuoteMeta(itemQuery)).
		WithArgs("i1", "b1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id", "room_type_id"}).
			AddRow("i1", "b1", "rt1"))
	mock.ExpectQuery(regexp.QuoteMeta(lockRoomQuery)).
		WithArgs("r1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_type_id", "number", "status", "deleted"}).
			AddRow("r1", "rt1", "101", "DIRTY", false))
	mock.ExpectQuery(regexp.QuoteMeta(liveCountQuery)).
		WithArgs("r1", "i1", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(regexp.QuoteMeta(assignQuery)).
		WithArgs("i1", "r1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.AssignRoom(context.Background(), "b1", "i1", "r1")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_UpdateStatus_GuardedByCurrentStatus(t *testing.T) {
	repo, mock := newBookingRepoMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE bookings`)).
		WithArgs("b1", "CHECKED_IN", "CHECKED_OUT").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT status FROM bookings WHERE id = $1`)).
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("CANCELLED"))

	err := repo.UpdateStatus(context.Background(), "b1",
		domain.BookingStatusCheckedIn, domain.BookingStatusCheckedOut)

	assert.ErrorIs(t, err, domain.ErrStatusTransition)
	var se *domain.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, domain.BookingStatusCancelled, se.Current)
	assert.Equal(t, domain.BookingStatusCheckedOut, se.Attempted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_UpdateStatus_MissingBooking(t *testing.T) {
	repo, mock := newBookingRepoMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE bookings`)).
		WithArgs("b1", "CHECKED_IN", "CHECKED_OUT").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT status FROM bookings WHERE id = $1`)).
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}))

	err := repo.UpdateStatus(context.Background(), "b1",
		domain.BookingStatusCheckedIn, domain.BookingStatusCheckedOut)

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
