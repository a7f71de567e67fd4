package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoom_CanHost(t *testing.T) {
	item := &BookingItem{ID: "i1", RoomTypeID: "rt1"}

	t.Run("matching type", func(t *testing.T) {
		room := &Room{ID: "r1", RoomTypeID: "rt1"}
		assert.NoError(t, room.CanHost(item))
	})

	t.Run("type mismatch", func(t *testing.T) {
		room := &Room{ID: "r1", RoomTypeID: "rt2"}
		assert.ErrorIs(t, room.CanHost(item), ErrRoomTypeMismatch)
	})

	t.Run("soft deleted room", func(t *testing.T) {
		room := &Room{ID: "r1", RoomTypeID: "rt1", Deleted: true}
		assert.ErrorIs(t, room.CanHost(item), ErrRoomNotFound)
	})

	t.Run("housekeeping status does not block", func(t *testing.T) {
		room := &Room{ID: "r1", RoomTypeID: "rt1", Status: RoomStatusDirty}
		assert.NoError(t, room.CanHost(item))
	})
}
