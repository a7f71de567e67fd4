package domain

type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "AVAILABLE"
	RoomStatusOccupied    RoomStatus = "OCCUPIED"
	RoomStatusDirty       RoomStatus = "DIRTY"
	RoomStatusMaintenance RoomStatus = "MAINTENANCE"
	RoomStatusUnavailable RoomStatus = "UNAVAILABLE"
)

type Room struct {
	ID         string     `json:"id"`
	RoomTypeID string     `json:"room_type_id"`
	Number     string     `json:"number"`
	Status     RoomStatus `json:"status"`
	Deleted    bool       `json:"-"`
}

// CanHost checks a room against a booking item. Room.Status is not
// consulted: housekeeping state does not block pre-assignment. The caller
// is responsible for the live-assignment check, which needs the
// surrounding transaction.
func (r *Room) CanHost(item *BookingItem) error {
	if r.Deleted {
		return ErrRoomNotFound
	}
	if r.RoomTypeID != item.RoomTypeID {
		return ErrRoomTypeMismatch
	}
	return nil
}

type RoomType struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	NightlyRateCents int64  `json:"nightly_rate_cents"`
	MaxCapacity      int    `json:"max_capacity"`
}
