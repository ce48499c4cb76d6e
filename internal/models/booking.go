package models

import "time"

type Booking struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	RoomID    int       `json:"room_id"`
	CreatedAt time.Time `json:"created_at"`
}

// UserBooking is a booking joined with its room, the shape returned
// to the booking's owner.
type UserBooking struct {
	ID   int  `json:"id"`
	Room Room `json:"room"`
}
