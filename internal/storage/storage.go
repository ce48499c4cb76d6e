package storage

import "errors"

var (
	ErrRoomNotFound       = errors.New("room not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrTicketNotFound     = errors.New("ticket not found")

	// ErrRoomFull is returned by the conditional writes when the room
	// is at capacity at commit time.
	ErrRoomFull = errors.New("room is at capacity")

	// ErrAlreadyBooked is returned when the user already holds a booking;
	// one active booking per user is enforced by a unique index.
	ErrAlreadyBooked = errors.New("user already has a booking")
)
