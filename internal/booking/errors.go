package booking

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure the service reports wraps exactly one of
// these; handlers map kinds to status codes with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
)

var (
	ErrRoomNotFound    = fmt.Errorf("%w: room does not exist", ErrNotFound)
	ErrBookingNotFound = fmt.Errorf("%w: booking does not exist", ErrNotFound)

	ErrRoomFull      = fmt.Errorf("%w: room is at capacity", ErrForbidden)
	ErrNotEnrolled   = fmt.Errorf("%w: user is not enrolled", ErrForbidden)
	ErrNoTicket      = fmt.Errorf("%w: user has no ticket", ErrForbidden)
	ErrTicketRemote  = fmt.Errorf("%w: ticket is for remote attendance", ErrForbidden)
	ErrTicketNoHotel = fmt.Errorf("%w: ticket does not include hotel", ErrForbidden)
	ErrTicketUnpaid  = fmt.Errorf("%w: ticket is not paid", ErrForbidden)
	ErrAlreadyBooked = fmt.Errorf("%w: user already has a booking", ErrForbidden)

	ErrNotOwner = fmt.Errorf("%w: booking belongs to another user", ErrUnauthorized)
)
