// Package booking implements room-assignment eligibility and the
// booking lifecycle: one active booking per user, capacity-bounded
// rooms, eligibility gated by the attendee's ticket.
package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"hotelBooker/internal/models"
	"hotelBooker/internal/storage"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RoomSource
type RoomSource interface {
	RoomByID(ctx context.Context, id int) (*models.Room, error)
	CountBookingsForRoom(ctx context.Context, roomID int) (int, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketSource
type TicketSource interface {
	EnrollmentByUser(ctx context.Context, userID int) (*models.Enrollment, error)
	TicketByEnrollment(ctx context.Context, enrollmentID int) (*models.Ticket, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingStore
type BookingStore interface {
	UserBooking(ctx context.Context, userID int) (*models.UserBooking, error)
	BookingByID(ctx context.Context, id int) (*models.Booking, error)
	CreateBooking(ctx context.Context, userID, roomID int) (*models.Booking, error)
	UpdateBookingRoom(ctx context.Context, bookingID, roomID int) error
}

type Service struct {
	log      *slog.Logger
	rooms    RoomSource
	tickets  TicketSource
	bookings BookingStore
}

func New(log *slog.Logger, rooms RoomSource, tickets TicketSource, bookings BookingStore) *Service {
	return &Service{
		log:      log,
		rooms:    rooms,
		tickets:  tickets,
		bookings: bookings,
	}
}

// BookingByUser returns the user's current booking joined with its room.
func (s *Service) BookingByUser(ctx context.Context, userID int) (*models.UserBooking, error) {
	const op = "booking.BookingByUser"

	b, err := s.bookings.UserBooking(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

// CreateBooking books the room for the user after the full eligibility
// evaluation: room exists, room has capacity, user is enrolled and holds
// a paid in-person ticket that includes hotel accommodation. The storage
// insert re-checks capacity under a room lock, so the occupancy snapshot
// read here can never overbook.
func (s *Service) CreateBooking(ctx context.Context, userID, roomID int) (*models.Booking, error) {
	const op = "booking.CreateBooking"

	if err := s.admitRoom(ctx, roomID); err != nil {
		return nil, err
	}

	if err := s.checkTicket(ctx, userID); err != nil {
		return nil, err
	}

	b, err := s.bookings.CreateBooking(ctx, userID, roomID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrRoomNotFound):
			return nil, ErrRoomNotFound
		case errors.Is(err, storage.ErrRoomFull):
			return nil, ErrRoomFull
		case errors.Is(err, storage.ErrAlreadyBooked):
			return nil, ErrAlreadyBooked
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("booking created",
		slog.Int("booking_id", b.ID),
		slog.Int("user_id", userID),
		slog.Int("room_id", roomID),
	)

	return b, nil
}

// UpdateBooking moves the user's booking to another room. Only the owner
// may move a booking. Reassigning to the current room is a no-op.
// Ticket eligibility is not re-validated: it was checked when the
// booking was created.
func (s *Service) UpdateBooking(ctx context.Context, userID, bookingID, roomID int) error {
	const op = "booking.UpdateBooking"

	b, err := s.bookings.BookingByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if b.UserID != userID {
		return ErrNotOwner
	}

	if b.RoomID == roomID {
		return nil
	}

	if err = s.admitRoom(ctx, roomID); err != nil {
		return err
	}

	if err = s.bookings.UpdateBookingRoom(ctx, bookingID, roomID); err != nil {
		switch {
		case errors.Is(err, storage.ErrRoomNotFound):
			return ErrRoomNotFound
		case errors.Is(err, storage.ErrRoomFull):
			return ErrRoomFull
		case errors.Is(err, storage.ErrBookingNotFound):
			return ErrBookingNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("booking moved",
		slog.Int("booking_id", bookingID),
		slog.Int("user_id", userID),
		slog.Int("room_id", roomID),
	)

	return nil
}

// admitRoom checks that the room exists and has free capacity at the
// current occupancy snapshot. Room existence is checked before anything
// else: a missing room is NotFound regardless of the caller's ticket.
func (s *Service) admitRoom(ctx context.Context, roomID int) error {
	const op = "booking.admitRoom"

	room, err := s.rooms.RoomByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, storage.ErrRoomNotFound) {
			return ErrRoomNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	occupied, err := s.rooms.CountBookingsForRoom(ctx, roomID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if occupied >= room.Capacity {
		return ErrRoomFull
	}

	return nil
}

// checkTicket verifies the caller is enrolled and holds a hotel-eligible
// ticket. A missing enrollment is Forbidden, not NotFound: the caller is
// authenticated but not registered for the event.
func (s *Service) checkTicket(ctx context.Context, userID int) error {
	const op = "booking.checkTicket"

	enrollment, err := s.tickets.EnrollmentByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrEnrollmentNotFound) {
			return ErrNotEnrolled
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	ticket, err := s.tickets.TicketByEnrollment(ctx, enrollment.ID)
	if err != nil {
		if errors.Is(err, storage.ErrTicketNotFound) {
			return ErrNoTicket
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	switch {
	case ticket.Type.IsRemote:
		return ErrTicketRemote
	case !ticket.Type.IncludesHotel:
		return ErrTicketNoHotel
	case ticket.Status != models.TicketPaid:
		return ErrTicketUnpaid
	}

	return nil
}
