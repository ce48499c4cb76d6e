package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hotelBooker/internal/config"
	"hotelBooker/internal/models"
	"hotelBooker/internal/storage"
	"hotelBooker/migrations"

	"github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

const pqUniqueViolation = "23505"

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// Migrate applies the embedded goose migrations.
func (s *Storage) Migrate() error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(s.DB, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

func (s *Storage) RoomByID(ctx context.Context, id int) (*models.Room, error) {
	query := `
		SELECT id, name, capacity, hotel_id
		FROM rooms
		WHERE id = $1`

	var room models.Room
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&room.ID,
		&room.Name,
		&room.Capacity,
		&room.HotelID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	return &room, nil
}

func (s *Storage) CountBookingsForRoom(ctx context.Context, roomID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE room_id = $1`

	var count int
	if err := s.DB.QueryRowContext(ctx, query, roomID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count bookings for room: %w", err)
	}

	return count, nil
}

func (s *Storage) EnrollmentByUser(ctx context.Context, userID int) (*models.Enrollment, error) {
	query := `
		SELECT id, user_id
		FROM enrollments
		WHERE user_id = $1`

	var enrollment models.Enrollment
	err := s.DB.QueryRowContext(ctx, query, userID).Scan(&enrollment.ID, &enrollment.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("failed to get enrollment: %w", err)
	}

	return &enrollment, nil
}

func (s *Storage) TicketByEnrollment(ctx context.Context, enrollmentID int) (*models.Ticket, error) {
	query := `
		SELECT t.id, t.enrollment_id, t.status,
		       tt.id, tt.name, tt.is_remote, tt.includes_hotel
		FROM tickets t
		JOIN ticket_types tt ON tt.id = t.ticket_type_id
		WHERE t.enrollment_id = $1`

	var ticket models.Ticket
	err := s.DB.QueryRowContext(ctx, query, enrollmentID).Scan(
		&ticket.ID,
		&ticket.EnrollmentID,
		&ticket.Status,
		&ticket.Type.ID,
		&ticket.Type.Name,
		&ticket.Type.IsRemote,
		&ticket.Type.IncludesHotel,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return &ticket, nil
}

func (s *Storage) UserBooking(ctx context.Context, userID int) (*models.UserBooking, error) {
	query := `
		SELECT b.id, r.id, r.name, r.capacity, r.hotel_id
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.user_id = $1`

	var booking models.UserBooking
	err := s.DB.QueryRowContext(ctx, query, userID).Scan(
		&booking.ID,
		&booking.Room.ID,
		&booking.Room.Name,
		&booking.Room.Capacity,
		&booking.Room.HotelID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get user booking: %w", err)
	}

	return &booking, nil
}

func (s *Storage) BookingByID(ctx context.Context, id int) (*models.Booking, error) {
	query := `
		SELECT id, user_id, room_id, created_at
		FROM bookings
		WHERE id = $1`

	var booking models.Booking
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RoomID,
		&booking.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &booking, nil
}

// CreateBooking inserts a booking for the user. Capacity is re-checked
// under a row lock on the room, so concurrent creates near full capacity
// serialize instead of overbooking.
func (s *Storage) CreateBooking(ctx context.Context, userID, roomID int) (*models.Booking, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	capacity, err := lockRoom(ctx, tx, roomID)
	if err != nil {
		return nil, err
	}

	occupied, err := countRoomBookings(ctx, tx, roomID, 0)
	if err != nil {
		return nil, err
	}
	if occupied >= capacity {
		return nil, storage.ErrRoomFull
	}

	insertQuery := `
		INSERT INTO bookings (user_id, room_id, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at`

	booking := models.Booking{UserID: userID, RoomID: roomID}
	err = tx.QueryRowContext(ctx, insertQuery, userID, roomID).Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, storage.ErrAlreadyBooked
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit booking: %w", err)
	}

	return &booking, nil
}

// UpdateBookingRoom moves the booking to another room, re-checking the
// target room's capacity under the same row lock as CreateBooking.
func (s *Storage) UpdateBookingRoom(ctx context.Context, bookingID, roomID int) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	capacity, err := lockRoom(ctx, tx, roomID)
	if err != nil {
		return err
	}

	occupied, err := countRoomBookings(ctx, tx, roomID, bookingID)
	if err != nil {
		return err
	}
	if occupied >= capacity {
		return storage.ErrRoomFull
	}

	updateQuery := `
		UPDATE bookings
		SET room_id = $2
		WHERE id = $1`

	res, err := tx.ExecContext(ctx, updateQuery, bookingID, roomID)
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}
	if affected == 0 {
		return storage.ErrBookingNotFound
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit booking update: %w", err)
	}

	return nil
}

func lockRoom(ctx context.Context, tx *sql.Tx, roomID int) (int, error) {
	query := `
		SELECT capacity
		FROM rooms
		WHERE id = $1
		FOR UPDATE`

	var capacity int
	if err := tx.QueryRowContext(ctx, query, roomID).Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, storage.ErrRoomNotFound
		}
		return 0, fmt.Errorf("failed to lock room: %w", err)
	}

	return capacity, nil
}

// countRoomBookings counts bookings in the room, excluding the booking
// being moved so a reassignment does not count itself.
func countRoomBookings(ctx context.Context, tx *sql.Tx, roomID, excludeBookingID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE room_id = $1 AND id <> $2`

	var count int
	if err := tx.QueryRowContext(ctx, query, roomID, excludeBookingID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count bookings for room: %w", err)
	}

	return count, nil
}
