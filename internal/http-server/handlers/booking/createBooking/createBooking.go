package createBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"hotelBooker/internal/booking"
	"hotelBooker/internal/http-server/middleware/auth"
	"hotelBooker/internal/lib/api/response"
	"hotelBooker/internal/lib/logger/sl"
	"hotelBooker/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type BookingRequest struct {
	RoomID int `json:"room_id" validate:"required,gt=0"`
}

type BookingResponse struct {
	response.Response
	BookingID int `json:"booking_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	CreateBooking(ctx context.Context, userID, roomID int) (*models.Booking, error)
}

func New(log *slog.Logger, creator BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		userID, ok := auth.UserID(r.Context())
		if !ok {
			log.Error("no user id on request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthenticated"))
			return
		}

		log = log.With(slog.Int("user_id", userID))

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		b, err := creator.CreateBooking(r.Context(), userID, req.RoomID)
		if err != nil {
			log.Error("failed to create booking", sl.Err(err))

			switch {
			case errors.Is(err, booking.ErrNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("room not found"))
			case errors.Is(err, booking.ErrForbidden):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("booking not allowed"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create booking"))
			}
			return
		}

		log.Info("booking created", slog.Int("booking_id", b.ID), slog.Int("room_id", req.RoomID))

		responseOK(w, r, b.ID)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, bookingID int) {
	render.JSON(w, r, BookingResponse{
		Response:  response.OK(),
		BookingID: bookingID,
	})
}
