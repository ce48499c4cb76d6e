package updateBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"hotelBooker/internal/booking"
	"hotelBooker/internal/http-server/middleware/auth"
	"hotelBooker/internal/lib/api/response"
	"hotelBooker/internal/lib/logger/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type BookingRequest struct {
	RoomID int `json:"room_id" validate:"required,gt=0"`
}

type BookingResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingUpdater
type BookingUpdater interface {
	UpdateBooking(ctx context.Context, userID, bookingID, roomID int) error
}

func New(log *slog.Logger, updater BookingUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.updateBooking.New"

		log = log.With(slog.String("op", op))

		userID, ok := auth.UserID(r.Context())
		if !ok {
			log.Error("no user id on request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthenticated"))
			return
		}

		log = log.With(slog.Int("user_id", userID))

		bookingIdStr := chi.URLParam(r, "bookingId")
		if bookingIdStr == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		bookingID, err := strconv.Atoi(bookingIdStr)
		if err != nil {
			log.Error("invalid booking id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id format"))
			return
		}

		log = log.With(slog.Int("booking_id", bookingID))

		var req BookingRequest

		err = render.DecodeJSON(r.Body, &req)
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

		err = updater.UpdateBooking(r.Context(), userID, bookingID, req.RoomID)
		if err != nil {
			log.Error("failed to update booking", sl.Err(err))

			switch {
			case errors.Is(err, booking.ErrNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("not found"))
			case errors.Is(err, booking.ErrUnauthorized):
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("not the booking owner"))
			case errors.Is(err, booking.ErrForbidden):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("booking not allowed"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update booking"))
			}
			return
		}

		log.Info("booking updated", slog.Int("room_id", req.RoomID))

		responseOK(w, r)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
	})
}
