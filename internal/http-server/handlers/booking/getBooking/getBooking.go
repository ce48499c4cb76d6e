package getBooking

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
)

type BookingResponse struct {
	response.Response
	Booking *models.UserBooking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingProvider
type BookingProvider interface {
	BookingByUser(ctx context.Context, userID int) (*models.UserBooking, error)
}

func New(log *slog.Logger, provider BookingProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getBooking.New"

		log = log.With(slog.String("op", op))

		userID, ok := auth.UserID(r.Context())
		if !ok {
			log.Error("no user id on request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthenticated"))
			return
		}

		log = log.With(slog.Int("user_id", userID))

		b, err := provider.BookingByUser(r.Context(), userID)
		if err != nil {
			if errors.Is(err, booking.ErrNotFound) {
				log.Info("user has no booking")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
				return
			}

			log.Error("failed to get booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get booking"))
			return
		}

		log.Info("booking returned", slog.Int("booking_id", b.ID))

		responseOK(w, r, b)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, b *models.UserBooking) {
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  b,
	})
}
