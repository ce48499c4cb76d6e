package getBooking_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelBooker/internal/booking"
	"hotelBooker/internal/http-server/handlers/booking/getBooking"
	"hotelBooker/internal/http-server/handlers/booking/getBooking/mocks"
	"hotelBooker/internal/http-server/middleware/auth"
	"hotelBooker/internal/lib/logger/handlers/slogdiscard"
	"hotelBooker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		authenticated  bool
		mockSetup      func(m *mocks.BookingProvider)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:          "Success",
			authenticated: true,
			mockSetup: func(m *mocks.BookingProvider) {
				m.On("BookingByUser", mock.Anything, 7).Return(&models.UserBooking{
					ID:   1,
					Room: models.Room{ID: 3, Name: "101", Capacity: 2, HotelID: 1},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","booking":{"id":1,"room":{"id":3,"name":"101","capacity":2,"hotel_id":1}}}`,
		},
		{
			name:          "No booking",
			authenticated: true,
			mockSetup: func(m *mocks.BookingProvider) {
				m.On("BookingByUser", mock.Anything, 7).Return(nil, booking.ErrBookingNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"booking not found"}`,
		},
		{
			name:           "Unauthenticated",
			authenticated:  false,
			mockSetup:      func(m *mocks.BookingProvider) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthenticated"}`,
		},
		{
			name:          "Internal error",
			authenticated: true,
			mockSetup: func(m *mocks.BookingProvider) {
				m.On("BookingByUser", mock.Anything, 7).Return(nil, errors.New("connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get booking"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			provider := mocks.NewBookingProvider(t)
			tc.mockSetup(provider)

			handler := getBooking.New(logger, provider)

			req, err := http.NewRequest(http.MethodGet, "/booking", nil)
			require.NoError(t, err)

			if tc.authenticated {
				req = req.WithContext(auth.WithUserID(req.Context(), 7))
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
