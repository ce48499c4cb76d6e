package createBooking_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelBooker/internal/booking"
	"hotelBooker/internal/http-server/handlers/booking/createBooking"
	"hotelBooker/internal/http-server/handlers/booking/createBooking/mocks"
	"hotelBooker/internal/http-server/middleware/auth"
	"hotelBooker/internal/lib/logger/handlers/slogdiscard"
	"hotelBooker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		authenticated  bool
		requestBody    string
		mockSetup      func(m *mocks.BookingCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:          "Success",
			authenticated: true,
			requestBody:   `{"room_id": 3}`,
			mockSetup: func(m *mocks.BookingCreator) {
				m.On("CreateBooking", mock.Anything, 7, 3).Return(&models.Booking{ID: 12, UserID: 7, RoomID: 3}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","booking_id":12}`,
		},
		{
			name:           "Unauthenticated",
			authenticated:  false,
			requestBody:    `{"room_id": 3}`,
			mockSetup:      func(m *mocks.BookingCreator) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthenticated"}`,
		},
		{
			name:           "Invalid JSON",
			authenticated:  true,
			requestBody:    `not json`,
			mockSetup:      func(m *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing room_id",
			authenticated:  true,
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "RoomID")
			},
		},
		{
			name:           "Zero room_id",
			authenticated:  true,
			requestBody:    `{"room_id": 0}`,
			mockSetup:      func(m *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "RoomID")
			},
		},
		{
			name:          "Room not found",
			authenticated: true,
			requestBody:   `{"room_id": 99}`,
			mockSetup: func(m *mocks.BookingCreator) {
				m.On("CreateBooking", mock.Anything, 7, 99).Return(nil, booking.ErrRoomNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"room not found"}`,
		},
		{
			name:          "Room full",
			authenticated: true,
			requestBody:   `{"room_id": 3}`,
			mockSetup: func(m *mocks.BookingCreator) {
				m.On("CreateBooking", mock.Anything, 7, 3).Return(nil, booking.ErrRoomFull)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"booking not allowed"}`,
		},
		{
			name:          "Ticket not eligible",
			authenticated: true,
			requestBody:   `{"room_id": 3}`,
			mockSetup: func(m *mocks.BookingCreator) {
				m.On("CreateBooking", mock.Anything, 7, 3).Return(nil, booking.ErrTicketRemote)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"booking not allowed"}`,
		},
		{
			name:          "Internal error",
			authenticated: true,
			requestBody:   `{"room_id": 3}`,
			mockSetup: func(m *mocks.BookingCreator) {
				m.On("CreateBooking", mock.Anything, 7, 3).Return(nil, errors.New("connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to create booking"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			creator := mocks.NewBookingCreator(t)
			tc.mockSetup(creator)

			handler := createBooking.New(logger, creator)

			req, err := http.NewRequest(http.MethodPost, "/booking", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			if tc.authenticated {
				req = req.WithContext(auth.WithUserID(req.Context(), 7))
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
