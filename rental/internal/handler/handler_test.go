package handler_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/drivehub/rental-service/pkg/auth"
	"github.com/drivehub/rental-service/pkg/kafka"
	"github.com/drivehub/rental-service/pkg/validate"
	"github.com/drivehub/rental-service/rental/config"
	"github.com/drivehub/rental-service/rental/internal/errs"
	"github.com/drivehub/rental-service/rental/internal/handler"
	"github.com/drivehub/rental-service/rental/internal/model"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/drivehub/rental-service/rental/internal/handler/mocks"
)

type enqueuerStub struct {
	mu     sync.Mutex
	events []kafka.NotificationEvent
}

func (s *enqueuerStub) Enqueue(_ string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ev, ok := v.(kafka.NotificationEvent); ok {
		s.events = append(s.events, ev)
	}
	return nil
}

func newTestHandler(svc handler.RentalService) (*handler.Handler, *enqueuerStub) {
	enq := &enqueuerStub{}
	jwt := auth.Config{Secret: "test-secret", TokenTTL: time.Hour}
	cfg := &config.Config{JWT: jwt}
	return handler.New(svc, enq, nil, auth.NewManager(jwt), cfg, zap.NewNop()), enq
}

func asUser(userID int, phone string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := auth.SetAuthContext(c.Request().Context(), auth.Profile{
				UserID: userID,
				Phone:  phone,
				Role:   auth.RoleUser,
			})
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func TestHandler_ListCars(t *testing.T) {
	t.Parallel()
	type input struct {
		query string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockRentalService)

	car := model.Car{
		ID:           1,
		Name:         "Swift Dzire",
		Type:         "Sedan",
		ImageURLs:    model.ImageURLs{"/uploads/swift.jpg"},
		FuelCapacity: 37,
		Transmission: "Manual",
		Seats:        5,
		PricePerDay:  80,
		LicensePlate: "MH12AB1234",
		IsAvailable:  true,
		Description:  "Compact sedan",
		CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockRentalService) {
				r.EXPECT().
					ListAvailableCars(gomock.Any(), model.CarFilter{Type: "Sedan", Seats: 5}).
					Return([]model.Car{car}, nil)
			},
			input: input{query: "?type=Sedan&seats=5"},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"cars":[{"id":1,"name":"Swift Dzire","type":"Sedan","imageUrls":["/uploads/swift.jpg"],"fuelCapacity":37,"transmission":"Manual","seats":5,"pricePerDay":80,"licensePlate":"MH12AB1234","isAvailable":true,"description":"Compact sedan","createdAt":"2026-01-02T03:04:05Z","updatedAt":"2026-01-02T03:04:05Z"}]}`,
			},
			wantErr: false,
		},
		{
			name:         "err. seats not a number",
			mockBehavior: func(r *service_mocks.MockRentalService) {},
			input:        input{query: "?seats=five"},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"seats must be a number"}`,
			},
			wantErr: true,
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockRentalService) {
				r.EXPECT().
					ListAvailableCars(gomock.Any(), model.CarFilter{}).
					Return(nil, errors.New("db internal"))
			},
			input: input{query: ""},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockRentalService(c)
			h, _ := newTestHandler(svc)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/api/v1/cars", h.ListCars)

			r := httptest.NewRequest(http.MethodGet, "/api/v1/cars"+tt.input.query, http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_GetCar(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockRentalService, carID int)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		carID        string
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockRentalService, carID int) {
				r.EXPECT().
					GetCarDetails(gomock.Any(), carID).
					Return(model.CarDetails{
						Car:         model.Car{ID: carID, Name: "Thar", ImageURLs: model.ImageURLs{}},
						Reviews:     []model.Review{},
						AvgRating:   4.5,
						ReviewCount: 2,
					}, nil)
			},
			carID: "3",
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"car":{"id":3,"name":"Thar","type":"","imageUrls":[],"fuelCapacity":0,"transmission":"","seats":0,"pricePerDay":0,"licensePlate":"","isAvailable":false,"description":"","createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"},"reviews":[],"avgRating":4.5,"reviewCount":2}`,
			},
		},
		{
			name: "err. not found",
			mockBehavior: func(r *service_mocks.MockRentalService, carID int) {
				r.EXPECT().
					GetCarDetails(gomock.Any(), carID).
					Return(model.CarDetails{}, errs.ErrNotFound)
			},
			carID: "99",
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
		{
			name:         "err. bad id",
			mockBehavior: func(r *service_mocks.MockRentalService, carID int) {},
			carID:        "abc",
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"invalid car id"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockRentalService(c)
			h, _ := newTestHandler(svc)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/api/v1/cars/:id", h.GetCar)

			var id int
			fmt.Sscanf(tt.carID, "%d", &id) //nolint:errcheck
			tt.mockBehavior(svc, id)

			r := httptest.NewRequest(http.MethodGet, "/api/v1/cars/"+tt.carID, http.NoBody)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CreateReview(t *testing.T) {
	t.Parallel()
	const (
		userID = 7
		carID  = 3
	)
	type response struct {
		expectedCode int
		expectedBody string
		bodyContains string
	}
	type mockBehavior func(r *service_mocks.MockRentalService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		body         string
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockRentalService) {
				r.EXPECT().
					CreateReview(gomock.Any(), userID, carID, model.CreateReviewRequest{
						Rating:  5,
						Comment: "Great car, smooth ride!",
					}).
					Return(model.Review{
						ID:        11,
						UserID:    userID,
						CarID:     carID,
						Rating:    5,
						Comment:   "Great car, smooth ride!",
						CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
					}, nil)
			},
			body: `{"rating":5,"comment":"Great car, smooth ride!"}`,
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":11,"userId":7,"carId":3,"rating":5,"comment":"Great car, smooth ride!","createdAt":"2026-03-01T10:00:00Z"}`,
			},
		},
		{
			name:         "err. comment too short",
			mockBehavior: func(r *service_mocks.MockRentalService) {},
			body:         `{"rating":5,"comment":"nice"}`,
			response: response{
				expectedCode: http.StatusBadRequest,
				bodyContains: "'min' tag",
			},
		},
		{
			name: "err. duplicate review",
			mockBehavior: func(r *service_mocks.MockRentalService) {
				r.EXPECT().
					CreateReview(gomock.Any(), userID, carID, gomock.Any()).
					Return(model.Review{}, errs.ErrAlreadyExists)
			},
			body: `{"rating":4,"comment":"Already said it all before"}`,
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"review already exists for this car"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockRentalService(c)
			h, _ := newTestHandler(svc)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/api/v1/cars/:id/reviews", h.CreateReview, asUser(userID, "+919876543210"))

			tt.mockBehavior(svc)

			r := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/cars/%d/reviews", carID), bytes.NewBufferString(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
			if tt.response.bodyContains != "" {
				require.Contains(t, w.Body.String(), tt.response.bodyContains)
			}
		})
	}
}

func TestHandler_VerifyPayment(t *testing.T) {
	t.Parallel()
	const userID = 7

	booking := model.Booking{
		ID:               42,
		BookingUid:       "c1c3f9a2-0000-4000-8000-000000000042",
		UserID:           userID,
		CarID:            1,
		CarName:          "Swift Dzire",
		LicensePlate:     "MH12AB1234",
		PickupLocation:   "Pune Airport",
		DropoffLocation:  "Pune Airport",
		PickupDate:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		DropoffDate:      time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		PickupTime:       "10:00",
		RentalDays:       3,
		PricePerDay:      80,
		Subtotal:         240,
		TotalAmount:      240,
		GatewayOrderID:   "order_N1",
		GatewayPaymentID: "pay_N1",
		PaymentStatus:    model.PaymentStatusSuccess,
		PaymentMethod:    model.PaymentMethodGateway,
		Status:           model.StatusConfirmed,
		CreatedAt:        time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:        time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}

	reqBody := `{"razorpayOrderId":"order_N1","razorpayPaymentId":"pay_N1","razorpaySignature":"deadbeef",` +
		`"bookingDetails":{"carId":1,"pickupLocation":"Pune Airport","dropoffLocation":"Pune Airport",` +
		`"pickupDate":"2026-09-01","dropoffDate":"2026-09-04","pickupTime":"10:00"}}`

	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockRentalService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		body         string
		response     response
		wantEvents   int
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockRentalService) {
				r.EXPECT().
					VerifyPayment(gomock.Any(), userID, gomock.Any()).
					Return(booking, nil)
			},
			body: reqBody,
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"booking":{"id":42,"bookingUid":"c1c3f9a2-0000-4000-8000-000000000042","carId":1,"carName":"Swift Dzire","licensePlate":"MH12AB1234","pickupLocation":"Pune Airport","dropoffLocation":"Pune Airport","pickupDate":"2026-09-01T00:00:00Z","dropoffDate":"2026-09-04T00:00:00Z","pickupTime":"10:00","rentalDays":3,"pricePerDay":80,"subtotal":240,"discount":0,"tax":0,"totalAmount":240,"gatewayOrderId":"order_N1","gatewayPaymentId":"pay_N1","paymentStatus":"SUCCESS","paymentMethod":"razorpay","status":"CONFIRMED","createdAt":"2026-09-01T12:00:00Z","updatedAt":"2026-09-01T12:00:00Z"}}`,
			},
			wantEvents: 1,
		},
		{
			name: "err. bad signature",
			mockBehavior: func(r *service_mocks.MockRentalService) {
				r.EXPECT().
					VerifyPayment(gomock.Any(), userID, gomock.Any()).
					Return(model.Booking{}, errs.ErrInvalidSignature)
			},
			body: reqBody,
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"payment signature mismatch"}`,
			},
			wantEvents: 0,
		},
		{
			name:         "err. missing payment id",
			mockBehavior: func(r *service_mocks.MockRentalService) {},
			body:         `{"razorpayOrderId":"order_N1","razorpaySignature":"deadbeef"}`,
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: "",
			},
			wantEvents: 0,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockRentalService(c)
			h, enq := newTestHandler(svc)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/api/v1/payments/verify", h.VerifyPayment, asUser(userID, "+919876543210"))

			tt.mockBehavior(svc)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/payments/verify", bytes.NewBufferString(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
			require.Len(t, enq.events, tt.wantEvents)
			if tt.wantEvents > 0 {
				ev := enq.events[0]
				require.Equal(t, kafka.EventKindBookingConfirmed, ev.Kind)
				require.Equal(t, "+919876543210", ev.Phone)
				require.Equal(t, booking.BookingUid, ev.BookingUid)
				require.Equal(t, booking.TotalAmount, ev.Total)
			}
		})
	}
}

func TestHandler_RequestOTP(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockRentalService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		body         string
		response     response
		wantEvents   int
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockRentalService) {
				r.EXPECT().
					RequestOTP(gomock.Any(), "+919876543210").
					Return("123456", nil)
			},
			body: `{"phone":"+919876543210"}`,
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"message":"otp sent"}`,
			},
			wantEvents: 1,
		},
		{
			name:         "err. phone too short",
			mockBehavior: func(r *service_mocks.MockRentalService) {},
			body:         `{"phone":"123"}`,
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: "",
			},
			wantEvents: 0,
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockRentalService) {
				r.EXPECT().
					RequestOTP(gomock.Any(), "+919876543210").
					Return("", errors.New("db internal"))
			},
			body: `{"phone":"+919876543210"}`,
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
			wantEvents: 0,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockRentalService(c)
			h, enq := newTestHandler(svc)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/api/v1/auth/otp", h.RequestOTP)

			tt.mockBehavior(svc)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/otp", bytes.NewBufferString(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
			require.Len(t, enq.events, tt.wantEvents)
			if tt.wantEvents > 0 {
				ev := enq.events[0]
				require.Equal(t, kafka.EventKindOTPRequested, ev.Kind)
				require.Equal(t, "+919876543210", ev.Phone)
				require.Equal(t, "123456", ev.OTPCode)
			}
		})
	}
}

func TestHandler_AdminDeleteCar(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockRentalService, carID int)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		carID        string
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockRentalService, carID int) {
				r.EXPECT().
					DeleteCar(gomock.Any(), carID).
					Return(nil)
			},
			carID: "3",
			response: response{
				expectedCode: http.StatusNoContent,
			},
		},
		{
			name: "err. car has bookings",
			mockBehavior: func(r *service_mocks.MockRentalService, carID int) {
				r.EXPECT().
					DeleteCar(gomock.Any(), carID).
					Return(errs.ErrCarHasBookings)
			},
			carID: "3",
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"car has bookings; mark it unavailable instead"}`,
			},
		},
		{
			name: "err. not found",
			mockBehavior: func(r *service_mocks.MockRentalService, carID int) {
				r.EXPECT().
					DeleteCar(gomock.Any(), carID).
					Return(errs.ErrNotFound)
			},
			carID: "99",
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
		{
			name:         "err. bad id",
			mockBehavior: func(r *service_mocks.MockRentalService, carID int) {},
			carID:        "abc",
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"invalid car id"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockRentalService(c)
			h, _ := newTestHandler(svc)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.DELETE("/api/v1/admin/cars/:id", h.AdminDeleteCar)

			var id int
			fmt.Sscanf(tt.carID, "%d", &id) //nolint:errcheck
			tt.mockBehavior(svc, id)

			r := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/cars/"+tt.carID, http.NoBody)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}
