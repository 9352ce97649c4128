package handler

import (
	"net/http"
	"time"

	"github.com/drivehub/rental-service/pkg/auth"
	"github.com/drivehub/rental-service/pkg/kafka"
	"github.com/drivehub/rental-service/rental/internal/errs"
	"github.com/drivehub/rental-service/rental/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (h *Handler) QuoteBooking(c echo.Context) error {
	ctx := c.Request().Context()

	var req model.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	quote, err := h.rentalSvc.QuoteBooking(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrInvalidPromoCode), errors.Is(err, errs.ErrInvalidDateRange):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, quote)
}

func (h *Handler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	var req model.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	order, err := h.rentalSvc.CreateOrder(ctx, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrInvalidPromoCode), errors.Is(err, errs.ErrInvalidDateRange):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, order)
}

func (h *Handler) VerifyPayment(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	var req model.VerifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	booking, err := h.rentalSvc.VerifyPayment(ctx, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidSignature):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrInvalidPromoCode), errors.Is(err, errs.ErrInvalidDateRange):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	profile, _ := auth.GetProfile(ctx) //nolint:errcheck
	if err := h.enq.Enqueue(kafka.NotificationTopic, kafka.NotificationEvent{
		Kind:       kafka.EventKindBookingConfirmed,
		Phone:      profile.Phone,
		BookingUid: booking.BookingUid,
		CarName:    booking.CarName,
		Total:      booking.TotalAmount,
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		h.log.Error("enqueue booking event", zap.Error(err))
	}

	return c.JSON(http.StatusOK, echo.Map{"booking": booking})
}

func (h *Handler) ListOwnBookings(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	bookings, err := h.rentalSvc.ListBookingsByUser(ctx, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": bookings})
}
