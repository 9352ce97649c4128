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

func (h *Handler) RequestOTP(c echo.Context) error {
	var req model.OTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	code, err := h.rentalSvc.RequestOTP(c.Request().Context(), req.Phone)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.enq.Enqueue(kafka.NotificationTopic, kafka.NotificationEvent{
		Kind:       kafka.EventKindOTPRequested,
		Phone:      req.Phone,
		OTPCode:    code,
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		h.log.Error("enqueue otp event", zap.Error(err))
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "otp sent"})
}

func (h *Handler) VerifyOTP(c echo.Context) error {
	var req model.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	user, err := h.rentalSvc.VerifyOTP(c.Request().Context(), req.Phone, req.Code)
	if err != nil {
		if errors.Is(err, errs.ErrOTPInvalid) || errors.Is(err, errs.ErrOTPExpired) {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	token, err := h.authMng.NewToken(auth.Profile{
		UserID: user.ID,
		Phone:  user.Phone,
		Role:   auth.RoleUser,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	c.SetCookie(auth.NewCookie(auth.UserCookieName, token, h.cfg.JWT.TokenTTL))

	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

func (h *Handler) Logout(c echo.Context) error {
	c.SetCookie(auth.NewCookie(auth.UserCookieName, "", 0))
	return c.NoContent(http.StatusOK)
}

func (h *Handler) AdminLogin(c echo.Context) error {
	var req model.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.rentalSvc.AdminLogin(req.Username, req.Password); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	token, err := h.authMng.NewToken(auth.Profile{Role: auth.RoleAdmin})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	c.SetCookie(auth.NewCookie(auth.AdminCookieName, token, h.cfg.JWT.TokenTTL))

	return c.NoContent(http.StatusOK)
}

func (h *Handler) AdminLogout(c echo.Context) error {
	c.SetCookie(auth.NewCookie(auth.AdminCookieName, "", 0))
	return c.NoContent(http.StatusOK)
}
