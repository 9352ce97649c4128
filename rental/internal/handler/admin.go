package handler

import (
	"net/http"
	"strconv"

	"github.com/drivehub/rental-service/rental/internal/errs"
	"github.com/drivehub/rental-service/rental/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func (h *Handler) AdminListCars(c echo.Context) error {
	cars, err := h.rentalSvc.ListCars(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"cars": cars})
}

func (h *Handler) AdminCreateCar(c echo.Context) error {
	var req model.CarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	car, err := h.rentalSvc.CreateCar(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrAlreadyExists) {
			return echo.NewHTTPError(http.StatusConflict, "license plate already registered")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, car)
}

func (h *Handler) AdminUpdateCar(c echo.Context) error {
	id, err := carID(c)
	if err != nil {
		return err
	}
	var req model.CarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	car, err := h.rentalSvc.UpdateCar(c.Request().Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrAlreadyExists):
			return echo.NewHTTPError(http.StatusConflict, "license plate already registered")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, car)
}

func (h *Handler) AdminDeleteCar(c echo.Context) error {
	id, err := carID(c)
	if err != nil {
		return err
	}
	if err := h.rentalSvc.DeleteCar(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrCarHasBookings):
			return echo.NewHTTPError(http.StatusConflict, "car has bookings; mark it unavailable instead")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) AdminListBookings(c echo.Context) error {
	bookings, err := h.rentalSvc.ListBookings(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": bookings})
}

func (h *Handler) AdminUpdateBookingStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req model.UpdateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	booking, err := h.rentalSvc.UpdateBookingStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrInvalidStatusTransition):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *Handler) AdminListUsers(c echo.Context) error {
	users, err := h.rentalSvc.ListUsers(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"users": users})
}

func (h *Handler) AdminSetVerification(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req model.UpdateVerificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	user, err := h.rentalSvc.SetDocumentsVerified(c.Request().Context(), id, req.DocumentsVerified)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) AdminListContacts(c echo.Context) error {
	msgs, err := h.rentalSvc.ListContactMessages(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"messages": msgs})
}

func (h *Handler) AdminCreateGalleryImage(c echo.Context) error {
	var req model.GalleryImageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	img, err := h.rentalSvc.CreateGalleryImage(c.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, img)
}

func (h *Handler) AdminDeleteGalleryImage(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.rentalSvc.DeleteGalleryImage(c.Request().Context(), id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
