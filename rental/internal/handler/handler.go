package handler

import (
	"net/http"
	"strconv"

	"github.com/drivehub/rental-service/pkg/auth"
	md "github.com/drivehub/rental-service/pkg/middleware"
	"github.com/drivehub/rental-service/pkg/validate"
	"github.com/drivehub/rental-service/rental/config"
	"github.com/drivehub/rental-service/rental/internal/errs"
	"github.com/drivehub/rental-service/rental/internal/model"
	"github.com/drivehub/rental-service/rental/internal/storage"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Handler struct {
	rentalSvc RentalService
	enq       Enqueuer
	store     storage.Store
	authMng   *auth.Manager
	cfg       *config.Config
	log       *zap.Logger
}

func New(rentalSvc RentalService, enq Enqueuer, store storage.Store, authMng *auth.Manager, cfg *config.Config, log *zap.Logger) *Handler {
	return &Handler{
		rentalSvc: rentalSvc,
		enq:       enq,
		store:     store,
		authMng:   authMng,
		cfg:       cfg,
		log:       log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	e.Static(h.cfg.Storage.BaseURL, h.cfg.Storage.Dir)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/cars", h.ListCars)
	api.GET("/cars/:id", h.GetCar)
	api.GET("/gallery", h.ListGallery)
	api.POST("/contact", h.CreateContact)

	api.POST("/auth/otp", h.RequestOTP)
	api.POST("/auth/verify", h.VerifyOTP)
	api.POST("/auth/logout", h.Logout)

	user := api.Group("", md.CookieAuth(h.authMng, auth.UserCookieName, auth.RoleUser))
	user.GET("/profile", h.GetProfile)
	user.PUT("/profile", h.UpdateProfile)
	user.POST("/documents", h.UploadDocument)
	user.POST("/bookings/quote", h.QuoteBooking)
	user.GET("/bookings", h.ListOwnBookings)
	user.POST("/payments/order", h.CreateOrder)
	user.POST("/payments/verify", h.VerifyPayment)
	user.POST("/cars/:id/reviews", h.CreateReview)

	adm := api.Group("/admin")
	adm.POST("/login", h.AdminLogin)
	adm.POST("/logout", h.AdminLogout)

	admAuth := adm.Group("", md.CookieAuth(h.authMng, auth.AdminCookieName, auth.RoleAdmin))
	admAuth.GET("/cars", h.AdminListCars)
	admAuth.POST("/cars", h.AdminCreateCar)
	admAuth.PUT("/cars/:id", h.AdminUpdateCar)
	admAuth.DELETE("/cars/:id", h.AdminDeleteCar)
	admAuth.GET("/bookings", h.AdminListBookings)
	admAuth.PATCH("/bookings/:id/status", h.AdminUpdateBookingStatus)
	admAuth.GET("/users", h.AdminListUsers)
	admAuth.PUT("/users/:id/verification", h.AdminSetVerification)
	admAuth.GET("/contacts", h.AdminListContacts)
	admAuth.POST("/gallery", h.AdminCreateGalleryImage)
	admAuth.DELETE("/gallery/:id", h.AdminDeleteGalleryImage)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) ListCars(c echo.Context) error {
	ctx := c.Request().Context()

	var filter model.CarFilter
	filter.Type = c.QueryParam("type")
	if v := c.QueryParam("seats"); v != "" {
		seats, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "seats must be a number")
		}
		filter.Seats = seats
	}
	if v := c.QueryParam("maxPrice"); v != "" {
		maxPrice, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "maxPrice must be a number")
		}
		filter.MaxPrice = maxPrice
	}

	cars, err := h.rentalSvc.ListAvailableCars(ctx, filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"cars": cars})
}

func (h *Handler) GetCar(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := carID(c)
	if err != nil {
		return err
	}
	details, err := h.rentalSvc.GetCarDetails(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, details)
}

func (h *Handler) ListGallery(c echo.Context) error {
	images, err := h.rentalSvc.ListGalleryImages(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"images": images})
}

func (h *Handler) CreateContact(c echo.Context) error {
	var req model.ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	msg, err := h.rentalSvc.CreateContactMessage(c.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, msg)
}

func (h *Handler) CreateReview(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	id, err := carID(c)
	if err != nil {
		return err
	}
	var req model.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	review, err := h.rentalSvc.CreateReview(ctx, userID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrAlreadyExists):
			return echo.NewHTTPError(http.StatusConflict, "review already exists for this car")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, review)
}

func carID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid car id")
	}
	return id, nil
}
