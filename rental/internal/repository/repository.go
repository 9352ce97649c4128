package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/drivehub/rental-service/rental/internal/errs"
	"github.com/drivehub/rental-service/rental/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Repository interface {
	// catalog
	ListAvailableCars(ctx context.Context, filter model.CarFilter) ([]model.Car, error)
	ListCars(ctx context.Context) ([]model.Car, error)
	GetCar(ctx context.Context, id int) (model.Car, error)
	CreateCar(ctx context.Context, req model.CarRequest) (model.Car, error)
	UpdateCar(ctx context.Context, id int, req model.CarRequest) (model.Car, error)
	DeleteCar(ctx context.Context, id int) error

	// reviews
	ListReviews(ctx context.Context, carID int) ([]model.Review, error)
	RatingSummary(ctx context.Context, carID int) (avg float64, count int, err error)
	CreateReview(ctx context.Context, userID, carID int, req model.CreateReviewRequest) (model.Review, error)

	// bookings
	CreateBooking(ctx context.Context, b model.Booking) (model.Booking, error)
	GetBookingByPaymentID(ctx context.Context, paymentID string) (model.Booking, error)
	ListBookingsByUser(ctx context.Context, userID int) ([]model.Booking, error)
	ListBookings(ctx context.Context) ([]model.Booking, error)
	GetBooking(ctx context.Context, id int) (model.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int, from, to model.BookingStatus) (model.Booking, error)

	// users
	GetOrCreateUserByPhone(ctx context.Context, phone string) (model.User, error)
	GetUser(ctx context.Context, id int) (model.User, error)
	UpdateProfile(ctx context.Context, id int, req model.UpdateProfileRequest) (model.User, error)
	SetDocumentURL(ctx context.Context, id int, docType, url string) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	SetDocumentsVerified(ctx context.Context, id int, verified bool) (model.User, error)

	// otp
	CreateOTP(ctx context.Context, phone, codeHash string, expiresAt time.Time) error
	GetActiveOTP(ctx context.Context, phone string) (model.OTPCode, error)
	ConsumeOTP(ctx context.Context, id int) error

	// contact + gallery
	CreateContactMessage(ctx context.Context, req model.ContactRequest) (model.ContactMessage, error)
	ListContactMessages(ctx context.Context) ([]model.ContactMessage, error)
	ListGalleryImages(ctx context.Context) ([]model.GalleryImage, error)
	CreateGalleryImage(ctx context.Context, req model.GalleryImageRequest) (model.GalleryImage, error)
	DeleteGalleryImage(ctx context.Context, id int) error
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	carsTableName     = `cars`
	usersTableName    = `users`
	bookingsTableName = `bookings`
	reviewsTableName  = `reviews`
	contactTableName  = `contact_messages`
	galleryTableName  = `gallery_images`
	otpTableName      = `otp_codes`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var carColumns = []string{
	"id", "name", "type", "image_urls", "fuel_capacity", "transmission", "seats",
	"price_per_day", "original_price", "license_plate", "is_available", "description",
	"created_at", "updated_at",
}

func (r *repository) ListAvailableCars(ctx context.Context, filter model.CarFilter) ([]model.Car, error) {
	q := qb.Select(carColumns...).
		From(carsTableName).
		Where(sq.Eq{"is_available": true}).
		OrderBy("created_at desc")

	if filter.Type != "" {
		q = q.Where(sq.Eq{"type": filter.Type})
	}
	if filter.Seats > 0 {
		q = q.Where(sq.Eq{"seats": filter.Seats})
	}
	if filter.MaxPrice > 0 {
		q = q.Where(sq.LtOrEq{"price_per_day": filter.MaxPrice})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	cars := make([]model.Car, 0)
	if err := r.db.SelectContext(ctx, &cars, query, args...); err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *repository) ListCars(ctx context.Context) ([]model.Car, error) {
	query, args, err := qb.Select(carColumns...).
		From(carsTableName).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	cars := make([]model.Car, 0)
	if err := r.db.SelectContext(ctx, &cars, query, args...); err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *repository) GetCar(ctx context.Context, id int) (model.Car, error) {
	query, args, err := qb.Select(carColumns...).
		From(carsTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Car{}, err
	}

	var car model.Car
	if err := r.db.GetContext(ctx, &car, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Car{}, errs.ErrNotFound
		}
		return model.Car{}, err
	}
	return car, nil
}

func (r *repository) CreateCar(ctx context.Context, req model.CarRequest) (model.Car, error) {
	query, args, err := qb.Insert(carsTableName).
		Columns("name", "type", "image_urls", "fuel_capacity", "transmission", "seats",
			"price_per_day", "original_price", "license_plate", "is_available", "description").
		Values(req.Name, req.Type, req.ImageURLs, req.FuelCapacity, req.Transmission, req.Seats,
			req.PricePerDay, nullableInt64(req.OriginalPrice), req.LicensePlate, req.IsAvailable, req.Description).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Car{}, err
	}

	var car model.Car
	if err := r.db.GetContext(ctx, &car, query, args...); err != nil {
		r.log.Error("CreateCar", zap.String("q", query), zap.Any("args", args))
		if isUniqueViolation(err) {
			return model.Car{}, errs.ErrAlreadyExists
		}
		return model.Car{}, err
	}
	return car, nil
}

func (r *repository) UpdateCar(ctx context.Context, id int, req model.CarRequest) (model.Car, error) {
	query, args, err := qb.Update(carsTableName).
		Set("name", req.Name).
		Set("type", req.Type).
		Set("image_urls", req.ImageURLs).
		Set("fuel_capacity", req.FuelCapacity).
		Set("transmission", req.Transmission).
		Set("seats", req.Seats).
		Set("price_per_day", req.PricePerDay).
		Set("original_price", nullableInt64(req.OriginalPrice)).
		Set("license_plate", req.LicensePlate).
		Set("is_available", req.IsAvailable).
		Set("description", req.Description).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Car{}, err
	}

	var car model.Car
	if err := r.db.GetContext(ctx, &car, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Car{}, errs.ErrNotFound
		}
		if isUniqueViolation(err) {
			return model.Car{}, errs.ErrAlreadyExists
		}
		return model.Car{}, err
	}
	return car, nil
}

func (r *repository) DeleteCar(ctx context.Context, id int) error {
	query, args, err := qb.Delete(carsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return errs.ErrCarHasBookings
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 { //nolint:errcheck
		return errs.ErrNotFound
	}
	return nil
}

func nullableInt64(v int64) any {
	if v == 0 {
		return nil
	}
	return v
}
