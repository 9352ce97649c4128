package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/drivehub/rental-service/rental/internal/errs"
	"github.com/drivehub/rental-service/rental/internal/model"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var bookingColumns = []string{
	"id", "booking_uid", "user_id", "car_id", "car_name", "license_plate",
	"pickup_location", "dropoff_location", "pickup_date", "dropoff_date", "pickup_time",
	"rental_days", "price_per_day", "subtotal", "discount", "tax", "total_amount",
	"gateway_order_id", "gateway_payment_id", "payment_status", "payment_method",
	"status", "created_at", "updated_at",
}

// CreateBooking inserts exactly one row per gateway payment id. A repeated
// gateway callback hits the unique index and the already-recorded booking
// is returned instead of an error.
func (r *repository) CreateBooking(ctx context.Context, b model.Booking) (model.Booking, error) {
	query, args, err := qb.Insert(bookingsTableName).
		Columns("booking_uid", "user_id", "car_id", "car_name", "license_plate",
			"pickup_location", "dropoff_location", "pickup_date", "dropoff_date", "pickup_time",
			"rental_days", "price_per_day", "subtotal", "discount", "tax", "total_amount",
			"gateway_order_id", "gateway_payment_id", "payment_status", "payment_method", "status").
		Values(uuid.New(), b.UserID, b.CarID, b.CarName, b.LicensePlate,
			b.PickupLocation, b.DropoffLocation, b.PickupDate, b.DropoffDate, b.PickupTime,
			b.RentalDays, b.PricePerDay, b.Subtotal, b.Discount, b.Tax, b.TotalAmount,
			b.GatewayOrderID, b.GatewayPaymentID, b.PaymentStatus, b.PaymentMethod, b.Status).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}

	var res model.Booking
	if err := r.db.GetContext(ctx, &res, query, args...); err != nil {
		if isUniqueViolation(err) {
			return r.GetBookingByPaymentID(ctx, b.GatewayPaymentID)
		}
		r.log.Error("CreateBooking", zap.String("q", query), zap.Any("args", args))
		return model.Booking{}, err
	}
	return res, nil
}

func (r *repository) GetBookingByPaymentID(ctx context.Context, paymentID string) (model.Booking, error) {
	query, args, err := qb.Select(bookingColumns...).
		From(bookingsTableName).
		Where(sq.Eq{"gateway_payment_id": paymentID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	var b model.Booking
	if err := r.db.GetContext(ctx, &b, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errs.ErrNotFound
		}
		return model.Booking{}, err
	}
	return b, nil
}

func (r *repository) ListBookingsByUser(ctx context.Context, userID int) ([]model.Booking, error) {
	query, args, err := qb.Select(bookingColumns...).
		From(bookingsTableName).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.Booking, 0)
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) ListBookings(ctx context.Context) ([]model.Booking, error) {
	query, args, err := qb.Select(bookingColumns...).
		From(bookingsTableName).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.Booking, 0)
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) GetBooking(ctx context.Context, id int) (model.Booking, error) {
	query, args, err := qb.Select(bookingColumns...).
		From(bookingsTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	var b model.Booking
	if err := r.db.GetContext(ctx, &b, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errs.ErrNotFound
		}
		return model.Booking{}, err
	}
	return b, nil
}

// UpdateBookingStatus moves a booking from one status to another. The
// `from` guard makes concurrent admin updates lose cleanly instead of
// clobbering each other.
func (r *repository) UpdateBookingStatus(ctx context.Context, id int, from, to model.BookingStatus) (model.Booking, error) {
	query, args, err := qb.Update(bookingsTableName).
		Set("status", to).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"status": from}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	var b model.Booking
	if err := r.db.GetContext(ctx, &b, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errs.ErrInvalidStatusTransition
		}
		return model.Booking{}, err
	}
	return b, nil
}
