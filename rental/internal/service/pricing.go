package service

import (
	"context"
	"time"

	"github.com/drivehub/rental-service/rental/internal/errs"
	"github.com/drivehub/rental-service/rental/internal/model"
)

const hoursPerDay = 24

// RentalDays is the billable day count: whole days between pickup and
// dropoff rounded up, never below 1.
func RentalDays(pickup, dropoff time.Time) int {
	hours := dropoff.Sub(pickup).Hours()
	days := int(hours / hoursPerDay)
	if float64(days*hoursPerDay) < hours {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}

// QuoteBooking prices a prospective booking against the catalog's
// current daily rate for the car.
func (s *Service) QuoteBooking(ctx context.Context, req model.QuoteRequest) (model.Quote, error) {
	car, err := s.repo.GetCar(ctx, req.CarID)
	if err != nil {
		return model.Quote{}, err
	}
	return s.Quote(req.PickupDate.Time, req.DropoffDate.Time, car.PricePerDay, req.PromoCode)
}

// Quote computes the full price breakdown. The promo code is the single
// configured code worth a flat percentage of subtotal; anything else is
// rejected. Dropoff on or before pickup is rejected outright.
func (s *Service) Quote(pickup, dropoff time.Time, pricePerDay int64, promoCode string) (model.Quote, error) {
	if !dropoff.After(pickup) {
		return model.Quote{}, errs.ErrInvalidDateRange
	}

	days := RentalDays(pickup, dropoff)
	subtotal := pricePerDay * int64(days)

	var discount int64
	if promoCode != "" {
		if promoCode != s.cfg.Promo.Code {
			return model.Quote{}, errs.ErrInvalidPromoCode
		}
		discount = subtotal * s.cfg.Promo.DiscountPercent / 100
	}

	var tax int64 // reserved, always zero for now

	total := subtotal - discount + tax
	if total < 0 {
		total = 0
	}

	return model.Quote{
		RentalDays:  days,
		PricePerDay: pricePerDay,
		Subtotal:    subtotal,
		Discount:    discount,
		Tax:         tax,
		Total:       total,
	}, nil
}
