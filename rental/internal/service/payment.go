package service

import (
	"context"

	"github.com/drivehub/rental-service/rental/internal/errs"
	"github.com/drivehub/rental-service/rental/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateOrder prices the requested rental from the catalog and opens a
// gateway order for it. The daily rate never comes from the client.
func (s *Service) CreateOrder(ctx context.Context, userID int, req model.CreateOrderRequest) (model.OrderResponse, error) {
	car, err := s.repo.GetCar(ctx, req.CarID)
	if err != nil {
		return model.OrderResponse{}, err
	}
	quote, err := s.Quote(req.PickupDate.Time, req.DropoffDate.Time, car.PricePerDay, req.PromoCode)
	if err != nil {
		return model.OrderResponse{}, err
	}

	// gateway wants minor units
	amount := quote.Total * 100
	receipt := uuid.NewString()

	order, err := s.gw.CreateOrder(ctx, amount, s.cfg.Gateway.Currency, receipt)
	if err != nil {
		return model.OrderResponse{}, err
	}

	s.log.Debug("gateway order created",
		zap.String("order_id", order.ID),
		zap.Int("user_id", userID),
		zap.Int64("amount", order.Amount))

	return model.OrderResponse{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
	}, nil
}

// VerifyPayment authenticates a gateway callback and records the booking.
// The signature check fails closed: nothing is written on mismatch. The
// monetary fields are recomputed from the catalog, and the insert is
// idempotent on the gateway payment id.
func (s *Service) VerifyPayment(ctx context.Context, userID int, req model.VerifyPaymentRequest) (model.Booking, error) {
	if !s.gw.VerifySignature(req.GatewayOrderID, req.GatewayPaymentID, req.GatewaySignature) {
		return model.Booking{}, errs.ErrInvalidSignature
	}

	d := req.BookingDetails
	car, err := s.repo.GetCar(ctx, d.CarID)
	if err != nil {
		return model.Booking{}, err
	}
	quote, err := s.Quote(d.PickupDate.Time, d.DropoffDate.Time, car.PricePerDay, d.PromoCode)
	if err != nil {
		return model.Booking{}, err
	}

	booking, err := s.repo.CreateBooking(ctx, model.Booking{
		UserID:           userID,
		CarID:            car.ID,
		CarName:          car.Name,
		LicensePlate:     car.LicensePlate,
		PickupLocation:   d.PickupLocation,
		DropoffLocation:  d.DropoffLocation,
		PickupDate:       d.PickupDate.Time,
		DropoffDate:      d.DropoffDate.Time,
		PickupTime:       d.PickupTime,
		RentalDays:       quote.RentalDays,
		PricePerDay:      quote.PricePerDay,
		Subtotal:         quote.Subtotal,
		Discount:         quote.Discount,
		Tax:              quote.Tax,
		TotalAmount:      quote.Total,
		GatewayOrderID:   req.GatewayOrderID,
		GatewayPaymentID: req.GatewayPaymentID,
		PaymentStatus:    model.PaymentStatusSuccess,
		PaymentMethod:    model.PaymentMethodGateway,
		Status:           model.StatusConfirmed,
	})
	if err != nil {
		// payment is already captured at the gateway; leave a loud trace
		// for reconciliation
		s.log.Error("booking insert after captured payment",
			zap.String("gateway_order_id", req.GatewayOrderID),
			zap.String("gateway_payment_id", req.GatewayPaymentID),
			zap.Error(err))
		return model.Booking{}, err
	}
	return booking, nil
}
