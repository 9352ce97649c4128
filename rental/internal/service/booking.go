package service

import (
	"context"

	"github.com/drivehub/rental-service/rental/internal/errs"
	"github.com/drivehub/rental-service/rental/internal/model"
)

func (s *Service) ListBookingsByUser(ctx context.Context, userID int) ([]model.Booking, error) {
	return s.repo.ListBookingsByUser(ctx, userID)
}

func (s *Service) ListBookings(ctx context.Context) ([]model.Booking, error) {
	return s.repo.ListBookings(ctx)
}

var statusTransitions = map[model.BookingStatus][]model.BookingStatus{
	model.StatusPending:   {model.StatusConfirmed, model.StatusCancelled},
	model.StatusConfirmed: {model.StatusOngoing, model.StatusCancelled},
	model.StatusOngoing:   {model.StatusCompleted},
}

// ValidTransition reports whether a booking may move from one status to
// another. Completed and cancelled are terminal.
func ValidTransition(from, to model.BookingStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s *Service) UpdateBookingStatus(ctx context.Context, id int, to model.BookingStatus) (model.Booking, error) {
	booking, err := s.repo.GetBooking(ctx, id)
	if err != nil {
		return model.Booking{}, err
	}
	if !ValidTransition(booking.Status, to) {
		return model.Booking{}, errs.ErrInvalidStatusTransition
	}
	return s.repo.UpdateBookingStatus(ctx, id, booking.Status, to)
}
