package errs

import (
	"errors"
)

var (
	ErrNotFound                = errors.New("not found")
	ErrAlreadyExists           = errors.New("already exists")
	ErrCarHasBookings          = errors.New("car has bookings")
	ErrInvalidSignature        = errors.New("payment signature mismatch")
	ErrInvalidPromoCode        = errors.New("invalid promo code")
	ErrInvalidDateRange        = errors.New("dropoff date must be after pickup date")
	ErrInvalidStatusTransition = errors.New("invalid booking status transition")
	ErrInvalidDocument         = errors.New("invalid document number")
	ErrOTPExpired              = errors.New("otp expired")
	ErrOTPInvalid              = errors.New("invalid otp")
	ErrBadCredentials          = errors.New("bad credentials")
)
