package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"time"

	"github.com/drivehub/rental-service/rental/internal/errs"
	"github.com/drivehub/rental-service/rental/internal/model"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const otpTTL = 5 * time.Minute

// RequestOTP issues a fresh one-time code for the phone and stores only
// its bcrypt hash. The plain code goes out solely through the
// notification pipeline.
func (s *Service) RequestOTP(ctx context.Context, phone string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	code := fmt.Sprintf("%06d", n.Int64())

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	if err := s.repo.CreateOTP(ctx, phone, string(hash), time.Now().Add(otpTTL)); err != nil {
		return "", err
	}
	return code, nil
}

// VerifyOTP consumes the latest active code for the phone and creates
// the user on first login.
func (s *Service) VerifyOTP(ctx context.Context, phone, code string) (model.User, error) {
	otp, err := s.repo.GetActiveOTP(ctx, phone)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.User{}, errs.ErrOTPInvalid
		}
		return model.User{}, err
	}
	if time.Now().After(otp.ExpiresAt) {
		return model.User{}, errs.ErrOTPExpired
	}
	if bcrypt.CompareHashAndPassword([]byte(otp.CodeHash), []byte(code)) != nil {
		return model.User{}, errs.ErrOTPInvalid
	}
	if err := s.repo.ConsumeOTP(ctx, otp.ID); err != nil {
		return model.User{}, err
	}
	return s.repo.GetOrCreateUserByPhone(ctx, phone)
}

// AdminLogin checks the configured admin credential pair.
func (s *Service) AdminLogin(username, password string) error {
	nameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.Admin.Username)) == 1
	passOK := bcrypt.CompareHashAndPassword([]byte(s.cfg.Admin.PasswordHash), []byte(password)) == nil
	if !nameOK || !passOK {
		return errs.ErrBadCredentials
	}
	return nil
}
