package service

import (
	"context"
	"testing"
	"time"

	"github.com/drivehub/rental-service/rental/config"
	"github.com/drivehub/rental-service/rental/internal/errs"
	"github.com/drivehub/rental-service/rental/internal/model"
	"github.com/drivehub/rental-service/rental/internal/repository"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type otpRepoStub struct {
	repository.Repository

	otp      model.OTPCode
	getErr   error
	consumed []int

	createdPhone string
	createdHash  string
	createdExp   time.Time
}

func (r *otpRepoStub) CreateOTP(_ context.Context, phone, codeHash string, expiresAt time.Time) error {
	r.createdPhone, r.createdHash, r.createdExp = phone, codeHash, expiresAt
	return nil
}

func (r *otpRepoStub) GetActiveOTP(context.Context, string) (model.OTPCode, error) {
	if r.getErr != nil {
		return model.OTPCode{}, r.getErr
	}
	return r.otp, nil
}

func (r *otpRepoStub) ConsumeOTP(_ context.Context, id int) error {
	r.consumed = append(r.consumed, id)
	return nil
}

func (r *otpRepoStub) GetOrCreateUserByPhone(_ context.Context, phone string) (model.User, error) {
	return model.User{ID: 7, Phone: phone}, nil
}

func newAuthService(repo repository.Repository) *Service {
	return NewService(repo, nil, &config.Config{}, zap.NewNop())
}

func hashCode(t *testing.T, code string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestService_RequestOTP(t *testing.T) {
	t.Parallel()
	repo := &otpRepoStub{}
	svc := newAuthService(repo)

	code, err := svc.RequestOTP(context.Background(), "+919876543210")
	require.NoError(t, err)
	require.Len(t, code, 6)
	require.Equal(t, "+919876543210", repo.createdPhone)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.createdHash), []byte(code)))
	require.WithinDuration(t, time.Now().Add(otpTTL), repo.createdExp, time.Minute)
}

func TestService_VerifyOTP(t *testing.T) {
	t.Parallel()
	const phone = "+919876543210"

	t.Run("success consumes the code", func(t *testing.T) {
		t.Parallel()
		repo := &otpRepoStub{otp: model.OTPCode{
			ID:        3,
			Phone:     phone,
			CodeHash:  hashCode(t, "123456"),
			ExpiresAt: time.Now().Add(time.Minute),
		}}
		user, err := newAuthService(repo).VerifyOTP(context.Background(), phone, "123456")
		require.NoError(t, err)
		require.Equal(t, phone, user.Phone)
		require.Equal(t, []int{3}, repo.consumed)
	})

	t.Run("expired code", func(t *testing.T) {
		t.Parallel()
		repo := &otpRepoStub{otp: model.OTPCode{
			ID:        3,
			CodeHash:  hashCode(t, "123456"),
			ExpiresAt: time.Now().Add(-time.Second),
		}}
		_, err := newAuthService(repo).VerifyOTP(context.Background(), phone, "123456")
		require.ErrorIs(t, err, errs.ErrOTPExpired)
		require.Empty(t, repo.consumed)
	})

	t.Run("wrong code", func(t *testing.T) {
		t.Parallel()
		repo := &otpRepoStub{otp: model.OTPCode{
			ID:        3,
			CodeHash:  hashCode(t, "123456"),
			ExpiresAt: time.Now().Add(time.Minute),
		}}
		_, err := newAuthService(repo).VerifyOTP(context.Background(), phone, "654321")
		require.ErrorIs(t, err, errs.ErrOTPInvalid)
		require.Empty(t, repo.consumed)
	})

	t.Run("no active code", func(t *testing.T) {
		t.Parallel()
		repo := &otpRepoStub{getErr: errs.ErrNotFound}
		_, err := newAuthService(repo).VerifyOTP(context.Background(), phone, "123456")
		require.ErrorIs(t, err, errs.ErrOTPInvalid)
	})

	t.Run("db failure is not an auth failure", func(t *testing.T) {
		t.Parallel()
		dbErr := errors.New("connection refused")
		repo := &otpRepoStub{getErr: dbErr}
		_, err := newAuthService(repo).VerifyOTP(context.Background(), phone, "123456")
		require.ErrorIs(t, err, dbErr)
		require.NotErrorIs(t, err, errs.ErrOTPInvalid)
	})
}
