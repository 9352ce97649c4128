package service

import (
	"context"
	"regexp"

	"github.com/drivehub/rental-service/rental/internal/errs"
	"github.com/drivehub/rental-service/rental/internal/model"
	"github.com/pkg/errors"
)

var (
	aadharPattern = regexp.MustCompile(`^[2-9][0-9]{11}$`)
	panPattern    = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
)

// Verhoeff dihedral-group tables.
var (
	verhoeffD = [10][10]int{
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		{1, 2, 3, 4, 0, 6, 7, 8, 9, 5},
		{2, 3, 4, 0, 1, 7, 8, 9, 5, 6},
		{3, 4, 0, 1, 2, 8, 9, 5, 6, 7},
		{4, 0, 1, 2, 3, 9, 5, 6, 7, 8},
		{5, 9, 8, 7, 6, 0, 4, 3, 2, 1},
		{6, 5, 9, 8, 7, 1, 0, 4, 3, 2},
		{7, 6, 5, 9, 8, 2, 1, 0, 4, 3},
		{8, 7, 6, 5, 9, 3, 2, 1, 0, 4},
		{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
	}
	verhoeffP = [8][10]int{
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		{1, 5, 7, 6, 2, 8, 3, 0, 9, 4},
		{5, 8, 0, 3, 7, 9, 6, 1, 4, 2},
		{8, 9, 1, 6, 0, 4, 3, 5, 2, 7},
		{9, 4, 5, 3, 1, 2, 6, 8, 7, 0},
		{4, 2, 8, 6, 5, 7, 3, 9, 0, 1},
		{2, 7, 9, 3, 8, 0, 6, 4, 1, 5},
		{7, 0, 4, 6, 9, 1, 3, 2, 5, 8},
	}
)

// VerhoeffValid reports whether the digit string carries a valid
// Verhoeff checksum (the Aadhaar check digit scheme).
func VerhoeffValid(number string) bool {
	c := 0
	for i := 0; i < len(number); i++ {
		ch := number[len(number)-1-i]
		if ch < '0' || ch > '9' {
			return false
		}
		c = verhoeffD[c][verhoeffP[i%8][ch-'0']]
	}
	return c == 0
}

// ValidAadhar checks the 12-digit format and the Verhoeff check digit.
func ValidAadhar(number string) bool {
	return aadharPattern.MatchString(number) && VerhoeffValid(number)
}

// ValidPAN checks the AAAAA9999A permanent-account-number format.
func ValidPAN(number string) bool {
	return panPattern.MatchString(number)
}

// UpdateProfile validates any submitted document numbers before anything
// is persisted.
func (s *Service) UpdateProfile(ctx context.Context, userID int, req model.UpdateProfileRequest) (model.User, error) {
	if req.AadharNumber != "" && !ValidAadhar(req.AadharNumber) {
		return model.User{}, errors.Wrap(errs.ErrInvalidDocument, "aadhar")
	}
	if req.PanNumber != "" && !ValidPAN(req.PanNumber) {
		return model.User{}, errors.Wrap(errs.ErrInvalidDocument, "pan")
	}
	return s.repo.UpdateProfile(ctx, userID, req)
}
