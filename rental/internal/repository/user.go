package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/drivehub/rental-service/rental/internal/errs"
	"github.com/drivehub/rental-service/rental/internal/model"
	"github.com/pkg/errors"
)

var userColumns = []string{
	"id", "phone", "full_name", "aadhar_number", "pan_number", "aadhar_url", "pan_url",
	"documents_verified", "created_at", "updated_at",
}

// GetOrCreateUserByPhone implements implicit signup on first login.
func (r *repository) GetOrCreateUserByPhone(ctx context.Context, phone string) (model.User, error) {
	q := `
insert into users (phone) values ($1)
on conflict (phone) do update set updated_at = now()
returning *`
	var u model.User
	if err := r.db.GetContext(ctx, &u, q, phone); err != nil {
		return model.User{}, err
	}
	return u, nil
}

func (r *repository) GetUser(ctx context.Context, id int) (model.User, error) {
	query, args, err := qb.Select(userColumns...).
		From(usersTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var u model.User
	if err := r.db.GetContext(ctx, &u, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return u, nil
}

func (r *repository) UpdateProfile(ctx context.Context, id int, req model.UpdateProfileRequest) (model.User, error) {
	q := qb.Update(usersTableName).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("returning *")
	if req.FullName != "" {
		q = q.Set("full_name", req.FullName)
	}
	if req.AadharNumber != "" {
		q = q.Set("aadhar_number", req.AadharNumber)
	}
	if req.PanNumber != "" {
		q = q.Set("pan_number", req.PanNumber)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.User{}, err
	}
	var u model.User
	if err := r.db.GetContext(ctx, &u, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return u, nil
}

func (r *repository) SetDocumentURL(ctx context.Context, id int, docType, url string) (model.User, error) {
	column := "aadhar_url"
	if docType == "pan" {
		column = "pan_url"
	}
	query, args, err := qb.Update(usersTableName).
		Set(column, url).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var u model.User
	if err := r.db.GetContext(ctx, &u, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return u, nil
}

func (r *repository) ListUsers(ctx context.Context) ([]model.User, error) {
	query, args, err := qb.Select(userColumns...).
		From(usersTableName).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	users := make([]model.User, 0)
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *repository) SetDocumentsVerified(ctx context.Context, id int, verified bool) (model.User, error) {
	query, args, err := qb.Update(usersTableName).
		Set("documents_verified", verified).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var u model.User
	if err := r.db.GetContext(ctx, &u, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return u, nil
}

func (r *repository) CreateOTP(ctx context.Context, phone, codeHash string, expiresAt time.Time) error {
	query, args, err := qb.Insert(otpTableName).
		Columns("phone", "code_hash", "expires_at").
		Values(phone, codeHash, expiresAt).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *repository) GetActiveOTP(ctx context.Context, phone string) (model.OTPCode, error) {
	query, args, err := qb.Select("id", "phone", "code_hash", "expires_at", "consumed", "created_at").
		From(otpTableName).
		Where(sq.Eq{"phone": phone, "consumed": false}).
		OrderBy("created_at desc").
		Limit(1).
		ToSql()
	if err != nil {
		return model.OTPCode{}, err
	}
	var otp model.OTPCode
	if err := r.db.GetContext(ctx, &otp, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.OTPCode{}, errs.ErrNotFound
		}
		return model.OTPCode{}, err
	}
	return otp, nil
}

func (r *repository) ConsumeOTP(ctx context.Context, id int) error {
	query, args, err := qb.Update(otpTableName).
		Set("consumed", true).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}
