package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/drivehub/rental-service/rental/internal/errs"
	"github.com/drivehub/rental-service/rental/internal/model"
	"go.uber.org/zap"
)

func (r *repository) ListReviews(ctx context.Context, carID int) ([]model.Review, error) {
	query, args, err := qb.Select("id", "user_id", "car_id", "rating", "comment", "created_at").
		From(reviewsTableName).
		Where(sq.Eq{"car_id": carID}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.Review, 0)
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) RatingSummary(ctx context.Context, carID int) (float64, int, error) {
	q := `
	select coalesce(avg(rating), 0), count(*) from reviews
	where car_id = $1
`
	var (
		avg   float64
		count int
	)
	if err := r.db.QueryRowContext(ctx, q, carID).Scan(&avg, &count); err != nil {
		return 0, 0, err
	}
	return avg, count, nil
}

// CreateReview relies on the (user_id, car_id) unique index: the racy
// check-then-insert is replaced by translating the conflict itself.
func (r *repository) CreateReview(ctx context.Context, userID, carID int, req model.CreateReviewRequest) (model.Review, error) {
	query, args, err := qb.Insert(reviewsTableName).
		Columns("user_id", "car_id", "rating", "comment").
		Values(userID, carID, req.Rating, req.Comment).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Review{}, err
	}

	var review model.Review
	if err := r.db.GetContext(ctx, &review, query, args...); err != nil {
		if isUniqueViolation(err) {
			return model.Review{}, errs.ErrAlreadyExists
		}
		r.log.Error("CreateReview", zap.String("q", query), zap.Any("args", args))
		return model.Review{}, err
	}
	return review, nil
}
