package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/drivehub/rental-service/notifier/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const notificationTableName = `notifications`

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository interface {
	CreateNotification(ctx context.Context, n model.Notification) (int, error)
	MarkSent(ctx context.Context, id int) error
	ListNotifications(ctx context.Context) (model.NotificationInfo, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

// CreateNotification inserts a notification row. A booking event already
// recorded for the same (kind, booking_uid) is skipped and id 0 is returned.
func (r *repository) CreateNotification(ctx context.Context, n model.Notification) (int, error) {
	query, args, err := qb.Insert(notificationTableName).
		Columns("kind", "phone", "message", "booking_uid").
		Values(n.Kind, n.Phone, n.Message, n.BookingUid).
		Suffix("on conflict (kind, booking_uid) where booking_uid <> '' do nothing returning id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		r.log.Error("CreateNotification", zap.String("q", query), zap.Any("args", args))
		return 0, err
	}
	return id, nil
}

func (r *repository) MarkSent(ctx context.Context, id int) error {
	query, args, err := qb.Update(notificationTableName).
		Set("sent", true).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *repository) ListNotifications(ctx context.Context) (model.NotificationInfo, error) {
	query, args, err := qb.Select("id", "kind", "phone", "message", "booking_uid", "sent", "created_at").
		From(notificationTableName).
		OrderBy("created_at desc").
		Limit(100).
		ToSql()
	if err != nil {
		return model.NotificationInfo{}, err
	}

	list := make([]model.Notification, 0)
	if err := r.db.SelectContext(ctx, &list, query, args...); err != nil {
		return model.NotificationInfo{}, err
	}
	return model.NotificationInfo{Data: list}, nil
}
