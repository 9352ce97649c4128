package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/drivehub/rental-service/rental/internal/errs"
	"github.com/drivehub/rental-service/rental/internal/model"
)

func (r *repository) CreateContactMessage(ctx context.Context, req model.ContactRequest) (model.ContactMessage, error) {
	query, args, err := qb.Insert(contactTableName).
		Columns("name", "email", "phone", "message").
		Values(req.Name, req.Email, req.Phone, req.Message).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.ContactMessage{}, err
	}
	var msg model.ContactMessage
	if err := r.db.GetContext(ctx, &msg, query, args...); err != nil {
		return model.ContactMessage{}, err
	}
	return msg, nil
}

func (r *repository) ListContactMessages(ctx context.Context) ([]model.ContactMessage, error) {
	query, args, err := qb.Select("id", "name", "email", "phone", "message", "created_at").
		From(contactTableName).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.ContactMessage, 0)
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) ListGalleryImages(ctx context.Context) ([]model.GalleryImage, error) {
	query, args, err := qb.Select("id", "title", "url", "created_at").
		From(galleryTableName).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.GalleryImage, 0)
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) CreateGalleryImage(ctx context.Context, req model.GalleryImageRequest) (model.GalleryImage, error) {
	query, args, err := qb.Insert(galleryTableName).
		Columns("title", "url").
		Values(req.Title, req.URL).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.GalleryImage{}, err
	}
	var img model.GalleryImage
	if err := r.db.GetContext(ctx, &img, query, args...); err != nil {
		return model.GalleryImage{}, err
	}
	return img, nil
}

func (r *repository) DeleteGalleryImage(ctx context.Context, id int) error {
	query, args, err := qb.Delete(galleryTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 { //nolint:errcheck
		return errs.ErrNotFound
	}
	return nil
}
