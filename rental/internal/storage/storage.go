package storage

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/drivehub/rental-service/rental/config"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Store persists uploaded files and hands back a serveable URL. The
// local implementation stands in for the cloud bucket the storefront
// would use in production.
type Store interface {
	Save(ctx context.Context, kind, filename string, r io.Reader) (string, error)
}

type localStore struct {
	log *zap.Logger
	cfg config.Storage
}

func NewLocalStore(cfg config.Storage, log *zap.Logger) (*localStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "storage dir")
	}
	return &localStore{
		log: log.Named("storage"),
		cfg: cfg,
	}, nil
}

func (s *localStore) Save(_ context.Context, kind, filename string, r io.Reader) (string, error) {
	name := kind + "-" + uuid.NewString() + filepath.Ext(filename)

	dst, err := os.Create(filepath.Join(s.cfg.Dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", err
	}

	url := path.Join(s.cfg.BaseURL, name)
	s.log.Debug("file stored", zap.String("url", url))
	return url, nil
}
