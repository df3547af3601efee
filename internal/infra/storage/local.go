package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/grezzle/goblin-closet/internal/domain"
)

// LocalStore writes uploads to a directory served as /uploads. Meant for
// development setups without Cloudinary credentials.
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "upload directory create failed")
	}
	return &LocalStore{dir: dir, baseURL: baseURL}, nil
}

func (s *LocalStore) Upload(ctx context.Context, name, contentType string, r io.Reader) (domain.UploadedImage, error) {
	filename := filepath.Base(name)
	f, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return domain.UploadedImage{}, errors.Wrap(err, "upload file create failed")
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return domain.UploadedImage{}, errors.Wrap(err, "upload write failed")
	}

	return domain.UploadedImage{
		URL:      s.baseURL + "/uploads/" + filename,
		Filename: filename,
	}, nil
}
