package storage

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/pkg/errors"

	"github.com/grezzle/goblin-closet/internal/domain"
)

// CloudinaryStore pushes uploads to the Cloudinary CDN. Records reference the
// returned secure URL, so the image must land here before the record exists.
type CloudinaryStore struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryStore(cloudName, apiKey, apiSecret, folder string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, errors.Wrap(err, "cloudinary init failed")
	}
	return &CloudinaryStore{cld: cld, folder: folder}, nil
}

func (s *CloudinaryStore) Upload(ctx context.Context, name, contentType string, r io.Reader) (domain.UploadedImage, error) {
	resp, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:   s.folder,
		PublicID: name,
	})
	if err != nil {
		return domain.UploadedImage{}, errors.Wrap(err, "cloudinary upload failed")
	}
	return domain.UploadedImage{
		URL:      resp.SecureURL,
		Filename: resp.PublicID,
	}, nil
}
