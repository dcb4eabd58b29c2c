package services

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ImageStore uploads and deletes property images in hosted object
// storage. Images live under properties/<propertyID>/ so a listing's
// assets share a path prefix.
type ImageStore struct {
	cld *cloudinary.Cloudinary
}

// NewImageStore connects using a CLOUDINARY_URL-style connection string.
func NewImageStore(storageURL string) (*ImageStore, error) {
	cld, err := cloudinary.NewFromURL(storageURL)
	if err != nil {
		return nil, fmt.Errorf("connecting to image storage: %w", err)
	}
	return &ImageStore{cld: cld}, nil
}

// Upload stores one image and returns its public URL and storage key.
func (s *ImageStore) Upload(ctx context.Context, propertyID string, file io.Reader) (string, string, error) {
	resp, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: "properties/" + propertyID,
	})
	if err != nil {
		return "", "", fmt.Errorf("uploading image: %w", err)
	}
	return resp.SecureURL, resp.PublicID, nil
}

// Delete removes one image by its storage key.
func (s *ImageStore) Delete(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("deleting image: %w", err)
	}
	return nil
}
