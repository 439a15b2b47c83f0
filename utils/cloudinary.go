package utils

import (
	"bytes"
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const identificationFolder = "identification-documents"

// CloudinaryStore uploads identification documents to Cloudinary. The client
// is constructed once and shared; uploads are keyed by a caller-provided id
// so the stored file can be referenced and removed later.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStore initializes the Cloudinary client from credentials.
func NewCloudinaryStore(cloudName, apiKey, apiSecret string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryStore{cld: cld}, nil
}

// Upload stores the document bytes under fileID and returns the id the store
// recorded for the file.
func (s *CloudinaryStore) Upload(ctx context.Context, fileID, fileName string, data []byte) (string, error) {
	resp, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		PublicID: fileID,
		Folder:   identificationFolder,
	})
	if err != nil {
		return "", err
	}
	return resp.PublicID, nil
}

// Destroy removes a previously uploaded document.
func (s *CloudinaryStore) Destroy(ctx context.Context, fileID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: fileID})
	return err
}
