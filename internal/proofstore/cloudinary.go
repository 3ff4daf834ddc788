package proofstore

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	cldconfig "github.com/cloudinary/cloudinary-go/v2/config"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CloudinaryStore struct {
	uploader Uploader
	folder   string
	newName  func(userID uuid.UUID, filename string) string
}

func NewCloudinaryStore(cloudName, apiKey, apiSecret, folder string) (*CloudinaryStore, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, ErrMissingCredentials
	}
	cfg, err := cldconfig.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	up, err := uploader.NewWithConfiguration(cfg)
	if err != nil {
		return nil, err
	}
	return newCloudinaryStore(up, folder), nil
}

func newCloudinaryStore(up Uploader, folder string) *CloudinaryStore {
	return &CloudinaryStore{
		uploader: up,
		folder:   folder,
		newName:  objectName,
	}
}

// Put returns the secure delivery URL of the uploaded asset.
func (s *CloudinaryStore) Put(ctx context.Context, userID uuid.UUID, filename, _ string, body io.Reader) (string, error) {
	name := s.newName(userID, filename)
	publicID := strings.TrimSuffix(name, path.Ext(name))

	result, err := s.uploader.Upload(ctx, body, uploader.UploadParams{
		Folder:       s.folder,
		PublicID:     publicID,
		ResourceType: "auto",
	})
	if err != nil {
		zap.L().Error("cloudinary upload failed", zap.String("public_id", publicID), zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrUpload, err)
	}
	if result == nil || result.Error.Message != "" || result.SecureURL == "" {
		msg := "empty upload result"
		if result != nil && result.Error.Message != "" {
			msg = result.Error.Message
		}
		zap.L().Error("cloudinary rejected upload", zap.String("public_id", publicID), zap.String("reason", msg))
		return "", fmt.Errorf("%w: %s", ErrUpload, msg)
	}

	return result.SecureURL, nil
}
