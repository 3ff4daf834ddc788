package proofstore

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HTTPStore uploads into a bucket of an object-storage REST API (POST /object/{bucket}/{name}).
type HTTPStore struct {
	baseURL string
	key     string
	bucket  string
	client  Poster
	newName func(userID uuid.UUID, filename string) string
}

func NewHTTPStore(baseURL, key, bucket string, client Poster) *HTTPStore {
	return &HTTPStore{
		baseURL: baseURL,
		key:     key,
		bucket:  bucket,
		client:  client,
		newName: objectName,
	}
}

func (s *HTTPStore) Put(ctx context.Context, userID uuid.UUID, filename, contentType string, body io.Reader) (string, error) {
	name := s.newName(userID, filename)

	headers := http.Header{}
	headers.Set("Content-Type", contentType)
	if s.key != "" {
		headers.Set("Authorization", "Bearer "+s.key)
		headers.Set("apikey", s.key)
	}

	url := fmt.Sprintf("%s/object/%s/%s", s.baseURL, s.bucket, name)
	statusCode, respBody, err := s.client.Post(ctx, url, headers, body)
	if err != nil {
		zap.L().Error("proof upload request failed", zap.String("object", name), zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrUpload, err)
	}
	if statusCode != http.StatusOK && statusCode != http.StatusCreated {
		zap.L().Error("proof upload rejected",
			zap.String("object", name),
			zap.Int("status", statusCode),
			zap.ByteString("body", respBody))
		return "", fmt.Errorf("%w: status %d", ErrUpload, statusCode)
	}

	return name, nil
}
