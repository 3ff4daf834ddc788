//go:generate mockgen -source=proofstore.go -destination=mock_proofstore.go -package=proofstore
package proofstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	"github.com/GlebRadaev/investledger/internal/config"
	"github.com/GlebRadaev/investledger/pkg/clients"
)

const (
	BackendHTTP       = "http"
	BackendCloudinary = "cloudinary"
)

var (
	ErrUnsupportedBackend = errors.New("unsupported proof storage backend")
	ErrMissingCredentials = errors.New("proof storage credentials are not configured")
	ErrUpload             = errors.New("proof upload failed")
)

// Store keeps payment-proof files outside the ledger; only the returned reference is persisted.
type Store interface {
	Put(ctx context.Context, userID uuid.UUID, filename, contentType string, body io.Reader) (string, error)
}

type Poster interface {
	Post(ctx context.Context, url string, headers http.Header, body io.Reader) (statusCode int, respBody []byte, err error)
}

type Uploader interface {
	Upload(ctx context.Context, file interface{}, uploadParams uploader.UploadParams) (*uploader.UploadResult, error)
}

func New(cfg *config.Config) (Store, error) {
	switch cfg.ProofStorage {
	case BackendHTTP:
		return NewHTTPStore(cfg.ProofStorageURL, cfg.ProofStorageKey, cfg.ProofBucket, clients.NewHTTPClient()), nil
	case BackendCloudinary:
		return NewCloudinaryStore(cfg.CloudinaryCloud, cfg.CloudinaryKey, cfg.CloudinarySecret, cfg.ProofBucket)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBackend, cfg.ProofStorage)
	}
}

// objectName places every upload under the owner's prefix with a random base name.
func objectName(userID uuid.UUID, filename string) string {
	return userID.String() + "/" + uuid.NewString() + strings.ToLower(path.Ext(filename))
}
