package store

import (
	"context"
	"time"

	"github.com/MKhiriev/quarantine-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ObjectStorage holds encrypted blobs under opaque string keys.
//
// Every failure is wrapped in [ErrObjectStorage]. Deleting a key that does
// not exist is not an error.
type ObjectStorage interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	// DeleteBatch removes keys in backend-sized chunks and reports how many
	// objects were actually removed.
	DeleteBatch(ctx context.Context, keys []string) (int, error)
	// SignedURL returns a time-limited direct link to the raw stored object.
	SignedURL(ctx context.Context, key string, ttl time.Duration) (models.SignedLink, error)
}

// SignedTokenResolver is implemented by object backends whose signed links
// are served by this application rather than by the backend itself.
type SignedTokenResolver interface {
	// ResolveSignedToken verifies a link token and returns the object key it
	// grants access to.
	ResolveSignedToken(token string) (string, error)
}

// KeyRepository is the key vault: it persists wrapped data encryption keys.
type KeyRepository interface {
	SaveKey(ctx context.Context, key models.EncryptionKeyRecord) error
	GetKey(ctx context.Context, id string) (models.EncryptionKeyRecord, error)
}

// QuarantineRepository persists quarantine record metadata.
type QuarantineRepository interface {
	SaveRecord(ctx context.Context, record models.QuarantineRecord) error
	// GetRecord returns ErrRecordNotFound for an unknown id.
	GetRecord(ctx context.Context, id string) (models.QuarantineRecord, error)
	// UpdateStatus sets the status and updatedAt. Reviewer fields are only
	// written when update.ReviewedBy is set, reviewed_at taking reviewedAt.
	UpdateStatus(ctx context.Context, update models.StatusUpdate, reviewedAt *time.Time, updatedAt time.Time) error
	// FindExpired lists active records whose expires_at is not after now.
	FindExpired(ctx context.Context, now time.Time) ([]models.ExpiredRecord, error)
	MarkExpired(ctx context.Context, ids []string, now time.Time) (int64, error)
	ListRecords(ctx context.Context, filter models.RecordFilter) ([]models.QuarantineRecord, error)
	CountByStatus(ctx context.Context) (map[models.QuarantineStatus]int64, error)
}
