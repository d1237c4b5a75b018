package service

import (
	"context"
	"time"

	"github.com/MKhiriev/quarantine-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// QuarantineService is the quarantine lifecycle: it encrypts and stores
// content, tracks its review status and reclaims it on expiry.
type QuarantineService interface {
	// Store encrypts plaintext, uploads it and records it as QUARANTINED.
	// It returns the new record id.
	Store(ctx context.Context, plaintext []byte, req models.QuarantineRequest) (string, error)
	// GetMetadata returns the record and whether it exists. An unknown id is
	// not an error.
	GetMetadata(ctx context.Context, id string) (models.QuarantineRecord, bool, error)
	UpdateStatus(ctx context.Context, update models.StatusUpdate) error
	// SignedContentURL returns a time-limited link to the stored object.
	// The object behind the link is ciphertext.
	SignedContentURL(ctx context.Context, id string, ttl time.Duration) (models.SignedLink, error)
	// SweepExpired reclaims every active record with expires_at <= now and
	// returns how many were found.
	SweepExpired(ctx context.Context, now time.Time) (int, error)

	ListRecords(ctx context.Context, filter models.RecordFilter) ([]models.QuarantineRecord, error)
	// RetrieveContent decrypts a record's content for an authorized
	// reviewer. Every call is audited.
	RetrieveContent(ctx context.Context, id string) ([]byte, models.QuarantineRecord, error)
}

// ContentLinkService serves the objects behind links signed by this
// application.
type ContentLinkService interface {
	// Enabled reports whether links are served locally at all.
	Enabled() bool
	// Resolve verifies token and returns the raw stored object (ciphertext).
	Resolve(ctx context.Context, token string) ([]byte, error)
}

// AuthService issues and verifies moderator bearer tokens.
type AuthService interface {
	// Enabled reports whether a token sign key is configured.
	Enabled() bool
	CreateToken(ctx context.Context, actor string, duration time.Duration) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService exposes build and version information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
