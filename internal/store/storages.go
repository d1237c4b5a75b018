package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/quarantine-vault/internal/config"
	"github.com/MKhiriev/quarantine-vault/internal/crypto"
	"github.com/MKhiriev/quarantine-vault/internal/logger"
	"github.com/MKhiriev/quarantine-vault/internal/utils"
)

// linkKeyPurpose is the HKDF info string of the derived link sign key.
const linkKeyPurpose = "quarantine-vault/content-links"

// Storages groups every persistence collaborator of the lifecycle service.
type Storages struct {
	Keys    KeyRepository
	Records QuarantineRepository
	Objects ObjectStorage

	// LinkResolver is set when signed links are served by this application
	// (fs backend) and nil otherwise.
	LinkResolver SignedTokenResolver

	db *DB
}

// NewStorages connects the metadata database and builds the configured
// object backend. Migrations are not applied; call [Storages.Migrate].
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, err
	}

	objects, err := NewObjectStorage(cfg, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &Storages{
		Keys:    NewKeyRepository(db, log),
		Records: NewQuarantineRepository(db, log),
		Objects: objects,
		db:      db,
	}
	if resolver, ok := objects.(SignedTokenResolver); ok {
		s.LinkResolver = resolver
	}

	return s, nil
}

// NewObjectStorage builds the object backend selected by
// cfg.Storage.Objects.Backend.
func NewObjectStorage(cfg *config.StructuredConfig, log *logger.Logger) (ObjectStorage, error) {
	objects := cfg.Storage.Objects

	switch objects.Backend {
	case config.ObjectBackendFS:
		linkKey, err := LinkSignKey(cfg.App)
		if err != nil {
			return nil, err
		}
		return NewObjectFileStorage(FileStorageOptions{
			Root:             objects.Dir,
			BatchDeleteLimit: objects.BatchDeleteLimit,
			PublicURL:        cfg.Server.PublicURL,
			Issuer:           cfg.App.TokenIssuer,
			LinkKey:          linkKey,
		}, log)
	case config.ObjectBackendHTTP:
		client := utils.NewHTTPClient(objects.BaseURL, objects.RequestTimeout)
		return NewObjectHTTPStorage(client, objects.BatchDeleteLimit, log), nil
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", ErrObjectStorage, objects.Backend)
	}
}

// LinkSignKey returns the configured link sign key or, when none is set, a
// key derived from the master key.
func LinkSignKey(app config.App) ([]byte, error) {
	if app.LinkSignKey != "" {
		return []byte(app.LinkSignKey), nil
	}

	master, err := crypto.DecodeMasterKey(app.MasterKey)
	if err != nil {
		return nil, err
	}
	defer clear(master)

	return crypto.DeriveSubKey(master, linkKeyPurpose)
}

// Migrate applies the schema migrations to the metadata database.
func (s *Storages) Migrate() error {
	return s.db.Migrate()
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
