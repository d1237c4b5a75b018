package store

import (
	"context"

	"github.com/MKhiriev/quarantine-vault/internal/logger"
	"github.com/MKhiriev/quarantine-vault/models"
)

// keyRepository is the SQL-backed key vault. It stores one wrapped data key
// per quarantine record in the "encryption_keys" table.
type keyRepository struct {
	*DB
	logger *logger.Logger
}

// NewKeyRepository constructs a [KeyRepository] over db.
func NewKeyRepository(db *DB, logger *logger.Logger) KeyRepository {
	logger.Debug().Msg("creating key repository")
	return &keyRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveKey inserts a wrapped key record. A duplicate id yields
// [ErrRecordAlreadyExists].
func (k *keyRepository) SaveKey(ctx context.Context, key models.EncryptionKeyRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveKeyQuery(k.builder(), key)
	if err != nil {
		log.Err(err).Str("func", "keyRepository.SaveKey").Msg("failed to create query")
		return err
	}

	result, err := k.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "keyRepository.SaveKey").Str("key_id", key.ID).Msg("error executing query for saving key record")
		if k.isUniqueViolation(err) {
			return ErrRecordAlreadyExists
		}
		return k.wrapErr(ErrExecutingStatement, err)
	}

	if rowsAffected, _ := result.RowsAffected(); rowsAffected == 0 {
		log.Error().Str("func", "keyRepository.SaveKey").Str("key_id", key.ID).Msg("key record was not saved")
		return ErrRecordNotSaved
	}

	return nil
}

// GetKey loads a key record by id; a missing id yields [ErrKeyRecordNotFound].
func (k *keyRepository) GetKey(ctx context.Context, id string) (models.EncryptionKeyRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetKeyQuery(k.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "keyRepository.GetKey").Msg("failed to create query")
		return models.EncryptionKeyRecord{}, err
	}

	var key models.EncryptionKeyRecord
	err = k.DB.QueryRowContext(ctx, query, args...).Scan(
		&key.ID,
		&key.WrappedDataKey,
		&key.WrapIV,
		&key.WrapAuthTag,
		&key.Algorithm,
		&key.CreatedAt,
	)
	if k.isNoMatch(err) {
		return models.EncryptionKeyRecord{}, ErrKeyRecordNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "keyRepository.GetKey").Str("key_id", id).Msg("failed to scan key record")
		return models.EncryptionKeyRecord{}, k.wrapErr(ErrScanningRow, err)
	}

	return key, nil
}
