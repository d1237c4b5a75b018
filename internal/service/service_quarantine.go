// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/quarantine-vault/internal/crypto"
	"github.com/MKhiriev/quarantine-vault/internal/logger"
	"github.com/MKhiriev/quarantine-vault/internal/store"
	"github.com/MKhiriev/quarantine-vault/internal/utils"
	"github.com/MKhiriev/quarantine-vault/models"
)

// storageKeyPrefix is the first segment of every object key.
const storageKeyPrefix = "quarantine"

// IDGenerator produces unique record and key ids.
type IDGenerator interface {
	Generate() string
}

// quarantineService is the lifecycle core. It keeps no mutable state of its
// own: all consistency comes from the order in which it calls its stores.
type quarantineService struct {
	engine  crypto.EnvelopeEngine
	keys    store.KeyRepository
	records store.QuarantineRepository
	objects store.ObjectStorage

	ttl   time.Duration
	now   func() time.Time
	idGen IDGenerator

	logger *logger.Logger
}

// QuarantineServiceOption customizes NewQuarantineService.
type QuarantineServiceOption func(*quarantineService)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) QuarantineServiceOption {
	return func(s *quarantineService) {
		s.now = now
	}
}

// WithIDGenerator replaces the UUIDv7 generator.
func WithIDGenerator(g IDGenerator) QuarantineServiceOption {
	return func(s *quarantineService) {
		s.idGen = g
	}
}

// NewQuarantineService builds the lifecycle service. ttl is the quarantine
// window added to the creation time of every record.
func NewQuarantineService(
	engine crypto.EnvelopeEngine,
	storages *store.Storages,
	ttl time.Duration,
	logger *logger.Logger,
	opts ...QuarantineServiceOption,
) QuarantineService {
	s := &quarantineService{
		engine:  engine,
		keys:    storages.Keys,
		records: storages.Records,
		objects: storages.Objects,
		ttl:     ttl,
		now:     time.Now,
		idGen:   utils.NewUUIDGenerator(),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StorageKey returns the object key of record id created at t:
// quarantine/YYYY/MM/DD/<id>, date in UTC.
func StorageKey(t time.Time, id string) string {
	t = t.UTC()
	return fmt.Sprintf("%s/%04d/%02d/%02d/%s", storageKeyPrefix, t.Year(), int(t.Month()), t.Day(), id)
}

// Store runs hash, encrypt, key save, upload and record save in that
// order. A failure after the key record is saved leaves it in place.
func (s *quarantineService) Store(ctx context.Context, plaintext []byte, req models.QuarantineRequest) (string, error) {
	log := logger.FromContext(ctx)

	contentHash := utils.ContentHash(plaintext)

	payload, err := s.engine.Encrypt(plaintext)
	if err != nil {
		log.Err(err).Str("func", "quarantineService.Store").Msg("content encryption failed")
		return "", fmt.Errorf("encrypting content: %w", err)
	}

	now := s.now().UTC()

	keyRecord := models.EncryptionKeyRecord{
		ID:             s.idGen.Generate(),
		WrappedDataKey: base64.StdEncoding.EncodeToString(payload.WrappedDataKey),
		WrapIV:         base64.StdEncoding.EncodeToString(payload.WrapIV),
		WrapAuthTag:    base64.StdEncoding.EncodeToString(payload.WrapAuthTag),
		Algorithm:      models.AlgorithmAES256GCM,
		CreatedAt:      now,
	}
	if err = s.keys.SaveKey(ctx, keyRecord); err != nil {
		log.Err(err).Str("func", "quarantineService.Store").Msg("saving key record failed")
		return "", fmt.Errorf("saving key record: %w", err)
	}

	id := s.idGen.Generate()
	storageKey := StorageKey(now, id)

	if err = s.objects.Put(ctx, storageKey, payload.Blob()); err != nil {
		log.Err(err).
			Str("func", "quarantineService.Store").
			Str("key_id", keyRecord.ID).
			Msg("uploading ciphertext failed, key record left orphaned")
		return "", fmt.Errorf("uploading ciphertext: %w", err)
	}

	labels := req.Labels
	if labels == nil {
		labels = []string{}
	}

	record := models.QuarantineRecord{
		ID:              id,
		StorageKey:      storageKey,
		Status:          models.StatusQuarantined,
		Tier:            req.Tier,
		Labels:          labels,
		ContentType:     req.ContentType,
		SourceID:        req.SourceID,
		EncryptionKeyID: keyRecord.ID,
		ContentHash:     contentHash,
		SizeBytes:       int64(len(plaintext)),
		ExpiresAt:       now.Add(s.ttl),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err = s.records.SaveRecord(ctx, record); err != nil {
		log.Err(err).
			Str("func", "quarantineService.Store").
			Str("record_id", id).
			Str("storage_key", storageKey).
			Msg("saving quarantine record failed")
		return "", fmt.Errorf("saving quarantine record: %w", err)
	}

	log.Info().
		Str("record_id", id).
		Str("tier", req.Tier).
		Int64("size_bytes", record.SizeBytes).
		Msg("content quarantined")

	return id, nil
}

func (s *quarantineService) GetMetadata(ctx context.Context, id string) (models.QuarantineRecord, bool, error) {
	record, err := s.records.GetRecord(ctx, id)
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.QuarantineRecord{}, false, nil
	}
	if err != nil {
		return models.QuarantineRecord{}, false, fmt.Errorf("loading record: %w", err)
	}

	return record, true, nil
}

// UpdateStatus sets any status on an existing record. For DELETED the blob
// is removed first and a failed removal leaves the record untouched.
func (s *quarantineService) UpdateStatus(ctx context.Context, update models.StatusUpdate) error {
	log := logger.FromContext(ctx)

	record, err := s.getRecord(ctx, update.ID)
	if err != nil {
		return err
	}

	if update.Status == models.StatusDeleted {
		if err = s.objects.Delete(ctx, record.StorageKey); err != nil {
			log.Err(err).
				Str("func", "quarantineService.UpdateStatus").
				Str("record_id", record.ID).
				Msg("deleting ciphertext failed, status left unchanged")
			return fmt.Errorf("deleting ciphertext: %w", err)
		}
	}

	now := s.now().UTC()
	var reviewedAt *time.Time
	if update.ReviewedBy != nil {
		reviewedAt = &now
	}

	err = s.records.UpdateStatus(ctx, update, reviewedAt, now)
	if errors.Is(err, store.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", ErrRecordNotFound, update.ID)
	}
	if err != nil {
		return fmt.Errorf("updating status: %w", err)
	}

	actor, _ := utils.GetActorFromContext(ctx)
	log.Info().
		Str("record_id", update.ID).
		Str("from", record.Status.String()).
		Str("to", update.Status.String()).
		Str("actor", actor).
		Msg("status updated")

	return nil
}

func (s *quarantineService) SignedContentURL(ctx context.Context, id string, ttl time.Duration) (models.SignedLink, error) {
	record, err := s.getRecord(ctx, id)
	if err != nil {
		return models.SignedLink{}, err
	}

	link, err := s.objects.SignedURL(ctx, record.StorageKey, ttl)
	if err != nil {
		return models.SignedLink{}, fmt.Errorf("signing content url: %w", err)
	}

	return link, nil
}

// SweepExpired deletes the blobs of all overdue active records in one batch,
// then marks them EXPIRED. A failed batch delete aborts before any status
// changes. A crash between the two steps leaves blobs gone and statuses
// active; re-running is safe since deleting a missing key is a no-op.
func (s *quarantineService) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	log := logger.FromContext(ctx)

	expired, err := s.records.FindExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("finding expired records: %w", err)
	}
	if len(expired) == 0 {
		return 0, nil
	}

	ids := make([]string, len(expired))
	keys := make([]string, len(expired))
	for i, r := range expired {
		ids[i] = r.ID
		keys[i] = r.StorageKey
	}

	deleted, err := s.objects.DeleteBatch(ctx, keys)
	if err != nil {
		log.Err(err).Str("func", "quarantineService.SweepExpired").Int("found", len(expired)).Msg("batch delete failed, sweep aborted")
		return 0, fmt.Errorf("deleting expired ciphertext: %w", err)
	}

	marked, err := s.records.MarkExpired(ctx, ids, now.UTC())
	if err != nil {
		log.Err(err).Str("func", "quarantineService.SweepExpired").Int("found", len(expired)).Msg("marking records expired failed")
		return 0, fmt.Errorf("marking records expired: %w", err)
	}

	log.Info().
		Int("found", len(expired)).
		Int("blobs_deleted", deleted).
		Int64("marked", marked).
		Msg("expired records swept")

	return len(expired), nil
}

func (s *quarantineService) ListRecords(ctx context.Context, filter models.RecordFilter) ([]models.QuarantineRecord, error) {
	records, err := s.records.ListRecords(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	return records, nil
}

// RetrieveContent fetches and decrypts a record's content. Each access is
// logged at warn level with the requesting actor.
func (s *quarantineService) RetrieveContent(ctx context.Context, id string) ([]byte, models.QuarantineRecord, error) {
	log := logger.FromContext(ctx)

	record, err := s.getRecord(ctx, id)
	if err != nil {
		return nil, models.QuarantineRecord{}, err
	}
	if record.Status == models.StatusDeleted || record.Status == models.StatusExpired {
		return nil, models.QuarantineRecord{}, fmt.Errorf("%w: record is %s", ErrContentUnavailable, record.Status)
	}

	blob, err := s.objects.Get(ctx, record.StorageKey)
	if err != nil {
		return nil, models.QuarantineRecord{}, fmt.Errorf("fetching ciphertext: %w", err)
	}

	keyRecord, err := s.keys.GetKey(ctx, record.EncryptionKeyID)
	if err != nil {
		return nil, models.QuarantineRecord{}, fmt.Errorf("loading key record: %w", err)
	}

	payload, err := assemblePayload(blob, keyRecord)
	if err != nil {
		log.Err(err).Str("func", "quarantineService.RetrieveContent").Str("record_id", id).Msg("stored payload is malformed")
		return nil, models.QuarantineRecord{}, fmt.Errorf("%w: %w", crypto.ErrDecryptionFailed, err)
	}

	plaintext, err := s.engine.Decrypt(payload)
	if err != nil {
		log.Err(err).Str("func", "quarantineService.RetrieveContent").Str("record_id", id).Msg("content decryption failed")
		return nil, models.QuarantineRecord{}, err
	}

	actor, _ := utils.GetActorFromContext(ctx)
	log.Warn().
		Str("event", "content_accessed").
		Str("record_id", id).
		Str("actor", actor).
		Msg("quarantined content decrypted")

	return plaintext, record, nil
}

// getRecord maps the store's not-found error to ErrRecordNotFound.
func (s *quarantineService) getRecord(ctx context.Context, id string) (models.QuarantineRecord, error) {
	record, err := s.records.GetRecord(ctx, id)
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.QuarantineRecord{}, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}
	if err != nil {
		return models.QuarantineRecord{}, fmt.Errorf("loading record: %w", err)
	}
	return record, nil
}

func assemblePayload(blob []byte, key models.EncryptionKeyRecord) (models.EncryptedPayload, error) {
	iv, ciphertext, tag, err := models.ParseBlob(blob)
	if err != nil {
		return models.EncryptedPayload{}, err
	}

	wrapped, err := base64.StdEncoding.DecodeString(key.WrappedDataKey)
	if err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("wrapped data key: %w", err)
	}
	wrapIV, err := base64.StdEncoding.DecodeString(key.WrapIV)
	if err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("wrap iv: %w", err)
	}
	wrapTag, err := base64.StdEncoding.DecodeString(key.WrapAuthTag)
	if err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("wrap auth tag: %w", err)
	}

	return models.EncryptedPayload{
		Ciphertext:     ciphertext,
		IV:             iv,
		AuthTag:        tag,
		WrappedDataKey: wrapped,
		WrapIV:         wrapIV,
		WrapAuthTag:    wrapTag,
	}, nil
}
