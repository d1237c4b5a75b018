// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/quarantine-vault/models"
)

const (
	encryptionKeysTable    = "encryption_keys"
	quarantineRecordsTable = "quarantine_records"

	// defaultListLimit caps listings that do not specify a limit.
	defaultListLimit = 100
	// maxListLimit caps listings that ask for too much.
	maxListLimit = 1000
)

var encryptionKeyColumns = []string{
	"id",
	"wrapped_data_key",
	"wrap_iv",
	"wrap_auth_tag",
	"algorithm",
	"created_at",
}

var quarantineRecordColumns = []string{
	"id",
	"storage_key",
	"status",
	"tier",
	"labels",
	"content_type",
	"source_id",
	"encryption_key_id",
	"content_hash",
	"size_bytes",
	"expires_at",
	"reviewed_by",
	"reviewed_at",
	"review_notes",
	"created_at",
	"updated_at",
}

func buildSaveKeyQuery(b sq.StatementBuilderType, key models.EncryptionKeyRecord) (string, []any, error) {
	query, args, err := b.Insert(encryptionKeysTable).
		Columns(encryptionKeyColumns...).
		Values(key.ID, key.WrappedDataKey, key.WrapIV, key.WrapAuthTag, key.Algorithm, key.CreatedAt.UTC()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetKeyQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	query, args, err := b.Select(encryptionKeyColumns...).
		From(encryptionKeysTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSaveRecordQuery(b sq.StatementBuilderType, r models.QuarantineRecord) (string, []any, error) {
	labels := r.Labels
	if labels == nil {
		labels = []string{}
	}
	labelsJSON, err := json.Marshal(labels)
	if err != nil {
		return "", nil, fmt.Errorf("%w: encoding labels: %w", ErrBuildingSQLQuery, err)
	}

	query, args, err := b.Insert(quarantineRecordsTable).
		Columns(quarantineRecordColumns...).
		Values(
			r.ID,
			r.StorageKey,
			string(r.Status),
			r.Tier,
			string(labelsJSON),
			r.ContentType,
			r.SourceID,
			r.EncryptionKeyID,
			r.ContentHash,
			r.SizeBytes,
			r.ExpiresAt.UTC(),
			r.ReviewedBy,
			utcPtr(r.ReviewedAt),
			r.ReviewNotes,
			r.CreatedAt.UTC(),
			r.UpdatedAt.UTC(),
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetRecordQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	query, args, err := b.Select(quarantineRecordColumns...).
		From(quarantineRecordsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateStatusQuery sets the status and updated_at. Reviewer columns
// are only touched when the update names a reviewer.
func buildUpdateStatusQuery(b sq.StatementBuilderType, update models.StatusUpdate, reviewedAt *time.Time, updatedAt time.Time) (string, []any, error) {
	builder := b.Update(quarantineRecordsTable).
		Set("status", string(update.Status)).
		Set("updated_at", updatedAt.UTC())

	if update.ReviewedBy != nil {
		builder = builder.
			Set("reviewed_by", *update.ReviewedBy).
			Set("reviewed_at", utcPtr(reviewedAt))
		if update.Notes != nil {
			builder = builder.Set("review_notes", *update.Notes)
		}
	}

	query, args, err := builder.Where(sq.Eq{"id": update.ID}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindExpiredQuery(b sq.StatementBuilderType, now time.Time) (string, []any, error) {
	query, args, err := b.Select("id", "storage_key").
		From(quarantineRecordsTable).
		Where(sq.Eq{"status": statusStrings(models.ActiveStatuses)}).
		Where(sq.LtOrEq{"expires_at": now.UTC()}).
		OrderBy("expires_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildMarkExpiredQuery(b sq.StatementBuilderType, ids []string, now time.Time) (string, []any, error) {
	query, args, err := b.Update(quarantineRecordsTable).
		Set("status", string(models.StatusExpired)).
		Set("updated_at", now.UTC()).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListRecordsQuery applies only the constraints set in filter. Results
// are newest first.
func buildListRecordsQuery(b sq.StatementBuilderType, filter models.RecordFilter) (string, []any, error) {
	builder := b.Select(quarantineRecordColumns...).From(quarantineRecordsTable)

	if len(filter.Statuses) > 0 {
		builder = builder.Where(sq.Eq{"status": statusStrings(filter.Statuses)})
	}
	if filter.Tier != "" {
		builder = builder.Where(sq.Eq{"tier": filter.Tier})
	}
	if filter.ExpiresBefore != nil {
		builder = builder.Where(sq.LtOrEq{"expires_at": filter.ExpiresBefore.UTC()})
	}

	limit := filter.Limit
	switch {
	case limit == 0:
		limit = defaultListLimit
	case limit > maxListLimit:
		limit = maxListLimit
	}

	query, args, err := builder.
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		Offset(filter.Offset).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCountByStatusQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.Select("status", "COUNT(*)").
		From(quarantineRecordsTable).
		GroupBy("status").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func statusStrings(statuses []models.QuarantineStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
