package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/quarantine-vault/internal/logger"
	"github.com/MKhiriev/quarantine-vault/models"
)

// quarantineRepository is the SQL-backed implementation of
// [QuarantineRepository] over the "quarantine_records" table.
//
// Every method obtains a context-scoped logger via [logger.FromContext] so
// database failures carry the request trace id.
type quarantineRepository struct {
	*DB
	logger *logger.Logger
}

// NewQuarantineRepository constructs a [QuarantineRepository] over db.
func NewQuarantineRepository(db *DB, logger *logger.Logger) QuarantineRepository {
	logger.Debug().Msg("creating quarantine repository")
	return &quarantineRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveRecord inserts a new record. Duplicate id or storage key yields
// [ErrRecordAlreadyExists].
func (q *quarantineRepository) SaveRecord(ctx context.Context, record models.QuarantineRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveRecordQuery(q.builder(), record)
	if err != nil {
		log.Err(err).Str("func", "quarantineRepository.SaveRecord").Msg("failed to create query")
		return err
	}

	result, err := q.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "quarantineRepository.SaveRecord").Str("record_id", record.ID).Msg("error executing query for saving record")
		if q.isUniqueViolation(err) {
			return ErrRecordAlreadyExists
		}
		return q.wrapErr(ErrExecutingStatement, err)
	}

	if rowsAffected, _ := result.RowsAffected(); rowsAffected == 0 {
		log.Error().Str("func", "quarantineRepository.SaveRecord").Str("record_id", record.ID).Msg("record was not saved")
		return ErrRecordNotSaved
	}

	return nil
}

// GetRecord returns the record with id or [ErrRecordNotFound].
func (q *quarantineRepository) GetRecord(ctx context.Context, id string) (models.QuarantineRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetRecordQuery(q.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "quarantineRepository.GetRecord").Msg("failed to create query")
		return models.QuarantineRecord{}, err
	}

	record, err := scanRecord(q.DB.QueryRowContext(ctx, query, args...))
	if q.isNoMatch(err) {
		return models.QuarantineRecord{}, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "quarantineRepository.GetRecord").Str("record_id", id).Msg("failed to scan record")
		return models.QuarantineRecord{}, q.wrapErr(ErrScanningRow, err)
	}

	return record, nil
}

// UpdateStatus applies update to a single row. Zero affected rows means
// the id is unknown and yields [ErrRecordNotFound].
func (q *quarantineRepository) UpdateStatus(ctx context.Context, update models.StatusUpdate, reviewedAt *time.Time, updatedAt time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateStatusQuery(q.builder(), update, reviewedAt, updatedAt)
	if err != nil {
		log.Err(err).Str("func", "quarantineRepository.UpdateStatus").Msg("failed to create query")
		return err
	}

	result, err := q.DB.ExecContext(ctx, query, args...)
	if q.isNoMatch(err) {
		return ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "quarantineRepository.UpdateStatus").
			Str("record_id", update.ID).
			Str("status", update.Status.String()).
			Msg("error executing status update")
		return q.wrapErr(ErrExecutingStatement, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return q.wrapErr(ErrExecutingStatement, err)
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// FindExpired lists QUARANTINED and UNDER_REVIEW records with
// expires_at <= now, oldest first.
func (q *quarantineRepository) FindExpired(ctx context.Context, now time.Time) ([]models.ExpiredRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindExpiredQuery(q.builder(), now)
	if err != nil {
		log.Err(err).Str("func", "quarantineRepository.FindExpired").Msg("failed to create query")
		return nil, err
	}

	rows, err := q.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "quarantineRepository.FindExpired").Msg("failed to execute query for expired records")
		return nil, q.wrapErr(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var expired []models.ExpiredRecord
	for rows.Next() {
		var r models.ExpiredRecord
		if err = rows.Scan(&r.ID, &r.StorageKey); err != nil {
			log.Err(err).Str("func", "quarantineRepository.FindExpired").Msg("failed to scan expired record")
			return nil, q.wrapErr(ErrScanningRows, err)
		}
		expired = append(expired, r)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "quarantineRepository.FindExpired").Msg("error iterating expired records")
		return nil, q.wrapErr(ErrScanningRows, err)
	}

	return expired, nil
}

// MarkExpired sets status EXPIRED on ids in one statement.
func (q *quarantineRepository) MarkExpired(ctx context.Context, ids []string, now time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	log := logger.FromContext(ctx)

	query, args, err := buildMarkExpiredQuery(q.builder(), ids, now)
	if err != nil {
		log.Err(err).Str("func", "quarantineRepository.MarkExpired").Msg("failed to create query")
		return 0, err
	}

	result, err := q.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "quarantineRepository.MarkExpired").Int("ids", len(ids)).Msg("error marking records expired")
		return 0, q.wrapErr(ErrExecutingStatement, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, q.wrapErr(ErrExecutingStatement, err)
	}

	return rowsAffected, nil
}

// ListRecords returns records matching filter, newest first.
func (q *quarantineRepository) ListRecords(ctx context.Context, filter models.RecordFilter) ([]models.QuarantineRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecordsQuery(q.builder(), filter)
	if err != nil {
		log.Err(err).Str("func", "quarantineRepository.ListRecords").Msg("failed to create query")
		return nil, err
	}

	rows, err := q.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "quarantineRepository.ListRecords").Msg("failed to execute list query")
		return nil, q.wrapErr(ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.QuarantineRecord, 0)
	for rows.Next() {
		record, scanErr := scanRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "quarantineRepository.ListRecords").Msg("failed to scan record")
			return nil, q.wrapErr(ErrScanningRows, scanErr)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, q.wrapErr(ErrScanningRows, err)
	}

	return records, nil
}

// CountByStatus returns the number of records per status. Statuses with no
// records are absent from the map.
func (q *quarantineRepository) CountByStatus(ctx context.Context) (map[models.QuarantineStatus]int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountByStatusQuery(q.builder())
	if err != nil {
		return nil, err
	}

	rows, err := q.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "quarantineRepository.CountByStatus").Msg("failed to execute count query")
		return nil, q.wrapErr(ErrExecutingQuery, err)
	}
	defer rows.Close()

	counts := make(map[models.QuarantineStatus]int64)
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err = rows.Scan(&status, &count); err != nil {
			return nil, q.wrapErr(ErrScanningRows, err)
		}
		counts[models.QuarantineStatus(status)] = count
	}
	if err = rows.Err(); err != nil {
		return nil, q.wrapErr(ErrScanningRows, err)
	}

	return counts, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanRecord reads one row laid out as quarantineRecordColumns.
func scanRecord(row rowScanner) (models.QuarantineRecord, error) {
	var (
		r           models.QuarantineRecord
		status      string
		labels      []byte
		contentType sql.NullString
		sourceID    sql.NullString
		reviewedBy  sql.NullString
		reviewedAt  sql.NullTime
		reviewNotes sql.NullString
	)

	err := row.Scan(
		&r.ID,
		&r.StorageKey,
		&status,
		&r.Tier,
		&labels,
		&contentType,
		&sourceID,
		&r.EncryptionKeyID,
		&r.ContentHash,
		&r.SizeBytes,
		&r.ExpiresAt,
		&reviewedBy,
		&reviewedAt,
		&reviewNotes,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return models.QuarantineRecord{}, err
	}

	r.Status = models.QuarantineStatus(status)
	r.Labels = []string{}
	if len(labels) > 0 {
		if err = json.Unmarshal(labels, &r.Labels); err != nil {
			return models.QuarantineRecord{}, fmt.Errorf("decoding labels: %w", err)
		}
	}
	r.ContentType = nullStringPtr(contentType)
	r.SourceID = nullStringPtr(sourceID)
	r.ReviewedBy = nullStringPtr(reviewedBy)
	r.ReviewNotes = nullStringPtr(reviewNotes)
	if reviewedAt.Valid {
		t := reviewedAt.Time.UTC()
		r.ReviewedAt = &t
	}
	r.ExpiresAt = r.ExpiresAt.UTC()
	r.CreatedAt = r.CreatedAt.UTC()
	r.UpdatedAt = r.UpdatedAt.UTC()

	return r, nil
}

func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
