package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/quarantine-vault/internal/validators"
	"github.com/MKhiriev/quarantine-vault/models"
)

// MaxLinkTTL is the longest lifetime a signed content link may have.
const MaxLinkTTL = validators.MaxLinkTTL

// QuarantineValidationService rejects malformed input before it reaches the
// wrapped service.
type QuarantineValidationService struct {
	inner     QuarantineService
	validator validators.Validator
}

func NewQuarantineValidationService() QuarantineServiceWrapper {
	return &QuarantineValidationService{
		validator: validators.NewQuarantineValidator(),
	}
}

func (v *QuarantineValidationService) Store(ctx context.Context, plaintext []byte, req models.QuarantineRequest) (string, error) {
	if err := v.validate(ctx, req); err != nil {
		return "", err
	}

	return v.inner.Store(ctx, plaintext, req)
}

func (v *QuarantineValidationService) GetMetadata(ctx context.Context, id string) (models.QuarantineRecord, bool, error) {
	if err := v.validate(ctx, id, validators.FieldID); err != nil {
		return models.QuarantineRecord{}, false, err
	}

	return v.inner.GetMetadata(ctx, id)
}

func (v *QuarantineValidationService) UpdateStatus(ctx context.Context, update models.StatusUpdate) error {
	if err := v.validate(ctx, update); err != nil {
		return err
	}

	return v.inner.UpdateStatus(ctx, update)
}

func (v *QuarantineValidationService) SignedContentURL(ctx context.Context, id string, ttl time.Duration) (models.SignedLink, error) {
	if err := v.validate(ctx, id, validators.FieldID); err != nil {
		return models.SignedLink{}, err
	}
	if err := v.validate(ctx, ttl, validators.FieldLinkTTL); err != nil {
		return models.SignedLink{}, err
	}

	return v.inner.SignedContentURL(ctx, id, ttl)
}

func (v *QuarantineValidationService) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	return v.inner.SweepExpired(ctx, now)
}

func (v *QuarantineValidationService) ListRecords(ctx context.Context, filter models.RecordFilter) ([]models.QuarantineRecord, error) {
	if err := v.validate(ctx, filter); err != nil {
		return nil, err
	}

	return v.inner.ListRecords(ctx, filter)
}

func (v *QuarantineValidationService) RetrieveContent(ctx context.Context, id string) ([]byte, models.QuarantineRecord, error) {
	if err := v.validate(ctx, id, validators.FieldID); err != nil {
		return nil, models.QuarantineRecord{}, err
	}

	return v.inner.RetrieveContent(ctx, id)
}

func (v *QuarantineValidationService) Wrap(wrapped QuarantineService) QuarantineService {
	v.inner = wrapped
	return v
}

func (v *QuarantineValidationService) validate(ctx context.Context, obj any, fields ...string) error {
	if err := v.validator.Validate(ctx, obj, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}
