package validators

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/quarantine-vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets a record id, given as a plain string or inside a
	// StatusUpdate.
	FieldID = "id"

	// FieldStatus targets the requested status of a StatusUpdate.
	FieldStatus = "status"

	// FieldTier targets the caller-supplied severity tier.
	FieldTier = "tier"

	// FieldLabels targets the caller-supplied classification labels.
	FieldLabels = "labels"

	// FieldLinkTTL targets the lifetime of a signed content link, given as
	// a time.Duration.
	FieldLinkTTL = "link_ttl"

	// FieldFilterStatuses targets the statuses of a RecordFilter.
	FieldFilterStatuses = "filter_statuses"
)

// MaxLinkTTL is the longest lifetime a signed content link may have.
const MaxLinkTTL = 7 * 24 * time.Hour

// QuarantineValidator implements Validator for the inputs of the
// quarantine lifecycle: QuarantineRequest, StatusUpdate, RecordFilter,
// record ids (string) and link lifetimes (time.Duration).
type QuarantineValidator struct {
}

func NewQuarantineValidator() Validator {
	return &QuarantineValidator{}
}

func (v *QuarantineValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.QuarantineRequest:
		return v.validateQuarantineRequest(value, fields...)
	case *models.QuarantineRequest:
		return v.validateQuarantineRequest(*value, fields...)

	case models.StatusUpdate:
		return v.validateStatusUpdate(value, fields...)
	case *models.StatusUpdate:
		return v.validateStatusUpdate(*value, fields...)

	case models.RecordFilter:
		return v.validateRecordFilter(value, fields...)
	case *models.RecordFilter:
		return v.validateRecordFilter(*value, fields...)

	case string:
		return v.validateID(value, fields...)

	case time.Duration:
		return v.validateLinkTTL(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *QuarantineValidator) validateQuarantineRequest(req models.QuarantineRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTier, FieldLabels}
	}

	for _, f := range fields {
		switch f {
		case FieldTier:
			if req.Tier == "" {
				return ErrNoTier
			}
		case FieldLabels:
			for i, label := range req.Labels {
				if label == "" {
					return fmt.Errorf("%w: index %d", ErrEmptyLabel, i)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *QuarantineValidator) validateStatusUpdate(update models.StatusUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if update.ID == "" {
				return ErrNoID
			}
		case FieldStatus:
			if !update.Status.IsValid() {
				return fmt.Errorf("%w %q", ErrInvalidStatus, update.Status)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *QuarantineValidator) validateRecordFilter(filter models.RecordFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFilterStatuses}
	}

	for _, f := range fields {
		switch f {
		case FieldFilterStatuses:
			for _, status := range filter.Statuses {
				if !status.IsValid() {
					return fmt.Errorf("%w: status %q", ErrInvalidFilter, status)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *QuarantineValidator) validateID(id string, fields ...string) error {
	for _, f := range fields {
		if f != FieldID {
			return ErrUnknownField
		}
	}

	if id == "" {
		return ErrNoID
	}
	return nil
}

func (v *QuarantineValidator) validateLinkTTL(ttl time.Duration, fields ...string) error {
	for _, f := range fields {
		if f != FieldLinkTTL {
			return ErrUnknownField
		}
	}

	switch {
	case ttl <= 0:
		return ErrInvalidLinkTTL
	case ttl > MaxLinkTTL:
		return ErrLinkTTLTooLarge
	}
	return nil
}
