package validators

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/quarantine-vault/models"
)

func TestQuarantineValidator_Validate(t *testing.T) {
	v := NewQuarantineValidator()

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{name: "request ok", obj: models.QuarantineRequest{Tier: "HIGH", Labels: []string{"AWS_KEY"}}},
		{name: "request pointer ok", obj: &models.QuarantineRequest{Tier: "LOW"}},
		{name: "request without tier", obj: models.QuarantineRequest{}, wantErr: ErrNoTier},
		{name: "request with empty label", obj: models.QuarantineRequest{Tier: "LOW", Labels: []string{""}}, wantErr: ErrEmptyLabel},
		{name: "request scoped to labels", obj: models.QuarantineRequest{}, fields: []string{FieldLabels}},

		{name: "update ok", obj: models.StatusUpdate{ID: "r", Status: models.StatusDeleted}},
		{name: "update without id", obj: models.StatusUpdate{Status: models.StatusDeleted}, wantErr: ErrNoID},
		{name: "update with unknown status", obj: models.StatusUpdate{ID: "r", Status: "ARCHIVED"}, wantErr: ErrInvalidStatus},
		{name: "update scoped to id", obj: &models.StatusUpdate{ID: "r"}, fields: []string{FieldID}},

		{name: "filter ok", obj: models.RecordFilter{Statuses: models.ActiveStatuses}},
		{name: "filter with unknown status", obj: models.RecordFilter{Statuses: []models.QuarantineStatus{"x"}}, wantErr: ErrInvalidFilter},

		{name: "id ok", obj: "r1"},
		{name: "empty id", obj: "", wantErr: ErrNoID},

		{name: "ttl ok", obj: time.Minute},
		{name: "ttl at maximum", obj: MaxLinkTTL},
		{name: "zero ttl", obj: time.Duration(0), wantErr: ErrInvalidLinkTTL},
		{name: "ttl too large", obj: MaxLinkTTL + time.Second, wantErr: ErrLinkTTLTooLarge},

		{name: "unknown field", obj: models.QuarantineRequest{Tier: "x"}, fields: []string{"nope"}, wantErr: ErrUnknownField},
		{name: "id with foreign field", obj: "r1", fields: []string{FieldTier}, wantErr: ErrUnknownField},
		{name: "unsupported type", obj: 42, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
