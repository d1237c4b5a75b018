package crypto

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMasterKey(t *testing.T) {
	raw := bytes.Repeat([]byte{0xAB}, MasterKeySize)

	tests := []struct {
		name    string
		encoded string
		wantErr bool
	}{
		{name: "base64", encoded: base64.StdEncoding.EncodeToString(raw)},
		{name: "hex", encoded: hex.EncodeToString(raw)},
		{name: "base64 with whitespace", encoded: "  " + base64.StdEncoding.EncodeToString(raw) + "\n"},
		{name: "empty", encoded: "", wantErr: true},
		{name: "too short", encoded: base64.StdEncoding.EncodeToString(raw[:16]), wantErr: true},
		{name: "too long", encoded: base64.StdEncoding.EncodeToString(append(raw, 0x01)), wantErr: true},
		{name: "garbage", encoded: "not a key!", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := DecodeMasterKey(tt.encoded)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidMasterKey))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, raw, key)
		})
	}
}

func TestGenerateMasterKey_DecodesToValidKey(t *testing.T) {
	k1, err := GenerateMasterKey()
	require.NoError(t, err)
	k2, err := GenerateMasterKey()
	require.NoError(t, err)

	assert.NotEqual(t, k1, k2)

	raw, err := DecodeMasterKey(k1)
	require.NoError(t, err)
	assert.Len(t, raw, MasterKeySize)
}

func TestDeriveSubKey(t *testing.T) {
	master := bytes.Repeat([]byte{0x11}, MasterKeySize)

	a1, err := DeriveSubKey(master, "links")
	require.NoError(t, err)
	a2, err := DeriveSubKey(master, "links")
	require.NoError(t, err)
	b, err := DeriveSubKey(master, "other")
	require.NoError(t, err)

	assert.Len(t, a1, MasterKeySize)
	assert.Equal(t, a1, a2, "derivation must be deterministic")
	assert.NotEqual(t, a1, b, "purposes must be domain separated")
	assert.NotEqual(t, master, a1)

	_, err = DeriveSubKey(master[:10], "links")
	assert.ErrorIs(t, err, ErrInvalidMasterKey)
}
