// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/MKhiriev/quarantine-vault/models"
)

func newTestEngine(t *testing.T, fill byte) EnvelopeEngine {
	t.Helper()

	engine, err := NewEnvelopeEngine(bytes.Repeat([]byte{fill}, MasterKeySize))
	if err != nil {
		t.Fatalf("NewEnvelopeEngine error: %v", err)
	}
	return engine
}

func TestNewEnvelopeEngine_RejectsWrongKeyLength(t *testing.T) {
	for _, size := range []int{0, 16, 31, 33, 64} {
		_, err := NewEnvelopeEngine(make([]byte, size))
		if !errors.Is(err, ErrInvalidMasterKey) {
			t.Fatalf("key of %d bytes: expected ErrInvalidMasterKey, got %v", size, err)
		}
	}
}

func TestEnvelope_RoundTrip(t *testing.T) {
	engine := newTestEngine(t, 0x42)

	big := make([]byte, 3<<20)
	if _, err := rand.Read(big); err != nil {
		t.Fatalf("rand.Read error: %v", err)
	}

	cases := map[string][]byte{
		"empty":     {},
		"short":     []byte("secret"),
		"multi-mib": big,
	}

	for name, plaintext := range cases {
		t.Run(name, func(t *testing.T) {
			payload, err := engine.Encrypt(plaintext)
			if err != nil {
				t.Fatalf("Encrypt error: %v", err)
			}

			got, err := engine.Decrypt(payload)
			if err != nil {
				t.Fatalf("Decrypt error: %v", err)
			}
			if !bytes.Equal(got, plaintext) {
				t.Fatalf("round trip mismatch: got %d bytes, want %d", len(got), len(plaintext))
			}
		})
	}
}

func TestEnvelope_SizesOfIVsAndTags(t *testing.T) {
	engine := newTestEngine(t, 0x42)

	payload, err := engine.Encrypt([]byte("payload"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if len(payload.IV) != models.IVSize || len(payload.WrapIV) != models.IVSize {
		t.Fatalf("iv sizes = %d/%d, want %d", len(payload.IV), len(payload.WrapIV), models.IVSize)
	}
	if len(payload.AuthTag) != models.AuthTagSize || len(payload.WrapAuthTag) != models.AuthTagSize {
		t.Fatalf("tag sizes = %d/%d, want %d", len(payload.AuthTag), len(payload.WrapAuthTag), models.AuthTagSize)
	}
	if len(payload.WrappedDataKey) != MasterKeySize {
		t.Fatalf("wrapped key length = %d, want %d", len(payload.WrappedDataKey), MasterKeySize)
	}
}

func TestEnvelope_FreshRandomnessPerCall(t *testing.T) {
	engine := newTestEngine(t, 0x42)
	plaintext := []byte("same plaintext every time")

	p1, err := engine.Encrypt(plaintext)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	p2, err := engine.Encrypt(plaintext)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if bytes.Equal(p1.IV, p2.IV) {
		t.Fatalf("expected different content IVs")
	}
	if bytes.Equal(p1.WrapIV, p2.WrapIV) {
		t.Fatalf("expected different wrap IVs")
	}
	if bytes.Equal(p1.Ciphertext, p2.Ciphertext) {
		t.Fatalf("expected different ciphertexts")
	}
	if bytes.Equal(p1.WrappedDataKey, p2.WrappedDataKey) {
		t.Fatalf("expected different wrapped data keys")
	}
}

func TestEnvelope_TamperingFailsClosed(t *testing.T) {
	engine := newTestEngine(t, 0x42)

	fields := map[string]func(p *models.EncryptedPayload) []byte{
		"ciphertext":       func(p *models.EncryptedPayload) []byte { return p.Ciphertext },
		"auth tag":         func(p *models.EncryptedPayload) []byte { return p.AuthTag },
		"iv":               func(p *models.EncryptedPayload) []byte { return p.IV },
		"wrapped data key": func(p *models.EncryptedPayload) []byte { return p.WrappedDataKey },
		"wrap auth tag":    func(p *models.EncryptedPayload) []byte { return p.WrapAuthTag },
		"wrap iv":          func(p *models.EncryptedPayload) []byte { return p.WrapIV },
	}

	for name, field := range fields {
		t.Run(name, func(t *testing.T) {
			payload, err := engine.Encrypt([]byte("do not alter me"))
			if err != nil {
				t.Fatalf("Encrypt error: %v", err)
			}

			target := field(&payload)
			target[len(target)/2] ^= 0x01

			plaintext, err := engine.Decrypt(payload)
			if !errors.Is(err, ErrDecryptionFailed) {
				t.Fatalf("expected ErrDecryptionFailed, got %v", err)
			}
			if plaintext != nil {
				t.Fatalf("expected no plaintext, got %q", plaintext)
			}
		})
	}
}

func TestEnvelope_WrongMasterKeyFails(t *testing.T) {
	payload, err := newTestEngine(t, 0x01).Encrypt([]byte("secret"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	_, err = newTestEngine(t, 0x02).Decrypt(payload)
	if !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("expected ErrDecryptionFailed, got %v", err)
	}
}

func TestEnvelope_TruncatedTagFails(t *testing.T) {
	engine := newTestEngine(t, 0x42)

	payload, err := engine.Encrypt([]byte("secret"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	payload.AuthTag = payload.AuthTag[:8]

	if _, err := engine.Decrypt(payload); !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("expected ErrDecryptionFailed, got %v", err)
	}
}

func TestEnvelope_BlobRoundTrip(t *testing.T) {
	engine := newTestEngine(t, 0x42)

	payload, err := engine.Encrypt([]byte("stored as a blob"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	iv, ciphertext, tag, err := models.ParseBlob(payload.Blob())
	if err != nil {
		t.Fatalf("ParseBlob error: %v", err)
	}

	restored := models.EncryptedPayload{
		Ciphertext:     ciphertext,
		IV:             iv,
		AuthTag:        tag,
		WrappedDataKey: payload.WrappedDataKey,
		WrapIV:         payload.WrapIV,
		WrapAuthTag:    payload.WrapAuthTag,
	}

	got, err := engine.Decrypt(restored)
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if string(got) != "stored as a blob" {
		t.Fatalf("unexpected plaintext %q", got)
	}
}
