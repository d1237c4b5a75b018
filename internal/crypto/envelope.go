// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/MKhiriev/quarantine-vault/models"
)

// MasterKeySize is the required master key and DEK length (AES-256).
const MasterKeySize = 32

// envelopeEngine is the AES-256-GCM implementation of [EnvelopeEngine].
// The master key cipher is built once; it is read-only afterwards.
type envelopeEngine struct {
	master cipher.AEAD
}

// NewEnvelopeEngine validates masterKey and constructs an [EnvelopeEngine].
// The key is copied into the AES key schedule and not retained otherwise.
// Returns [ErrInvalidMasterKey] if len(masterKey) != 32.
func NewEnvelopeEngine(masterKey []byte) (EnvelopeEngine, error) {
	if len(masterKey) != MasterKeySize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidMasterKey, len(masterKey))
	}

	master, err := newGCM(masterKey)
	if err != nil {
		return nil, err
	}

	return &envelopeEngine{master: master}, nil
}

// Encrypt implements [EnvelopeEngine].
func (e *envelopeEngine) Encrypt(plaintext []byte) (models.EncryptedPayload, error) {
	// 1. fresh DEK
	dek := make([]byte, MasterKeySize)
	if _, err := io.ReadFull(rand.Reader, dek); err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("generate data key: %w", err)
	}
	defer clear(dek)

	// 2. encrypt content under DEK
	content, err := newGCM(dek)
	if err != nil {
		return models.EncryptedPayload{}, err
	}
	iv, ciphertext, authTag, err := seal(content, plaintext)
	if err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("encrypt content: %w", err)
	}

	// 3. wrap DEK under master key
	wrapIV, wrappedDEK, wrapTag, err := seal(e.master, dek)
	if err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("wrap data key: %w", err)
	}

	return models.EncryptedPayload{
		Ciphertext:     ciphertext,
		IV:             iv,
		AuthTag:        authTag,
		WrappedDataKey: wrappedDEK,
		WrapIV:         wrapIV,
		WrapAuthTag:    wrapTag,
	}, nil
}

// Decrypt implements [EnvelopeEngine].
func (e *envelopeEngine) Decrypt(payload models.EncryptedPayload) ([]byte, error) {
	dek, err := open(e.master, payload.WrapIV, payload.WrappedDataKey, payload.WrapAuthTag)
	if err != nil {
		return nil, fmt.Errorf("%w: unwrap data key", ErrDecryptionFailed)
	}
	defer clear(dek)

	if len(dek) != MasterKeySize {
		return nil, fmt.Errorf("%w: unwrapped data key has %d bytes", ErrDecryptionFailed, len(dek))
	}

	content, err := newGCM(dek)
	if err != nil {
		return nil, err
	}

	plaintext, err := open(content, payload.IV, payload.Ciphertext, payload.AuthTag)
	if err != nil {
		return nil, fmt.Errorf("%w: decrypt content", ErrDecryptionFailed)
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// seal encrypts plaintext with a fresh random nonce and splits the GCM
// output into ciphertext and tag.
func seal(aead cipher.AEAD, plaintext []byte) (iv, ciphertext, authTag []byte, err error) {
	iv = make([]byte, aead.NonceSize())
	if _, err = io.ReadFull(rand.Reader, iv); err != nil {
		return nil, nil, nil, fmt.Errorf("generate nonce: %w", err)
	}

	sealed := aead.Seal(nil, iv, plaintext, nil)
	tagStart := len(sealed) - aead.Overhead()

	return iv, sealed[:tagStart], sealed[tagStart:], nil
}

// open verifies and decrypts. The output buffer is only returned when the
// tag checks out, so no partial plaintext can escape.
func open(aead cipher.AEAD, iv, ciphertext, authTag []byte) ([]byte, error) {
	if len(iv) != aead.NonceSize() || len(authTag) != aead.Overhead() {
		return nil, fmt.Errorf("invalid nonce or tag length")
	}

	sealed := make([]byte, 0, len(ciphertext)+len(authTag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, authTag...)

	return aead.Open(nil, iv, sealed, nil)
}
