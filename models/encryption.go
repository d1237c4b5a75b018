// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"time"
)

// AlgorithmAES256GCM is the only algorithm used for both encryption layers.
const AlgorithmAES256GCM = "AES-256-GCM"

const (
	// IVSize is the GCM nonce length used by both layers.
	IVSize = 12
	// AuthTagSize is the GCM tag length used by both layers.
	AuthTagSize = 16
)

// ErrMalformedBlob is returned by [ParseBlob] when the stored object is too
// short to hold an IV and an authentication tag.
var ErrMalformedBlob = errors.New("malformed encrypted blob")

// EncryptionKeyRecord holds the wrapped data encryption key of exactly one
// quarantine record. All binary values are standard base64.
type EncryptionKeyRecord struct {
	ID             string    `json:"id"`
	WrappedDataKey string    `json:"wrapped_data_key"`
	WrapIV         string    `json:"wrap_iv"`
	WrapAuthTag    string    `json:"wrap_auth_tag"`
	Algorithm      string    `json:"algorithm"`
	CreatedAt      time.Time `json:"created_at"`
}

// EncryptedPayload is the transient output of one envelope encryption.
// It is never persisted as a whole: the content triple goes to the object
// store as a blob, the wrapped key triple goes to the key vault.
type EncryptedPayload struct {
	Ciphertext []byte
	IV         []byte
	AuthTag    []byte

	WrappedDataKey []byte
	WrapIV         []byte
	WrapAuthTag    []byte
}

// Blob serializes the content part of the payload as iv ‖ ciphertext ‖ tag.
func (p EncryptedPayload) Blob() []byte {
	blob := make([]byte, 0, len(p.IV)+len(p.Ciphertext)+len(p.AuthTag))
	blob = append(blob, p.IV...)
	blob = append(blob, p.Ciphertext...)
	blob = append(blob, p.AuthTag...)
	return blob
}

// ParseBlob splits a stored blob into iv, ciphertext and tag. The returned
// slices alias blob.
func ParseBlob(blob []byte) (iv, ciphertext, authTag []byte, err error) {
	if len(blob) < IVSize+AuthTagSize {
		return nil, nil, nil, ErrMalformedBlob
	}

	iv = blob[:IVSize]
	ciphertext = blob[IVSize : len(blob)-AuthTagSize]
	authTag = blob[len(blob)-AuthTagSize:]
	return iv, ciphertext, authTag, nil
}
