// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"
)

// DecodeMasterKey decodes a master key given either as standard base64 or as
// 64 hex characters. The decoded key must be exactly 32 bytes; nothing is
// padded or truncated.
func DecodeMasterKey(encoded string) ([]byte, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return nil, fmt.Errorf("%w: empty key", ErrInvalidMasterKey)
	}

	if len(encoded) == hex.EncodedLen(MasterKeySize) {
		if key, err := hex.DecodeString(encoded); err == nil {
			return key, nil
		}
	}

	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: not base64 or hex", ErrInvalidMasterKey)
	}
	if len(key) != MasterKeySize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidMasterKey, len(key))
	}

	return key, nil
}

// GenerateMasterKey returns a fresh random master key, base64 encoded.
func GenerateMasterKey() (string, error) {
	key := make([]byte, MasterKeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return "", fmt.Errorf("generate master key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

// DeriveSubKey derives a 32-byte key for purpose from masterKey using
// HKDF-SHA256. Different purposes yield independent keys.
func DeriveSubKey(masterKey []byte, purpose string) ([]byte, error) {
	if len(masterKey) != MasterKeySize {
		return nil, ErrInvalidMasterKey
	}

	sub := make([]byte, MasterKeySize)
	reader := hkdf.New(sha256.New, masterKey, nil, []byte(purpose))
	if _, err := io.ReadFull(reader, sub); err != nil {
		return nil, fmt.Errorf("derive %s key: %w", purpose, err)
	}
	return sub, nil
}
