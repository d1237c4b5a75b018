// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrInvalidMasterKey is returned at construction time when the master
	// key does not decode to exactly 32 bytes. It is fatal for the process.
	ErrInvalidMasterKey = errors.New("master key must be exactly 32 bytes")

	// ErrDecryptionFailed is returned when authentication fails while
	// unwrapping the DEK or decrypting content. It must be treated as a
	// security event: the data was tampered with or the wrong master key
	// is in use.
	ErrDecryptionFailed = errors.New("decryption failed")
)
