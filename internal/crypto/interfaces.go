package crypto

import "github.com/MKhiriev/quarantine-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/envelope_engine_mock.go -package=mock

// EnvelopeEngine performs two-layer (envelope) encryption of quarantined
// content under a fixed master key.
//
// Scheme:
//
//	DEK                   = 32 random bytes, fresh per Encrypt call
//	ciphertext, authTag   = AES-256-GCM(DEK, iv, plaintext)
//	wrappedDEK, wrapTag   = AES-256-GCM(masterKey, wrapIV, DEK)
//
// Rotating the master key only requires re-wrapping stored DEKs; content
// blobs are never re-encrypted. Implementations are safe for concurrent use.
type EnvelopeEngine interface {
	// Encrypt generates a fresh DEK, encrypts plaintext under it and wraps
	// the DEK under the master key. The unwrapped DEK does not outlive the call.
	Encrypt(plaintext []byte) (models.EncryptedPayload, error)

	// Decrypt unwraps the DEK and decrypts the content. Any authentication
	// failure on either layer returns [ErrDecryptionFailed] and no plaintext.
	Decrypt(payload models.EncryptedPayload) ([]byte, error)
}
