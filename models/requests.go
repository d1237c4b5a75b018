// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// QuarantineRequest is the caller-supplied classification that accompanies
// content being quarantined. The values are opaque to the vault.
type QuarantineRequest struct {
	Tier        string   `json:"tier"`
	Labels      []string `json:"labels"`
	ContentType *string  `json:"content_type,omitempty"`
	SourceID    *string  `json:"source_id,omitempty"`
}

// StatusUpdate moves a record to a new status. ReviewedBy, when set,
// stamps the review time and allows Notes to be stored.
type StatusUpdate struct {
	ID         string           `json:"-"`
	Status     QuarantineStatus `json:"status"`
	ReviewedBy *string          `json:"reviewed_by,omitempty"`
	Notes      *string          `json:"notes,omitempty"`
}

// StoreContentRequest is the HTTP body of a quarantine submission.
type StoreContentRequest struct {
	// ContentBase64 is the raw content, standard base64 encoded.
	ContentBase64 string `json:"content_base64"`
	QuarantineRequest
}

// SignedLinkRequest asks for a time-limited link to a record's stored object.
type SignedLinkRequest struct {
	TTLSeconds int64 `json:"ttl_seconds"`
}
