// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// QuarantineStatus is the review lifecycle state of a quarantined item.
type QuarantineStatus string

const (
	// StatusQuarantined is the initial state of every record.
	StatusQuarantined QuarantineStatus = "QUARANTINED"
	// StatusUnderReview marks a record picked up by a reviewer.
	StatusUnderReview QuarantineStatus = "UNDER_REVIEW"
	// StatusReleased is terminal: the content was returned to circulation.
	StatusReleased QuarantineStatus = "RELEASED"
	// StatusDeleted is terminal: the stored ciphertext has been removed.
	StatusDeleted QuarantineStatus = "DELETED"
	// StatusExpired is terminal: the sweep reclaimed the stored ciphertext.
	StatusExpired QuarantineStatus = "EXPIRED"
)

// AllStatuses lists every known status in lifecycle order.
var AllStatuses = []QuarantineStatus{
	StatusQuarantined,
	StatusUnderReview,
	StatusReleased,
	StatusDeleted,
	StatusExpired,
}

// ActiveStatuses are the states the expiry sweep considers.
var ActiveStatuses = []QuarantineStatus{
	StatusQuarantined,
	StatusUnderReview,
}

// IsValid reports whether s is one of the known statuses.
func (s QuarantineStatus) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsActive reports whether a record in this state still holds content
// awaiting a decision.
func (s QuarantineStatus) IsActive() bool {
	return s == StatusQuarantined || s == StatusUnderReview
}

// IsTerminal reports whether s is RELEASED, DELETED or EXPIRED.
func (s QuarantineStatus) IsTerminal() bool {
	return s.IsValid() && !s.IsActive()
}

// String implements [fmt.Stringer].
func (s QuarantineStatus) String() string {
	return string(s)
}

// QuarantineRecord is the metadata row describing one held item.
//
// StorageKey and EncryptionKeyID are set once at creation and never change.
// ContentHash is the hex SHA-256 of the plaintext and is informational only.
type QuarantineRecord struct {
	ID              string           `json:"id"`
	StorageKey      string           `json:"storage_key"`
	Status          QuarantineStatus `json:"status"`
	Tier            string           `json:"tier"`
	Labels          []string         `json:"labels"`
	ContentType     *string          `json:"content_type,omitempty"`
	SourceID        *string          `json:"source_id,omitempty"`
	EncryptionKeyID string           `json:"encryption_key_id"`
	ContentHash     string           `json:"content_hash"`
	SizeBytes       int64            `json:"size_bytes"`
	ExpiresAt       time.Time        `json:"expires_at"`
	ReviewedBy      *string          `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time       `json:"reviewed_at,omitempty"`
	ReviewNotes     *string          `json:"review_notes,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// ExpiredRecord is a sweep candidate: just enough to reclaim its blob and
// flip its status.
type ExpiredRecord struct {
	ID         string
	StorageKey string
}

// RecordFilter narrows a listing of quarantine records. Zero values mean
// "no constraint", except Limit which falls back to a repository default.
type RecordFilter struct {
	Statuses      []QuarantineStatus `json:"statuses,omitempty"`
	Tier          string             `json:"tier,omitempty"`
	ExpiresBefore *time.Time         `json:"expires_before,omitempty"`
	Limit         uint64             `json:"limit,omitempty"`
	Offset        uint64             `json:"offset,omitempty"`
}

// SignedLink is a time-limited direct link to a stored object.
// The object behind it is ciphertext.
type SignedLink struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}
