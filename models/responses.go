package models

// StoreResponse is returned after content has been quarantined.
type StoreResponse struct {
	ID string `json:"id"`
}

// SweepResponse reports how many records a sweep moved to EXPIRED.
type SweepResponse struct {
	Expired int `json:"expired"`
}

// RecordListResponse is a page of quarantine records.
type RecordListResponse struct {
	Records []QuarantineRecord `json:"records"`

	// Length is len(Records), provided so clients can pre-allocate.
	Length int `json:"length"`
}

// VersionResponse is the JSON form of the server version.
type VersionResponse struct {
	Version string `json:"version"`
}
