package service

import (
	"errors"

	"github.com/MKhiriev/quarantine-vault/internal/validators"
)

var (
	// ErrRecordNotFound is returned when an operation targets an unknown id.
	ErrRecordNotFound = errors.New("quarantine record not found")

	// ErrContentUnavailable is returned when the content of a DELETED or
	// EXPIRED record is requested.
	ErrContentUnavailable = errors.New("content is no longer stored")

	// ErrLinksNotServedLocally is returned when a content link is resolved
	// but the object backend signs its own links.
	ErrLinksNotServedLocally = errors.New("content links are not served by this service")

	ErrInvalidLinkToken = errors.New("content link is expired or invalid")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrAuthDisabled            = errors.New("token sign key is not configured")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Validation errors returned by the validation wrapper. The specific causes
// are the validators sentinels, so errors.Is works against either name.
var (
	ErrValidation = errors.New("validation failed")

	ErrValidationNoID            = validators.ErrNoID
	ErrValidationInvalidStatus   = validators.ErrInvalidStatus
	ErrValidationNoTier          = validators.ErrNoTier
	ErrValidationInvalidLinkTTL  = validators.ErrInvalidLinkTTL
	ErrValidationLinkTTLTooLarge = validators.ErrLinkTTLTooLarge
	ErrValidationEmptyLabel      = validators.ErrEmptyLabel
	ErrValidationInvalidFilter   = validators.ErrInvalidFilter
)
