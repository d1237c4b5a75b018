package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNoID            = errors.New("no record id was given")
	ErrInvalidStatus   = errors.New("unknown quarantine status")
	ErrNoTier          = errors.New("no tier was given")
	ErrEmptyLabel      = errors.New("labels must not be empty strings")
	ErrInvalidLinkTTL  = errors.New("link ttl must be positive")
	ErrLinkTTLTooLarge = errors.New("link ttl exceeds the maximum")
	ErrInvalidFilter   = errors.New("invalid record filter")
)
