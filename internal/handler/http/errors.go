// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Request decoding errors.
var (
	ErrInvalidJSON          = errors.New("invalid JSON was passed")
	ErrInvalidContentBase64 = errors.New("content_base64 is not valid base64")
	ErrInvalidQueryParam    = errors.New("invalid query parameter")

	// ErrContentHashMismatch is returned when the X-Content-SHA256 header
	// does not match the submitted content.
	ErrContentHashMismatch = errors.New("integrity check failed")
)
