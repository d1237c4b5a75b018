// Package http implements the HTTP transport of the quarantine vault.
//
// It exposes route wiring, request handlers, and middleware for the
// moderation API. Bearer authentication, request tracing, access logging
// and content integrity checks are handled in this package before requests
// are delegated to the service layer.
package http
