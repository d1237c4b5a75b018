package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a moderator bearer token.
//
// It embeds [jwt.Token] for low-level token operations and
// [jwt.RegisteredClaims] for standard claim access. Actor is the cached
// "sub" claim: the moderator or bot identity that made the request.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Actor is the subject of the token.
	Actor string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// LinkClaims are the claims carried by a signed content link.
// ObjectKey is the storage key of the (encrypted) object the link grants
// access to.
type LinkClaims struct {
	jwt.RegisteredClaims

	ObjectKey string `json:"obj"`
}
