package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/quarantine-vault/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidTokenParams is returned when a token is requested with an empty
// issuer, subject, key or a non-positive duration.
var ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")

// GenerateJWTToken creates a signed HMAC-SHA256 moderator token.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the actor identity (moderator or bot name)
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("quarantine-vault", "alice", time.Hour, "secret")
func GenerateJWTToken(issuer, actor string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || actor == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   actor,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, Actor: actor}, nil
}

// ValidateAndParseJWTToken validates a moderator token and extracts the actor.
//
// Validation includes signature verification (HS256 only), issuer check,
// expiration check and presence of a non-empty subject.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	actor, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if actor == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	return models.Token{Token: token, SignedString: tokenString, Actor: actor}, nil
}

// GenerateLinkToken signs a content link token granting access to objectKey
// until expiresAt.
func GenerateLinkToken(issuer, objectKey string, expiresAt time.Time, signKey []byte) (string, error) {
	if issuer == "" || objectKey == "" || len(signKey) == 0 {
		return "", ErrInvalidTokenParams
	}

	claims := &models.LinkClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		ObjectKey: objectKey,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signKey)
	if err != nil {
		return "", fmt.Errorf("error occurred during singing link token: %w", err)
	}
	return signed, nil
}

// ParseLinkToken verifies a content link token and returns the object key
// it grants access to.
func ParseLinkToken(tokenString, issuer string, signKey []byte) (string, error) {
	claims := &models.LinkClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return signKey, nil
	}, jwt.WithIssuer(issuer), jwt.WithExpirationRequired(), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		return "", fmt.Errorf("error occurred validating link token: %w", err)
	}
	if claims.ObjectKey == "" {
		return "", errors.New("link token has no object key")
	}

	return claims.ObjectKey, nil
}
