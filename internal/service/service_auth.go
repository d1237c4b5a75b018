package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/quarantine-vault/internal/config"
	"github.com/MKhiriev/quarantine-vault/internal/logger"
	"github.com/MKhiriev/quarantine-vault/internal/utils"
	"github.com/MKhiriev/quarantine-vault/models"
)

// authService is the concrete implementation of AuthService.
// Moderator tokens are HS256 JWTs whose subject is the acting moderator or
// bot. Who may hold a token is decided by whoever mints it.
type authService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService from the token settings in cfg.
// With an empty TokenSignKey the service reports itself disabled.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}

func (a *authService) Enabled() bool {
	return a.tokenSignKey != ""
}

// CreateToken issues a signed JWT for actor that expires after duration.
func (a *authService) CreateToken(ctx context.Context, actor string, duration time.Duration) (models.Token, error) {
	if !a.Enabled() {
		return models.Token{}, ErrAuthDisabled
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, actor, duration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("creating token: %w", err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if !a.Enabled() {
		return models.Token{}, ErrAuthDisabled
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("rejected moderator token")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
