package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/quarantine-vault/internal/logger"
	"github.com/MKhiriev/quarantine-vault/internal/store"
)

// contentLinkService resolves links signed by the fs object backend. The
// bytes it returns are the stored ciphertext blob.
type contentLinkService struct {
	resolver store.SignedTokenResolver
	objects  store.ObjectStorage
	logger   *logger.Logger
}

// NewContentLinkService returns a service that is disabled when resolver is
// nil, i.e. when the object backend serves its own links.
func NewContentLinkService(resolver store.SignedTokenResolver, objects store.ObjectStorage, logger *logger.Logger) ContentLinkService {
	return &contentLinkService{
		resolver: resolver,
		objects:  objects,
		logger:   logger,
	}
}

func (c *contentLinkService) Enabled() bool {
	return c.resolver != nil
}

func (c *contentLinkService) Resolve(ctx context.Context, token string) ([]byte, error) {
	if !c.Enabled() {
		return nil, ErrLinksNotServedLocally
	}

	key, err := c.resolver.ResolveSignedToken(token)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("rejected content link")
		return nil, ErrInvalidLinkToken
	}

	blob, err := c.objects.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("fetching linked object: %w", err)
	}

	return blob, nil
}
