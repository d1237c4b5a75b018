// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/quarantine-vault/internal/logger"
	"github.com/MKhiriev/quarantine-vault/internal/utils"
	"github.com/MKhiriev/quarantine-vault/models"
)

// ContentPath is the route prefix under which the application serves the
// objects behind fs signed links.
const ContentPath = "/api/content/"

// FileStorageOptions configures [NewObjectFileStorage].
type FileStorageOptions struct {
	// Root is the directory holding all objects.
	Root string
	// BatchDeleteLimit is the chunk size of DeleteBatch.
	BatchDeleteLimit int
	// PublicURL is the externally reachable base URL of this service.
	PublicURL string
	// Issuer is the "iss" claim of link tokens.
	Issuer string
	// LinkKey signs link tokens.
	LinkKey []byte
}

// objectFileStorage keeps objects as files below a root directory. Object
// keys are slash-separated relative paths.
type objectFileStorage struct {
	root       string
	batchLimit int
	publicURL  string
	issuer     string
	linkKey    []byte
	logger     *logger.Logger
}

// NewObjectFileStorage creates the root directory if needed and returns an
// fs-backed object store whose signed links point at [ContentPath]. The
// returned store also implements [SignedTokenResolver].
func NewObjectFileStorage(opts FileStorageOptions, log *logger.Logger) (ObjectStorage, error) {
	if opts.Root == "" {
		return nil, fmt.Errorf("%w: empty storage root", ErrObjectStorage)
	}
	if len(opts.LinkKey) == 0 {
		return nil, fmt.Errorf("%w: empty link sign key", ErrObjectStorage)
	}
	if err := os.MkdirAll(opts.Root, 0o700); err != nil {
		return nil, fmt.Errorf("%w: creating root: %w", ErrObjectStorage, err)
	}

	return &objectFileStorage{
		root:       opts.Root,
		batchLimit: opts.BatchDeleteLimit,
		publicURL:  strings.TrimRight(opts.PublicURL, "/"),
		issuer:     opts.Issuer,
		linkKey:    opts.LinkKey,
		logger:     log,
	}, nil
}

func (f *objectFileStorage) Put(ctx context.Context, key string, data []byte) error {
	path, err := f.pathFor(key)
	if err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrObjectStorage, err)
	}

	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("%w: put %s: %w", ErrObjectStorage, key, err)
	}

	// write to a temp file in the same directory, then rename over the target
	tmp, err := os.CreateTemp(dir, ".put-*")
	if err != nil {
		return fmt.Errorf("%w: put %s: %w", ErrObjectStorage, key, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: put %s: %w", ErrObjectStorage, key, err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: put %s: %w", ErrObjectStorage, key, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: put %s: %w", ErrObjectStorage, key, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: put %s: %w", ErrObjectStorage, key, err)
	}

	return nil
}

func (f *objectFileStorage) Get(ctx context.Context, key string) ([]byte, error) {
	path, err := f.pathFor(key)
	if err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrObjectStorage, err)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %w", ErrObjectStorage, key, err)
	}

	return data, nil
}

func (f *objectFileStorage) Delete(ctx context.Context, key string) error {
	_, err := f.delete(ctx, key)
	return err
}

func (f *objectFileStorage) DeleteBatch(ctx context.Context, keys []string) (int, error) {
	log := logger.FromContext(ctx)

	deleted := 0
	for _, chunk := range chunkKeys(keys, f.batchLimit) {
		for _, key := range chunk {
			removed, err := f.delete(ctx, key)
			if err != nil {
				log.Err(err).Str("func", "objectFileStorage.DeleteBatch").Int("deleted", deleted).Msg("batch delete interrupted")
				return deleted, err
			}
			if removed {
				deleted++
			}
		}
	}

	return deleted, nil
}

// SignedURL issues a link token for key. The object's existence is not
// checked.
func (f *objectFileStorage) SignedURL(ctx context.Context, key string, ttl time.Duration) (models.SignedLink, error) {
	if _, err := f.pathFor(key); err != nil {
		return models.SignedLink{}, err
	}

	expiresAt := time.Now().Add(ttl).UTC().Truncate(time.Second)
	token, err := utils.GenerateLinkToken(f.issuer, key, expiresAt, f.linkKey)
	if err != nil {
		return models.SignedLink{}, fmt.Errorf("%w: signing link: %w", ErrObjectStorage, err)
	}

	return models.SignedLink{
		URL:       f.publicURL + ContentPath + token,
		ExpiresAt: expiresAt,
	}, nil
}

func (f *objectFileStorage) ResolveSignedToken(token string) (string, error) {
	key, err := utils.ParseLinkToken(token, f.issuer, f.linkKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSignedToken, err)
	}
	return key, nil
}

// delete removes key and reports whether a file was actually removed.
func (f *objectFileStorage) delete(ctx context.Context, key string) (bool, error) {
	path, err := f.pathFor(key)
	if err != nil {
		return false, err
	}
	if err = ctx.Err(); err != nil {
		return false, fmt.Errorf("%w: %w", ErrObjectStorage, err)
	}

	err = os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: delete %s: %w", ErrObjectStorage, key, err)
	}
	return true, nil
}

// pathFor maps key to a file below root, rejecting keys that would escape it.
func (f *objectFileStorage) pathFor(key string) (string, error) {
	rel := filepath.FromSlash(key)
	if key == "" || strings.HasSuffix(key, "/") || !filepath.IsLocal(rel) {
		return "", fmt.Errorf("%w: %q", ErrInvalidObjectKey, key)
	}
	return filepath.Join(f.root, rel), nil
}
