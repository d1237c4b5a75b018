package store

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/quarantine-vault/internal/logger"
	"github.com/MKhiriev/quarantine-vault/internal/utils"
	"github.com/MKhiriev/quarantine-vault/models"
)

// Blob gateway endpoints, relative to its base URL.
const (
	objectPath       = "/objects/{key}"
	objectDeletePath = "/objects/delete"
	objectSignPath   = "/objects/sign"
)

type deleteBatchRequest struct {
	Keys []string `json:"keys"`
}

type deleteBatchResponse struct {
	Deleted int `json:"deleted"`
}

type signRequest struct {
	Key        string `json:"key"`
	TTLSeconds int64  `json:"ttl_seconds"`
}

// objectHTTPStorage talks to a REST blob gateway. Signed links are issued
// by the gateway itself.
type objectHTTPStorage struct {
	client     *utils.HTTPClient
	batchLimit int
	logger     *logger.Logger
}

// NewObjectHTTPStorage returns an object store backed by the gateway at
// client's base URL.
func NewObjectHTTPStorage(client *utils.HTTPClient, batchDeleteLimit int, log *logger.Logger) ObjectStorage {
	return &objectHTTPStorage{
		client:     client,
		batchLimit: batchDeleteLimit,
		logger:     log,
	}
}

func (h *objectHTTPStorage) Put(ctx context.Context, key string, data []byte) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetRawPathParam("key", key).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(data).
		Put(objectPath)
	if err != nil {
		return fmt.Errorf("%w: put %s: %w", ErrObjectStorage, key, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: put %s: %s", ErrObjectStorage, key, resp.Status())
	}

	return nil
}

func (h *objectHTTPStorage) Get(ctx context.Context, key string) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetRawPathParam("key", key).
		Get(objectPath)
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %w", ErrObjectStorage, key, err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
	case resp.IsError():
		return nil, fmt.Errorf("%w: get %s: %s", ErrObjectStorage, key, resp.Status())
	}

	return resp.Body(), nil
}

func (h *objectHTTPStorage) Delete(ctx context.Context, key string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetRawPathParam("key", key).
		Delete(objectPath)
	if err != nil {
		return fmt.Errorf("%w: delete %s: %w", ErrObjectStorage, key, err)
	}
	if resp.IsError() && resp.StatusCode() != http.StatusNotFound {
		return fmt.Errorf("%w: delete %s: %s", ErrObjectStorage, key, resp.Status())
	}

	return nil
}

// DeleteBatch sends one gateway request per chunk and stops at the first
// failing chunk.
func (h *objectHTTPStorage) DeleteBatch(ctx context.Context, keys []string) (int, error) {
	log := logger.FromContext(ctx)

	deleted := 0
	for _, chunk := range chunkKeys(keys, h.batchLimit) {
		var result deleteBatchResponse
		resp, err := h.client.R().
			SetContext(ctx).
			SetBody(deleteBatchRequest{Keys: chunk}).
			SetResult(&result).
			ForceContentType("application/json").
			Post(objectDeletePath)
		if err != nil {
			log.Err(err).Str("func", "objectHTTPStorage.DeleteBatch").Int("chunk", len(chunk)).Msg("batch delete request failed")
			return deleted, fmt.Errorf("%w: delete batch: %w", ErrObjectStorage, err)
		}
		if resp.IsError() {
			log.Error().Str("func", "objectHTTPStorage.DeleteBatch").Str("status", resp.Status()).Msg("batch delete rejected")
			return deleted, fmt.Errorf("%w: delete batch: %s", ErrObjectStorage, resp.Status())
		}
		deleted += result.Deleted
	}

	return deleted, nil
}

func (h *objectHTTPStorage) SignedURL(ctx context.Context, key string, ttl time.Duration) (models.SignedLink, error) {
	var link models.SignedLink
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(signRequest{Key: key, TTLSeconds: int64(ttl / time.Second)}).
		SetResult(&link).
		ForceContentType("application/json").
		Post(objectSignPath)
	if err != nil {
		return models.SignedLink{}, fmt.Errorf("%w: sign %s: %w", ErrObjectStorage, key, err)
	}
	if resp.IsError() {
		return models.SignedLink{}, fmt.Errorf("%w: sign %s: %s", ErrObjectStorage, key, resp.Status())
	}
	if link.URL == "" {
		return models.SignedLink{}, fmt.Errorf("%w: sign %s: empty url in response", ErrObjectStorage, key)
	}

	return link, nil
}
