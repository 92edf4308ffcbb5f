package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"marketofmanycards/market-api/pkg/validators"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

var (
	ErrSeedNotJSON   = errors.New("seed file is not JSON")
	ErrSeedBadS3Path = errors.New("seed path must look like s3://bucket/key")
)

// ObjectDownloader fetches a whole object from a bucket.
type ObjectDownloader interface {
	Download(ctx context.Context, bucket, key string) ([]byte, error)
}

// LoadSeed reads a JSON array of cards from a local file or an s3://bucket/key
// path and bulk creates them. Cards that fail are logged and skipped.
func LoadSeed(ctx context.Context, catalog *CatalogService, objects ObjectDownloader, path string) (*BulkResult, error) {
	data, err := readSeed(ctx, objects, path)
	if err != nil {
		return nil, err
	}

	if !mimetype.Detect(data).Is("application/json") {
		return nil, ErrSeedNotJSON
	}

	var cards []validators.CardInput
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("failed to decode seed file, %w", err)
	}

	res := catalog.BulkCreate(ctx, cards)

	for _, f := range res.Failed {
		zap.L().Warn("Skipped seed card", zap.Int("index", f.Index), zap.String("reason", f.Error))
	}

	zap.L().Info("Catalog seeded",
		zap.String("path", path),
		zap.Int("created", len(res.Created)),
		zap.Int("failed", len(res.Failed)),
	)

	return res, nil
}

func readSeed(ctx context.Context, objects ObjectDownloader, path string) ([]byte, error) {
	rest, ok := strings.CutPrefix(path, "s3://")
	if !ok {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file, %w", err)
		}

		return data, nil
	}

	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return nil, ErrSeedBadS3Path
	}

	if objects == nil {
		return nil, errors.New("no s3 client configured")
	}

	return objects.Download(ctx, bucket, key)
}
