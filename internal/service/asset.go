package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dpatel-fit/smart-health-advisor/backend/config"
	"github.com/dpatel-fit/smart-health-advisor/backend/internal/catalog"
)

var ErrAssetStorageUnconfigured = errors.New("asset storage not configured")

// assetURLTTL is how long a presigned animation URL stays valid.
const assetURLTTL = 15 * time.Minute

// AssetService resolves exercise animation references (.glb object
// keys) to presigned S3 URLs. The assets themselves are opaque to the
// engine.
type AssetService struct {
	s3      *config.S3Config
	catalog *catalog.Catalog
}

func NewAssetService(s3 *config.S3Config, cat *catalog.Catalog) *AssetService {
	return &AssetService{s3: s3, catalog: cat}
}

// AnimationURL returns a time-limited URL for the named exercise's
// animation asset. Exercises without an animation reference resolve to
// an empty URL, which is not an error.
func (s *AssetService) AnimationURL(ctx context.Context, exerciseName string) (string, error) {
	ex, ok := s.catalog.Exercise(exerciseName)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrExerciseNotFound, exerciseName)
	}
	if ex.Animation == "" {
		return "", nil
	}
	if s.s3 == nil {
		return "", ErrAssetStorageUnconfigured
	}
	url, err := s.s3.GeneratePresignedURL(ctx, ex.Animation, assetURLTTL)
	if err != nil {
		return "", fmt.Errorf("failed to presign %q: %w", ex.Animation, err)
	}
	return url, nil
}
