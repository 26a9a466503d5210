package seed

import (
	"context"

	"tillpoint/internal/model"

	"github.com/rs/zerolog"
)

// fallbackLoader implements a loader that tries S3 first, then the local
// seed file, then the built-in sample catalog.
type fallbackLoader struct {
	s3Loader   Loader
	fileLoader Loader
	s3Key      string
	logger     zerolog.Logger
}

// NewFallbackLoader creates a loader that tries S3 first, then the local
// file system, then the built-in sample catalog. If s3Loader is nil the S3
// step is skipped; if the file path given to Load is empty the file step is
// skipped. Load never fails: the built-in sample set is the final fallback.
func NewFallbackLoader(s3Loader, fileLoader Loader, s3Key string, logger zerolog.Logger) Loader {
	return &fallbackLoader{
		s3Loader:   s3Loader,
		fileLoader: fileLoader,
		s3Key:      s3Key,
		logger:     logger.With().Str("component", "fallback-loader").Logger(),
	}
}

// Load attempts the S3 object first, then the local seed file, then the
// built-in sample catalog. The filePath parameter names the local file; the
// S3 object key was fixed at construction.
func (l *fallbackLoader) Load(ctx context.Context, filePath string) ([]model.Product, error) {
	if l.s3Loader != nil {
		l.logger.Info().
			Str("s3_key", l.s3Key).
			Str("local_fallback", filePath).
			Msg("attempting to load seed from S3")

		rows, err := l.s3Loader.Load(ctx, l.s3Key)
		if err == nil {
			return rows, nil
		}

		l.logger.Warn().
			Err(err).
			Str("s3_key", l.s3Key).
			Msg("failed to load seed from S3, falling back to local sources")
	}

	if filePath != "" {
		rows, err := l.fileLoader.Load(ctx, filePath)
		if err == nil {
			return rows, nil
		}

		l.logger.Warn().
			Err(err).
			Str("file", filePath).
			Msg("failed to load seed file, falling back to built-in sample data")
	}

	l.logger.Info().Msg("using built-in sample catalog")
	return Builtin(), nil
}
