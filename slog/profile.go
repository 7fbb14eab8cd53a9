// Package slog provides logging decorators for service interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/shopsight"
)

// Ensure LoggingProfileService implements shopsight.ProfileService.
var _ shopsight.ProfileService = (*LoggingProfileService)(nil)

// LoggingProfileService wraps a ProfileService with request-level logging.
type LoggingProfileService struct {
	next   shopsight.ProfileService
	logger *slog.Logger
}

// NewLoggingProfileService creates a new LoggingProfileService.
func NewLoggingProfileService(next shopsight.ProfileService, logger *slog.Logger) *LoggingProfileService {
	return &LoggingProfileService{next: next, logger: logger}
}

// Extract delegates to the wrapped service and logs the operation.
func (s *LoggingProfileService) Extract(ctx context.Context, rawURL string, opts shopsight.ExtractOptions) (profile *shopsight.StoreProfile, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", rawURL,
			"duration", time.Since(begin),
			"err", err,
		}
		if profile != nil {
			attrs = append(attrs,
				"extraction_id", profile.Meta.ExtractionID,
				"products", profile.Products.TotalCount,
				"faqs", len(profile.FAQs),
				"warnings", len(profile.Meta.Warnings),
			)
		}
		s.logger.Info("profile extraction", attrs...)
	}(time.Now())
	return s.next.Extract(ctx, rawURL, opts)
}
