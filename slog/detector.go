package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/shopsight"
)

// Ensure LoggingDetector implements shopsight.Detector.
var _ shopsight.Detector = (*LoggingDetector)(nil)

// LoggingDetector wraps a Detector with debug logging.
type LoggingDetector struct {
	next   shopsight.Detector
	logger *slog.Logger
}

// NewLoggingDetector creates a new LoggingDetector.
func NewLoggingDetector(next shopsight.Detector, logger *slog.Logger) *LoggingDetector {
	return &LoggingDetector{next: next, logger: logger}
}

// Validate delegates to the wrapped detector and logs the operation.
func (d *LoggingDetector) Validate(ctx context.Context, rawURL string) (normalized string, err error) {
	defer func(begin time.Time) {
		d.logger.Debug("store detection",
			"url", rawURL,
			"normalized", normalized,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Validate(ctx, rawURL)
}
