package blob

import (
	"context"
	"fmt"
	"strings"

	appcfg "github.com/fdg312/health-tracker/internal/config"
)

const (
	ModeNone = "none"
	ModeS3   = "s3"
	ModeAuto = "auto"
)

type Logger interface {
	Printf(format string, v ...any)
}

// NewBlobStore builds a blob store using mode none|s3|auto.
// none and auto without S3 config return a nil store and ModeNone.
func NewBlobStore(ctx context.Context, cfg appcfg.S3Config, mode string, logger Logger) (Store, string, error) {
	mode = strings.ToLower(strings.TrimSpace(mode))
	if mode == "" {
		mode = ModeNone
	}

	switch mode {
	case ModeNone:
		logf(logger, "INFO blob: mode=none (forced)")
		return nil, ModeNone, nil

	case ModeAuto:
		if !cfg.IsConfigured() {
			level, code, msg := cfg.Diagnostics()
			logf(logger, "%s blob.s3: code=%s %s", level, code, msg)
			logf(logger, "INFO blob.s3: %s", cfg.DiagnosticsSummary())
			logf(logger, "INFO blob: mode=none (auto, S3 not configured)")
			return nil, ModeNone, nil
		}

		logf(logger, "INFO blob.s3: code=s3_ready %s", cfg.DiagnosticsSummary())
		store, err := NewS3Store(ctx, cfg.Endpoint, cfg.Region, cfg.Bucket, cfg.AccessKeyID, cfg.SecretAccessKey)
		if err != nil {
			logf(logger, "WARN blob.s3: init_failed=%q, fallback=none", err.Error())
			return nil, ModeNone, nil
		}

		logf(logger, "INFO blob: mode=s3 (auto, configured)")
		return store, ModeS3, nil

	case ModeS3:
		if !cfg.IsConfigured() {
			missing := cfg.MissingRequired()
			logf(logger, "FATAL blob.s3: code=s3_config_incomplete missing=%v", missing)
			logf(logger, "FATAL blob.s3: %s", cfg.DiagnosticsSummary())
			return nil, "", fmt.Errorf("S3 requested but missing required config: %s", strings.Join(missing, ", "))
		}

		logf(logger, "INFO blob.s3: code=s3_ready %s", cfg.DiagnosticsSummary())
		store, err := NewS3Store(ctx, cfg.Endpoint, cfg.Region, cfg.Bucket, cfg.AccessKeyID, cfg.SecretAccessKey)
		if err != nil {
			logf(logger, "FATAL blob.s3: init_failed=%v", err)
			return nil, "", fmt.Errorf("S3 init failed: %w", err)
		}

		logf(logger, "INFO blob: mode=s3 (forced)")
		return store, ModeS3, nil

	default:
		return nil, "", fmt.Errorf("unsupported blob mode: %s", mode)
	}
}

func logf(logger Logger, format string, v ...any) {
	if logger == nil {
		return
	}
	logger.Printf(format, v...)
}
