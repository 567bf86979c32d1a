package reports

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fdg312/health-tracker/internal/blob"
	"github.com/fdg312/health-tracker/internal/calendar"
	"github.com/fdg312/health-tracker/internal/state"
)

const DefaultDays = 7

var ErrUploadUnavailable = errors.New("object storage is not configured")

// Source — то, из чего строится отчёт (реализуется *tracker.Tracker)
type Source interface {
	Goals() state.Goals
	RecentDays(n int) []*state.DaySnapshot
	Week() *state.Week
}

type Logger interface {
	Printf(format string, v ...any)
}

// Service handles reports business logic
type Service struct {
	source     Source
	generator  *Generator
	blobStore  blob.Store
	clock      calendar.Clock
	maxDays    int
	presignTTL int
	logger     Logger
}

// NewService creates a new reports service. blobStore may be nil (local mode).
func NewService(source Source, blobStore blob.Store, clock calendar.Clock, maxDays, presignTTL int, logger Logger) *Service {
	if clock == nil {
		clock = calendar.SystemClock{}
	}
	return &Service{
		source:     source,
		generator:  NewGenerator(),
		blobStore:  blobStore,
		clock:      clock,
		maxDays:    maxDays,
		presignTTL: presignTTL,
		logger:     logger,
	}
}

// CreateReport builds a report over the last req.Days days and optionally
// uploads it, returning a presigned download URL.
func (s *Service) CreateReport(ctx context.Context, req Request) (*Report, error) {
	if req.Format != FormatPDF && req.Format != FormatCSV {
		return nil, ErrInvalidFormat
	}
	days := req.Days
	if days <= 0 {
		days = DefaultDays
	}
	if s.maxDays > 0 && days > s.maxDays {
		return nil, ErrRangeTooLarge
	}
	if req.Upload && s.blobStore == nil {
		return nil, ErrUploadUnavailable
	}

	in := Input{
		Goals:       s.source.Goals(),
		Days:        s.source.RecentDays(days),
		Week:        s.source.Week(),
		GeneratedAt: s.clock.Now(),
	}
	data, err := s.generator.Generate(req.Format, in)
	if err != nil {
		return nil, fmt.Errorf("failed to generate report: %w", err)
	}

	from, to := period(in.Days)
	report := &Report{
		Format:    req.Format,
		Filename:  fmt.Sprintf("health-report_%s_%s.%s", from, to, req.Format),
		From:      from,
		To:        to,
		Data:      data,
		SizeBytes: int64(len(data)),
	}
	if !req.Upload {
		return report, nil
	}

	objectKey := fmt.Sprintf("reports/%s_%s_%s.%s", from, to, uuid.NewString(), req.Format)
	if _, err := s.blobStore.PutObject(ctx, objectKey, data, contentType(req.Format)); err != nil {
		return nil, fmt.Errorf("failed to upload report: %w", err)
	}
	url, err := s.blobStore.PresignGet(ctx, objectKey, s.presignTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	report.ObjectKey = objectKey
	report.DownloadURL = url
	s.logf("INFO reports: uploaded key=%s size=%d", objectKey, report.SizeBytes)
	return report, nil
}

// DeleteReport removes an uploaded report object.
func (s *Service) DeleteReport(ctx context.Context, objectKey string) error {
	if s.blobStore == nil {
		return ErrUploadUnavailable
	}
	return s.blobStore.DeleteObject(ctx, objectKey)
}

func (s *Service) logf(format string, v ...any) {
	if s.logger == nil {
		return
	}
	s.logger.Printf(format, v...)
}
