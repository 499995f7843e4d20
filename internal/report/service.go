package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/eidsvold/fpl-motw/internal/domain"
	"github.com/eidsvold/fpl-motw/internal/logging"
	"github.com/eidsvold/fpl-motw/internal/metrics"
	"github.com/eidsvold/fpl-motw/internal/providers"
)

const defaultPipelineTimeout = 60 * time.Second

// Service orchestrates one report per call: fetch league data, aggregate
// per-period standings, resolve winners, serialize. Fail-fast with a single
// overall deadline; retries live inside the provider's transport, never
// here.
type Service struct {
	provider providers.LeagueProvider
	metrics  *metrics.Recorder
	logger   *slog.Logger
	timeout  time.Duration
}

// NewService builds a report service. A non-positive timeout falls back to
// the 60s default.
func NewService(provider providers.LeagueProvider, recorder *metrics.Recorder, logger *slog.Logger, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = defaultPipelineTimeout
	}
	return &Service{
		provider: provider,
		metrics:  recorder,
		logger:   logger,
		timeout:  timeout,
	}
}

// GenerateReport produces the downloadable manager-of-the-week file for a
// league. Nothing is persisted; every call rebuilds the report from fresh
// provider data (modulo the optional provider-side cache).
func (s *Service) GenerateReport(ctx context.Context, leagueID int) (domain.ReportFile, error) {
	if leagueID < 1 {
		return domain.ReportFile{}, errors.Mark(
			errors.Newf("league id must be a positive integer, got %d", leagueID),
			ErrInvalidInput,
		)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	file, periods, err := s.runPipeline(ctx, leagueID)
	err = s.translateDeadline(ctx, err)
	s.metrics.RecordReport(time.Since(start), periods, err)

	logger := logging.FromContext(ctx, s.logger)
	if err != nil {
		logging.Error(logger, "report generation failed", err,
			slog.Int(logging.FieldLeagueID, leagueID),
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		)
		return domain.ReportFile{}, err
	}

	logging.Info(logger, "report generated",
		slog.Int(logging.FieldLeagueID, leagueID),
		slog.Int(logging.FieldCount, periods),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return file, nil
}

func (s *Service) runPipeline(ctx context.Context, leagueID int) (domain.ReportFile, int, error) {
	logger := logging.FromContext(ctx, s.logger)

	s.logStage(logger, leagueID, "fetching")
	data, err := s.provider.FetchLeagueData(ctx, leagueID)
	if err != nil {
		return domain.ReportFile{}, 0, err
	}

	s.logStage(logger, leagueID, "aggregating")
	standings, err := aggregate(data.Entries, data.Records)
	if err != nil {
		return domain.ReportFile{}, 0, err
	}

	s.logStage(logger, leagueID, "resolving")
	results := resolve(standings)

	s.logStage(logger, leagueID, "serializing")
	file, err := serialize(domain.Report{League: data.League, Results: results})
	if err != nil {
		return domain.ReportFile{}, 0, err
	}

	return file, len(results), nil
}

// translateDeadline turns a deadline expiry into the pipeline's own timeout
// kind. Callers cancelling their request keep the plain context error.
func (s *Service) translateDeadline(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return errors.Mark(err, ErrTimeout)
	}
	return err
}

func (s *Service) logStage(logger *slog.Logger, leagueID int, stage string) {
	if logger != nil {
		logger.Debug("report pipeline stage",
			slog.Int(logging.FieldLeagueID, leagueID),
			slog.String(logging.FieldStage, stage),
		)
	}
}
