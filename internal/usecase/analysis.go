package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"spending-analyzer/internal/domain"
	"spending-analyzer/internal/logger"
)

// AnalysisUseCase orchestrates one statement analysis.
type AnalysisUseCase struct {
	repo       StatementRepository
	classifier *Classifier
}

// NewAnalysisUseCase creates a new instance of the usecase.
func NewAnalysisUseCase(repo StatementRepository, classifier *Classifier) *AnalysisUseCase {
	return &AnalysisUseCase{repo: repo, classifier: classifier}
}

// Analyze reads the statement at path and builds its spending report.
// The whole pipeline runs before anything is returned; a read failure aborts
// the run and no report is produced.
func (uc *AnalysisUseCase) Analyze(ctx context.Context, path string) (*domain.SpendingReport, error) {
	log := logger.FromContext(ctx).With().Str("statement", path).Logger()

	// Step 1: Data Ingestion
	records, err := uc.repo.GetRecords(ctx, path)
	if err != nil {
		if !errors.Is(err, domain.ErrSourceRead) {
			err = fmt.Errorf("%w: %w", domain.ErrSourceRead, err)
		}
		return nil, fmt.Errorf("could not get statement records: %w", err)
	}
	log.Debug().Int("records", len(records)).Msg("statement loaded")

	// Step 2: Classification and aggregation
	agg := NewAggregator(uc.classifier)
	for i, rec := range records {
		if err := agg.Add(rec); err != nil {
			log.Debug().Err(err).Int("row", i+1).Msg("row dropped")
		}
	}

	// Step 3: Report
	report := BuildReport(agg)
	log.Info().
		Int("rows", report.Summary.RowsRead).
		Int("categorised", report.Summary.Categorised).
		Int("excluded", report.Summary.Excluded).
		Int("dropped", report.Summary.DroppedMissing+report.Summary.DroppedUnparseable).
		Float64("overall_total", report.OverallTotal).
		Msg("statement analysed")

	return report, nil
}

// Session keeps the report of the most recent successful upload.
// Each upload starts from scratch; a failed upload leaves the previous
// report in place.
type Session struct {
	uc *AnalysisUseCase

	mu      sync.RWMutex
	current *domain.SpendingReport
}

// NewSession creates a session with no report yet.
func NewSession(uc *AnalysisUseCase) *Session {
	return &Session{uc: uc}
}

// Upload analyses the statement and publishes its report on success.
func (s *Session) Upload(ctx context.Context, path string) (*domain.SpendingReport, error) {
	report, err := s.uc.Analyze(ctx, path)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = report
	s.mu.Unlock()
	return report, nil
}

// Current returns the published report, or nil before the first successful upload.
func (s *Session) Current() *domain.SpendingReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
