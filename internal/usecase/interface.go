package usecase

import (
	"context"

	"spending-analyzer/internal/domain"
)

// StatementRepository defines the interface for fetching statement rows.
// The usecase layer depends on this interface, not on a concrete file format.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go
type StatementRepository interface {
	GetRecords(ctx context.Context, path string) ([]domain.Record, error)
}

// RuleRepository loads a classification table from an external source.
type RuleRepository interface {
	GetRuleTable(ctx context.Context, path string) (domain.RuleTable, error)
}
