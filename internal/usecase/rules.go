package usecase

import (
	"context"
	"fmt"

	"spending-analyzer/internal/domain"
)

// LoadClassifier builds a classifier from the rule table at path, or from the
// built-in table when path is empty.
func LoadClassifier(ctx context.Context, repo RuleRepository, path string) (*Classifier, error) {
	if path == "" {
		return NewClassifier(domain.DefaultRuleTable())
	}

	table, err := repo.GetRuleTable(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("could not get rule table: %w", err)
	}
	return NewClassifier(table)
}
