package usecase

import (
	"fmt"
	"strings"

	"spending-analyzer/internal/domain"
)

// Classifier maps a merchant string to a classification using a rule table.
// It is immutable after construction and safe for concurrent use.
type Classifier struct {
	exclusions    []domain.Rule
	subcategories []domain.Rule
	flat          []domain.Rule
}

// NewClassifier validates the table and splits it into evaluation tiers,
// keeping the table order inside each tier.
func NewClassifier(table domain.RuleTable) (*Classifier, error) {
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("could not build classifier: %w", err)
	}

	c := &Classifier{}
	for _, rule := range table.Normalize() {
		switch rule.Kind {
		case domain.RuleExclusion:
			c.exclusions = append(c.exclusions, rule)
		case domain.RuleSubcategory:
			c.subcategories = append(c.subcategories, rule)
		case domain.RuleFlatCategory:
			c.flat = append(c.flat, rule)
		}
	}
	return c, nil
}

// IsExcluded reports whether the merchant is a non-spend record.
func (c *Classifier) IsExcluded(merchant string) bool {
	_, ok := firstMatch(c.exclusions, strings.ToUpper(merchant))
	return ok
}

// Match looks the merchant up in the subcategory tier, then the flat tier.
// It ignores exclusion rules.
func (c *Classifier) Match(merchant string) domain.Classification {
	return c.match(strings.ToUpper(merchant))
}

// Classify runs all tiers: exclusion, subcategory, flat.
func (c *Classifier) Classify(merchant string) domain.Classification {
	upper := strings.ToUpper(merchant)
	if _, ok := firstMatch(c.exclusions, upper); ok {
		return domain.Classification{Outcome: domain.OutcomeExcluded}
	}
	return c.match(upper)
}

func (c *Classifier) match(upper string) domain.Classification {
	if rule, ok := firstMatch(c.subcategories, upper); ok {
		return domain.Classification{Outcome: domain.OutcomeMatched, Category: rule.Category, Subcategory: rule.Subcategory}
	}
	if rule, ok := firstMatch(c.flat, upper); ok {
		return domain.Classification{Outcome: domain.OutcomeMatched, Category: rule.Category}
	}
	return domain.Classification{Outcome: domain.OutcomeUnmatched}
}

func firstMatch(rules []domain.Rule, upper string) (domain.Rule, bool) {
	for _, rule := range rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(upper, keyword) {
				return rule, true
			}
		}
	}
	return domain.Rule{}, false
}
