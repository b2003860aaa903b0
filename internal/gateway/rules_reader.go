package gateway

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"spending-analyzer/internal/domain"
)

// rulesFile is the on-disk layout of a rule table. Lists keep their order,
// which is the order rules are evaluated in.
//
//	exclude: [PAYMENT RECEIVED, THANK YOU]
//	categories:
//	  - name: GROCERY
//	    subcategories:
//	      - name: Tesco
//	        keywords: [TESCO]
//	  - name: AMAZON
//	    keywords: [AMAZON, AMZN]
type rulesFile struct {
	Exclude    []string       `yaml:"exclude"`
	Categories []categoryFile `yaml:"categories"`
}

type categoryFile struct {
	Name          string            `yaml:"name"`
	Keywords      []string          `yaml:"keywords"`
	Subcategories []subcategoryFile `yaml:"subcategories"`
}

type subcategoryFile struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// YAMLRuleRepository implements the RuleRepository interface for YAML files.
type YAMLRuleRepository struct{}

// NewYAMLRuleRepository creates a new repository instance.
func NewYAMLRuleRepository() *YAMLRuleRepository {
	return &YAMLRuleRepository{}
}

// GetRuleTable reads the rule table stored at path.
func (r *YAMLRuleRepository) GetRuleTable(ctx context.Context, path string) (domain.RuleTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rules file %s: %w", path, err)
	}
	defer file.Close()

	return r.ReadRuleTable(file)
}

// ReadRuleTable decodes a rule table from r. Subcategory rules of all
// categories are placed ahead of the flat ones, matching evaluation order.
func (r *YAMLRuleRepository) ReadRuleTable(in io.Reader) (domain.RuleTable, error) {
	var doc rulesFile
	decoder := yaml.NewDecoder(in)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: failed to decode rules: %w", domain.ErrInvalidRule, err)
	}

	var table, flat domain.RuleTable
	if len(doc.Exclude) > 0 {
		table = append(table, domain.Rule{Kind: domain.RuleExclusion, Keywords: doc.Exclude})
	}
	for _, c := range doc.Categories {
		if len(c.Subcategories) > 0 && len(c.Keywords) > 0 {
			return nil, fmt.Errorf("%w: category %q has both keywords and subcategories", domain.ErrInvalidRule, c.Name)
		}
		if len(c.Subcategories) == 0 {
			flat = append(flat, domain.Rule{Kind: domain.RuleFlatCategory, Category: c.Name, Keywords: c.Keywords})
			continue
		}
		for _, s := range c.Subcategories {
			table = append(table, domain.Rule{
				Kind:        domain.RuleSubcategory,
				Category:    c.Name,
				Subcategory: s.Name,
				Keywords:    s.Keywords,
			})
		}
	}
	table = append(table, flat...)

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}
