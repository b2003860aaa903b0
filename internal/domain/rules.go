package domain

import (
	"fmt"
	"strings"
)

// RuleKind tells the classifier which tier a rule belongs to.
// Tiers are evaluated exclusion first, then subcategory, then flat.
type RuleKind string

const (
	RuleExclusion    RuleKind = "EXCLUSION"
	RuleSubcategory  RuleKind = "SUBCATEGORY"
	RuleFlatCategory RuleKind = "FLAT"
)

// Rule is one entry of the classification table. A merchant matches a rule
// when its upper-cased text contains any of the keywords.
type Rule struct {
	Kind        RuleKind `json:"kind"`
	Category    string   `json:"category,omitempty"`
	Subcategory string   `json:"subcategory,omitempty"`
	Keywords    []string `json:"keywords"`
}

// RuleTable is an ordered list of rules. Within a tier, earlier rules win.
type RuleTable []Rule

// Normalize returns a copy of the table with every keyword upper-cased.
func (t RuleTable) Normalize() RuleTable {
	out := make(RuleTable, len(t))
	for i, r := range t {
		keywords := make([]string, len(r.Keywords))
		for j, k := range r.Keywords {
			keywords[j] = strings.ToUpper(k)
		}
		r.Keywords = keywords
		out[i] = r
	}
	return out
}

// Validate checks that every rule can be evaluated and that no category is
// declared both with and without subcategories. MISCELLANEOUS is always flat.
func (t RuleTable) Validate() error {
	shapes := make(map[string]RuleKind)
	for i, r := range t {
		if len(r.Keywords) == 0 {
			return fmt.Errorf("%w: rule %d has no keywords", ErrInvalidRule, i)
		}
		for _, k := range r.Keywords {
			if strings.TrimSpace(k) == "" {
				return fmt.Errorf("%w: rule %d has a blank keyword", ErrInvalidRule, i)
			}
		}

		switch r.Kind {
		case RuleExclusion:
			continue
		case RuleSubcategory:
			if r.Subcategory == "" {
				return fmt.Errorf("%w: rule %d for %q has no subcategory", ErrInvalidRule, i, r.Category)
			}
			// Unmatched merchants land in this category as a flat breakdown.
			if r.Category == MiscellaneousCategory {
				return fmt.Errorf("%w: rule %d: %q cannot have subcategories", ErrInvalidRule, i, MiscellaneousCategory)
			}
		case RuleFlatCategory:
			if r.Subcategory != "" {
				return fmt.Errorf("%w: flat rule %d for %q has subcategory %q", ErrInvalidRule, i, r.Category, r.Subcategory)
			}
		default:
			return fmt.Errorf("%w: rule %d has unknown kind %q", ErrInvalidRule, i, r.Kind)
		}

		if r.Category == "" {
			return fmt.Errorf("%w: rule %d has no category", ErrInvalidRule, i)
		}
		if kind, seen := shapes[r.Category]; seen && kind != r.Kind {
			return fmt.Errorf("%w: category %q is declared both flat and with subcategories", ErrInvalidRule, r.Category)
		}
		shapes[r.Category] = r.Kind
	}
	return nil
}

// DefaultRuleTable returns the built-in classification rules.
func DefaultRuleTable() RuleTable {
	return RuleTable{
		{Kind: RuleExclusion, Keywords: []string{"PAYMENT RECEIVED", "THANK YOU"}},

		{Kind: RuleSubcategory, Category: "GROCERY", Subcategory: "Tesco", Keywords: []string{"TESCO"}},
		{Kind: RuleSubcategory, Category: "GROCERY", Subcategory: "Sainsburys", Keywords: []string{"SAINSBURY"}},
		{Kind: RuleSubcategory, Category: "GROCERY", Subcategory: "Asda", Keywords: []string{"ASDA"}},
		{Kind: RuleSubcategory, Category: "GROCERY", Subcategory: "Lidl", Keywords: []string{"LIDL"}},
		{Kind: RuleSubcategory, Category: "GROCERY", Subcategory: "Aldi", Keywords: []string{"ALDI"}},
		{Kind: RuleSubcategory, Category: "GROCERY", Subcategory: "Morrisons", Keywords: []string{"MORRISONS", "MORRISON"}},
		{Kind: RuleSubcategory, Category: "GROCERY", Subcategory: "Waitrose", Keywords: []string{"WAITROSE"}},
		{Kind: RuleSubcategory, Category: "GROCERY", Subcategory: "Marks & Spencer", Keywords: []string{"M&S", "MARKS & SPENCER", "MARKS AND SPENCER"}},
		{Kind: RuleSubcategory, Category: "GROCERY", Subcategory: "Co-op", Keywords: []string{"CO-OP", "COOP", "CO OP"}},
		{Kind: RuleSubcategory, Category: "GROCERY", Subcategory: "Costco", Keywords: []string{"COSTCO"}},
		{Kind: RuleSubcategory, Category: "GROCERY", Subcategory: "Iceland", Keywords: []string{"ICELAND"}},

		{Kind: RuleSubcategory, Category: "UTILITIES", Subcategory: "Energy", Keywords: []string{"OCTOPUS", "BRITISH GAS", "EON", "EDF", "BULB", "OVO"}},
		{Kind: RuleSubcategory, Category: "UTILITIES", Subcategory: "Internet", Keywords: []string{"BT", "VIRGIN MEDIA", "SKY", "TALKTALK", "PLUSNET"}},
		{Kind: RuleSubcategory, Category: "UTILITIES", Subcategory: "Water", Keywords: []string{"THAMES WATER", "SEVERN TRENT", "UNITED UTILITIES", "YORKSHIRE WATER"}},

		{Kind: RuleFlatCategory, Category: "AMAZON", Keywords: []string{"AMAZON", "AMZN"}},
		{Kind: RuleFlatCategory, Category: "PAYPAL", Keywords: []string{"PAYPAL"}},
		{Kind: RuleFlatCategory, Category: "SUBSCRIPTIONS", Keywords: []string{"NETFLIX", "AUDIBLE"}},
		{Kind: RuleFlatCategory, Category: "GOOGLE", Keywords: []string{"GOOGLE"}},
	}
}
