package domain

import (
	"encoding/json"
	"sort"
)

// NamedTotal is one line of a sorted totals listing.
type NamedTotal struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

// DetailKind is the shape of a category's detail tree.
type DetailKind string

const (
	// DetailFlat maps merchant strings straight to amounts.
	DetailFlat DetailKind = "FLAT"
	// DetailNested groups merchants under subcategories.
	DetailNested DetailKind = "NESTED"
)

// SubcategoryDetail holds the running total of a subcategory and its merchants.
type SubcategoryDetail struct {
	Total     float64            `json:"total"`
	Merchants map[string]float64 `json:"merchants"`
}

// CategoryDetail is the breakdown of a single category. Only the map that
// matches Kind is populated; the kind is fixed when the category is created.
type CategoryDetail struct {
	Kind          DetailKind
	Merchants     map[string]float64
	Subcategories map[string]*SubcategoryDetail
}

// NewFlatDetail returns an empty merchant-level breakdown.
func NewFlatDetail() *CategoryDetail {
	return &CategoryDetail{Kind: DetailFlat, Merchants: make(map[string]float64)}
}

// NewNestedDetail returns an empty subcategory-level breakdown.
func NewNestedDetail() *CategoryDetail {
	return &CategoryDetail{Kind: DetailNested, Subcategories: make(map[string]*SubcategoryDetail)}
}

// SortedMerchants lists a flat detail's merchants ordered by name.
func (d *CategoryDetail) SortedMerchants() []NamedTotal {
	return SortedTotals(d.Merchants)
}

// SortedSubcategories lists a nested detail's subcategories ordered by name.
func (d *CategoryDetail) SortedSubcategories() []string {
	names := make([]string, 0, len(d.Subcategories))
	for name := range d.Subcategories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MarshalJSON encodes the detail as the plain map its kind carries.
func (d *CategoryDetail) MarshalJSON() ([]byte, error) {
	if d.Kind == DetailNested {
		return json.Marshal(d.Subcategories)
	}
	return json.Marshal(d.Merchants)
}

// SortedMerchants lists the subcategory's merchants ordered by name.
func (s *SubcategoryDetail) SortedMerchants() []NamedTotal {
	return SortedTotals(s.Merchants)
}

// Summary counts what happened to the rows of one statement.
type Summary struct {
	RowsRead           int `json:"rows_read"`
	DroppedMissing     int `json:"dropped_missing_field"`
	DroppedUnparseable int `json:"dropped_unparseable_amount"`
	Excluded           int `json:"excluded"`
	Categorised        int `json:"categorised"`
}

// SpendingReport is the snapshot produced from one statement.
type SpendingReport struct {
	Summary        Summary                    `json:"summary"`
	ExactTotals    []NamedTotal               `json:"exact_totals"`
	CategoryTotals []NamedTotal               `json:"category_totals"`
	Details        map[string]*CategoryDetail `json:"category_details"`
	OverallTotal   float64                    `json:"overall_total"`
}

// Detail returns the breakdown for a category, or nil if the category has none.
func (r *SpendingReport) Detail(category string) *CategoryDetail {
	return r.Details[category]
}

// SortedTotals turns a name→amount map into a listing ordered by name,
// compared byte-wise.
func SortedTotals(m map[string]float64) []NamedTotal {
	out := make([]NamedTotal, 0, len(m))
	for name, total := range m {
		out = append(out, NamedTotal{Name: name, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
