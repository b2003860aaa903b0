package usecase

import (
	"fmt"

	"spending-analyzer/internal/domain"
)

// Aggregator folds statement records into exact, category and detail totals.
// A fresh Aggregator is used per statement; it is not safe for concurrent use.
type Aggregator struct {
	classifier *Classifier

	exact      map[string]float64
	categories map[string]float64
	details    map[string]*domain.CategoryDetail
	summary    domain.Summary
}

// NewAggregator creates an empty aggregator backed by the given classifier.
func NewAggregator(classifier *Classifier) *Aggregator {
	return &Aggregator{
		classifier: classifier,
		exact:      make(map[string]float64),
		categories: make(map[string]float64),
		details:    make(map[string]*domain.CategoryDetail),
	}
}

// Add folds one record in. A returned error means the record was dropped
// and left every total untouched; callers are expected to carry on.
func (a *Aggregator) Add(rec domain.Record) error {
	a.summary.RowsRead++

	if !rec.HasRequiredFields() {
		a.summary.DroppedMissing++
		return fmt.Errorf("%w: merchant=%q amount=%q", domain.ErrMissingField, rec.Merchant, rec.RawAmount)
	}

	amount, err := ParseAmount(rec.RawAmount)
	if err != nil {
		a.summary.DroppedUnparseable++
		return err
	}

	// Exact totals list every transaction, excluded ones included.
	a.exact[rec.Merchant] += amount

	if a.classifier.IsExcluded(rec.Merchant) {
		a.summary.Excluded++
		return nil
	}

	category, subcategory, _ := a.classifier.Match(rec.Merchant).Resolve()

	a.categories[category] += amount
	a.addDetail(category, subcategory, rec.Merchant, amount)
	a.summary.Categorised++
	return nil
}

func (a *Aggregator) addDetail(category, subcategory, merchant string, amount float64) {
	detail, ok := a.details[category]
	if !ok {
		if subcategory != "" {
			detail = domain.NewNestedDetail()
		} else {
			detail = domain.NewFlatDetail()
		}
		a.details[category] = detail
	}

	if detail.Kind == domain.DetailFlat {
		detail.Merchants[merchant] += amount
		return
	}

	sub, ok := detail.Subcategories[subcategory]
	if !ok {
		sub = &domain.SubcategoryDetail{Merchants: make(map[string]float64)}
		detail.Subcategories[subcategory] = sub
	}
	sub.Total += amount
	sub.Merchants[merchant] += amount
}

// Summary returns the row counters gathered so far.
func (a *Aggregator) Summary() domain.Summary {
	return a.summary
}
