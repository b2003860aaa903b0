package usecase

import "spending-analyzer/internal/domain"

// BuildReport snapshots the aggregator into sorted listings. The overall
// total is summed in the sorted category order so the float result is stable.
// The report shares the aggregator's detail maps, so the aggregator must not
// be fed more records afterwards.
func BuildReport(agg *Aggregator) *domain.SpendingReport {
	categoryTotals := domain.SortedTotals(agg.categories)

	var overall float64
	for _, c := range categoryTotals {
		overall += c.Total
	}

	return &domain.SpendingReport{
		Summary:        agg.Summary(),
		ExactTotals:    domain.SortedTotals(agg.exact),
		CategoryTotals: categoryTotals,
		Details:        agg.details,
		OverallTotal:   overall,
	}
}
