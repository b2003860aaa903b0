package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"spending-analyzer/internal/domain"
	"spending-analyzer/internal/usecase"
)

func TestBuildReport_OrdinalSort(t *testing.T) {
	report := aggregate(t, []domain.Record{
		{Merchant: "zebra cafe", RawAmount: "1"},
		{Merchant: "Zebra Cafe", RawAmount: "2"},
		{Merchant: "ZEBRA CAFE", RawAmount: "3"},
		{Merchant: "apple store", RawAmount: "4"},
		{Merchant: "Éclair bakery", RawAmount: "5"},
	})

	var names []string
	for _, e := range report.ExactTotals {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"ZEBRA CAFE", "Zebra Cafe", "apple store", "zebra cafe", "Éclair bakery"}, names)
}

func TestBuildReport_Empty(t *testing.T) {
	report := usecase.BuildReport(usecase.NewAggregator(defaultClassifier(t)))

	assert.NotNil(t, report.ExactTotals)
	assert.NotNil(t, report.CategoryTotals)
	assert.Empty(t, report.ExactTotals)
	assert.Empty(t, report.CategoryTotals)
	assert.Equal(t, 0.0, report.OverallTotal)
	assert.Equal(t, domain.Summary{}, report.Summary)
}

func TestBuildReport_OverallTotalMatchesCategories(t *testing.T) {
	records := []domain.Record{
		{Merchant: "ALDI 123", RawAmount: "£0.10"},
		{Merchant: "LIDL GB", RawAmount: "£0.20"},
		{Merchant: "PAYPAL *EBAY", RawAmount: "£0.30"},
		{Merchant: "GOOGLE *STORAGE", RawAmount: "£1,000.01"},
		{Merchant: "CORNER SHOP", RawAmount: "£-0.70"},
		{Merchant: "PAYMENT RECEIVED", RawAmount: "-£500"},
	}
	report := aggregate(t, records)

	assert.InDelta(t, sumTotals(report.CategoryTotals), report.OverallTotal, 1e-9)
	assert.InDelta(t, 999.91, report.OverallTotal, 1e-9)
	assert.InDelta(t, report.OverallTotal-500, sumTotals(report.ExactTotals), 1e-9)
}

func TestBuildReport_RepeatedSnapshotsAgree(t *testing.T) {
	agg := usecase.NewAggregator(defaultClassifier(t))
	assert.NoError(t, agg.Add(domain.Record{Merchant: "TESCO", RawAmount: "£3.00"}))
	assert.NoError(t, agg.Add(domain.Record{Merchant: "CORNER SHOP", RawAmount: "£1.50"}))

	first := usecase.BuildReport(agg)
	second := usecase.BuildReport(agg)

	assert.Equal(t, first, second)
	assert.Same(t, first.Detail("GROCERY"), second.Detail("GROCERY"))
}
