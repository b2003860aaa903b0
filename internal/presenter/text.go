package presenter

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"spending-analyzer/internal/domain"
)

// Options controls which sections the text renderer prints.
type Options struct {
	Expand          *ExpandState
	ShowExactTotals bool
}

// RenderJSON writes the report as indented JSON.
func RenderJSON(w io.Writer, report *domain.SpendingReport) error {
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to generate JSON report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// RenderText writes a human readable breakdown of the report.
func RenderText(w io.Writer, report *domain.SpendingReport, opts Options) error {
	expand := opts.Expand
	if expand == nil {
		expand = NewExpandState()
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total spending\t%s\t\n", FormatGBP(report.OverallTotal))
	fmt.Fprintln(tw, "\t\t")

	fmt.Fprintln(tw, "Spending by category\t\t")
	for _, c := range report.CategoryTotals {
		marker := "+"
		if expand.IsExpanded(c.Name) {
			marker = "-"
		}
		fmt.Fprintf(tw, "%s %s\t%s\t\n", marker, c.Name, FormatGBP(c.Total))
		if expand.IsExpanded(c.Name) {
			writeDetail(tw, report.Detail(c.Name))
		}
	}

	if opts.ShowExactTotals {
		fmt.Fprintln(tw, "\t\t")
		fmt.Fprintln(tw, "All transactions\t\t")
		for _, e := range report.ExactTotals {
			fmt.Fprintf(tw, "  %s\t%s\t\n", e.Name, FormatGBP(e.Total))
		}
	}
	return tw.Flush()
}

func writeDetail(w io.Writer, detail *domain.CategoryDetail) {
	if detail == nil {
		return
	}
	switch detail.Kind {
	case domain.DetailNested:
		for _, name := range detail.SortedSubcategories() {
			sub := detail.Subcategories[name]
			fmt.Fprintf(w, "    %s\t%s\t\n", name, FormatGBP(sub.Total))
			for _, m := range sub.SortedMerchants() {
				fmt.Fprintf(w, "      %s\t%s\t\n", m.Name, FormatGBP(m.Total))
			}
		}
	default:
		for _, m := range detail.SortedMerchants() {
			fmt.Fprintf(w, "    %s\t%s\t\n", m.Name, FormatGBP(m.Total))
		}
	}
}
