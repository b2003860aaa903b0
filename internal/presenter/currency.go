package presenter

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatGBP renders an amount as pounds sterling, e.g. "-£1,234.50".
func FormatGBP(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	abs, _ := d.Abs().Float64()
	return sign + "£" + humanize.FormatFloat("#,###.##", abs)
}
