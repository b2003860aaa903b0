package usecase

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"spending-analyzer/internal/domain"
)

var amountStripper = strings.NewReplacer("£", "", "$", "", ",", "")

// ParseAmount turns a currency formatted string such as "-£1,234.50" into a
// signed number. Currency symbols and thousands separators are dropped and
// surrounding whitespace trimmed before parsing. Values that overflow a
// float64 are rejected.
func ParseAmount(raw string) (float64, error) {
	cleaned := strings.TrimSpace(amountStripper.Replace(raw))
	if cleaned == "" {
		return 0, fmt.Errorf("%w: %q", domain.ErrParseFailure, raw)
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrParseFailure, raw)
	}

	amount, _ := d.Float64()
	if math.IsInf(amount, 0) || math.IsNaN(amount) {
		return 0, fmt.Errorf("%w: %q is out of range", domain.ErrParseFailure, raw)
	}
	return amount, nil
}
