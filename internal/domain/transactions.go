package domain

// Column names a statement must carry. Every other column is ignored.
const (
	FieldMerchant = "Appears On Your Statement As"
	FieldAmount   = "Amount"
)

// MiscellaneousCategory is the bucket for merchants that match no rule.
const MiscellaneousCategory = "MISCELLANEOUS"

// Record is a single statement row as handed over by a gateway.
// An empty field is treated the same as an absent one.
type Record struct {
	Merchant  string `json:"merchant"`
	RawAmount string `json:"raw_amount"`
}

// RecordFromFields builds a Record from a header-keyed row.
func RecordFromFields(fields map[string]string) Record {
	return Record{
		Merchant:  fields[FieldMerchant],
		RawAmount: fields[FieldAmount],
	}
}

// HasRequiredFields reports whether both the merchant and the amount are present.
func (r Record) HasRequiredFields() bool {
	return r.Merchant != "" && r.RawAmount != ""
}

// Outcome is the kind of result a classification produced.
type Outcome string

const (
	OutcomeExcluded  Outcome = "EXCLUDED"
	OutcomeMatched   Outcome = "MATCHED"
	OutcomeUnmatched Outcome = "UNMATCHED"
)

// Classification is the result of classifying one merchant string.
// Category and Subcategory are only set when Outcome is OutcomeMatched;
// an empty Subcategory means the match came from a flat category rule.
type Classification struct {
	Outcome     Outcome `json:"outcome"`
	Category    string  `json:"category,omitempty"`
	Subcategory string  `json:"subcategory,omitempty"`
}

// Resolve maps the classification to the category and subcategory the
// aggregator files the amount under. Unmatched merchants land in MISCELLANEOUS.
// ok is false for excluded merchants.
func (c Classification) Resolve() (category, subcategory string, ok bool) {
	switch c.Outcome {
	case OutcomeMatched:
		return c.Category, c.Subcategory, true
	case OutcomeUnmatched:
		return MiscellaneousCategory, "", true
	default:
		return "", "", false
	}
}
