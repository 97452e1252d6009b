package extract

// Result holds the fields extracted from one page. Every field is either
// absent (empty string / nil slice) or contains at least one value that
// passed its extractor's validity rules.
type Result struct {
	// InvoiceNumber is the first valid invoice number on the page, or ""
	// when none was found.
	InvoiceNumber string `json:"invoice_number,omitempty"`

	// Dates in match order, undeduplicated.
	Dates []string `json:"dates,omitempty"`

	// IBANs verbatim, including internal spacing.
	IBANs []string `json:"ibans,omitempty"`

	// Names with statistical entities first, then labeled-field captures.
	Names []string `json:"names,omitempty"`

	// Amounts verbatim, currency symbols and separators preserved.
	Amounts []string `json:"amounts,omitempty"`
}

// HasAny reports whether at least one field is non-empty. This is the
// early-stop condition for multi-page scanning.
func (r Result) HasAny() bool {
	return r.InvoiceNumber != "" ||
		len(r.Dates) > 0 ||
		len(r.IBANs) > 0 ||
		len(r.Names) > 0 ||
		len(r.Amounts) > 0
}
