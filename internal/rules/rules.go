// Package rules holds the per-language pattern packs used by the field
// extractors. Packs are compiled once at init, are read-only afterwards and
// are safe to share across any number of concurrent document runs.
//
// Adding a language means registering one more pack here; the extractors
// themselves never branch on language.
package rules

import (
	"regexp"

	"invoscan/internal/lang"
)

// Pattern is a single matching rule plus the index of the capture group
// holding the value of interest. Group 0 means the whole match.
type Pattern struct {
	Re    *regexp.Regexp
	Group int
}

// Pack maps every field kind to its ordered pattern list for one language.
type Pack struct {
	InvoiceNumber []Pattern
	Dates         []Pattern
	IBANs         []Pattern
	Names         []Pattern
	Amounts       []Pattern
}

// IBANs are international, so every pack shares the same pattern. The rule
// is deliberately permissive: no per-country length table, no mod-97
// checksum. It is a recall-oriented candidate matcher.
var ibanPatterns = []Pattern{
	{Re: regexp.MustCompile(`\b[A-Z]{2}\d{2}(?: ?[A-Z0-9]{1,4}){1,7}(?: ?[A-Z0-9]{1,4})?\b`), Group: 0},
}

var englishPack = &Pack{
	InvoiceNumber: []Pattern{
		{Re: regexp.MustCompile(`(?i)\b(?:Proforma Invoice|Invoice|Receipt|Bill)\s*(?:No\.?|Number|Num|ID|#|/|:|-)?\s*([A-Za-z0-9-]+)\b`), Group: 1},
	},
	Dates: []Pattern{
		{Re: regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b|\b\d{4}[/-]\d{1,2}[/-]\d{1,2}\b`), Group: 0},
	},
	IBANs: ibanPatterns,
	Names: []Pattern{
		{Re: regexp.MustCompile(`(?i)(?:Client Name|Name|Bill To)\s*:\s*([\p{L}][\p{L} ]*)`), Group: 1},
	},
	Amounts: []Pattern{
		{Re: regexp.MustCompile(`(?i)\b(?:Total Amount|Amount Due|Net Amount|Payment|Pay|Total)\s*:?\s*([€$£]?\d[\d.,]*)`), Group: 1},
	},
}

var germanPack = &Pack{
	InvoiceNumber: []Pattern{
		{Re: regexp.MustCompile(`(?i)Rechnungsnummer\s*(?:Nr\.|No|Nummer|ID|Code|Ref|#|-|/)?:?\s*([A-Za-z0-9-]+)`), Group: 1},
		// Bare invoice codes of the R-1234567 shape appear on German
		// invoices without any label in front of them.
		{Re: regexp.MustCompile(`\b[Rr]-\d{7}\b`), Group: 0},
	},
	Dates: []Pattern{
		// German documents additionally separate date components with dots.
		{Re: regexp.MustCompile(`\b\d{1,2}[./-]\d{1,2}[./-]\d{2,4}\b|\b\d{4}[./-]\d{1,2}[./-]\d{1,2}\b`), Group: 0},
	},
	IBANs: ibanPatterns,
	Names: []Pattern{
		{Re: regexp.MustCompile(`(?i)(?:Kunde|Name|Rechnung an)\s*:\s*([\p{L}][\p{L} ]*)`), Group: 1},
	},
	Amounts: []Pattern{
		{Re: regexp.MustCompile(`(?i)\b(?:Gesamtbetrag|Zu Bezahlen|Betrag|Zahlung|Zahlen)\s*:?\s*([€$£]?\d[\d.,]*)`), Group: 1},
	},
}

var spanishPack = &Pack{
	InvoiceNumber: []Pattern{
		{Re: regexp.MustCompile(`(?i)Factura\s*(?:No\.|Número|Num|#)?\s*:?\s*([A-Za-z0-9-]+)`), Group: 1},
	},
	Dates: []Pattern{
		{Re: regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b|\b\d{4}[/-]\d{1,2}[/-]\d{1,2}\b`), Group: 0},
	},
	IBANs: ibanPatterns,
	Names: []Pattern{
		{Re: regexp.MustCompile(`(?i)(?:Nombre de Cliente|Nombre)\s*:\s*([\p{L}][\p{L} ]*)`), Group: 1},
	},
	Amounts: []Pattern{
		{Re: regexp.MustCompile(`(?i)\b(?:Monto Total|Cantidad|Neto|Pagar|Pago|Total)\s*:?\s*([€$£]?\d[\d.,]*)`), Group: 1},
	},
}

var packs = map[lang.Code]*Pack{
	lang.English: englishPack,
	lang.German:  germanPack,
	lang.Spanish: spanishPack,
	lang.Default: englishPack,
}

// PackFor returns the rule pack for a language. Unknown or unsupported
// codes fall back to the English pack; the lookup never fails.
func PackFor(code lang.Code) *Pack {
	if pack, ok := packs[code]; ok {
		return pack
	}
	return englishPack
}
