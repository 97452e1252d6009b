// Package extract implements the field extractors that turn raw OCR text
// into structured invoice fields, and the fusion of statistical entities
// with rule-derived name candidates.
//
// Extractors are pure functions of (text, language). They never fail: a
// field with no valid candidate is simply absent from the result.
package extract

import (
	"sort"
	"strings"

	"invoscan/internal/lang"
	"invoscan/internal/rules"
)

// minValueLen rejects noise captures such as single letters or page markers.
// An invoice number is only valid when longer than 2 characters.
const minValueLen = 2

// Options controls the documented behavioral toggles of the extractors.
type Options struct {
	// DedupNames enables case-insensitive removal of duplicate names across
	// the statistical and rule-derived sources. Off by default: the fused
	// list keeps duplicates unless explicitly asked not to.
	DedupNames bool
}

// InvoiceNumber returns the first valid invoice number in document order,
// or "" if none. All patterns of the pack contribute candidates; candidates
// are ordered by their position in the text, ties broken by pattern order.
// Invoices conventionally state the primary number once near the top, so
// the earliest valid hit beats any frequency-based choice.
func InvoiceNumber(text string, code lang.Code) string {
	pack := rules.PackFor(code)

	type candidate struct {
		pos   int
		value string
	}
	var candidates []candidate
	for _, p := range pack.InvoiceNumber {
		for _, m := range p.Re.FindAllStringSubmatchIndex(text, -1) {
			start, end := m[2*p.Group], m[2*p.Group+1]
			if start < 0 {
				continue
			}
			candidates = append(candidates, candidate{pos: m[0], value: text[start:end]})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].pos < candidates[j].pos })

	for _, c := range candidates {
		if len(c.value) > minValueLen {
			return c.value
		}
	}
	return ""
}

// Dates returns every date-shaped substring in document order. The matcher
// is purely syntactic: no month-range checking, no deduplication. A date
// occurring twice verbatim is returned twice.
func Dates(text string, code lang.Code) []string {
	return matchAll(text, rules.PackFor(code).Dates)
}

// IBANs returns every IBAN candidate verbatim, including internal spacing.
// The pattern is language-independent and unfiltered.
func IBANs(text string) []string {
	return matchAll(text, rules.PackFor(lang.Default).IBANs)
}

// Amounts returns every labeled amount in document order. The captured
// value keeps the currency symbol and whatever thousands/decimal separator
// convention the source used; no numeric normalization happens here.
func Amounts(text string, code lang.Code) []string {
	return matchAll(text, rules.PackFor(code).Amounts)
}

// Names fuses the two name signals: entities from the statistical model
// first, then labeled-field captures, each source keeping its original
// match order. Duplicates across sources survive unless Options.DedupNames
// is set.
func Names(text string, code lang.Code, entities []string, opts Options) []string {
	names := append([]string(nil), entities...)
	for _, p := range rules.PackFor(code).Names {
		for _, m := range p.Re.FindAllStringSubmatch(text, -1) {
			if name := strings.TrimSpace(m[p.Group]); name != "" {
				names = append(names, name)
			}
		}
	}
	if opts.DedupNames {
		names = dedupFold(names)
	}
	return names
}

func matchAll(text string, patterns []rules.Pattern) []string {
	var out []string
	for _, p := range patterns {
		for _, m := range p.Re.FindAllStringSubmatch(text, -1) {
			out = append(out, m[p.Group])
		}
	}
	return out
}

// dedupFold removes later case-insensitive duplicates, keeping first
// occurrences and their order.
func dedupFold(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := values[:0]
	for _, v := range values {
		key := strings.ToLower(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}
