package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"invoscan/internal/lang"
)

func TestInvoiceNumber(t *testing.T) {
	tests := []struct {
		name string
		text string
		lang lang.Code
		want string
	}{
		{
			name: "english labeled number",
			text: "ACME Corp\nInvoice No. 12345\nThanks for your business",
			lang: lang.English,
			want: "12345",
		},
		{
			name: "english hash qualifier",
			text: "Invoice #INV-2023-001",
			lang: lang.English,
			want: "INV-2023-001",
		},
		{
			name: "first valid match wins",
			text: "Invoice: 111\nBill No 22222",
			lang: lang.English,
			want: "111",
		},
		{
			name: "short captures rejected as noise",
			text: "Receipt A\nInvoice No. 98765",
			lang: lang.English,
			want: "98765",
		},
		{
			name: "no label vocabulary present",
			text: "just some text with numbers 123 456",
			lang: lang.English,
			want: "",
		},
		{
			name: "german labeled number",
			text: "Rechnungsnummer: 2023-001",
			lang: lang.German,
			want: "2023-001",
		},
		{
			name: "german bare R code without label",
			text: "Beleg R-1234567 vom Dezember",
			lang: lang.German,
			want: "R-1234567",
		},
		{
			name: "german earlier bare code beats later labeled",
			text: "R-7654321 Zahlungsbeleg\nRechnungsnummer: 999999",
			lang: lang.German,
			want: "R-7654321",
		},
		{
			name: "spanish labeled number",
			text: "Factura No. F-789",
			lang: lang.Spanish,
			want: "F-789",
		},
		{
			name: "unknown language falls back to english pack",
			text: "Invoice 4567",
			lang: lang.Code("fr"),
			want: "4567",
		},
		{
			name: "empty text",
			text: "",
			lang: lang.English,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InvoiceNumber(tt.text, tt.lang))
		})
	}
}

func TestDates(t *testing.T) {
	tests := []struct {
		name string
		text string
		lang lang.Code
		want []string
	}{
		{
			name: "both layouts in document order",
			text: "Issued 15/03/2023 and paid 2023-03-15.",
			lang: lang.English,
			want: []string{"15/03/2023", "2023-03-15"},
		},
		{
			name: "duplicates kept",
			text: "01/01/2024 then again 01/01/2024",
			lang: lang.English,
			want: []string{"01/01/2024", "01/01/2024"},
		},
		{
			name: "german dotted separators",
			text: "Datum: 31.12.2023",
			lang: lang.German,
			want: []string{"31.12.2023"},
		},
		{
			name: "dots only recognized for german",
			text: "Datum: 31.12.2023",
			lang: lang.English,
			want: nil,
		},
		{
			name: "german amount not mistaken for date",
			text: "Betrag: 1.234,56",
			lang: lang.German,
			want: nil,
		},
		{
			name: "two digit year",
			text: "due 5/6/24",
			lang: lang.Spanish,
			want: []string{"5/6/24"},
		},
		{
			name: "absent when no match",
			text: "no dates here",
			lang: lang.English,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dates(tt.text, tt.lang))
		})
	}
}

func TestIBANs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "spaced iban verbatim",
			text: "IBAN: DE89 3704 0044 0532 0130 00\nBIC: COBADEFF",
			want: []string{"DE89 3704 0044 0532 0130 00"},
		},
		{
			name: "compact iban",
			text: "Pay to ES9121000418450200051332 please",
			want: []string{"ES9121000418450200051332"},
		},
		{
			name: "multiple ibans in order",
			text: "from DE89370400440532013000 to GB29 NWBK 6016 1331 9268 19.",
			want: []string{"DE89370400440532013000", "GB29 NWBK 6016 1331 9268 19"},
		},
		{
			name: "no checksum validation",
			text: "XX00 1234 5678",
			want: []string{"XX00 1234 5678"},
		},
		{
			name: "absent without candidates",
			text: "no bank details on this page",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IBANs(tt.text))
		})
	}
}

func TestAmounts(t *testing.T) {
	tests := []struct {
		name string
		text string
		lang lang.Code
		want []string
	}{
		{
			name: "currency symbol and separators preserved verbatim",
			text: "Total: €1.234,56",
			lang: lang.English,
			want: []string{"€1.234,56"},
		},
		{
			name: "dollar amount",
			text: "Amount Due: $500.00",
			lang: lang.English,
			want: []string{"$500.00"},
		},
		{
			name: "all matches in document order",
			text: "Net Amount: 100.00\nTotal Amount: 119.00",
			lang: lang.English,
			want: []string{"100.00", "119.00"},
		},
		{
			name: "german labels",
			text: "Gesamtbetrag: 1.234,56\nZu Bezahlen: €99,00",
			lang: lang.German,
			want: []string{"1.234,56", "€99,00"},
		},
		{
			name: "spanish labels",
			text: "Monto Total: $2,500.00 y Pago: 300",
			lang: lang.Spanish,
			want: []string{"$2,500.00", "300"},
		},
		{
			name: "label inside longer word ignored",
			text: "Subtotal: 5.00",
			lang: lang.English,
			want: nil,
		},
		{
			name: "absent without labels",
			text: "1.234,56 all alone",
			lang: lang.English,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Amounts(tt.text, tt.lang))
		})
	}
}

func TestNamesFusion(t *testing.T) {
	t.Run("ner entities precede labeled-field captures", func(t *testing.T) {
		got := Names("Name: Jane Doe", lang.English, []string{"John Smith"}, Options{})
		assert.Equal(t, []string{"John Smith", "Jane Doe"}, got)
	})

	t.Run("duplicates across sources kept by default", func(t *testing.T) {
		got := Names("Name: Jane Doe", lang.English, []string{"Jane Doe"}, Options{})
		assert.Equal(t, []string{"Jane Doe", "Jane Doe"}, got)
	})

	t.Run("opt-in dedup removes case-insensitive duplicates", func(t *testing.T) {
		got := Names("Name: JANE DOE", lang.English, []string{"Jane Doe"}, Options{DedupNames: true})
		assert.Equal(t, []string{"Jane Doe"}, got)
	})

	t.Run("longer label preferred", func(t *testing.T) {
		got := Names("Client Name: Ada Lovelace", lang.English, nil, Options{})
		assert.Equal(t, []string{"Ada Lovelace"}, got)
	})

	t.Run("german labels and umlauts", func(t *testing.T) {
		got := Names("Kunde: Hans Müller", lang.German, nil, Options{})
		assert.Equal(t, []string{"Hans Müller"}, got)
	})

	t.Run("spanish compound label", func(t *testing.T) {
		got := Names("Nombre de Cliente: Ana García", lang.Spanish, nil, Options{})
		assert.Equal(t, []string{"Ana García"}, got)
	})

	t.Run("unknown language uses english labels", func(t *testing.T) {
		got := Names("Bill To: Jane Doe", lang.Code("it"), nil, Options{})
		assert.Equal(t, []string{"Jane Doe"}, got)
	})

	t.Run("no signal yields nil", func(t *testing.T) {
		got := Names("nothing labeled here", lang.English, nil, Options{})
		assert.Nil(t, got)
	})
}

func TestResultHasAny(t *testing.T) {
	assert.False(t, Result{}.HasAny())
	assert.True(t, Result{InvoiceNumber: "123"}.HasAny())
	assert.True(t, Result{Dates: []string{"01/01/2024"}}.HasAny())
	assert.True(t, Result{IBANs: []string{"DE89370400440532013000"}}.HasAny())
	assert.True(t, Result{Names: []string{"Jane Doe"}}.HasAny())
	assert.True(t, Result{Amounts: []string{"€5,00"}}.HasAny())
}
