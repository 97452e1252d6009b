package lang

import (
	"errors"
	"testing"
)

func TestLinguaDetector(t *testing.T) {
	detector := NewLinguaDetector()

	tests := []struct {
		name string
		text string
		want Code
	}{
		{
			name: "english",
			text: "This invoice is payable within thirty days of the issue date.",
			want: English,
		},
		{
			name: "german",
			text: "Diese Rechnung ist innerhalb von dreißig Tagen nach Ausstellung zu bezahlen.",
			want: German,
		},
		{
			name: "spanish",
			text: "Esta factura debe pagarse dentro de los treinta días posteriores a su emisión.",
			want: Spanish,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := detector.Detect(tt.text)
			if err != nil {
				t.Fatalf("Detect returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Detect = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLinguaDetectorUndetermined(t *testing.T) {
	detector := NewLinguaDetector()

	if _, err := detector.Detect(""); !errors.Is(err, ErrUndetermined) {
		t.Errorf("Detect(\"\") error = %v, want ErrUndetermined", err)
	}
}
