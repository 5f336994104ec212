package util

import "testing"

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.0K"},
		{24563, "24.6K"},
		{1_500_000, "1.5M"},
		{6.5, "6.5"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{12.5, "+12.5%"},
		{-3, "-3.0%"},
		{0, "0.0%"},
	}
	for _, tt := range tests {
		if got := FormatPercent(tt.in); got != tt.want {
			t.Errorf("FormatPercent(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

type sample struct {
	Name  string `validate:"required"`
	Count *int   `validate:"required,min=0"`
}

func TestValidateDTO(t *testing.T) {
	neg := -1
	err := ValidateDTO(&sample{Name: "x", Count: &neg})
	if err == nil || err.Error() != "field [Count] failed on rule [min]" {
		t.Fatalf("err = %v", err)
	}

	zero := 0
	if err = ValidateDTO(&sample{Name: "x", Count: &zero}); err != nil {
		t.Fatalf("zero count rejected: %v", err)
	}
}
