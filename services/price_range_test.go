package services

import (
	"errors"
	"testing"
)

func TestParsePriceOption(t *testing.T) {
	for _, p := range append(append([]int{}, MinPriceOptions...), MaxPriceOptions...) {
		label := FormatPriceOption(p)
		got, err := ParsePriceOption(label)
		if err != nil {
			t.Fatalf("ParsePriceOption(%q): %v", label, err)
		}
		if got != p {
			t.Errorf("ParsePriceOption(%q) = %d, want %d", label, got, p)
		}
	}

	if got, err := ParsePriceOption(" 250 "); err != nil || got != 250 {
		t.Errorf("ParsePriceOption(\" 250 \") = %d, %v", got, err)
	}
	for _, bad := range []string{"", "£", "abc", "£-5", "-5"} {
		if _, err := ParsePriceOption(bad); err == nil {
			t.Errorf("ParsePriceOption(%q) expected error", bad)
		}
	}
}

func TestValidatePriceRange(t *testing.T) {
	if err := ValidatePriceRange(100, 50); !errors.Is(err, ErrInvalidPriceRange) {
		t.Errorf("ValidatePriceRange(100, 50) = %v, want ErrInvalidPriceRange", err)
	}
	for _, r := range [][2]int{{0, 10}, {50, 50}, {5000, 10000}} {
		if err := ValidatePriceRange(r[0], r[1]); err != nil {
			t.Errorf("ValidatePriceRange(%d, %d) = %v", r[0], r[1], err)
		}
	}
}
