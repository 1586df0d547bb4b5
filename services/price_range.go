package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPriceRange is returned when the minimum exceeds the maximum
var ErrInvalidPriceRange = errors.New("the minimum price cannot exceed the maximum price")

// Price choices offered for the lower and upper bound of the filter
var (
	MinPriceOptions = []int{0, 10, 20, 50, 100, 200, 500, 1000, 2500, 5000}
	MaxPriceOptions = []int{10, 20, 50, 100, 200, 500, 1000, 2500, 5000, 10000}
)

// FormatPriceOption renders a price the way the options are labelled, e.g. "£100"
func FormatPriceOption(price int) string {
	return CurrencyPrefix + strconv.Itoa(price)
}

// ParsePriceOption reads "£100" or "100" back into 100
func ParsePriceOption(s string) (int, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), CurrencyPrefix)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", s, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid price %q: negative", s)
	}
	return n, nil
}

// ValidatePriceRange rejects a range whose minimum is above its maximum.
// The statistics accept any range; this check belongs to whoever collects it.
func ValidatePriceRange(minPrice, maxPrice int) error {
	if minPrice > maxPrice {
		return fmt.Errorf("%w: %d > %d", ErrInvalidPriceRange, minPrice, maxPrice)
	}
	return nil
}
