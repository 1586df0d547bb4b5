package services

import (
	"regexp"
	"strconv"
	"strings"

	"airbnb-stats/models"
	"airbnb-stats/utils"
)

var (
	priceRegex = regexp.MustCompile(`^[£$€]?\s*([\d,]+)(?:\.\d+)?$`)
	countRegex = regexp.MustCompile(`^\d+$`)
)

// DataCleaner normalizes raw listing rows into Listing records
type DataCleaner struct {
	logger *utils.Logger
}

// NewDataCleaner creates a new DataCleaner
func NewDataCleaner(logger *utils.Logger) *DataCleaner {
	return &DataCleaner{logger: logger}
}

// Clean converts raw rows to listings, dropping rows the statistics cannot use
// and later duplicates of an already seen listing id.
func (c *DataCleaner) Clean(raw []*models.RawListing) []*models.Listing {
	seen := make(map[string]bool)
	cleaned := make([]*models.Listing, 0, len(raw))

	for _, r := range raw {
		borough := strings.TrimSpace(r.Neighbourhood)
		if borough == "" {
			c.logger.Debug("Skipping listing %s with no neighbourhood", r.ID)
			continue
		}

		key := strings.TrimSpace(r.ID)
		if key == "" {
			key = strings.TrimSpace(r.HostID) + "|" + strings.TrimSpace(r.Name) + "|" + borough
		}
		if seen[key] {
			c.logger.Debug("Skipping duplicate: %s", key)
			continue
		}

		price, ok := parsePrice(r.Price)
		if !ok {
			c.logger.Debug("Skipping listing %s with unusable price %q", key, r.Price)
			continue
		}
		nights, ok := parseCount(r.MinimumNights)
		if !ok || nights == 0 {
			c.logger.Debug("Skipping listing %s with unusable minimum nights %q", key, r.MinimumNights)
			continue
		}
		// a missing review count means no reviews
		reviews, _ := parseCount(r.NumberOfReviews)
		seen[key] = true

		cleaned = append(cleaned, &models.Listing{
			ID:              strings.TrimSpace(r.ID),
			Name:            strings.TrimSpace(r.Name),
			HostID:          strings.TrimSpace(r.HostID),
			HostName:        strings.TrimSpace(r.HostName),
			Neighbourhood:   borough,
			Latitude:        parseCoordinate(r.Latitude),
			Longitude:       parseCoordinate(r.Longitude),
			RoomType:        strings.TrimSpace(r.RoomType),
			Price:           price,
			MinimumNights:   nights,
			NumberOfReviews: reviews,
		})
	}

	c.logger.Info("Cleaned %d listings from %d raw records", len(cleaned), len(raw))
	return cleaned
}

// parsePrice reads a whole nightly price from strings like "£1,250" or "65.00"
func parsePrice(raw string) (int, bool) {
	m := priceRegex.FindStringSubmatch(strings.TrimSpace(raw))
	if len(m) < 2 {
		return 0, false
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseCount reads a non-negative integer
func parseCount(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if !countRegex.MatchString(raw) {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseCoordinate(raw string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return f
}
