package services

import (
	"errors"
	"fmt"

	"airbnb-stats/models"
	"airbnb-stats/utils"
)

var (
	// ErrNoListings is returned when Load gets no listing set or a nil entry
	ErrNoListings = errors.New("no listing set supplied")
	// ErrNotLoaded is returned when statistics are requested before Load
	ErrNotLoaded = errors.New("listings not loaded")
	// ErrUnknownBorough is returned when selecting a borough outside the universe
	ErrUnknownBorough = errors.New("unknown borough")
)

// Aggregator owns a listing set, the current filter and the last computed
// statistics table, and renders display strings for the selected borough.
// It is not safe for concurrent use; Dashboard serialises access.
type Aggregator struct {
	logger   *utils.Logger
	listings []*models.Listing
	boroughs []string
	table    *models.StatisticsTable
	selected string
	values   Values
}

// NewAggregator creates an empty Aggregator
func NewAggregator(logger *utils.Logger) *Aggregator {
	return &Aggregator{logger: logger, values: InitialValues()}
}

// Load replaces the listing set, rebuilds the borough universe and selects AllBoroughs.
// The slice is kept by reference and must not be mutated while statistics are computed.
func (a *Aggregator) Load(listings []*models.Listing) error {
	if listings == nil {
		return fmt.Errorf("failed to load listings: %w", ErrNoListings)
	}
	for i, l := range listings {
		if l == nil {
			return fmt.Errorf("failed to load listings: entry %d: %w", i, ErrNoListings)
		}
	}

	a.listings = listings
	a.boroughs = Boroughs(listings)
	a.table = EmptyTable(a.boroughs, models.PriceRange{})
	a.selected = models.AllBoroughs
	a.values = InitialValues()

	a.logger.Info("Loaded %d listings across %d boroughs", len(listings), len(a.boroughs)-1)
	return nil
}

// Recompute rebuilds the statistics for [minPrice, maxPrice) and returns the
// display strings for the selected borough. No ordering between the bounds is
// enforced; an inverted range simply matches nothing.
func (a *Aggregator) Recompute(minPrice, maxPrice int) (Values, error) {
	if a.listings == nil {
		return Values{}, ErrNotLoaded
	}
	a.table = Compute(a.listings, models.PriceRange{Min: minPrice, Max: maxPrice})
	a.values = FormatValues(a.table, a.table.Stats[a.selected])

	a.logger.Debug("Recomputed statistics for [%d, %d): %d qualifying listings, most expensive %s",
		minPrice, maxPrice, a.table.Stats[models.AllBoroughs].Count, a.table.MostExpensive)
	return a.values, nil
}

// SelectBorough switches the selected borough and re-renders from the cached table
func (a *Aggregator) SelectBorough(name string) (Values, error) {
	if a.table == nil {
		return Values{}, ErrNotLoaded
	}
	s, ok := a.table.Borough(name)
	if !ok {
		return Values{}, fmt.Errorf("%w: %q", ErrUnknownBorough, name)
	}
	a.selected = name
	a.values = FormatValues(a.table, s)
	return a.values, nil
}

// Values returns the display strings last rendered
func (a *Aggregator) Values() Values { return a.values }

// Selected returns the selected borough
func (a *Aggregator) Selected() string { return a.selected }

// Boroughs returns the borough universe in display order
func (a *Aggregator) Boroughs() []string { return a.boroughs }

// Table returns the last computed statistics table, or nil before Load
func (a *Aggregator) Table() *models.StatisticsTable { return a.table }
