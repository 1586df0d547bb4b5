package services

import (
	"sync"

	"airbnb-stats/models"
	"airbnb-stats/utils"
)

// SlotView is what one display slot currently shows
type SlotView struct {
	Slot   int    `json:"slot"`
	Metric int    `json:"metric"`
	Name   string `json:"name"`
	Value  string `json:"value"`
}

// DashboardView is a snapshot of the whole statistics panel
type DashboardView struct {
	Borough string             `json:"borough"`
	Range   *models.PriceRange `json:"range,omitempty"`
	Slots   []SlotView         `json:"slots"`
}

// Dashboard combines an Aggregator with a SlotSelector behind one mutex so that
// several callers (HTTP handlers) can drive a single panel.
type Dashboard struct {
	mu     sync.Mutex
	agg    *Aggregator
	slots  *SlotSelector
	priced bool
}

// NewDashboard creates an empty dashboard
func NewDashboard(logger *utils.Logger) *Dashboard {
	return &Dashboard{
		agg:   NewAggregator(logger),
		slots: NewSlotSelector(),
	}
}

// Load hands the listing set to the aggregator
func (d *Dashboard) Load(listings []*models.Listing) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.agg.Load(listings); err != nil {
		return err
	}
	d.priced = false
	return nil
}

// SetPriceRange recomputes statistics for [minPrice, maxPrice)
func (d *Dashboard) SetPriceRange(minPrice, maxPrice int) (DashboardView, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, err := d.agg.Recompute(minPrice, maxPrice); err != nil {
		return DashboardView{}, err
	}
	d.priced = true
	return d.view(), nil
}

// SelectBorough switches the borough shown
func (d *Dashboard) SelectBorough(name string) (DashboardView, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, err := d.agg.SelectBorough(name); err != nil {
		return DashboardView{}, err
	}
	return d.view(), nil
}

// Cycle moves one slot to the next or previous metric
func (d *Dashboard) Cycle(slot int, dir Direction) (DashboardView, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, err := d.slots.Cycle(slot, dir); err != nil {
		return DashboardView{}, err
	}
	return d.view(), nil
}

// View returns the current panel
func (d *Dashboard) View() DashboardView {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.view()
}

// Boroughs returns the selectable boroughs
func (d *Dashboard) Boroughs() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.agg.Boroughs()...)
}

// Table returns the last computed statistics table. A table is never modified
// once computed; later price changes replace it.
func (d *Dashboard) Table() *models.StatisticsTable {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.agg.Table()
}

func (d *Dashboard) view() DashboardView {
	values := d.agg.Values()
	v := DashboardView{
		Borough: d.agg.Selected(),
		Slots:   make([]SlotView, 0, SlotCount),
	}
	if d.priced {
		r := d.agg.Table().Range
		v.Range = &r
	}
	for i, m := range d.slots.Slots() {
		v.Slots = append(v.Slots, SlotView{
			Slot:   i,
			Metric: m,
			Name:   MetricNames[m],
			Value:  values[m],
		})
	}
	return v
}
