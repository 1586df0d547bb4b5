package models

import "math"

// AllBoroughs is the synthetic borough aggregating every real one
const AllBoroughs = "All"

// NoPrice marks a minimum room price for which no listing has qualified yet
const NoPrice = math.MaxInt

// PriceRange is a half-open filter [Min, Max) on derived price
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether price falls inside the range
func (r PriceRange) Contains(price int) bool {
	return r.Min <= price && price < r.Max
}

// BoroughStats holds the computed statistics for one borough.
// AvgReviews and AvgPrice are integer-truncated; both stay 0 when Count is 0.
type BoroughStats struct {
	Borough     string         `json:"borough"`
	AvgReviews  int            `json:"avg_reviews"`
	Count       int            `json:"count"`
	EntireHomes int            `json:"entire_homes"`
	AvgPrice    int            `json:"avg_price"`
	MinPrivate  int            `json:"min_private"`
	MinShared   int            `json:"min_shared"`
	TopHost     string         `json:"top_host"`
	HostReviews map[string]int `json:"-"`
}

// StatisticsTable is the full result of one statistics pass
type StatisticsTable struct {
	Range         PriceRange               `json:"range"`
	Boroughs      []string                 `json:"boroughs"` // sorted, includes AllBoroughs
	Stats         map[string]*BoroughStats `json:"stats"`
	MostExpensive string                   `json:"most_expensive"`
}

// Borough returns the stats for name and whether it exists in the table
func (t *StatisticsTable) Borough(name string) (*BoroughStats, bool) {
	s, ok := t.Stats[name]
	return s, ok
}
