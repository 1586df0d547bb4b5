package services

import (
	"sort"
	"strconv"

	"airbnb-stats/models"
)

// Boroughs returns the sorted set of neighbourhoods in listings plus AllBoroughs
func Boroughs(listings []*models.Listing) []string {
	set := map[string]struct{}{models.AllBoroughs: {}}
	for _, l := range listings {
		set[l.Neighbourhood] = struct{}{}
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EmptyTable returns a table for boroughs in which nothing has qualified
func EmptyTable(boroughs []string, r models.PriceRange) *models.StatisticsTable {
	table := &models.StatisticsTable{
		Range:         r,
		Boroughs:      boroughs,
		Stats:         make(map[string]*models.BoroughStats, len(boroughs)),
		MostExpensive: models.AllBoroughs,
	}
	for _, b := range boroughs {
		table.Stats[b] = &models.BoroughStats{
			Borough:     b,
			MinPrivate:  models.NoPrice,
			MinShared:   models.NoPrice,
			TopHost:     "0",
			HostReviews: make(map[string]int),
		}
	}
	return table
}

// Compute builds a fresh statistics table for every borough over the listings
// whose derived price falls in r. Each qualifying listing is added to its own
// borough and to AllBoroughs, nothing else.
func Compute(listings []*models.Listing, r models.PriceRange) *models.StatisticsTable {
	table := EmptyTable(Boroughs(listings), r)
	all := table.Stats[models.AllBoroughs]

	// AvgReviews and AvgPrice hold sums until the second pass below
	for _, l := range listings {
		price := l.DerivedPrice()
		if !r.Contains(price) {
			continue
		}
		accumulate(all, l, price)
		// a neighbourhood literally named "All" shares the aggregate bucket
		if own := table.Stats[l.Neighbourhood]; own != all {
			accumulate(own, l, price)
		}
	}

	mostExpensivePrice := 0
	for _, b := range table.Boroughs {
		s := table.Stats[b]
		if s.Count > 0 {
			s.AvgReviews /= s.Count
			s.AvgPrice /= s.Count
			// "All" takes part too and wins when it is first to reach the max
			if s.AvgPrice > mostExpensivePrice {
				mostExpensivePrice = s.AvgPrice
				table.MostExpensive = b
			}
		}
		s.TopHost = topHost(s.HostReviews)
	}
	return table
}

func accumulate(s *models.BoroughStats, l *models.Listing, price int) {
	s.AvgReviews += l.NumberOfReviews
	s.Count++
	switch l.RoomType {
	case models.RoomEntireHome:
		s.EntireHomes++
	case models.RoomPrivate:
		s.MinPrivate = min(s.MinPrivate, price)
	case models.RoomShared:
		s.MinShared = min(s.MinShared, price)
	}
	s.AvgPrice += price
	s.HostReviews[l.HostID] += l.NumberOfReviews
}

// topHost picks the host with the most reviews. A host needs at least one review
// to count; with none, "0" is returned. Ties go to the lowest host id.
func topHost(reviews map[string]int) string {
	best, bestReviews := "0", 0
	for host, n := range reviews {
		if n > bestReviews || (n == bestReviews && n > 0 && lessHostID(host, best)) {
			best, bestReviews = host, n
		}
	}
	return best
}

// lessHostID orders numeric ids by value and falls back to plain string order
func lessHostID(a, b string) bool {
	x, errA := strconv.ParseUint(a, 10, 64)
	y, errB := strconv.ParseUint(b, 10, 64)
	switch {
	case errA == nil && errB == nil:
		if x != y {
			return x < y
		}
		return a < b
	case errA == nil:
		return true
	case errB == nil:
		return false
	}
	return a < b
}
