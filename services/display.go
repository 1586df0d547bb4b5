package services

import (
	"strconv"

	"airbnb-stats/models"
)

// MetricCount is the number of statistics the dashboard can show
const MetricCount = 8

// Metric indexes, in display order
const (
	MetricAvgReviews = iota
	MetricProperties
	MetricEntireHomes
	MetricMostExpensive
	MetricAvgPrice
	MetricMinPrivate
	MetricMinShared
	MetricTopHost
)

// CurrencyPrefix is prepended to the average price
const CurrencyPrefix = "£"

// Sentinel values shown when a statistic has no data
const (
	NoPrivateRooms = "No available private rooms"
	NoSharedRooms  = "No available shared rooms"
	NoReviews      = "No reviews available"
	NoCosts        = "No costs available"
	NoHomes        = "No homes available"
	NoHosts        = "No hosts available"
)

// MetricNames labels each metric index
var MetricNames = [MetricCount]string{
	"Average number of reviews per property",
	"Total number of available properties",
	"The number of entire home and apartments (as opposed to private rooms)",
	"The most expensive borough",
	"Average property price",
	"Least expensive private room",
	"Least expensive shared room",
	"Most popular host",
}

// Values is one display string per metric index
type Values [MetricCount]string

// InitialValues is what the dashboard shows before any statistics are computed
func InitialValues() Values {
	var v Values
	for i := range v {
		v[i] = "0"
	}
	return v
}

// FormatValues renders the display strings for borough s of table.
// The most expensive borough is global and never replaced by a sentinel.
func FormatValues(table *models.StatisticsTable, s *models.BoroughStats) Values {
	v := Values{
		MetricAvgReviews:    strconv.Itoa(s.AvgReviews),
		MetricProperties:    strconv.Itoa(s.Count),
		MetricEntireHomes:   strconv.Itoa(s.EntireHomes),
		MetricMostExpensive: table.MostExpensive,
		MetricAvgPrice:      CurrencyPrefix + strconv.Itoa(s.AvgPrice),
		MetricMinPrivate:    formatMinPrice(s.MinPrivate, NoPrivateRooms),
		MetricMinShared:     formatMinPrice(s.MinShared, NoSharedRooms),
		MetricTopHost:       s.TopHost,
	}
	if s.Count == 0 {
		v[MetricTopHost] = NoHosts
		v[MetricAvgReviews] = NoReviews
		v[MetricAvgPrice] = NoCosts
		v[MetricEntireHomes] = NoHomes
	}
	return v
}

func formatMinPrice(price int, none string) string {
	if price == models.NoPrice {
		return none
	}
	return strconv.Itoa(price)
}
