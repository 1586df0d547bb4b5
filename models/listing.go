package models

// Room types the statistics distinguish. Anything else is counted but not classified.
const (
	RoomEntireHome = "Entire home/apt"
	RoomPrivate    = "Private room"
	RoomShared     = "Shared room"
)

// RawListing is one unprocessed row of the listings file, all fields still text
type RawListing struct {
	ID              string
	Name            string
	HostID          string
	HostName        string
	Neighbourhood   string
	Latitude        string
	Longitude       string
	RoomType        string
	Price           string // e.g. "£65" or "65"
	MinimumNights   string
	NumberOfReviews string
}

// Listing is a cleaned rental listing. The statistics never mutate it.
type Listing struct {
	ID              string
	Name            string
	HostID          string
	HostName        string
	Neighbourhood   string
	Latitude        float64
	Longitude       float64
	RoomType        string
	Price           int // nightly rate
	MinimumNights   int
	NumberOfReviews int
}

// DerivedPrice is the cheapest possible stay: nightly price times minimum nights.
// All filtering and averaging work on this value.
func (l *Listing) DerivedPrice() int {
	return l.Price * l.MinimumNights
}
