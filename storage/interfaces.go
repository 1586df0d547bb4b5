package storage

import (
	"context"

	"airbnb-stats/models"
)

// ListingSource supplies the raw listing rows the statistics are built from
type ListingSource interface {
	LoadRaw(ctx context.Context) ([]*models.RawListing, error)
}

// ListingStore persists cleaned listings and reads them back
type ListingStore interface {
	SaveListings(ctx context.Context, listings []*models.Listing) error
	LoadListings(ctx context.Context) ([]*models.Listing, error)
	Close() error
}

var (
	_ ListingSource = (*CSVReader)(nil)
	_ ListingStore  = (*PostgresStore)(nil)
)
