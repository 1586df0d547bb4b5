package storage

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"airbnb-stats/models"
	"airbnb-stats/utils"
)

// Columns the listings file must carry. Others are ignored.
var requiredColumns = []string{
	"id", "host_id", "neighbourhood", "room_type", "price", "minimum_nights", "number_of_reviews",
}

// CSVReader reads raw listings from a header-addressed CSV file
type CSVReader struct {
	filePath string
	logger   *utils.Logger
}

// NewCSVReader creates a new CSVReader
func NewCSVReader(filePath string, logger *utils.Logger) *CSVReader {
	return &CSVReader{filePath: filePath, logger: logger}
}

// LoadRaw reads every row of the file
func (r *CSVReader) LoadRaw(ctx context.Context) ([]*models.RawListing, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open listings file: %w", err)
	}
	defer file.Close()

	listings, err := ReadRawListings(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.filePath, err)
	}
	r.logger.Info("Read %d raw listings from: %s", len(listings), r.filePath)
	return listings, nil
}

// ReadRawListings parses CSV listing rows from in
func ReadRawListings(ctx context.Context, in io.Reader) ([]*models.RawListing, error) {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return nil, fmt.Errorf("missing column %q in CSV header", c)
		}
	}

	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var listings []*models.RawListing
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV line %d: %w", line, err)
		}
		listings = append(listings, &models.RawListing{
			ID:              field(row, "id"),
			Name:            field(row, "name"),
			HostID:          field(row, "host_id"),
			HostName:        field(row, "host_name"),
			Neighbourhood:   field(row, "neighbourhood"),
			Latitude:        field(row, "latitude"),
			Longitude:       field(row, "longitude"),
			RoomType:        field(row, "room_type"),
			Price:           field(row, "price"),
			MinimumNights:   field(row, "minimum_nights"),
			NumberOfReviews: field(row, "number_of_reviews"),
		})
	}
	return listings, nil
}
