package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"airbnb-stats/models"
	"airbnb-stats/utils"
)

var statsHeader = []string{
	"borough", "count", "avg_reviews", "entire_homes", "avg_price",
	"min_private", "min_shared", "top_host", "min_filter", "max_filter",
}

// CSVWriter exports per-borough statistics to a CSV file
type CSVWriter struct {
	filePath string
	logger   *utils.Logger
}

// NewCSVWriter creates a new CSVWriter
func NewCSVWriter(filePath string, logger *utils.Logger) *CSVWriter {
	return &CSVWriter{filePath: filePath, logger: logger}
}

// WriteBoroughStats writes one row per borough of table to the file
func (w *CSVWriter) WriteBoroughStats(table *models.StatisticsTable) error {
	dir := filepath.Dir(w.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(w.filePath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	if err := EncodeBoroughStats(file, table); err != nil {
		return err
	}
	w.logger.Info("Borough statistics written to: %s (%d rows)", w.filePath, len(table.Boroughs))
	return nil
}

// EncodeBoroughStats writes the table as CSV to out. Rooms with no qualifying
// listing are left empty.
func EncodeBoroughStats(out io.Writer, table *models.StatisticsTable) error {
	writer := csv.NewWriter(out)
	if err := writer.Write(statsHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	minFilter := strconv.Itoa(table.Range.Min)
	maxFilter := strconv.Itoa(table.Range.Max)
	for _, b := range table.Boroughs {
		s := table.Stats[b]
		row := []string{
			b,
			strconv.Itoa(s.Count),
			strconv.Itoa(s.AvgReviews),
			strconv.Itoa(s.EntireHomes),
			strconv.Itoa(s.AvgPrice),
			optionalPrice(s.MinPrivate),
			optionalPrice(s.MinShared),
			s.TopHost,
			minFilter,
			maxFilter,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %q: %w", b, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

func optionalPrice(p int) string {
	if p == models.NoPrice {
		return ""
	}
	return strconv.Itoa(p)
}
