package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"airbnb-stats/models"
	"airbnb-stats/utils"

	_ "github.com/lib/pq"
)

const createListingsTable = `
	CREATE TABLE IF NOT EXISTS listings (
		id                TEXT PRIMARY KEY,
		name              TEXT    NOT NULL DEFAULT '',
		host_id           TEXT    NOT NULL,
		host_name         TEXT    NOT NULL DEFAULT '',
		neighbourhood     TEXT    NOT NULL,
		latitude          DOUBLE PRECISION NOT NULL DEFAULT 0,
		longitude         DOUBLE PRECISION NOT NULL DEFAULT 0,
		room_type         TEXT    NOT NULL,
		price             INTEGER NOT NULL CHECK (price >= 0),
		minimum_nights    INTEGER NOT NULL CHECK (minimum_nights > 0),
		number_of_reviews INTEGER NOT NULL DEFAULT 0 CHECK (number_of_reviews >= 0)
	);

	CREATE INDEX IF NOT EXISTS idx_listings_neighbourhood ON listings (neighbourhood);
	CREATE INDEX IF NOT EXISTS idx_listings_host_id       ON listings (host_id);
	`

// PostgresStore keeps cleaned listings in the PostgreSQL "listings" table
type PostgresStore struct {
	db     *sql.DB
	logger *utils.Logger
}

// NewPostgresStore opens the database and pings it, retrying with backoff
func NewPostgresStore(ctx context.Context, connStr string, maxRetries int, logger *utils.Logger) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open DB: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Minute * 5)

	err = utils.RetryWithBackoff(ctx, maxRetries, time.Second, func() error {
		return db.PingContext(ctx)
	}, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	logger.Info("Connected to PostgreSQL successfully")
	return &PostgresStore{db: db, logger: logger}, nil
}

// CreateTable creates the listings table and its indexes if missing
func (s *PostgresStore) CreateTable(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createListingsTable); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	s.logger.Info("Table 'listings' is ready")
	return nil
}

// SaveListings upserts listings in a single transaction
func (s *PostgresStore) SaveListings(ctx context.Context, listings []*models.Listing) (err error) {
	if len(listings) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO listings (id, name, host_id, host_name, neighbourhood, latitude, longitude,
		                      room_type, price, minimum_nights, number_of_reviews)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			host_id = EXCLUDED.host_id,
			host_name = EXCLUDED.host_name,
			neighbourhood = EXCLUDED.neighbourhood,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			room_type = EXCLUDED.room_type,
			price = EXCLUDED.price,
			minimum_nights = EXCLUDED.minimum_nights,
			number_of_reviews = EXCLUDED.number_of_reviews
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, l := range listings {
		_, err = stmt.ExecContext(ctx,
			l.ID,
			l.Name,
			l.HostID,
			l.HostName,
			l.Neighbourhood,
			l.Latitude,
			l.Longitude,
			l.RoomType,
			l.Price,
			l.MinimumNights,
			l.NumberOfReviews,
		)
		if err != nil {
			return fmt.Errorf("failed to insert listing %s: %w", l.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Info("Saved %d listings into PostgreSQL", len(listings))
	return nil
}

// LoadListings reads every listing, ordered by id
func (s *PostgresStore) LoadListings(ctx context.Context) ([]*models.Listing, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, host_id, host_name, neighbourhood, latitude, longitude,
		       room_type, price, minimum_nights, number_of_reviews
		FROM listings
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	listings := make([]*models.Listing, 0)
	for rows.Next() {
		l := &models.Listing{}
		if err := rows.Scan(
			&l.ID, &l.Name, &l.HostID, &l.HostName, &l.Neighbourhood, &l.Latitude, &l.Longitude,
			&l.RoomType, &l.Price, &l.MinimumNights, &l.NumberOfReviews,
		); err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate listings: %w", err)
	}

	s.logger.Info("Loaded %d listings from PostgreSQL", len(listings))
	return listings, nil
}

// Close closes the database connection
func (s *PostgresStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
