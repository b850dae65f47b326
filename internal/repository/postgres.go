package repository

import (
	"context"
	"fmt"

	"foodtruck-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
	CREATE TABLE IF NOT EXISTS food_trucks (
		location_id BIGINT PRIMARY KEY CHECK (location_id BETWEEN 1 AND 1000000000),
		applicant VARCHAR(2048) NOT NULL,
		facility_type VARCHAR(50) NOT NULL DEFAULT '',
		location_description VARCHAR(2048) NOT NULL DEFAULT '',
		address VARCHAR(2048) NOT NULL DEFAULT '',
		block_lot VARCHAR(10) NOT NULL DEFAULT '',
		block VARCHAR(6) NOT NULL DEFAULT '',
		lot VARCHAR(4) NOT NULL DEFAULT '',
		permit VARCHAR(11) NOT NULL DEFAULT '',
		status VARCHAR(50) NOT NULL DEFAULT '',
		food_items VARCHAR(2048) NOT NULL DEFAULT '',
		x VARCHAR(20) NOT NULL DEFAULT '',
		y VARCHAR(20) NOT NULL DEFAULT '',
		latitude VARCHAR(20) NOT NULL DEFAULT '',
		longitude VARCHAR(20) NOT NULL DEFAULT '',
		schedule TEXT NOT NULL DEFAULT '',
		approved TIMESTAMPTZ,
		received VARCHAR(25) NOT NULL DEFAULT '',
		prior_permit INTEGER NOT NULL DEFAULT 0,
		expiration_date TIMESTAMPTZ,
		location_latitude VARCHAR(20) NOT NULL DEFAULT '',
		location_longitude VARCHAR(20) NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS food_trucks_block_idx ON food_trucks (block);
`

var columns = []string{
	"location_id", "applicant", "facility_type", "location_description", "address",
	"block_lot", "block", "lot", "permit", "status", "food_items", "x", "y",
	"latitude", "longitude", "schedule", "approved", "received", "prior_permit",
	"expiration_date", "location_latitude", "location_longitude",
}

// Repository reads and writes the food truck snapshot table in PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the snapshot table and its block index if they do not exist
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// CopyFoodTrucks bulk inserts records with the COPY protocol
func (r *Repository) CopyFoodTrucks(ctx context.Context, records []*models.FoodTruck) (int64, error) {
	n, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"food_trucks"},
		columns,
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			ft := records[i]
			var locLat, locLon string
			if ft.Location != nil {
				locLat, locLon = ft.Location.Latitude, ft.Location.Longitude
			}
			return []any{
				ft.LocationID, ft.Applicant, ft.FacilityType, ft.LocationDescription, ft.Address,
				ft.BlockLot, ft.Block, ft.Lot, ft.Permit, ft.Status, ft.FoodItems, ft.X, ft.Y,
				ft.Latitude, ft.Longitude, ft.Schedule, ft.Approved, ft.Received, ft.PriorPermit,
				ft.ExpirationDate, locLat, locLon,
			}, nil
		}),
	)
	if err != nil {
		return n, fmt.Errorf("repository: failed to copy food trucks: %w", err)
	}
	return n, nil
}

// CountFoodTrucks returns the number of rows in the snapshot table
func (r *Repository) CountFoodTrucks(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM food_trucks").Scan(&count); err != nil {
		return 0, fmt.Errorf("repository: failed to count food trucks: %w", err)
	}
	return count, nil
}

// LoadAll reads the whole snapshot ordered by location_id
func (r *Repository) LoadAll(ctx context.Context) ([]*models.FoodTruck, error) {
	sql := `
		SELECT
			location_id, applicant, facility_type, location_description, address,
			block_lot, block, lot, permit, status, food_items, x, y,
			latitude, longitude, schedule, approved, received, prior_permit,
			expiration_date, location_latitude, location_longitude
		FROM food_trucks
		ORDER BY location_id
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute load query: %w", err)
	}
	defer rows.Close()

	trucks := []*models.FoodTruck{}
	for rows.Next() {
		var ft models.FoodTruck
		var locLat, locLon string
		err := rows.Scan(
			&ft.LocationID,
			&ft.Applicant,
			&ft.FacilityType,
			&ft.LocationDescription,
			&ft.Address,
			&ft.BlockLot,
			&ft.Block,
			&ft.Lot,
			&ft.Permit,
			&ft.Status,
			&ft.FoodItems,
			&ft.X,
			&ft.Y,
			&ft.Latitude,
			&ft.Longitude,
			&ft.Schedule,
			&ft.Approved,
			&ft.Received,
			&ft.PriorPermit,
			&ft.ExpirationDate,
			&locLat,
			&locLon,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan food truck: %w", err)
		}
		if locLat != "" || locLon != "" {
			ft.Location = &models.Location{Latitude: locLat, Longitude: locLon}
		}
		trucks = append(trucks, &ft)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return trucks, nil
}
