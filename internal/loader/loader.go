package loader

import (
	"context"
	"errors"
	"fmt"

	"foodtruck-api/internal/models"
)

// ErrIncompleteLoad is returned by Populate when the bulk insert stopped on a duplicate locationId.
var ErrIncompleteLoad = errors.New("loader: dataset was not fully loaded")

// Source produces the records the catalog is seeded with at startup.
type Source interface {
	LoadAll(ctx context.Context) ([]*models.FoodTruck, error)
}

// Inserter is the bulk-insert side of the record store.
type Inserter interface {
	InsertAll(records []*models.FoodTruck) (bool, error)
	Len() int
}

// Populate loads every record from src and bulk-inserts them into dst. Any failure is meant to stop
// the process; records inserted before a failure are left in dst.
func Populate(ctx context.Context, src Source, dst Inserter) error {
	records, err := src.LoadAll(ctx)
	if err != nil {
		return err
	}

	ok, err := dst.InsertAll(records)
	if err != nil {
		return fmt.Errorf("loader: failed to insert records: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: duplicate locationId after %d of %d records", ErrIncompleteLoad, dst.Len(), len(records))
	}

	return nil
}
