// Package store holds the in-memory food truck catalog: a primary table keyed by locationId and a
// secondary index keyed by block. It is safe for concurrent use without external locking.
package store

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"foodtruck-api/internal/models"
)

// Store is the concurrent record store. The zero value is not usable; construct with New.
//
// Records are inserted into the primary table before their id is added to the block index, so an
// index entry never references a missing record. A reader may briefly find a record by id before
// its block entry is visible; Insert does not return until both are in place.
type Store struct {
	records sync.Map // int64 -> *models.FoodTruck
	blocks  sync.Map // string -> *blockSet
	count   atomic.Int64
}

// blockSet is the set of locationIds sharing one block key. Each set carries its own lock so
// inserts into different blocks never contend.
type blockSet struct {
	mu  sync.RWMutex
	ids map[int64]struct{}
}

func (b *blockSet) add(id int64) {
	b.mu.Lock()
	b.ids[id] = struct{}{}
	b.mu.Unlock()
}

func (b *blockSet) snapshot() []int64 {
	b.mu.RLock()
	defer b.mu.RUnlock()

	ids := make([]int64, 0, len(b.ids))
	for id := range b.ids {
		ids = append(ids, id)
	}
	return ids
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Insert adds a copy of ft to the store. It returns false without error when a record with the
// same locationId already exists; the existing record is kept.
func (s *Store) Insert(ft *models.FoodTruck) (bool, error) {
	if ft == nil {
		return false, fmt.Errorf("store: food truck is nil: %w", ErrInvalidArgument)
	}
	if err := validateLocationID(ft.LocationID); err != nil {
		return false, err
	}

	rec := ft.Clone()
	if _, loaded := s.records.LoadOrStore(rec.LocationID, &rec); loaded {
		return false, nil
	}
	s.bucket(rec.BlockKey()).add(rec.LocationID)
	s.count.Add(1)

	return true, nil
}

// bucket returns the set for key, creating it if this is the first record in the block.
func (s *Store) bucket(key string) *blockSet {
	if v, ok := s.blocks.Load(key); ok {
		return v.(*blockSet)
	}
	v, _ := s.blocks.LoadOrStore(key, &blockSet{ids: make(map[int64]struct{})})
	return v.(*blockSet)
}

// InsertAll inserts records in order and stops at the first one that is not inserted. Records
// inserted before the failure stay in the store.
func (s *Store) InsertAll(records []*models.FoodTruck) (bool, error) {
	if records == nil {
		return false, fmt.Errorf("store: food truck list is nil: %w", ErrInvalidArgument)
	}

	for _, ft := range records {
		ok, err := s.Insert(ft)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

// Get returns the record with the given locationId.
func (s *Store) Get(locationID int64) (models.FoodTruck, bool, error) {
	if err := validateLocationID(locationID); err != nil {
		return models.FoodTruck{}, false, err
	}

	v, ok := s.records.Load(locationID)
	if !ok {
		return models.FoodTruck{}, false, nil
	}
	return v.(*models.FoodTruck).Clone(), true, nil
}

// GetByBlock returns the records indexed under block, ordered by locationId. The block is matched
// exactly; permits stored without a block are found under models.DefaultBlock. found is false when
// no record was ever indexed under the key.
func (s *Store) GetByBlock(block string) ([]models.FoodTruck, bool, error) {
	if block == "" {
		return nil, false, fmt.Errorf("store: block is empty: %w", ErrInvalidArgument)
	}

	v, ok := s.blocks.Load(block)
	if !ok {
		return nil, false, nil
	}

	ids := v.(*blockSet).snapshot()
	slices.Sort(ids)

	trucks := make([]models.FoodTruck, 0, len(ids))
	for _, id := range ids {
		rec, ok := s.records.Load(id)
		if !ok {
			continue
		}
		trucks = append(trucks, rec.(*models.FoodTruck).Clone())
	}

	return trucks, true, nil
}

// Values returns every record ordered by locationId. Inserts running concurrently may or may not
// be included.
func (s *Store) Values() []models.FoodTruck {
	trucks := make([]models.FoodTruck, 0, s.Len())
	s.records.Range(func(_, v any) bool {
		trucks = append(trucks, v.(*models.FoodTruck).Clone())
		return true
	})

	slices.SortFunc(trucks, func(a, b models.FoodTruck) int {
		return cmp.Compare(a.LocationID, b.LocationID)
	})

	return trucks
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	return int(s.count.Load())
}

func validateLocationID(id int64) error {
	if id < models.MinLocationID || id > models.MaxLocationID {
		return fmt.Errorf("store: locationId %d: %w: valid range is %d to %d",
			id, ErrOutOfRange, models.MinLocationID, models.MaxLocationID)
	}
	return nil
}
