// Package loader reads the food truck dataset and seeds the record store with it.
package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"foodtruck-api/internal/models"
)

// FileSource reads a JSON array of permits in the city's export format.
type FileSource struct {
	path string
}

// NewFileSource creates a source reading from path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// LoadAll reads the whole file and decodes it.
func (f *FileSource) LoadAll(ctx context.Context) ([]*models.FoodTruck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("loader: failed to read %s: %w", f.path, err)
	}

	records, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", f.path, err)
	}
	return records, nil
}

// Decode parses a JSON array of export records. Every record must carry an objectid.
func Decode(data []byte) ([]*models.FoodTruck, error) {
	var rows []importRecord
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}

	records := make([]*models.FoodTruck, 0, len(rows))
	for i, row := range rows {
		if row.ObjectID == nil {
			return nil, fmt.Errorf("record %d: objectid is required", i)
		}
		records = append(records, row.toModel())
	}
	return records, nil
}

// importRecord mirrors one element of the city export. Keys are lower case there; objectid becomes
// the locationId.
type importRecord struct {
	ObjectID            *flexInt         `json:"objectid"`
	Applicant           string           `json:"applicant"`
	FacilityType        string           `json:"facilitytype"`
	LocationDescription string           `json:"locationdescription"`
	Address             string           `json:"address"`
	BlockLot            string           `json:"blocklot"`
	Block               string           `json:"block"`
	Lot                 string           `json:"lot"`
	Permit              string           `json:"permit"`
	Status              string           `json:"status"`
	FoodItems           string           `json:"fooditems"`
	X                   string           `json:"x"`
	Y                   string           `json:"y"`
	Latitude            string           `json:"latitude"`
	Longitude           string           `json:"longitude"`
	Schedule            string           `json:"schedule"`
	Approved            flexTime         `json:"approved"`
	Received            string           `json:"received"`
	PriorPermit         flexInt          `json:"priorpermit"`
	ExpirationDate      flexTime         `json:"expirationdate"`
	Location            *models.Location `json:"location"`
}

func (r importRecord) toModel() *models.FoodTruck {
	return &models.FoodTruck{
		LocationID:          int64(*r.ObjectID),
		Applicant:           r.Applicant,
		FacilityType:        r.FacilityType,
		LocationDescription: r.LocationDescription,
		Address:             r.Address,
		BlockLot:            r.BlockLot,
		Block:               r.Block,
		Lot:                 r.Lot,
		Permit:              r.Permit,
		Status:              r.Status,
		FoodItems:           r.FoodItems,
		X:                   r.X,
		Y:                   r.Y,
		Latitude:            r.Latitude,
		Longitude:           r.Longitude,
		Schedule:            r.Schedule,
		Approved:            r.Approved.ptr(),
		Received:            r.Received,
		PriorPermit:         int(r.PriorPermit),
		ExpirationDate:      r.ExpirationDate.ptr(),
		Location:            r.Location,
	}
}

// flexInt accepts both 42 and "42"; the export quotes every number.
type flexInt int64

func (n *flexInt) UnmarshalJSON(b []byte) error {
	s := string(bytes.Trim(b, `"`))
	if s == "" || s == "null" {
		return nil
	}
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %s: %w", b, err)
	}
	*n = flexInt(v)
	return nil
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"01/02/2006 03:04:05 PM",
	"2006-01-02",
}

// flexTime accepts the export's zone-less timestamps as well as RFC 3339.
type flexTime struct {
	t     time.Time
	valid bool
}

func (ft *flexTime) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("invalid timestamp %s: %w", b, err)
	}
	if s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			ft.t, ft.valid = t.UTC(), true
			return nil
		}
	}
	return errors.New("unrecognised timestamp " + strconv.Quote(s))
}

func (ft flexTime) ptr() *time.Time {
	if !ft.valid {
		return nil
	}
	t := ft.t
	return &t
}
