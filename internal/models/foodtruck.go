package models

import "time"

const (
	// MinLocationID is the smallest accepted locationId.
	MinLocationID int64 = 1
	// MaxLocationID is the largest accepted locationId.
	MaxLocationID int64 = 1_000_000_000
	// DefaultBlock is the block index key used for permits without a block.
	DefaultBlock = "0000"
	// MaxStringLength bounds the free-text permit fields.
	MaxStringLength = 2048
)

// FoodTruck represents one mobile food facility permit. Only LocationID and Block carry meaning for
// the store; everything else is payload validated at the HTTP boundary.
type FoodTruck struct {
	LocationID          int64      `json:"locationId" binding:"required,min=1,max=1000000000"`
	Applicant           string     `json:"applicant" binding:"required,max=2048"`
	FacilityType        string     `json:"facilityType,omitempty" binding:"max=50"`
	LocationDescription string     `json:"locationDescription,omitempty" binding:"max=2048"`
	Address             string     `json:"address,omitempty" binding:"max=2048"`
	BlockLot            string     `json:"blockLot,omitempty" binding:"max=10"`
	Block               string     `json:"block,omitempty" binding:"max=6"`
	Lot                 string     `json:"lot,omitempty" binding:"max=4"`
	Permit              string     `json:"permit,omitempty" binding:"max=11"`
	Status              string     `json:"status,omitempty" binding:"max=50"`
	FoodItems           string     `json:"foodItems,omitempty" binding:"max=2048"`
	X                   string     `json:"x,omitempty" binding:"max=20"`
	Y                   string     `json:"y,omitempty" binding:"max=20"`
	Latitude            string     `json:"latitude,omitempty" binding:"omitempty,max=20,coordinate"`
	Longitude           string     `json:"longitude,omitempty" binding:"omitempty,max=20,coordinate"`
	Schedule            string     `json:"schedule,omitempty" binding:"omitempty,url"`
	Approved            *time.Time `json:"approved,omitempty"`
	Received            string     `json:"received,omitempty" binding:"max=25"`
	PriorPermit         int        `json:"priorPermit,omitempty" binding:"min=0"`
	ExpirationDate      *time.Time `json:"expirationDate,omitempty"`
	Location            *Location  `json:"location,omitempty"`
}

// BlockKey returns the key the permit is indexed under in the block index.
func (f *FoodTruck) BlockKey() string {
	if f.Block == "" {
		return DefaultBlock
	}
	return f.Block
}

// Clone returns a deep copy so callers cannot reach into stored records.
func (f *FoodTruck) Clone() FoodTruck {
	c := *f
	if f.Approved != nil {
		t := *f.Approved
		c.Approved = &t
	}
	if f.ExpirationDate != nil {
		t := *f.ExpirationDate
		c.ExpirationDate = &t
	}
	if f.Location != nil {
		loc := *f.Location
		c.Location = &loc
	}
	return c
}
