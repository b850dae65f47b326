package models

// Location is the nested coordinate pair published alongside a permit, kept as the strings the city dataset uses.
type Location struct {
	Latitude  string `json:"latitude,omitempty" binding:"omitempty,max=20,coordinate"`
	Longitude string `json:"longitude,omitempty" binding:"omitempty,max=20,coordinate"`
}
