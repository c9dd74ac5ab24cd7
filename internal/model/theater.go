package model

// Theater is a venue where movies are screened.  Theaters are static
// reference data created by the seed and never modified.
type Theater struct {
	ID      int64  `json:"id"`      // theaters.id
	Name    string `json:"name"`    // theaters.name
	Address string `json:"address"` // theaters.address
	Area    string `json:"area"`    // theaters.area
	City    string `json:"city"`    // theaters.city
}
