package domain

type Showroom struct {
	ShowroomID    string  `json:"id"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	ZipCode       string  `json:"zip_code"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Hours         string  `json:"hours"`
	GoogleMapsURL string  `json:"google_maps_url"`
	Image         string  `json:"image"`

	// Distance is filled in by nearest-showroom queries (km); zero otherwise.
	Distance float64 `json:"distance,omitempty"`
}
