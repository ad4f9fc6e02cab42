package showroom

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/metrovolt-api/internal/domain"
)

// The showroom network is a small fixed dataset, served from memory.
var showrooms = []domain.Showroom{
	{
		ShowroomID: "sr-austin", Name: "MetroVolt Austin", Address: "1201 S Congress Ave",
		City: "Austin", State: "TX", ZipCode: "78704", Phone: "+1 512 555 0142",
		Email: "austin@metrovolt.example", Latitude: 30.2500, Longitude: -97.7490,
		Hours: "Mon-Sat 10:00-19:00",
	},
	{
		ShowroomID: "sr-denver", Name: "MetroVolt Denver", Address: "2500 Larimer St",
		City: "Denver", State: "CO", ZipCode: "80205", Phone: "+1 303 555 0178",
		Email: "denver@metrovolt.example", Latitude: 39.7570, Longitude: -104.9850,
		Hours: "Mon-Sat 10:00-19:00",
	},
	{
		ShowroomID: "sr-portland", Name: "MetroVolt Portland", Address: "1033 SE Main St",
		City: "Portland", State: "OR", ZipCode: "97214", Phone: "+1 503 555 0116",
		Email: "portland@metrovolt.example", Latitude: 45.5155, Longitude: -122.6549,
		Hours: "Tue-Sun 10:00-18:00",
	},
	{
		ShowroomID: "sr-chicago", Name: "MetroVolt Chicago", Address: "820 W Lake St",
		City: "Chicago", State: "IL", ZipCode: "60607", Phone: "+1 312 555 0193",
		Email: "chicago@metrovolt.example", Latitude: 41.8855, Longitude: -87.6496,
		Hours: "Mon-Sat 10:00-19:00",
	},
	{
		ShowroomID: "sr-miami", Name: "MetroVolt Miami", Address: "169 NW 23rd St",
		City: "Miami", State: "FL", ZipCode: "33127", Phone: "+1 305 555 0121",
		Email: "miami@metrovolt.example", Latitude: 25.7991, Longitude: -80.1986,
		Hours: "Mon-Sun 11:00-20:00",
	},
}

type Service interface {
	List(ctx context.Context) []domain.Showroom
	Get(ctx context.Context, showroomID string) (*domain.Showroom, error)
	// Nearest returns up to limit showrooms sorted by haversine distance,
	// or the city's showrooms when only a city is given.
	Nearest(ctx context.Context, city string, lat, lng float64, limit int) ([]domain.Showroom, error)
}

type service struct{}

func NewService() Service {
	return &service{}
}

func (s *service) List(_ context.Context) []domain.Showroom {
	out := make([]domain.Showroom, len(showrooms))
	copy(out, showrooms)
	return out
}

func (s *service) Get(_ context.Context, showroomID string) (*domain.Showroom, error) {
	for _, sr := range showrooms {
		if sr.ShowroomID == showroomID {
			return &sr, nil
		}
	}
	return nil, fmt.Errorf("showroom not found: %w", domain.ErrNotFound)
}

func (s *service) Nearest(_ context.Context, city string, lat, lng float64, limit int) ([]domain.Showroom, error) {
	if limit <= 0 {
		limit = 3
	}

	if lat == 0 && lng == 0 {
		if city == "" {
			return nil, fmt.Errorf("latitude/longitude or city required: %w", domain.ErrBadRequest)
		}
		var out []domain.Showroom
		for _, sr := range showrooms {
			if strings.EqualFold(sr.City, city) {
				out = append(out, sr)
			}
		}
		if len(out) == 0 {
			return nil, fmt.Errorf("no showrooms in %s: %w", city, domain.ErrNotFound)
		}
		return out, nil
	}

	out := make([]domain.Showroom, len(showrooms))
	copy(out, showrooms)
	for i := range out {
		out[i].Distance = haversineKm(lat, lng, out[i].Latitude, out[i].Longitude)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

const earthRadiusKm = 6371.0

func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
