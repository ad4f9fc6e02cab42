package content

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/metrovolt-api/internal/domain"
)

// Store is the persistence surface the service needs.
type Store interface {
	Put(ctx context.Context, c *domain.WebsiteContent) error
	Get(ctx context.Context, section string) (*domain.WebsiteContent, error)
	Scan(ctx context.Context) ([]domain.WebsiteContent, error)
}

type Service interface {
	// Get returns the stored section, falling back to built-in defaults
	// when nothing has been saved yet.
	Get(ctx context.Context, section string) (*domain.WebsiteContent, error)
	List(ctx context.Context) (map[string]*domain.WebsiteContent, error)
	Update(ctx context.Context, section string, c *domain.WebsiteContent) (*domain.WebsiteContent, error)
}

type service struct {
	store Store
}

func NewService(store Store) Service {
	return &service{store: store}
}

func (s *service) Get(ctx context.Context, section string) (*domain.WebsiteContent, error) {
	if !domain.ValidSection(section) {
		return nil, fmt.Errorf("unknown content section %q: %w", section, domain.ErrBadRequest)
	}
	c, err := s.store.Get(ctx, section)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return defaultContent(section), nil
		}
		return nil, err
	}
	return c, nil
}

// List returns every section, using defaults for sections never saved.
func (s *service) List(ctx context.Context) (map[string]*domain.WebsiteContent, error) {
	stored, err := s.store.Scan(ctx)
	if err != nil {
		return nil, err
	}
	out := map[string]*domain.WebsiteContent{
		domain.SectionHero:        defaultContent(domain.SectionHero),
		domain.SectionMetrics:     defaultContent(domain.SectionMetrics),
		domain.SectionEngineering: defaultContent(domain.SectionEngineering),
		domain.SectionSupport:     defaultContent(domain.SectionSupport),
		domain.SectionTechnology:  defaultContent(domain.SectionTechnology),
	}
	for i := range stored {
		out[stored[i].Section] = &stored[i]
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, section string, c *domain.WebsiteContent) (*domain.WebsiteContent, error) {
	if !domain.ValidSection(section) {
		return nil, fmt.Errorf("unknown content section %q: %w", section, domain.ErrBadRequest)
	}
	c.Section = section
	now := time.Now().UTC()
	if existing, err := s.store.Get(ctx, section); err == nil {
		c.CreatedAt = existing.CreatedAt
	} else {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	if err := s.store.Put(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func defaultContent(section string) *domain.WebsiteContent {
	c := &domain.WebsiteContent{Section: section}
	switch section {
	case domain.SectionHero:
		c.HeroTitle = "MetroVolt"
		c.HeroTagline = "Ride the current"
		c.HeroSubtitle = "Electric scooters built for the city"
		c.HeroDescription = "Premium e-scooters with real range, serviced locally."
		c.HeroButton1Text = "Shop scooters"
		c.HeroButton2Text = "Book a test ride"
	case domain.SectionMetrics:
		c.Metrics = []domain.Metric{
			{Label: "Riders", Value: "12,000+", Icon: "users"},
			{Label: "Cities", Value: "8", Icon: "map"},
			{Label: "Km ridden", Value: "4.2M", Icon: "road"},
		}
	case domain.SectionEngineering:
		c.EngineeringTitle = "Engineered to last"
		c.EngineeringDescription = "Aircraft-grade aluminum frames, IP66 sealing and field-replaceable batteries."
	case domain.SectionSupport:
		c.SupportTitle = "We ride with you"
		c.SupportDescription = "Two-year warranty and same-week servicing at every showroom."
	case domain.SectionTechnology:
		c.TechnologyTitle = "Smart by default"
		c.TechnologySubtitle = "Connected riding"
		c.TechnologyDescription = "App pairing, OTA firmware updates and theft alerts on every model."
	}
	return c
}
