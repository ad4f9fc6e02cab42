package scooter

import (
	"context"
	"fmt"
	"time"

	"github.com/metrovolt-api/internal/domain"
	"github.com/metrovolt-api/internal/pkg/id"
	"github.com/metrovolt-api/internal/pkg/validate"
)

// Store is the persistence surface the service needs.
type Store interface {
	Put(ctx context.Context, s *domain.Scooter) error
	Get(ctx context.Context, scooterID string) (*domain.Scooter, error)
	Scan(ctx context.Context) ([]domain.Scooter, error)
	Update(ctx context.Context, scooterID string, updates map[string]interface{}) error
	Delete(ctx context.Context, scooterID string) error
}

// ImageUploader stores catalog images and returns their URLs.
type ImageUploader interface {
	UploadImage(ctx context.Context, prefix string, data []byte) (string, error)
}

type Service interface {
	List(ctx context.Context) ([]domain.Scooter, error)
	Get(ctx context.Context, scooterID string) (*domain.Scooter, error)
	Create(ctx context.Context, input domain.ScooterInput, images [][]byte) (*domain.Scooter, error)
	Update(ctx context.Context, scooterID string, input domain.ScooterInput, newImages [][]byte) (*domain.Scooter, error)
	Delete(ctx context.Context, scooterID string) error
}

type ServiceDeps struct {
	Store  Store
	Images ImageUploader
}

type service struct {
	store  Store
	images ImageUploader
}

func NewService(deps ServiceDeps) Service {
	return &service{store: deps.Store, images: deps.Images}
}

const imagePrefix = "scooters"

func (s *service) List(ctx context.Context) ([]domain.Scooter, error) {
	return s.store.Scan(ctx)
}

func (s *service) Get(ctx context.Context, scooterID string) (*domain.Scooter, error) {
	return s.store.Get(ctx, scooterID)
}

func (s *service) Create(ctx context.Context, input domain.ScooterInput, images [][]byte) (*domain.Scooter, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), domain.ErrBadRequest)
	}

	urls, err := s.uploadAll(ctx, images)
	if err != nil {
		return nil, err
	}

	inStock := true
	if input.InStock != nil {
		inStock = *input.InStock
	}
	now := time.Now().UTC()
	sc := &domain.Scooter{
		ScooterID:   id.New(),
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		Images:      urls,
		Features:    input.Features,
		Specs:       input.Specs,
		Colors:      input.Colors,
		InStock:     inStock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.Put(ctx, sc); err != nil {
		return nil, err
	}
	return sc, nil
}

// Update applies the input fields and appends any newly uploaded images to
// the existing set.
func (s *service) Update(ctx context.Context, scooterID string, input domain.ScooterInput, newImages [][]byte) (*domain.Scooter, error) {
	existing, err := s.store.Get(ctx, scooterID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != "" {
		updates["name"] = input.Name
	}
	if input.Price > 0 {
		updates["price"] = input.Price
	}
	if input.Description != "" {
		updates["description"] = input.Description
	}
	if input.Features != nil {
		updates["features"] = input.Features
	}
	if input.Colors != nil {
		updates["colors"] = input.Colors
	}
	if input.Specs != (domain.ScooterSpecs{}) {
		updates["specs"] = input.Specs
	}
	if input.InStock != nil {
		updates["in_stock"] = *input.InStock
	}

	if len(newImages) > 0 {
		urls, err := s.uploadAll(ctx, newImages)
		if err != nil {
			return nil, err
		}
		updates["images"] = append(existing.Images, urls...)
	}

	if len(updates) > 0 {
		if err := s.store.Update(ctx, scooterID, updates); err != nil {
			return nil, err
		}
	}
	return s.store.Get(ctx, scooterID)
}

func (s *service) Delete(ctx context.Context, scooterID string) error {
	if _, err := s.store.Get(ctx, scooterID); err != nil {
		return err
	}
	return s.store.Delete(ctx, scooterID)
}

func (s *service) uploadAll(ctx context.Context, images [][]byte) ([]string, error) {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		url, err := s.images.UploadImage(ctx, imagePrefix, img)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}
