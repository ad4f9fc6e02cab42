package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/metrovolt-api/internal/domain"
	"github.com/metrovolt-api/internal/pkg/id"
	"github.com/metrovolt-api/internal/pkg/validate"
)

// Store is the persistence surface the service needs.
type Store interface {
	Put(ctx context.Context, rv *domain.Review) error
	Get(ctx context.Context, reviewID string) (*domain.Review, error)
	ListByScooter(ctx context.Context, scooterID string) ([]domain.Review, error)
	ListAll(ctx context.Context) ([]domain.Review, error)
	FindByUserAndScooter(ctx context.Context, userID, scooterID string) (*domain.Review, error)
	Update(ctx context.Context, reviewID string, updates map[string]interface{}) error
	Delete(ctx context.Context, reviewID string) error
}

// PurchaseChecker reports whether a user has a non-cancelled order
// containing the scooter.
type PurchaseChecker interface {
	HasPurchased(ctx context.Context, userID, scooterID string) (bool, error)
}

// UserReader resolves the reviewer's display name.
type UserReader interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
}

type Service interface {
	Create(ctx context.Context, userID string, req domain.CreateReviewRequest) (*domain.Review, error)
	Get(ctx context.Context, reviewID string) (*domain.Review, error)
	List(ctx context.Context, scooterID string) ([]domain.Review, error)
	Update(ctx context.Context, userID, role, reviewID string, req domain.UpdateReviewRequest) (*domain.Review, error)
	Delete(ctx context.Context, userID, role, reviewID string) error
}

type ServiceDeps struct {
	Store     Store
	Purchases PurchaseChecker
	Users     UserReader
}

type service struct {
	store     Store
	purchases PurchaseChecker
	users     UserReader
}

func NewService(deps ServiceDeps) Service {
	return &service{store: deps.Store, purchases: deps.Purchases, users: deps.Users}
}

func (s *service) Create(ctx context.Context, userID string, req domain.CreateReviewRequest) (*domain.Review, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), domain.ErrBadRequest)
	}

	if _, err := s.store.FindByUserAndScooter(ctx, userID, req.ScooterID); err == nil {
		return nil, fmt.Errorf("you have already reviewed this scooter: %w", domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	purchased, err := s.purchases.HasPurchased(ctx, userID, req.ScooterID)
	if err != nil {
		return nil, err
	}
	if !purchased {
		return nil, fmt.Errorf("only customers who purchased this scooter can review it: %w", domain.ErrForbidden)
	}

	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rv := &domain.Review{
		ReviewID:         id.New(),
		UserID:           userID,
		UserName:         u.Name,
		ScooterID:        req.ScooterID,
		Rating:           req.Rating,
		Comment:          req.Comment,
		VerifiedPurchase: true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.store.Put(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *service) Get(ctx context.Context, reviewID string) (*domain.Review, error) {
	return s.store.Get(ctx, reviewID)
}

// List returns a scooter's reviews when scooterID is set, all reviews
// otherwise. Newest first either way.
func (s *service) List(ctx context.Context, scooterID string) ([]domain.Review, error) {
	if scooterID != "" {
		return s.store.ListByScooter(ctx, scooterID)
	}
	return s.store.ListAll(ctx)
}

func (s *service) Update(ctx context.Context, userID, role, reviewID string, req domain.UpdateReviewRequest) (*domain.Review, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), domain.ErrBadRequest)
	}
	rv, err := s.store.Get(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if rv.UserID != userID && role != domain.RoleAdmin {
		return nil, fmt.Errorf("review belongs to another user: %w", domain.ErrForbidden)
	}

	updates := map[string]interface{}{}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}
	if req.Comment != nil {
		updates["comment"] = *req.Comment
	}
	if len(updates) == 0 {
		return rv, nil
	}
	if err := s.store.Update(ctx, reviewID, updates); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, reviewID)
}

func (s *service) Delete(ctx context.Context, userID, role, reviewID string) error {
	rv, err := s.store.Get(ctx, reviewID)
	if err != nil {
		return err
	}
	if rv.UserID != userID && role != domain.RoleAdmin {
		return fmt.Errorf("review belongs to another user: %w", domain.ErrForbidden)
	}
	return s.store.Delete(ctx, reviewID)
}
