package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/metrovolt-api/internal/domain"
	"github.com/metrovolt-api/internal/pkg/id"
	"github.com/metrovolt-api/internal/pkg/validate"
)

// Store is the persistence surface the service needs.
type Store interface {
	Put(ctx context.Context, o *domain.Order) error
	Get(ctx context.Context, orderID string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
	Delete(ctx context.Context, orderID string) error
}

// CatalogReader resolves ordered scooters for server-side pricing.
type CatalogReader interface {
	Get(ctx context.Context, scooterID string) (*domain.Scooter, error)
}

// Notifier publishes ops events. Failures never fail the order.
type Notifier interface {
	Publish(ctx context.Context, subject, message string) error
}

type Service interface {
	Create(ctx context.Context, userID string, req domain.CreateOrderRequest) (*domain.Order, error)
	Get(ctx context.Context, userID, role, orderID string) (*domain.Order, error)
	ListMine(ctx context.Context, userID string) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) (*domain.Order, error)
	Delete(ctx context.Context, orderID string) error
}

type ServiceDeps struct {
	Store    Store
	Catalog  CatalogReader
	Notifier Notifier
}

type service struct {
	store    Store
	catalog  CatalogReader
	notifier Notifier
}

func NewService(deps ServiceDeps) Service {
	return &service{store: deps.Store, catalog: deps.Catalog, notifier: deps.Notifier}
}

// Create prices every line item from the catalog, ignoring any
// client-supplied prices.
func (s *service) Create(ctx context.Context, userID string, req domain.CreateOrderRequest) (*domain.Order, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), domain.ErrBadRequest)
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	var total float64
	for _, item := range req.Items {
		sc, err := s.catalog.Get(ctx, item.ScooterID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("unknown scooter %s: %w", item.ScooterID, domain.ErrBadRequest)
			}
			return nil, err
		}
		if !sc.InStock {
			return nil, fmt.Errorf("scooter %s is out of stock: %w", sc.Name, domain.ErrBadRequest)
		}
		item.Price = sc.Price
		items = append(items, item)
		total += sc.Price * float64(item.Quantity)
	}

	now := time.Now().UTC()
	o := &domain.Order{
		OrderID:         id.New(),
		UserID:          userID,
		Items:           items,
		TotalAmount:     total,
		Status:          domain.OrderPending,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.store.Put(ctx, o); err != nil {
		return nil, err
	}

	if err := s.notifier.Publish(ctx, "New order", fmt.Sprintf("Order %s placed, total %.2f", o.OrderID, o.TotalAmount)); err != nil {
		slog.Warn("failed to publish order notification", "order_id", o.OrderID, "err", err)
	}
	return o, nil
}

func (s *service) Get(ctx context.Context, userID, role, orderID string) (*domain.Order, error) {
	o, err := s.store.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID && role != domain.RoleAdmin {
		return nil, fmt.Errorf("order belongs to another user: %w", domain.ErrForbidden)
	}
	return o, nil
}

func (s *service) ListMine(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.store.ListByUser(ctx, userID)
}

func (s *service) ListAll(ctx context.Context) ([]domain.Order, error) {
	return s.store.ListAll(ctx)
}

func (s *service) UpdateStatus(ctx context.Context, orderID, status string) (*domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return nil, fmt.Errorf("invalid order status %q: %w", status, domain.ErrBadRequest)
	}
	if _, err := s.store.Get(ctx, orderID); err != nil {
		return nil, err
	}
	if err := s.store.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, orderID)
}

func (s *service) Delete(ctx context.Context, orderID string) error {
	if _, err := s.store.Get(ctx, orderID); err != nil {
		return err
	}
	return s.store.Delete(ctx, orderID)
}
