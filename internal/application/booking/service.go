package booking

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
	Put(ctx context.Context, b *domain.Booking) error
	Get(ctx context.Context, bookingID string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	ListAll(ctx context.Context) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID, status string) error
	Delete(ctx context.Context, bookingID string) error
}

// CatalogReader resolves the booked scooter for the snapshot fields.
type CatalogReader interface {
	Get(ctx context.Context, scooterID string) (*domain.Scooter, error)
}

// Mailer sends the confirmation email. Failures never fail the booking.
type Mailer interface {
	SendEmail(to, subject, body string) error
	Configured() bool
}

// Notifier publishes ops events. Failures never fail the booking.
type Notifier interface {
	Publish(ctx context.Context, subject, message string) error
}

type Service interface {
	Create(ctx context.Context, userID string, req domain.CreateBookingRequest) (*domain.Booking, error)
	Get(ctx context.Context, userID, role, bookingID string) (*domain.Booking, error)
	ListMine(ctx context.Context, userID string) ([]domain.Booking, error)
	ListAll(ctx context.Context) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID, status string) (*domain.Booking, error)
	Delete(ctx context.Context, userID, role, bookingID string) error
}

type ServiceDeps struct {
	Store    Store
	Catalog  CatalogReader
	Mailer   Mailer
	Notifier Notifier
}

type service struct {
	store    Store
	catalog  CatalogReader
	mailer   Mailer
	notifier Notifier
}

func NewService(deps ServiceDeps) Service {
	return &service{store: deps.Store, catalog: deps.Catalog, mailer: deps.Mailer, notifier: deps.Notifier}
}

func (s *service) Create(ctx context.Context, userID string, req domain.CreateBookingRequest) (*domain.Booking, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), domain.ErrBadRequest)
	}

	date, err := time.Parse("2006-01-02", req.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("booking_date must be YYYY-MM-DD: %w", domain.ErrBadRequest)
	}
	if date.Before(time.Now().UTC().Truncate(24 * time.Hour)) {
		return nil, fmt.Errorf("booking_date cannot be in the past: %w", domain.ErrBadRequest)
	}

	sc, err := s.catalog.Get(ctx, req.ScooterID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("unknown scooter %s: %w", req.ScooterID, domain.ErrBadRequest)
		}
		return nil, err
	}

	now := time.Now().UTC()
	b := &domain.Booking{
		BookingID:    id.New(),
		UserID:       userID,
		ScooterID:    sc.ScooterID,
		ScooterName:  sc.Name,
		ScooterPrice: sc.Price,
		Showroom:     req.Showroom,
		BookingDate:  date,
		BookingTime:  req.BookingTime,
		Status:       domain.BookingPending,
		CustomerInfo: req.CustomerInfo,
		Notes:        req.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.Put(ctx, b); err != nil {
		return nil, err
	}

	if s.mailer.Configured() {
		if err := s.mailer.SendEmail(b.CustomerInfo.Email, "Your MetroVolt test ride is booked", confirmationBody(b)); err != nil {
			slog.Warn("failed to send booking confirmation", "booking_id", b.BookingID, "err", err)
		}
	}
	if err := s.notifier.Publish(ctx, "New test ride booking", fmt.Sprintf("Booking %s for %s at %s on %s %s",
		b.BookingID, b.ScooterName, b.Showroom.Name, req.BookingDate, b.BookingTime)); err != nil {
		slog.Warn("failed to publish booking notification", "booking_id", b.BookingID, "err", err)
	}
	return b, nil
}

func (s *service) Get(ctx context.Context, userID, role, bookingID string) (*domain.Booking, error) {
	b, err := s.store.Get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID && role != domain.RoleAdmin {
		return nil, fmt.Errorf("booking belongs to another user: %w", domain.ErrForbidden)
	}
	return b, nil
}

func (s *service) ListMine(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.store.ListByUser(ctx, userID)
}

func (s *service) ListAll(ctx context.Context) ([]domain.Booking, error) {
	return s.store.ListAll(ctx)
}

func (s *service) UpdateStatus(ctx context.Context, bookingID, status string) (*domain.Booking, error) {
	if !domain.ValidBookingStatus(status) {
		return nil, fmt.Errorf("invalid booking status %q: %w", status, domain.ErrBadRequest)
	}
	if _, err := s.store.Get(ctx, bookingID); err != nil {
		return nil, err
	}
	if err := s.store.UpdateStatus(ctx, bookingID, status); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, bookingID)
}

func (s *service) Delete(ctx context.Context, userID, role, bookingID string) error {
	b, err := s.store.Get(ctx, bookingID)
	if err != nil {
		return err
	}
	if b.UserID != userID && role != domain.RoleAdmin {
		return fmt.Errorf("booking belongs to another user: %w", domain.ErrForbidden)
	}
	return s.store.Delete(ctx, bookingID)
}

func confirmationBody(b *domain.Booking) string {
	return fmt.Sprintf(`<div style="font-family:sans-serif;max-width:480px;margin:0 auto">
<h2>Test ride confirmed</h2>
<p>Hi %s, your test ride of the <b>%s</b> is booked.</p>
<p><b>%s</b><br>%s, %s<br>%s at %s</p>
<p>Bring a valid ID. See you there!</p>
</div>`, b.CustomerInfo.Name, b.ScooterName,
		b.Showroom.Name, b.Showroom.Address, b.Showroom.City,
		b.BookingDate.Format("Monday, January 2 2006"), b.BookingTime)
}
