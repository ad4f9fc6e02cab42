package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/metrovolt-api/internal/domain"
	"github.com/metrovolt-api/internal/pkg/emailcheck"
	"github.com/metrovolt-api/internal/pkg/id"
	"github.com/metrovolt-api/internal/pkg/validate"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the persistence surface the service needs.
type UserStore interface {
	Put(ctx context.Context, u *domain.User) error
	Get(ctx context.Context, userID string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Verifier answers whether an email holds a valid verified session and
// consumes it once registration succeeds.
type Verifier interface {
	IsVerified(ctx context.Context, email string) (bool, error)
	Consume(ctx context.Context, email string) error
}

// TokenSigner issues signed bearer tokens.
type TokenSigner interface {
	Sign(userID, role string) (string, error)
}

type Service interface {
	Register(ctx context.Context, req domain.RegisterRequest) (string, *domain.User, error)
	Login(ctx context.Context, req domain.LoginRequest) (string, *domain.User, error)
	Me(ctx context.Context, userID string) (*domain.User, error)
}

type ServiceDeps struct {
	Users    UserStore
	Verifier Verifier
	Signer   TokenSigner
}

type service struct {
	users    UserStore
	verifier Verifier
	signer   TokenSigner
}

func NewService(deps ServiceDeps) Service {
	return &service{users: deps.Users, verifier: deps.Verifier, signer: deps.Signer}
}

func (s *service) Register(ctx context.Context, req domain.RegisterRequest) (string, *domain.User, error) {
	if err := validate.Struct(req); err != nil {
		return "", nil, fmt.Errorf("%s: %w", err.Error(), domain.ErrBadRequest)
	}
	if err := emailcheck.Validate(req.Email); err != nil {
		return "", nil, err
	}

	verified, err := s.verifier.IsVerified(ctx, req.Email)
	if err != nil {
		return "", nil, err
	}
	if !verified {
		return "", nil, fmt.Errorf("email not verified, request and confirm a verification code first: %w", domain.ErrForbidden)
	}

	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return "", nil, fmt.Errorf("an account with this email already exists: %w", domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	u := &domain.User{
		UserID:       id.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Put(ctx, u); err != nil {
		return "", nil, err
	}

	// The verified session is single-use.
	if err := s.verifier.Consume(ctx, req.Email); err != nil {
		slog.Warn("failed to consume verification record", "email", req.Email, "err", err)
	}

	token, err := s.signer.Sign(u.UserID, u.Role)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *service) Login(ctx context.Context, req domain.LoginRequest) (string, *domain.User, error) {
	if err := validate.Struct(req); err != nil {
		return "", nil, fmt.Errorf("%s: %w", err.Error(), domain.ErrBadRequest)
	}

	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, fmt.Errorf("invalid email or password: %w", domain.ErrUnauthorized)
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return "", nil, fmt.Errorf("invalid email or password: %w", domain.ErrUnauthorized)
	}

	token, err := s.signer.Sign(u.UserID, u.Role)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *service) Me(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.Get(ctx, userID)
}
