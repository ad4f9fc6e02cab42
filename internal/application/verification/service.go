package verification

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/metrovolt-api/internal/domain"
	"github.com/metrovolt-api/internal/pkg/emailcheck"
)

// SendResult is the response payload for a code request. OTP is only
// populated in development mode, when no SMTP transport is configured.
type SendResult struct {
	Message   string `json:"message"`
	ExpiresIn int    `json:"expiresIn"`
	Mode      string `json:"mode,omitempty"`
	OTP       string `json:"otp,omitempty"`
}

// Store is the persistence surface the service needs.
type Store interface {
	Put(ctx context.Context, v *domain.EmailVerification) error
	Get(ctx context.Context, email string) (*domain.EmailVerification, error)
	Delete(ctx context.Context, email string) error
	IncrementAttempts(ctx context.Context, email string) (int, error)
	MarkVerified(ctx context.Context, email string) error
}

// Mailer delivers the code. Configured() false means development mode.
type Mailer interface {
	SendEmail(to, subject, body string) error
	Configured() bool
}

type Service interface {
	// Send issues a fresh code for the email, superseding any prior one.
	Send(ctx context.Context, email string) (*SendResult, error)
	// Verify checks a submitted code against the pending record.
	Verify(ctx context.Context, email, code string) error
	// IsVerified reports whether a valid verified record exists. Pure read.
	IsVerified(ctx context.Context, email string) (bool, error)
	// Consume deletes the verified record once registration has used it.
	Consume(ctx context.Context, email string) error
}

type ServiceDeps struct {
	Store  Store
	Mailer Mailer
}

type service struct {
	store  Store
	mailer Mailer
}

func NewService(deps ServiceDeps) Service {
	return &service{store: deps.Store, mailer: deps.Mailer}
}

func (s *service) Send(ctx context.Context, email string) (*SendResult, error) {
	// Only the syntactic shape is checked here. The full address policy
	// runs at registration, once the inbox has proven reachable.
	if !emailcheck.ValidFormat(email) {
		return nil, fmt.Errorf("invalid email format: %w", domain.ErrBadRequest)
	}

	code, err := generateCode()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	v := &domain.EmailVerification{
		Email:     email,
		Code:      code,
		Verified:  false,
		Attempts:  0,
		ExpiresAt: now.Add(domain.VerificationTTL).Unix(),
		CreatedAt: now,
	}
	// PutItem keyed by email atomically supersedes any earlier code.
	if err := s.store.Put(ctx, v); err != nil {
		return nil, err
	}

	expiresIn := int(domain.VerificationTTL.Seconds())

	if !s.mailer.Configured() {
		slog.Info("SMTP not configured, returning verification code inline", "email", email)
		return &SendResult{
			Message:   "Verification code generated (development mode)",
			ExpiresIn: expiresIn,
			Mode:      "development",
			OTP:       code,
		}, nil
	}

	if err := s.mailer.SendEmail(email, "Your MetroVolt verification code", verificationBody(code)); err != nil {
		// Roll back so no valid code exists that the user never received.
		if delErr := s.store.Delete(ctx, email); delErr != nil {
			slog.Warn("failed to roll back verification record", "email", email, "err", delErr)
		}
		return nil, fmt.Errorf("send verification email: %w", domain.ErrDeliveryFailed)
	}

	return &SendResult{
		Message:   "Verification code sent to your email",
		ExpiresIn: expiresIn,
	}, nil
}

func (s *service) Verify(ctx context.Context, email, code string) error {
	v, err := s.store.Get(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no verification code found for this email: %w", domain.ErrNotFound)
		}
		return err
	}
	if v.Verified {
		return fmt.Errorf("no verification code found for this email: %w", domain.ErrNotFound)
	}

	now := time.Now().Unix()
	if v.ExpiresAt <= now {
		if err := s.store.Delete(ctx, email); err != nil {
			slog.Warn("failed to delete expired verification record", "email", email, "err", err)
		}
		return fmt.Errorf("verification code expired, request a new one: %w", domain.ErrBadRequest)
	}

	if v.Attempts >= domain.MaxVerifyAttempts {
		if err := s.store.Delete(ctx, email); err != nil {
			slog.Warn("failed to delete exhausted verification record", "email", email, "err", err)
		}
		return fmt.Errorf("too many failed attempts, request a new code: %w", domain.ErrBadRequest)
	}

	if v.Code != code {
		n, err := s.store.IncrementAttempts(ctx, email)
		if err != nil {
			return err
		}
		if n >= domain.MaxVerifyAttempts {
			if err := s.store.Delete(ctx, email); err != nil {
				slog.Warn("failed to delete exhausted verification record", "email", email, "err", err)
			}
			return fmt.Errorf("too many failed attempts, request a new code: %w", domain.ErrBadRequest)
		}
		return fmt.Errorf("invalid verification code, %d attempts remaining: %w", domain.MaxVerifyAttempts-n, domain.ErrBadRequest)
	}

	// Record is retained as proof for the registration flow.
	return s.store.MarkVerified(ctx, email)
}

func (s *service) IsVerified(ctx context.Context, email string) (bool, error) {
	v, err := s.store.Get(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return v.Verified && v.ExpiresAt > time.Now().Unix(), nil
}

func (s *service) Consume(ctx context.Context, email string) error {
	return s.store.Delete(ctx, email)
}

// generateCode returns a uniform 6-digit code in [100000, 999999].
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func verificationBody(code string) string {
	return fmt.Sprintf(`<div style="font-family:sans-serif;max-width:480px;margin:0 auto">
<h2>Verify your email</h2>
<p>Use this code to verify your email address. It expires in 10 minutes.</p>
<p style="font-size:32px;letter-spacing:8px;font-weight:bold">%s</p>
<p>If you did not request this, you can ignore this message.</p>
</div>`, code)
}
