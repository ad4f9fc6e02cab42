package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/metrovolt-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// --- mocks ---

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) Put(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}
func (m *mockUserStore) Get(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockVerifier struct{ mock.Mock }

func (m *mockVerifier) IsVerified(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}
func (m *mockVerifier) Consume(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

type mockSigner struct{ mock.Mock }

func (m *mockSigner) Sign(userID, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func newService(us *mockUserStore, v *mockVerifier, sg *mockSigner) Service {
	return NewService(ServiceDeps{Users: us, Verifier: v, Signer: sg})
}

func notFoundErr() error {
	return fmt.Errorf("user not found: %w", domain.ErrNotFound)
}

func registerReq() domain.RegisterRequest {
	return domain.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "s3cret99"}
}

// --- Register ---

func TestRegister_UnverifiedEmail_Forbidden(t *testing.T) {
	us, v, sg := &mockUserStore{}, &mockVerifier{}, &mockSigner{}
	v.On("IsVerified", mock.Anything, "ada@example.com").Return(false, nil)

	_, _, err := newService(us, v, sg).Register(context.Background(), registerReq())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Contains(t, err.Error(), "not verified")
	us.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestRegister_VerifiedEmail_CreatesUserAndConsumesSession(t *testing.T) {
	us, v, sg := &mockUserStore{}, &mockVerifier{}, &mockSigner{}
	v.On("IsVerified", mock.Anything, "ada@example.com").Return(true, nil)
	us.On("GetByEmail", mock.Anything, "ada@example.com").Return(nil, notFoundErr())
	var created *domain.User
	us.On("Put", mock.Anything, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*domain.User) }).
		Return(nil)
	v.On("Consume", mock.Anything, "ada@example.com").Return(nil)
	sg.On("Sign", mock.Anything, domain.RoleUser).Return("token-abc", nil)

	token, u, err := newService(us, v, sg).Register(context.Background(), registerReq())
	require.NoError(t, err)

	assert.Equal(t, "token-abc", token)
	assert.Equal(t, domain.RoleUser, u.Role)
	assert.NotEmpty(t, u.UserID)

	require.NotNil(t, created)
	assert.NotEqual(t, "s3cret99", created.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("s3cret99")))
	v.AssertCalled(t, "Consume", mock.Anything, "ada@example.com")
}

func TestRegister_DuplicateEmail_Conflict(t *testing.T) {
	us, v, sg := &mockUserStore{}, &mockVerifier{}, &mockSigner{}
	v.On("IsVerified", mock.Anything, "ada@example.com").Return(true, nil)
	us.On("GetByEmail", mock.Anything, "ada@example.com").Return(&domain.User{UserID: "u1"}, nil)

	_, _, err := newService(us, v, sg).Register(context.Background(), registerReq())
	assert.ErrorIs(t, err, domain.ErrConflict)
	us.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
	v.AssertNotCalled(t, "Consume", mock.Anything, mock.Anything)
}

func TestRegister_DisposableEmail_BadRequest(t *testing.T) {
	// The full address policy gates account creation, not code delivery.
	us, v, sg := &mockUserStore{}, &mockVerifier{}, &mockSigner{}
	req := registerReq()
	req.Email = "x@tempmail.com"

	_, _, err := newService(us, v, sg).Register(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
	assert.Contains(t, err.Error(), "disposable")
	v.AssertNotCalled(t, "IsVerified", mock.Anything, mock.Anything)
}

func TestRegister_ShortPassword_BadRequest(t *testing.T) {
	req := registerReq()
	req.Password = "abc"

	_, _, err := newService(&mockUserStore{}, &mockVerifier{}, &mockSigner{}).Register(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

// --- Login ---

func TestLogin_Success(t *testing.T) {
	us, v, sg := &mockUserStore{}, &mockVerifier{}, &mockSigner{}
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret99"), bcrypt.MinCost)
	require.NoError(t, err)
	us.On("GetByEmail", mock.Anything, "ada@example.com").Return(&domain.User{
		UserID: "u1", Email: "ada@example.com", PasswordHash: string(hash), Role: domain.RoleUser,
	}, nil)
	sg.On("Sign", "u1", domain.RoleUser).Return("token-abc", nil)

	token, u, err := newService(us, v, sg).Login(context.Background(), domain.LoginRequest{
		Email: "ada@example.com", Password: "s3cret99",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-abc", token)
	assert.Equal(t, "u1", u.UserID)
}

func TestLogin_WrongPassword_Unauthorized(t *testing.T) {
	us, v, sg := &mockUserStore{}, &mockVerifier{}, &mockSigner{}
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret99"), bcrypt.MinCost)
	require.NoError(t, err)
	us.On("GetByEmail", mock.Anything, "ada@example.com").Return(&domain.User{
		UserID: "u1", PasswordHash: string(hash),
	}, nil)

	_, _, err = newService(us, v, sg).Login(context.Background(), domain.LoginRequest{
		Email: "ada@example.com", Password: "wrong999",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UnknownEmail_SameErrorAsWrongPassword(t *testing.T) {
	us, v, sg := &mockUserStore{}, &mockVerifier{}, &mockSigner{}
	us.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, notFoundErr())

	_, _, err := newService(us, v, sg).Login(context.Background(), domain.LoginRequest{
		Email: "ghost@example.com", Password: "whatever1",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid email or password")
}
