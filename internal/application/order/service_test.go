package order

import (
	"context"
	"fmt"
	"testing"

	"github.com/metrovolt-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStore struct{ mock.Mock }

func (m *mockStore) Put(ctx context.Context, o *domain.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *mockStore) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if o, _ := args.Get(0).(*domain.Order); o != nil {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockStore) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	args := m.Called(ctx, userID)
	if os, _ := args.Get(0).([]domain.Order); os != nil {
		return os, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockStore) ListAll(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	if os, _ := args.Get(0).([]domain.Order); os != nil {
		return os, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockStore) UpdateStatus(ctx context.Context, orderID, status string) error {
	return m.Called(ctx, orderID, status).Error(0)
}
func (m *mockStore) Delete(ctx context.Context, orderID string) error {
	return m.Called(ctx, orderID).Error(0)
}

type mockCatalog struct{ mock.Mock }

func (m *mockCatalog) Get(ctx context.Context, scooterID string) (*domain.Scooter, error) {
	args := m.Called(ctx, scooterID)
	if sc, _ := args.Get(0).(*domain.Scooter); sc != nil {
		return sc, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) Publish(ctx context.Context, subject, message string) error {
	return m.Called(ctx, subject, message).Error(0)
}

func newService(st *mockStore, c *mockCatalog, n *mockNotifier) Service {
	return NewService(ServiceDeps{Store: st, Catalog: c, Notifier: n})
}

func TestCreate_PricesFromCatalog_IgnoresClientPrice(t *testing.T) {
	st, c, n := &mockStore{}, &mockCatalog{}, &mockNotifier{}
	c.On("Get", mock.Anything, "sc1").Return(&domain.Scooter{
		ScooterID: "sc1", Name: "Volt S1", Price: 1299, InStock: true,
	}, nil)
	var saved *domain.Order
	st.On("Put", mock.Anything, mock.AnythingOfType("*domain.Order")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.Order) }).
		Return(nil)
	n.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	o, err := newService(st, c, n).Create(context.Background(), "u1", domain.CreateOrderRequest{
		Items: []domain.OrderItem{{ScooterID: "sc1", Quantity: 2, Price: 1}}, // client lies about price
	})
	require.NoError(t, err)
	assert.Equal(t, 2598.0, o.TotalAmount)
	assert.Equal(t, domain.OrderPending, o.Status)
	require.NotNil(t, saved)
	assert.Equal(t, 1299.0, saved.Items[0].Price)
}

func TestCreate_OutOfStock_BadRequest(t *testing.T) {
	st, c, n := &mockStore{}, &mockCatalog{}, &mockNotifier{}
	c.On("Get", mock.Anything, "sc1").Return(&domain.Scooter{
		ScooterID: "sc1", Name: "Volt S1", Price: 1299, InStock: false,
	}, nil)

	_, err := newService(st, c, n).Create(context.Background(), "u1", domain.CreateOrderRequest{
		Items: []domain.OrderItem{{ScooterID: "sc1", Quantity: 1, Price: 1299}},
	})
	assert.ErrorIs(t, err, domain.ErrBadRequest)
	st.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestCreate_UnknownScooter_BadRequest(t *testing.T) {
	st, c, n := &mockStore{}, &mockCatalog{}, &mockNotifier{}
	c.On("Get", mock.Anything, "ghost").
		Return(nil, fmt.Errorf("scooter not found: %w", domain.ErrNotFound))

	_, err := newService(st, c, n).Create(context.Background(), "u1", domain.CreateOrderRequest{
		Items: []domain.OrderItem{{ScooterID: "ghost", Quantity: 1, Price: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestCreate_NotifierFailure_DoesNotFailOrder(t *testing.T) {
	st, c, n := &mockStore{}, &mockCatalog{}, &mockNotifier{}
	c.On("Get", mock.Anything, "sc1").Return(&domain.Scooter{ScooterID: "sc1", Price: 999, InStock: true}, nil)
	st.On("Put", mock.Anything, mock.Anything).Return(nil)
	n.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(fmt.Errorf("sns down"))

	_, err := newService(st, c, n).Create(context.Background(), "u1", domain.CreateOrderRequest{
		Items: []domain.OrderItem{{ScooterID: "sc1", Quantity: 1, Price: 999}},
	})
	require.NoError(t, err)
}

func TestGet_OtherUsersOrder_Forbidden(t *testing.T) {
	st, c, n := &mockStore{}, &mockCatalog{}, &mockNotifier{}
	st.On("Get", mock.Anything, "o1").Return(&domain.Order{OrderID: "o1", UserID: "owner"}, nil)

	_, err := newService(st, c, n).Get(context.Background(), "intruder", domain.RoleUser, "o1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGet_AdminCanReadAnyOrder(t *testing.T) {
	st, c, n := &mockStore{}, &mockCatalog{}, &mockNotifier{}
	st.On("Get", mock.Anything, "o1").Return(&domain.Order{OrderID: "o1", UserID: "owner"}, nil)

	o, err := newService(st, c, n).Get(context.Background(), "admin1", domain.RoleAdmin, "o1")
	require.NoError(t, err)
	assert.Equal(t, "o1", o.OrderID)
}

func TestUpdateStatus_InvalidStatus_BadRequest(t *testing.T) {
	st, c, n := &mockStore{}, &mockCatalog{}, &mockNotifier{}

	_, err := newService(st, c, n).UpdateStatus(context.Background(), "o1", "teleported")
	assert.ErrorIs(t, err, domain.ErrBadRequest)
	st.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_ValidTransition(t *testing.T) {
	st, c, n := &mockStore{}, &mockCatalog{}, &mockNotifier{}
	st.On("Get", mock.Anything, "o1").Return(&domain.Order{OrderID: "o1", Status: domain.OrderShipped}, nil)
	st.On("UpdateStatus", mock.Anything, "o1", domain.OrderShipped).Return(nil)

	o, err := newService(st, c, n).UpdateStatus(context.Background(), "o1", domain.OrderShipped)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderShipped, o.Status)
}
