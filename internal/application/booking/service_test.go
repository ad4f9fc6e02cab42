package booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/metrovolt-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStore struct{ mock.Mock }

func (m *mockStore) Put(ctx context.Context, b *domain.Booking) error {
	return m.Called(ctx, b).Error(0)
}
func (m *mockStore) Get(ctx context.Context, bookingID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID)
	if b, _ := args.Get(0).(*domain.Booking); b != nil {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockStore) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if bs, _ := args.Get(0).([]domain.Booking); bs != nil {
		return bs, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockStore) ListAll(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if bs, _ := args.Get(0).([]domain.Booking); bs != nil {
		return bs, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockStore) UpdateStatus(ctx context.Context, bookingID, status string) error {
	return m.Called(ctx, bookingID, status).Error(0)
}
func (m *mockStore) Delete(ctx context.Context, bookingID string) error {
	return m.Called(ctx, bookingID).Error(0)
}

type mockCatalog struct{ mock.Mock }

func (m *mockCatalog) Get(ctx context.Context, scooterID string) (*domain.Scooter, error) {
	args := m.Called(ctx, scooterID)
	if sc, _ := args.Get(0).(*domain.Scooter); sc != nil {
		return sc, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockMailer struct {
	mock.Mock
	configured bool
}

func (m *mockMailer) SendEmail(to, subject, body string) error {
	return m.Called(to, subject, body).Error(0)
}
func (m *mockMailer) Configured() bool { return m.configured }

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) Publish(ctx context.Context, subject, message string) error {
	return m.Called(ctx, subject, message).Error(0)
}

func newService(st *mockStore, c *mockCatalog, ml *mockMailer, n *mockNotifier) Service {
	return NewService(ServiceDeps{Store: st, Catalog: c, Mailer: ml, Notifier: n})
}

func validReq() domain.CreateBookingRequest {
	return domain.CreateBookingRequest{
		ScooterID: "sc1",
		Showroom: domain.BookingShowroom{
			Name: "MetroVolt Austin", Address: "1201 S Congress Ave", City: "Austin",
		},
		BookingDate: time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		BookingTime: "14:30",
		CustomerInfo: domain.CustomerInfo{
			Name: "Ada", Email: "ada@example.com", Phone: "+1 512 555 0100",
		},
	}
}

func TestCreate_SnapshotsScooterNameAndPrice(t *testing.T) {
	st, c, ml, n := &mockStore{}, &mockCatalog{}, &mockMailer{configured: true}, &mockNotifier{}
	c.On("Get", mock.Anything, "sc1").Return(&domain.Scooter{ScooterID: "sc1", Name: "Volt S1", Price: 1299}, nil)
	var saved *domain.Booking
	st.On("Put", mock.Anything, mock.AnythingOfType("*domain.Booking")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.Booking) }).
		Return(nil)
	ml.On("SendEmail", "ada@example.com", mock.Anything, mock.Anything).Return(nil)
	n.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	b, err := newService(st, c, ml, n).Create(context.Background(), "u1", validReq())
	require.NoError(t, err)

	assert.Equal(t, "Volt S1", b.ScooterName)
	assert.Equal(t, 1299.0, b.ScooterPrice)
	assert.Equal(t, domain.BookingPending, b.Status)
	require.NotNil(t, saved)
	ml.AssertCalled(t, "SendEmail", "ada@example.com", mock.Anything, mock.Anything)
}

func TestCreate_EmailFailure_BookingStillCreated(t *testing.T) {
	st, c, ml, n := &mockStore{}, &mockCatalog{}, &mockMailer{configured: true}, &mockNotifier{}
	c.On("Get", mock.Anything, "sc1").Return(&domain.Scooter{ScooterID: "sc1", Name: "Volt S1", Price: 1299}, nil)
	st.On("Put", mock.Anything, mock.Anything).Return(nil)
	ml.On("SendEmail", mock.Anything, mock.Anything, mock.Anything).Return(fmt.Errorf("smtp timeout"))
	n.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	_, err := newService(st, c, ml, n).Create(context.Background(), "u1", validReq())
	require.NoError(t, err)
}

func TestCreate_PastDate_BadRequest(t *testing.T) {
	req := validReq()
	req.BookingDate = "2020-01-01"

	_, err := newService(&mockStore{}, &mockCatalog{}, &mockMailer{}, &mockNotifier{}).
		Create(context.Background(), "u1", req)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestCreate_MalformedDate_BadRequest(t *testing.T) {
	req := validReq()
	req.BookingDate = "next tuesday"

	_, err := newService(&mockStore{}, &mockCatalog{}, &mockMailer{}, &mockNotifier{}).
		Create(context.Background(), "u1", req)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestCreate_UnknownScooter_BadRequest(t *testing.T) {
	st, c := &mockStore{}, &mockCatalog{}
	c.On("Get", mock.Anything, "sc1").Return(nil, fmt.Errorf("scooter not found: %w", domain.ErrNotFound))

	_, err := newService(st, c, &mockMailer{}, &mockNotifier{}).Create(context.Background(), "u1", validReq())
	assert.ErrorIs(t, err, domain.ErrBadRequest)
	st.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestGet_OtherUsersBooking_Forbidden(t *testing.T) {
	st := &mockStore{}
	st.On("Get", mock.Anything, "b1").Return(&domain.Booking{BookingID: "b1", UserID: "owner"}, nil)

	_, err := newService(st, &mockCatalog{}, &mockMailer{}, &mockNotifier{}).
		Get(context.Background(), "intruder", domain.RoleUser, "b1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdateStatus_InvalidStatus_BadRequest(t *testing.T) {
	st := &mockStore{}

	_, err := newService(st, &mockCatalog{}, &mockMailer{}, &mockNotifier{}).
		UpdateStatus(context.Background(), "b1", "rescheduled")
	assert.ErrorIs(t, err, domain.ErrBadRequest)
	st.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}
