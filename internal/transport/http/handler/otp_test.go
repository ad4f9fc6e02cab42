package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/metrovolt-api/internal/application/verification"
	"github.com/metrovolt-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockVerificationSvc struct{ mock.Mock }

func (m *mockVerificationSvc) Send(ctx context.Context, email string) (*verification.SendResult, error) {
	args := m.Called(ctx, email)
	if res, _ := args.Get(0).(*verification.SendResult); res != nil {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockVerificationSvc) Verify(ctx context.Context, email, code string) error {
	return m.Called(ctx, email, code).Error(0)
}
func (m *mockVerificationSvc) IsVerified(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}
func (m *mockVerificationSvc) Consume(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func postJSON(h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func TestOTPSend_DevelopmentMode_ExposesCode(t *testing.T) {
	svc := &mockVerificationSvc{}
	svc.On("Send", mock.Anything, "a@b.com").Return(&verification.SendResult{
		Message:   "Verification code generated (development mode)",
		ExpiresIn: 600,
		Mode:      "development",
		OTP:       "123456",
	}, nil)

	rr := postJSON(NewOTPHandler(svc).Send, `{"email":"a@b.com"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var res verification.SendResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	assert.Equal(t, "123456", res.OTP)
	assert.Equal(t, 600, res.ExpiresIn)
	assert.Equal(t, "development", res.Mode)
}

func TestOTPSend_DeliveryFailed_BadGateway(t *testing.T) {
	svc := &mockVerificationSvc{}
	svc.On("Send", mock.Anything, "a@b.com").
		Return(nil, fmt.Errorf("send verification email: %w", domain.ErrDeliveryFailed))

	rr := postJSON(NewOTPHandler(svc).Send, `{"email":"a@b.com"}`)
	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Contains(t, rr.Body.String(), "error")
}

func TestOTPSend_MalformedBody_BadRequest(t *testing.T) {
	rr := postJSON(NewOTPHandler(&mockVerificationSvc{}).Send, `{"email": `)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestOTPVerify_Success(t *testing.T) {
	svc := &mockVerificationSvc{}
	svc.On("Verify", mock.Anything, "a@b.com", "123456").Return(nil)

	rr := postJSON(NewOTPHandler(svc).Verify, `{"email":"a@b.com","otp":"123456"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var res map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	assert.Equal(t, true, res["verified"])
}

func TestOTPVerify_Mismatch_BadRequestWithRemaining(t *testing.T) {
	svc := &mockVerificationSvc{}
	svc.On("Verify", mock.Anything, "a@b.com", "000000").
		Return(fmt.Errorf("invalid verification code, 4 attempts remaining: %w", domain.ErrBadRequest))

	rr := postJSON(NewOTPHandler(svc).Verify, `{"email":"a@b.com","otp":"000000"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "4 attempts remaining")
}

func TestOTPVerify_NoSession_NotFound(t *testing.T) {
	svc := &mockVerificationSvc{}
	svc.On("Verify", mock.Anything, "a@b.com", "123456").
		Return(fmt.Errorf("no verification code found for this email: %w", domain.ErrNotFound))

	rr := postJSON(NewOTPHandler(svc).Verify, `{"email":"a@b.com","otp":"123456"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestOTPVerify_MissingFields_BadRequest(t *testing.T) {
	svc := &mockVerificationSvc{}

	rr := postJSON(NewOTPHandler(svc).Verify, `{"email":"a@b.com"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything, mock.Anything)
}

func TestOTPCheckVerification_ReportsStatus(t *testing.T) {
	svc := &mockVerificationSvc{}
	svc.On("IsVerified", mock.Anything, "a@b.com").Return(true, nil)

	rr := postJSON(NewOTPHandler(svc).CheckVerification, `{"email":"a@b.com"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var res map[string]bool
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	assert.True(t, res["verified"])
}

func TestOTPCheckVerification_MissingEmail_BadRequest(t *testing.T) {
	rr := postJSON(NewOTPHandler(&mockVerificationSvc{}).CheckVerification, `{}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
