package user

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"tau/internal/domain/sync"
)

// MockRemote is a mock implementation of the Remote interface for testing
type MockRemote struct {
	mock.Mock
}

func (m *MockRemote) SignUp(ctx context.Context, req Credentials) (Response, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(Response), args.Error(1)
}

func (m *MockRemote) Login(ctx context.Context, req Credentials) (Response, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(Response), args.Error(1)
}

const (
	testEmail    = "ana@school.edu"
	testPassword = "Secret123"
)

func TestService_Login_Success(t *testing.T) {
	mockRemote := new(MockRemote)
	service := NewService(mockRemote, NewCredentialsValidator(), slog.Default())

	mockRemote.On("Login", mock.Anything, Credentials{Email: testEmail, Password: testPassword}).
		Return(Response{ID: 12, Email: testEmail}, nil)

	u, err := service.Login(context.Background(), testEmail, testPassword)
	require.NoError(t, err)
	assert.Equal(t, User{ID: 12, Email: testEmail}, u)

	mockRemote.AssertExpectations(t)
}

func TestService_Login_Errors(t *testing.T) {
	tests := []struct {
		name      string
		remoteErr error
		wantErr   error
		wantCode  string
		wantMsg   string
	}{
		{
			name:      "unauthorized",
			remoteErr: &sync.StatusError{Code: http.StatusUnauthorized},
			wantErr:   ErrInvalidAuth,
			wantCode:  CodeInvalidAuth,
			wantMsg:   "Invalid email or password",
		},
		{
			name:      "unknown user",
			remoteErr: &sync.StatusError{Code: http.StatusNotFound},
			wantErr:   ErrNotFound,
			wantCode:  CodeNotFound,
			wantMsg:   "User not found",
		},
		{
			name:      "server error",
			remoteErr: &sync.StatusError{Code: http.StatusInternalServerError},
			wantErr:   ErrServer,
			wantCode:  CodeServer,
			wantMsg:   "Server error. Try again later",
		},
		{
			name:      "other status",
			remoteErr: &sync.StatusError{Code: http.StatusTooManyRequests, Message: "slow down"},
			wantErr:   ErrRejected,
			wantCode:  CodeRejected,
			wantMsg:   "Login failed: slow down",
		},
		{
			name:      "transport",
			remoteErr: fmt.Errorf("%w: dial tcp: refused", sync.ErrTransport),
			wantErr:   ErrConnection,
			wantCode:  CodeConnection,
			wantMsg:   "Connection error: remote unreachable: dial tcp: refused",
		},
		{
			name:      "undecodable response",
			remoteErr: errors.New("decode response: unexpected EOF"),
			wantErr:   ErrRejected,
			wantCode:  CodeRejected,
			wantMsg:   "Login failed: decode response: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRemote := new(MockRemote)
			service := NewService(mockRemote, NewCredentialsValidator(), slog.Default())
			mockRemote.On("Login", mock.Anything, mock.Anything).Return(Response{}, tt.remoteErr)

			_, err := service.Login(context.Background(), testEmail, testPassword)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var de *DomainError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tt.wantCode, de.Code)
			assert.Equal(t, tt.wantMsg, de.Error())
		})
	}
}

func TestService_Login_InvalidInputSkipsRemote(t *testing.T) {
	mockRemote := new(MockRemote)
	service := NewService(mockRemote, NewCredentialsValidator(), slog.Default())

	_, err := service.Login(context.Background(), "nope", testPassword)
	assert.ErrorIs(t, err, ErrInvalidInput)
	mockRemote.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestService_Login_NoID(t *testing.T) {
	mockRemote := new(MockRemote)
	service := NewService(mockRemote, NewCredentialsValidator(), slog.Default())
	mockRemote.On("Login", mock.Anything, mock.Anything).Return(Response{}, nil)

	_, err := service.Login(context.Background(), testEmail, testPassword)
	assert.ErrorIs(t, err, ErrRejected)
}

func TestService_SignUp(t *testing.T) {
	mockRemote := new(MockRemote)
	service := NewService(mockRemote, NewCredentialsValidator(), slog.Default())

	mockRemote.On("SignUp", mock.Anything, Credentials{Email: testEmail, Password: testPassword}).
		Return(Response{ID: 3, Email: testEmail}, nil)

	u, err := service.SignUp(context.Background(), testEmail, testPassword)
	require.NoError(t, err)
	assert.Equal(t, int64(3), u.ID)

	mockRemote.AssertExpectations(t)
}

func TestService_SignUp_Errors(t *testing.T) {
	tests := []struct {
		name      string
		remoteErr error
		wantErr   error
		wantMsg   string
	}{
		{
			name:      "unprocessable",
			remoteErr: &sync.StatusError{Code: http.StatusUnprocessableEntity},
			wantErr:   ErrInvalidInput,
			wantMsg:   "Invalid data. Check and try again",
		},
		{
			name:      "server error",
			remoteErr: &sync.StatusError{Code: http.StatusInternalServerError},
			wantErr:   ErrServer,
			wantMsg:   "Server error. Try again later",
		},
		{
			name:      "conflict",
			remoteErr: &sync.StatusError{Code: http.StatusConflict, Message: "email already registered"},
			wantErr:   ErrRejected,
			wantMsg:   "Sign-up failed: email already registered",
		},
		{
			name:      "transport",
			remoteErr: sync.ErrTransport,
			wantErr:   ErrConnection,
			wantMsg:   "Connection error: remote unreachable",
		},
		{
			name:      "undecodable response",
			remoteErr: errors.New("decode response: invalid character '<'"),
			wantErr:   ErrRejected,
			wantMsg:   "Sign-up failed: decode response: invalid character '<'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRemote := new(MockRemote)
			service := NewService(mockRemote, NewCredentialsValidator(), slog.Default())
			mockRemote.On("SignUp", mock.Anything, mock.Anything).Return(Response{}, tt.remoteErr)

			_, err := service.SignUp(context.Background(), testEmail, testPassword)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestService_SignUp_WeakPassword(t *testing.T) {
	mockRemote := new(MockRemote)
	service := NewService(mockRemote, NewCredentialsValidator(), slog.Default())

	_, err := service.SignUp(context.Background(), testEmail, "weakpass")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "uppercase")
	mockRemote.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything)
}
