package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	handlerSuite
}

func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) authResponse() *dto.AuthResponse {
	return &dto.AuthResponse{
		Token:     "issued-token",
		ExpiresAt: time.Date(2024, time.March, 16, 10, 30, 0, 0, time.UTC),
		User:      domain.User{UserID: testUserID, Username: "alice", Email: "alice@example.com", AuthProvider: domain.ProviderLocal},
	}
}

func (s *AuthHandlerTestSuite) TestRegister_Success() {
	req := dto.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "secret1"}
	s.auth.On("Register", mock.Anything, req).Return(s.authResponse(), nil).Once()

	w := s.send(http.MethodPost, "/api/v1/auth/register", req, "")

	s.Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.AuthResponse
	s.decode(w, &resp)
	s.Equal("issued-token", resp.Token)
	s.Equal("alice", resp.User.Username)
	s.NotContains(w.Body.String(), "password")
}

func (s *AuthHandlerTestSuite) TestRegister_ValidationErrors() {
	for i, body := range []string{
		`{"username":"al","email":"alice@example.com","password":"secret1"}`,
		`{"username":"alice","email":"not-an-email","password":"secret1"}`,
		`{"username":"alice","email":"alice@example.com","password":"123"}`,
	} {
		// one client per case so the login limiter stays out of the way
		w := s.sendFrom(fmt.Sprintf("198.51.100.%d:4000", i+1), http.MethodPost, "/api/v1/auth/register", body, "")
		s.Equal(http.StatusBadRequest, w.Code, body)
	}
}

func (s *AuthHandlerTestSuite) TestRegister_Conflict() {
	s.auth.On("Register", mock.Anything, mock.Anything).Return(nil, apperrors.NewConflictError("username already taken")).Once()

	w := s.send(http.MethodPost, "/api/v1/auth/register", `{"username":"alice","email":"alice@example.com","password":"secret1"}`, "")

	s.Equal(http.StatusConflict, w.Code)
	s.Equal("username already taken", s.errorMessage(w))
}

func (s *AuthHandlerTestSuite) TestLogin_InvalidCredentials() {
	s.auth.On("Login", mock.Anything, dto.LoginRequest{Username: "alice", Password: "wrong"}).
		Return(nil, apperrors.NewUnauthorizedError("invalid credentials")).Once()

	w := s.send(http.MethodPost, "/api/v1/auth/login", `{"username":"alice","password":"wrong"}`, "")

	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("invalid credentials", s.errorMessage(w))
}

func (s *AuthHandlerTestSuite) TestLogin_RateLimited() {
	s.auth.On("Login", mock.Anything, mock.Anything).Return(s.authResponse(), nil).Twice()

	for i := 0; i < 2; i++ {
		w := s.send(http.MethodPost, "/api/v1/auth/login", `{"username":"alice","password":"secret1"}`, "")
		s.Equal(http.StatusOK, w.Code)
	}

	w := s.send(http.MethodPost, "/api/v1/auth/login", `{"username":"alice","password":"secret1"}`, "")
	s.Equal(http.StatusTooManyRequests, w.Code)
}

func (s *AuthHandlerTestSuite) TestGoogleSignIn_NotConfigured() {
	s.auth.On("SignInWithGoogle", mock.Anything, dto.GoogleSignInRequest{IDToken: "google-token"}).
		Return(nil, apperrors.NewAppError(http.StatusServiceUnavailable, "Google sign-in is not configured", nil)).Once()

	w := s.send(http.MethodPost, "/api/v1/auth/google", `{"id_token":"google-token"}`, "")

	s.Equal(http.StatusServiceUnavailable, w.Code)
	s.Equal("Google sign-in is not configured", s.errorMessage(w))
}

func (s *AuthHandlerTestSuite) TestGoogleSignIn_MissingToken() {
	w := s.send(http.MethodPost, "/api/v1/auth/google", `{}`, "")

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *AuthHandlerTestSuite) TestGetMe() {
	s.users.On("GetUserByID", mock.Anything, testUserID).
		Return(&domain.User{UserID: testUserID, Username: "alice", PasswordHash: "$2a$10$hash"}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/users/me", nil)

	s.Equal(http.StatusOK, w.Code)
	s.NotContains(w.Body.String(), "$2a$10$hash")
}

func (s *AuthHandlerTestSuite) TestGetMe_ExpiredToken() {
	w := s.send(http.MethodGet, "/api/v1/users/me", nil, s.expiredToken())

	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("Token has expired", s.errorMessage(w))
}

func (s *AuthHandlerTestSuite) TestHealth() {
	w := s.send(http.MethodGet, "/health", nil, "")

	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())
}
