package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"time"

	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/handlers"
	"github.com/SscSPs/finance_tracker/internal/platform/config"
	"github.com/SscSPs/finance_tracker/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const (
	testJWTSecret = "test-secret-key-that-is-long-enough"
	testUserID    = int64(7)
)

// handlerSuite wires every route against mock services, the way main does.
type handlerSuite struct {
	suite.Suite
	router *gin.Engine
	cfg    *config.Config

	accounts     *MockAccountService
	categories   *MockCategoryService
	transactions *MockTransactionService
	stats        *MockStatsService
	credits      *MockCreditService
	shifts       *MockWorkShiftService
	users        *MockUserService
	auth         *MockAuthService
}

func (s *handlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.cfg = &config.Config{
		JWTSecret:         testJWTSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "finance-tracker-test",
		IsProduction:      true,
		AuthRateLimit:     "2-M",
	}

	s.accounts = new(MockAccountService)
	s.categories = new(MockCategoryService)
	s.transactions = new(MockTransactionService)
	s.stats = new(MockStatsService)
	s.credits = new(MockCreditService)
	s.shifts = new(MockWorkShiftService)
	s.users = new(MockUserService)
	s.auth = new(MockAuthService)

	container := &portssvc.ServiceContainer{
		Account:     s.accounts,
		Category:    s.categories,
		Transaction: s.transactions,
		Stats:       s.stats,
		Credit:      s.credits,
		WorkShift:   s.shifts,
		User:        s.users,
		Auth:        s.auth,
	}
	handlers.RegisterRoutes(s.router, s.cfg, container, nil, nil)
}

func (s *handlerSuite) TearDownTest() {
	s.accounts.AssertExpectations(s.T())
	s.categories.AssertExpectations(s.T())
	s.transactions.AssertExpectations(s.T())
	s.stats.AssertExpectations(s.T())
	s.credits.AssertExpectations(s.T())
	s.shifts.AssertExpectations(s.T())
	s.users.AssertExpectations(s.T())
	s.auth.AssertExpectations(s.T())
}

func (s *handlerSuite) token(userID int64) string {
	token, _, err := utils.GenerateJWT(userID, testJWTSecret, time.Hour, s.cfg.JWTIssuer)
	s.Require().NoError(err)
	return token
}

// do sends an authenticated request. A non-nil body is encoded as JSON.
func (s *handlerSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	return s.send(method, path, body, s.token(testUserID))
}

func (s *handlerSuite) send(method, path string, body any, token string) *httptest.ResponseRecorder {
	return s.sendFrom("192.0.2.1:1234", method, path, body, token)
}

// sendFrom sends a request from remoteAddr, which is the key of the auth rate limiter.
func (s *handlerSuite) sendFrom(remoteAddr, method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.RemoteAddr = remoteAddr
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *handlerSuite) decode(w *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func (s *handlerSuite) errorMessage(w *httptest.ResponseRecorder) string {
	var resp handlers.ErrorResponse
	s.decode(w, &resp)
	return resp.Error
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func (s *handlerSuite) expiredToken() string {
	token, _, err := utils.GenerateJWT(testUserID, testJWTSecret, -time.Hour, s.cfg.JWTIssuer)
	s.Require().NoError(err)
	return token
}
