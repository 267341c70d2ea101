package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountHandlerTestSuite struct {
	handlerSuite
}

func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}

func (s *AccountHandlerTestSuite) TestCreateAccount_Success() {
	created := &domain.Account{
		AccountID:   11,
		UserID:      testUserID,
		Name:        "Card",
		AccountType: domain.CreditAccount,
		Balance:     dec("-500"),
		Currency:    "RUB",
		CreditLimit: dec("1000"),
		IsActive:    true,
	}
	s.accounts.On("CreateAccount", mock.Anything, testUserID, mock.MatchedBy(func(r dto.CreateAccountRequest) bool {
		return r.Name == "Card" && r.AccountType == domain.CreditAccount &&
			r.Balance.Equal(dec("-500")) && r.CreditLimit.Equal(dec("1000"))
	})).Return(created, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/accounts", `{"name":"Card","type":"credit","balance":-500,"credit_limit":1000}`)

	s.Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.AccountResponse
	s.decode(w, &resp)
	s.Equal(int64(11), resp.AccountID)
	s.True(resp.AvailableBalance.Equal(dec("500")), resp.AvailableBalance.String())
}

func (s *AccountHandlerTestSuite) TestCreateAccount_InvalidType() {
	w := s.do(http.MethodPost, "/api/v1/accounts", `{"name":"Wallet","type":"crypto"}`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(s.errorMessage(w), "Invalid request format")
	s.accounts.AssertNotCalled(s.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AccountHandlerTestSuite) TestCreateAccount_NegativeCreditLimit() {
	w := s.do(http.MethodPost, "/api/v1/accounts", `{"name":"Card","type":"credit","credit_limit":-1}`)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *AccountHandlerTestSuite) TestListAccounts_RequiresToken() {
	w := s.send(http.MethodGet, "/api/v1/accounts", nil, "")

	s.Equal(http.StatusUnauthorized, w.Code)
	s.accounts.AssertNotCalled(s.T(), "ListAccounts", mock.Anything, mock.Anything)
}

func (s *AccountHandlerTestSuite) TestListAccounts_Success() {
	s.accounts.On("ListAccounts", mock.Anything, testUserID).Return([]domain.Account{
		{AccountID: 2, Name: "Savings", AccountType: domain.Savings, Balance: dec("300")},
		{AccountID: 1, Name: "Main", AccountType: domain.Checking, Balance: dec("100")},
	}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/accounts", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp []dto.AccountResponse
	s.decode(w, &resp)
	s.Require().Len(resp, 2)
	s.Equal(int64(2), resp[0].AccountID)
	s.True(resp[1].AvailableBalance.Equal(dec("100")))
}

func (s *AccountHandlerTestSuite) TestGetAccount_ErrorMapping() {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not found", apperrors.NewNotFoundError("account"), http.StatusNotFound, "account not found"},
		{"forbidden", apperrors.NewForbiddenError("account"), http.StatusForbidden, "access to account is forbidden"},
		{"storage", apperrors.NewStorageError("failed to load account", errors.New("conn reset")), http.StatusInternalServerError, "Failed to retrieve account"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.accounts.On("GetAccountByID", mock.Anything, testUserID, int64(42)).Return(nil, tt.err).Once()

			w := s.do(http.MethodGet, "/api/v1/accounts/42", nil)

			s.Equal(tt.status, w.Code)
			s.Equal(tt.message, s.errorMessage(w))
		})
	}
}

func (s *AccountHandlerTestSuite) TestGetAccount_InvalidID() {
	w := s.do(http.MethodGet, "/api/v1/accounts/abc", nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Invalid id", s.errorMessage(w))
}

func (s *AccountHandlerTestSuite) TestUpdateAccount_BalanceRejected() {
	s.accounts.On("UpdateAccount", mock.Anything, testUserID, int64(3), mock.MatchedBy(func(r dto.UpdateAccountRequest) bool {
		return r.Balance != nil
	})).Return(nil, apperrors.NewValidationFailedError("balance can only change through transactions")).Once()

	w := s.do(http.MethodPut, "/api/v1/accounts/3", `{"balance":1000}`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("balance can only change through transactions", s.errorMessage(w))
}

func (s *AccountHandlerTestSuite) TestDeleteAccount_NoContent() {
	s.accounts.On("DeactivateAccount", mock.Anything, testUserID, int64(3)).Return(nil).Once()

	w := s.do(http.MethodDelete, "/api/v1/accounts/3", nil)

	s.Equal(http.StatusNoContent, w.Code)
}
