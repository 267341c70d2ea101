package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CreditHandlerTestSuite struct {
	handlerSuite
}

func TestCreditHandler(t *testing.T) {
	suite.Run(t, new(CreditHandlerTestSuite))
}

func (s *CreditHandlerTestSuite) TestMakePayment_Success() {
	next := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
	credit := &domain.Credit{
		CreditID:        5,
		UserID:          testUserID,
		TotalAmount:     dec("100000"),
		RemainingAmount: dec("96000"),
		MonthlyPayment:  dec("5000"),
		InterestRate:    dec("12"),
		NextPaymentDate: next,
		PaymentDay:      31,
		IsActive:        true,
	}
	payment := &domain.CreditPayment{
		PaymentID:       1,
		CreditID:        5,
		Amount:          dec("5000"),
		PrincipalAmount: dec("4000"),
		InterestAmount:  dec("1000"),
	}
	s.credits.On("MakePayment", mock.Anything, testUserID, int64(5), mock.MatchedBy(func(r dto.MakePaymentRequest) bool {
		return r.Amount.Equal(dec("5000"))
	})).Return(credit, payment, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/credits/5/payments", `{"amount":5000}`)

	s.Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.PaymentResponse
	s.decode(w, &resp)
	s.True(resp.Credit.RemainingAmount.Equal(dec("96000")))
	s.True(resp.Payment.InterestAmount.Equal(dec("1000")))
	s.True(resp.Payment.PrincipalAmount.Equal(dec("4000")))
	s.True(resp.Credit.NextPaymentDate.Equal(next))
	s.Require().NotNil(resp.Credit.Stats)
	s.Equal(int64(20), resp.Credit.Stats.RemainingMonths)
}

func (s *CreditHandlerTestSuite) TestMakePayment_SingularPathAlias() {
	credit := &domain.Credit{
		CreditID:        5,
		UserID:          testUserID,
		TotalAmount:     dec("100000"),
		RemainingAmount: dec("99000"),
		MonthlyPayment:  dec("1000"),
		IsActive:        true,
	}
	payment := &domain.CreditPayment{PaymentID: 2, CreditID: 5, Amount: dec("1000"), PrincipalAmount: dec("1000")}
	s.credits.On("MakePayment", mock.Anything, testUserID, int64(5), mock.Anything).Return(credit, payment, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/credits/5/payment", `{"amount":1000}`)

	s.Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.PaymentResponse
	s.decode(w, &resp)
	s.Equal(int64(2), resp.Payment.PaymentID)
}

func (s *CreditHandlerTestSuite) TestGetCredit_IncludesStats() {
	s.credits.On("GetCreditByID", mock.Anything, testUserID, int64(5)).Return(&domain.Credit{
		CreditID:        5,
		UserID:          testUserID,
		TotalAmount:     dec("100000"),
		RemainingAmount: dec("96000"),
		MonthlyPayment:  dec("5000"),
		InterestRate:    dec("12"),
		IsActive:        true,
	}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/credits/5", nil)

	s.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.CreditWithStats
	s.decode(w, &resp)
	s.Equal(int64(5), resp.CreditID)
	s.Require().NotNil(resp.Stats)
	s.True(resp.Stats.PaidAmount.Equal(dec("4000")))
	s.Empty(resp.StatsError)
}

func (s *CreditHandlerTestSuite) TestUpdateCredit_ZeroInstallmentCarriesStatsError() {
	s.credits.On("UpdateCredit", mock.Anything, testUserID, int64(5), mock.Anything).Return(&domain.Credit{
		CreditID:        5,
		UserID:          testUserID,
		TotalAmount:     dec("1000"),
		RemainingAmount: dec("1000"),
		IsActive:        true,
	}, nil).Once()

	w := s.do(http.MethodPut, "/api/v1/credits/5", `{"name":"Card"}`)

	s.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp map[string]any
	s.decode(w, &resp)
	s.NotContains(resp, "stats")
	s.NotEmpty(resp["stats_error"])
}

func (s *CreditHandlerTestSuite) TestMakePayment_RejectsNonPositiveAmount() {
	w := s.do(http.MethodPost, "/api/v1/credits/5/payments", `{"amount":0}`)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *CreditHandlerTestSuite) TestMakePayment_InactiveCredit() {
	s.credits.On("MakePayment", mock.Anything, testUserID, int64(5), mock.Anything).
		Return(nil, nil, apperrors.NewValidationFailedError("credit is inactive")).Once()

	w := s.do(http.MethodPost, "/api/v1/credits/5/payments", `{"amount":100}`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("credit is inactive", s.errorMessage(w))
}

func (s *CreditHandlerTestSuite) TestCreditStats_ZeroMonthlyPayment() {
	s.credits.On("GetCreditStats", mock.Anything, testUserID, int64(5)).
		Return(nil, apperrors.NewDomainArithmeticError("monthly payment must be positive to project remaining months")).Once()

	w := s.do(http.MethodGet, "/api/v1/credits/5/stats", nil)

	s.Equal(http.StatusUnprocessableEntity, w.Code)
	s.Contains(s.errorMessage(w), "monthly payment")
}

func (s *CreditHandlerTestSuite) TestListCredits_CarriesStatsError() {
	s.credits.On("ListCredits", mock.Anything, testUserID).Return([]dto.CreditWithStats{
		{Credit: domain.Credit{CreditID: 1, Name: "Car"}, Stats: &domain.CreditStats{RemainingMonths: 12}},
		{Credit: domain.Credit{CreditID: 2, Name: "Card"}, StatsError: "monthly payment is zero"},
	}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/credits", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp []dto.CreditWithStats
	s.decode(w, &resp)
	s.Require().Len(resp, 2)
	s.Require().NotNil(resp[0].Stats)
	s.Equal(int64(12), resp[0].Stats.RemainingMonths)
	s.Nil(resp[1].Stats)
	s.Equal("monthly payment is zero", resp[1].StatsError)
}

func (s *CreditHandlerTestSuite) TestCreateCredit_Validation() {
	for _, body := range []string{
		`{"name":"Car","type":"loan","total_amount":0,"start_date":"2024-01-31"}`,
		`{"name":"Car","type":"lease","total_amount":1000,"start_date":"2024-01-31"}`,
		`{"name":"Car","type":"loan","total_amount":1000,"interest_rate":150,"start_date":"2024-01-31"}`,
		`{"name":"Car","type":"loan","total_amount":1000}`,
	} {
		w := s.do(http.MethodPost, "/api/v1/credits", body)
		s.Equal(http.StatusBadRequest, w.Code, body)
	}
}

func (s *CreditHandlerTestSuite) TestCreateCredit_Success() {
	s.credits.On("CreateCredit", mock.Anything, testUserID, mock.MatchedBy(func(r dto.CreateCreditRequest) bool {
		return r.TotalAmount.Equal(dec("100000")) && r.RemainingAmount == nil && r.StartDate == "2024-01-31"
	})).Return(&domain.Credit{CreditID: 5, RemainingAmount: dec("100000")}, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/credits",
		`{"name":"Car","type":"loan","total_amount":100000,"monthly_payment":5000,"interest_rate":12,"start_date":"2024-01-31"}`)

	s.Equal(http.StatusCreated, w.Code, w.Body.String())
}

func (s *CreditHandlerTestSuite) TestListPayments_Forbidden() {
	s.credits.On("ListPayments", mock.Anything, testUserID, int64(5)).Return(nil, apperrors.NewForbiddenError("credit")).Once()

	w := s.do(http.MethodGet, "/api/v1/credits/5/payments", nil)

	s.Equal(http.StatusForbidden, w.Code)
}

func (s *CreditHandlerTestSuite) TestDeleteCredit_NoContent() {
	s.credits.On("DeactivateCredit", mock.Anything, testUserID, int64(5)).Return(nil).Once()

	w := s.do(http.MethodDelete, "/api/v1/credits/5", nil)

	s.Equal(http.StatusNoContent, w.Code)
}
