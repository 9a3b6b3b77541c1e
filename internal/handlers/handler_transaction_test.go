package handlers_test

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/cekel_duit/internal/apperrors"
	"github.com/SscSPs/cekel_duit/internal/core/domain"
	portsrepo "github.com/SscSPs/cekel_duit/internal/core/ports/repositories"
	"github.com/SscSPs/cekel_duit/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (s *HandlerTestSuite) TestCreateTransaction_Created() {
	created := &domain.Transaction{
		ID:       "t-1",
		Type:     domain.Outflow,
		Amount:   decimal.NewFromInt(75000),
		Category: "makan",
		Date:     "2024-03-10",
		Note:     "makan",
	}
	s.transactions.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
		return req.Type == domain.Outflow && req.Amount.Equal(decimal.NewFromInt(75000)) && req.Category == "makan"
	})).Return(created, "Eling, ngirit rek!", nil).Once()

	w := s.do(http.MethodPost, "/api/v1/transactions",
		`{"type":"outflow","amount":"75000","category":"makan","date":"2024-03-10"}`)

	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var res dto.CreateTransactionResponse
	s.decode(w, &res)
	s.Equal("t-1", res.Transaction.ID)
	s.Equal("75000", res.Transaction.Amount.String())
	s.Equal("Makan & Minum", res.Transaction.CategoryLabel)
	s.Equal("Eling, ngirit rek!", res.Nudge)
}

func (s *HandlerTestSuite) TestCreateTransaction_ValidationFailures() {
	cases := map[string]string{
		"negative amount": `{"type":"outflow","amount":"-5","category":"makan","date":"2024-03-10"}`,
		"zero amount":     `{"type":"outflow","amount":"0","category":"makan","date":"2024-03-10"}`,
		"unknown type":    `{"type":"transfer","amount":"5","category":"makan","date":"2024-03-10"}`,
		"impossible date": `{"type":"inflow","amount":"5","category":"gaji","date":"2024-02-30"}`,
		"missing date":    `{"type":"inflow","amount":"5","category":"gaji"}`,
		"malformed json":  `{"type":`,
	}
	for name, body := range cases {
		w := s.do(http.MethodPost, "/api/v1/transactions", body)
		s.Equal(http.StatusBadRequest, w.Code, name)
	}
	s.transactions.AssertNotCalled(s.T(), "CreateTransaction", mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestCreateTransaction_ReportsFieldNames() {
	w := s.do(http.MethodPost, "/api/v1/transactions",
		`{"type":"outflow","amount":"-5","category":"makan","date":"2024-03-10"}`)

	s.Require().Equal(http.StatusBadRequest, w.Code)
	s.Contains(s.errorMessage(w), "amount: positivedecimal")
}

func (s *HandlerTestSuite) TestCreateTransaction_StorageFull() {
	quotaErr := fmt.Errorf("%w: write %q: %w", apperrors.ErrPersistence, "transactions", portsrepo.ErrQuotaExceeded)
	s.transactions.On("CreateTransaction", mock.Anything, mock.Anything).Return(nil, "", quotaErr).Once()

	w := s.do(http.MethodPost, "/api/v1/transactions",
		`{"type":"inflow","amount":"100000","category":"gaji","date":"2024-03-10"}`)

	s.Equal(http.StatusInsufficientStorage, w.Code)
	s.Contains(s.errorMessage(w), "local storage is full")
}

func (s *HandlerTestSuite) TestCreateTransaction_WriteFailure() {
	s.transactions.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(nil, "", fmt.Errorf("%w: disk gone", apperrors.ErrPersistence)).Once()

	w := s.do(http.MethodPost, "/api/v1/transactions",
		`{"type":"inflow","amount":"100000","category":"gaji","date":"2024-03-10"}`)

	s.Equal(http.StatusInternalServerError, w.Code)
	s.Equal("Failed to record transaction", s.errorMessage(w))
}

func (s *HandlerTestSuite) TestListTransactions_PagesWithToken() {
	next := "opaque-token"
	page := []domain.Transaction{
		{ID: "b", Type: domain.Inflow, Amount: decimal.NewFromInt(10), Category: "gaji", Date: "2024-03-02"},
		{ID: "a", Type: domain.Outflow, Amount: decimal.NewFromInt(5), Category: "makan", Date: "2024-03-01"},
	}
	s.transactions.On("ListTransactions", mock.Anything, 2, mock.MatchedBy(func(tok *string) bool {
		return tok == nil
	})).Return(page, &next, nil).Once()
	s.transactions.On("ListTransactions", mock.Anything, 2, mock.MatchedBy(func(tok *string) bool {
		return tok != nil && *tok == next
	})).Return([]domain.Transaction{}, nil, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/transactions?limit=2", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var first dto.ListTransactionsResponse
	s.decode(w, &first)
	s.Len(first.Transactions, 2)
	s.Equal("b", first.Transactions[0].ID)
	s.Require().NotNil(first.NextToken)

	w = s.do(http.MethodGet, "/api/v1/transactions?limit=2&nextToken="+*first.NextToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var second dto.ListTransactionsResponse
	s.decode(w, &second)
	s.Empty(second.Transactions)
	s.Nil(second.NextToken)
}

func (s *HandlerTestSuite) TestListTransactions_DefaultLimit() {
	s.transactions.On("ListTransactions", mock.Anything, 20, mock.Anything).Return([]domain.Transaction{}, nil, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/transactions", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerTestSuite) TestListTransactions_InvalidLimit() {
	for _, q := range []string{"limit=0", "limit=500", "limit=abc"} {
		w := s.do(http.MethodGet, "/api/v1/transactions?"+q, nil)
		s.Equal(http.StatusBadRequest, w.Code, q)
	}
}

func (s *HandlerTestSuite) TestListTransactions_BadToken() {
	s.transactions.On("ListTransactions", mock.Anything, 20, mock.Anything).
		Return(nil, nil, fmt.Errorf("%w: invalid nextToken", apperrors.ErrValidation)).Once()

	w := s.do(http.MethodGet, "/api/v1/transactions?nextToken=garbage", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestRecentTransactions() {
	s.transactions.On("RecentTransactions", mock.Anything, 5).Return([]domain.Transaction{
		{ID: "z", Type: domain.Outflow, Amount: decimal.NewFromInt(1), Category: "unknown", Date: "2024-03-02"},
	}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/transactions/recent", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var res []dto.TransactionResponse
	s.decode(w, &res)
	s.Require().Len(res, 1)
	s.Equal("unknown", res[0].CategoryLabel)
	s.Equal(domain.FallbackCategoryIcon, res[0].CategoryIcon)
}

func (s *HandlerTestSuite) TestDeleteTransaction() {
	s.transactions.On("DeleteTransaction", mock.Anything, "missing-id").Return(nil).Once()

	w := s.do(http.MethodDelete, "/api/v1/transactions/missing-id", nil)
	s.Equal(http.StatusNoContent, w.Code)
}
