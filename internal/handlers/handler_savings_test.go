package handlers_test

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/cekel_duit/internal/apperrors"
	"github.com/SscSPs/cekel_duit/internal/core/domain"
	"github.com/SscSPs/cekel_duit/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func progressOf(id string, target, current, percent int64) *domain.SavingsProgress {
	remaining := decimal.NewFromInt(target - current)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	return &domain.SavingsProgress{
		SavingsTarget: domain.SavingsTarget{
			ID:       id,
			Name:     "Motor",
			Target:   decimal.NewFromInt(target),
			Current:  decimal.NewFromInt(current),
			Deadline: "2025-12-31",
			Emoji:    domain.DefaultSavingsEmoji,
		},
		Percent:   decimal.NewFromInt(percent),
		Remaining: remaining,
	}
}

func (s *HandlerTestSuite) TestCreateSavingsTarget() {
	s.savings.On("CreateTarget", mock.Anything, mock.MatchedBy(func(req dto.CreateSavingsTargetRequest) bool {
		return req.Name == "Motor" && req.Target.Equal(decimal.NewFromInt(1000000))
	})).Return(progressOf("s-1", 1000000, 0, 0), nil).Once()

	w := s.do(http.MethodPost, "/api/v1/savings",
		`{"name":"Motor","target":"1000000","deadline":"2025-12-31"}`)

	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var res dto.SavingsTargetResponse
	s.decode(w, &res)
	s.Equal("s-1", res.ID)
	s.Equal("0", res.Current.String())
	s.Equal(domain.DefaultSavingsEmoji, res.Emoji)
	s.False(res.Completed)
}

func (s *HandlerTestSuite) TestCreateSavingsTarget_Invalid() {
	for name, body := range map[string]string{
		"zero target": `{"name":"Motor","target":"0","deadline":"2025-12-31"}`,
		"no name":     `{"target":"10","deadline":"2025-12-31"}`,
		"bad date":    `{"name":"Motor","target":"10","deadline":"31-12-2025"}`,
	} {
		w := s.do(http.MethodPost, "/api/v1/savings", body)
		s.Equal(http.StatusBadRequest, w.Code, name)
	}
}

func (s *HandlerTestSuite) TestListSavingsTargets() {
	s.savings.On("ListTargets", mock.Anything).Return([]domain.SavingsProgress{
		*progressOf("s-1", 100, 50, 50),
		*progressOf("s-2", 100, 150, 100),
	}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/savings", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var res dto.ListSavingsTargetsResponse
	s.decode(w, &res)
	s.Require().Len(res.Targets, 2)
	s.Equal("50", res.Targets[0].Progress.String())
	s.True(res.Targets[1].Completed)
	s.Equal("150", res.Targets[1].Current.String())
}

func (s *HandlerTestSuite) TestAddMoney() {
	s.savings.On("AddMoney", mock.Anything, "s-1", mock.MatchedBy(func(req dto.AddMoneyRequest) bool {
		return req.Amount.Equal(decimal.NewFromInt(25))
	})).Return(progressOf("s-1", 100, 75, 75), nil).Once()

	w := s.do(http.MethodPost, "/api/v1/savings/s-1/deposits", `{"amount":"25"}`)
	s.Require().Equal(http.StatusOK, w.Code)
	var res dto.SavingsTargetResponse
	s.decode(w, &res)
	s.Equal("75", res.Current.String())
}

func (s *HandlerTestSuite) TestAddMoney_UnknownTarget() {
	s.savings.On("AddMoney", mock.Anything, "nope", mock.Anything).
		Return(nil, fmt.Errorf("savings target %q: %w", "nope", apperrors.ErrNotFound)).Once()

	w := s.do(http.MethodPost, "/api/v1/savings/nope/deposits", `{"amount":"25"}`)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerTestSuite) TestAddMoney_NonPositiveAmount() {
	w := s.do(http.MethodPost, "/api/v1/savings/s-1/deposits", `{"amount":"0"}`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestDeleteSavingsTarget() {
	s.savings.On("DeleteTarget", mock.Anything, "s-1").Return(nil).Once()

	w := s.do(http.MethodDelete, "/api/v1/savings/s-1", nil)
	s.Equal(http.StatusNoContent, w.Code)
}
