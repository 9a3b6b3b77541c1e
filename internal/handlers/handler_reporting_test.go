package handlers_test

import (
	"net/http"
	"time"

	"github.com/SscSPs/cekel_duit/internal/core/domain"
	"github.com/SscSPs/cekel_duit/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (s *HandlerTestSuite) TestBalance() {
	s.reporting.On("Balance", mock.Anything).Return(decimal.NewFromInt(70000), nil).Once()

	w := s.do(http.MethodGet, "/api/v1/reports/balance", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var res dto.BalanceResponse
	s.decode(w, &res)
	s.Equal("70000", res.Balance.String())
	s.Equal("Rp 70.000", res.BalanceFormatted)
}

func (s *HandlerTestSuite) TestPeriodReport_DefaultsToMonth() {
	start := time.Date(2024, 3, 8, 9, 0, 0, 0, time.UTC)
	largest := domain.CategoryAmount{Category: "makan", Label: "Makan & Minum", Icon: "🍜", Amount: decimal.NewFromInt(30000)}
	report := &domain.PeriodReport{
		Period:      domain.PeriodMonth,
		GeneratedAt: time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC),
		Window:      domain.Window{Start: start},
		Totals:      domain.PeriodTotals{Income: decimal.NewFromInt(100000), Expense: decimal.NewFromInt(30000)},
		Categories: []domain.CategoryAmount{
			largest,
		},
		Daily: []domain.DailyBucket{
			{Date: "2024-03-15", Inflow: decimal.NewFromInt(100000), Outflow: decimal.NewFromInt(30000)},
		},
		LargestCategory: &largest,
	}
	s.reporting.On("PeriodReport", mock.Anything, domain.PeriodMonth, mock.AnythingOfType("time.Time")).
		Return(report, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/reports/period", nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var res dto.PeriodReportResponse
	s.decode(w, &res)
	s.Equal(domain.PeriodMonth, res.Period)
	s.Equal("2024-03-08", res.FromDate)
	s.Equal("2024-03-15", res.ToDate)
	s.Equal("70000", res.Net.String())
	s.Require().NotNil(res.LargestCategory)
	s.Equal("makan", res.LargestCategory.Category)
	s.Len(res.Daily, 1)
}

func (s *HandlerTestSuite) TestPeriodReport_Week() {
	s.reporting.On("PeriodReport", mock.Anything, domain.PeriodWeek, mock.AnythingOfType("time.Time")).
		Return(&domain.PeriodReport{Period: domain.PeriodWeek}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/reports/period?period=week", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var res dto.PeriodReportResponse
	s.decode(w, &res)
	s.Nil(res.LargestCategory)
}

func (s *HandlerTestSuite) TestPeriodReport_InvalidPeriod() {
	w := s.do(http.MethodGet, "/api/v1/reports/period?period=year", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestHome() {
	s.reporting.On("HomeSummary", mock.Anything).Return(&domain.HomeSummary{
		Profile: domain.DefaultProfile(),
		Balance: decimal.NewFromInt(-30001),
		Recent:  []domain.Transaction{},
		Quote:   "Sithik-sithik suwe-suwe dadi bukit.",
	}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/home", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var res dto.HomeResponse
	s.decode(w, &res)
	s.Equal("Arek Malang", res.Profile.Name)
	s.Equal("-Rp 30.001", res.Balance.BalanceFormatted)
	s.NotEmpty(res.Quote)
	s.Empty(res.Recent)
}

func (s *HandlerTestSuite) TestCategories() {
	w := s.do(http.MethodGet, "/api/v1/categories", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var res dto.CategoriesResponse
	s.decode(w, &res)
	s.Len(res.Expense, 8)
	s.Len(res.Income, 6)
	s.Equal("makan", res.Expense[0].Value)
	s.Equal("gaji", res.Income[0].Value)
}
