package dto

import (
	"github.com/SscSPs/cekel_duit/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceResponse carries the running balance.
type BalanceResponse struct {
	Balance          decimal.Decimal `json:"balance" swaggertype:"string"`
	BalanceFormatted string          `json:"balanceFormatted" example:"Rp 70.000"`
}

// PeriodReportParams defines query parameters for the period report.
type PeriodReportParams struct {
	Period string `form:"period,default=month" binding:"oneof=week month"`
}

// CategoryAmountResponse is one slice of the category breakdown.
type CategoryAmountResponse struct {
	Category string          `json:"category"`
	Label    string          `json:"label"`
	Icon     string          `json:"icon"`
	Amount   decimal.Decimal `json:"amount" swaggertype:"string"`
}

// DailyBucketResponse is one day of the daily series.
type DailyBucketResponse struct {
	Date    string          `json:"date"`
	Inflow  decimal.Decimal `json:"inflow" swaggertype:"string"`
	Outflow decimal.Decimal `json:"outflow" swaggertype:"string"`
}

// PeriodReportResponse represents the report of a trailing period.
type PeriodReportResponse struct {
	Period          domain.Period            `json:"period"`
	FromDate        string                   `json:"fromDate"`
	ToDate          string                   `json:"toDate"`
	Income          decimal.Decimal          `json:"income" swaggertype:"string"`
	Expense         decimal.Decimal          `json:"expense" swaggertype:"string"`
	Net             decimal.Decimal          `json:"net" swaggertype:"string"`
	Categories      []CategoryAmountResponse `json:"categories"`
	Daily           []DailyBucketResponse    `json:"daily"`
	LargestCategory *CategoryAmountResponse  `json:"largestCategory,omitempty"`
}

// HomeResponse backs the landing screen.
type HomeResponse struct {
	Profile ProfileResponse       `json:"profile"`
	Balance BalanceResponse       `json:"balance"`
	Recent  []TransactionResponse `json:"recent"`
	Quote   string                `json:"quote"`
}

// CategoriesResponse lists the static category tables.
type CategoriesResponse struct {
	Expense []domain.Category `json:"expense"`
	Income  []domain.Category `json:"income"`
}

func toCategoryAmountResponse(c domain.CategoryAmount) CategoryAmountResponse {
	return CategoryAmountResponse{Category: c.Category, Label: c.Label, Icon: c.Icon, Amount: c.Amount}
}

// ToPeriodReportResponse converts a domain.PeriodReport to its DTO.
// ToDate is the day the report was generated.
func ToPeriodReportResponse(r domain.PeriodReport) PeriodReportResponse {
	categories := make([]CategoryAmountResponse, len(r.Categories))
	for i, c := range r.Categories {
		categories[i] = toCategoryAmountResponse(c)
	}
	daily := make([]DailyBucketResponse, len(r.Daily))
	for i, b := range r.Daily {
		daily[i] = DailyBucketResponse{Date: b.Date, Inflow: b.Inflow, Outflow: b.Outflow}
	}

	res := PeriodReportResponse{
		Period:     r.Period,
		FromDate:   domain.FormatDate(r.Window.Start),
		ToDate:     domain.FormatDate(r.GeneratedAt),
		Income:     r.Totals.Income,
		Expense:    r.Totals.Expense,
		Net:        r.Totals.Net(),
		Categories: categories,
		Daily:      daily,
	}
	if r.LargestCategory != nil {
		largest := toCategoryAmountResponse(*r.LargestCategory)
		res.LargestCategory = &largest
	}
	return res
}
