package dto

import (
	"github.com/SscSPs/cekel_duit/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSavingsTargetRequest defines the data needed to create a savings target.
type CreateSavingsTargetRequest struct {
	Name     string          `json:"name" binding:"required,max=100" example:"HP baru"`
	Target   decimal.Decimal `json:"target" binding:"positivedecimal" swaggertype:"string" example:"2500000"`
	Deadline string          `json:"deadline" binding:"required,calendardate" example:"2025-06-30"`
	Emoji    string          `json:"emoji" binding:"max=16" example:"📱"` // Optional, defaults to 🎯
}

// AddMoneyRequest defines a deposit into a savings target.
type AddMoneyRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"positivedecimal" swaggertype:"string" example:"250000"`
}

// SavingsTargetResponse defines the data returned for a savings target.
type SavingsTargetResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Target    decimal.Decimal `json:"target" swaggertype:"string"`
	Current   decimal.Decimal `json:"current" swaggertype:"string"`
	Remaining decimal.Decimal `json:"remaining" swaggertype:"string"`
	Progress  decimal.Decimal `json:"progress" swaggertype:"string"` // Percent in [0,100]
	Completed bool            `json:"completed"`
	Deadline  string          `json:"deadline"`
	Emoji     string          `json:"emoji"`
}

// ListSavingsTargetsResponse wraps the list of savings targets.
type ListSavingsTargetsResponse struct {
	Targets []SavingsTargetResponse `json:"targets"`
}

// ToSavingsTargetResponse converts a domain.SavingsProgress to SavingsTargetResponse DTO
func ToSavingsTargetResponse(p domain.SavingsProgress) SavingsTargetResponse {
	return SavingsTargetResponse{
		ID:        p.ID,
		Name:      p.Name,
		Target:    p.Target,
		Current:   p.Current,
		Remaining: p.Remaining,
		Progress:  p.Percent.Round(2),
		Completed: p.IsCompleted(),
		Deadline:  p.Deadline,
		Emoji:     p.Emoji,
	}
}

// ToListSavingsTargetsResponse converts progress entries to the list DTO
func ToListSavingsTargetsResponse(items []domain.SavingsProgress) ListSavingsTargetsResponse {
	res := make([]SavingsTargetResponse, len(items))
	for i, p := range items {
		res[i] = ToSavingsTargetResponse(p)
	}
	return ListSavingsTargetsResponse{Targets: res}
}
