package domain

import "github.com/shopspring/decimal"

// DefaultSavingsEmoji is used when a target is created without a glyph.
const DefaultSavingsEmoji = "🎯"

// SavingsTarget is a user goal with a running saved total.
// Current only grows and may exceed Target; it is never clamped when stored.
type SavingsTarget struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Target   decimal.Decimal `json:"target"`  // Goal amount, positive
	Current  decimal.Decimal `json:"current"` // Saved so far, non-negative
	Deadline string          `json:"deadline"`
	Emoji    string          `json:"emoji"`
}

// IsCompleted reports whether the saved amount reached the goal.
func (s SavingsTarget) IsCompleted() bool {
	return s.Target.IsPositive() && s.Current.GreaterThanOrEqual(s.Target)
}

// SavingsProgress pairs a target with its display progress.
type SavingsProgress struct {
	SavingsTarget
	Percent   decimal.Decimal
	Remaining decimal.Decimal // Zero once the goal is reached
}
