package models

import "github.com/shopspring/decimal"

// SavingsTarget is the stored shape of one element of the "savingsTargets" document.
type SavingsTarget struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Target   decimal.Decimal `json:"target"`
	Current  decimal.Decimal `json:"current"`
	Deadline string          `json:"deadline"`
	Emoji    string          `json:"emoji"`
}
