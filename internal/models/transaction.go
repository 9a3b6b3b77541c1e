package models

import "github.com/shopspring/decimal"

// Transaction is the stored shape of one element of the "transactions" document.
type Transaction struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Date     string          `json:"date"`
	Note     string          `json:"note"`
}
