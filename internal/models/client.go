package models

import "github.com/shopspring/decimal"

type Client struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	TaxID           string          `json:"tax_id"`
	InterestPercent decimal.Decimal `json:"interest_percent"` // daily simple-interest rate on overdue invoices
	FinePercent     decimal.Decimal `json:"fine_percent"`     // stored but not consumed by any derivation
	Notes           string          `json:"notes"`
}
