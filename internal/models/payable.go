package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payable is an obligation owed by the firm itself (rent, utilities).
// Only the status is date-derived; the value never grows.
type Payable struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
	DueDate     time.Time       `json:"due_date"`
	Status      Status          `json:"status"`
	DaysOverdue int             `json:"days_overdue"`
	PaymentDate *time.Time      `json:"payment_date,omitempty"`
}
