package models

// Status of an invoice or payable. NOT_PAID and OVERDUE are recomputed
// from the due date on every cycle; PAID is set only by an explicit user
// action and is never left automatically.
type Status string

const (
	StatusNotPaid Status = "NOT_PAID"
	StatusOverdue Status = "OVERDUE"
	StatusPaid    Status = "PAID"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNotPaid, StatusOverdue, StatusPaid:
		return true
	}
	return false
}
