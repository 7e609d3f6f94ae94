// Package localcache persists the payables collection to a JSON file so
// the app keeps working when the payables table is unreachable. The file
// always holds exactly the collection last merged into memory.
package localcache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"fenix_office/internal/models"
)

const fileName = "fenix_payables.json"

type PayableCache struct {
	path string
}

func NewPayableCache(dir string) *PayableCache {
	return &PayableCache{path: filepath.Join(dir, fileName)}
}

// cachedPayable is the on-disk shape. Dates are plain calendar days and
// money is kept as strings so decoding round-trips exactly.
type cachedPayable struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Value       string  `json:"value"`
	DueDate     string  `json:"due_date"`
	Status      string  `json:"status"`
	DaysOverdue int     `json:"days_overdue"`
	PaymentDate *string `json:"payment_date,omitempty"`
}

func (c *PayableCache) Load() ([]models.Payable, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read payables cache: %w", err)
	}

	var rows []cachedPayable
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode payables cache: %w", err)
	}

	out := make([]models.Payable, 0, len(rows))
	for _, r := range rows {
		p, err := r.toModel()
		if err != nil {
			return nil, fmt.Errorf("payables cache row %q: %w", r.ID, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (c *PayableCache) Save(payables []models.Payable) error {
	rows := make([]cachedPayable, 0, len(payables))
	for _, p := range payables {
		rows = append(rows, fromModel(p))
	}

	data, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("encode payables cache: %w", err)
	}

	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write payables cache: %w", err)
	}
	return os.Rename(tmp, c.path)
}

func fromModel(p models.Payable) cachedPayable {
	row := cachedPayable{
		ID:          p.ID,
		Description: p.Description,
		Value:       p.Value.String(),
		DueDate:     p.DueDate.Format("2006-01-02"),
		Status:      string(p.Status),
		DaysOverdue: p.DaysOverdue,
	}
	if p.PaymentDate != nil {
		s := p.PaymentDate.Format("2006-01-02")
		row.PaymentDate = &s
	}
	return row
}

func (r cachedPayable) toModel() (models.Payable, error) {
	value, err := decimal.NewFromString(r.Value)
	if err != nil {
		return models.Payable{}, fmt.Errorf("bad value %q: %w", r.Value, err)
	}
	due, err := time.ParseInLocation("2006-01-02", r.DueDate, time.Local)
	if err != nil {
		return models.Payable{}, fmt.Errorf("bad due date %q: %w", r.DueDate, err)
	}

	p := models.Payable{
		ID:          r.ID,
		Description: r.Description,
		Value:       value,
		DueDate:     due,
		Status:      models.Status(r.Status),
		DaysOverdue: r.DaysOverdue,
	}
	if r.PaymentDate != nil {
		pd, err := time.ParseInLocation("2006-01-02", *r.PaymentDate, time.Local)
		if err != nil {
			return models.Payable{}, fmt.Errorf("bad payment date %q: %w", *r.PaymentDate, err)
		}
		p.PaymentDate = &pd
	}
	return p, nil
}
