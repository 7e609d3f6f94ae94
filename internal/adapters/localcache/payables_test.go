package localcache

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fenix_office/internal/models"
)

func TestPayableCacheRoundTrip(t *testing.T) {
	cache := NewPayableCache(t.TempDir())

	paid := time.Date(2026, time.February, 20, 0, 0, 0, 0, time.Local)
	in := []models.Payable{
		{
			ID:          "p1",
			Description: "office rent",
			Value:       decimal.RequireFromString("1500.00"),
			DueDate:     time.Date(2026, time.March, 5, 0, 0, 0, 0, time.Local),
			Status:      models.StatusNotPaid,
		},
		{
			ID:          "p2",
			Description: "water bill",
			Value:       decimal.RequireFromString("89.90"),
			DueDate:     time.Date(2026, time.February, 15, 0, 0, 0, 0, time.Local),
			Status:      models.StatusPaid,
			PaymentDate: &paid,
		},
	}

	if err := cache.Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := cache.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(out) != len(in) {
		t.Fatalf("got %d payables, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i].ID != in[i].ID || out[i].Description != in[i].Description {
			t.Fatalf("row %d identity mismatch: %+v", i, out[i])
		}
		if !out[i].Value.Equal(in[i].Value) {
			t.Fatalf("row %d value = %s, want %s", i, out[i].Value, in[i].Value)
		}
		if !out[i].DueDate.Equal(in[i].DueDate) {
			t.Fatalf("row %d due date = %s, want %s", i, out[i].DueDate, in[i].DueDate)
		}
		if out[i].Status != in[i].Status {
			t.Fatalf("row %d status = %s, want %s", i, out[i].Status, in[i].Status)
		}
	}
	if out[1].PaymentDate == nil || !out[1].PaymentDate.Equal(paid) {
		t.Fatalf("payment date lost in round trip: %v", out[1].PaymentDate)
	}
}

func TestPayableCacheMissingFileIsEmpty(t *testing.T) {
	cache := NewPayableCache(t.TempDir())
	out, err := cache.Load()
	if err != nil {
		t.Fatalf("load of missing file: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty collection, got %d rows", len(out))
	}
}

func TestPayableCacheSaveReplacesCollection(t *testing.T) {
	cache := NewPayableCache(t.TempDir())

	first := []models.Payable{{ID: "a", Value: decimal.NewFromInt(1), DueDate: time.Now()}}
	second := []models.Payable{
		{ID: "b", Value: decimal.NewFromInt(2), DueDate: time.Now()},
		{ID: "c", Value: decimal.NewFromInt(3), DueDate: time.Now()},
	}

	if err := cache.Save(first); err != nil {
		t.Fatalf("save first: %v", err)
	}
	if err := cache.Save(second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	out, err := cache.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 2 || out[0].ID != "b" || out[1].ID != "c" {
		t.Fatalf("cache did not replace collection: %+v", out)
	}
}
