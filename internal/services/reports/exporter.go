// Package reports renders the monthly office workbook and ships it to the
// exports bucket.
package reports

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/xuri/excelize/v2"

	"fenix_office/internal/config/connections/s3"
	"fenix_office/internal/derive"
	"fenix_office/internal/logger"
	"fenix_office/internal/models"
	"fenix_office/internal/services/sync"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Exporter struct {
	s3    *s3.S3
	state *sync.Service
}

func NewExporter(s3c *s3.S3, state *sync.Service) *Exporter {
	return &Exporter{s3: s3c, state: state}
}

// Result describes where a generated report landed.
type Result struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
	Size   int64  `json:"size_bytes"`
}

// ExportMonth builds the workbook for one reporting month from the current
// snapshot and uploads it as reports/YYYY-MM.xlsx.
func (e *Exporter) ExportMonth(ctx context.Context, year int, month time.Month) (Result, error) {
	log := logger.WithComponent("reports")
	start := time.Now()

	snap := e.state.Snapshot()
	f, err := BuildMonthlyWorkbook(snap, year, month)
	if err != nil {
		return Result{}, fmt.Errorf("build workbook: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return Result{}, fmt.Errorf("encode workbook: %w", err)
	}

	key := fmt.Sprintf("reports/%s.xlsx", models.MonthKey(year, month))
	info, err := e.s3.Client.PutObject(ctx, e.s3.Bucket, key, &buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: contentTypeXLSX,
	})
	if err != nil {
		return Result{}, fmt.Errorf("upload report: %w", err)
	}

	log.Info().
		Str("key", key).
		Int64("size", info.Size).
		Dur("took", time.Since(start)).
		Msg("monthly report uploaded")

	return Result{Bucket: e.s3.Bucket, Key: key, Size: info.Size}, nil
}

// BuildMonthlyWorkbook renders the four report sheets. Pure with respect
// to the snapshot: no network, callers own the returned file.
func BuildMonthlyWorkbook(snap *sync.Snapshot, year int, month time.Month) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeInvoicesSheet(f, snap, year, month); err != nil {
		return nil, err
	}
	if err := writePayablesSheet(f, snap); err != nil {
		return nil, err
	}
	if err := writeDailySheet(f, snap, year, month); err != nil {
		return nil, err
	}
	if err := writeCardsSheet(f, snap, year, month); err != nil {
		return nil, err
	}

	f.DeleteSheet("Sheet1")
	return f, nil
}

func categoryLabel(c models.Category) string {
	switch c {
	case models.CategoryAwaitingNote:
		return "Awaiting note"
	case models.CategoryInternet:
		return "Internet"
	case models.CategoryNoNote:
		return "No note"
	}
	return "Standard"
}

func writeInvoicesSheet(f *excelize.File, snap *sync.Snapshot, year int, month time.Month) error {
	const sheet = "Invoices"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]any{
		{"Number", "Category", "Who owes", "Due date", "Status", "Days overdue", "Original value", "Final value", "Payment date"},
	}
	for _, inv := range snap.Invoices {
		if int(inv.DueDate.Month()) != int(month) || inv.DueDate.Year() != year {
			continue
		}
		who := ""
		if inv.ClientID != nil {
			if c := snap.ClientByID(inv.ClientID); c != nil {
				who = c.Name
			}
		} else if inv.PayerName != nil {
			who = *inv.PayerName
		}
		paymentDate := ""
		if inv.PaymentDate != nil {
			paymentDate = inv.PaymentDate.Format("2006-01-02")
		}
		rows = append(rows, []any{
			inv.Number,
			categoryLabel(inv.Category),
			who,
			inv.DueDate.Format("2006-01-02"),
			string(inv.Status),
			inv.DaysOverdue,
			inv.Value.StringFixed(2),
			inv.FinalValue.StringFixed(2),
			paymentDate,
		})
	}
	return writeRows(f, sheet, rows)
}

func writePayablesSheet(f *excelize.File, snap *sync.Snapshot) error {
	const sheet = "Payables"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]any{
		{"Description", "Due date", "Status", "Days overdue", "Value"},
	}
	for _, p := range snap.Payables {
		rows = append(rows, []any{
			p.Description,
			p.DueDate.Format("2006-01-02"),
			string(p.Status),
			p.DaysOverdue,
			p.Value.StringFixed(2),
		})
	}
	return writeRows(f, sheet, rows)
}

func writeDailySheet(f *excelize.File, snap *sync.Snapshot, year int, month time.Month) error {
	const sheet = "Daily"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]any{
		{"Date", "Fees", "Opening", "Closing", "Payroll", "Tax forms", "Certificates",
			"Declarations", "Registrations", "Copies", "Notary", "Other", "Total"},
	}
	for _, d := range snap.DailyPayments {
		if int(d.Date.Month()) != int(month) || d.Date.Year() != year {
			continue
		}
		rows = append(rows, []any{
			d.Date.Format("2006-01-02"),
			d.Fees.StringFixed(2),
			d.CompanyOpening.StringFixed(2),
			d.CompanyClosing.StringFixed(2),
			d.Payroll.StringFixed(2),
			d.TaxForms.StringFixed(2),
			d.Certificates.StringFixed(2),
			d.Declarations.StringFixed(2),
			d.Registrations.StringFixed(2),
			d.Copies.StringFixed(2),
			d.Notary.StringFixed(2),
			d.Other.StringFixed(2),
			d.Total.StringFixed(2),
		})
	}
	return writeRows(f, sheet, rows)
}

func writeCardsSheet(f *excelize.File, snap *sync.Snapshot, year int, month time.Month) error {
	const sheet = "Cards"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	lines := derive.MonthInstallments(snap.CardExpenses, snap.CardPayments, year, month)

	rows := [][]any{
		{"Card", "Description", "Installment", "Of", "Value", "Remaining", "Paid"},
	}
	for _, l := range lines {
		rows = append(rows, []any{
			l.Expense.Card,
			l.Expense.Description,
			l.Number,
			l.Expense.Installments,
			l.Value.StringFixed(2),
			derive.RemainingBalance(l.Expense, snap.CardPayments).StringFixed(2),
			l.Paid,
		})
	}
	return writeRows(f, sheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
