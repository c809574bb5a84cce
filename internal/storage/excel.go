package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"servismotor-bot/internal/catalog"
	"servismotor-bot/internal/estimator"
	"servismotor-bot/internal/ledger"
	"servismotor-bot/internal/pricing"
)

const quoteSheet = "Estimasi"

// excelize built-in number format "#,##0"
const thousandsNumFmt = 3

// QuoteReport is a frozen copy of an estimate for export.
type QuoteReport struct {
	ChatID     int64
	Service    catalog.Service
	Difficulty catalog.DifficultyLevel
	Parts      []ledger.Part
	Breakdown  pricing.Breakdown
	CreatedAt  time.Time
}

func NewQuoteReport(chatID int64, s *estimator.Session, createdAt time.Time) QuoteReport {
	return QuoteReport{
		ChatID:     chatID,
		Service:    s.Service(),
		Difficulty: s.Difficulty(),
		Parts:      s.Parts(),
		Breakdown:  s.Quote(),
		CreatedAt:  createdAt,
	}
}

// ExportQuoteToExcel writes the quote as an .xlsx file into dir and returns
// its path.
func ExportQuoteToExcel(dir string, q QuoteReport) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", quoteSheet); err != nil {
		return "", fmt.Errorf("failed to create sheet: %w", err)
	}

	type cell struct {
		ref   string
		value any
	}
	cells := []cell{
		{"A1", "Estimasi Biaya Servis Motor"},
		{"A2", "Tanggal"},
		{"B2", q.CreatedAt.Format("02.01.2006 15:04")},
		{"A4", "Jenis Servis"},
		{"B4", q.Service.Name},
		{"C4", q.Service.Price},
		{"A5", "Tingkat Kesulitan"},
		{"B5", q.Difficulty.Name},
		{"C5", pricing.FormatSurcharge(q.Difficulty.Multiplier)},
		{"A7", "Sparepart"},
		{"C7", "Harga"},
	}

	row := 8
	for _, p := range q.Parts {
		cells = append(cells,
			cell{fmt.Sprintf("A%d", row), p.ID},
			cell{fmt.Sprintf("B%d", row), p.Name},
			cell{fmt.Sprintf("C%d", row), p.Price},
		)
		row++
	}

	totalsStart := row + 1
	totals := []struct {
		label  string
		amount float64
	}{
		{"Biaya Jasa Servis", q.Breakdown.ServiceCost},
		{"Total Sparepart", q.Breakdown.PartsTotalCost},
		{"Biaya Kesulitan", q.Breakdown.DifficultyCost},
		{"Total Estimasi", q.Breakdown.TotalCost},
	}
	for i, t := range totals {
		r := totalsStart + i
		cells = append(cells,
			cell{fmt.Sprintf("A%d", r), t.label},
			cell{fmt.Sprintf("C%d", r), t.amount},
		)
	}
	lastRow := totalsStart + len(totals) - 1

	for _, c := range cells {
		if err := f.SetCellValue(quoteSheet, c.ref, c.value); err != nil {
			return "", fmt.Errorf("failed to set %s: %w", c.ref, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return "", fmt.Errorf("failed to create style: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: thousandsNumFmt})
	if err != nil {
		return "", fmt.Errorf("failed to create style: %w", err)
	}
	styles := []struct {
		from, to string
		style    int
	}{
		{"A1", "A7", bold},
		{"C7", "C7", bold},
		{fmt.Sprintf("A%d", totalsStart), fmt.Sprintf("A%d", lastRow), bold},
		{"C4", "C4", money},
		{"C8", fmt.Sprintf("C%d", lastRow), money},
	}
	for _, s := range styles {
		if err := f.SetCellStyle(quoteSheet, s.from, s.to, s.style); err != nil {
			return "", fmt.Errorf("failed to set style: %w", err)
		}
	}
	if err := f.SetColWidth(quoteSheet, "A", "B", 28); err != nil {
		return "", fmt.Errorf("failed to set column width: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}

	filename := fmt.Sprintf("quote_%d_%s.xlsx", q.ChatID, q.CreatedAt.Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save Excel file: %w", err)
	}

	return path, nil
}
