package storage

import (
	"path/filepath"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/xuri/excelize/v2"

	"servismotor-bot/internal/catalog"
	"servismotor-bot/internal/estimator"
)

func TestExportQuoteToExcel(t *testing.T) {
	c := qt.New(t)

	s := estimator.New(catalog.Default())
	s.SelectDifficulty("sedang")
	s.AddPart("Kampas Rem", "30000")
	s.AddPart("Busi", "20000")

	createdAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	dir := filepath.Join(t.TempDir(), "reports")

	path, err := ExportQuoteToExcel(dir, NewQuoteReport(777, s, createdAt))
	c.Assert(err, qt.IsNil)
	c.Assert(path, qt.Equals, filepath.Join(dir, "quote_777_20260314_093000.xlsx"))

	f, err := excelize.OpenFile(path)
	c.Assert(err, qt.IsNil)
	defer f.Close()

	raw := excelize.Options{RawCellValue: true}
	get := func(ref string) string {
		v, err := f.GetCellValue(quoteSheet, ref, raw)
		c.Assert(err, qt.IsNil)
		return v
	}

	c.Assert(f.GetSheetList(), qt.DeepEquals, []string{quoteSheet})
	c.Assert(get("B2"), qt.Equals, "14.03.2026 09:30")
	c.Assert(get("B4"), qt.Equals, "Servis Ringan")
	c.Assert(get("C4"), qt.Equals, "75000")
	c.Assert(get("B5"), qt.Equals, "Sedang")
	c.Assert(get("C5"), qt.Equals, "+15%")

	c.Assert(get("B8"), qt.Equals, "Kampas Rem")
	c.Assert(get("C8"), qt.Equals, "30000")
	c.Assert(get("B9"), qt.Equals, "Busi")

	// totals start after one blank row
	c.Assert(get("A11"), qt.Equals, "Biaya Jasa Servis")
	c.Assert(get("C12"), qt.Equals, "50000")
	c.Assert(get("C13"), qt.Equals, "11250")
	c.Assert(get("A14"), qt.Equals, "Total Estimasi")
	c.Assert(get("C14"), qt.Equals, "136250")
}

func TestExportQuoteWithoutParts(t *testing.T) {
	c := qt.New(t)

	s := estimator.New(catalog.Default())
	path, err := ExportQuoteToExcel(t.TempDir(), NewQuoteReport(1, s, time.Now()))
	c.Assert(err, qt.IsNil)

	f, err := excelize.OpenFile(path)
	c.Assert(err, qt.IsNil)
	defer f.Close()

	v, err := f.GetCellValue(quoteSheet, "A12", excelize.Options{RawCellValue: true})
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, "Total Estimasi")
}
