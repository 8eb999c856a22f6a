package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"bahikhata/internal/domain"
)

// GSTR1Workbook renders a GSTR-1 document as an Excel workbook with one
// sheet per populated bucket. The caller owns closing the returned file.
func GSTR1Workbook(doc *domain.GSTR1Document) (*excelize.File, error) {
	f := excelize.NewFile()

	buckets := []struct {
		name     string
		invoices []domain.GSTR1Invoice
	}{
		{"B2B", doc.B2B},
		{"B2CL", doc.B2CL},
		{"B2CS", doc.B2CS},
	}

	for i, bucket := range buckets {
		sheet := bucket.name
		if i == 0 {
			f.SetSheetName(f.GetSheetName(0), sheet)
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, fmt.Errorf("create sheet %s: %w", sheet, err)
			}
		}

		header := []interface{}{"GSTIN of Recipient", "Invoice Number", "Invoice Date", "Invoice Value", "Place of Supply", "Rate", "Taxable Value", "IGST", "CGST", "SGST"}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return nil, fmt.Errorf("write header on %s: %w", sheet, err)
		}

		rowNum := 2
		for _, inv := range bucket.invoices {
			for _, item := range inv.Items {
				row := []interface{}{
					inv.CTIN,
					inv.InvoiceNo,
					inv.InvoiceDate,
					inv.Value,
					inv.PlaceOfSupply,
					item.Detail.Rate,
					item.Detail.TaxableValue,
					item.Detail.IGST,
					item.Detail.CGST,
					item.Detail.SGST,
				}
				cell := fmt.Sprintf("A%d", rowNum)
				if err := f.SetSheetRow(sheet, cell, &row); err != nil {
					return nil, fmt.Errorf("write row on %s: %w", sheet, err)
				}
				rowNum++
			}
		}
	}

	return f, nil
}

// Form26QWorkbook renders a Form 26Q document as an Excel workbook: one
// Deductees sheet with payment detail and a Summary sheet with totals.
func Form26QWorkbook(doc *domain.Form26QDocument) (*excelize.File, error) {
	f := excelize.NewFile()

	sheet := "Deductees"
	f.SetSheetName(f.GetSheetName(0), sheet)

	header := make([]interface{}, len(form26qColumns))
	for i, c := range form26qColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	rowNum := 2
	for _, group := range doc.Deductees {
		for _, p := range group.Payments {
			row := []interface{}{group.PAN, group.Name, string(p.Section), p.Date, p.Amount, p.TDSAmount, p.ChallanNo}
			cell := fmt.Sprintf("A%d", rowNum)
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return nil, fmt.Errorf("write row: %w", err)
			}
			rowNum++
		}
	}

	if _, err := f.NewSheet("Summary"); err != nil {
		return nil, fmt.Errorf("create summary sheet: %w", err)
	}
	summaryRows := [][]interface{}{
		{"Form Type", doc.FormType},
		{"Quarter", string(doc.Quarter)},
		{"Financial Year", doc.FinancialYear},
		{"Assessment Year", doc.AssessmentYear},
		{"TAN", doc.TAN},
		{"Total Deductees", doc.Summary.TotalDeductees},
		{"Total TDS", doc.Summary.TotalTDS},
	}
	for i, row := range summaryRows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow("Summary", cell, &row); err != nil {
			return nil, fmt.Errorf("write summary row: %w", err)
		}
	}

	return f, nil
}

// RateCardWorkbook renders the TDS and TCS rate cards as a two-sheet
// Excel workbook.
func RateCardWorkbook(tds []domain.RateCardEntry, tcs []domain.TCSRateCardEntry) (*excelize.File, error) {
	f := excelize.NewFile()

	sheet := "TDS"
	f.SetSheetName(f.GetSheetName(0), sheet)
	header := []interface{}{"Section", "Description", "Rate with PAN", "Rate without PAN", "Threshold", "Threshold (Individual)"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write tds header: %w", err)
	}
	for i, e := range tds {
		row := []interface{}{string(e.Section), e.Description, e.RateWithPAN, e.RateWithoutPAN, e.Threshold, e.ThresholdIndividual}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write tds row: %w", err)
		}
	}

	if _, err := f.NewSheet("TCS"); err != nil {
		return nil, fmt.Errorf("create tcs sheet: %w", err)
	}
	tcsHeader := []interface{}{"Section", "Description", "Rate", "Threshold"}
	if err := f.SetSheetRow("TCS", "A1", &tcsHeader); err != nil {
		return nil, fmt.Errorf("write tcs header: %w", err)
	}
	for i, e := range tcs {
		row := []interface{}{string(e.Section), e.Description, e.Rate, e.Threshold}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow("TCS", cell, &row); err != nil {
			return nil, fmt.Errorf("write tcs row: %w", err)
		}
	}

	return f, nil
}
