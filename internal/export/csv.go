package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"bahikhata/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// form26qColumns defines the CSV header row for deductee payment detail.
var form26qColumns = []string{
	"Deductee PAN",
	"Deductee Name",
	"Section",
	"Payment Date",
	"Payment Amount",
	"TDS Amount",
	"Challan No",
}

// Form26QCSV writes the deductee payment rows of a Form 26Q document as
// CSV, one row per payment, preceded by a BOM and a header row.
func Form26QCSV(w io.Writer, doc *domain.Form26QDocument) error {
	if _, err := w.Write(BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(form26qColumns); err != nil {
		return err
	}
	for _, group := range doc.Deductees {
		for _, p := range group.Payments {
			row := []string{
				group.PAN,
				group.Name,
				string(p.Section),
				p.Date,
				formatMoney(p.Amount),
				formatMoney(p.TDSAmount),
				p.ChallanNo,
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
