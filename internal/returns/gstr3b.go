package returns

import (
	"bahikhata/internal/domain"
	"bahikhata/internal/tax"
)

// ComposeGSTR3B builds the monthly summary return: outward supply totals
// from sales invoices and a single eligible input tax credit row from
// purchase invoices. Per-transaction detail is not retained. Totals sum
// already-rounded per-invoice fields, so every document total equals the
// sum of the fields it was built from.
func ComposeGSTR3B(gstin string, period domain.Period, sales []domain.SalesInvoice, purchases []domain.PurchaseInvoice) (domain.GSTR3BDocument, error) {
	if !period.Valid() {
		return domain.GSTR3BDocument{}, domain.ErrInvalidPeriod
	}

	var sec domain.GSTR3BSectionSummary
	for _, inv := range sales {
		sec.TotalValue += inv.TaxableAmount
		sec.TotalIGST += inv.IGSTAmount
		sec.TotalCGST += inv.CGSTAmount
		sec.TotalSGST += inv.SGSTAmount
	}
	sec.TotalValue = tax.Round2(sec.TotalValue)
	sec.TotalIGST = tax.Round2(sec.TotalIGST)
	sec.TotalCGST = tax.Round2(sec.TotalCGST)
	sec.TotalSGST = tax.Round2(sec.TotalSGST)

	itc := domain.ITCEntry{Type: "IMPG"}
	for _, inv := range purchases {
		itc.IGST += inv.IGSTAmount
		itc.CGST += inv.CGSTAmount
		itc.SGST += inv.SGSTAmount
	}
	itc.IGST = tax.Round2(itc.IGST)
	itc.CGST = tax.Round2(itc.CGST)
	itc.SGST = tax.Round2(itc.SGST)

	return domain.GSTR3BDocument{
		GSTIN:     gstin,
		RetPeriod: period.String(),
		SecSum:    sec,
		ITC:       domain.ITCEligibility{Available: []domain.ITCEntry{itc}},
	}, nil
}
