package returns

import (
	"sort"

	"bahikhata/internal/domain"
	"bahikhata/internal/tax"
)

// B2CLThreshold is the invoice value above which an unregistered-customer
// invoice is reported line-wise (b2cl) instead of in the consolidated
// b2cs bucket.
const B2CLThreshold = 250000

// ComposeGSTR1 buckets the period's sales invoices into the GSTR-1 schema.
// An invoice with a customer GSTIN always lands in b2b regardless of value;
// without one it goes to b2cl at or above the threshold, b2cs below it.
// Buckets are sorted by invoice number so a given batch always produces
// the same document.
func ComposeGSTR1(gstin string, period domain.Period, sales []domain.SalesInvoice) (domain.GSTR1Document, error) {
	if !period.Valid() {
		return domain.GSTR1Document{}, domain.ErrInvalidPeriod
	}

	doc := domain.GSTR1Document{
		GSTIN:     gstin,
		RetPeriod: period.String(),
		B2B:       []domain.GSTR1Invoice{},
		B2CL:      []domain.GSTR1Invoice{},
		B2CS:      []domain.GSTR1Invoice{},
		CDNR:      []domain.GSTR1Invoice{},
		CDNUR:     []domain.GSTR1Invoice{},
		Exports:   []domain.GSTR1Invoice{},
		Advance:   []domain.GSTR1Invoice{},
		AdvAdj:    []domain.GSTR1Invoice{},
		Exempt:    []domain.GSTR1Invoice{},
		ITCRev:    []domain.GSTR1Invoice{},
		ISD:       []domain.GSTR1Invoice{},
	}

	for _, inv := range sales {
		entry := gstr1Entry(inv)
		switch {
		case inv.CustomerGSTIN != "":
			entry.CTIN = inv.CustomerGSTIN
			doc.B2B = append(doc.B2B, entry)
		case inv.GrandTotal >= B2CLThreshold:
			doc.B2CL = append(doc.B2CL, entry)
		default:
			doc.B2CS = append(doc.B2CS, entry)
		}
	}

	sortGSTR1Bucket(doc.B2B)
	sortGSTR1Bucket(doc.B2CL)
	sortGSTR1Bucket(doc.B2CS)

	return doc, nil
}

func gstr1Entry(inv domain.SalesInvoice) domain.GSTR1Invoice {
	items := make([]domain.GSTR1Item, 0, len(inv.Items))
	for i, item := range inv.Items {
		items = append(items, domain.GSTR1Item{
			Num: i + 1,
			Detail: domain.GSTR1ItemDetail{
				Rate:         item.GSTRate,
				TaxableValue: item.TaxableAmount,
				IGST:         item.IGSTAmount,
				CGST:         item.CGSTAmount,
				SGST:         item.SGSTAmount,
				Cess:         0,
			},
		})
	}
	return domain.GSTR1Invoice{
		InvoiceNo:     inv.InvoiceNo,
		InvoiceDate:   inv.InvoiceDate,
		Value:         inv.GrandTotal,
		PlaceOfSupply: tax.StateCode(inv.PlaceOfSupply),
		ReverseCharge: "N",
		InvoiceType:   "R",
		Items:         items,
	}
}

func sortGSTR1Bucket(bucket []domain.GSTR1Invoice) {
	sort.Slice(bucket, func(i, j int) bool {
		if bucket[i].CTIN != bucket[j].CTIN {
			return bucket[i].CTIN < bucket[j].CTIN
		}
		return bucket[i].InvoiceNo < bucket[j].InvoiceNo
	})
}
