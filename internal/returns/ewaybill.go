package returns

import (
	"bahikhata/internal/domain"
	"bahikhata/internal/tax"
)

// URPGSTIN marks an unregistered recipient on the e-Way Bill.
const URPGSTIN = "URP"

// ComposeEWayBill maps one invoice and its two parties into the transport
// document schema. Per-line tax rates and amounts are echoed from the
// invoice, never re-derived. Transport fields are left as placeholders
// for the transporter.
func ComposeEWayBill(invoice domain.SalesInvoice, supplier, recipient domain.Party) domain.EWayBillDocument {
	toGSTIN := recipient.GSTIN
	if toGSTIN == "" {
		toGSTIN = URPGSTIN
	}

	items := make([]domain.EWayBillItem, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		items = append(items, domain.EWayBillItem{
			ProductName:   item.Name,
			ProductDesc:   item.Description,
			HSNCode:       item.HSNCode,
			Quantity:      item.Quantity,
			QtyUnit:       item.Unit,
			TaxableAmount: item.TaxableAmount,
			SGSTRate:      item.SGSTRate,
			CGSTRate:      item.CGSTRate,
			IGSTRate:      item.IGSTRate,
			CessRate:      0,
		})
	}

	return domain.EWayBillDocument{
		SupplyType:    "O",
		SubSupplyType: "1",
		DocType:       "INV",
		DocNo:         invoice.InvoiceNo,
		DocDate:       invoice.InvoiceDate,
		GSTIN:         supplier.GSTIN,
		FromGSTIN:     supplier.GSTIN,
		FromTradeName: supplier.Name,
		FromAddress:   supplier.Address,
		FromPlace:     supplier.City,
		FromPincode:   supplier.Pincode,
		FromStateCode: tax.StateCode(supplier.State),
		ToGSTIN:       toGSTIN,
		ToTradeName:   recipient.Name,
		ToAddress:     recipient.Address,
		ToPlace:       recipient.City,
		ToPincode:     recipient.Pincode,
		ToStateCode:   tax.StateCode(recipient.State),
		TotalValue:    invoice.TaxableAmount,
		CGSTValue:     invoice.CGSTAmount,
		SGSTValue:     invoice.SGSTAmount,
		IGSTValue:     invoice.IGSTAmount,
		CessValue:     0,
		TotalInvValue: invoice.GrandTotal,
		TransMode:     "1",
		TransDistance: "0",
		VehicleType:   "R",
		Items:         items,
	}
}
