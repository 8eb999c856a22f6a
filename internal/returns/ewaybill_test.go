package returns

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bahikhata/internal/domain"
)

func TestComposeEWayBill(t *testing.T) {
	invoice := domain.SalesInvoice{
		InvoiceNo:     "INV-042",
		InvoiceDate:   "2024-02-10",
		TaxableAmount: 100000,
		CGSTAmount:    9000,
		SGSTAmount:    9000,
		GrandTotal:    118000,
		Items: []domain.InvoiceItem{
			{Name: "Widgets", HSNCode: "8471", Quantity: 10, Unit: "NOS", TaxableAmount: 100000, CGSTRate: 9, SGSTRate: 9},
		},
	}
	supplier := domain.Party{Name: "Acme Traders", GSTIN: "27ZZZZZ9999Z1Z9", City: "Pune", State: "Maharashtra", Pincode: "411001"}
	recipient := domain.Party{Name: "Gamma Retail", GSTIN: "29BBBBB1111B1Z4", City: "Bengaluru", State: "Karnataka", Pincode: "560001"}

	doc := ComposeEWayBill(invoice, supplier, recipient)

	assert.Equal(t, "O", doc.SupplyType)
	assert.Equal(t, "INV", doc.DocType)
	assert.Equal(t, "INV-042", doc.DocNo)
	assert.Equal(t, "27ZZZZZ9999Z1Z9", doc.FromGSTIN)
	assert.Equal(t, "29BBBBB1111B1Z4", doc.ToGSTIN)
	assert.Equal(t, "27", doc.FromStateCode)
	assert.Equal(t, "29", doc.ToStateCode)
	assert.Equal(t, 118000.0, doc.TotalInvValue)
	assert.Len(t, doc.Items, 1)
	assert.Equal(t, "8471", doc.Items[0].HSNCode)
	assert.Equal(t, 9.0, doc.Items[0].CGSTRate)
}

func TestComposeEWayBillUnregisteredRecipient(t *testing.T) {
	invoice := domain.SalesInvoice{InvoiceNo: "INV-043"}
	supplier := domain.Party{GSTIN: "27ZZZZZ9999Z1Z9", State: "Maharashtra"}
	recipient := domain.Party{Name: "Walk-in Buyer", State: "Maharashtra"}

	doc := ComposeEWayBill(invoice, supplier, recipient)

	assert.Equal(t, URPGSTIN, doc.ToGSTIN)
}

func TestComposeEWayBillEchoesInvoiceTax(t *testing.T) {
	// The composer echoes per-line rates from the invoice instead of
	// recomputing them.
	invoice := domain.SalesInvoice{
		InvoiceNo:  "INV-044",
		IGSTAmount: 4321.99,
		Items:      []domain.InvoiceItem{{IGSTRate: 12, TaxableAmount: 36016.58}},
	}

	doc := ComposeEWayBill(invoice, domain.Party{}, domain.Party{})

	assert.Equal(t, 4321.99, doc.IGSTValue)
	assert.Equal(t, 12.0, doc.Items[0].IGSTRate)
}
