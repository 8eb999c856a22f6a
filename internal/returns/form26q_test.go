package returns

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bahikhata/internal/domain"
)

func vendorPayment(pan, name string, month int, tds float64) domain.VendorPayment {
	return domain.VendorPayment{
		VendorName:    name,
		VendorPAN:     pan,
		Section:       domain.Section194C,
		Amount:        tds * 100,
		TDSAmount:     tds,
		TDSRate:       1.0,
		PaymentDate:   time.Date(2024, time.Month(month), 15, 0, 0, 0, 0, time.UTC),
		ChallanNo:     "CH-001",
		FinancialYear: "2024-25",
	}
}

func testDeductor() domain.Deductor {
	return domain.Deductor{
		Name:                   "Acme Traders Pvt Ltd",
		Address:                "12 MG Road",
		City:                   "Pune",
		State:                  "Maharashtra",
		Pincode:                "411001",
		PAN:                    "AAACA1234A",
		TAN:                    "PNEA12345B",
		ResponsiblePerson:      "R Sharma",
		ResponsibleDesignation: "Director",
	}
}

func TestComposeForm26Q(t *testing.T) {
	payments := []domain.VendorPayment{
		vendorPayment("BBBPB1111B", "Beta Services", 5, 500),
		vendorPayment("AAAPA0000A", "Alpha Works", 4, 1000),
		vendorPayment("AAAPA0000A", "Alpha Works", 6, 2000),
	}

	doc, err := ComposeForm26Q(domain.Q1, "2024-25", testDeductor(), payments)

	assert.NoError(t, err)
	assert.Equal(t, "26Q", doc.FormType)
	assert.Equal(t, "2025-26", doc.AssessmentYear)
	assert.Equal(t, "PNEA12345B", doc.TAN)
	assert.Len(t, doc.Deductees, 2)

	// Sorted by PAN, payments grouped per deductee.
	assert.Equal(t, "AAAPA0000A", doc.Deductees[0].PAN)
	assert.Len(t, doc.Deductees[0].Payments, 2)
	assert.Equal(t, 3000.0, doc.Deductees[0].TotalTDS)
	assert.Equal(t, "BBBPB1111B", doc.Deductees[1].PAN)

	assert.Equal(t, 2, doc.Summary.TotalDeductees)
	assert.Equal(t, 3500.0, doc.Summary.TotalTDS)
}

func TestComposeForm26QQuarterFilter(t *testing.T) {
	payments := []domain.VendorPayment{
		vendorPayment("AAAPA0000A", "Alpha Works", 4, 1000),  // Q1
		vendorPayment("AAAPA0000A", "Alpha Works", 7, 2000),  // Q2
		vendorPayment("AAAPA0000A", "Alpha Works", 10, 3000), // Q3
		vendorPayment("AAAPA0000A", "Alpha Works", 1, 4000),  // Q4
	}

	doc, err := ComposeForm26Q(domain.Q2, "2024-25", testDeductor(), payments)

	assert.NoError(t, err)
	assert.Len(t, doc.Deductees, 1)
	assert.Len(t, doc.Deductees[0].Payments, 1)
	assert.Equal(t, 2000.0, doc.Summary.TotalTDS)
}

func TestComposeForm26QNoPANGrouping(t *testing.T) {
	payments := []domain.VendorPayment{
		vendorPayment("", "Cash Vendor A", 4, 100),
		vendorPayment("", "Cash Vendor B", 5, 200),
		vendorPayment("AAAPA0000A", "Alpha Works", 4, 1000),
	}

	doc, err := ComposeForm26Q(domain.Q1, "2024-25", testDeductor(), payments)

	assert.NoError(t, err)
	assert.Len(t, doc.Deductees, 2)
	assert.Equal(t, "AAAPA0000A", doc.Deductees[0].PAN)
	assert.Equal(t, NoPANKey, doc.Deductees[1].PAN)
	assert.Len(t, doc.Deductees[1].Payments, 2)
	assert.Equal(t, 300.0, doc.Deductees[1].TotalTDS)
}

func TestComposeForm26QEmptyQuarter(t *testing.T) {
	doc, err := ComposeForm26Q(domain.Q3, "2024-25", testDeductor(), nil)

	assert.NoError(t, err)
	assert.Empty(t, doc.Deductees)
	assert.NotNil(t, doc.Challans)
	assert.Equal(t, 0, doc.Summary.TotalDeductees)
	assert.Equal(t, 0.0, doc.Summary.TotalTDS)
}

func TestComposeForm26QInvalidQuarter(t *testing.T) {
	_, err := ComposeForm26Q(domain.Quarter("Q5"), "2024-25", testDeductor(), nil)

	assert.ErrorIs(t, err, domain.ErrInvalidQuarter)
}

func TestComposeForm26QInvalidFinancialYear(t *testing.T) {
	_, err := ComposeForm26Q(domain.Q1, "24-25", testDeductor(), nil)

	assert.ErrorIs(t, err, domain.ErrInvalidFinancialYear)
}
