package returns

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bahikhata/internal/domain"
)

func TestComposeCertificate(t *testing.T) {
	payment := domain.VendorPayment{
		VendorName:    "Alpha Works",
		VendorPAN:     "AAAPA0000A",
		VendorAddress: "4 Industrial Estate",
		Section:       domain.Section194J,
		Amount:        100000,
		TDSAmount:     10000,
		TDSRate:       10,
		PaymentDate:   time.Date(2023, 8, 21, 0, 0, 0, 0, time.UTC),
		ChallanNo:     "CH-778",
		ChallanDate:   "2023-09-05",
		BSRCode:       "0240012",
		FinancialYear: "2023-24",
	}

	doc, err := ComposeCertificate(payment, testDeductor())

	assert.NoError(t, err)
	assert.Equal(t, "16A", doc.CertificateType)
	assert.Equal(t, "2024-25", doc.AssessmentYear)
	assert.Equal(t, "Acme Traders Pvt Ltd", doc.Deductor.Name)
	assert.Equal(t, "PNEA12345B", doc.Deductor.TAN)
	assert.Equal(t, "AAAPA0000A", doc.Deductee.PAN)
	assert.Equal(t, "2023-08-21", doc.Payment.Date)
	assert.Equal(t, 10000.0, doc.Payment.TDSAmount)
	assert.Equal(t, "R Sharma", doc.ResponsiblePerson.Name)
	assert.Equal(t, "Director", doc.ResponsiblePerson.Designation)
}

func TestComposeCertificateReferenceNoShape(t *testing.T) {
	payment := domain.VendorPayment{FinancialYear: "2023-24"}

	doc, err := ComposeCertificate(payment, testDeductor())

	assert.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d{13}[0-9A-F]{6}$`), doc.ReferenceNo)
}

func TestComposeCertificateReferenceNoUnique(t *testing.T) {
	payment := domain.VendorPayment{FinancialYear: "2023-24"}

	a, err := ComposeCertificate(payment, testDeductor())
	assert.NoError(t, err)
	b, err := ComposeCertificate(payment, testDeductor())
	assert.NoError(t, err)

	assert.NotEqual(t, a.ReferenceNo, b.ReferenceNo)
}

func TestComposeCertificateInvalidFinancialYear(t *testing.T) {
	_, err := ComposeCertificate(domain.VendorPayment{FinancialYear: "bad"}, testDeductor())

	assert.ErrorIs(t, err, domain.ErrInvalidFinancialYear)
}
