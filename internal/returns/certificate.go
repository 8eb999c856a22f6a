package returns

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"bahikhata/internal/domain"
)

// ComposeCertificate builds a Form 16A TDS certificate for one withheld
// payment. The reference number is a millisecond timestamp prefix with a
// UUID-derived suffix; uniqueness is collision-resistant but not a
// cryptographic guarantee.
func ComposeCertificate(payment domain.VendorPayment, deductor domain.Deductor) (domain.Form16ADocument, error) {
	assessmentYear, err := AssessmentYear(payment.FinancialYear)
	if err != nil {
		return domain.Form16ADocument{}, err
	}

	return domain.Form16ADocument{
		CertificateType: "16A",
		ReferenceNo:     newReferenceNo(),
		AssessmentYear:  assessmentYear,
		Deductor: domain.CertificateParty{
			Name:    deductor.Name,
			Address: deductor.Address,
			PAN:     deductor.PAN,
			TAN:     deductor.TAN,
		},
		Deductee: domain.CertificateParty{
			Name:    payment.VendorName,
			Address: payment.VendorAddress,
			PAN:     payment.VendorPAN,
		},
		Payment: domain.CertificatePayment{
			Amount:      payment.Amount,
			TDSAmount:   payment.TDSAmount,
			TDSRate:     payment.TDSRate,
			Section:     payment.Section,
			Date:        payment.PaymentDate.Format("2006-01-02"),
			ChallanNo:   payment.ChallanNo,
			ChallanDate: payment.ChallanDate,
			BSRCode:     payment.BSRCode,
		},
		DateOfGeneration: time.Now().Format("2006-01-02"),
		ResponsiblePerson: domain.ResponsiblePerson{
			Name:        deductor.ResponsiblePerson,
			Designation: deductor.ResponsibleDesignation,
		},
	}, nil
}

// newReferenceNo generates the certificate's unique transaction reference:
// Unix milliseconds followed by a 6-character uppercase random suffix.
func newReferenceNo() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return fmt.Sprintf("%d%s", time.Now().UnixMilli(), suffix)
}
