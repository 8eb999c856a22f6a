package returns

import (
	"sort"

	"bahikhata/internal/domain"
	"bahikhata/internal/tax"
)

// NoPANKey groups payments whose vendor has no PAN on record.
const NoPANKey = "NOPAN"

// ComposeForm26Q builds the quarterly non-salary TDS return. Payments are
// filtered to the quarter's calendar months, grouped by vendor PAN (NOPAN
// when absent), and emitted as one group per deductee sorted by PAN.
func ComposeForm26Q(quarter domain.Quarter, financialYear string, deductor domain.Deductor, payments []domain.VendorPayment) (domain.Form26QDocument, error) {
	if !quarter.Valid() {
		return domain.Form26QDocument{}, domain.ErrInvalidQuarter
	}
	assessmentYear, err := AssessmentYear(financialYear)
	if err != nil {
		return domain.Form26QDocument{}, err
	}

	months := make(map[int]bool, 3)
	for _, m := range quarter.Months() {
		months[m] = true
	}

	groups := make(map[string]*domain.DeducteeGroup)
	var totalTDS float64
	var filtered int
	for _, p := range payments {
		if !months[int(p.PaymentDate.Month())] {
			continue
		}
		filtered++
		totalTDS += p.TDSAmount

		key := p.VendorPAN
		if key == "" {
			key = NoPANKey
		}
		g, ok := groups[key]
		if !ok {
			g = &domain.DeducteeGroup{PAN: key, Name: p.VendorName}
			groups[key] = g
		}
		g.TotalTDS = tax.Round2(g.TotalTDS + p.TDSAmount)
		g.Payments = append(g.Payments, domain.DeducteePayment{
			Section:   p.Section,
			Amount:    p.Amount,
			TDSAmount: p.TDSAmount,
			Date:      p.PaymentDate.Format("2006-01-02"),
			ChallanNo: p.ChallanNo,
		})
	}

	deductees := make([]domain.DeducteeGroup, 0, len(groups))
	for _, g := range groups {
		deductees = append(deductees, *g)
	}
	sort.Slice(deductees, func(i, j int) bool { return deductees[i].PAN < deductees[j].PAN })

	return domain.Form26QDocument{
		FormType:       "26Q",
		Quarter:        quarter,
		FinancialYear:  financialYear,
		AssessmentYear: assessmentYear,
		PAN:            deductor.PAN,
		TAN:            deductor.TAN,
		Deductor: domain.DeductorDetails{
			Name:    deductor.Name,
			Address: deductor.Address,
			City:    deductor.City,
			State:   deductor.State,
			Pincode: deductor.Pincode,
		},
		Challans:  []domain.ChallanDetail{},
		Deductees: deductees,
		Summary: domain.Form26QSummary{
			TotalDeductees: len(deductees),
			TotalTDS:       tax.Round2(totalTDS),
		},
	}, nil
}
