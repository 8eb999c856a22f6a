package returns

import (
	"sort"

	"bahikhata/internal/domain"
	"bahikhata/internal/tax"
)

// ComposeForm24Q builds the quarterly salary TDS return: one row per
// employee under the fixed salary section, plus summary totals. Rows are
// sorted by employee PAN.
func ComposeForm24Q(quarter domain.Quarter, financialYear string, deductor domain.Deductor, salaries []domain.SalaryPayment) (domain.Form24QDocument, error) {
	if !quarter.Valid() {
		return domain.Form24QDocument{}, domain.ErrInvalidQuarter
	}
	assessmentYear, err := AssessmentYear(financialYear)
	if err != nil {
		return domain.Form24QDocument{}, err
	}

	employees := make([]domain.EmployeeDetail, 0, len(salaries))
	var summary domain.Form24QSummary
	for _, s := range salaries {
		employees = append(employees, domain.EmployeeDetail{
			PAN:         s.EmployeePAN,
			Name:        s.EmployeeName,
			GrossSalary: s.GrossSalary,
			TDSAmount:   s.TDSAmount,
			Section:     domain.SectionSalary,
		})
		summary.TotalTDS += s.TDSAmount
		summary.TotalSalary += s.GrossSalary
	}
	sort.Slice(employees, func(i, j int) bool { return employees[i].PAN < employees[j].PAN })

	summary.TotalEmployees = len(employees)
	summary.TotalTDS = tax.Round2(summary.TotalTDS)
	summary.TotalSalary = tax.Round2(summary.TotalSalary)

	return domain.Form24QDocument{
		FormType:       "24Q",
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
		Employees: employees,
		Summary:   summary,
	}, nil
}
