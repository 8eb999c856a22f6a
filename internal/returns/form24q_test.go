package returns

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bahikhata/internal/domain"
)

func TestComposeForm24Q(t *testing.T) {
	salaries := []domain.SalaryPayment{
		{EmployeeName: "B Kumar", EmployeePAN: "BBBPB1111B", GrossSalary: 80000, TDSAmount: 4000},
		{EmployeeName: "A Singh", EmployeePAN: "AAAPA0000A", GrossSalary: 120000, TDSAmount: 10000},
	}

	doc, err := ComposeForm24Q(domain.Q2, "2023-24", testDeductor(), salaries)

	assert.NoError(t, err)
	assert.Equal(t, "24Q", doc.FormType)
	assert.Equal(t, "2024-25", doc.AssessmentYear)
	assert.Len(t, doc.Employees, 2)

	// Sorted by PAN, every row under the salary section.
	assert.Equal(t, "AAAPA0000A", doc.Employees[0].PAN)
	assert.Equal(t, domain.SectionSalary, doc.Employees[0].Section)
	assert.Equal(t, domain.SectionSalary, doc.Employees[1].Section)

	assert.Equal(t, 2, doc.Summary.TotalEmployees)
	assert.Equal(t, 14000.0, doc.Summary.TotalTDS)
	assert.Equal(t, 200000.0, doc.Summary.TotalSalary)
}

func TestComposeForm24QEmpty(t *testing.T) {
	doc, err := ComposeForm24Q(domain.Q4, "2023-24", testDeductor(), nil)

	assert.NoError(t, err)
	assert.Empty(t, doc.Employees)
	assert.Equal(t, 0, doc.Summary.TotalEmployees)
}

func TestComposeForm24QInvalidQuarter(t *testing.T) {
	_, err := ComposeForm24Q(domain.Quarter("H1"), "2023-24", testDeductor(), nil)

	assert.ErrorIs(t, err, domain.ErrInvalidQuarter)
}
