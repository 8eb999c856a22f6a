package service

import (
	"bahikhata/internal/domain"
	"bahikhata/internal/tax"
)

// TaxService exposes the per-transaction tax computations. Every method is
// a pure function of its inputs and the static reference tables, so the
// service is safe for unlimited concurrent use.
type TaxService interface {
	ComputeGST(amount float64, rate domain.TaxSlab, supplierState, placeOfSupply string) (domain.TaxSplit, error)
	ValidateGSTIN(gstin string) (string, error)
	ComputeTDS(amount float64, section domain.TDSSection, panAvailable bool, payee domain.PayeeCategory) (domain.WithholdingResult, error)
	ComputeTCS(amount float64, section domain.TCSSection) (domain.CollectionResult, error)
	RateCard() ([]domain.RateCardEntry, []domain.TCSRateCardEntry)
}

type taxService struct{}

// NewTaxService creates a new TaxService implementation.
func NewTaxService() TaxService {
	return &taxService{}
}

func (s *taxService) ComputeGST(amount float64, rate domain.TaxSlab, supplierState, placeOfSupply string) (domain.TaxSplit, error) {
	return tax.ComputeGST(amount, rate, supplierState, placeOfSupply)
}

func (s *taxService) ValidateGSTIN(gstin string) (string, error) {
	return tax.ValidateGSTIN(gstin)
}

func (s *taxService) ComputeTDS(amount float64, section domain.TDSSection, panAvailable bool, payee domain.PayeeCategory) (domain.WithholdingResult, error) {
	return tax.ComputeTDS(amount, section, panAvailable, payee)
}

func (s *taxService) ComputeTCS(amount float64, section domain.TCSSection) (domain.CollectionResult, error) {
	return tax.ComputeTCS(amount, section)
}

func (s *taxService) RateCard() ([]domain.RateCardEntry, []domain.TCSRateCardEntry) {
	return tax.TDSRateCard(), tax.TCSRateCard()
}
