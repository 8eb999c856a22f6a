package tax

import (
	"fmt"

	"bahikhata/internal/domain"
)

// gstSplit holds the CGST/SGST/IGST percentages for one slab.
// CGST and SGST are always half the slab rate; IGST equals it.
type gstSplit struct {
	cgst float64
	sgst float64
	igst float64
}

var gstRates = map[domain.TaxSlab]gstSplit{
	domain.SlabExempt:      {0, 0, 0},
	domain.SlabFive:        {2.5, 2.5, 5},
	domain.SlabTwelve:      {6, 6, 12},
	domain.SlabEighteen:    {9, 9, 18},
	domain.SlabTwentyEight: {14, 14, 28},
}

// ComputeGST splits a taxable amount into its GST components. Interstate
// supplies attract IGST only; intrastate supplies split the rate evenly
// between CGST and SGST. Every monetary output field is rounded to 2
// decimals independently, half away from zero.
func ComputeGST(amount float64, rate domain.TaxSlab, supplierState, placeOfSupply string) (domain.TaxSplit, error) {
	rates, ok := gstRates[rate]
	if !ok {
		return domain.TaxSplit{}, fmt.Errorf("%w: %g%%", domain.ErrInvalidRate, float64(rate))
	}

	interstate := IsInterstate(supplierState, placeOfSupply)

	var cgst, sgst, igst float64
	if interstate {
		igst = percentOf(amount, rates.igst)
	} else {
		cgst = percentOf(amount, rates.cgst)
		sgst = percentOf(amount, rates.sgst)
	}

	totalTax := cgst + sgst + igst

	return domain.TaxSplit{
		TaxableAmount: Round2(amount),
		CGST:          Round2(cgst),
		SGST:          Round2(sgst),
		IGST:          Round2(igst),
		TotalTax:      Round2(totalTax),
		TotalAmount:   Round2(amount + totalTax),
		IsInterstate:  interstate,
	}, nil
}
