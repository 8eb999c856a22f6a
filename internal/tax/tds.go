package tax

import (
	"fmt"
	"sort"

	"bahikhata/internal/domain"
)

// tdsSection holds the statutory parameters of one TDS section.
// ThresholdIndividual is nonzero only for 194C, which carries a higher
// threshold for individual/HUF contractors.
type tdsSection struct {
	description         string
	rateWithPAN         float64
	rateWithoutPAN      float64
	threshold           float64
	thresholdIndividual float64
}

var tdsSections = map[domain.TDSSection]tdsSection{
	domain.Section194A: {"Interest other than securities", 10.0, 20.0, 40000, 0},
	domain.Section194C: {"Payments to contractors", 1.0, 20.0, 30000, 100000},
	domain.Section194H: {"Commission or brokerage", 5.0, 20.0, 15000, 0},
	domain.Section194I: {"Rent", 10.0, 20.0, 240000, 0},
	domain.Section194J: {"Professional or technical services", 10.0, 20.0, 30000, 0},
	domain.Section194O: {"E-commerce transactions", 1.0, 1.0, 500000, 0},
	domain.Section194Q: {"Purchase of goods", 0.1, 0.1, 5000000, 0},
	domain.Section194S: {"Virtual digital asset payments", 1.0, 1.0, 10000, 0},
}

// tcsSection holds the statutory parameters of one TCS section.
type tcsSection struct {
	description string
	rate        float64
	threshold   float64
}

var tcsSections = map[domain.TCSSection]tcsSection{
	domain.Section206C1H: {"Sale of goods", 0.1, 5000000},
	domain.Section206CG:  {"Parking lot / toll plaza", 2.0, 250000},
}

// ComputeTDS decides TDS applicability for a payment and computes the
// withheld amount. An unknown section is a recoverable caller error; a
// payment below the effective threshold is a normal non-applicable result
// with Reason populated, not an error.
func ComputeTDS(amount float64, section domain.TDSSection, panAvailable bool, payee domain.PayeeCategory) (domain.WithholdingResult, error) {
	sec, ok := tdsSections[section]
	if !ok {
		return domain.WithholdingResult{}, fmt.Errorf("%w: %s", domain.ErrUnknownSection, section)
	}

	threshold := sec.threshold
	// 194C carries a higher per-year threshold for individual/HUF contractors.
	if section == domain.Section194C && payee == domain.PayeeIndividual {
		threshold = sec.thresholdIndividual
	}

	if amount < threshold {
		return domain.WithholdingResult{
			Section:      section,
			IsApplicable: false,
			Threshold:    threshold,
			Reason:       fmt.Sprintf("payment amount %g is below threshold %g", amount, threshold),
		}, nil
	}

	rate := sec.rateWithoutPAN
	if panAvailable {
		rate = sec.rateWithPAN
	}
	withheld := Round2(percentOf(amount, rate))

	return domain.WithholdingResult{
		Section:      section,
		IsApplicable: true,
		Rate:         rate,
		Threshold:    threshold,
		Amount:       withheld,
		NetPayable:   Round2(amount - withheld),
	}, nil
}

// ComputeTCS decides TCS applicability for a sale and computes the amount
// to collect on top of it. There is no PAN bifurcation and no category
// override on the TCS side.
func ComputeTCS(amount float64, section domain.TCSSection) (domain.CollectionResult, error) {
	sec, ok := tcsSections[section]
	if !ok {
		return domain.CollectionResult{}, fmt.Errorf("%w: %s", domain.ErrUnknownTCSSection, section)
	}

	if amount < sec.threshold {
		return domain.CollectionResult{
			Section:      section,
			IsApplicable: false,
			Threshold:    sec.threshold,
			Reason:       fmt.Sprintf("sale amount %g is below threshold %g", amount, sec.threshold),
		}, nil
	}

	collected := Round2(percentOf(amount, sec.rate))

	return domain.CollectionResult{
		Section:         section,
		IsApplicable:    true,
		Rate:            sec.rate,
		Threshold:       sec.threshold,
		Amount:          collected,
		TotalReceivable: Round2(amount + collected),
	}, nil
}

// TDSRateCard returns every TDS section with its rates and thresholds,
// sorted by section code.
func TDSRateCard() []domain.RateCardEntry {
	entries := make([]domain.RateCardEntry, 0, len(tdsSections))
	for code, sec := range tdsSections {
		entries = append(entries, domain.RateCardEntry{
			Section:             code,
			Description:         sec.description,
			RateWithPAN:         sec.rateWithPAN,
			RateWithoutPAN:      sec.rateWithoutPAN,
			Threshold:           sec.threshold,
			ThresholdIndividual: sec.thresholdIndividual,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Section < entries[j].Section })
	return entries
}

// TCSRateCard returns every TCS section with its rate and threshold,
// sorted by section code.
func TCSRateCard() []domain.TCSRateCardEntry {
	entries := make([]domain.TCSRateCardEntry, 0, len(tcsSections))
	for code, sec := range tcsSections {
		entries = append(entries, domain.TCSRateCardEntry{
			Section:     code,
			Description: sec.description,
			Rate:        sec.rate,
			Threshold:   sec.threshold,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Section < entries[j].Section })
	return entries
}
