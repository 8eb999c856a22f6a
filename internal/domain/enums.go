package domain

// TaxSlab is one of the closed set of GST rate slabs.
type TaxSlab float64

const (
	SlabExempt      TaxSlab = 0
	SlabFive        TaxSlab = 5
	SlabTwelve      TaxSlab = 12
	SlabEighteen    TaxSlab = 18
	SlabTwentyEight TaxSlab = 28
)

// AllTaxSlabs lists every valid slab in ascending order.
var AllTaxSlabs = []TaxSlab{SlabExempt, SlabFive, SlabTwelve, SlabEighteen, SlabTwentyEight}

// Valid reports whether the slab belongs to the closed rate set.
func (s TaxSlab) Valid() bool {
	switch s {
	case SlabExempt, SlabFive, SlabTwelve, SlabEighteen, SlabTwentyEight:
		return true
	}
	return false
}

// TDSSection identifies a TDS section of the Income Tax Act.
type TDSSection string

const (
	Section194A TDSSection = "194A" // interest other than securities
	Section194C TDSSection = "194C" // payments to contractors
	Section194H TDSSection = "194H" // commission or brokerage
	Section194I TDSSection = "194I" // rent
	Section194J TDSSection = "194J" // professional or technical services
	Section194O TDSSection = "194O" // e-commerce transactions
	Section194Q TDSSection = "194Q" // purchase of goods
	Section194S TDSSection = "194S" // virtual digital assets
)

// SectionSalary is the fixed section tag reported for salary TDS in Form 24Q.
const SectionSalary TDSSection = "192"

// TCSSection identifies a TCS section.
type TCSSection string

const (
	Section206C1H TCSSection = "206C_1H" // sale of goods
	Section206CG  TCSSection = "206CG"   // parking lot / toll plaza
)

// PayeeCategory classifies the payee for threshold selection.
type PayeeCategory string

const (
	PayeeIndividual PayeeCategory = "individual"
	PayeeCompany    PayeeCategory = "company"
	PayeeFirm       PayeeCategory = "firm"
	PayeeHUF        PayeeCategory = "huf"
)

// Quarter identifies a quarter of the Indian financial year (April-March).
type Quarter string

const (
	Q1 Quarter = "Q1"
	Q2 Quarter = "Q2"
	Q3 Quarter = "Q3"
	Q4 Quarter = "Q4"
)

// Valid reports whether the quarter tag is one of Q1-Q4.
func (q Quarter) Valid() bool {
	switch q {
	case Q1, Q2, Q3, Q4:
		return true
	}
	return false
}

// Months returns the calendar months covered by the quarter.
// The financial year starts in April, so Q1 is April-June and Q4 wraps
// into January-March of the following calendar year.
func (q Quarter) Months() []int {
	switch q {
	case Q1:
		return []int{4, 5, 6}
	case Q2:
		return []int{7, 8, 9}
	case Q3:
		return []int{10, 11, 12}
	case Q4:
		return []int{1, 2, 3}
	}
	return nil
}

// ReturnKind discriminates the closed set of statutory documents the
// engine can compose.
type ReturnKind string

const (
	ReturnGSTR1       ReturnKind = "GSTR1"
	ReturnGSTR3B      ReturnKind = "GSTR3B"
	ReturnForm26Q     ReturnKind = "FORM26Q"
	ReturnForm24Q     ReturnKind = "FORM24Q"
	ReturnEWayBill    ReturnKind = "EWAYBILL"
	ReturnCertificate ReturnKind = "FORM16A"
)
