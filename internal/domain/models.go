package domain

import (
	"fmt"
	"time"
)

// Period identifies a monthly GST filing period.
type Period struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2017"`
}

// Valid reports whether the period is a plausible filing period.
func (p Period) Valid() bool {
	return p.Month >= 1 && p.Month <= 12 && p.Year >= 2017
}

// String renders the period in the MMYYYY form used by GST return schemas.
func (p Period) String() string {
	return fmt.Sprintf("%02d%d", p.Month, p.Year)
}

// TaxSplit is the result of a GST computation on a single taxable amount.
// Exactly one side of the split is populated: IGST for interstate supplies,
// CGST+SGST for intrastate.
type TaxSplit struct {
	TaxableAmount float64 `json:"taxable_amount"`
	CGST          float64 `json:"cgst"`
	SGST          float64 `json:"sgst"`
	IGST          float64 `json:"igst"`
	TotalTax      float64 `json:"total_gst"`
	TotalAmount   float64 `json:"total_amount"`
	IsInterstate  bool    `json:"is_interstate"`
}

// WithholdingResult is the outcome of a TDS computation. A payment below
// the effective threshold is a normal outcome, not an error: IsApplicable
// is false, Amount and Rate are zero, and Reason explains why.
type WithholdingResult struct {
	Section      TDSSection `json:"section"`
	IsApplicable bool       `json:"is_applicable"`
	Rate         float64    `json:"tds_rate"`
	Threshold    float64    `json:"applicable_threshold"`
	Amount       float64    `json:"tds_amount"`
	NetPayable   float64    `json:"net_payable_amount"`
	Reason       string     `json:"reason,omitempty"`
}

// CollectionResult is the TCS analogue of WithholdingResult.
type CollectionResult struct {
	Section         TCSSection `json:"section"`
	IsApplicable    bool       `json:"is_applicable"`
	Rate            float64    `json:"tcs_rate"`
	Threshold       float64    `json:"applicable_threshold"`
	Amount          float64    `json:"tcs_amount"`
	TotalReceivable float64    `json:"total_receivable_amount"`
	Reason          string     `json:"reason,omitempty"`
}

// RateCardEntry is one row of the TDS rate card.
type RateCardEntry struct {
	Section             TDSSection `json:"section"`
	Description         string     `json:"description"`
	RateWithPAN         float64    `json:"with_pan"`
	RateWithoutPAN      float64    `json:"without_pan"`
	Threshold           float64    `json:"threshold"`
	ThresholdIndividual float64    `json:"threshold_individual,omitempty"`
}

// TCSRateCardEntry is one row of the TCS rate card.
type TCSRateCardEntry struct {
	Section     TCSSection `json:"section"`
	Description string     `json:"description"`
	Rate        float64    `json:"rate"`
	Threshold   float64    `json:"threshold"`
}

// InvoiceItem is a single line of a sales invoice with its already-computed
// per-line tax fields. Composers echo these values and never re-derive them.
type InvoiceItem struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	HSNCode       string  `json:"hsn_code"`
	Quantity      float64 `json:"quantity"`
	Unit          string  `json:"unit"`
	GSTRate       float64 `json:"gst_rate"`
	TaxableAmount float64 `json:"taxable_amount"`
	CGSTRate      float64 `json:"cgst_rate"`
	CGSTAmount    float64 `json:"cgst_amount"`
	SGSTRate      float64 `json:"sgst_rate"`
	SGSTAmount    float64 `json:"sgst_amount"`
	IGSTRate      float64 `json:"igst_rate"`
	IGSTAmount    float64 `json:"igst_amount"`
}

// SalesInvoice is a sales transaction record supplied by the external store.
// TaxableAmount is the pre-tax total; GrandTotal includes GST.
type SalesInvoice struct {
	InvoiceNo     string        `json:"invoice_no"`
	InvoiceDate   string        `json:"invoice_date"`
	CustomerName  string        `json:"customer_name"`
	CustomerGSTIN string        `json:"customer_gstin"`
	PlaceOfSupply string        `json:"place_of_supply"`
	TaxableAmount float64       `json:"taxable_amount"`
	CGSTAmount    float64       `json:"cgst_amount"`
	SGSTAmount    float64       `json:"sgst_amount"`
	IGSTAmount    float64       `json:"igst_amount"`
	GrandTotal    float64       `json:"grand_total"`
	Items         []InvoiceItem `json:"items"`
}

// PurchaseInvoice is a purchase transaction record used for input tax credit.
type PurchaseInvoice struct {
	InvoiceNo     string  `json:"invoice_no"`
	InvoiceDate   string  `json:"invoice_date"`
	SupplierName  string  `json:"supplier_name"`
	SupplierGSTIN string  `json:"supplier_gstin"`
	TaxableAmount float64 `json:"taxable_amount"`
	CGSTAmount    float64 `json:"cgst_amount"`
	SGSTAmount    float64 `json:"sgst_amount"`
	IGSTAmount    float64 `json:"igst_amount"`
	GrandTotal    float64 `json:"grand_total"`
}

// VendorPayment is a non-salary payment on which TDS was deducted.
type VendorPayment struct {
	VendorName    string     `json:"vendor_name"`
	VendorPAN     string     `json:"vendor_pan"`
	VendorAddress string     `json:"vendor_address"`
	Section       TDSSection `json:"tds_section"`
	Amount        float64    `json:"amount"`
	TDSAmount     float64    `json:"tds_amount"`
	TDSRate       float64    `json:"tds_rate"`
	PaymentDate   time.Time  `json:"payment_date"`
	ChallanNo     string     `json:"challan_no"`
	ChallanDate   string     `json:"challan_date"`
	BSRCode       string     `json:"bsr_code"`
	FinancialYear string     `json:"financial_year"`
}

// SalaryPayment is an employee's salary record with TDS deducted under 192.
type SalaryPayment struct {
	EmployeeName string  `json:"employee_name"`
	EmployeePAN  string  `json:"employee_pan"`
	GrossSalary  float64 `json:"gross_salary"`
	TDSAmount    float64 `json:"tds_amount"`
}

// Party identifies one side of a goods movement for the e-Way Bill.
type Party struct {
	Name    string `json:"name"`
	GSTIN   string `json:"gstin"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// Deductor is the TAN-holding entity issuing TDS returns and certificates.
type Deductor struct {
	Name                   string `json:"name"`
	Address                string `json:"address"`
	City                   string `json:"city"`
	State                  string `json:"state"`
	Pincode                string `json:"pincode"`
	PAN                    string `json:"pan"`
	TAN                    string `json:"tan"`
	ResponsiblePerson      string `json:"responsible_person_name"`
	ResponsibleDesignation string `json:"responsible_person_designation"`
}
