package domain

// Return documents mirror the field tags of the government filing schemas.
// Composers build them once per period; they are never mutated afterwards.

// GSTR1ItemDetail carries the per-line tax breakup inside a GSTR-1 invoice.
type GSTR1ItemDetail struct {
	Rate         float64 `json:"rt"`
	TaxableValue float64 `json:"txval"`
	IGST         float64 `json:"iamt"`
	CGST         float64 `json:"camt"`
	SGST         float64 `json:"samt"`
	Cess         float64 `json:"csamt"`
}

// GSTR1Item is one numbered line of a GSTR-1 invoice entry.
type GSTR1Item struct {
	Num    int             `json:"num"`
	Detail GSTR1ItemDetail `json:"itm_det"`
}

// GSTR1Invoice is one invoice entry in a GSTR-1 bucket.
type GSTR1Invoice struct {
	CTIN          string      `json:"ctin,omitempty"`
	InvoiceNo     string      `json:"inum"`
	InvoiceDate   string      `json:"idt"`
	Value         float64     `json:"val"`
	PlaceOfSupply string      `json:"pos"`
	ReverseCharge string      `json:"rchrg"`
	InvoiceType   string      `json:"inv_typ"`
	Items         []GSTR1Item `json:"itms"`
}

// GSTR1Document is the periodic sales return. Buckets not produced by the
// engine are emitted as empty arrays so the schema stays fixed.
type GSTR1Document struct {
	GSTIN     string         `json:"gstin"`
	RetPeriod string         `json:"ret_period"`
	B2B       []GSTR1Invoice `json:"b2b"`
	B2CL      []GSTR1Invoice `json:"b2cl"`
	B2CS      []GSTR1Invoice `json:"b2cs"`
	CDNR      []GSTR1Invoice `json:"cdnr"`
	CDNUR     []GSTR1Invoice `json:"cdnur"`
	Exports   []GSTR1Invoice `json:"exp"`
	Advance   []GSTR1Invoice `json:"at"`
	AdvAdj    []GSTR1Invoice `json:"atadj"`
	Exempt    []GSTR1Invoice `json:"exemp"`
	ITCRev    []GSTR1Invoice `json:"itcr"`
	ISD       []GSTR1Invoice `json:"isd"`
}

// GSTR3BSectionSummary holds outward supply totals for GSTR-3B.
type GSTR3BSectionSummary struct {
	TotalValue float64 `json:"ttl_val"`
	TotalIGST  float64 `json:"ttl_igst"`
	TotalCGST  float64 `json:"ttl_cgst"`
	TotalSGST  float64 `json:"ttl_sgst"`
	TotalCess  float64 `json:"ttl_cess"`
}

// ITCEntry is one eligible input tax credit row.
type ITCEntry struct {
	Type string  `json:"ty"`
	IGST float64 `json:"iamt"`
	CGST float64 `json:"camt"`
	SGST float64 `json:"samt"`
	Cess float64 `json:"csamt"`
}

// ITCEligibility groups the available input tax credit rows.
type ITCEligibility struct {
	Available []ITCEntry `json:"itc_avl"`
}

// InterestDetails holds interest payable under sections 3.1 and 3.2.
type InterestDetails struct {
	Sec31 float64 `json:"sec_3_1"`
	Sec32 float64 `json:"sec_3_2"`
}

// InterestLateFee wraps the interest detail block of GSTR-3B.
type InterestLateFee struct {
	Details InterestDetails `json:"intr_details"`
}

// GSTR3BDocument is the monthly summary return.
type GSTR3BDocument struct {
	GSTIN     string               `json:"gstin"`
	RetPeriod string               `json:"ret_period"`
	SecSum    GSTR3BSectionSummary `json:"sec_sum"`
	ITC       ITCEligibility       `json:"itc_elg"`
	Interest  InterestLateFee      `json:"intr_ltfee"`
}

// DeductorDetails is the deductor identity block of a quarterly TDS return.
type DeductorDetails struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// DeducteePayment is one payment row inside a deductee group.
type DeducteePayment struct {
	Section   TDSSection `json:"section"`
	Amount    float64    `json:"amount"`
	TDSAmount float64    `json:"tds_amount"`
	Date      string     `json:"date"`
	ChallanNo string     `json:"challan_no"`
}

// DeducteeGroup aggregates all payments to one deductee in the quarter.
// The sentinel PAN "NOPAN" groups payments with no identifier.
type DeducteeGroup struct {
	PAN      string            `json:"pan"`
	Name     string            `json:"name"`
	TotalTDS float64           `json:"total_tds"`
	Payments []DeducteePayment `json:"payments"`
}

// ChallanDetail is a tax deposit challan row.
type ChallanDetail struct {
	ChallanNo   string  `json:"challan_no"`
	ChallanDate string  `json:"challan_date"`
	BSRCode     string  `json:"bsr_code"`
	Amount      float64 `json:"amount"`
}

// Form26QSummary totals the non-salary quarterly return.
type Form26QSummary struct {
	TotalDeductees int     `json:"total_deductees"`
	TotalTDS       float64 `json:"total_tds"`
	TotalChallan   float64 `json:"total_challan"`
}

// Form26QDocument is the quarterly non-salary TDS return.
type Form26QDocument struct {
	FormType       string          `json:"form_type"`
	Quarter        Quarter         `json:"quarter"`
	FinancialYear  string          `json:"financial_year"`
	AssessmentYear string          `json:"assessment_year"`
	PAN            string          `json:"pan"`
	TAN            string          `json:"tan"`
	Deductor       DeductorDetails `json:"deductor_details"`
	Challans       []ChallanDetail `json:"challan_details"`
	Deductees      []DeducteeGroup `json:"deductee_details"`
	Summary        Form26QSummary  `json:"summary"`
}

// EmployeeDetail is one employee row of Form 24Q.
type EmployeeDetail struct {
	PAN         string     `json:"pan"`
	Name        string     `json:"name"`
	GrossSalary float64    `json:"gross_salary"`
	TDSAmount   float64    `json:"tds_amount"`
	Section     TDSSection `json:"section"`
}

// Form24QSummary totals the salary quarterly return.
type Form24QSummary struct {
	TotalEmployees int     `json:"total_employees"`
	TotalTDS       float64 `json:"total_tds"`
	TotalSalary    float64 `json:"total_salary"`
}

// Form24QDocument is the quarterly salary TDS return.
type Form24QDocument struct {
	FormType       string           `json:"form_type"`
	Quarter        Quarter          `json:"quarter"`
	FinancialYear  string           `json:"financial_year"`
	AssessmentYear string           `json:"assessment_year"`
	PAN            string           `json:"pan"`
	TAN            string           `json:"tan"`
	Deductor       DeductorDetails  `json:"deductor_details"`
	Employees      []EmployeeDetail `json:"employee_details"`
	Summary        Form24QSummary   `json:"summary"`
}

// EWayBillItem is one line of the e-Way Bill item list.
type EWayBillItem struct {
	ProductName   string  `json:"productName"`
	ProductDesc   string  `json:"productDesc"`
	HSNCode       string  `json:"hsnCode"`
	Quantity      float64 `json:"quantity"`
	QtyUnit       string  `json:"qtyUnit"`
	TaxableAmount float64 `json:"taxableAmount"`
	SGSTRate      float64 `json:"sgstRate"`
	CGSTRate      float64 `json:"cgstRate"`
	IGSTRate      float64 `json:"igstRate"`
	CessRate      float64 `json:"cessRate"`
}

// EWayBillDocument is the transport document for goods movement. Transport
// fields are placeholders filled in by the transporter before dispatch.
type EWayBillDocument struct {
	SupplyType      string         `json:"supplyType"`
	SubSupplyType   string         `json:"subSupplyType"`
	DocType         string         `json:"docType"`
	DocNo           string         `json:"docNo"`
	DocDate         string         `json:"docDate"`
	GSTIN           string         `json:"gstin"`
	FromGSTIN       string         `json:"fromGstin"`
	FromTradeName   string         `json:"fromTrdName"`
	FromAddress     string         `json:"fromAddr1"`
	FromPlace       string         `json:"fromPlace"`
	FromPincode     string         `json:"fromPincode"`
	FromStateCode   string         `json:"fromStateCode"`
	ToGSTIN         string         `json:"toGstin"`
	ToTradeName     string         `json:"toTrdName"`
	ToAddress       string         `json:"toAddr1"`
	ToPlace         string         `json:"toPlace"`
	ToPincode       string         `json:"toPincode"`
	ToStateCode     string         `json:"toStateCode"`
	TotalValue      float64        `json:"totalValue"`
	CGSTValue       float64        `json:"cgstValue"`
	SGSTValue       float64        `json:"sgstValue"`
	IGSTValue       float64        `json:"igstValue"`
	CessValue       float64        `json:"cessValue"`
	TotalInvValue   float64        `json:"totInvValue"`
	TransMode       string         `json:"transMode"`
	TransDistance   string         `json:"transDistance"`
	TransporterName string         `json:"transporterName"`
	TransporterID   string         `json:"transporterId"`
	TransDocNo      string         `json:"transDocNo"`
	TransDocDate    string         `json:"transDocDate"`
	VehicleNo       string         `json:"vehicleNo"`
	VehicleType     string         `json:"vehicleType"`
	Items           []EWayBillItem `json:"itemList"`
}

// CertificateParty is a party block of a TDS certificate.
type CertificateParty struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	PAN     string `json:"pan"`
	TAN     string `json:"tan,omitempty"`
}

// CertificatePayment is the payment block of a TDS certificate.
type CertificatePayment struct {
	Amount      float64    `json:"amount"`
	TDSAmount   float64    `json:"tds_amount"`
	TDSRate     float64    `json:"tds_rate"`
	Section     TDSSection `json:"section"`
	Date        string     `json:"date"`
	ChallanNo   string     `json:"challan_no"`
	ChallanDate string     `json:"challan_date"`
	BSRCode     string     `json:"bsr_code"`
}

// ResponsiblePerson identifies who signs the certificate.
type ResponsiblePerson struct {
	Name        string `json:"name"`
	Designation string `json:"designation"`
}

// Form16ADocument is the TDS certificate issued to a deductee.
type Form16ADocument struct {
	CertificateType   string             `json:"certificate_type"`
	ReferenceNo       string             `json:"unique_transaction_no"`
	AssessmentYear    string             `json:"assessment_year"`
	Deductor          CertificateParty   `json:"deductor_details"`
	Deductee          CertificateParty   `json:"deductee_details"`
	Payment           CertificatePayment `json:"payment_details"`
	DateOfGeneration  string             `json:"date_of_generation"`
	ResponsiblePerson ResponsiblePerson  `json:"responsible_person"`
}
