package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"bahikhata/internal/service"
)

func setupReturnsRouter() *gin.Engine {
	RegisterBindings()
	r := gin.New()
	h := NewReturnsHandler(service.NewReturnService())
	r.POST("/returns/gstr1", h.GSTR1)
	r.POST("/returns/gstr3b", h.GSTR3B)
	r.POST("/returns/form26q", h.Form26Q)
	r.POST("/returns/form24q", h.Form24Q)
	r.POST("/returns/ewaybill", h.EWayBill)
	r.POST("/returns/certificate", h.Certificate)
	return r
}

func TestGSTR1Handler(t *testing.T) {
	r := setupReturnsRouter()
	body := `{
		"gstin": "27AAAAA0000A1Z5",
		"period": {"month": 1, "year": 2024},
		"sales": [
			{"invoice_no": "INV-001", "invoice_date": "2024-01-10", "customer_gstin": "29BBBBB1111B1Z4", "place_of_supply": "Karnataka", "grand_total": 11800},
			{"invoice_no": "INV-002", "invoice_date": "2024-01-12", "place_of_supply": "Maharashtra", "grand_total": 5000}
		]
	}`

	w, resp := doRequest(t, r, http.MethodPost, "/returns/gstr1", body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "012024", data["ret_period"])
	assert.Len(t, data["b2b"], 1)
	assert.Len(t, data["b2cs"], 1)
}

func TestGSTR1HandlerRejectsBadGSTIN(t *testing.T) {
	r := setupReturnsRouter()
	body := `{"gstin": "bogus", "period": {"month": 1, "year": 2024}}`

	w, resp := doRequest(t, r, http.MethodPost, "/returns/gstr1", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", resp.Error.Code)
}

func TestGSTR1HandlerXLSXFormat(t *testing.T) {
	r := setupReturnsRouter()
	body := `{
		"gstin": "27AAAAA0000A1Z5",
		"period": {"month": 1, "year": 2024},
		"sales": [{"invoice_no": "INV-001", "customer_gstin": "29BBBBB1111B1Z4", "place_of_supply": "Karnataka", "grand_total": 11800, "items": [{"gst_rate": 18, "taxable_amount": 10000, "igst_amount": 1800}]}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/returns/gstr1?format=xlsx", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "gstr1-012024.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	assert.NoError(t, err)
	defer func() { _ = f.Close() }()
	cell, err := f.GetCellValue("B2B", "B2")
	assert.NoError(t, err)
	assert.Equal(t, "INV-001", cell)
}

func TestGSTR3BHandler(t *testing.T) {
	r := setupReturnsRouter()
	body := `{
		"gstin": "27AAAAA0000A1Z5",
		"period": {"month": 2, "year": 2024},
		"sales": [{"invoice_no": "S1", "taxable_amount": 1000, "cgst_amount": 90, "sgst_amount": 90}],
		"purchases": [{"invoice_no": "P1", "igst_amount": 36}]
	}`

	w, resp := doRequest(t, r, http.MethodPost, "/returns/gstr3b", body)

	assert.Equal(t, http.StatusOK, w.Code)
	data := resp.Data.(map[string]interface{})
	secSum := data["sec_sum"].(map[string]interface{})
	assert.Equal(t, 1000.0, secSum["ttl_val"])
}

func TestForm26QHandler(t *testing.T) {
	r := setupReturnsRouter()
	body := `{
		"quarter": "Q1",
		"financial_year": "2024-25",
		"deductor": {"name": "Acme", "pan": "AAACA1234A", "tan": "PNEA12345B"},
		"payments": [{"vendor_name": "Alpha", "vendor_pan": "AAAPA0000A", "tds_section": "194C", "amount": 50000, "tds_amount": 500, "payment_date": "2024-05-15T00:00:00Z", "financial_year": "2024-25"}]
	}`

	w, resp := doRequest(t, r, http.MethodPost, "/returns/form26q", body)

	assert.Equal(t, http.StatusOK, w.Code)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "26Q", data["form_type"])
	assert.Equal(t, "2025-26", data["assessment_year"])
	assert.Len(t, data["deductee_details"], 1)
}

func TestForm26QHandlerCSVFormat(t *testing.T) {
	r := setupReturnsRouter()
	body := `{
		"quarter": "Q1",
		"financial_year": "2024-25",
		"deductor": {"name": "Acme", "tan": "PNEA12345B"},
		"payments": [{"vendor_name": "Alpha", "vendor_pan": "AAAPA0000A", "tds_section": "194C", "amount": 50000, "tds_amount": 500, "payment_date": "2024-05-15T00:00:00Z"}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/returns/form26q?format=csv", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Body.String(), "AAAPA0000A")
}

func TestForm26QHandlerInvalidQuarter(t *testing.T) {
	r := setupReturnsRouter()
	body := `{"quarter": "Q7", "financial_year": "2024-25"}`

	w, resp := doRequest(t, r, http.MethodPost, "/returns/form26q", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_QUARTER", resp.Error.Code)
}

func TestForm24QHandler(t *testing.T) {
	r := setupReturnsRouter()
	body := `{
		"quarter": "Q2",
		"financial_year": "2023-24",
		"deductor": {"name": "Acme", "tan": "PNEA12345B"},
		"salaries": [{"employee_name": "A Singh", "employee_pan": "AAAPA0000A", "gross_salary": 120000, "tds_amount": 10000}]
	}`

	w, resp := doRequest(t, r, http.MethodPost, "/returns/form24q", body)

	assert.Equal(t, http.StatusOK, w.Code)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "24Q", data["form_type"])
	summary := data["summary"].(map[string]interface{})
	assert.Equal(t, 1.0, summary["total_employees"])
}

func TestEWayBillHandler(t *testing.T) {
	r := setupReturnsRouter()
	body := `{
		"invoice": {"invoice_no": "INV-042", "grand_total": 118000},
		"supplier": {"name": "Acme", "gstin": "27AAAAA0000A1Z5", "state": "Maharashtra"},
		"recipient": {"name": "Gamma", "state": "Karnataka"}
	}`

	w, resp := doRequest(t, r, http.MethodPost, "/returns/ewaybill", body)

	assert.Equal(t, http.StatusOK, w.Code)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "INV-042", data["docNo"])
	assert.Equal(t, "URP", data["toGstin"])
	assert.Equal(t, "29", data["toStateCode"])
}

func TestCertificateHandler(t *testing.T) {
	r := setupReturnsRouter()
	body := `{
		"payment": {"vendor_name": "Alpha", "vendor_pan": "AAAPA0000A", "tds_section": "194J", "amount": 100000, "tds_amount": 10000, "payment_date": "2023-08-21T00:00:00Z", "financial_year": "2023-24"},
		"deductor": {"name": "Acme", "pan": "AAACA1234A", "tan": "PNEA12345B"}
	}`

	w, resp := doRequest(t, r, http.MethodPost, "/returns/certificate", body)

	assert.Equal(t, http.StatusOK, w.Code)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "16A", data["certificate_type"])
	assert.Equal(t, "2024-25", data["assessment_year"])
	assert.NotEmpty(t, data["unique_transaction_no"])
}

func TestCertificateHandlerBadFinancialYear(t *testing.T) {
	r := setupReturnsRouter()
	body := `{
		"payment": {"vendor_name": "Alpha", "financial_year": "nope"},
		"deductor": {"name": "Acme"}
	}`

	w, resp := doRequest(t, r, http.MethodPost, "/returns/certificate", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_FINANCIAL_YEAR", resp.Error.Code)
}
