package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"bahikhata/internal/domain"
	"bahikhata/internal/export"
	"bahikhata/internal/port"
	"bahikhata/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReturnsHandler exposes the statutory return composers. The caller (the
// record store or a UI acting on its behalf) posts the period's transaction
// batch and receives the composed document; nothing is persisted here.
type ReturnsHandler struct {
	returnService service.ReturnService
}

// NewReturnsHandler creates a new ReturnsHandler.
func NewReturnsHandler(returnService service.ReturnService) *ReturnsHandler {
	return &ReturnsHandler{returnService: returnService}
}

// GSTR1Request carries a filing period and its sales invoices.
type GSTR1Request struct {
	GSTIN  string                `json:"gstin" binding:"required,gstin"`
	Period domain.Period         `json:"period" binding:"required"`
	Sales  []domain.SalesInvoice `json:"sales"`
}

// GSTR3BRequest carries a filing period with sales and purchase invoices.
type GSTR3BRequest struct {
	GSTIN     string                   `json:"gstin" binding:"required,gstin"`
	Period    domain.Period            `json:"period" binding:"required"`
	Sales     []domain.SalesInvoice    `json:"sales"`
	Purchases []domain.PurchaseInvoice `json:"purchases"`
}

// Form26QRequest carries a quarter's vendor payments and the deductor identity.
type Form26QRequest struct {
	Quarter       domain.Quarter         `json:"quarter" binding:"required"`
	FinancialYear string                 `json:"financial_year" binding:"required"`
	Deductor      domain.Deductor        `json:"deductor"`
	Payments      []domain.VendorPayment `json:"payments"`
}

// Form24QRequest carries a quarter's salary payments and the deductor identity.
type Form24QRequest struct {
	Quarter       domain.Quarter         `json:"quarter" binding:"required"`
	FinancialYear string                 `json:"financial_year" binding:"required"`
	Deductor      domain.Deductor        `json:"deductor"`
	Salaries      []domain.SalaryPayment `json:"salaries"`
}

// EWayBillRequest carries one invoice and both movement parties.
type EWayBillRequest struct {
	Invoice   domain.SalesInvoice `json:"invoice" binding:"required"`
	Supplier  domain.Party        `json:"supplier" binding:"required"`
	Recipient domain.Party        `json:"recipient" binding:"required"`
}

// CertificateRequest carries one withheld payment and the deductor identity.
type CertificateRequest struct {
	Payment  domain.VendorPayment `json:"payment" binding:"required"`
	Deductor domain.Deductor      `json:"deductor" binding:"required"`
}

// GSTR1 handles POST /api/v1/returns/gstr1
// @Summary      Compose a GSTR-1 periodic sales return
// @Description  Buckets the posted sales invoices into b2b/b2cl/b2cs; format=xlsx streams a workbook instead of JSON
// @Tags         returns
// @Accept       json
// @Produce      json
// @Param        format query string false "Response format" Enums(json, xlsx)
// @Param        request body GSTR1Request true "Filing period and sales invoices"
// @Success      200 {object} APIResponse{data=domain.GSTR1Document}
// @Failure      400 {object} APIResponse
// @Router       /returns/gstr1 [post]
func (h *ReturnsHandler) GSTR1(c *gin.Context) {
	var req GSTR1Request
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	src := &port.SliceSource{Sales: req.Sales}
	doc, err := h.returnService.GenerateGSTR1(c.Request.Context(), src, req.GSTIN, req.Period)
	if err != nil {
		HandleError(c, err)
		return
	}

	if c.Query("format") == "xlsx" {
		f, err := export.GSTR1Workbook(&doc)
		if err != nil {
			HandleError(c, err)
			return
		}
		streamWorkbook(c, f, fmt.Sprintf("gstr1-%s.xlsx", doc.RetPeriod))
		return
	}

	RespondOK(c, doc)
}

// GSTR3B handles POST /api/v1/returns/gstr3b
// @Summary      Compose a GSTR-3B summary return
// @Tags         returns
// @Accept       json
// @Produce      json
// @Param        request body GSTR3BRequest true "Filing period with sales and purchase invoices"
// @Success      200 {object} APIResponse{data=domain.GSTR3BDocument}
// @Failure      400 {object} APIResponse
// @Router       /returns/gstr3b [post]
func (h *ReturnsHandler) GSTR3B(c *gin.Context) {
	var req GSTR3BRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	src := &port.SliceSource{Sales: req.Sales, Purchases: req.Purchases}
	doc, err := h.returnService.GenerateGSTR3B(c.Request.Context(), src, req.GSTIN, req.Period)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, doc)
}

// Form26Q handles POST /api/v1/returns/form26q
// @Summary      Compose a Form 26Q quarterly TDS return
// @Description  Filters payments to the quarter, groups by vendor PAN; format=xlsx or format=csv streams an export instead of JSON
// @Tags         returns
// @Accept       json
// @Produce      json
// @Param        format query string false "Response format" Enums(json, xlsx, csv)
// @Param        request body Form26QRequest true "Quarter, financial year, deductor and payments"
// @Success      200 {object} APIResponse{data=domain.Form26QDocument}
// @Failure      400 {object} APIResponse
// @Router       /returns/form26q [post]
func (h *ReturnsHandler) Form26Q(c *gin.Context) {
	var req Form26QRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	src := &port.SliceSource{Vendor: req.Payments}
	doc, err := h.returnService.GenerateForm26Q(c.Request.Context(), src, req.Quarter, req.FinancialYear, req.Deductor)
	if err != nil {
		HandleError(c, err)
		return
	}

	switch c.Query("format") {
	case "xlsx":
		f, err := export.Form26QWorkbook(&doc)
		if err != nil {
			HandleError(c, err)
			return
		}
		streamWorkbook(c, f, fmt.Sprintf("form26q-%s-%s.xlsx", doc.FinancialYear, doc.Quarter))
	case "csv":
		var buf bytes.Buffer
		if err := export.Form26QCSV(&buf, &doc); err != nil {
			HandleError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=form26q-%s-%s.csv", doc.FinancialYear, doc.Quarter))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
	default:
		RespondOK(c, doc)
	}
}

// Form24Q handles POST /api/v1/returns/form24q
// @Summary      Compose a Form 24Q quarterly salary TDS return
// @Tags         returns
// @Accept       json
// @Produce      json
// @Param        request body Form24QRequest true "Quarter, financial year, deductor and salary records"
// @Success      200 {object} APIResponse{data=domain.Form24QDocument}
// @Failure      400 {object} APIResponse
// @Router       /returns/form24q [post]
func (h *ReturnsHandler) Form24Q(c *gin.Context) {
	var req Form24QRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	src := &port.SliceSource{Salaries: req.Salaries}
	doc, err := h.returnService.GenerateForm24Q(c.Request.Context(), src, req.Quarter, req.FinancialYear, req.Deductor)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, doc)
}

// EWayBill handles POST /api/v1/returns/ewaybill
// @Summary      Compose an e-Way Bill transport document
// @Tags         returns
// @Accept       json
// @Produce      json
// @Param        request body EWayBillRequest true "Invoice and movement parties"
// @Success      200 {object} APIResponse{data=domain.EWayBillDocument}
// @Failure      400 {object} APIResponse
// @Router       /returns/ewaybill [post]
func (h *ReturnsHandler) EWayBill(c *gin.Context) {
	var req EWayBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	doc := h.returnService.ComposeEWayBill(req.Invoice, req.Supplier, req.Recipient)
	RespondOK(c, doc)
}

// Certificate handles POST /api/v1/returns/certificate
// @Summary      Compose a Form 16A TDS certificate
// @Tags         returns
// @Accept       json
// @Produce      json
// @Param        request body CertificateRequest true "Withheld payment and deductor identity"
// @Success      200 {object} APIResponse{data=domain.Form16ADocument}
// @Failure      400 {object} APIResponse
// @Router       /returns/certificate [post]
func (h *ReturnsHandler) Certificate(c *gin.Context) {
	var req CertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	doc, err := h.returnService.ComposeCertificate(req.Payment, req.Deductor)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, doc)
}

func streamWorkbook(c *gin.Context, f *excelize.File, filename string) {
	defer func() { _ = f.Close() }()
	buf, err := f.WriteToBuffer()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "EXPORT_FAILED", err.Error())
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
