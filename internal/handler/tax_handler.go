package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bahikhata/internal/domain"
	"bahikhata/internal/service"
)

// TaxHandler exposes the per-transaction tax computations.
type TaxHandler struct {
	taxService service.TaxService
}

// NewTaxHandler creates a new TaxHandler.
func NewTaxHandler(taxService service.TaxService) *TaxHandler {
	return &TaxHandler{taxService: taxService}
}

// GSTRequest is the payload for a GST computation.
type GSTRequest struct {
	Amount        float64 `json:"amount" binding:"min=0"`
	GSTRate       float64 `json:"gst_rate"`
	SupplierState string  `json:"supplier_state" binding:"required"`
	PlaceOfSupply string  `json:"place_of_supply" binding:"required"`
}

// GSTINRequest is the payload for a GSTIN validation.
type GSTINRequest struct {
	GSTIN string `json:"gstin"`
}

// GSTINResult reports the outcome of a GSTIN validation.
type GSTINResult struct {
	Valid     bool   `json:"valid"`
	StateCode string `json:"state_code,omitempty"`
}

// TDSRequest is the payload for a TDS computation.
type TDSRequest struct {
	Amount       float64              `json:"amount" binding:"min=0"`
	Section      domain.TDSSection    `json:"section" binding:"required"`
	PANAvailable bool                 `json:"pan_available"`
	PayeeType    domain.PayeeCategory `json:"payee_type"`
}

// TCSRequest is the payload for a TCS computation.
type TCSRequest struct {
	Amount  float64           `json:"amount" binding:"min=0"`
	Section domain.TCSSection `json:"section" binding:"required"`
}

// RateCard bundles the TDS and TCS rate cards.
type RateCard struct {
	TDS []domain.RateCardEntry    `json:"tds"`
	TCS []domain.TCSRateCardEntry `json:"tcs"`
}

// ComputeGST handles POST /api/v1/tax/gst
// @Summary      Compute GST split
// @Description  Splits a taxable amount into CGST/SGST or IGST based on supplier state and place of supply
// @Tags         tax
// @Accept       json
// @Produce      json
// @Param        request body GSTRequest true "Taxable amount, slab rate and jurisdictions"
// @Success      200 {object} APIResponse{data=domain.TaxSplit}
// @Failure      400 {object} APIResponse
// @Router       /tax/gst [post]
func (h *TaxHandler) ComputeGST(c *gin.Context) {
	var req GSTRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	split, err := h.taxService.ComputeGST(req.Amount, domain.TaxSlab(req.GSTRate), req.SupplierState, req.PlaceOfSupply)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, split)
}

// ValidateGSTIN handles POST /api/v1/tax/gstin/validate
// @Summary      Validate a GSTIN
// @Description  Structural check plus verification of the embedded state code; the checksum digit is not verified
// @Tags         tax
// @Accept       json
// @Produce      json
// @Param        request body GSTINRequest true "GSTIN to validate"
// @Success      200 {object} APIResponse{data=GSTINResult}
// @Failure      400 {object} APIResponse
// @Router       /tax/gstin/validate [post]
func (h *TaxHandler) ValidateGSTIN(c *gin.Context) {
	var req GSTINRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	code, err := h.taxService.ValidateGSTIN(req.GSTIN)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, GSTINResult{Valid: true, StateCode: code})
}

// ComputeTDS handles POST /api/v1/tax/tds
// @Summary      Compute TDS on a payment
// @Description  Decides applicability against the section threshold and computes the withheld amount; below-threshold payments return a non-applicable result, not an error
// @Tags         tax
// @Accept       json
// @Produce      json
// @Param        request body TDSRequest true "Payment amount, section, PAN availability and payee category"
// @Success      200 {object} APIResponse{data=domain.WithholdingResult}
// @Failure      400 {object} APIResponse
// @Router       /tax/tds [post]
func (h *TaxHandler) ComputeTDS(c *gin.Context) {
	var req TDSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.taxService.ComputeTDS(req.Amount, req.Section, req.PANAvailable, req.PayeeType)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// ComputeTCS handles POST /api/v1/tax/tcs
// @Summary      Compute TCS on a sale
// @Tags         tax
// @Accept       json
// @Produce      json
// @Param        request body TCSRequest true "Sale amount and section"
// @Success      200 {object} APIResponse{data=domain.CollectionResult}
// @Failure      400 {object} APIResponse
// @Router       /tax/tcs [post]
func (h *TaxHandler) ComputeTCS(c *gin.Context) {
	var req TCSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.taxService.ComputeTCS(req.Amount, req.Section)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// GetRateCard handles GET /api/v1/tax/ratecard
// @Summary      TDS/TCS rate card
// @Tags         tax
// @Produce      json
// @Success      200 {object} APIResponse{data=RateCard}
// @Router       /tax/ratecard [get]
func (h *TaxHandler) GetRateCard(c *gin.Context) {
	tds, tcs := h.taxService.RateCard()
	RespondOK(c, RateCard{TDS: tds, TCS: tcs})
}
