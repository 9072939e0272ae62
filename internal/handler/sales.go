package handler

import (
	"fmt"
	"net/http"

	"tallypos/internal/apierror"
	"tallypos/internal/dto"
	"tallypos/internal/infra"
	"tallypos/internal/middleware"
	"tallypos/internal/service"

	"github.com/gin-gonic/gin"
)

type SalesHandler struct {
	svc        service.SaleService
	receiptDir string
}

func NewSalesHandler(svc service.SaleService, receiptDir string) *SalesHandler {
	return &SalesHandler{svc: svc, receiptDir: receiptDir}
}

// Create POST /api/sales
// The acting user comes from the resolved identity, never from the body.
func (h *SalesHandler) Create(c *gin.Context) {
	var req dto.CreateSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	id := middleware.GetIdentity(c)
	saleID, err := h.svc.Create(c.Request.Context(), id.UserID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MessageID{Message: "Sale has been created.", ID: saleID})
}

// List GET /api/sales
func (h *SalesHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get GET /api/sales/:id
func (h *SalesHandler) Get(c *gin.Context) {
	saleID, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), saleID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update PATCH /api/sales/:id — customer reassignment only.
func (h *SalesHandler) Update(c *gin.Context) {
	saleID, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Update(c.Request.Context(), saleID, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apierror.New("Sale has been updated."))
}

// Delete DELETE /api/sales/:id — cascades over details and their logs.
func (h *SalesHandler) Delete(c *gin.Context) {
	saleID, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), saleID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apierror.New("Sale has been deleted."))
}

// Receipt GET /api/sales/:id/receipt — renders a PDF receipt on demand.
func (h *SalesHandler) Receipt(c *gin.Context) {
	saleID, ok := pathID(c)
	if !ok {
		return
	}
	sale, err := h.svc.Find(c.Request.Context(), saleID)
	if err != nil {
		respondError(c, err)
		return
	}
	path, err := infra.GenerateReceiptPDF(sale, h.receiptDir)
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(path, fmt.Sprintf("receipt_%d.pdf", sale.ID))
}
