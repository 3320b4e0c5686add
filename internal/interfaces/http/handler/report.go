package handler

import (
	"github.com/gin-gonic/gin"

	ledgerapp "github.com/quiniela/backend/internal/application/ledger"
)

// ReportHandler handles read-only report API endpoints
type ReportHandler struct {
	BaseHandler
	reportService *ledgerapp.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *ledgerapp.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/ledger/reports")
	reports.GET("/balances", h.ClientBalances)
}

// ClientBalances returns every client's outstanding balance
func (h *ReportHandler) ClientBalances(c *gin.Context) {
	balances, err := h.reportService.ClientBalances(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, balances)
}
