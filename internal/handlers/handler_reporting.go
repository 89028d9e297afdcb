package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/Dev-Icaro/MyCashAPI-sub000/internal/core/ports/services"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/dto"
	"github.com/Dev-Icaro/MyCashAPI-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to ledger health reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// RegisterReportingRoutes registers routes related to reports
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	rg.GET("/accounts/:id/reconciliation", h.getReconciliation)
}

// getReconciliation compares the stored balance of an account with its opening balance
// plus transaction history.
func (h *reportingHandler) getReconciliation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	rec, err := h.reportingService.ReconcileAccount(c.Request.Context(), accountID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to reconcile account")
		return
	}

	logger.Info("Account reconciled",
		slog.String("account_id", accountID),
		slog.Bool("is_balanced", rec.IsBalanced))
	c.JSON(http.StatusOK, dto.ToReconciliationResponse(rec))
}
