package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/rentledger/rentledger_backend/internal/core/ports/services"
	"github.com/rentledger/rentledger_backend/internal/middleware"
)

// reportingHandler handles HTTP requests for the dashboard reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/monthly", h.monthlyReport)
		reports.GET("/yearly", h.yearlyReport)
	}
}

func (h *reportingHandler) monthlyReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	month, year, ok := parsePeriodQuery(c)
	if !ok {
		return
	}

	report, err := h.reportingService.MonthlyReport(c.Request.Context(), month, year)
	if err != nil {
		logger.Error("Failed to build monthly report", slog.Int("month", month), slog.Int("year", year), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build monthly report"})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *reportingHandler) yearlyReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1900 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be a four-digit year"})
		return
	}

	report, err := h.reportingService.YearlyReport(c.Request.Context(), year)
	if err != nil {
		logger.Error("Failed to build yearly report", slog.Int("year", year), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build yearly report"})
		return
	}

	c.JSON(http.StatusOK, report)
}
