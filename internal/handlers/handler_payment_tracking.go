package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rentledger/rentledger_backend/internal/apperrors"
	portssvc "github.com/rentledger/rentledger_backend/internal/core/ports/services"
	"github.com/rentledger/rentledger_backend/internal/dto"
	"github.com/rentledger/rentledger_backend/internal/middleware"
)

// paymentTrackingHandler handles HTTP requests for per-period payment state.
type paymentTrackingHandler struct {
	paymentService portssvc.PaymentTrackingSvcFacade
}

func newPaymentTrackingHandler(ps portssvc.PaymentTrackingSvcFacade) *paymentTrackingHandler {
	return &paymentTrackingHandler{paymentService: ps}
}

// registerPaymentTrackingRoutes registers routes related to payment tracking.
func registerPaymentTrackingRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentTrackingSvcFacade) {
	h := newPaymentTrackingHandler(paymentService)

	payments := rg.Group("/payment-tracking")
	{
		payments.POST("", h.setPayment)
		payments.GET("", h.listPaymentsForPeriod)
		payments.POST("/mark-all", h.markAllForPeriod)
	}
}

// parsePeriodQuery reads the ?month= and ?year= query parameters.
func parsePeriodQuery(c *gin.Context) (month, year int, ok bool) {
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be between 1 and 12"})
		return 0, 0, false
	}
	year, err = strconv.Atoi(c.Query("year"))
	if err != nil || year < 1900 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be a four-digit year"})
		return 0, 0, false
	}
	return month, year, true
}

func (h *paymentTrackingHandler) setPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for setPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	payment, err := h.paymentService.SetPayment(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
			return
		}
		logger.Error("Failed to set payment", slog.Int64("bill_id", req.BillID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set payment"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentTrackingResponse(payment))
}

func (h *paymentTrackingHandler) listPaymentsForPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	month, year, ok := parsePeriodQuery(c)
	if !ok {
		return
	}

	payments, err := h.paymentService.ListPaymentsForPeriod(c.Request.Context(), month, year)
	if err != nil {
		logger.Error("Failed to list payments", slog.Int("month", month), slog.Int("year", year), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPaymentTrackingResponse(payments))
}

func (h *paymentTrackingHandler) markAllForPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.MarkAllPaymentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for markAllForPeriod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	count, err := h.paymentService.MarkAllForPeriod(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to mark all payments",
			slog.Int("month", req.PaymentMonth),
			slog.Int("year", req.PaymentYear),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark payments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": count})
}
