package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rentledger/rentledger_backend/internal/apperrors"
	portsrepo "github.com/rentledger/rentledger_backend/internal/core/ports/repositories"
	portssvc "github.com/rentledger/rentledger_backend/internal/core/ports/services"
	"github.com/rentledger/rentledger_backend/internal/dto"
	"github.com/rentledger/rentledger_backend/internal/middleware"
)

// recurringBillHandler handles HTTP requests related to recurring bills and
// one-time repair entries.
type recurringBillHandler struct {
	billService portssvc.RecurringBillSvcFacade
}

func newRecurringBillHandler(bs portssvc.RecurringBillSvcFacade) *recurringBillHandler {
	return &recurringBillHandler{billService: bs}
}

// registerRecurringBillRoutes registers routes related to recurring bills.
func registerRecurringBillRoutes(rg *gin.RouterGroup, billService portssvc.RecurringBillSvcFacade) {
	h := newRecurringBillHandler(billService)

	bills := rg.Group("/recurring-bills")
	{
		bills.POST("", h.createBill)
		bills.POST("/repairs", h.createRepair)
		bills.GET("", h.listBills)
		bills.GET("/:billID", h.getBill)
		bills.PUT("/:billID", h.updateBill)
		bills.DELETE("/:billID", h.deleteBill)
	}
}

func (h *recurringBillHandler) createBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRecurringBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createBill", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	bill, err := h.billService.CreateBill(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create bill", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create bill"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToRecurringBillResponse(bill))
}

func (h *recurringBillHandler) createRepair(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRepairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createRepair", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	bill, err := h.billService.CreateRepair(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create repair", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create repair"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToRecurringBillResponse(bill))
}

// listBills supports ?propertyID= to narrow to one property and
// ?includeInactive=true to include soft-deleted bills.
func (h *recurringBillHandler) listBills(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter := portsrepo.BillListFilter{}
	if raw := c.Query("propertyID"); raw != "" {
		propertyID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || propertyID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid propertyID"})
			return
		}
		filter.PropertyID = &propertyID
	}
	filter.IncludeInactive = c.Query("includeInactive") == "true"

	bills, err := h.billService.ListBills(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to list bills", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bills"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRecurringBillResponse(bills))
}

func (h *recurringBillHandler) getBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	billID, ok := parseIDParam(c, "billID")
	if !ok {
		return
	}

	bill, err := h.billService.GetBillByID(c.Request.Context(), billID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
			return
		}
		logger.Error("Failed to get bill", slog.Int64("bill_id", billID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bill"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRecurringBillResponse(bill))
}

func (h *recurringBillHandler) updateBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	billID, ok := parseIDParam(c, "billID")
	if !ok {
		return
	}

	var req dto.UpdateRecurringBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateBill", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	bill, err := h.billService.UpdateBill(c.Request.Context(), billID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to update bill", slog.Int64("bill_id", billID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update bill"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRecurringBillResponse(bill))
}

func (h *recurringBillHandler) deleteBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	billID, ok := parseIDParam(c, "billID")
	if !ok {
		return
	}

	err := h.billService.DeleteBill(c.Request.Context(), billID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
			return
		}
		logger.Error("Failed to delete bill", slog.Int64("bill_id", billID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete bill"})
		return
	}

	c.Status(http.StatusNoContent)
}
