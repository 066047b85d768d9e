package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rentledger/rentledger_backend/internal/apperrors"
	portssvc "github.com/rentledger/rentledger_backend/internal/core/ports/services"
	"github.com/rentledger/rentledger_backend/internal/dto"
	"github.com/rentledger/rentledger_backend/internal/middleware"
)

// potentialPropertyHandler handles HTTP requests for the acquisition pipeline.
type potentialPropertyHandler struct {
	potentialService portssvc.PotentialPropertySvcFacade
}

func newPotentialPropertyHandler(ps portssvc.PotentialPropertySvcFacade) *potentialPropertyHandler {
	return &potentialPropertyHandler{potentialService: ps}
}

// registerPotentialPropertyRoutes registers routes related to prospective purchases.
func registerPotentialPropertyRoutes(rg *gin.RouterGroup, potentialService portssvc.PotentialPropertySvcFacade) {
	h := newPotentialPropertyHandler(potentialService)

	potentials := rg.Group("/potential-properties")
	{
		potentials.POST("", h.createPotentialProperty)
		potentials.GET("", h.listPotentialProperties)
		potentials.GET("/analysis", h.analyzeAll)
		potentials.GET("/:propertyID", h.getPotentialProperty)
		potentials.GET("/:propertyID/roi", h.evaluateROI)
		potentials.PUT("/:propertyID", h.updatePotentialProperty)
		potentials.DELETE("/:propertyID", h.deletePotentialProperty)
	}
}

func (h *potentialPropertyHandler) createPotentialProperty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePotentialPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createPotentialProperty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	property, err := h.potentialService.CreatePotentialProperty(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create potential property", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create potential property"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToPotentialPropertyResponse(property))
}

func (h *potentialPropertyHandler) listPotentialProperties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	properties, err := h.potentialService.ListPotentialProperties(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list potential properties", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list potential properties"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPotentialPropertyResponse(properties))
}

func (h *potentialPropertyHandler) getPotentialProperty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID, ok := parseIDParam(c, "propertyID")
	if !ok {
		return
	}

	property, err := h.potentialService.GetPotentialPropertyByID(c.Request.Context(), propertyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Potential property not found"})
			return
		}
		logger.Error("Failed to get potential property", slog.Int64("property_id", propertyID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve potential property"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPotentialPropertyResponse(property))
}

// evaluateROI returns the prospect together with its full return analysis.
func (h *potentialPropertyHandler) evaluateROI(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID, ok := parseIDParam(c, "propertyID")
	if !ok {
		return
	}

	property, result, err := h.potentialService.EvaluateROI(c.Request.Context(), propertyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Potential property not found"})
			return
		}
		logger.Error("Failed to evaluate ROI", slog.Int64("property_id", propertyID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to evaluate ROI"})
		return
	}

	c.JSON(http.StatusOK, dto.PotentialPropertyAnalysis{
		Property: dto.ToPotentialPropertyResponse(property),
		ROI:      *result,
	})
}

// analyzeAll evaluates every prospect for side-by-side comparison.
func (h *potentialPropertyHandler) analyzeAll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	analyses, err := h.potentialService.AnalyzeAll(c.Request.Context())
	if err != nil {
		logger.Error("Failed to analyze potential properties", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze potential properties"})
		return
	}

	c.JSON(http.StatusOK, analyses)
}

func (h *potentialPropertyHandler) updatePotentialProperty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID, ok := parseIDParam(c, "propertyID")
	if !ok {
		return
	}

	var req dto.UpdatePotentialPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updatePotentialProperty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	property, err := h.potentialService.UpdatePotentialProperty(c.Request.Context(), propertyID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Potential property not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to update potential property", slog.Int64("property_id", propertyID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update potential property"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPotentialPropertyResponse(property))
}

func (h *potentialPropertyHandler) deletePotentialProperty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID, ok := parseIDParam(c, "propertyID")
	if !ok {
		return
	}

	err := h.potentialService.DeletePotentialProperty(c.Request.Context(), propertyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Potential property not found"})
			return
		}
		logger.Error("Failed to delete potential property", slog.Int64("property_id", propertyID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete potential property"})
		return
	}

	c.Status(http.StatusNoContent)
}
