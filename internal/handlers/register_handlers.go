package handlers

import (
	"github.com/gin-gonic/gin"
	portssvc "github.com/rentledger/rentledger_backend/internal/core/ports/services"
	"github.com/rentledger/rentledger_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	registerPropertyRoutes(v1, services.Property)
	registerRecurringBillRoutes(v1, services.RecurringBill)
	registerPaymentTrackingRoutes(v1, services.PaymentTracking)
	registerPotentialPropertyRoutes(v1, services.PotentialProperty)
	registerReportingRoutes(v1, services.Reporting)
}
