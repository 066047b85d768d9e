package services

import (
	portsrepo "github.com/rentledger/rentledger_backend/internal/core/ports/repositories"
	portssvc "github.com/rentledger/rentledger_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Property = NewPropertyService(repos.PropertyRepo)
	container.RecurringBill = NewRecurringBillService(repos.RecurringBillRepo)
	container.PaymentTracking = NewPaymentTrackingService(repos.PaymentTrackingRepo, repos.RecurringBillRepo)
	container.PotentialProperty = NewPotentialPropertyService(repos.PotentialPropertyRepo)
	container.Reporting = NewReportingService(repos.PropertyRepo, repos.RecurringBillRepo, repos.PaymentTrackingRepo)

	return container
}
