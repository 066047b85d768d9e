package services

// ServiceContainer holds instances of all the application services. Handlers
// receive this at route registration and depend only on the facades.
type ServiceContainer struct {
	Property          PropertySvcFacade
	RecurringBill     RecurringBillSvcFacade
	PaymentTracking   PaymentTrackingSvcFacade
	PotentialProperty PotentialPropertySvcFacade
	Reporting         ReportingSvcFacade
}
