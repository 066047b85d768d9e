package repositories

// RepositoryProvider bundles every repository implementation for injection
// into the service container.
type RepositoryProvider struct {
	PropertyRepo          PropertyRepository
	RecurringBillRepo     RecurringBillRepository
	PaymentTrackingRepo   PaymentTrackingRepository
	PotentialPropertyRepo PotentialPropertyRepository
}
