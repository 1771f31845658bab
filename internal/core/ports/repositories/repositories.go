package repositories

// RepositoryProvider bundles every repository implementation for injection
// into the service container.
type RepositoryProvider struct {
	AccountRepo     AccountRepository
	TransferRepo    TransferRepositoryWithTx
	GoalRepo        GoalRepository
	TemplateRepo    TemplateRepository
	TransactionRepo TransactionRepository
	SettingsRepo    SettingsRepository
	RateRepo        ConversionRateRepository
}
