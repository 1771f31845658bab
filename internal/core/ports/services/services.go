package services

// ServiceContainer aggregates every service facade for dependency injection
// into the HTTP layer.
type ServiceContainer struct {
	AccountSvc      AccountSvcFacade
	TransferSvc     TransferSvcFacade
	GoalSvc         GoalSvcFacade
	TemplateSvc     TemplateSvcFacade
	SettingsSvc     SettingsSvcFacade
	ReportingSvc    ReportingSvcFacade
	DataExchangeSvc DataExchangeSvcFacade
}
