package services

import (
	portsrepo "github.com/M-Vasconez/fin/internal/core/ports/repositories"
	portssvc "github.com/M-Vasconez/fin/internal/core/ports/services"
)

// NewServiceContainer wires every service over the repository provider.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		AccountSvc:      NewAccountService(repos.AccountRepo),
		TransferSvc:     NewTransferService(repos.AccountRepo, repos.TransferRepo),
		GoalSvc:         NewGoalService(repos.GoalRepo),
		TemplateSvc:     NewTemplateService(repos.TemplateRepo),
		SettingsSvc:     NewSettingsService(repos.SettingsRepo, repos.RateRepo),
		ReportingSvc:    NewReportingService(repos.TransactionRepo),
		DataExchangeSvc: NewDataExchangeService(repos),
	}
}
