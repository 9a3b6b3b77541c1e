package services

import (
	portsrepo "github.com/SscSPs/cekel_duit/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cekel_duit/internal/core/ports/services"
	"github.com/SscSPs/cekel_duit/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Transaction: NewTransactionService(
			repos.TransactionRepo,
			repos.ProfileRepo,
			WithNgiritThreshold(cfg.NgiritThreshold),
		),
		Savings:   NewSavingsService(repos.SavingsRepo),
		Profile:   NewProfileService(repos.ProfileRepo),
		Reporting: NewReportingService(repos.TransactionRepo, repos.ProfileRepo),
		Export:    NewExportService(cfg.AppName, repos),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.SavingsSvcFacade     = (*savingsService)(nil)
	_ portssvc.ProfileSvc           = (*profileService)(nil)
	_ portssvc.ReportingSvc         = (*reportingService)(nil)
	_ portssvc.ExportSvc            = (*exportService)(nil)
)
