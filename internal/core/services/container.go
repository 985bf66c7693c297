package services

import (
	portsrepo "github.com/ImpexFlow/impex_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/ImpexFlow/impex_backoffice_app/internal/core/ports/services"
)

// NewServiceContainer wires all services over one repository provider.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Job:      NewJobService(repos.JobRepo),
		Duty:     NewDutyService(repos.JobRepo, repos.TariffRepo),
		Overview: NewOverviewService(repos.JobRepo),
		Tariff:   NewTariffService(repos.TariffRepo),
	}
}

// Compile-time interface checks.
var (
	_ portssvc.JobSvcFacade      = (*JobService)(nil)
	_ portssvc.DutySvcFacade     = (*DutyService)(nil)
	_ portssvc.OverviewSvcFacade = (*OverviewService)(nil)
	_ portssvc.TariffSvcFacade   = (*TariffService)(nil)
)
