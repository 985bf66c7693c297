package services

// ServiceContainer groups the service facades the HTTP layer depends on.
type ServiceContainer struct {
	Job      JobSvcFacade
	Duty     DutySvcFacade
	Overview OverviewSvcFacade
	Tariff   TariffSvcFacade
}
