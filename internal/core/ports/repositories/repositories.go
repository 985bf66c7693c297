package repositories

// RepositoryProvider bundles the repository implementations of one datastore
// so alternative stores can be swapped in behind a single seam.
type RepositoryProvider struct {
	JobRepo    JobRepositoryFacade
	TariffRepo TariffRepositoryFacade
}
