package repositories

// RepositoryProvider bundles every repository facade the service container
// needs, so wiring happens in one place.
type RepositoryProvider struct {
	EstateRepo      EstateRepositoryFacade
	AssetRepo       AssetRepositoryFacade
	AllocationRepo  AllocationRepositoryFacade
	BeneficiaryRepo BeneficiaryRepositoryFacade
	UserRepo        UserRepositoryFacade
}
