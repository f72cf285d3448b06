package services

import (
	portsrepo "github.com/alj030327/arvs-fl-04-sub000/internal/core/ports/repositories"
	portssvc "github.com/alj030327/arvs-fl-04-sub000/internal/core/ports/services"
	"github.com/alj030327/arvs-fl-04-sub000/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Estate service first; the others depend on its authorizer.
	container.Estate = NewEstateService(repos.EstateRepo, WithBeneficiaryRepository(repos.BeneficiaryRepo))
	authorizer := container.Estate.(portssvc.EstateAuthorizerSvc)

	container.Asset = NewAssetService(
		repos.AssetRepo,
		WithEstateAuthorizer(authorizer),
		WithAllocationRepository(repos.AllocationRepo),
	)
	container.Beneficiary = NewBeneficiaryService(repos.BeneficiaryRepo, authorizer)
	container.Allocation = NewAllocationService(repos.AllocationRepo, repos.AssetRepo, repos.BeneficiaryRepo, authorizer)
	container.Settlement = NewSettlementService(repos.AssetRepo, repos.AllocationRepo, repos.BeneficiaryRepo, authorizer)

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.EstateSvcFacade      = (*estateService)(nil)
	_ portssvc.AssetSvcFacade       = (*AssetService)(nil)
	_ portssvc.AllocationSvcFacade  = (*AllocationService)(nil)
	_ portssvc.BeneficiarySvcFacade = (*BeneficiaryService)(nil)
	_ portssvc.SettlementSvcFacade  = (*SettlementService)(nil)
	_ portssvc.UserSvcFacade        = (*UserService)(nil)
	_ portssvc.TokenSvcFacade       = (*tokenService)(nil)
	_ portssvc.GoogleOAuthSvcFacade = (*googleOAuthService)(nil)
)
