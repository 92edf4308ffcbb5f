package internal

import (
	"marketofmanycards/market-api/internal/service"
	"marketofmanycards/market-api/internal/store"
)

type Deps struct {
	Store    store.Repository
	Users    *service.UserService
	Listings *service.ListingService
	Catalog  *service.CatalogService
}

// NewDeps wires the services on top of one store. notifier may be nil.
func NewDeps(s store.Repository, onDelete service.DeletePolicy, notifier service.Notifier) *Deps {
	return &Deps{
		Store:    s,
		Users:    service.NewUserService(s, onDelete),
		Listings: service.NewListingService(s, notifier),
		Catalog:  service.NewCatalogService(s),
	}
}
