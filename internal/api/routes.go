package api

import (
	"net/http"

	"github.com/JaimeStill/admin-console/internal/config"
	"github.com/JaimeStill/admin-console/internal/dutystaff"
	"github.com/JaimeStill/admin-console/internal/fieldwork"
	"github.com/JaimeStill/admin-console/internal/menu"
	"github.com/JaimeStill/admin-console/internal/permissions"
	"github.com/JaimeStill/admin-console/internal/totals"
	"github.com/JaimeStill/admin-console/internal/transactions"
	"github.com/JaimeStill/admin-console/pkg/openapi"
	"github.com/JaimeStill/admin-console/pkg/routes"
)

// Version is the path segment every API route is served under.
const Version = "/v1"

func registerRoutes(
	mux *http.ServeMux,
	spec *openapi.Spec,
	runtime *Runtime,
	domain *Domain,
	nav Navigation,
	cfg *config.Config,
) {
	transactionsHandler := transactions.NewHandler(domain.Transactions, runtime.Logger, runtime.Pagination, runtime.MaxBody)
	totalsHandler := totals.NewHandler(domain.Totals, runtime.Logger, runtime.Pagination, runtime.MaxBody).
		WithOwner(permissions.Owner(nav.Permissions))
	fieldWorkHandler := fieldwork.NewHandler(domain.FieldWork, runtime.Logger, runtime.Pagination, runtime.MaxBody)
	dutyStaffHandler := dutystaff.NewHandler(domain.DutyStaff, runtime.Logger, runtime.Pagination, runtime.MaxBody)
	menuHandler := menu.NewHandler(nav.Tree, nav.Permissions, cfg.Upstream.TokenHeader, cfg.App.TokenCookie, runtime.Logger)

	business := routes.Group{
		Children: []routes.Group{
			transactionsHandler.Routes(),
			totalsHandler.Routes(),
			fieldWorkHandler.Routes(),
			dutyStaffHandler.Routes(),
		},
	}
	requireToken := permissions.Require(nav.Permissions, cfg.Upstream.TokenHeader, cfg.App.TokenCookie, runtime.Logger)

	routes.Register(
		mux,
		cfg.API.BasePath,
		spec,
		routes.Group{
			Prefix: Version,
			Children: []routes.Group{
				business.Wrap(requireToken),
				menuHandler.Routes(),
			},
		},
	)
}
