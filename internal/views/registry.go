package views

import (
	"log/slog"

	"github.com/JaimeStill/admin-console/pkg/navigation"
)

var publicNames = navigation.NewNameSet(
	"Login",
	"403",
	"404",
	navigation.NotFoundName,
	"ErrorPage",
	"ERROR-401",
	"ERROR-403",
	"ERROR-404",
	"ERROR-500",
)

// IsPublic reports whether the named route renders without a token.
func IsPublic(name string) bool {
	return publicNames.Has(name)
}

type registration struct {
	source string
	module navigation.Module
}

func registrations(c *Catalog) []registration {
	return []registration{
		{"system", SystemModule(c)},
		{"transactions", TransactionsModule(c)},
	}
}

// Modules returns the business modules in registration order.
func Modules(c *Catalog) *navigation.Registry {
	reg := navigation.NewRegistry()
	for _, r := range registrations(c) {
		reg.Register(r.source, r.module)
	}
	return reg
}

// Guarded returns the top-level route names of the registered modules. Their
// pages render only for tokens whose permissions name them.
func Guarded(c *Catalog) navigation.NameSet {
	set := navigation.NewNameSet()
	for _, r := range registrations(c) {
		set.Add(r.module().Name)
	}
	return set
}

// NewTree builds the route table from the basic routes and registered modules.
func NewTree(c *Catalog, policy navigation.Policy, logger *slog.Logger) (*navigation.Tree, error) {
	return navigation.NewBuilder(BasicRoutes(c), Modules(c)).
		WithPolicy(policy).
		WithLogger(logger.With("system", "navigation")).
		Build()
}
