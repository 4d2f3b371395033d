// Package views configures the generic entity-view engine for each screen
// of the console: Applications, Commissions, Sales Agents, Sales Coaches,
// plus the dashboard, profile and navigation.
package views

import (
	"github.com/rs/zerolog"

	"github.com/apexsales/admin-console/internal/core/ports"
	"github.com/apexsales/admin-console/internal/core/session"
	"github.com/apexsales/admin-console/internal/notify"
	"github.com/apexsales/admin-console/internal/view/cache"
)

// Deps bundles what every page needs. Pages receive it explicitly; there
// is no ambient lookup.
type Deps struct {
	Session      *session.Store
	Cache        *cache.Cache
	Auth         ports.AuthAPI
	Users        ports.UserAPI
	Applications ports.ApplicationAPI
	Commissions  ports.CommissionAPI
	Notify       notify.Notifier
	Log          zerolog.Logger
}

func (d Deps) token() string {
	return d.Session.Token()
}
