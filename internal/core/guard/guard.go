// Package guard implements the two composable gates every protected view
// sits behind: authentication and role membership. The role gate assumes
// a resolved session and is always composed inside the auth gate, never
// the other way around.
package guard

import (
	"context"

	"github.com/apexsales/admin-console/internal/core/domain"
	"github.com/apexsales/admin-console/internal/core/session"
)

// Decision is what the caller should render.
type Decision int

const (
	// Redirect: do not render; the user belongs at the entry route.
	Redirect Decision = iota
	// Loading: verification is in flight; render a placeholder only.
	Loading
	// Render: the gate is open.
	Render
)

func (d Decision) String() string {
	switch d {
	case Loading:
		return "loading"
	case Render:
		return "render"
	default:
		return "redirect"
	}
}

// Auth gates on "is authenticated".
type Auth struct {
	store *session.Store
}

func NewAuth(store *session.Store) *Auth {
	return &Auth{store: store}
}

// Evaluate maps the current session state to a decision without touching
// the network.
func (g *Auth) Evaluate() Decision {
	switch g.store.State() {
	case session.Verifying:
		return Loading
	case session.Authenticated:
		return Render
	default:
		return Redirect
	}
}

// Require resolves an in-flight verification first, then evaluates. A
// failed verification clears the stored token and signals the entry
// redirect exactly once (inside the session store); re-evaluating
// afterwards stays Redirect without signalling again.
func (g *Auth) Require(ctx context.Context) Decision {
	if g.store.State() == session.Verifying {
		g.store.Resolve(ctx)
	}
	return g.Evaluate()
}

// Role gates on role membership. An absent session redirects rather than
// erroring; the auth gate should have caught it first.
type Role struct {
	store   *session.Store
	allowed map[domain.Role]struct{}
}

func NewRole(store *session.Store, roles ...domain.Role) *Role {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return &Role{store: store, allowed: allowed}
}

func (g *Role) Evaluate() Decision {
	user := g.store.User()
	if user == nil {
		return Redirect
	}
	if _, ok := g.allowed[user.Role]; !ok {
		return Redirect
	}
	return Render
}
