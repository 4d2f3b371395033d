// Package session holds the process-wide authentication state: the bearer
// token, the authenticated user's profile, and the transitions between
// them. All writes go through the operations defined here; no other
// component mutates token or profile directly.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/apexsales/admin-console/internal/core/domain"
	"github.com/apexsales/admin-console/internal/core/ports"
	"github.com/apexsales/admin-console/internal/metrics"
)

// State is the session lifecycle position.
//
//	Unauthenticated → Verifying → Authenticated → Unauthenticated
//
// There are no other transitions. A consumer observing Verifying must
// render a loading state and take no further action.
type State int

const (
	Unauthenticated State = iota
	Verifying
	Authenticated
)

func (s State) String() string {
	switch s {
	case Verifying:
		return "verifying"
	case Authenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// Navigator abstracts "go back to the unauthenticated entry point".
type Navigator interface {
	ToEntry()
}

// Flusher is anything holding cached fetch results that must be dropped
// on logout. The view cache implements it.
type Flusher interface {
	Clear()
}

// Store is the singleton session store.
type Store struct {
	mu    sync.Mutex
	token string
	user  *domain.User
	state State
	subs  []func(State)

	tokens ports.TokenStore
	auth   ports.AuthAPI
	users  ports.UserAPI
	caches Flusher
	nav    Navigator
	log    zerolog.Logger
	now    func() time.Time
}

// NewStore builds the store and loads any durably persisted token. A
// stored token starts the session in Verifying; it is not trusted until
// the server has confirmed it in this process.
func NewStore(tokens ports.TokenStore, auth ports.AuthAPI, users ports.UserAPI, caches Flusher, nav Navigator, log zerolog.Logger) *Store {
	s := &Store{
		tokens: tokens,
		auth:   auth,
		users:  users,
		caches: caches,
		nav:    nav,
		log:    log,
		now:    time.Now,
	}
	if t := tokens.Load(); t != "" {
		s.token = t
		s.state = Verifying
	}
	return s
}

// Token returns the current bearer token ("" when logged out).
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User returns the authenticated profile, or nil before LoadProfile has
// succeeded in this session.
func (s *Store) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Role returns the session role, or "" when no profile is loaded.
func (s *Store) Role() domain.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return ""
	}
	return s.user.Role
}

// State returns the current lifecycle state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to run after every state change. Subscribers are
// invoked outside the store lock, in registration order.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// SetToken replaces the stored token and persists it durably. An empty
// token clears the session; a non-empty one starts verification. Setting
// the same token twice is a no-op.
func (s *Store) SetToken(token string) {
	s.mu.Lock()
	if token == s.token {
		s.mu.Unlock()
		return
	}
	s.token = token
	s.user = nil
	if token == "" {
		s.state = Unauthenticated
		s.tokens.Clear()
	} else {
		s.state = Verifying
		if err := s.tokens.Save(token); err != nil {
			// The session still works for this process; it just won't
			// survive a restart.
			s.log.Warn().Err(err).Msg("could not persist token")
		}
	}
	state := s.state
	s.mu.Unlock()
	s.publish(state)
}

// Verify reports whether the current token is valid. Transport failure,
// a rejected token, and a locally expired token all return false; the
// caller cannot and must not tell them apart.
func (s *Store) Verify(ctx context.Context) bool {
	token := s.Token()
	if token == "" {
		return false
	}
	if tokenExpired(token, s.now()) {
		s.log.Debug().Msg("token expired locally, skipping network verify")
		return false
	}
	return s.auth.VerifyToken(ctx, token)
}

// LoadProfile fetches the profile tied to a verified token and moves the
// session to Authenticated. A failed fetch is fatal to the session: the
// store logs out rather than retrying.
func (s *Store) LoadProfile(ctx context.Context) bool {
	user := s.users.UserInfo(ctx, s.Token())
	if user == nil {
		s.logout("profile_failed")
		return false
	}

	s.mu.Lock()
	s.user = user
	s.state = Authenticated
	s.mu.Unlock()
	s.publish(Authenticated)

	s.log.Info().Str("role", string(user.Role)).Int("user_id", user.ID).Msg("session authenticated")
	return true
}

// Resolve drives a Verifying session to a terminal state: Authenticated
// on verify+profile success, Unauthenticated (with redirect) otherwise.
// Calling it in any other state does nothing.
func (s *Store) Resolve(ctx context.Context) {
	if s.State() != Verifying {
		return
	}
	if !s.Verify(ctx) {
		s.logout("verify_failed")
		return
	}
	s.LoadProfile(ctx)
}

// Logout clears the token, the profile, the durable storage entry and all
// cached fetch results, then signals navigation to the entry point. It
// has no failure mode and is idempotent: a second call on a clean session
// changes nothing and does not navigate again.
func (s *Store) Logout() {
	s.logout("user")
}

func (s *Store) logout(reason string) {
	s.mu.Lock()
	if s.token == "" && s.user == nil && s.state == Unauthenticated {
		s.mu.Unlock()
		return
	}
	s.token = ""
	s.user = nil
	s.state = Unauthenticated
	s.mu.Unlock()

	s.tokens.Clear()
	if s.caches != nil {
		s.caches.Clear()
	}
	metrics.SessionLogoutsTotal.WithLabelValues(reason).Inc()
	s.log.Info().Str("reason", reason).Msg("session terminated")

	s.publish(Unauthenticated)
	if s.nav != nil {
		s.nav.ToEntry()
	}
}

func (s *Store) publish(state State) {
	s.mu.Lock()
	subs := make([]func(State), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(state)
	}
}

// tokenExpired checks the token's exp claim without verifying the
// signature. Opaque (non-JWT) tokens and tokens without exp defer to the
// server.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
