package client

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/apexsales/admin-console/internal/core/domain"
	"github.com/apexsales/admin-console/internal/metrics"
)

// Auth is the authentication slice of the remote API.
type Auth struct {
	c *Client
}

func NewAuth(c *Client) *Auth {
	return &Auth{c: c}
}

// VerifyToken asks the server whether token is still valid. Only an HTTP
// 200 counts; transport errors, timeouts and every other status all mean
// "not valid".
func (a *Auth) VerifyToken(ctx context.Context, token string) bool {
	_, status := a.c.do(ctx, token, http.MethodGet, "/auth/verifyToken", nil)
	outcome := "failed"
	if status == http.StatusOK {
		outcome = "ok"
	}
	metrics.APIRequestsTotal.WithLabelValues("auth.verify", outcome).Inc()
	return status == http.StatusOK
}

// Login exchanges credentials for a token. A rejected credential still
// yields a LoginResult (empty token, user-facing message); only transport
// failure returns an error.
func (a *Auth) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	payload := map[string]string{"email": email, "password": password}
	raw, status := a.c.do(ctx, "", http.MethodPost, "/auth/login", payload)
	if status == 0 {
		metrics.APIRequestsTotal.WithLabelValues("auth.login", "failed").Inc()
		return nil, domain.ErrUnavailable
	}

	// Success and rejection share the envelope shape; the rejection body
	// carries a null token plus the reason.
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		metrics.APIRequestsTotal.WithLabelValues("auth.login", "failed").Inc()
		return nil, domain.ErrUnavailable
	}
	var results []domain.LoginResult
	if err := json.Unmarshal(env.Response.Data, &results); err != nil || len(results) == 0 {
		metrics.APIRequestsTotal.WithLabelValues("auth.login", "failed").Inc()
		return nil, domain.ErrUnavailable
	}

	metrics.APIRequestsTotal.WithLabelValues("auth.login", "ok").Inc()
	return &results[0], nil
}
