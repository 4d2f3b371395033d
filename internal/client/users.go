package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/apexsales/admin-console/internal/core/domain"
)

// Users covers the user, coach, agent, profile and dashboard endpoints.
type Users struct {
	c *Client
}

func NewUsers(c *Client) *Users {
	return &Users{c: c}
}

func (u *Users) UserInfo(ctx context.Context, token string) *domain.User {
	return first[domain.User](u.c, ctx, token, "/users", "users.info")
}

func (u *Users) SalesCoaches(ctx context.Context, token string) []domain.User {
	return list[domain.User](u.c, ctx, token, "/users/sales-coaches", "users.coaches")
}

func (u *Users) SalesAgents(ctx context.Context, token string) []domain.User {
	return list[domain.User](u.c, ctx, token, "/users/sales-agents", "users.agents")
}

func (u *Users) CoachAgents(ctx context.Context, token string) []domain.User {
	return list[domain.User](u.c, ctx, token, "/coaches/agents", "users.coach_agents")
}

// CreateSalesCoach registers a coach account. Coaches are created through
// the register endpoint with the role pinned server-side verifiable.
func (u *Users) CreateSalesCoach(ctx context.Context, token string, nu domain.NewUser) bool {
	nu.Role = domain.RoleSalesCoach
	return u.c.mutate(ctx, token, http.MethodPost, "/auth/register", nu, http.StatusCreated, "users.create_coach")
}

// CreateSalesAgent creates an agent under a coach. The payload role is
// sales_agent; the agent endpoint expects exactly that.
func (u *Users) CreateSalesAgent(ctx context.Context, token string, nu domain.NewUser) bool {
	nu.Role = domain.RoleSalesAgent
	return u.c.mutate(ctx, token, http.MethodPost, "/users/sales-agents", nu, http.StatusCreated, "users.create_agent")
}

func (u *Users) UpdateSalesCoach(ctx context.Context, token string, id int, nu domain.NewUser) bool {
	path := fmt.Sprintf("/users/sales-coach/%d", id)
	return u.c.mutate(ctx, token, http.MethodPut, path, nu, http.StatusOK, "users.update_coach")
}

func (u *Users) UpdateSalesAgent(ctx context.Context, token string, id int, nu domain.NewUser) bool {
	path := fmt.Sprintf("/users/sales-agents/%d", id)
	return u.c.mutate(ctx, token, http.MethodPut, path, nu, http.StatusOK, "users.update_agent")
}

func (u *Users) DeleteSalesCoach(ctx context.Context, token string, id int) bool {
	path := fmt.Sprintf("/users/sales-coach/%d", id)
	return u.c.mutate(ctx, token, http.MethodDelete, path, nil, http.StatusOK, "users.delete_coach")
}

func (u *Users) DeleteSalesAgent(ctx context.Context, token string, id int) bool {
	path := fmt.Sprintf("/users/sales-agents/%d", id)
	return u.c.mutate(ctx, token, http.MethodDelete, path, nil, http.StatusOK, "users.delete_agent")
}

func (u *Users) ExportSalesCoaches(ctx context.Context, token string) []byte {
	return u.c.raw(ctx, token, "/users/export-sales-coach", "users.export_coaches")
}

func (u *Users) ExportSalesAgents(ctx context.Context, token string) []byte {
	return u.c.raw(ctx, token, "/users/export-sales-agents", "users.export_agents")
}

func (u *Users) Profile(ctx context.Context, token string) *domain.Profile {
	return first[domain.Profile](u.c, ctx, token, "/users/profile", "users.profile")
}

func (u *Users) UpdateProfile(ctx context.Context, token string, p domain.Profile) bool {
	return u.c.mutate(ctx, token, http.MethodPost, "/users/profile", p, http.StatusOK, "users.update_profile")
}

func (u *Users) Dashboard(ctx context.Context, token string) *domain.Dashboard {
	return first[domain.Dashboard](u.c, ctx, token, "/users/dashboard", "users.dashboard")
}
