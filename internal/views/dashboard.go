package views

import (
	"context"

	"github.com/apexsales/admin-console/internal/core/domain"
)

// DashboardData is what the landing page renders for the current role.
// Only admins get the organisation-wide summary; other roles see their
// own name and role.
type DashboardData struct {
	Role    domain.Role
	User    *domain.User
	Summary *domain.Dashboard
}

// LoadDashboard assembles the landing page for the authenticated session.
// A failed summary fetch leaves Summary nil; the page renders without it
// rather than erroring.
func LoadDashboard(ctx context.Context, d Deps) DashboardData {
	user := d.Session.User()
	data := DashboardData{User: user}
	if user == nil {
		return data
	}
	data.Role = user.Role
	if user.Role == domain.RoleAdmin {
		data.Summary = d.Users.Dashboard(ctx, d.token())
	}
	return data
}
