package views

import "github.com/apexsales/admin-console/internal/core/domain"

// Link is one navigation entry.
type Link struct {
	Route string
	Label string
}

// NavLinks returns the navigation set for a role. An unknown or empty
// role gets nothing; the guards will have redirected before this matters.
func NavLinks(role domain.Role) []Link {
	switch role {
	case domain.RoleAdmin:
		return []Link{
			{Route: "/dashboard", Label: "Home"},
			{Route: "/sales-coaches", Label: "Sales Coaches"},
			{Route: "/sales-agents", Label: "Sales Agents"},
			{Route: "/applications", Label: "Applications"},
			{Route: "/commissions", Label: "Commissions"},
		}
	case domain.RoleSalesCoach:
		return []Link{
			{Route: "/dashboard", Label: "Home"},
			{Route: "/sales-agents", Label: "Sales Agents"},
			{Route: "/commissions", Label: "Commissions"},
		}
	case domain.RoleSalesAgent:
		return []Link{
			{Route: "/dashboard", Label: "Home"},
			{Route: "/profile", Label: "Profile"},
		}
	}
	return nil
}
