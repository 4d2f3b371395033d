package ports

import (
	"context"

	"github.com/apexsales/admin-console/internal/core/domain"
)

// UserAPI covers the user, coach, agent, profile and dashboard endpoints.
//
// List calls return nil on any failure; mutations return false. The REST
// boundary has already collapsed transport errors and bad statuses into
// those sentinels, so callers only ever branch on nil/false.
type UserAPI interface {
	UserInfo(ctx context.Context, token string) *domain.User
	SalesCoaches(ctx context.Context, token string) []domain.User
	SalesAgents(ctx context.Context, token string) []domain.User
	CoachAgents(ctx context.Context, token string) []domain.User

	CreateSalesCoach(ctx context.Context, token string, u domain.NewUser) bool
	CreateSalesAgent(ctx context.Context, token string, u domain.NewUser) bool
	UpdateSalesCoach(ctx context.Context, token string, id int, u domain.NewUser) bool
	UpdateSalesAgent(ctx context.Context, token string, id int, u domain.NewUser) bool
	DeleteSalesCoach(ctx context.Context, token string, id int) bool
	DeleteSalesAgent(ctx context.Context, token string, id int) bool

	ExportSalesCoaches(ctx context.Context, token string) []byte
	ExportSalesAgents(ctx context.Context, token string) []byte

	Profile(ctx context.Context, token string) *domain.Profile
	UpdateProfile(ctx context.Context, token string, p domain.Profile) bool

	Dashboard(ctx context.Context, token string) *domain.Dashboard
}
