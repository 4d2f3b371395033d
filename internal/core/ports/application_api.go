package ports

import (
	"context"

	"github.com/apexsales/admin-console/internal/core/domain"
)

// ApplicationAPI covers the application endpoints, including the
// role-scoped list/export variants and the completion toggles.
type ApplicationAPI interface {
	// List returns the caller's own applications (sales agent scope).
	List(ctx context.Context, token string) []domain.Application
	// ListAll returns every application (admin scope).
	ListAll(ctx context.Context, token string) []domain.Application
	// ListForCoach returns applications of the coach's agents.
	ListForCoach(ctx context.Context, token string) []domain.Application

	Create(ctx context.Context, token string, a domain.NewApplication) bool
	Update(ctx context.Context, token string, id int, a domain.NewApplication) bool
	Delete(ctx context.Context, token string, id int) bool

	MarkCompleted(ctx context.Context, token string, id int) bool
	MarkIncomplete(ctx context.Context, token string, id int) bool

	Export(ctx context.Context, token string) []byte
	ExportAll(ctx context.Context, token string) []byte
	ExportForCoach(ctx context.Context, token string) []byte
}
