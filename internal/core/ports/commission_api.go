package ports

import (
	"context"

	"github.com/apexsales/admin-console/internal/core/domain"
)

// CommissionAPI covers the commission endpoints and the paid/due toggles.
type CommissionAPI interface {
	// List returns the caller's own commissions.
	List(ctx context.Context, token string) []domain.Commission
	// ListAll returns every commission (admin scope).
	ListAll(ctx context.Context, token string) []domain.Commission

	Create(ctx context.Context, token string, c domain.NewCommission) bool
	Update(ctx context.Context, token string, id int, c domain.NewCommission) bool
	Delete(ctx context.Context, token string, id int) bool

	MarkPaid(ctx context.Context, token string, id int) bool
	MarkDue(ctx context.Context, token string, id int) bool

	Export(ctx context.Context, token string) []byte
}
