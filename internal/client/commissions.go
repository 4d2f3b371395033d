package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/apexsales/admin-console/internal/core/domain"
)

// Commissions is the commission slice of the remote API.
type Commissions struct {
	c *Client
}

func NewCommissions(c *Client) *Commissions {
	return &Commissions{c: c}
}

func (m *Commissions) List(ctx context.Context, token string) []domain.Commission {
	return list[domain.Commission](m.c, ctx, token, "/commissions", "commissions.list")
}

func (m *Commissions) ListAll(ctx context.Context, token string) []domain.Commission {
	return list[domain.Commission](m.c, ctx, token, "/commissions/all", "commissions.list_all")
}

func (m *Commissions) Create(ctx context.Context, token string, nc domain.NewCommission) bool {
	return m.c.mutate(ctx, token, http.MethodPost, "/commissions/create", nc, http.StatusCreated, "commissions.create")
}

func (m *Commissions) Update(ctx context.Context, token string, id int, nc domain.NewCommission) bool {
	path := fmt.Sprintf("/commissions/update/%d", id)
	return m.c.mutate(ctx, token, http.MethodPut, path, nc, http.StatusOK, "commissions.update")
}

func (m *Commissions) Delete(ctx context.Context, token string, id int) bool {
	path := fmt.Sprintf("/commissions/delete/%d", id)
	return m.c.mutate(ctx, token, http.MethodDelete, path, nil, http.StatusOK, "commissions.delete")
}

func (m *Commissions) MarkPaid(ctx context.Context, token string, id int) bool {
	path := fmt.Sprintf("/commissions/mark-paid/%d", id)
	return m.c.mutate(ctx, token, http.MethodPut, path, struct{}{}, http.StatusOK, "commissions.mark_paid")
}

func (m *Commissions) MarkDue(ctx context.Context, token string, id int) bool {
	path := fmt.Sprintf("/commissions/mark-due/%d", id)
	return m.c.mutate(ctx, token, http.MethodPut, path, struct{}{}, http.StatusOK, "commissions.mark_due")
}

func (m *Commissions) Export(ctx context.Context, token string) []byte {
	return m.c.raw(ctx, token, "/commissions/export", "commissions.export")
}
