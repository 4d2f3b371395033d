package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/apexsales/admin-console/internal/core/domain"
)

// Applications is the application slice of the remote API.
type Applications struct {
	c *Client
}

func NewApplications(c *Client) *Applications {
	return &Applications{c: c}
}

func (a *Applications) List(ctx context.Context, token string) []domain.Application {
	return list[domain.Application](a.c, ctx, token, "/applications", "applications.list")
}

func (a *Applications) ListAll(ctx context.Context, token string) []domain.Application {
	return list[domain.Application](a.c, ctx, token, "/applications/admin/get", "applications.list_all")
}

func (a *Applications) ListForCoach(ctx context.Context, token string) []domain.Application {
	return list[domain.Application](a.c, ctx, token, "/applications/coach/get", "applications.list_coach")
}

func (a *Applications) Create(ctx context.Context, token string, app domain.NewApplication) bool {
	return a.c.mutate(ctx, token, http.MethodPost, "/applications/create", app, http.StatusCreated, "applications.create")
}

func (a *Applications) Update(ctx context.Context, token string, id int, app domain.NewApplication) bool {
	path := fmt.Sprintf("/applications/update/%d", id)
	return a.c.mutate(ctx, token, http.MethodPost, path, app, http.StatusOK, "applications.update")
}

func (a *Applications) Delete(ctx context.Context, token string, id int) bool {
	path := fmt.Sprintf("/applications/delete/%d", id)
	return a.c.mutate(ctx, token, http.MethodDelete, path, nil, http.StatusOK, "applications.delete")
}

func (a *Applications) MarkCompleted(ctx context.Context, token string, id int) bool {
	path := fmt.Sprintf("/applications/complete/%d", id)
	return a.c.mutate(ctx, token, http.MethodPost, path, nil, http.StatusOK, "applications.complete")
}

func (a *Applications) MarkIncomplete(ctx context.Context, token string, id int) bool {
	path := fmt.Sprintf("/applications/incomplete/%d", id)
	return a.c.mutate(ctx, token, http.MethodPost, path, nil, http.StatusOK, "applications.incomplete")
}

func (a *Applications) Export(ctx context.Context, token string) []byte {
	return a.c.raw(ctx, token, "/applications/export", "applications.export")
}

func (a *Applications) ExportAll(ctx context.Context, token string) []byte {
	return a.c.raw(ctx, token, "/applications/admin/export", "applications.export_all")
}

func (a *Applications) ExportForCoach(ctx context.Context, token string) []byte {
	return a.c.raw(ctx, token, "/applications/coach/export", "applications.export_coach")
}
