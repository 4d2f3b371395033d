package views

import (
	"context"
	"sync"
	"time"

	"github.com/apexsales/admin-console/internal/core/domain"
	"github.com/apexsales/admin-console/internal/export"
	"github.com/apexsales/admin-console/internal/view"
	"github.com/apexsales/admin-console/internal/view/filter"
)

// Applications builds the applications screen. Admins and coaches see a
// wider, read-only list (with the owning agent); agents manage their own.
func Applications(role domain.Role, d Deps) *view.View[domain.Application] {
	fetch := func(ctx context.Context) []domain.Application {
		switch role {
		case domain.RoleAdmin:
			return d.Applications.ListAll(ctx, d.token())
		case domain.RoleSalesCoach:
			return d.Applications.ListForCoach(ctx, d.token())
		default:
			return d.Applications.List(ctx, d.token())
		}
	}

	columns := []view.Column[domain.Application]{
		{Header: "First Name", Key: "first_name", Value: func(a domain.Application) any { return a.FirstName }},
		{Header: "Last Name", Key: "last_name", Value: func(a domain.Application) any { return a.LastName }},
		{Header: "Mobile", Key: "mobile", Value: func(a domain.Application) any { return a.Mobile }},
		{Header: "CPR", Key: "cpr", Value: func(a domain.Application) any { return a.CPR }},
		{Header: "Submitted Date", Key: "date_submitted", Type: export.TypeDate,
			Value: func(a domain.Application) any { return a.DateSubmitted }},
		{Header: "Completed", Key: "application_status",
			Value: func(a domain.Application) any { return string(a.ApplicationStatus) }},
	}
	if role == domain.RoleAdmin || role == domain.RoleSalesCoach {
		columns = append(columns, view.Column[domain.Application]{
			Header: "Sales Agent", Key: "sales_agent_name",
			Value: func(a domain.Application) any { return a.SalesAgentName },
		})
	}

	filters := []filter.Definition[domain.Application]{
		{
			Key: "application_status", Title: "Completed", Kind: filter.KindSelect,
			Options: []filter.Option{
				{Value: "completed", Label: "Completed"},
				{Value: "incomplete", Label: "Not Completed"},
			},
			Value: func(a domain.Application) any { return string(a.ApplicationStatus) },
		},
		{
			Key: "date_submitted", Title: "Date Submitted", Kind: filter.KindDateRange,
			Value: func(a domain.Application) any { return a.DateSubmitted },
		},
	}

	exportFetch := func(ctx context.Context) []byte {
		switch role {
		case domain.RoleAdmin:
			return d.Applications.ExportAll(ctx, d.token())
		case domain.RoleSalesCoach:
			return d.Applications.ExportForCoach(ctx, d.token())
		default:
			return d.Applications.Export(ctx, d.token())
		}
	}

	cfg := view.Config[domain.Application]{
		Title:   "Applications",
		Fetch:   fetch,
		Columns: columns,
		Filters: filters,
		Dialog:  NewApplicationDialog(d),
		OnDelete: func(ctx context.Context, a domain.Application) bool {
			if !d.Applications.Delete(ctx, d.token(), a.ID) {
				d.Notify.Error("An error occurred", "Please try again later.")
				return false
			}
			d.Notify.Success("Application deleted", "The application has been successfully deleted.")
			return true
		},
		ToggleComplete: true,
		OnComplete: func(ctx context.Context, a domain.Application) bool {
			if !d.Applications.MarkCompleted(ctx, d.token(), a.ID) {
				d.Notify.Error("An error occurred", "Please try again later.")
				return false
			}
			d.Notify.Success("Application marked as completed",
				"The application has been successfully marked as completed.")
			return true
		},
		OnIncomplete: func(ctx context.Context, a domain.Application) bool {
			if !d.Applications.MarkIncomplete(ctx, d.token(), a.ID) {
				d.Notify.Error("An error occurred", "Please try again later.")
				return false
			}
			d.Notify.Success("Application marked as incomplete",
				"The application has been successfully marked as incomplete.")
			return true
		},
		ExportFetch: exportFetch,
		ExportName:  "application_export.csv",
		Readonly:    role == domain.RoleAdmin || role == domain.RoleSalesCoach,
	}

	return view.New(cfg, d.Cache, d.Log)
}

// ApplicationDialog is the create/edit form for applications.
type ApplicationDialog struct {
	d Deps

	mu       sync.Mutex
	open     bool
	editMode bool
	entityID int

	// Form is the editable state; drivers populate it before Submit.
	Form domain.NewApplication
}

func NewApplicationDialog(d Deps) *ApplicationDialog {
	return &ApplicationDialog{d: d}
}

func (dl *ApplicationDialog) Open(entity *domain.Application, editMode bool) {
	dl.mu.Lock()
	defer dl.mu.Unlock()
	dl.open = true
	dl.editMode = editMode
	if entity != nil {
		dl.entityID = entity.ID
		dl.Form = domain.NewApplication{
			FirstName:         entity.FirstName,
			LastName:          entity.LastName,
			Mobile:            entity.Mobile,
			CPR:               entity.CPR,
			ApplicationStatus: entity.ApplicationStatus,
			DateSubmitted:     entity.DateSubmitted,
		}
		return
	}
	dl.entityID = 0
	dl.Form = domain.NewApplication{
		ApplicationStatus: domain.ApplicationIncomplete,
		DateSubmitted:     time.Now().UTC().Format(time.RFC3339),
	}
}

func (dl *ApplicationDialog) Close() {
	dl.mu.Lock()
	defer dl.mu.Unlock()
	dl.open = false
}

func (dl *ApplicationDialog) IsOpen() bool {
	dl.mu.Lock()
	defer dl.mu.Unlock()
	return dl.open
}

func (dl *ApplicationDialog) Submit(ctx context.Context) error {
	dl.mu.Lock()
	form, edit, id := dl.Form, dl.editMode, dl.entityID
	dl.mu.Unlock()

	if err := checkForm(form); err != nil {
		return err
	}

	ok := false
	if edit {
		ok = dl.d.Applications.Update(ctx, dl.d.token(), id, form)
	} else {
		ok = dl.d.Applications.Create(ctx, dl.d.token(), form)
	}
	if !ok {
		dl.d.Notify.Error("An error occurred", "Please try again later.")
		return domain.ErrUnavailable
	}

	if edit {
		dl.d.Notify.Success("Application updated", "The application has been successfully updated.")
	} else {
		dl.d.Notify.Success("Application added", "The application has been successfully added.")
	}
	return nil
}
