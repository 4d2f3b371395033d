package views

import (
	"context"
	"sync"

	"github.com/apexsales/admin-console/internal/core/domain"
	"github.com/apexsales/admin-console/internal/export"
	"github.com/apexsales/admin-console/internal/view"
	"github.com/apexsales/admin-console/internal/view/filter"
)

// SalesAgents builds the agents screen. Admins see all agents with their
// coach; coaches see their own agents. The coach select filter needs the
// coach list, so the constructor takes a context to fetch the options.
func SalesAgents(ctx context.Context, role domain.Role, d Deps) *view.View[domain.User] {
	fetch := func(ctx context.Context) []domain.User {
		if role == domain.RoleSalesCoach {
			return d.Users.CoachAgents(ctx, d.token())
		}
		return d.Users.SalesAgents(ctx, d.token())
	}

	columns := []view.Column[domain.User]{
		{Header: "First Name", Key: "first_name", Value: func(u domain.User) any { return u.FirstName }},
		{Header: "Last Name", Key: "last_name", Value: func(u domain.User) any { return u.LastName }},
		{Header: "Email", Key: "email", Value: func(u domain.User) any { return u.Email }},
		{Header: "Mobile", Key: "mobile", Value: func(u domain.User) any { return u.Mobile }},
		{Header: "Date Joined", Key: "created_at", Type: export.TypeDate,
			Value: func(u domain.User) any { return u.CreatedAt }},
	}
	if role == domain.RoleAdmin {
		columns = append(columns, view.Column[domain.User]{
			Header: "Coach", Key: "coach_name", Value: func(u domain.User) any { return u.CoachName },
		})
	}
	columns = append(columns, view.Column[domain.User]{
		Header: "Status", Key: "status", Value: func(u domain.User) any { return u.Status },
	})

	filters := []filter.Definition[domain.User]{
		{Key: "first_name", Title: "First Name", Kind: filter.KindString,
			Value: func(u domain.User) any { return u.FirstName }},
		{Key: "last_name", Title: "Last Name", Kind: filter.KindString,
			Value: func(u domain.User) any { return u.LastName }},
		{Key: "status", Title: "Status", Kind: filter.KindSelect,
			Options: []filter.Option{
				{Value: "active", Label: "Active"},
				{Value: "frozen", Label: "Frozen"},
			},
			Value: func(u domain.User) any { return u.Status }},
	}
	if role == domain.RoleAdmin {
		filters = append(filters, filter.Definition[domain.User]{
			Key: "coach_name", Title: "Coach", Kind: filter.KindSelect,
			Options: coachOptions(ctx, d),
			Value:   func(u domain.User) any { return u.CoachName },
		})
	}
	filters = append(filters, filter.Definition[domain.User]{
		Key: "created_at", Title: "Date Joined", Kind: filter.KindDateRange,
		Value: func(u domain.User) any { return u.CreatedAt },
	})

	cfg := view.Config[domain.User]{
		Title:   "Sales Agents",
		Fetch:   fetch,
		Columns: columns,
		Filters: filters,
		Dialog:  NewSalesAgentDialog(d),
		OnDelete: func(ctx context.Context, u domain.User) bool {
			if !d.Users.DeleteSalesAgent(ctx, d.token(), u.ID) {
				d.Notify.Error("An error occurred", "Please try again later.")
				return false
			}
			d.Notify.Success("Sales Agent deleted successfully", "The sales agent has been successfully deleted.")
			return true
		},
		ExportFetch: func(ctx context.Context) []byte {
			return d.Users.ExportSalesAgents(ctx, d.token())
		},
		ExportName: "sales_agents_export.csv",
	}

	return view.New(cfg, d.Cache, d.Log)
}

// coachOptions turns the coach list into select options labelled by full
// name. A failed fetch yields an empty option set, not an error.
func coachOptions(ctx context.Context, d Deps) []filter.Option {
	coaches := d.Users.SalesCoaches(ctx, d.token())
	opts := make([]filter.Option, 0, len(coaches))
	for _, c := range coaches {
		opts = append(opts, filter.Option{Value: c.FullName(), Label: c.FullName()})
	}
	return opts
}

// SalesAgentDialog is the create/edit form for sales agents. The form's
// role is always sales_agent; the REST boundary pins it on create.
type SalesAgentDialog struct {
	d Deps

	mu       sync.Mutex
	open     bool
	editMode bool
	entityID int

	Form domain.NewUser
}

func NewSalesAgentDialog(d Deps) *SalesAgentDialog {
	return &SalesAgentDialog{d: d}
}

func (dl *SalesAgentDialog) Open(entity *domain.User, editMode bool) {
	dl.mu.Lock()
	defer dl.mu.Unlock()
	dl.open = true
	dl.editMode = editMode
	if entity != nil {
		dl.entityID = entity.ID
		dl.Form = domain.NewUser{
			FirstName: entity.FirstName,
			LastName:  entity.LastName,
			Email:     entity.Email,
			Mobile:    entity.Mobile,
			IsActive:  entity.IsActive,
		}
		return
	}
	dl.entityID = 0
	dl.Form = domain.NewUser{}
}

func (dl *SalesAgentDialog) Close() {
	dl.mu.Lock()
	defer dl.mu.Unlock()
	dl.open = false
}

func (dl *SalesAgentDialog) IsOpen() bool {
	dl.mu.Lock()
	defer dl.mu.Unlock()
	return dl.open
}

func (dl *SalesAgentDialog) Submit(ctx context.Context) error {
	dl.mu.Lock()
	form, edit, id := dl.Form, dl.editMode, dl.entityID
	dl.mu.Unlock()

	if err := checkForm(form); err != nil {
		return err
	}

	ok := false
	if edit {
		ok = dl.d.Users.UpdateSalesAgent(ctx, dl.d.token(), id, form)
	} else {
		ok = dl.d.Users.CreateSalesAgent(ctx, dl.d.token(), form)
	}
	if !ok {
		dl.d.Notify.Error("An error occurred", "Please try again later.")
		return domain.ErrUnavailable
	}

	if edit {
		dl.d.Notify.Success("Sales Agent updated", "The sales agent has been successfully updated.")
	} else {
		dl.d.Notify.Success("Sales Agent added", "The sales agent has been successfully added.")
	}
	return nil
}
