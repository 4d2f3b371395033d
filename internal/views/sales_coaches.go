package views

import (
	"context"
	"sync"

	"github.com/apexsales/admin-console/internal/core/domain"
	"github.com/apexsales/admin-console/internal/export"
	"github.com/apexsales/admin-console/internal/view"
)

// SalesCoaches builds the coaches screen. Admin only; there is no filter
// bar on this view.
func SalesCoaches(d Deps) *view.View[domain.User] {
	columns := []view.Column[domain.User]{
		{Header: "First Name", Key: "first_name", Value: func(u domain.User) any { return u.FirstName }},
		{Header: "Last Name", Key: "last_name", Value: func(u domain.User) any { return u.LastName }},
		{Header: "Email", Key: "email", Value: func(u domain.User) any { return u.Email }},
		{Header: "Mobile", Key: "mobile", Value: func(u domain.User) any { return u.Mobile }},
		{Header: "Active", Key: "is_active", Type: export.TypeBool,
			Value: func(u domain.User) any { return u.IsActive }},
	}

	cfg := view.Config[domain.User]{
		Title: "Sales Coaches",
		Fetch: func(ctx context.Context) []domain.User {
			return d.Users.SalesCoaches(ctx, d.token())
		},
		Columns: columns,
		Dialog:  NewSalesCoachDialog(d),
		OnDelete: func(ctx context.Context, u domain.User) bool {
			if !d.Users.DeleteSalesCoach(ctx, d.token(), u.ID) {
				d.Notify.Error("An error occurred", "Please try again later.")
				return false
			}
			d.Notify.Success("Sales Coach deleted", "The sales coach has been successfully deleted.")
			return true
		},
		ExportFetch: func(ctx context.Context) []byte {
			return d.Users.ExportSalesCoaches(ctx, d.token())
		},
		ExportName: "sales_coaches_export.csv",
	}

	return view.New(cfg, d.Cache, d.Log)
}

// SalesCoachDialog is the create/edit form for sales coaches.
type SalesCoachDialog struct {
	d Deps

	mu       sync.Mutex
	open     bool
	editMode bool
	entityID int

	Form domain.NewUser
}

func NewSalesCoachDialog(d Deps) *SalesCoachDialog {
	return &SalesCoachDialog{d: d}
}

func (dl *SalesCoachDialog) Open(entity *domain.User, editMode bool) {
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

func (dl *SalesCoachDialog) Close() {
	dl.mu.Lock()
	defer dl.mu.Unlock()
	dl.open = false
}

func (dl *SalesCoachDialog) IsOpen() bool {
	dl.mu.Lock()
	defer dl.mu.Unlock()
	return dl.open
}

func (dl *SalesCoachDialog) Submit(ctx context.Context) error {
	dl.mu.Lock()
	form, edit, id := dl.Form, dl.editMode, dl.entityID
	dl.mu.Unlock()

	if err := checkForm(form); err != nil {
		return err
	}

	ok := false
	if edit {
		ok = dl.d.Users.UpdateSalesCoach(ctx, dl.d.token(), id, form)
	} else {
		ok = dl.d.Users.CreateSalesCoach(ctx, dl.d.token(), form)
	}
	if !ok {
		dl.d.Notify.Error("An error occurred", "Please try again later.")
		return domain.ErrUnavailable
	}

	if edit {
		dl.d.Notify.Success("Sales Coach updated", "The sales coach has been successfully updated.")
	} else {
		dl.d.Notify.Success("Sales Coach added", "The sales coach has been successfully added.")
	}
	return nil
}
