package views

import (
	"context"
	"sync"

	"github.com/apexsales/admin-console/internal/core/domain"
	"github.com/apexsales/admin-console/internal/view"
)

// Commissions builds the commissions screen. Admins see every commission;
// coaches see their agents' commissions.
func Commissions(role domain.Role, d Deps) *view.View[domain.Commission] {
	fetch := func(ctx context.Context) []domain.Commission {
		if role == domain.RoleAdmin {
			return d.Commissions.ListAll(ctx, d.token())
		}
		return d.Commissions.List(ctx, d.token())
	}

	columns := []view.Column[domain.Commission]{
		{Header: "Agent Name", Key: "agent_name", Value: func(c domain.Commission) any { return c.AgentName }},
		{Header: "Coach Name", Key: "coach_name", Value: func(c domain.Commission) any { return c.CoachName }},
		{Header: "Amount", Key: "amount", RightAligned: true, Value: func(c domain.Commission) any { return c.Amount }},
		{Header: "Status", Key: "commission_status",
			Value: func(c domain.Commission) any { return string(c.CommissionStatus) }},
	}

	cfg := view.Config[domain.Commission]{
		Title:   "Commissions",
		Fetch:   fetch,
		Columns: columns,
		Dialog:  NewCommissionDialog(d),
		OnDelete: func(ctx context.Context, c domain.Commission) bool {
			if !d.Commissions.Delete(ctx, d.token(), c.ID) {
				d.Notify.Error("An error occurred", "Please try again later.")
				return false
			}
			d.Notify.Success("Commission deleted successfully", "The commission has been successfully deleted.")
			return true
		},
		TogglePaid: true,
		OnPaid: func(ctx context.Context, c domain.Commission) bool {
			if !d.Commissions.MarkPaid(ctx, d.token(), c.ID) {
				d.Notify.Error("An error occurred", "Please try again later.")
				return false
			}
			d.Notify.Success("Commission marked as paid", "The commission has been successfully marked as paid.")
			return true
		},
		OnDue: func(ctx context.Context, c domain.Commission) bool {
			if !d.Commissions.MarkDue(ctx, d.token(), c.ID) {
				d.Notify.Error("An error occurred", "Please try again later.")
				return false
			}
			d.Notify.Success("Commission marked as due", "The commission has been successfully marked as due.")
			return true
		},
		ExportFetch: func(ctx context.Context) []byte {
			return d.Commissions.Export(ctx, d.token())
		},
		ExportName: "commissions_export.csv",
	}

	return view.New(cfg, d.Cache, d.Log)
}

// CommissionDialog is the create/edit form for commissions.
type CommissionDialog struct {
	d Deps

	mu       sync.Mutex
	open     bool
	editMode bool
	entityID int

	Form domain.NewCommission
}

func NewCommissionDialog(d Deps) *CommissionDialog {
	return &CommissionDialog{d: d}
}

func (dl *CommissionDialog) Open(entity *domain.Commission, editMode bool) {
	dl.mu.Lock()
	defer dl.mu.Unlock()
	dl.open = true
	dl.editMode = editMode
	if entity != nil {
		dl.entityID = entity.ID
		dl.Form = domain.NewCommission{
			SalesAgentID:     entity.SalesAgentID,
			Amount:           entity.Amount,
			CommissionStatus: entity.CommissionStatus,
		}
		return
	}
	dl.entityID = 0
	dl.Form = domain.NewCommission{CommissionStatus: domain.CommissionDue}
}

func (dl *CommissionDialog) Close() {
	dl.mu.Lock()
	defer dl.mu.Unlock()
	dl.open = false
}

func (dl *CommissionDialog) IsOpen() bool {
	dl.mu.Lock()
	defer dl.mu.Unlock()
	return dl.open
}

func (dl *CommissionDialog) Submit(ctx context.Context) error {
	dl.mu.Lock()
	form, edit, id := dl.Form, dl.editMode, dl.entityID
	dl.mu.Unlock()

	if err := checkForm(form); err != nil {
		return err
	}

	ok := false
	if edit {
		ok = dl.d.Commissions.Update(ctx, dl.d.token(), id, form)
	} else {
		ok = dl.d.Commissions.Create(ctx, dl.d.token(), form)
	}
	if !ok {
		dl.d.Notify.Error("An error occurred", "Please try again later.")
		return domain.ErrUnavailable
	}

	if edit {
		dl.d.Notify.Success("Commission updated", "The commission has been successfully updated.")
	} else {
		dl.d.Notify.Success("Commission added", "The commission has been successfully added.")
	}
	return nil
}
