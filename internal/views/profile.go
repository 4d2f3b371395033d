package views

import (
	"context"
	"sync"

	"github.com/apexsales/admin-console/internal/core/domain"
)

// ProfileView is the authenticated user's own editable record, including
// bank details for commission payouts.
type ProfileView struct {
	d Deps

	mu      sync.Mutex
	loading bool
	form    domain.Profile
	loaded  bool
}

func NewProfileView(d Deps) *ProfileView {
	return &ProfileView{d: d}
}

// Load fetches the profile. A failed fetch leaves the form empty; the
// caller can retry by calling Load again (profile is not session-fatal,
// unlike the initial UserInfo load).
func (p *ProfileView) Load(ctx context.Context) {
	p.mu.Lock()
	p.loading = true
	p.mu.Unlock()

	prof := p.d.Users.Profile(ctx, p.d.token())

	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = false
	if prof != nil {
		p.form = *prof
		p.loaded = true
	}
}

// Form returns a copy of the current form state.
func (p *ProfileView) Form() (domain.Profile, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.form, p.loaded
}

// SetForm replaces the editable form state.
func (p *ProfileView) SetForm(form domain.Profile) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.form = form
}

// Submit saves the form. Failure surfaces as a notification, success as
// one too, mirroring every other mutation in the console.
func (p *ProfileView) Submit(ctx context.Context) bool {
	p.mu.Lock()
	form := p.form
	p.mu.Unlock()

	if !p.d.Users.UpdateProfile(ctx, p.d.token(), form) {
		p.d.Notify.Error("An error occurred", "Please check your details and try again.")
		return false
	}
	p.d.Notify.Success("Success", "Profile updated successfully")
	return true
}
