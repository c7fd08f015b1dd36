package views

import (
	"context"

	"github.com/savasana-io/savasana/internal/models"
	"github.com/savasana-io/savasana/internal/sessionstate"
)

// MeView drives the account page: the authenticated user's own profile,
// with self-deletion for non-admins.
type MeView struct {
	users    UserAPI
	session  *sessionstate.Holder
	router   Navigator
	notifier Notifier

	User    *models.User
	OnError bool
}

// NewMeView creates the account view.
func NewMeView(users UserAPI, session *sessionstate.Holder, router Navigator, notifier Notifier) *MeView {
	return &MeView{
		users:    users,
		session:  session,
		router:   router,
		notifier: notifier,
	}
}

// Load fetches the authenticated user's profile by id.
func (v *MeView) Load(ctx context.Context) error {
	v.OnError = false

	info := v.session.SessionInformation()
	if info == nil {
		v.OnError = true
		return nil
	}

	user, err := v.users.Detail(ctx, info.ID)
	if err != nil {
		v.OnError = true
		return err
	}
	v.User = user
	return nil
}

// IsAdmin reports whether the admin badge is rendered.
func (v *MeView) IsAdmin() bool {
	return v.User != nil && v.User.Admin
}

// CanDelete reports whether the "delete my account" control is visible.
// Admins cannot self-delete through this view.
func (v *MeView) CanDelete() bool {
	return v.User != nil && !v.User.Admin
}

// Delete removes the account, shows the confirmation notice, clears the
// session and navigates to the application root.
func (v *MeView) Delete(ctx context.Context) error {
	v.OnError = false

	info := v.session.SessionInformation()
	if info == nil {
		return nil
	}

	if err := v.users.Delete(ctx, info.ID); err != nil {
		v.OnError = true
		return err
	}

	v.notifier.Notify("Your account has been deleted !")
	v.session.LogOut()
	v.router.Navigate(RouteRoot)
	return nil
}
