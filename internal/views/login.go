package views

import (
	"context"

	"github.com/savasana-io/savasana/internal/models"
	"github.com/savasana-io/savasana/internal/sessionstate"
)

// LoginView drives the login form. Field validation gates submission; no
// request leaves until the form is valid and Submit is called.
type LoginView struct {
	auth    AuthAPI
	session *sessionstate.Holder
	router  Navigator

	Form *Form

	// OnError is the generic error flag: any failed submission sets it,
	// the next submission resets it. The view renders it as a fixed
	// "An error occurred" message.
	OnError bool
}

// NewLoginView creates the view with its validation table.
func NewLoginView(auth AuthAPI, session *sessionstate.Holder, router Navigator) *LoginView {
	return &LoginView{
		auth:    auth,
		session: session,
		router:  router,
		Form: NewForm(map[string]Rule{
			"email":    ValidEmail,
			"password": Required,
		}),
	}
}

// CanSubmit reports whether the submit control is enabled.
func (v *LoginView) CanSubmit() bool {
	return v.Form.Valid()
}

// Submit sends the credentials. On success the session holder is populated
// and the view navigates to the session list; on any failure the view stays
// put with the generic error flag set.
func (v *LoginView) Submit(ctx context.Context) {
	if !v.CanSubmit() {
		return
	}
	v.OnError = false

	info, err := v.auth.Login(ctx, models.LoginRequest{
		Email:    v.Form.Get("email"),
		Password: v.Form.Get("password"),
	})
	if err != nil {
		v.OnError = true
		return
	}

	v.session.LogIn(info)
	v.router.Navigate(RouteSessions)
}
