package views

import (
	"context"

	"github.com/savasana-io/savasana/internal/auth"
	"github.com/savasana-io/savasana/internal/models"
)

// RegisterView drives the registration form. Registration never
// authenticates the new user; on success it navigates to the login form.
type RegisterView struct {
	auth   AuthAPI
	router Navigator

	Form    *Form
	OnError bool
}

// NewRegisterView creates the view with its validation table.
func NewRegisterView(authAPI AuthAPI, router Navigator) *RegisterView {
	return &RegisterView{
		auth:   authAPI,
		router: router,
		Form: NewForm(map[string]Rule{
			"email":     ValidEmail,
			"firstName": LengthBetween(auth.NameMinLength, auth.NameMaxLength),
			"lastName":  LengthBetween(auth.NameMinLength, auth.NameMaxLength),
			"password":  LengthBetween(auth.PasswordMinLength, auth.PasswordMaxLength),
		}),
	}
}

// CanSubmit reports whether the submit control is enabled.
func (v *RegisterView) CanSubmit() bool {
	return v.Form.Valid()
}

// Submit sends the registration request and navigates to the login form on
// success. Any failure sets the generic error flag.
func (v *RegisterView) Submit(ctx context.Context) {
	if !v.CanSubmit() {
		return
	}
	v.OnError = false

	err := v.auth.Register(ctx, models.RegisterRequest{
		Email:     v.Form.Get("email"),
		FirstName: v.Form.Get("firstName"),
		LastName:  v.Form.Get("lastName"),
		Password:  v.Form.Get("password"),
	})
	if err != nil {
		v.OnError = true
		return
	}

	v.router.Navigate(RouteLogin)
}
