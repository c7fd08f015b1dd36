// Package views implements the client-side flows: login, register, session
// list/detail/form and the account page. Views depend on small capability
// interfaces so tests can substitute fakes directly, without a DI container.
//
// Every mutating action is followed by a full re-fetch of the affected
// resource before the view is considered settled; views never patch their
// own cached copies.
package views

import (
	"context"

	"github.com/savasana-io/savasana/internal/models"
)

// AuthAPI is the slice of the API client the auth forms need.
type AuthAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.SessionInformation, error)
	Register(ctx context.Context, req models.RegisterRequest) error
}

// SessionAPI is the slice of the API client the session views need.
type SessionAPI interface {
	All(ctx context.Context) ([]*models.Session, error)
	Detail(ctx context.Context, id int64) (*models.Session, error)
	Create(ctx context.Context, req *models.SessionRequest) (*models.Session, error)
	Update(ctx context.Context, id int64, req *models.SessionRequest) (*models.Session, error)
	Delete(ctx context.Context, id int64) error
	Participate(ctx context.Context, sessionID, userID int64) error
	Unparticipate(ctx context.Context, sessionID, userID int64) error
}

// TeacherAPI is the slice of the API client the session views need for
// teacher data.
type TeacherAPI interface {
	All(ctx context.Context) ([]*models.Teacher, error)
	Detail(ctx context.Context, id int64) (*models.Teacher, error)
}

// UserAPI is the slice of the API client the account view needs.
type UserAPI interface {
	Detail(ctx context.Context, id int64) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

// Navigator performs route changes.
type Navigator interface {
	Navigate(route string)
}

// Notifier shows a transient confirmation notice.
type Notifier interface {
	Notify(message string)
}

// Route names shared by the views.
const (
	RouteRoot     = "/"
	RouteLogin    = "login"
	RouteSessions = "sessions"
)
