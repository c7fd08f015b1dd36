// Package guards holds the navigation predicates evaluated before a route
// activates. A denial is not an error: it is a single, silent redirect.
package guards

import "github.com/savasana-io/savasana/internal/sessionstate"

// Navigator performs route changes. The real implementation is the app
// shell; tests substitute a recorder.
type Navigator interface {
	Navigate(route string)
}

const (
	loginRoute    = "login"
	sessionsRoute = "sessions"
)

// AuthGuard permits navigation only for authenticated users.
type AuthGuard struct {
	Session *sessionstate.Holder
	Router  Navigator
}

// CanActivate reports whether the navigation may proceed. On denial it
// redirects to the login route exactly once.
func (g *AuthGuard) CanActivate() bool {
	if g.Session.IsLogged() {
		return true
	}
	g.Router.Navigate(loginRoute)
	return false
}

// UnauthGuard permits navigation only for unauthenticated users.
type UnauthGuard struct {
	Session *sessionstate.Holder
	Router  Navigator
}

// CanActivate reports whether the navigation may proceed. On denial it
// redirects to the sessions list exactly once.
func (g *UnauthGuard) CanActivate() bool {
	if !g.Session.IsLogged() {
		return true
	}
	g.Router.Navigate(sessionsRoute)
	return false
}
