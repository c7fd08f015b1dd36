package guards

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/savasana-io/savasana/internal/models"
	"github.com/savasana-io/savasana/internal/sessionstate"
)

// routeRecorder records every redirect a guard issues.
type routeRecorder struct {
	routes []string
}

func (r *routeRecorder) Navigate(route string) {
	r.routes = append(r.routes, route)
}

func loggedInHolder() *sessionstate.Holder {
	h := sessionstate.NewHolder()
	h.LogIn(&models.SessionInformation{Token: "token", Type: "Bearer", ID: 1})
	return h
}

func TestAuthGuard(t *testing.T) {
	t.Run("AllowsAuthenticated", func(t *testing.T) {
		router := &routeRecorder{}
		g := &AuthGuard{Session: loggedInHolder(), Router: router}

		assert.True(t, g.CanActivate())
		assert.Empty(t, router.routes)
	})

	t.Run("RedirectsAnonymousToLoginOnce", func(t *testing.T) {
		router := &routeRecorder{}
		g := &AuthGuard{Session: sessionstate.NewHolder(), Router: router}

		assert.False(t, g.CanActivate())
		assert.Equal(t, []string{"login"}, router.routes)
	})
}

func TestUnauthGuard(t *testing.T) {
	t.Run("AllowsAnonymous", func(t *testing.T) {
		router := &routeRecorder{}
		g := &UnauthGuard{Session: sessionstate.NewHolder(), Router: router}

		assert.True(t, g.CanActivate())
		assert.Empty(t, router.routes)
	})

	t.Run("RedirectsAuthenticatedToSessionsOnce", func(t *testing.T) {
		router := &routeRecorder{}
		g := &UnauthGuard{Session: loggedInHolder(), Router: router}

		assert.False(t, g.CanActivate())
		assert.Equal(t, []string{"sessions"}, router.routes)
	})
}
