package views

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savasana-io/savasana/internal/models"
	"github.com/savasana-io/savasana/internal/sessionstate"
)

func TestLoginViewSubmitEnablement(t *testing.T) {
	v := NewLoginView(&fakeAuthAPI{}, sessionstate.NewHolder(), &fakeNavigator{})

	assert.False(t, v.CanSubmit())

	v.Form.Set("password", "test!1234")
	assert.False(t, v.CanSubmit())

	v.Form.Set("email", "not-an-email")
	assert.False(t, v.CanSubmit())

	v.Form.Set("email", "yoga@studio.com")
	assert.True(t, v.CanSubmit())
}

func TestLoginViewSuccess(t *testing.T) {
	authAPI := &fakeAuthAPI{
		loginInfo: &models.SessionInformation{Token: "abc123", Type: "Bearer", ID: 1, Username: "yoga@studio.com", Admin: true},
	}
	holder := sessionstate.NewHolder()
	router := &fakeNavigator{}
	v := NewLoginView(authAPI, holder, router)

	v.Form.Set("email", "yoga@studio.com")
	v.Form.Set("password", "test!1234")
	v.Submit(context.Background())

	require.Len(t, authAPI.loginCalls, 1)
	assert.Equal(t, "yoga@studio.com", authAPI.loginCalls[0].Email)
	assert.False(t, v.OnError)
	assert.True(t, holder.IsLogged())
	assert.Equal(t, "abc123", holder.SessionInformation().Token)
	assert.Equal(t, []string{RouteSessions}, router.routes)
}

func TestLoginViewFailureStaysPut(t *testing.T) {
	authAPI := &fakeAuthAPI{loginErr: errBoom}
	holder := sessionstate.NewHolder()
	router := &fakeNavigator{}
	v := NewLoginView(authAPI, holder, router)

	v.Form.Set("email", "yoga@studio.com")
	v.Form.Set("password", "wrong")
	v.Submit(context.Background())

	assert.True(t, v.OnError)
	assert.False(t, holder.IsLogged())
	assert.Empty(t, router.routes)

	// The next attempt resets the flag before it runs
	authAPI.loginErr = nil
	authAPI.loginInfo = &models.SessionInformation{Token: "abc123", Type: "Bearer", ID: 1}
	v.Submit(context.Background())
	assert.False(t, v.OnError)
	assert.True(t, holder.IsLogged())
}

func TestLoginViewInvalidFormNeverCallsAPI(t *testing.T) {
	authAPI := &fakeAuthAPI{}
	v := NewLoginView(authAPI, sessionstate.NewHolder(), &fakeNavigator{})

	v.Submit(context.Background())
	assert.Empty(t, authAPI.loginCalls)
}
