package sessionstate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/savasana-io/savasana/internal/models"
)

func testInfo() *models.SessionInformation {
	return &models.SessionInformation{
		Token:    "token",
		Type:     "Bearer",
		ID:       1,
		Username: "yoga@studio.com",
		Admin:    true,
	}
}

func TestHolderStartsLoggedOut(t *testing.T) {
	h := NewHolder()

	assert.False(t, h.IsLogged())
	assert.Nil(t, h.SessionInformation())
}

func TestLogInAndLogOut(t *testing.T) {
	h := NewHolder()

	h.LogIn(testInfo())
	assert.True(t, h.IsLogged())
	assert.Equal(t, "yoga@studio.com", h.SessionInformation().Username)

	h.LogOut()
	assert.False(t, h.IsLogged())
	assert.Nil(t, h.SessionInformation())
}

func TestSubscribeReplaysCurrentValue(t *testing.T) {
	h := NewHolder()

	var got []bool
	h.Subscribe(func(logged bool) { got = append(got, logged) })
	// The current value arrives synchronously, before any change
	assert.Equal(t, []bool{false}, got)

	h.LogIn(testInfo())
	h.LogOut()
	assert.Equal(t, []bool{false, true, false}, got)
}

func TestSubscribeAfterLogIn(t *testing.T) {
	h := NewHolder()
	h.LogIn(testInfo())

	var got []bool
	h.Subscribe(func(logged bool) { got = append(got, logged) })
	assert.Equal(t, []bool{true}, got)
}

func TestCancelStopsNotifications(t *testing.T) {
	h := NewHolder()

	var got []bool
	sub := h.Subscribe(func(logged bool) { got = append(got, logged) })
	sub.Cancel()
	sub.Cancel() // safe to repeat

	h.LogIn(testInfo())
	assert.Equal(t, []bool{false}, got)
}

func TestMultipleSubscribers(t *testing.T) {
	h := NewHolder()

	var a, b int
	h.Subscribe(func(bool) { a++ })
	sub := h.Subscribe(func(bool) { b++ })

	h.LogIn(testInfo())
	sub.Cancel()
	h.LogOut()

	assert.Equal(t, 3, a) // replay + two changes
	assert.Equal(t, 2, b) // replay + one change before cancel
}
