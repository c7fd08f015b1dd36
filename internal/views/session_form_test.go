package views

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCreateForm(sessions *fakeSessionAPI) (*SessionFormView, *fakeNavigator, *fakeNotifier) {
	router := &fakeNavigator{}
	notifier := &fakeNotifier{}
	v := NewSessionFormView(sessions, &fakeTeacherAPI{teachers: defaultTeachers()}, router, notifier, 0)
	return v, router, notifier
}

func fillValid(v *SessionFormView) {
	v.Form.Set("name", "Morning flow")
	v.Form.Set("date", "2026-09-15")
	v.Form.Set("teacher_id", "1")
	v.Form.Set("description", "A relaxing class")
}

func TestSessionFormSubmitEnablement(t *testing.T) {
	v, _, _ := newCreateForm(newFakeSessionAPI())
	require.NoError(t, v.Load(context.Background()))

	assert.False(t, v.CanSubmit())

	// Field order does not matter, only the final values do
	v.Form.Set("description", "A relaxing class")
	v.Form.Set("teacher_id", "1")
	assert.False(t, v.CanSubmit())
	v.Form.Set("date", "2026-09-15")
	v.Form.Set("name", "Morning flow")
	assert.True(t, v.CanSubmit())

	// Clearing any field disables submission again
	v.Form.Set("name", "")
	assert.False(t, v.CanSubmit())
	v.Form.Set("name", "Morning flow")

	v.Form.Set("date", "not-a-date")
	assert.False(t, v.CanSubmit())
	v.Form.Set("date", "2026-09-15")

	// An unknown teacher id is invalid even though it is numeric
	v.Form.Set("teacher_id", "999")
	assert.False(t, v.CanSubmit())
}

func TestSessionFormCreate(t *testing.T) {
	sessions := newFakeSessionAPI()
	v, router, notifier := newCreateForm(sessions)
	require.NoError(t, v.Load(context.Background()))

	fillValid(v)
	require.NoError(t, v.Submit(context.Background()))

	require.Len(t, sessions.created, 1)
	assert.Equal(t, "Morning flow", sessions.created[0].Name)
	assert.Equal(t, "2026-09-15", sessions.created[0].Date.String())
	assert.Equal(t, int64(1), sessions.created[0].TeacherID)
	assert.Equal(t, []string{"Session created !"}, notifier.messages)
	assert.Equal(t, []string{RouteSessions}, router.routes)
}

func TestSessionFormEditPrepopulates(t *testing.T) {
	sessions := newFakeSessionAPI(morningFlow())
	router := &fakeNavigator{}
	notifier := &fakeNotifier{}
	v := NewSessionFormView(sessions, &fakeTeacherAPI{teachers: defaultTeachers()}, router, notifier, 4)

	require.NoError(t, v.Load(context.Background()))

	assert.Equal(t, "Morning flow", v.Form.Get("name"))
	assert.Equal(t, "2026-09-15", v.Form.Get("date"))
	assert.Equal(t, "1", v.Form.Get("teacher_id"))
	assert.True(t, v.CanSubmit())

	v.Form.Set("name", "Evening flow")
	v.Form.Set("teacher_id", "2")
	require.NoError(t, v.Submit(context.Background()))

	require.Contains(t, sessions.updated, int64(4))
	assert.Equal(t, "Evening flow", sessions.updated[4].Name)
	assert.Equal(t, int64(2), sessions.updated[4].TeacherID)
	assert.Equal(t, []string{"Session updated !"}, notifier.messages)
	assert.Equal(t, []string{RouteSessions}, router.routes)
}

func TestSessionFormInvalidNeverReachesNetwork(t *testing.T) {
	sessions := newFakeSessionAPI()
	v, router, notifier := newCreateForm(sessions)
	require.NoError(t, v.Load(context.Background()))

	require.NoError(t, v.Submit(context.Background()))

	assert.Empty(t, sessions.created)
	assert.Empty(t, notifier.messages)
	assert.Empty(t, router.routes)
}

func TestSessionFormSubmitFailure(t *testing.T) {
	sessions := newFakeSessionAPI()
	v, router, notifier := newCreateForm(sessions)
	require.NoError(t, v.Load(context.Background()))

	fillValid(v)
	sessions.err = errBoom
	assert.Error(t, v.Submit(context.Background()))

	assert.True(t, v.OnError)
	assert.Empty(t, notifier.messages)
	assert.Empty(t, router.routes)
}

func TestSessionFormLoadFailure(t *testing.T) {
	router := &fakeNavigator{}
	v := NewSessionFormView(newFakeSessionAPI(), &fakeTeacherAPI{err: errBoom}, router, &fakeNotifier{}, 0)

	assert.Error(t, v.Load(context.Background()))
	assert.True(t, v.OnError)
}
