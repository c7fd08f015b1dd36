package views

import (
	"context"

	"github.com/savasana-io/savasana/internal/models"
	"github.com/savasana-io/savasana/internal/sessionstate"
)

// DetailState is the session detail view's lifecycle state.
type DetailState int

const (
	StateLoading DetailState = iota
	StateLoaded
	StateUpdating
)

// DetailView drives one session's detail page. Participation changes go
// through the server and back: mutate, then unconditionally re-fetch before
// the view settles.
type DetailView struct {
	sessions SessionAPI
	teachers TeacherAPI
	session  *sessionstate.Holder
	router   Navigator
	notifier Notifier

	SessionID int64
	State     DetailState
	Session   *models.Session
	Teacher   *models.Teacher
	OnError   bool
}

// NewDetailView creates the view for one session id.
func NewDetailView(sessions SessionAPI, teachers TeacherAPI, session *sessionstate.Holder, router Navigator, notifier Notifier, sessionID int64) *DetailView {
	return &DetailView{
		sessions:  sessions,
		teachers:  teachers,
		session:   session,
		router:    router,
		notifier:  notifier,
		SessionID: sessionID,
		State:     StateLoading,
	}
}

// Load fetches the session and then its teacher; the view is settled only
// once both responses are in.
func (v *DetailView) Load(ctx context.Context) error {
	v.State = StateLoading
	v.OnError = false

	session, err := v.sessions.Detail(ctx, v.SessionID)
	if err != nil {
		v.OnError = true
		return err
	}

	teacher, err := v.teachers.Detail(ctx, session.TeacherID)
	if err != nil {
		v.OnError = true
		return err
	}

	v.Session = session
	v.Teacher = teacher
	v.State = StateLoaded
	return nil
}

func (v *DetailView) currentUser() *models.SessionInformation {
	return v.session.SessionInformation()
}

// IsAdmin reports whether the current user is an admin.
func (v *DetailView) IsAdmin() bool {
	info := v.currentUser()
	return info != nil && info.Admin
}

// IsParticipating reports whether the current user is in the participant
// set of the loaded session.
func (v *DetailView) IsParticipating() bool {
	info := v.currentUser()
	if info == nil || v.Session == nil {
		return false
	}
	return v.Session.HasParticipant(info.ID)
}

// CanDelete reports whether the "Delete" control is visible.
func (v *DetailView) CanDelete() bool {
	return v.IsAdmin()
}

// ShowParticipate reports whether the "Participate" control is visible:
// non-admins who are not yet participants.
func (v *DetailView) ShowParticipate() bool {
	return !v.IsAdmin() && !v.IsParticipating()
}

// ShowUnparticipate reports whether the "Do not participate" control is
// visible: non-admins who already participate.
func (v *DetailView) ShowUnparticipate() bool {
	return !v.IsAdmin() && v.IsParticipating()
}

// Participate adds the current user to the session, then re-fetches.
func (v *DetailView) Participate(ctx context.Context) error {
	return v.mutateParticipation(ctx, v.sessions.Participate)
}

// Unparticipate removes the current user from the session, then re-fetches.
func (v *DetailView) Unparticipate(ctx context.Context) error {
	return v.mutateParticipation(ctx, v.sessions.Unparticipate)
}

func (v *DetailView) mutateParticipation(ctx context.Context, op func(ctx context.Context, sessionID, userID int64) error) error {
	info := v.currentUser()
	if info == nil {
		return nil
	}

	v.State = StateUpdating
	v.OnError = false
	if err := op(ctx, v.SessionID, info.ID); err != nil {
		v.OnError = true
		v.State = StateLoaded
		return err
	}
	return v.Load(ctx)
}

// Delete removes the session, shows the confirmation notice and navigates
// back to the list.
func (v *DetailView) Delete(ctx context.Context) error {
	v.OnError = false
	if err := v.sessions.Delete(ctx, v.SessionID); err != nil {
		v.OnError = true
		return err
	}

	v.notifier.Notify("Session deleted !")
	v.router.Navigate(RouteSessions)
	return nil
}
