package views

import (
	"context"
	"strconv"

	"github.com/savasana-io/savasana/internal/models"
)

// SessionFormView drives the create/edit session form. An EditID of zero
// means create mode; otherwise the form pre-populates from the fetched
// session. The submit control is enabled iff name, date, teacher and
// description are all valid, whatever order the fields were filled in.
type SessionFormView struct {
	sessions SessionAPI
	teachers TeacherAPI
	router   Navigator
	notifier Notifier

	EditID   int64
	Teachers []*models.Teacher
	Form     *Form
	OnError  bool
}

// NewSessionFormView creates the form view. Call Load before rendering.
func NewSessionFormView(sessions SessionAPI, teachers TeacherAPI, router Navigator, notifier Notifier, editID int64) *SessionFormView {
	v := &SessionFormView{
		sessions: sessions,
		teachers: teachers,
		router:   router,
		notifier: notifier,
		EditID:   editID,
	}
	v.Form = NewForm(map[string]Rule{
		"name":        Required,
		"date":        ValidDate,
		"teacher_id":  KnownID(v.knownTeacher),
		"description": Required,
	})
	return v
}

func (v *SessionFormView) knownTeacher(id int64) bool {
	for _, t := range v.Teachers {
		if t.ID == id {
			return true
		}
	}
	return false
}

// Load fetches the teacher list and, in edit mode, the session to
// pre-populate from.
func (v *SessionFormView) Load(ctx context.Context) error {
	v.OnError = false

	teachers, err := v.teachers.All(ctx)
	if err != nil {
		v.OnError = true
		return err
	}
	v.Teachers = teachers

	if v.EditID != 0 {
		session, err := v.sessions.Detail(ctx, v.EditID)
		if err != nil {
			v.OnError = true
			return err
		}
		v.Form.Set("name", session.Name)
		v.Form.Set("date", session.Date.String())
		v.Form.Set("teacher_id", strconv.FormatInt(session.TeacherID, 10))
		v.Form.Set("description", session.Description)
	}
	return nil
}

// CanSubmit reports whether the submit control is enabled.
func (v *SessionFormView) CanSubmit() bool {
	return v.Form.Valid()
}

// Submit creates or updates the session, shows the confirmation notice and
// navigates to the session list. Invalid forms never reach the network.
func (v *SessionFormView) Submit(ctx context.Context) error {
	if !v.CanSubmit() {
		return nil
	}
	v.OnError = false

	date, err := models.ParseDate(v.Form.Get("date"))
	if err != nil {
		v.OnError = true
		return err
	}
	teacherID, err := strconv.ParseInt(v.Form.Get("teacher_id"), 10, 64)
	if err != nil {
		v.OnError = true
		return err
	}

	req := &models.SessionRequest{
		Name:        v.Form.Get("name"),
		Date:        date,
		TeacherID:   teacherID,
		Description: v.Form.Get("description"),
	}

	if v.EditID != 0 {
		_, err = v.sessions.Update(ctx, v.EditID, req)
	} else {
		_, err = v.sessions.Create(ctx, req)
	}
	if err != nil {
		v.OnError = true
		return err
	}

	if v.EditID != 0 {
		v.notifier.Notify("Session updated !")
	} else {
		v.notifier.Notify("Session created !")
	}
	v.router.Navigate(RouteSessions)
	return nil
}
