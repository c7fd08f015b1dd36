package views

import (
	"context"

	"github.com/savasana-io/savasana/internal/models"
	"github.com/savasana-io/savasana/internal/sessionstate"
)

// ListView drives the session list. Every Load is a full re-fetch.
type ListView struct {
	sessions SessionAPI
	session  *sessionstate.Holder

	Sessions []*models.Session
	OnError  bool
}

// NewListView creates the list view.
func NewListView(sessions SessionAPI, session *sessionstate.Holder) *ListView {
	return &ListView{sessions: sessions, session: session}
}

// Load re-fetches all sessions from the server.
func (v *ListView) Load(ctx context.Context) error {
	v.OnError = false
	sessions, err := v.sessions.All(ctx)
	if err != nil {
		v.OnError = true
		return err
	}
	v.Sessions = sessions
	return nil
}

func (v *ListView) isAdmin() bool {
	info := v.session.SessionInformation()
	return info != nil && info.Admin
}

// CanCreate reports whether the top-level "Create" action is visible.
func (v *ListView) CanCreate() bool {
	return v.isAdmin()
}

// CanEdit reports whether the per-row "Edit" action is visible. Every role
// sees "Detail"; only admins see "Edit".
func (v *ListView) CanEdit() bool {
	return v.isAdmin()
}
