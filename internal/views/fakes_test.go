package views

import (
	"context"
	"errors"
	"time"

	"github.com/savasana-io/savasana/internal/models"
	"github.com/savasana-io/savasana/internal/sessionstate"
)

var errBoom = errors.New("boom")

type fakeNavigator struct {
	routes []string
}

func (n *fakeNavigator) Navigate(route string) {
	n.routes = append(n.routes, route)
}

type fakeNotifier struct {
	messages []string
}

func (n *fakeNotifier) Notify(message string) {
	n.messages = append(n.messages, message)
}

type fakeAuthAPI struct {
	loginInfo     *models.SessionInformation
	loginErr      error
	registerErr   error
	loginCalls    []models.LoginRequest
	registerCalls []models.RegisterRequest
}

func (f *fakeAuthAPI) Login(_ context.Context, req models.LoginRequest) (*models.SessionInformation, error) {
	f.loginCalls = append(f.loginCalls, req)
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginInfo, nil
}

func (f *fakeAuthAPI) Register(_ context.Context, req models.RegisterRequest) error {
	f.registerCalls = append(f.registerCalls, req)
	return f.registerErr
}

// fakeSessionAPI keeps sessions in memory so that a re-fetch after a
// mutation observes the new state, the way the real server behaves.
type fakeSessionAPI struct {
	byID map[int64]*models.Session
	err  error

	detailCalls int
	deleteCalls []int64
	created     []*models.SessionRequest
	updated     map[int64]*models.SessionRequest
}

func newFakeSessionAPI(sessions ...*models.Session) *fakeSessionAPI {
	f := &fakeSessionAPI{
		byID:    make(map[int64]*models.Session),
		updated: make(map[int64]*models.SessionRequest),
	}
	for _, s := range sessions {
		f.byID[s.ID] = s
	}
	return f
}

func (f *fakeSessionAPI) All(context.Context) ([]*models.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	sessions := []*models.Session{}
	for _, s := range f.byID {
		sessions = append(sessions, s)
	}
	return sessions, nil
}

func (f *fakeSessionAPI) Detail(_ context.Context, id int64) (*models.Session, error) {
	f.detailCalls++
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.byID[id]
	if !ok {
		return nil, errBoom
	}
	copied := *s
	copied.Users = append([]int64{}, s.Users...)
	return &copied, nil
}

func (f *fakeSessionAPI) Create(_ context.Context, req *models.SessionRequest) (*models.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, req)
	s := &models.Session{ID: int64(len(f.byID) + 1), Name: req.Name, Date: req.Date, TeacherID: req.TeacherID, Description: req.Description, Users: []int64{}}
	f.byID[s.ID] = s
	return s, nil
}

func (f *fakeSessionAPI) Update(_ context.Context, id int64, req *models.SessionRequest) (*models.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.updated[id] = req
	s, ok := f.byID[id]
	if !ok {
		return nil, errBoom
	}
	s.Name, s.Date, s.TeacherID, s.Description = req.Name, req.Date, req.TeacherID, req.Description
	return s, nil
}

func (f *fakeSessionAPI) Delete(_ context.Context, id int64) error {
	f.deleteCalls = append(f.deleteCalls, id)
	if f.err != nil {
		return f.err
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeSessionAPI) Participate(_ context.Context, sessionID, userID int64) error {
	if f.err != nil {
		return f.err
	}
	s := f.byID[sessionID]
	s.Users = append(s.Users, userID)
	return nil
}

func (f *fakeSessionAPI) Unparticipate(_ context.Context, sessionID, userID int64) error {
	if f.err != nil {
		return f.err
	}
	s := f.byID[sessionID]
	users := []int64{}
	for _, id := range s.Users {
		if id != userID {
			users = append(users, id)
		}
	}
	s.Users = users
	return nil
}

type fakeTeacherAPI struct {
	teachers []*models.Teacher
	err      error
}

func (f *fakeTeacherAPI) All(context.Context) ([]*models.Teacher, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.teachers, nil
}

func (f *fakeTeacherAPI) Detail(_ context.Context, id int64) (*models.Teacher, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, t := range f.teachers {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, errBoom
}

type fakeUserAPI struct {
	users   map[int64]*models.User
	err     error
	deleted []int64
}

func (f *fakeUserAPI) Detail(_ context.Context, id int64) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, errBoom
	}
	return u, nil
}

func (f *fakeUserAPI) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	delete(f.users, id)
	return nil
}

// --- Shared fixtures ---

func adminHolder() *sessionstate.Holder {
	h := sessionstate.NewHolder()
	h.LogIn(&models.SessionInformation{Token: "token", Type: "Bearer", ID: 1, Username: "yoga@studio.com", Admin: true})
	return h
}

func userHolder(id int64) *sessionstate.Holder {
	h := sessionstate.NewHolder()
	h.LogIn(&models.SessionInformation{Token: "token", Type: "Bearer", ID: id, Username: "user@example.com"})
	return h
}

func defaultTeachers() []*models.Teacher {
	return []*models.Teacher{
		{ID: 1, FirstName: "Margot", LastName: "DELAHAYE"},
		{ID: 2, FirstName: "Hélène", LastName: "THIERCELIN"},
	}
}

func morningFlow(users ...int64) *models.Session {
	if users == nil {
		users = []int64{}
	}
	return &models.Session{
		ID:          4,
		Name:        "Morning flow",
		Date:        models.NewDate(2026, time.September, 15),
		TeacherID:   1,
		Description: "A relaxing class",
		Users:       users,
	}
}
