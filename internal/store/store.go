package store

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/savasana-io/savasana/internal/database"
	"github.com/savasana-io/savasana/internal/models"
)

var (
	ErrNotFound             = errors.New("record not found")
	ErrDuplicateEmail       = errors.New("email already taken")
	ErrAlreadyParticipating = errors.New("user already participates in session")
	ErrNotParticipating     = errors.New("user does not participate in session")
)

// Store handles all database operations. It is constructed with an open
// connection and injected into the API; there is no package-level state.
type Store struct {
	db     *sql.DB
	dbType string
}

// New creates a new store instance
func New(db *sql.DB, dbType string) *Store {
	return &Store{db: db, dbType: dbType}
}

func (s *Store) rebind(query string) string {
	return database.Rebind(s.dbType, query)
}

// insertID runs an INSERT and returns the generated id. lib/pq does not
// support LastInsertId, so the postgres path uses RETURNING.
func (s *Store) insertID(query string, args ...interface{}) (int64, error) {
	if s.dbType == "postgres" {
		var id int64
		err := s.db.QueryRow(s.rebind(query)+" RETURNING id", args...).Scan(&id)
		return id, err
	}

	result, err := s.db.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}

// --- Users ---

// CreateUser inserts the user and fills in its generated id.
func (s *Store) CreateUser(user *models.User) error {
	id, err := s.insertID(
		"INSERT INTO users (email, first_name, last_name, password, admin, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		user.Email, user.FirstName, user.LastName, user.Password, user.Admin, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	user.ID = id
	return nil
}

// GetUserByEmail retrieves a user by email
func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	user := &models.User{}
	err := s.db.QueryRow(
		s.rebind("SELECT id, email, first_name, last_name, password, admin, created_at, updated_at FROM users WHERE email = ?"),
		email,
	).Scan(&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.Password, &user.Admin, &user.CreatedAt, &user.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByID retrieves a user by id
func (s *Store) GetUserByID(id int64) (*models.User, error) {
	user := &models.User{}
	err := s.db.QueryRow(
		s.rebind("SELECT id, email, first_name, last_name, password, admin, created_at, updated_at FROM users WHERE id = ?"),
		id,
	).Scan(&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.Password, &user.Admin, &user.CreatedAt, &user.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user account. Participation rows cascade.
func (s *Store) DeleteUser(id int64) error {
	result, err := s.db.Exec(s.rebind("DELETE FROM users WHERE id = ?"), id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Teachers ---

// ListTeachers returns all teachers ordered by id.
func (s *Store) ListTeachers() ([]*models.Teacher, error) {
	rows, err := s.db.Query("SELECT id, first_name, last_name, created_at, updated_at FROM teachers ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teachers := []*models.Teacher{}
	for rows.Next() {
		t := &models.Teacher{}
		if err := rows.Scan(&t.ID, &t.FirstName, &t.LastName, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

// GetTeacherByID retrieves a teacher by id
func (s *Store) GetTeacherByID(id int64) (*models.Teacher, error) {
	t := &models.Teacher{}
	err := s.db.QueryRow(
		s.rebind("SELECT id, first_name, last_name, created_at, updated_at FROM teachers WHERE id = ?"),
		id,
	).Scan(&t.ID, &t.FirstName, &t.LastName, &t.CreatedAt, &t.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// --- Sessions ---

// ListSessions returns all sessions with their participant id sets.
func (s *Store) ListSessions() ([]*models.Session, error) {
	rows, err := s.db.Query("SELECT id, name, date, teacher_id, description, created_at, updated_at FROM sessions ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := []*models.Session{}
	byID := make(map[int64]*models.Session)
	for rows.Next() {
		sess := &models.Session{Users: []int64{}}
		if err := rows.Scan(&sess.ID, &sess.Name, &sess.Date, &sess.TeacherID, &sess.Description, &sess.CreatedAt, &sess.UpdatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
		byID[sess.ID] = sess
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	prows, err := s.db.Query("SELECT session_id, user_id FROM session_participants ORDER BY session_id, user_id")
	if err != nil {
		return nil, err
	}
	defer prows.Close()

	for prows.Next() {
		var sessionID, userID int64
		if err := prows.Scan(&sessionID, &userID); err != nil {
			return nil, err
		}
		if sess, ok := byID[sessionID]; ok {
			sess.Users = append(sess.Users, userID)
		}
	}
	return sessions, prows.Err()
}

// GetSessionByID retrieves one session with its participant ids.
func (s *Store) GetSessionByID(id int64) (*models.Session, error) {
	sess := &models.Session{Users: []int64{}}
	err := s.db.QueryRow(
		s.rebind("SELECT id, name, date, teacher_id, description, created_at, updated_at FROM sessions WHERE id = ?"),
		id,
	).Scan(&sess.ID, &sess.Name, &sess.Date, &sess.TeacherID, &sess.Description, &sess.CreatedAt, &sess.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		s.rebind("SELECT user_id FROM session_participants WHERE session_id = ? ORDER BY user_id"),
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var userID int64
		if err := rows.Scan(&userID); err != nil {
			return nil, err
		}
		sess.Users = append(sess.Users, userID)
	}
	return sess, rows.Err()
}

// CreateSession inserts a session and returns the stored copy.
func (s *Store) CreateSession(req *models.SessionRequest) (*models.Session, error) {
	now := time.Now()
	id, err := s.insertID(
		"INSERT INTO sessions (name, date, teacher_id, description, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		req.Name, req.Date, req.TeacherID, req.Description, now, now,
	)
	if err != nil {
		return nil, err
	}
	return s.GetSessionByID(id)
}

// UpdateSession overwrites the mutable fields and returns the stored copy.
func (s *Store) UpdateSession(id int64, req *models.SessionRequest) (*models.Session, error) {
	result, err := s.db.Exec(
		s.rebind("UPDATE sessions SET name = ?, date = ?, teacher_id = ?, description = ?, updated_at = ? WHERE id = ?"),
		req.Name, req.Date, req.TeacherID, req.Description, time.Now(), id,
	)
	if err != nil {
		return nil, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrNotFound
	}
	return s.GetSessionByID(id)
}

// DeleteSession removes a session. Participation rows cascade.
func (s *Store) DeleteSession(id int64) error {
	result, err := s.db.Exec(s.rebind("DELETE FROM sessions WHERE id = ?"), id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// AddParticipant adds a user to a session's participant set. The primary key
// on (session_id, user_id) keeps the set duplicate-free.
func (s *Store) AddParticipant(sessionID, userID int64) error {
	if _, err := s.GetSessionByID(sessionID); err != nil {
		return err
	}
	if _, err := s.GetUserByID(userID); err != nil {
		return err
	}

	_, err := s.db.Exec(
		s.rebind("INSERT INTO session_participants (session_id, user_id, created_at) VALUES (?, ?, ?)"),
		sessionID, userID, time.Now(),
	)
	if isUniqueViolation(err) {
		return ErrAlreadyParticipating
	}
	return err
}

// RemoveParticipant removes a user from a session's participant set.
func (s *Store) RemoveParticipant(sessionID, userID int64) error {
	if _, err := s.GetSessionByID(sessionID); err != nil {
		return err
	}

	result, err := s.db.Exec(
		s.rebind("DELETE FROM session_participants WHERE session_id = ? AND user_id = ?"),
		sessionID, userID,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotParticipating
	}
	return nil
}
