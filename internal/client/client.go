// Package client is the typed HTTP client for the savasana API. Each call is
// a single-shot request/response: it resolves or fails exactly once, there
// are no retries and no local caching.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/savasana-io/savasana/internal/models"
)

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error: status %d", e.StatusCode)
}

// Client issues typed calls against the API base URL. Authentication is the
// transport's concern, not the client's: wire an AuthTransport into the
// http.Client to attach credentials.
type Client struct {
	baseURL string
	http    *http.Client

	Auth     *AuthService
	Sessions *SessionService
	Teachers *TeacherService
	Users    *UserService
}

// New creates a client for the given base URL. A nil httpClient uses
// http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
	c.Auth = &AuthService{c}
	c.Sessions = &SessionService{c}
	c.Teachers = &TeacherService{c}
	c.Users = &UserService{c}
	return c
}

// do issues one request. A non-nil body is JSON-encoded; a non-nil out is
// JSON-decoded from a 2xx response.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var msg models.MessageResponse
		if err := json.NewDecoder(resp.Body).Decode(&msg); err == nil {
			apiErr.Message = msg.Message
		}
		return apiErr
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// AuthService calls the /api/auth endpoints.
type AuthService struct {
	client *Client
}

// Login exchanges credentials for the session information.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.SessionInformation, error) {
	var info models.SessionInformation
	if err := s.client.do(ctx, http.MethodPost, "/api/auth/login", req, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Register creates an account. It does not authenticate the new user.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) error {
	return s.client.do(ctx, http.MethodPost, "/api/auth/register", req, nil)
}

// SessionService calls the /api/session endpoints.
type SessionService struct {
	client *Client
}

// All fetches every session.
func (s *SessionService) All(ctx context.Context) ([]*models.Session, error) {
	var sessions []*models.Session
	if err := s.client.do(ctx, http.MethodGet, "/api/session", nil, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// Detail fetches one session by id.
func (s *SessionService) Detail(ctx context.Context, id int64) (*models.Session, error) {
	var session models.Session
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/session/%d", id), nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Create creates a session and returns the stored copy.
func (s *SessionService) Create(ctx context.Context, req *models.SessionRequest) (*models.Session, error) {
	var session models.Session
	if err := s.client.do(ctx, http.MethodPost, "/api/session", req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Update overwrites a session and returns the stored copy.
func (s *SessionService) Update(ctx context.Context, id int64, req *models.SessionRequest) (*models.Session, error) {
	var session models.Session
	if err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/session/%d", id), req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Delete removes a session.
func (s *SessionService) Delete(ctx context.Context, id int64) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/session/%d", id), nil, nil)
}

// Participate adds a user to a session's participant set.
func (s *SessionService) Participate(ctx context.Context, sessionID, userID int64) error {
	return s.client.do(ctx, http.MethodPost, fmt.Sprintf("/api/session/%d/participate/%d", sessionID, userID), nil, nil)
}

// Unparticipate removes a user from a session's participant set.
func (s *SessionService) Unparticipate(ctx context.Context, sessionID, userID int64) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/session/%d/participate/%d", sessionID, userID), nil, nil)
}

// TeacherService calls the /api/teacher endpoints.
type TeacherService struct {
	client *Client
}

// All fetches every teacher.
func (s *TeacherService) All(ctx context.Context) ([]*models.Teacher, error) {
	var teachers []*models.Teacher
	if err := s.client.do(ctx, http.MethodGet, "/api/teacher", nil, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}

// Detail fetches one teacher by id.
func (s *TeacherService) Detail(ctx context.Context, id int64) (*models.Teacher, error) {
	var teacher models.Teacher
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/teacher/%d", id), nil, &teacher); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// UserService calls the /api/user endpoints.
type UserService struct {
	client *Client
}

// Detail fetches one user by id. The password is never present.
func (s *UserService) Detail(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/user/%d", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes a user account.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/user/%d", id), nil, nil)
}
