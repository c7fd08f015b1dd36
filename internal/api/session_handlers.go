package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/savasana-io/savasana/internal/models"
	"github.com/savasana-io/savasana/internal/store"
)

// parseIDParam parses a numeric URL parameter. Non-numeric ids are a bad
// request, not a not-found.
func parseIDParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (api *Api) validateSessionRequest(req *models.SessionRequest) (string, bool) {
	if req.Name == "" {
		return "Name is required", false
	}
	if req.Date.IsZero() {
		return "Date is required", false
	}
	if req.Description == "" {
		return "Description is required", false
	}
	if _, err := api.Store.GetTeacherByID(req.TeacherID); err != nil {
		return "Unknown teacher", false
	}
	return "", true
}

func (api *Api) ListSessionsHandler(w http.ResponseWriter, r *http.Request) {
	sessions, err := api.Store.ListSessions()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list sessions")
		return
	}
	respondJSON(w, http.StatusOK, sessions)
}

func (api *Api) GetSessionHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid session id")
		return
	}

	session, err := api.Store.GetSessionByID(id)
	if err == store.ErrNotFound {
		respondError(w, http.StatusNotFound, "Session not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to get session")
		return
	}
	respondJSON(w, http.StatusOK, session)
}

func (api *Api) CreateSessionHandler(w http.ResponseWriter, r *http.Request) {
	var req models.SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg, ok := api.validateSessionRequest(&req); !ok {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	session, err := api.Store.CreateSession(&req)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}
	respondJSON(w, http.StatusOK, session)
}

func (api *Api) UpdateSessionHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid session id")
		return
	}

	var req models.SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg, ok := api.validateSessionRequest(&req); !ok {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	session, err := api.Store.UpdateSession(id, &req)
	if err == store.ErrNotFound {
		respondError(w, http.StatusNotFound, "Session not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update session")
		return
	}
	respondJSON(w, http.StatusOK, session)
}

func (api *Api) DeleteSessionHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid session id")
		return
	}

	err := api.Store.DeleteSession(id)
	if err == store.ErrNotFound {
		respondError(w, http.StatusNotFound, "Session not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete session")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (api *Api) ParticipateHandler(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseIDParam(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid session id")
		return
	}
	userID, ok := parseIDParam(r, "userId")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	switch err := api.Store.AddParticipant(sessionID, userID); err {
	case nil:
		w.WriteHeader(http.StatusOK)
	case store.ErrNotFound:
		respondError(w, http.StatusNotFound, "Session or user not found")
	case store.ErrAlreadyParticipating:
		respondError(w, http.StatusBadRequest, "User already participates")
	default:
		respondError(w, http.StatusInternalServerError, "Failed to participate")
	}
}

func (api *Api) UnparticipateHandler(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseIDParam(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid session id")
		return
	}
	userID, ok := parseIDParam(r, "userId")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	switch err := api.Store.RemoveParticipant(sessionID, userID); err {
	case nil:
		w.WriteHeader(http.StatusOK)
	case store.ErrNotFound:
		respondError(w, http.StatusNotFound, "Session not found")
	case store.ErrNotParticipating:
		respondError(w, http.StatusBadRequest, "User does not participate")
	default:
		respondError(w, http.StatusInternalServerError, "Failed to unparticipate")
	}
}
