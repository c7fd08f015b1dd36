package api

import (
	"encoding/json"
	"net/http"

	"github.com/savasana-io/savasana/internal/auth"
	"github.com/savasana-io/savasana/internal/models"
	"github.com/savasana-io/savasana/internal/store"
)

// LoginHandler authenticates a user and returns the session information the
// client holds for the rest of the page session.
func (api *Api) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := api.Store.GetUserByEmail(req.Email)
	if err != nil || !user.ValidatePassword(req.Password) {
		respondError(w, http.StatusUnauthorized, "Bad credentials")
		return
	}

	token, err := api.Tokens.GenerateToken(user)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create token")
		return
	}

	respondJSON(w, http.StatusOK, models.SessionInformation{
		Token:     token,
		Type:      "Bearer",
		ID:        user.ID,
		Username:  user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Admin:     user.Admin,
	})
}

// RegisterHandler creates a new non-admin account. It does not authenticate
// the new user; the client navigates to the login form afterwards.
func (api *Api) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !auth.ValidateEmail(req.Email) {
		respondError(w, http.StatusBadRequest, "Invalid email format")
		return
	}
	if !auth.ValidateName(req.FirstName) || !auth.ValidateName(req.LastName) {
		respondError(w, http.StatusBadRequest, "Invalid first or last name")
		return
	}
	if !auth.ValidatePassword(req.Password) {
		respondError(w, http.StatusBadRequest, "Password does not meet requirements")
		return
	}

	user, err := models.NewUser(req.Email, req.FirstName, req.LastName, req.Password, false)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	if err := api.Store.CreateUser(user); err != nil {
		if err == store.ErrDuplicateEmail {
			respondError(w, http.StatusBadRequest, "Error: Email is already taken!")
			return
		}
		respondError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	respondJSON(w, http.StatusOK, models.MessageResponse{Message: "User registered successfully!"})
}
