package api

import (
	"net/http"

	"github.com/savasana-io/savasana/internal/auth"
	"github.com/savasana-io/savasana/internal/store"
)

func (api *Api) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	user, err := api.Store.GetUserByID(id)
	if err == store.ErrNotFound {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to get user")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// DeleteUserHandler deletes an account. A user may only delete their own;
// the admin-side restriction is enforced in the client views, this check is
// the server-side boundary.
func (api *Api) DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	claims, ok := auth.GetUserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if claims.UserID != id {
		respondError(w, http.StatusForbidden, "Cannot delete another user's account")
		return
	}

	err := api.Store.DeleteUser(id)
	if err == store.ErrNotFound {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	w.WriteHeader(http.StatusOK)
}
