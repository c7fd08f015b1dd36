package api

import (
	"net/http"

	"github.com/savasana-io/savasana/internal/store"
)

func (api *Api) ListTeachersHandler(w http.ResponseWriter, r *http.Request) {
	teachers, err := api.Store.ListTeachers()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list teachers")
		return
	}
	respondJSON(w, http.StatusOK, teachers)
}

func (api *Api) GetTeacherHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid teacher id")
		return
	}

	teacher, err := api.Store.GetTeacherByID(id)
	if err == store.ErrNotFound {
		respondError(w, http.StatusNotFound, "Teacher not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to get teacher")
		return
	}
	respondJSON(w, http.StatusOK, teacher)
}
