package handlers

import (
	"encoding/json"
	"net/http"

	"fitlife/internal/middleware"
	"fitlife/internal/models"
	"fitlife/internal/service"
	"fitlife/internal/validate"
)

type ActivityHandler struct {
	svc *service.ActivityService
}

func NewActivityHandler(svc *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	var in validate.ActivityInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	act, err := h.svc.Create(r.Context(), identity.UserID, in)
	if err != nil {
		writeServiceError(w, err, "", "Failed to save fitness activity")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Fitness activity saved successfully",
		"activityId": act.ID,
	})
}

func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	acts, err := h.svc.List(r.Context(), identity.UserID)
	if err != nil {
		writeServiceError(w, err, "", "Failed to retrieve fitness activities")
		return
	}
	if acts == nil {
		acts = []*models.FitnessActivity{}
	}
	writeJSON(w, http.StatusOK, acts)
}

// Delete removes the activity named by the id query parameter, owner-scoped.
func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	id := r.URL.Query().Get("id")
	if err := h.svc.Delete(r.Context(), identity.UserID, id); err != nil {
		writeServiceError(w, err,
			"Activity not found or not authorized to delete",
			"Failed to delete fitness activity")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Fitness activity deleted successfully",
	})
}
