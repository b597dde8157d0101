package handlers

import (
	"encoding/json"
	"net/http"

	"fitlife/internal/middleware"
	"fitlife/internal/models"
	"fitlife/internal/service"
	"fitlife/internal/validate"
)

type GoalHandler struct {
	svc *service.GoalService
}

func NewGoalHandler(svc *service.GoalService) *GoalHandler {
	return &GoalHandler{svc: svc}
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	var in validate.GoalInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	goal, err := h.svc.Create(r.Context(), identity.UserID, in)
	if err != nil {
		writeServiceError(w, err, "", "Failed to save fitness goal")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Fitness goal saved successfully",
		"goalId":  goal.ID,
	})
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	goals, err := h.svc.List(r.Context(), identity.UserID)
	if err != nil {
		writeServiceError(w, err, "", "Failed to retrieve fitness goals")
		return
	}
	if goals == nil {
		goals = []*models.FitnessGoal{}
	}
	writeJSON(w, http.StatusOK, goals)
}

// UpdateProgress mutates progress and completed on the caller's own goal;
// every other field is immutable through this endpoint.
func (h *GoalHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	var in validate.GoalProgressInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.svc.UpdateProgress(r.Context(), identity.UserID, in); err != nil {
		writeServiceError(w, err,
			"Goal not found or not authorized to update",
			"Failed to update fitness goal")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Fitness goal updated successfully",
	})
}
