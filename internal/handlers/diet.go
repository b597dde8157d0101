package handlers

import (
	"encoding/json"
	"net/http"

	"fitlife/internal/middleware"
	"fitlife/internal/models"
	"fitlife/internal/service"
	"fitlife/internal/validate"
)

type DietHandler struct {
	svc *service.DietService
}

func NewDietHandler(svc *service.DietService) *DietHandler {
	return &DietHandler{svc: svc}
}

func (h *DietHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	var in validate.DietPlanInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	plan, err := h.svc.Create(r.Context(), identity.UserID, in)
	if err != nil {
		writeServiceError(w, err, "", "Failed to save diet plan")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Diet plan saved successfully",
		"planId":  plan.ID,
	})
}

func (h *DietHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	plans, err := h.svc.List(r.Context(), identity.UserID)
	if err != nil {
		writeServiceError(w, err, "", "Failed to retrieve diet plans")
		return
	}
	if plans == nil {
		plans = []*models.DietPlan{}
	}
	writeJSON(w, http.StatusOK, plans)
}
