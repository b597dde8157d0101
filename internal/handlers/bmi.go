package handlers

import (
	"encoding/json"
	"net/http"

	"fitlife/internal/middleware"
	"fitlife/internal/models"
	"fitlife/internal/service"
	"fitlife/internal/validate"
)

type BMIHandler struct {
	svc *service.BMIService
}

func NewBMIHandler(svc *service.BMIService) *BMIHandler {
	return &BMIHandler{svc: svc}
}

// Create saves a new BMI record for the authenticated user. The server
// derives bmi and category from height and weight and assigns the timestamp.
func (h *BMIHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	var in validate.BMIRecordInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	rec, err := h.svc.Create(r.Context(), identity.UserID, in)
	if err != nil {
		writeServiceError(w, err, "", "Failed to save BMI record")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "BMI record saved successfully",
		"recordId": rec.ID,
	})
}

// List returns all of the user's BMI records, most recent first.
func (h *BMIHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	recs, err := h.svc.List(r.Context(), identity.UserID)
	if err != nil {
		writeServiceError(w, err, "", "Failed to retrieve BMI records")
		return
	}
	if recs == nil {
		recs = []*models.BMIRecord{}
	}
	writeJSON(w, http.StatusOK, recs)
}
