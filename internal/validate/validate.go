// Package validate defines the accepted shape of every inbound payload, one
// input struct per resource. Validation is fail-fast: the first violated
// constraint is returned as a human-readable message naming the field, and no
// further checks run. Unknown JSON fields are ignored by decoding; a
// client-supplied id, userId or creation timestamp is discarded by the
// services, never rejected here.
package validate

import (
	"errors"
	"net/mail"
	"time"
)

var goalTypes = map[string]bool{
	"weight_loss": true,
	"weight_gain": true,
	"maintenance": true,
}

var activityTypes = map[string]bool{
	"cardio":      true,
	"strength":    true,
	"flexibility": true,
	"sports":      true,
	"other":       true,
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in *RegisterInput) Validate() error {
	if len(in.Name) < 2 {
		return errors.New("Name must be at least 2 characters")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return errors.New("Invalid email address")
	}
	if len(in.Password) < 8 {
		return errors.New("Password must be at least 8 characters")
	}
	return nil
}

type BMIRecordInput struct {
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
	Notes  string  `json:"notes"`
}

func (in *BMIRecordInput) Validate() error {
	if in.Height < 50 {
		return errors.New("Height must be at least 50cm")
	}
	if in.Height > 300 {
		return errors.New("Height must be at most 300cm")
	}
	if in.Weight < 20 {
		return errors.New("Weight must be at least 20kg")
	}
	if in.Weight > 500 {
		return errors.New("Weight must be at most 500kg")
	}
	return nil
}

type MealInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fats        float64 `json:"fats"`
}

func (in *MealInput) Validate() error {
	if in.Name == "" {
		return errors.New("Meal name is required")
	}
	if in.Calories < 0 {
		return errors.New("Calories must be a positive number")
	}
	if in.Protein < 0 {
		return errors.New("Protein must be a positive number")
	}
	if in.Carbs < 0 {
		return errors.New("Carbs must be a positive number")
	}
	if in.Fats < 0 {
		return errors.New("Fats must be a positive number")
	}
	return nil
}

type DietPlanInput struct {
	Name           string      `json:"name"`
	GoalType       string      `json:"goalType"`
	TargetCalories float64     `json:"targetCalories"`
	Meals          []MealInput `json:"meals"`
	Notes          string      `json:"notes"`
}

func (in *DietPlanInput) Validate() error {
	if in.Name == "" {
		return errors.New("Diet plan name is required")
	}
	if !goalTypes[in.GoalType] {
		return errors.New("Goal type must be one of weight_loss, weight_gain, maintenance")
	}
	if in.TargetCalories < 500 {
		return errors.New("Target calories must be at least 500")
	}
	if len(in.Meals) < 1 {
		return errors.New("At least one meal is required")
	}
	for i := range in.Meals {
		if err := in.Meals[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

type ActivityInput struct {
	ActivityType string `json:"activityType"`
	Name         string `json:"name"`
	Duration     int    `json:"duration"`
	Calories     int    `json:"calories"`
	Notes        string `json:"notes"`
	Completed    bool   `json:"completed"`
}

func (in *ActivityInput) Validate() error {
	if !activityTypes[in.ActivityType] {
		return errors.New("Activity type must be one of cardio, strength, flexibility, sports, other")
	}
	if in.Name == "" {
		return errors.New("Activity name is required")
	}
	if in.Duration < 1 {
		return errors.New("Duration must be at least 1 minute")
	}
	if in.Calories < 0 {
		return errors.New("Calories must be a positive number")
	}
	return nil
}

type GoalInput struct {
	Name      string  `json:"name"`
	Target    float64 `json:"target"`
	Unit      string  `json:"unit"`
	Deadline  string  `json:"deadline"` // RFC 3339 or YYYY-MM-DD
	Progress  float64 `json:"progress"`
	Completed bool    `json:"completed"`
}

func (in *GoalInput) Validate() error {
	if in.Name == "" {
		return errors.New("Goal name is required")
	}
	if in.Target <= 0 {
		return errors.New("Target must be a positive number")
	}
	if in.Unit == "" {
		return errors.New("Unit is required")
	}
	if _, err := ParseDate(in.Deadline); err != nil {
		return errors.New("Deadline must be a valid date")
	}
	if in.Progress < 0 {
		return errors.New("Progress must be a positive number")
	}
	return nil
}

// DeadlineTime returns the parsed deadline. Call Validate first.
func (in *GoalInput) DeadlineTime() time.Time {
	t, _ := ParseDate(in.Deadline)
	return t
}

type GoalProgressInput struct {
	ID        string   `json:"id"`
	Progress  *float64 `json:"progress"`
	Completed *bool    `json:"completed"`
}

func (in *GoalProgressInput) Validate() error {
	if in.ID == "" {
		return errors.New("Goal ID is required")
	}
	if in.Progress == nil && in.Completed == nil {
		return errors.New("No updatable fields provided")
	}
	if in.Progress != nil && *in.Progress < 0 {
		return errors.New("Progress must be a positive number")
	}
	return nil
}

// ParseDate coerces a date-bearing string in either RFC 3339 or plain
// YYYY-MM-DD form.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
