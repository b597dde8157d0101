package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type User struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Provider     string    `db:"provider" json:"provider"` // credentials, google, github
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type BMIRecord struct {
	ID       string    `db:"id" json:"id"`
	UserID   string    `db:"user_id" json:"userId"`
	Height   float64   `db:"height" json:"height"` // cm
	Weight   float64   `db:"weight" json:"weight"` // kg
	BMI      float64   `db:"bmi" json:"bmi"`
	Category string    `db:"category" json:"category"`
	Date     time.Time `db:"date" json:"date"`
	Notes    string    `db:"notes" json:"notes,omitempty"`
}

type Meal struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fats        float64 `json:"fats"`
}

// Meals is stored as a single JSONB column; meals are embedded in their plan
// and never addressed individually.
type Meals []Meal

func (m Meals) Value() (driver.Value, error) {
	return json.Marshal(m)
}

func (m *Meals) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	case nil:
		*m = nil
		return nil
	}
	return errors.New("meals: unsupported scan source")
}

type DietPlan struct {
	ID             string    `db:"id" json:"id"`
	UserID         string    `db:"user_id" json:"userId"`
	Name           string    `db:"name" json:"name"`
	GoalType       string    `db:"goal_type" json:"goalType"` // weight_loss, weight_gain, maintenance
	TargetCalories float64   `db:"target_calories" json:"targetCalories"`
	Meals          Meals     `db:"meals" json:"meals"`
	Date           time.Time `db:"date" json:"date"`
	Notes          string    `db:"notes" json:"notes,omitempty"`
}

type FitnessActivity struct {
	ID           string    `db:"id" json:"id"`
	UserID       string    `db:"user_id" json:"userId"`
	ActivityType string    `db:"activity_type" json:"activityType"` // cardio, strength, flexibility, sports, other
	Name         string    `db:"name" json:"name"`
	Duration     int       `db:"duration" json:"duration"` // minutes
	Calories     int       `db:"calories" json:"calories"`
	Notes        string    `db:"notes" json:"notes,omitempty"`
	Completed    bool      `db:"completed" json:"completed"`
	Date         time.Time `db:"date" json:"date"`
}

type FitnessGoal struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userId"`
	Name      string    `db:"name" json:"name"`
	Target    float64   `db:"target" json:"target"`
	Unit      string    `db:"unit" json:"unit"` // free text: km, kg, days, ...
	Deadline  time.Time `db:"deadline" json:"deadline"`
	Progress  float64   `db:"progress" json:"progress"`
	Completed bool      `db:"completed" json:"completed"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
