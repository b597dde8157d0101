// Package store is the persistence boundary. Services depend only on the
// Store interface; the sqlx/Postgres implementation lives under
// internal/store/postgres.
package store

import (
	"context"
	"errors"

	"fitlife/internal/models"
)

// ErrNotFound is returned by owner-scoped lookups that match zero rows. A
// record that exists but belongs to another user is indistinguishable from
// one that does not exist.
var ErrNotFound = errors.New("record not found")

type Store interface {
	Users() Users
	BMIRecords() BMIRecords
	DietPlans() DietPlans
	Activities() Activities
	Goals() Goals
}

type Users interface {
	Create(ctx context.Context, u *models.User) error
	ByEmail(ctx context.Context, email string) (*models.User, error)
}

type BMIRecords interface {
	Create(ctx context.Context, rec *models.BMIRecord) error
	// List returns the user's records, most recent first.
	List(ctx context.Context, userID string) ([]*models.BMIRecord, error)
}

type DietPlans interface {
	Create(ctx context.Context, plan *models.DietPlan) error
	// List returns the user's plans, most recent first.
	List(ctx context.Context, userID string) ([]*models.DietPlan, error)
}

type Activities interface {
	Create(ctx context.Context, act *models.FitnessActivity) error
	// List returns the user's activities, most recent first.
	List(ctx context.Context, userID string) ([]*models.FitnessActivity, error)
	// Delete removes the activity matching both id and userID in a single
	// statement; ErrNotFound when nothing matched.
	Delete(ctx context.Context, userID, id string) error
}

type Goals interface {
	Create(ctx context.Context, goal *models.FitnessGoal) error
	// List returns the user's goals ordered by deadline, soonest due first.
	List(ctx context.Context, userID string) ([]*models.FitnessGoal, error)
	// UpdateProgress sets progress and/or completed on the goal matching both
	// id and userID; nil fields are left untouched. ErrNotFound when nothing
	// matched. Last write wins under concurrent updates.
	UpdateProgress(ctx context.Context, userID, id string, progress *float64, completed *bool) error
}
