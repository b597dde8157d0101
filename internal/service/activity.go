package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fitlife/internal/health"
	"fitlife/internal/models"
	"fitlife/internal/store"
	"fitlife/internal/validate"
)

// estimateWeightKg is the assumed body weight for MET calorie estimates when
// an activity arrives without a client-supplied calorie count.
const estimateWeightKg = 70

// ActivityService owns the fitness_activities resource: create, list-own and
// delete-own. Activities are never updated in place; the only mutation path
// is delete and recreate.
type ActivityService struct {
	store store.Store
	log   *zap.Logger
}

func NewActivityService(s store.Store, log *zap.Logger) *ActivityService {
	return &ActivityService{store: s, log: log}
}

func (s *ActivityService) Create(ctx context.Context, userID string, in validate.ActivityInput) (*models.FitnessActivity, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return nil, invalidInput(err)
	}

	calories := in.Calories
	if calories == 0 {
		calories = health.CaloriesBurned(in.ActivityType, in.Duration, estimateWeightKg)
	}
	act := &models.FitnessActivity{
		ID:           uuid.New().String(),
		UserID:       userID,
		ActivityType: in.ActivityType,
		Name:         in.Name,
		Duration:     in.Duration,
		Calories:     calories,
		Notes:        in.Notes,
		Completed:    in.Completed,
		Date:         time.Now().UTC(),
	}
	if err := s.store.Activities().Create(ctx, act); err != nil {
		s.log.Error("could not save fitness activity", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("save fitness activity: %w", err)
	}
	return act, nil
}

func (s *ActivityService) List(ctx context.Context, userID string) ([]*models.FitnessActivity, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	acts, err := s.store.Activities().List(ctx, userID)
	if err != nil {
		s.log.Error("could not fetch fitness activities", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("list fitness activities: %w", err)
	}
	return acts, nil
}

// Delete removes the activity only if it belongs to userID. A miss and a
// record owned by someone else both come back as store.ErrNotFound.
func (s *ActivityService) Delete(ctx context.Context, userID, id string) error {
	if userID == "" {
		return ErrUnauthorized
	}
	if id == "" {
		return &InvalidInputError{Message: "Activity ID is required"}
	}
	err := s.store.Activities().Delete(ctx, userID, id)
	if err != nil && err != store.ErrNotFound {
		s.log.Error("could not delete fitness activity", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("delete fitness activity: %w", err)
	}
	return err
}
