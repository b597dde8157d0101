package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fitlife/internal/models"
	"fitlife/internal/store"
	"fitlife/internal/validate"
)

// GoalService owns the fitness_goals resource: create, list-own and the
// progress update. Progress and completed are the only mutable fields.
type GoalService struct {
	store store.Store
	log   *zap.Logger
}

func NewGoalService(s store.Store, log *zap.Logger) *GoalService {
	return &GoalService{store: s, log: log}
}

func (s *GoalService) Create(ctx context.Context, userID string, in validate.GoalInput) (*models.FitnessGoal, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return nil, invalidInput(err)
	}

	goal := &models.FitnessGoal{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      in.Name,
		Target:    in.Target,
		Unit:      in.Unit,
		Deadline:  in.DeadlineTime(),
		Progress:  in.Progress,
		Completed: in.Completed,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Goals().Create(ctx, goal); err != nil {
		s.log.Error("could not save fitness goal", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("save fitness goal: %w", err)
	}
	return goal, nil
}

func (s *GoalService) List(ctx context.Context, userID string) ([]*models.FitnessGoal, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	goals, err := s.store.Goals().List(ctx, userID)
	if err != nil {
		s.log.Error("could not fetch fitness goals", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("list fitness goals: %w", err)
	}
	return goals, nil
}

// UpdateProgress sets progress and/or completed on the caller's own goal.
// The completed flag is taken verbatim from the caller and never recomputed
// from progress vs target; nothing prevents marking a goal complete early or
// reopening it. Concurrent updates are last-write-wins.
func (s *GoalService) UpdateProgress(ctx context.Context, userID string, in validate.GoalProgressInput) error {
	if userID == "" {
		return ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return invalidInput(err)
	}
	err := s.store.Goals().UpdateProgress(ctx, userID, in.ID, in.Progress, in.Completed)
	if err != nil && err != store.ErrNotFound {
		s.log.Error("could not update fitness goal", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("update fitness goal: %w", err)
	}
	return err
}
