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

// DietService owns the diet_plans resource: create and list-own.
type DietService struct {
	store store.Store
	log   *zap.Logger
}

func NewDietService(s store.Store, log *zap.Logger) *DietService {
	return &DietService{store: s, log: log}
}

func (s *DietService) Create(ctx context.Context, userID string, in validate.DietPlanInput) (*models.DietPlan, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return nil, invalidInput(err)
	}

	meals := make(models.Meals, len(in.Meals))
	for i, m := range in.Meals {
		meals[i] = models.Meal{
			Name:        m.Name,
			Description: m.Description,
			Calories:    m.Calories,
			Protein:     m.Protein,
			Carbs:       m.Carbs,
			Fats:        m.Fats,
		}
	}
	plan := &models.DietPlan{
		ID:             uuid.New().String(),
		UserID:         userID,
		Name:           in.Name,
		GoalType:       in.GoalType,
		TargetCalories: in.TargetCalories,
		Meals:          meals,
		Date:           time.Now().UTC(),
		Notes:          in.Notes,
	}
	if err := s.store.DietPlans().Create(ctx, plan); err != nil {
		s.log.Error("could not save diet plan", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("save diet plan: %w", err)
	}
	return plan, nil
}

func (s *DietService) List(ctx context.Context, userID string) ([]*models.DietPlan, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	plans, err := s.store.DietPlans().List(ctx, userID)
	if err != nil {
		s.log.Error("could not fetch diet plans", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("list diet plans: %w", err)
	}
	return plans, nil
}
