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

// BMIService owns the bmi_records resource: create and list-own.
type BMIService struct {
	store store.Store
	log   *zap.Logger
}

func NewBMIService(s store.Store, log *zap.Logger) *BMIService {
	return &BMIService{store: s, log: log}
}

// Create validates the measurement, derives bmi and category server-side, and
// persists a record owned by userID. The stored bmi is always recomputed from
// height and weight; a client-supplied bmi or category is ignored.
func (s *BMIService) Create(ctx context.Context, userID string, in validate.BMIRecordInput) (*models.BMIRecord, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return nil, invalidInput(err)
	}

	bmi := health.ComputeBMI(in.Weight, in.Height)
	rec := &models.BMIRecord{
		ID:       uuid.New().String(),
		UserID:   userID,
		Height:   in.Height,
		Weight:   in.Weight,
		BMI:      bmi,
		Category: health.BMICategory(bmi),
		Date:     time.Now().UTC(),
		Notes:    in.Notes,
	}
	if err := s.store.BMIRecords().Create(ctx, rec); err != nil {
		s.log.Error("could not save bmi record", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("save bmi record: %w", err)
	}
	return rec, nil
}

// List returns the user's records, most recent first.
func (s *BMIService) List(ctx context.Context, userID string) ([]*models.BMIRecord, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	recs, err := s.store.BMIRecords().List(ctx, userID)
	if err != nil {
		s.log.Error("could not fetch bmi records", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("list bmi records: %w", err)
	}
	return recs, nil
}
