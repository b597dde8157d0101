package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"fitlife/internal/models"
	"fitlife/internal/store"
)

type bmiRecords struct {
	db *sqlx.DB
}

func (r *bmiRecords) Create(ctx context.Context, rec *models.BMIRecord) error {
	query := `INSERT INTO bmi_records (id, user_id, height, weight, bmi, category, date, notes)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.UserID, rec.Height, rec.Weight, rec.BMI, rec.Category, rec.Date, rec.Notes)
	return err
}

func (r *bmiRecords) List(ctx context.Context, userID string) ([]*models.BMIRecord, error) {
	var recs []*models.BMIRecord
	query := `SELECT * FROM bmi_records WHERE user_id=$1 ORDER BY date DESC`
	if err := r.db.SelectContext(ctx, &recs, query, userID); err != nil {
		return nil, err
	}
	return recs, nil
}

type dietPlans struct {
	db *sqlx.DB
}

func (r *dietPlans) Create(ctx context.Context, plan *models.DietPlan) error {
	query := `INSERT INTO diet_plans (id, user_id, name, goal_type, target_calories, meals, date, notes)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query,
		plan.ID, plan.UserID, plan.Name, plan.GoalType, plan.TargetCalories, plan.Meals, plan.Date, plan.Notes)
	return err
}

func (r *dietPlans) List(ctx context.Context, userID string) ([]*models.DietPlan, error) {
	var plans []*models.DietPlan
	query := `SELECT * FROM diet_plans WHERE user_id=$1 ORDER BY date DESC`
	if err := r.db.SelectContext(ctx, &plans, query, userID); err != nil {
		return nil, err
	}
	return plans, nil
}

type activities struct {
	db *sqlx.DB
}

func (r *activities) Create(ctx context.Context, act *models.FitnessActivity) error {
	query := `INSERT INTO fitness_activities (id, user_id, activity_type, name, duration, calories, notes, completed, date)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query,
		act.ID, act.UserID, act.ActivityType, act.Name, act.Duration, act.Calories, act.Notes, act.Completed, act.Date)
	return err
}

func (r *activities) List(ctx context.Context, userID string) ([]*models.FitnessActivity, error) {
	var acts []*models.FitnessActivity
	query := `SELECT * FROM fitness_activities WHERE user_id=$1 ORDER BY date DESC`
	if err := r.db.SelectContext(ctx, &acts, query, userID); err != nil {
		return nil, err
	}
	return acts, nil
}

func (r *activities) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM fitness_activities WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return store.ErrNotFound
	}
	return nil
}

type goals struct {
	db *sqlx.DB
}

func (r *goals) Create(ctx context.Context, goal *models.FitnessGoal) error {
	query := `INSERT INTO fitness_goals (id, user_id, name, target, unit, deadline, progress, completed, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query,
		goal.ID, goal.UserID, goal.Name, goal.Target, goal.Unit, goal.Deadline, goal.Progress, goal.Completed, goal.CreatedAt)
	return err
}

func (r *goals) List(ctx context.Context, userID string) ([]*models.FitnessGoal, error) {
	var gs []*models.FitnessGoal
	query := `SELECT * FROM fitness_goals WHERE user_id=$1 ORDER BY deadline ASC`
	if err := r.db.SelectContext(ctx, &gs, query, userID); err != nil {
		return nil, err
	}
	return gs, nil
}

func (r *goals) UpdateProgress(ctx context.Context, userID, id string, progress *float64, completed *bool) error {
	// COALESCE keeps the stored value for fields the caller omitted, so the
	// whole update stays a single owner-scoped statement.
	query := `UPDATE fitness_goals
	          SET progress = COALESCE($1, progress), completed = COALESCE($2, completed)
	          WHERE id=$3 AND user_id=$4`
	res, err := r.db.ExecContext(ctx, query, progress, completed, id, userID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return store.ErrNotFound
	}
	return nil
}
