// Package storetest provides an in-memory store.Store for tests. It honors
// the same contract as the postgres implementation: owner-scoped
// delete/update, ErrNotFound on zero matches, date DESC / deadline ASC list
// ordering.
package storetest

import (
	"context"
	"errors"
	"sort"

	"fitlife/internal/models"
	"fitlife/internal/store"
)

// ErrUnavailable is what every write returns when FailWrites is set.
var ErrUnavailable = errors.New("storetest: persistence unavailable")

type Store struct {
	UsersData      []*models.User
	BMIRecordsData []*models.BMIRecord
	DietPlansData  []*models.DietPlan
	ActivitiesData []*models.FitnessActivity
	GoalsData      []*models.FitnessGoal

	// FailWrites simulates an unreachable persistence layer for create calls.
	FailWrites bool
}

func New() *Store { return &Store{} }

func (f *Store) Users() store.Users           { return &users{f} }
func (f *Store) BMIRecords() store.BMIRecords { return &bmiRecords{f} }
func (f *Store) DietPlans() store.DietPlans   { return &dietPlans{f} }
func (f *Store) Activities() store.Activities { return &activities{f} }
func (f *Store) Goals() store.Goals           { return &goals{f} }

type users struct{ p *Store }

func (u *users) Create(_ context.Context, user *models.User) error {
	if u.p.FailWrites {
		return ErrUnavailable
	}
	u.p.UsersData = append(u.p.UsersData, user)
	return nil
}

func (u *users) ByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range u.p.UsersData {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, store.ErrNotFound
}

type bmiRecords struct{ p *Store }

func (r *bmiRecords) Create(_ context.Context, rec *models.BMIRecord) error {
	if r.p.FailWrites {
		return ErrUnavailable
	}
	r.p.BMIRecordsData = append(r.p.BMIRecordsData, rec)
	return nil
}

func (r *bmiRecords) List(_ context.Context, userID string) ([]*models.BMIRecord, error) {
	var out []*models.BMIRecord
	for _, rec := range r.p.BMIRecordsData {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

type dietPlans struct{ p *Store }

func (r *dietPlans) Create(_ context.Context, plan *models.DietPlan) error {
	if r.p.FailWrites {
		return ErrUnavailable
	}
	r.p.DietPlansData = append(r.p.DietPlansData, plan)
	return nil
}

func (r *dietPlans) List(_ context.Context, userID string) ([]*models.DietPlan, error) {
	var out []*models.DietPlan
	for _, plan := range r.p.DietPlansData {
		if plan.UserID == userID {
			out = append(out, plan)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

type activities struct{ p *Store }

func (r *activities) Create(_ context.Context, act *models.FitnessActivity) error {
	if r.p.FailWrites {
		return ErrUnavailable
	}
	r.p.ActivitiesData = append(r.p.ActivitiesData, act)
	return nil
}

func (r *activities) List(_ context.Context, userID string) ([]*models.FitnessActivity, error) {
	var out []*models.FitnessActivity
	for _, act := range r.p.ActivitiesData {
		if act.UserID == userID {
			out = append(out, act)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *activities) Delete(_ context.Context, userID, id string) error {
	for i, act := range r.p.ActivitiesData {
		if act.ID == id && act.UserID == userID {
			r.p.ActivitiesData = append(r.p.ActivitiesData[:i], r.p.ActivitiesData[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type goals struct{ p *Store }

func (r *goals) Create(_ context.Context, goal *models.FitnessGoal) error {
	if r.p.FailWrites {
		return ErrUnavailable
	}
	r.p.GoalsData = append(r.p.GoalsData, goal)
	return nil
}

func (r *goals) List(_ context.Context, userID string) ([]*models.FitnessGoal, error) {
	var out []*models.FitnessGoal
	for _, goal := range r.p.GoalsData {
		if goal.UserID == userID {
			out = append(out, goal)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Deadline.Before(out[j].Deadline) })
	return out, nil
}

func (r *goals) UpdateProgress(_ context.Context, userID, id string, progress *float64, completed *bool) error {
	for _, goal := range r.p.GoalsData {
		if goal.ID == id && goal.UserID == userID {
			if progress != nil {
				goal.Progress = *progress
			}
			if completed != nil {
				goal.Completed = *completed
			}
			return nil
		}
	}
	return store.ErrNotFound
}
