package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fitlife/internal/health"
	"fitlife/internal/models"
	"fitlife/internal/store"
	"fitlife/internal/store/storetest"
	"fitlife/internal/validate"
)

// --- BMI ---

func validBMIInput() validate.BMIRecordInput {
	return validate.BMIRecordInput{Height: 170, Weight: 70, Notes: "morning weigh-in"}
}

func TestBMICreate_RoundTrip(t *testing.T) {
	fs := storetest.New()
	svc := NewBMIService(fs, zap.NewNop())

	created, err := svc.Create(context.Background(), "user-a", validBMIInput())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "user-a", created.UserID)
	assert.Equal(t, 24.2, created.BMI)
	assert.Equal(t, health.CategoryNormal, created.Category)
	assert.False(t, created.Date.IsZero())

	listed, err := svc.List(context.Background(), "user-a")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	// Cross-user isolation: another identity sees nothing.
	other, err := svc.List(context.Background(), "user-b")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestBMICreate_Unauthorized(t *testing.T) {
	fs := storetest.New()
	svc := NewBMIService(fs, zap.NewNop())

	_, err := svc.Create(context.Background(), "", validBMIInput())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, fs.BMIRecordsData, "unauthorized create must not write")

	_, err = svc.List(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestBMICreate_InvalidInputWritesNothing(t *testing.T) {
	fs := storetest.New()
	svc := NewBMIService(fs, zap.NewNop())

	in := validBMIInput()
	in.Height = 10
	_, err := svc.Create(context.Background(), "user-a", in)

	var ie *InvalidInputError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "Height must be at least 50cm", ie.Message)
	assert.Empty(t, fs.BMIRecordsData)
}

func TestBMICreate_StoreFailure(t *testing.T) {
	fs := storetest.New()
	fs.FailWrites = true
	svc := NewBMIService(fs, zap.NewNop())

	_, err := svc.Create(context.Background(), "user-a", validBMIInput())
	require.Error(t, err)
	var ie *InvalidInputError
	assert.False(t, errors.As(err, &ie), "a store failure is not a client fault")
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

func TestBMIList_MostRecentFirst(t *testing.T) {
	fs := storetest.New()
	now := time.Now().UTC()
	fs.BMIRecordsData = []*models.BMIRecord{
		{ID: "old", UserID: "user-a", Date: now.Add(-48 * time.Hour)},
		{ID: "new", UserID: "user-a", Date: now},
		{ID: "mid", UserID: "user-a", Date: now.Add(-24 * time.Hour)},
	}
	svc := NewBMIService(fs, zap.NewNop())

	listed, err := svc.List(context.Background(), "user-a")
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, []string{"new", "mid", "old"}, []string{listed[0].ID, listed[1].ID, listed[2].ID})
}

// --- Diet plans ---

func TestDietCreate_RoundTrip(t *testing.T) {
	fs := storetest.New()
	svc := NewDietService(fs, zap.NewNop())

	in := validate.DietPlanInput{
		Name:           "Lean bulk",
		GoalType:       "weight_gain",
		TargetCalories: 3000,
		Meals: []validate.MealInput{
			{Name: "Breakfast", Description: "Eggs and toast", Calories: 600, Protein: 35, Carbs: 50, Fats: 25},
			{Name: "Lunch", Description: "Chicken and rice", Calories: 800, Protein: 50, Carbs: 90, Fats: 20},
		},
	}
	created, err := svc.Create(context.Background(), "user-a", in)
	require.NoError(t, err)
	assert.Equal(t, "user-a", created.UserID)
	require.Len(t, created.Meals, 2)
	assert.Equal(t, "Breakfast", created.Meals[0].Name)

	listed, err := svc.List(context.Background(), "user-a")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
}

func TestDietCreate_InvalidMeal(t *testing.T) {
	fs := storetest.New()
	svc := NewDietService(fs, zap.NewNop())

	in := validate.DietPlanInput{
		Name:           "Broken",
		GoalType:       "maintenance",
		TargetCalories: 2000,
		Meals:          []validate.MealInput{{Name: "", Calories: 100}},
	}
	_, err := svc.Create(context.Background(), "user-a", in)
	var ie *InvalidInputError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "Meal name is required", ie.Message)
	assert.Empty(t, fs.DietPlansData)
}

// --- Activities ---

func validActivityInput() validate.ActivityInput {
	return validate.ActivityInput{ActivityType: "cardio", Name: "Morning run", Duration: 30, Calories: 310, Completed: true}
}

func TestActivityCreate_KeepsClientCalories(t *testing.T) {
	svc := NewActivityService(storetest.New(), zap.NewNop())

	created, err := svc.Create(context.Background(), "user-a", validActivityInput())
	require.NoError(t, err)
	assert.Equal(t, 310, created.Calories)
}

func TestActivityCreate_EstimatesMissingCalories(t *testing.T) {
	svc := NewActivityService(storetest.New(), zap.NewNop())

	in := validActivityInput()
	in.Calories = 0
	created, err := svc.Create(context.Background(), "user-a", in)
	require.NoError(t, err)
	// cardio MET 8.0 x 70kg x 0.5h
	assert.Equal(t, 280, created.Calories)
}

func TestActivityDelete_OwnerScoped(t *testing.T) {
	fs := storetest.New()
	svc := NewActivityService(fs, zap.NewNop())

	created, err := svc.Create(context.Background(), "user-a", validActivityInput())
	require.NoError(t, err)

	// A different authenticated user gets NotFound, not success and not
	// Unauthorized.
	err = svc.Delete(context.Background(), "user-b", created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	require.Len(t, fs.ActivitiesData, 1, "record must survive a non-owner delete")

	require.NoError(t, svc.Delete(context.Background(), "user-a", created.ID))
	assert.Empty(t, fs.ActivitiesData)

	// Deleting again is a plain NotFound, never a crash.
	err = svc.Delete(context.Background(), "user-a", created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestActivityDelete_RequiresID(t *testing.T) {
	svc := NewActivityService(storetest.New(), zap.NewNop())
	err := svc.Delete(context.Background(), "user-a", "")
	var ie *InvalidInputError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "Activity ID is required", ie.Message)
}

// --- Goals ---

func validGoalInput() validate.GoalInput {
	return validate.GoalInput{Name: "Run 100km", Target: 100, Unit: "km", Deadline: "2026-12-31"}
}

func TestGoalCreate_Defaults(t *testing.T) {
	svc := NewGoalService(storetest.New(), zap.NewNop())

	created, err := svc.Create(context.Background(), "user-a", validGoalInput())
	require.NoError(t, err)
	assert.Equal(t, float64(0), created.Progress)
	assert.False(t, created.Completed)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, 2026, created.Deadline.Year())
}

func TestGoalList_SoonestDeadlineFirst(t *testing.T) {
	svc := NewGoalService(storetest.New(), zap.NewNop())

	for _, g := range []struct {
		name     string
		deadline string
	}{
		{"later", "2027-06-01"},
		{"soonest", "2026-10-01"},
		{"middle", "2026-12-31"},
	} {
		in := validGoalInput()
		in.Name = g.name
		in.Deadline = g.deadline
		_, err := svc.Create(context.Background(), "user-a", in)
		require.NoError(t, err)
	}

	listed, err := svc.List(context.Background(), "user-a")
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "soonest", listed[0].Name)
	assert.Equal(t, "middle", listed[1].Name)
	assert.Equal(t, "later", listed[2].Name)
}

func TestGoalUpdateProgress(t *testing.T) {
	fs := storetest.New()
	svc := NewGoalService(fs, zap.NewNop())

	created, err := svc.Create(context.Background(), "user-a", validGoalInput())
	require.NoError(t, err)

	progress := 42.5
	err = svc.UpdateProgress(context.Background(), "user-a", validate.GoalProgressInput{ID: created.ID, Progress: &progress})
	require.NoError(t, err)
	assert.Equal(t, 42.5, fs.GoalsData[0].Progress)
	assert.False(t, fs.GoalsData[0].Completed, "omitted completed stays untouched")

	// Completed is caller-asserted, even below target.
	completed := true
	err = svc.UpdateProgress(context.Background(), "user-a", validate.GoalProgressInput{ID: created.ID, Completed: &completed})
	require.NoError(t, err)
	assert.True(t, fs.GoalsData[0].Completed)
	assert.Equal(t, 42.5, fs.GoalsData[0].Progress, "omitted progress stays untouched")
}

func TestGoalUpdateProgress_OwnerScoped(t *testing.T) {
	fs := storetest.New()
	svc := NewGoalService(fs, zap.NewNop())

	created, err := svc.Create(context.Background(), "user-a", validGoalInput())
	require.NoError(t, err)

	progress := 99.0
	err = svc.UpdateProgress(context.Background(), "user-b", validate.GoalProgressInput{ID: created.ID, Progress: &progress})
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Equal(t, float64(0), fs.GoalsData[0].Progress)
}

func TestGoalUpdateProgress_NoFields(t *testing.T) {
	svc := NewGoalService(storetest.New(), zap.NewNop())
	err := svc.UpdateProgress(context.Background(), "user-a", validate.GoalProgressInput{ID: "some-goal"})
	var ie *InvalidInputError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "No updatable fields provided", ie.Message)
}

// --- Auth ---

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(storetest.New(), zap.NewNop())

	user, err := svc.Register(context.Background(), validate.RegisterInput{Name: "Jo", Email: "Jo@Example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "jo@example.com", user.Email, "email is normalized")
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.Equal(t, "credentials", user.Provider)

	got, err := svc.Login(context.Background(), "jo@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.Login(context.Background(), "jo@example.com", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	fs := storetest.New()
	svc := NewAuthService(fs, zap.NewNop())

	in := validate.RegisterInput{Name: "Jo", Email: "jo@example.com", Password: "secret123"}
	_, err := svc.Register(context.Background(), in)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), in)
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, fs.UsersData, 1)
}

func TestUpsertOAuthUser(t *testing.T) {
	fs := storetest.New()
	svc := NewAuthService(fs, zap.NewNop())

	first, err := svc.UpsertOAuthUser(context.Background(), "google", "Jo", "jo@example.com")
	require.NoError(t, err)
	assert.Equal(t, "google", first.Provider)
	assert.Empty(t, first.PasswordHash)

	// Second login with the same email reuses the account.
	second, err := svc.UpsertOAuthUser(context.Background(), "google", "Jo", "jo@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, fs.UsersData, 1)

	// OAuth-only accounts cannot log in with a password.
	_, err = svc.Login(context.Background(), "jo@example.com", "anything-here")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
