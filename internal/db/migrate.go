package db

import (
	"context"

	"github.com/jmoiron/sqlx"
)

func RunMigrations(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL DEFAULT '',
    provider TEXT NOT NULL DEFAULT 'credentials',
    role TEXT NOT NULL DEFAULT 'user',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS bmi_records (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    height DOUBLE PRECISION NOT NULL CHECK (height BETWEEN 50 AND 300),
    weight DOUBLE PRECISION NOT NULL CHECK (weight BETWEEN 20 AND 500),
    bmi DOUBLE PRECISION NOT NULL,
    category TEXT NOT NULL,
    date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    notes TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_bmi_records_user_date ON bmi_records (user_id, date DESC);

CREATE TABLE IF NOT EXISTS diet_plans (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    goal_type TEXT NOT NULL CHECK (goal_type IN ('weight_loss', 'weight_gain', 'maintenance')),
    target_calories DOUBLE PRECISION NOT NULL CHECK (target_calories >= 500),
    meals JSONB NOT NULL,
    date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    notes TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_diet_plans_user_date ON diet_plans (user_id, date DESC);

CREATE TABLE IF NOT EXISTS fitness_activities (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    activity_type TEXT NOT NULL CHECK (activity_type IN ('cardio', 'strength', 'flexibility', 'sports', 'other')),
    name TEXT NOT NULL,
    duration INTEGER NOT NULL CHECK (duration >= 1),
    calories INTEGER NOT NULL CHECK (calories >= 0),
    notes TEXT NOT NULL DEFAULT '',
    completed BOOLEAN NOT NULL DEFAULT false,
    date TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_fitness_activities_user_date ON fitness_activities (user_id, date DESC);

CREATE TABLE IF NOT EXISTS fitness_goals (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    target DOUBLE PRECISION NOT NULL CHECK (target > 0),
    unit TEXT NOT NULL,
    deadline TIMESTAMPTZ NOT NULL,
    progress DOUBLE PRECISION NOT NULL DEFAULT 0,
    completed BOOLEAN NOT NULL DEFAULT false,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_fitness_goals_user_deadline ON fitness_goals (user_id, deadline ASC);
`
	_, err := db.ExecContext(context.Background(), schema)
	return err
}
