// Package postgres implements store.Store on top of sqlx with the pgx driver.
package postgres

import (
	"github.com/jmoiron/sqlx"

	"fitlife/internal/store"
)

type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Users() store.Users           { return &users{db: s.db} }
func (s *Store) BMIRecords() store.BMIRecords { return &bmiRecords{db: s.db} }
func (s *Store) DietPlans() store.DietPlans   { return &dietPlans{db: s.db} }
func (s *Store) Activities() store.Activities { return &activities{db: s.db} }
func (s *Store) Goals() store.Goals           { return &goals{db: s.db} }
