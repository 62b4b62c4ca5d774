// Package store is the persistence layer for users, quizzes and quiz results.
package store

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrEmailTaken = errors.New("email already registered")
)

// Store wraps a gorm handle. Each call borrows a pooled connection for the
// duration of its query or transaction.
type Store struct {
	DB *gorm.DB
}

// New wraps an opened, migrated database.
func New(db *gorm.DB) *Store {
	return &Store{DB: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
