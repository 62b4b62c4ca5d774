package store

import (
	"context"
	"errors"
	"fmt"

	"quizbuilder/backend/models"

	"gorm.io/gorm"
)

// CreateUser inserts a user. The unique index on email decides duplicates:
// when two registrations for one address race, the loser gets ErrEmailTaken.
func (s *Store) CreateUser(ctx context.Context, email, hashedPassword string) (*models.User, error) {
	user := models.User{Email: email, HashedPassword: hashedPassword}

	err := s.DB.WithContext(ctx).Create(&user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

// UserByEmail returns ErrNotFound for an unknown address.
func (s *Store) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// UserByID returns ErrNotFound for an unknown id.
func (s *Store) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// ProfileUpdate holds the optional profile fields. Nil fields are left as-is.
type ProfileUpdate struct {
	FullName *string
	Avatar   *string
}

// UpdateProfile applies update to the user and returns the saved row.
func (s *Store) UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (*models.User, error) {
	user, err := s.UserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.FullName != nil {
		user.FullName = update.FullName
	}
	if update.Avatar != nil {
		user.Avatar = update.Avatar
	}

	if err := s.DB.WithContext(ctx).Save(user).Error; err != nil {
		return nil, fmt.Errorf("update user %d: %w", userID, err)
	}
	return user, nil
}
