package store

import (
	"context"
	"errors"
	"fmt"

	"quizbuilder/backend/models"

	"gorm.io/gorm"
)

// CreateQuiz inserts quiz and fills in its ID.
func (s *Store) CreateQuiz(ctx context.Context, quiz *models.Quiz) error {
	if err := s.DB.WithContext(ctx).Create(quiz).Error; err != nil {
		return fmt.Errorf("create quiz: %w", err)
	}
	return nil
}

// QuizByID does not check ownership; callers apply models.OwnedBy.
func (s *Store) QuizByID(ctx context.Context, id uint) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := s.DB.WithContext(ctx).First(&quiz, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &quiz, nil
}

// ListQuizzesWithBestScore returns the user's quizzes, oldest first, each
// annotated with the user's best recorded score on it.
func (s *Store) ListQuizzesWithBestScore(ctx context.Context, userID uint) ([]models.QuizSummary, error) {
	db := s.DB.WithContext(ctx)

	var quizzes []models.Quiz
	if err := db.Where("owner_id = ?", userID).Order("id ASC").Find(&quizzes).Error; err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}

	out := make([]models.QuizSummary, 0, len(quizzes))
	for _, quiz := range quizzes {
		best, err := s.BestScore(ctx, quiz.ID, userID)
		if err != nil {
			return nil, err
		}
		out = append(out, models.QuizSummary{Quiz: quiz, BestScore: best})
	}
	return out, nil
}

// BestScore is the highest score the user recorded on the quiz, or nil when
// there are no attempts. It takes the top row ordered by score; equal scores
// are not ordered by recency.
func (s *Store) BestScore(ctx context.Context, quizID, userID uint) (*float64, error) {
	var best models.QuizResult
	err := s.DB.WithContext(ctx).
		Where("quiz_id = ? AND user_id = ?", quizID, userID).
		Order("score DESC").
		Take(&best).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("best score for quiz %d: %w", quizID, err)
	}
	return &best.Score, nil
}

// DeleteQuiz removes the quiz and every result recorded against it.
func (s *Store) DeleteQuiz(ctx context.Context, id uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", id).Delete(&models.QuizResult{}).Error; err != nil {
			return fmt.Errorf("delete results of quiz %d: %w", id, err)
		}
		res := tx.Delete(&models.Quiz{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete quiz %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
