package store

import (
	"context"
	"fmt"

	"quizbuilder/backend/models"
)

// AddResult records one attempt by userID on quizID.
func (s *Store) AddResult(ctx context.Context, quizID, userID uint, score float64) (*models.QuizResult, error) {
	result := models.QuizResult{QuizID: quizID, UserID: userID, Score: score}
	if err := s.DB.WithContext(ctx).Create(&result).Error; err != nil {
		return nil, fmt.Errorf("add result: %w", err)
	}
	return &result, nil
}

// ListResults returns the user's attempts on a quiz, newest first.
func (s *Store) ListResults(ctx context.Context, quizID, userID uint) ([]models.QuizResult, error) {
	var results []models.QuizResult
	err := s.DB.WithContext(ctx).
		Where("quiz_id = ? AND user_id = ?", quizID, userID).
		Order("created_at DESC, id DESC").
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("list results for quiz %d: %w", quizID, err)
	}
	if results == nil {
		results = []models.QuizResult{}
	}
	return results, nil
}

// Overview summarises a user's activity across all quizzes.
func (s *Store) Overview(ctx context.Context, userID uint) (*models.ProgressOverview, error) {
	db := s.DB.WithContext(ctx)
	var overview models.ProgressOverview

	if err := db.Model(&models.Quiz{}).Where("owner_id = ?", userID).Count(&overview.TotalQuizzes).Error; err != nil {
		return nil, fmt.Errorf("count quizzes: %w", err)
	}
	if err := db.Model(&models.QuizResult{}).Where("user_id = ?", userID).Count(&overview.TotalAttempts).Error; err != nil {
		return nil, fmt.Errorf("count attempts: %w", err)
	}

	if overview.TotalAttempts > 0 {
		var avg float64
		err := db.Model(&models.QuizResult{}).
			Where("user_id = ?", userID).
			Select("AVG(score)").
			Scan(&avg).Error
		if err != nil {
			return nil, fmt.Errorf("average score: %w", err)
		}
		overview.AverageScore = &avg
	}

	return &overview, nil
}
