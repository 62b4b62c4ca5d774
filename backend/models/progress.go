package models

type ProgressOverview struct {
	TotalQuizzes  int64    `json:"total_quizzes"`
	TotalAttempts int64    `json:"total_attempts"`
	AverageScore  *float64 `json:"average_score"`
}
