package models

import "time"

// Quiz.Content is stored as an opaque string. It normally holds a JSON list of
// Question objects but nothing enforces that at write time.
type Quiz struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OwnerID     uint      `gorm:"index;not null" json:"owner_id"`
	Owner       *User     `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	Title       string    `gorm:"not null" json:"title"`
	Description *string   `json:"description"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}

// QuizResult is one recorded attempt. Rows are only ever appended.
type QuizResult struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	QuizID    uint      `gorm:"index:idx_quiz_results_quiz_user;not null" json:"quiz_id"`
	Quiz      *Quiz     `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"-"`
	UserID    uint      `gorm:"index:idx_quiz_results_quiz_user;not null" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Score     float64   `gorm:"not null" json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// Question is the shape the generator asks the model for.
type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   int      `json:"answer"`
}

// QuizSummary is a quiz annotated with the requesting user's best score.
type QuizSummary struct {
	Quiz
	BestScore *float64 `json:"best_score"`
}

// Owned is implemented by records that belong to a single user.
type Owned interface {
	OwnerUserID() uint
}

func (q *Quiz) OwnerUserID() uint { return q.OwnerID }

func (r *QuizResult) OwnerUserID() uint { return r.UserID }

// OwnedBy is the ownership policy shared by every owner-scoped endpoint.
func OwnedBy(record Owned, userID uint) bool {
	if record == nil || userID == 0 {
		return false
	}
	return record.OwnerUserID() == userID
}
