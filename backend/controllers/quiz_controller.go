package controllers

import (
	"encoding/json"
	"errors"
	"strings"

	"quizbuilder/backend/config"
	"quizbuilder/backend/middleware"
	"quizbuilder/backend/models"
	"quizbuilder/backend/quizgen"
	"quizbuilder/backend/store"
	"quizbuilder/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type QuizController struct {
	Store     *store.Store
	Cfg       *config.Config
	Generator *quizgen.Generator
}

func NewQuizController(s *store.Store, cfg *config.Config, generator *quizgen.Generator) *QuizController {
	return &QuizController{Store: s, Cfg: cfg, Generator: generator}
}

type QuizRequest struct {
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	Prompt       *string `json:"prompt"`
	Content      *string `json:"content"`
	MaxQuestions *int    `json:"max_questions"`
}

type GenerateResponse struct {
	OK   bool              `json:"ok"`
	Data []json.RawMessage `json:"data"`
}

type CreateQuizResponse struct {
	OK     bool `json:"ok"`
	QuizID uint `json:"quiz_id"`
}

type ScoreRequest struct {
	Score *float64 `json:"score"`
}

// GenerateQuiz godoc
// @Summary Generate quiz questions for a topic
// @Description Not persisted. Always answers 200 with quiz-shaped data.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param input body QuizRequest true "Topic (prompt, or title when prompt is empty) and question count"
// @Success 200 {object} GenerateResponse
// @Router /generate-quiz [post]
func (qc *QuizController) GenerateQuiz(c *fiber.Ctx) error {
	var input QuizRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	topic := input.Title
	if input.Prompt != nil && strings.TrimSpace(*input.Prompt) != "" {
		topic = *input.Prompt
	}
	if strings.TrimSpace(topic) == "" {
		return utils.ValidationError(c, map[string]string{"title": "required"})
	}

	n := quizgen.DefaultQuestionCount
	if input.MaxQuestions != nil && *input.MaxQuestions > 0 {
		n = *input.MaxQuestions
	}

	data := qc.Generator.Generate(c.UserContext(), topic, n)
	return c.JSON(GenerateResponse{OK: true, Data: data})
}

// CreateQuiz godoc
// @Summary Save a quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Param input body QuizRequest true "Title, description and serialized questions"
// @Success 200 {object} CreateQuizResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /quizzes [post]
func (qc *QuizController) CreateQuiz(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var input QuizRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if strings.TrimSpace(input.Title) == "" {
		return utils.ValidationError(c, map[string]string{"title": "required"})
	}

	content := "[]"
	if input.Content != nil && *input.Content != "" {
		content = *input.Content
	}

	quiz := models.Quiz{
		OwnerID:     user.ID,
		Title:       input.Title,
		Description: input.Description,
		Content:     content,
	}
	if err := qc.Store.CreateQuiz(c.UserContext(), &quiz); err != nil {
		return err
	}

	return c.JSON(CreateQuizResponse{OK: true, QuizID: quiz.ID})
}

// ListQuizzes godoc
// @Summary List the caller's quizzes with their best score
// @Tags quizzes
// @Produce json
// @Success 200 {array} models.QuizSummary
// @Security ApiKeyAuth
// @Router /quizzes [get]
func (qc *QuizController) ListQuizzes(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	quizzes, err := qc.Store.ListQuizzesWithBestScore(c.UserContext(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(quizzes)
}

// GetQuiz godoc
// @Summary Get one of the caller's quizzes
// @Tags quizzes
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} models.Quiz
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /quizzes/{id} [get]
func (qc *QuizController) GetQuiz(c *fiber.Ctx) error {
	quiz, err := qc.ownedQuiz(c)
	if err != nil {
		return err
	}
	if quiz == nil {
		return utils.NotFound(c, "Not found")
	}
	return c.JSON(quiz)
}

// DeleteQuiz godoc
// @Summary Delete one of the caller's quizzes and its results
// @Tags quizzes
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} utils.OKResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /quizzes/{id} [delete]
func (qc *QuizController) DeleteQuiz(c *fiber.Ctx) error {
	quiz, err := qc.ownedQuiz(c)
	if err != nil {
		return err
	}
	if quiz == nil {
		return utils.NotFound(c, "Quiz not found")
	}

	err = qc.Store.DeleteQuiz(c.UserContext(), quiz.ID)
	if errors.Is(err, store.ErrNotFound) {
		return utils.NotFound(c, "Quiz not found")
	}
	if err != nil {
		return err
	}
	return utils.OK(c)
}

// SaveScore godoc
// @Summary Record an attempt on one of the caller's quizzes
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path int true "Quiz ID"
// @Param input body ScoreRequest true "Percentage score"
// @Success 200 {object} utils.OKResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /quizzes/{id}/score [post]
func (qc *QuizController) SaveScore(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	quiz, err := qc.ownedQuiz(c)
	if err != nil {
		return err
	}
	if quiz == nil {
		return utils.NotFound(c, "Quiz not found")
	}

	var input ScoreRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Score == nil {
		return utils.ValidationError(c, map[string]string{"score": "required"})
	}
	if *input.Score < 0 || *input.Score > 100 {
		return utils.ValidationError(c, map[string]string{"score": "must be between 0 and 100"})
	}

	if _, err := qc.Store.AddResult(c.UserContext(), quiz.ID, user.ID, *input.Score); err != nil {
		return err
	}
	return utils.OK(c)
}

// ListResults godoc
// @Summary Score history for one of the caller's quizzes, newest first
// @Tags quizzes
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {array} models.QuizResult
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /quizzes/{id}/results [get]
func (qc *QuizController) ListResults(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	quiz, err := qc.ownedQuiz(c)
	if err != nil {
		return err
	}
	if quiz == nil {
		return utils.NotFound(c, "Quiz not found")
	}

	results, err := qc.Store.ListResults(c.UserContext(), quiz.ID, user.ID)
	if err != nil {
		return err
	}
	return c.JSON(results)
}

// ownedQuiz loads the quiz named by the :id param. It returns (nil, nil) when
// the id is malformed, the quiz does not exist, or it belongs to someone else,
// so callers answer all three with the same 404.
func (qc *QuizController) ownedQuiz(c *fiber.Ctx) (*models.Quiz, error) {
	user := middleware.CurrentUser(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return nil, nil
	}

	quiz, err := qc.Store.QuizByID(c.UserContext(), uint(id))
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if !models.OwnedBy(quiz, user.ID) {
		return nil, nil
	}
	return quiz, nil
}
