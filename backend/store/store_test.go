package store

import (
	"context"
	"sync"
	"testing"

	"quizbuilder/backend/config"
	"quizbuilder/backend/models"
	"quizbuilder/backend/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	cfg := &config.Config{DatabaseURL: "sqlite://file:" + uuid.NewString() + "?mode=memory&cache=shared"}
	db, err := utils.InitDB(cfg, nil)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	return New(db)
}

func mustUser(t *testing.T, s *Store, email string) *models.User {
	t.Helper()
	user, err := s.CreateUser(context.Background(), email, "hash")
	require.NoError(t, err)
	return user
}

func mustQuiz(t *testing.T, s *Store, ownerID uint, title string) *models.Quiz {
	t.Helper()
	quiz := &models.Quiz{OwnerID: ownerID, Title: title, Content: "[]"}
	require.NoError(t, s.CreateQuiz(context.Background(), quiz))
	return quiz
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := mustUser(t, s, "a@example.com")
	assert.NotZero(t, first.ID)

	_, err := s.CreateUser(ctx, "a@example.com", "other")
	assert.ErrorIs(t, err, ErrEmailTaken)

	found, err := s.UserByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	_, err = s.UserByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateUserConcurrentDuplicatesReportEmailTaken(t *testing.T) {
	s := newTestStore(t)

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.CreateUser(context.Background(), "race@example.com", "hash")
		}(i)
	}
	wg.Wait()

	created := 0
	for _, err := range errs {
		if err == nil {
			created++
			continue
		}
		assert.ErrorIs(t, err, ErrEmailTaken)
	}
	assert.Equal(t, 1, created)
}

func TestUpdateProfileOnlyTouchesProvidedFields(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := mustUser(t, s, "a@example.com")

	name := "Ada"
	updated, err := s.UpdateProfile(ctx, user.ID, ProfileUpdate{FullName: &name})
	require.NoError(t, err)
	require.NotNil(t, updated.FullName)
	assert.Equal(t, "Ada", *updated.FullName)
	assert.Nil(t, updated.Avatar)

	avatar := "https://cdn.example.com/a.png"
	updated, err = s.UpdateProfile(ctx, user.ID, ProfileUpdate{Avatar: &avatar})
	require.NoError(t, err)
	assert.Equal(t, "Ada", *updated.FullName)
	assert.Equal(t, avatar, *updated.Avatar)

	_, err = s.UpdateProfile(ctx, 9999, ProfileUpdate{FullName: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListQuizzesReportsBestScore(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	owner := mustUser(t, s, "owner@example.com")
	other := mustUser(t, s, "other@example.com")

	scored := mustQuiz(t, s, owner.ID, "Capitals")
	unscored := mustQuiz(t, s, owner.ID, "Oceans")
	mustQuiz(t, s, other.ID, "Not mine")

	for _, score := range []float64{40.0, 85.0} {
		_, err := s.AddResult(ctx, scored.ID, owner.ID, score)
		require.NoError(t, err)
	}
	// Another user's attempt must not leak into the owner's best score.
	_, err := s.AddResult(ctx, scored.ID, other.ID, 100.0)
	require.NoError(t, err)

	list, err := s.ListQuizzesWithBestScore(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, scored.ID, list[0].ID)
	require.NotNil(t, list[0].BestScore)
	assert.Equal(t, 85.0, *list[0].BestScore)

	assert.Equal(t, unscored.ID, list[1].ID)
	assert.Nil(t, list[1].BestScore)
}

func TestDeleteQuizRemovesResults(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	owner := mustUser(t, s, "owner@example.com")
	quiz := mustQuiz(t, s, owner.ID, "Capitals")

	_, err := s.AddResult(ctx, quiz.ID, owner.ID, 50)
	require.NoError(t, err)

	require.NoError(t, s.DeleteQuiz(ctx, quiz.ID))

	_, err = s.QuizByID(ctx, quiz.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	results, err := s.ListResults(ctx, quiz.ID, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, results)

	assert.ErrorIs(t, s.DeleteQuiz(ctx, quiz.ID), ErrNotFound)
}

func TestListResultsNewestFirstAndOverview(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	owner := mustUser(t, s, "owner@example.com")
	quiz := mustQuiz(t, s, owner.ID, "Capitals")
	mustQuiz(t, s, owner.ID, "Oceans")

	empty, err := s.Overview(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), empty.TotalQuizzes)
	assert.Zero(t, empty.TotalAttempts)
	assert.Nil(t, empty.AverageScore)

	for _, score := range []float64{20, 60, 100} {
		_, err := s.AddResult(ctx, quiz.ID, owner.ID, score)
		require.NoError(t, err)
	}

	results, err := s.ListResults(ctx, quiz.ID, owner.ID)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, 100.0, results[0].Score)
	assert.Equal(t, 20.0, results[2].Score)

	overview, err := s.Overview(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), overview.TotalAttempts)
	require.NotNil(t, overview.AverageScore)
	assert.InDelta(t, 60.0, *overview.AverageScore, 0.0001)
}
