package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwnedBy(t *testing.T) {
	quiz := &Quiz{ID: 7, OwnerID: 3}

	assert.True(t, OwnedBy(quiz, 3))
	assert.False(t, OwnedBy(quiz, 4))
	assert.False(t, OwnedBy(quiz, 0))
	assert.False(t, OwnedBy(nil, 3))

	result := &QuizResult{QuizID: 7, UserID: 5}
	assert.True(t, OwnedBy(result, 5))
	assert.False(t, OwnedBy(result, 3))
}
