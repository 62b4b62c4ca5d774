package quizgen

import (
	"encoding/json"

	"quizbuilder/backend/models"
)

const DefaultQuestionCount = 5

var offlineSamples = []models.Question{
	{Question: "Which city is the capital of France?", Options: []string{"Berlin", "Paris", "Rome", "Madrid"}, Answer: 1},
	{Question: "Which planet is known as the Red Planet?", Options: []string{"Earth", "Mars", "Jupiter", "Venus"}, Answer: 1},
	{Question: "What is the largest ocean on Earth?", Options: []string{"Atlantic", "Indian", "Pacific", "Arctic"}, Answer: 2},
	{Question: "Which language is primarily spoken in Brazil?", Options: []string{"Spanish", "Portuguese", "English", "French"}, Answer: 1},
	{Question: "Which country has the largest population?", Options: []string{"India", "United States", "China", "Russia"}, Answer: 2},
}

// OfflineQuiz returns the first n canned questions in fixed order. It never
// returns more than the sample set holds.
func OfflineQuiz(n int) []json.RawMessage {
	n = questionCount(n)
	if n > len(offlineSamples) {
		n = len(offlineSamples)
	}

	out := make([]json.RawMessage, 0, n)
	for _, q := range offlineSamples[:n] {
		b, err := json.Marshal(q)
		if err != nil {
			continue
		}
		out = append(out, b)
	}
	return out
}

func questionCount(n int) int {
	if n <= 0 {
		return DefaultQuestionCount
	}
	return n
}
