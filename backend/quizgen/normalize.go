// Package quizgen turns a topic into a list of quiz questions, either through
// an external chat-completion API or from a fixed offline sample set.
package quizgen

import (
	"bytes"
	"encoding/json"
	"strings"

	"quizbuilder/backend/models"
)

const (
	unexpectedFormatQuestion = "AI returned unexpected format. See raw output first option"
	rawPreviewLength         = 250
)

// Normalize converts a free-form model reply into a list of question objects.
// It tries, in order: the whole text as a JSON list, then the span between the
// first '[' and the last ']', and finally wraps the raw text in a single
// placeholder question. Items from the first two steps are passed through
// without shape validation. The result is never empty.
func Normalize(raw string) []json.RawMessage {
	if items, ok := parseList(raw); ok {
		return items
	}

	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start != -1 && end != -1 && start < end {
		if items, ok := parseList(raw[start : end+1]); ok {
			return items
		}
	}

	return []json.RawMessage{unexpectedFormat(raw)}
}

// parseList accepts only a non-empty JSON array.
func parseList(text string) ([]json.RawMessage, bool) {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, false
	}
	if len(items) == 0 {
		return nil, false
	}
	return items, true
}

func unexpectedFormat(raw string) json.RawMessage {
	placeholder := models.Question{
		Question: unexpectedFormatQuestion,
		Options:  []string{truncateRunes(raw, rawPreviewLength), "", "", ""},
		Answer:   0,
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// A struct of strings and an int always encodes.
	_ = enc.Encode(placeholder)
	return json.RawMessage(bytes.TrimRight(buf.Bytes(), "\n"))
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
