package quizgen

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// reply is one of the chat-completion response layouts we know how to read.
// Supporting another provider means adding a type that implements text.
type reply interface {
	text() string
}

// chatMessageReply: choices[0].message.content as a string
type chatMessageReply struct {
	content string
}

func (r chatMessageReply) text() string { return r.content }

// chatChunksReply: choices[0].message.content as [{"type":"text","text":...}]
type chatChunksReply struct {
	parts []string
}

func (r chatChunksReply) text() string { return strings.Join(r.parts, "") }

// legacyCompletionReply: choices[0].text
type legacyCompletionReply struct {
	completion string
}

func (r legacyCompletionReply) text() string { return r.completion }

// rawReply: unrecognised layout, the whole body is handed to the normalizer.
type rawReply struct {
	body string
}

func (r rawReply) text() string { return r.body }

var errUnreadableChoice = errors.New("generation API returned a choice without readable text")

type completionEnvelope struct {
	Choices []map[string]json.RawMessage `json:"choices"`
}

type contentChunk struct {
	Type string  `json:"type"`
	Text *string `json:"text"`
}

// decodeReply classifies a response body that is already known to be valid JSON.
// A body with a non-empty choices list is a completion envelope; if its first
// choice carries no usable text the reply is rejected rather than normalized,
// so the envelope itself never reaches the caller.
func decodeReply(body []byte) (reply, error) {
	var env completionEnvelope
	if err := json.Unmarshal(body, &env); err != nil || len(env.Choices) == 0 {
		return rawReply{body: strings.TrimSpace(string(body))}, nil
	}

	first := env.Choices[0]
	if raw, ok := first["message"]; ok {
		var message map[string]json.RawMessage
		if err := json.Unmarshal(raw, &message); err != nil {
			return nil, errUnreadableChoice
		}
		return decodeContent(message["content"])
	}
	if raw, ok := first["text"]; ok {
		var completion string
		if err := json.Unmarshal(raw, &completion); err != nil || isNull(raw) {
			return nil, errUnreadableChoice
		}
		return legacyCompletionReply{completion: completion}, nil
	}
	return nil, errUnreadableChoice
}

func decodeContent(raw json.RawMessage) (reply, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || isNull(raw) {
		return nil, errUnreadableChoice
	}

	switch raw[0] {
	case '"':
		var content string
		if err := json.Unmarshal(raw, &content); err != nil {
			return nil, errUnreadableChoice
		}
		return chatMessageReply{content: content}, nil
	case '[':
		var chunks []contentChunk
		if err := json.Unmarshal(raw, &chunks); err != nil {
			return nil, errUnreadableChoice
		}
		var parts []string
		for _, chunk := range chunks {
			if chunk.Text != nil && (chunk.Type == "" || chunk.Type == "text") {
				parts = append(parts, *chunk.Text)
			}
		}
		if len(parts) == 0 {
			return nil, errUnreadableChoice
		}
		return chatChunksReply{parts: parts}, nil
	default:
		return nil, errUnreadableChoice
	}
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
