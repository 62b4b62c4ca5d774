package quizgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"quizbuilder/backend/config"
)

const (
	systemPrompt = "You are a quiz generator. Reply ONLY with a JSON array of objects. " +
		"Each object must contain: 'question' (string), 'options' (array of 4 strings), 'answer' (0-3 index)."
	temperature = 0.2
	maxTokens   = 700
	// Upper bound on the response body we are willing to read.
	maxReplyBytes = 1 << 20
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// Generator produces quiz questions for a topic. Generate never fails: any
// problem with the external API falls back to the offline sample set.
type Generator struct {
	cfg    *config.Config
	client *http.Client
	logger *log.Logger
}

// NewGenerator builds a Generator. A nil client gets one with the configured
// generation timeout.
func NewGenerator(cfg *config.Config, client *http.Client, logger *log.Logger) *Generator {
	if client == nil {
		client = &http.Client{Timeout: cfg.GenerationTimeout}
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Generator{cfg: cfg, client: client, logger: logger}
}

// Generate returns quiz-shaped items for topic, asking the API for
// maxQuestions questions (the default when not positive).
func (g *Generator) Generate(ctx context.Context, topic string, maxQuestions int) []json.RawMessage {
	n := questionCount(maxQuestions)

	if g.cfg.UseOfflineGeneration() {
		if g.cfg.MistralAPIKey == "" {
			g.logger.Println("WARN: MISTRAL_API_KEY not set; using offline quiz")
		}
		return OfflineQuiz(n)
	}

	text, err := g.requestCompletion(ctx, topic, n)
	if err != nil {
		g.logger.Printf("WARN: quiz generation failed, falling back to offline quiz: %v", err)
		return OfflineQuiz(n)
	}
	return Normalize(text)
}

// requestCompletion performs the single outbound call and returns the reply text.
func (g *Generator) requestCompletion(ctx context.Context, topic string, n int) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: g.cfg.MistralModel,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf("Create %d multiple-choice questions about: %s", n, topic)},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	if g.cfg.GenerationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.GenerationTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.MistralURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.cfg.MistralAPIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("generation API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return "", fmt.Errorf("read reply: %w", err)
	}
	if !json.Valid(body) {
		return "", fmt.Errorf("generation API returned a non-JSON body")
	}

	r, err := decodeReply(body)
	if err != nil {
		return "", err
	}
	return r.text(), nil
}
