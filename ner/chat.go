package ner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ChatClient is the minimal interface needed to call a chat model. It
// mirrors the CreateChatCompletion method so any OpenAI-compatible or local
// backend can be adapted.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// ChatRecognizer asks an OpenAI-compatible endpoint for entities under a
// strict JSON-only contract. Any transport or parse problem is returned as
// an error so callers can choose their fallback; the recognizer never
// guesses.
type ChatRecognizer struct {
	Client ChatClient
	Model  string
}

const systemMessage = "You are a named-entity tagger. Respond with strict JSON only, no narration. The JSON schema is {\"entities\": [{\"text\": string, \"label\": string}]}. Labels are PERSON, ORG, or LOC. Tag only spans that literally occur in the input."

type chatPayload struct {
	Entities []Entity `json:"entities"`
}

// Recognize implements Recognizer using the chat completions API.
func (r *ChatRecognizer) Recognize(ctx context.Context, text string) ([]Entity, error) {
	if r == nil || r.Client == nil || r.Model == "" {
		return nil, errors.New("recognizer not configured")
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	resp, err := r.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: r.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemMessage},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0.1,
		N:           1,
	})
	if err != nil {
		return nil, fmt.Errorf("ner call: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("no choices")
	}
	raw := strings.TrimSpace(resp.Choices[0].Message.Content)
	var payload chatPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("parse ner json: %w", err)
	}
	out := make([]Entity, 0, len(payload.Entities))
	for _, e := range payload.Entities {
		e.Text = strings.TrimSpace(e.Text)
		e.Label = strings.ToUpper(strings.TrimSpace(e.Label))
		if e.Text == "" || e.Label == "" {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
