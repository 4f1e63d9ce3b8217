package council

import (
	"context"
	"fmt"

	"github.com/vincenzo-scotto001/fantastic-giggle/logging"
	"github.com/vincenzo-scotto001/fantastic-giggle/openai"
)

const (
	summaryTemperature = 0.7
	summaryMaxTokens   = 150
)

// Summarizer produces the closing statement in the winner's voice.
type Summarizer struct {
	client ChatClient
	model  string
}

func NewSummarizer(client ChatClient, model string) *Summarizer {
	return &Summarizer{client: client, model: model}
}

// SummaryFallback is the templated closing used when the model call fails.
func SummaryFallback(winner string) string {
	return fmt.Sprintf("The council has spoken. %s presented the winning argument.", winner)
}

// Summarize is a single-shot call, no retries; failure yields the fallback.
func (s *Summarizer) Summarize(ctx context.Context, question, winner, reasoning string) string {
	text, err := s.client.Complete(ctx, openai.ChatRequest{
		Model: s.model,
		Messages: []openai.Message{
			{Role: "user", Content: SummaryPrompt(question, winner, reasoning)},
		},
		Temperature: summaryTemperature,
		MaxTokens:   summaryMaxTokens,
	})
	if err != nil {
		logging.Log.Errorf("SUMMARY: generation failed: %v", err)
		return SummaryFallback(winner)
	}
	return text
}
