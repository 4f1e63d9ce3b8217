package council

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeReturnsModelText(t *testing.T) {
	client := &fakeChatClient{responses: []string{"The council favors patience above all."}}
	s := NewSummarizer(client, "test-model")

	text := s.Summarize(context.Background(), "Should we wait?", "The Sage", "wise words")

	assert.Equal(t, "The council favors patience above all.", text)
	require.Len(t, client.requests, 1)
	assert.Contains(t, client.requests[0].Messages[0].Content, "The Sage")
	assert.Contains(t, client.requests[0].Messages[0].Content, "wise words")
}

func TestSummarizeFailureYieldsLiteralFallback(t *testing.T) {
	client := &fakeChatClient{err: errFakeService}
	s := NewSummarizer(client, "test-model")

	text := s.Summarize(context.Background(), "Should we wait?", "The Doomsayer", "doom")

	assert.Equal(t, "The council has spoken. The Doomsayer presented the winning argument.", text)
}

func TestRespondFailureYieldsDeflection(t *testing.T) {
	client := &fakeChatClient{err: errFakeService}
	r := NewResponder(client, "test-model")
	elder := Elder{ID: 21, Name: "The Skeptic", Description: "questioning"}

	text := r.Respond(context.Background(), elder, "context")

	assert.Equal(t, "As The Skeptic, I believe we need to carefully consider all aspects of this question.", text)
}

func TestRespondSendsPersonaPrompt(t *testing.T) {
	client := &fakeChatClient{responses: []string{"I doubt it."}}
	r := NewResponder(client, "test-model")
	elder := Elder{ID: 21, Name: "The Skeptic", Description: "questioning, vigilant"}

	text := r.Respond(context.Background(), elder, "the debate so far")

	assert.Equal(t, "I doubt it.", text)
	require.Len(t, client.requests, 1)
	req := client.requests[0]
	assert.Contains(t, req.Messages[0].Content, "You are The Skeptic")
	assert.Contains(t, req.Messages[0].Content, "questioning, vigilant")
	assert.Contains(t, req.Messages[1].Content, "the debate so far")
}
