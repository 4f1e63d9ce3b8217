package council

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abcParticipants() []Elder {
	return []Elder{
		{ID: 1, Name: "A", Description: "first"},
		{ID: 2, Name: "B", Description: "second"},
		{ID: 3, Name: "C", Description: "third"},
	}
}

func newTestAdjudicator(client ChatClient) *Adjudicator {
	return NewAdjudicator(client, "test-model", rand.New(rand.NewSource(1)))
}

func TestAdjudicateAcceptsValidDecision(t *testing.T) {
	client := &fakeChatClient{responses: []string{
		`{"winner":"B","votes":{"B":["A","C"]},"reasoning":"most convincing"}`,
	}}

	verdict := newTestAdjudicator(client).Adjudicate(context.Background(), "q", abcParticipants(), nil)

	require.NotNil(t, verdict)
	assert.Equal(t, "B", verdict.Winner)
	assert.Equal(t, []string{"A", "C"}, verdict.Votes["B"])
	assert.Equal(t, "most convincing", verdict.Reasoning)
}

func TestAdjudicateStripsMarkdownFences(t *testing.T) {
	client := &fakeChatClient{responses: []string{
		"```json\n{\"winner\":\"C\",\"votes\":{},\"reasoning\":\"sound logic\"}\n```",
	}}

	verdict := newTestAdjudicator(client).Adjudicate(context.Background(), "q", abcParticipants(), nil)

	assert.Equal(t, "C", verdict.Winner)
	assert.Equal(t, "sound logic", verdict.Reasoning)
}

func TestAdjudicateFallsBackOnGarbledPayload(t *testing.T) {
	cases := map[string]string{
		"not json":        `the winner is obviously B`,
		"truncated":       `{"winner":"B","votes":`,
		"missing winner":  `{"votes":{},"reasoning":"hmm"}`,
		"empty winner":    `{"winner":"","votes":{},"reasoning":"hmm"}`,
		"unknown winner":  `{"winner":"The Stranger","votes":{},"reasoning":"hmm"}`,
		"wrong structure": `[1,2,3]`,
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			client := &fakeChatClient{responses: []string{payload}}
			verdict := newTestAdjudicator(client).Adjudicate(context.Background(), "q", abcParticipants(), nil)

			require.NotNil(t, verdict)
			assert.Contains(t, []string{"A", "B", "C"}, verdict.Winner)
			assert.Empty(t, verdict.Votes)
			assert.NotNil(t, verdict.Votes)
			assert.Equal(t, FallbackReasoning, verdict.Reasoning)
		})
	}
}

func TestAdjudicateFallsBackOnServiceError(t *testing.T) {
	client := &fakeChatClient{err: errFakeService}

	verdict := newTestAdjudicator(client).Adjudicate(context.Background(), "q", abcParticipants(), nil)

	require.NotNil(t, verdict)
	assert.Contains(t, []string{"A", "B", "C"}, verdict.Winner)
	assert.Empty(t, verdict.Votes)
	assert.Equal(t, FallbackReasoning, verdict.Reasoning)
}

func TestAdjudicateFallbackIsUniformOverParticipants(t *testing.T) {
	client := &fakeChatClient{err: errFakeService}
	adjudicator := NewAdjudicator(client, "test-model", rand.New(rand.NewSource(7)))

	winners := make(map[string]int)
	for i := 0; i < 300; i++ {
		verdict := adjudicator.Adjudicate(context.Background(), "q", abcParticipants(), nil)
		winners[verdict.Winner]++
	}

	// Every participant should win sometimes.
	assert.Len(t, winners, 3)
	for name, count := range winners {
		assert.Greater(t, count, 0, "participant %s never selected", name)
	}
}

func TestAdjudicateFillsMissingOptionalFields(t *testing.T) {
	client := &fakeChatClient{responses: []string{`{"winner":"A"}`}}

	verdict := newTestAdjudicator(client).Adjudicate(context.Background(), "q", abcParticipants(), nil)

	assert.Equal(t, "A", verdict.Winner)
	assert.NotNil(t, verdict.Votes)
	assert.Equal(t, FallbackReasoning, verdict.Reasoning)
}

func TestAdjudicateSendsStructuredOutputRequest(t *testing.T) {
	client := &fakeChatClient{responses: []string{`{"winner":"A","votes":{},"reasoning":"ok"}`}}
	adjudicator := newTestAdjudicator(client)

	transcript := []Turn{
		{Speaker: Elder{Name: "A"}, Text: "first statement", Final: true},
		{Speaker: Elder{Name: "B"}, Text: "second statement", Final: true},
	}
	adjudicator.Adjudicate(context.Background(), "the question", abcParticipants(), transcript)

	require.Len(t, client.requests, 1)
	req := client.requests[0]
	require.NotNil(t, req.ResponseFormat)
	assert.Equal(t, "json_object", req.ResponseFormat.Type)
	assert.Contains(t, req.Messages[1].Content, "A: first statement")
	assert.Contains(t, req.Messages[1].Content, "B: second statement")
	assert.Contains(t, req.Messages[1].Content, "the question")
}
