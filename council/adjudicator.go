package council

import (
	"context"
	"encoding/json"
	"math/rand"
	"strings"

	"github.com/vincenzo-scotto001/fantastic-giggle/logging"
	"github.com/vincenzo-scotto001/fantastic-giggle/openai"
)

// FallbackReasoning is the rationale attached to a fallback verdict.
const FallbackReasoning = "The council reached a decision through deliberation."

const judgeTemperature = 0.3

// Adjudicator runs the judged-voting step. Every debate produces a Verdict:
// a garbled or missing decision falls back to a uniformly-random participant
// instead of an error.
type Adjudicator struct {
	client ChatClient
	model  string
	rng    *rand.Rand
}

func NewAdjudicator(client ChatClient, model string, rng *rand.Rand) *Adjudicator {
	return &Adjudicator{client: client, model: model, rng: rng}
}

// Adjudicate judges the full transcript and names a winner among participants.
// It never returns an error.
func (a *Adjudicator) Adjudicate(ctx context.Context, question string, participants []Elder, transcript []Turn) *Verdict {
	raw, err := a.client.Complete(ctx, openai.ChatRequest{
		Model: a.model,
		Messages: []openai.Message{
			{Role: "system", Content: "You are an impartial judge analyzing a debate between council elders. Always respond with valid JSON."},
			{Role: "user", Content: VotingPrompt(question, transcript)},
		},
		Temperature:    judgeTemperature,
		ResponseFormat: &openai.ResponseFormat{Type: "json_object"},
	})
	if err != nil {
		logging.Log.Errorf("ADJUDICATOR: voting call failed: %v", err)
		return a.fallback(participants)
	}

	verdict, err := decodeVerdict(raw)
	if err != nil {
		logging.Log.Errorf("ADJUDICATOR: could not parse voting result: %v", err)
		return a.fallback(participants)
	}
	if !isParticipant(verdict.Winner, participants) {
		logging.Log.Warnf("ADJUDICATOR: winner %q is not a participant, falling back", verdict.Winner)
		return a.fallback(participants)
	}
	if verdict.Votes == nil {
		verdict.Votes = map[string][]string{}
	}
	if verdict.Reasoning == "" {
		verdict.Reasoning = FallbackReasoning
	}
	return verdict
}

// intn uses the injected source when present; the global one is safe for
// concurrent debates.
func (a *Adjudicator) intn(n int) int {
	if a.rng != nil {
		return a.rng.Intn(n)
	}
	return rand.Intn(n)
}

func (a *Adjudicator) fallback(participants []Elder) *Verdict {
	winner := participants[a.intn(len(participants))]
	return &Verdict{
		Winner:    winner.Name,
		Votes:     map[string][]string{},
		Reasoning: FallbackReasoning,
	}
}

// decodeVerdict strips incidental markdown fences and decodes the judge's
// JSON. A decoded object without a winner is an error.
func decodeVerdict(raw string) (*Verdict, error) {
	content := strings.TrimSpace(raw)
	content = strings.ReplaceAll(content, "```json", "")
	content = strings.ReplaceAll(content, "```", "")
	content = strings.TrimSpace(content)

	var v Verdict
	if err := json.Unmarshal([]byte(content), &v); err != nil {
		return nil, err
	}
	if v.Winner == "" {
		return nil, errMissingWinner
	}
	return &v, nil
}

func isParticipant(name string, participants []Elder) bool {
	for _, e := range participants {
		if e.Name == name {
			return true
		}
	}
	return false
}
