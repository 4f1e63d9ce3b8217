package council

import (
	"context"
	"fmt"

	"github.com/vincenzo-scotto001/fantastic-giggle/logging"
	"github.com/vincenzo-scotto001/fantastic-giggle/openai"
)

// ChatClient is the slice of the OpenAI client the council needs. Tests
// substitute fakes for it.
type ChatClient interface {
	Complete(ctx context.Context, req openai.ChatRequest) (string, error)
	Stream(ctx context.Context, req openai.ChatRequest, onChunk func(string)) (string, error)
}

const (
	elderTemperature = 0.8
	elderMaxTokens   = 150
)

// Responder produces one elder's statement per call. It is stateless between
// calls; the rendered debate context is the only memory.
type Responder struct {
	client ChatClient
	model  string
}

func NewResponder(client ChatClient, model string) *Responder {
	return &Responder{client: client, model: model}
}

// Deflection is the in-character answer used when the model call fails. The
// debate must never stall on a single elder's failure.
func Deflection(elder Elder) string {
	return fmt.Sprintf("As %s, I believe we need to carefully consider all aspects of this question.", elder.Name)
}

func (r *Responder) request(elder Elder, debateContext string) openai.ChatRequest {
	return openai.ChatRequest{
		Model: r.model,
		Messages: []openai.Message{
			{Role: "system", Content: ElderSystemPrompt(elder)},
			{Role: "user", Content: ElderTurnPrompt(elder, debateContext)},
		},
		Temperature: elderTemperature,
		MaxTokens:   elderMaxTokens,
	}
}

// Respond returns the elder's next statement. Errors from the underlying
// service are logged and replaced with the deflection text.
func (r *Responder) Respond(ctx context.Context, elder Elder, debateContext string) string {
	text, err := r.client.Complete(ctx, r.request(elder, debateContext))
	if err != nil {
		logging.Log.Errorf("RESPONDER: %s failed to respond: %v", elder.Name, err)
		return Deflection(elder)
	}
	return text
}

// RespondStream is Respond with incremental delivery. onChunk receives
// non-overlapping fragments that concatenate to the returned text. On failure
// the deflection is returned whole and onChunk is not called again.
func (r *Responder) RespondStream(ctx context.Context, elder Elder, debateContext string, onChunk func(string)) string {
	text, err := r.client.Stream(ctx, r.request(elder, debateContext), onChunk)
	if err != nil {
		logging.Log.Errorf("RESPONDER: %s failed to respond (stream): %v", elder.Name, err)
		return Deflection(elder)
	}
	return text
}
