// Package council implements the Council of Elders debate: persona catalog,
// per-turn response generation, turn-taking orchestration, judged voting and
// the closing summary.
package council

// Elder is the immutable identity of a council member. Points live in the
// leaderboard table, not here.
type Elder struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Turn is one elder's contribution in one round. During streaming a turn is
// surfaced repeatedly with Final=false while text accumulates, then exactly
// once with Final=true carrying the complete text.
type Turn struct {
	Speaker Elder  `json:"speaker"`
	Round   int    `json:"round"`
	Text    string `json:"text"`
	Final   bool   `json:"final"`
}

// Verdict is the adjudication outcome. Winner always names a participant,
// even on the fallback path.
type Verdict struct {
	Winner    string              `json:"winner"`
	Votes     map[string][]string `json:"votes"`
	Reasoning string              `json:"reasoning"`
}

// Status tracks a debate session through its lifecycle.
type Status string

const (
	StatusPending         Status = "pending"
	StatusInProgress      Status = "in-progress"
	StatusAwaitingVerdict Status = "awaiting-verdict"
	StatusConcluded       Status = "concluded"
	StatusFailed          Status = "failed"
)

// Session is one ephemeral debate: created per question, discarded after the
// result is delivered. Only the leaderboard update and the interaction log
// outlive it.
type Session struct {
	Question     string   `json:"question"`
	Participants []Elder  `json:"participants"`
	Transcript   []Turn   `json:"transcript"`
	Status       Status   `json:"status"`
	Verdict      *Verdict `json:"verdict,omitempty"`
}

// Observer receives debate progress. The orchestrator is UI-agnostic; the SSE
// handler and the tests both implement this.
type Observer interface {
	SystemMessage(text string)
	ElderTyping(elder Elder)
	ElderSpeak(elder Elder, text string, final bool)
	DebateComplete(verdict *Verdict)
}
