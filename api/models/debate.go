package models

import "github.com/vincenzo-scotto001/fantastic-giggle/council"

// DebateRequest starts a full server-side debate. ElderIDs is optional; when
// empty the server draws a random council.
type DebateRequest struct {
	Question string `json:"question"`
	ElderIDs []int  `json:"elderIds,omitempty"`
}

// Debate SSE event names, in emission order.
const (
	EventSystem  = "system"
	EventTyping  = "typing"
	EventElder   = "elder"
	EventVerdict = "verdict"
	EventSummary = "summary"
	EventDone    = "done"
	EventError   = "error"
)

type DebateSystemEvent struct {
	Message string `json:"message"`
}

type DebateTypingEvent struct {
	Elder council.Elder `json:"elder"`
}

type DebateElderEvent struct {
	Elder council.Elder `json:"elder"`
	Text  string        `json:"text"`
	Round int           `json:"round"`
	Final bool          `json:"final"`
}

type DebateDoneEvent struct {
	SessionID string          `json:"sessionId"`
	Winner    string          `json:"winner"`
	Summary   string          `json:"summary"`
	Verdict   council.Verdict `json:"verdict"`
}
