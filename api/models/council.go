package models

import (
	"encoding/json"
	"time"

	"github.com/vincenzo-scotto001/fantastic-giggle/council"
	"github.com/vincenzo-scotto001/fantastic-giggle/storage"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// Council actions accepted by the dispatch endpoint.
const (
	ActionElderResponse = "elderResponse"
	ActionVoting        = "voting"
	ActionSummary       = "summary"
	ActionUpdatePoints  = "updatePoints"
	ActionLeaderboard   = "getLeaderboard"
)

// CouncilRequest is the action-dispatch envelope: {action, data}. Data is
// decoded per action.
type CouncilRequest struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type ElderResponseRequest struct {
	Elder         council.Elder `json:"elder"`
	Question      string        `json:"question"`
	DebateContext string        `json:"debateContext"`
}

type ElderResponseResponse struct {
	Response string `json:"response"`
}

// DebateMessage mirrors one transcript line as the frontend sends it.
type DebateMessage struct {
	Elder   string `json:"elder"`
	Content string `json:"content"`
}

type VotingRequest struct {
	Question       string          `json:"question"`
	Elders         []council.Elder `json:"elders"`
	DebateMessages []DebateMessage `json:"debateMessages"`
}

type SummaryRequest struct {
	Question  string `json:"question"`
	Winner    string `json:"winner"`
	Reasoning string `json:"reasoning"`
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}

type UpdatePointsRequest struct {
	ElderName string `json:"elderName"`
	ElderID   int    `json:"elderId"`
}

type UpdatePointsResponse struct {
	Success bool          `json:"success"`
	Elder   ElderStanding `json:"elder"`
}

// ElderStanding is one leaderboard row as served to clients.
type ElderStanding struct {
	ID      int       `json:"id"`
	Name    string    `json:"name"`
	Points  int       `json:"points"`
	LastWin time.Time `json:"last_win,omitempty"`
}

type LeaderboardResponse struct {
	Elders []ElderStanding `json:"elders"`
}

func TransformElderFromStorage(e *storage.CouncilElder) ElderStanding {
	return ElderStanding{
		ID:      e.ID,
		Name:    e.Name,
		Points:  e.Points,
		LastWin: e.LastWin,
	}
}
