package controllers

import (
	"errors"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/vincenzo-scotto001/fantastic-giggle/api/models"
	"github.com/vincenzo-scotto001/fantastic-giggle/council"
	"github.com/vincenzo-scotto001/fantastic-giggle/logging"
	"github.com/vincenzo-scotto001/fantastic-giggle/storage"
)

// DebateOptions tune one server-side debate run.
type DebateOptions struct {
	Rounds      int
	CouncilSize int
	TurnDelay   time.Duration
	Stream      bool
}

// DebateController runs a whole debate server-side and streams observer
// events to the client over SSE. This is the one place the leaderboard gets
// written from a debate: exactly once per concluded session.
type DebateController struct {
	eldersStorage storage.ElderStorage
	interactions  storage.InteractionStorage
	responder     *council.Responder
	adjudicator   *council.Adjudicator
	summarizer    *council.Summarizer
	options       DebateOptions

	// newRand hands every debate its own source; sharing one rand.Rand
	// across concurrent requests is a data race.
	newRand func() *rand.Rand
}

func NewDebateController(eldersStorage storage.ElderStorage, interactions storage.InteractionStorage, responder *council.Responder, adjudicator *council.Adjudicator, summarizer *council.Summarizer, options DebateOptions) *DebateController {
	if options.Rounds <= 0 {
		options.Rounds = council.DefaultRounds
	}
	if options.CouncilSize <= 0 {
		options.CouncilSize = council.CouncilSize
	}
	return &DebateController{
		eldersStorage: eldersStorage,
		interactions:  interactions,
		responder:     responder,
		adjudicator:   adjudicator,
		summarizer:    summarizer,
		options:       options,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

func (c *DebateController) RegisterRoutes(engine *gin.Engine) {
	engine.POST("/api/debate", c.runDebate)
}

// sseObserver forwards orchestrator callbacks as SSE events, flushing after
// each one so the page sees turns as they land.
type sseObserver struct {
	g            *gin.Context
	participants int
	finals       int
}

func (o *sseObserver) emit(event string, payload interface{}) {
	o.g.SSEvent(event, payload)
	o.g.Writer.Flush()
}

func (o *sseObserver) SystemMessage(text string) {
	o.emit(models.EventSystem, models.DebateSystemEvent{Message: text})
}

func (o *sseObserver) ElderTyping(elder council.Elder) {
	o.emit(models.EventTyping, models.DebateTypingEvent{Elder: elder})
}

func (o *sseObserver) ElderSpeak(elder council.Elder, text string, final bool) {
	round := 0
	if o.participants > 0 {
		round = o.finals / o.participants
	}
	o.emit(models.EventElder, models.DebateElderEvent{Elder: elder, Text: text, Round: round, Final: final})
	if final {
		o.finals++
	}
}

func (o *sseObserver) DebateComplete(verdict *council.Verdict) {
	o.emit(models.EventVerdict, verdict)
}

// runDebate godoc
// @Summary Run a full council debate
// @Description Streams debate progress as server-sent events and concludes with verdict, summary and leaderboard update
// @Tags debate
// @Accept json
// @Produce text/event-stream
// @Param request body models.DebateRequest true "Debate request"
// @Success 200 {string} string "SSE stream"
// @Failure 400 {object} models.ErrorResponse "Empty question or unknown elder"
// @Router /api/debate [post]
func (c *DebateController) runDebate(g *gin.Context) {
	var req models.DebateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "please type a question"})
		return
	}

	rng := c.newRand()
	participants, err := c.resolveParticipants(req.ElderIDs, rng)
	if err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: err.Error()})
		return
	}

	sessionID, err := gonanoid.New()
	if err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "failed to create session"})
		return
	}
	logging.Log.Infof("DEBATE %s: %d elders, question %q", sessionID, len(participants), question)

	g.Header("Content-Type", "text/event-stream")
	g.Header("Cache-Control", "no-cache")
	g.Header("Connection", "keep-alive")

	orchestrator := council.NewOrchestrator(c.responder, c.adjudicator, rng)
	orchestrator.Rounds = c.options.Rounds
	orchestrator.TurnDelay = c.options.TurnDelay
	orchestrator.Stream = c.options.Stream

	observer := &sseObserver{g: g, participants: len(participants)}
	session, err := orchestrator.Run(g.Request.Context(), question, participants, observer)
	if err != nil {
		// Orchestration-level failure (cancellation): no leaderboard update.
		logging.Log.Warnf("DEBATE %s: failed: %v", sessionID, err)
		observer.emit(models.EventError, &models.ErrorResponse{Error: err.Error()})
		return
	}
	verdict := session.Verdict

	c.recordWin(g, sessionID, participants, verdict)

	summary := c.summarizer.Summarize(g.Request.Context(), question, verdict.Winner, verdict.Reasoning)
	observer.emit(models.EventSummary, models.SummaryResponse{Summary: summary})

	c.logInteraction(g, sessionID, question, summary, session.Transcript)

	observer.emit(models.EventDone, models.DebateDoneEvent{
		SessionID: sessionID,
		Winner:    verdict.Winner,
		Summary:   summary,
		Verdict:   *verdict,
	})
}

func (c *DebateController) resolveParticipants(ids []int, rng *rand.Rand) ([]council.Elder, error) {
	if len(ids) == 0 {
		return council.SelectCouncil(rng, c.options.CouncilSize), nil
	}

	participants := make([]council.Elder, 0, len(ids))
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return nil, errors.New("duplicate elder in council")
		}
		seen[id] = true

		elder := council.ElderByID(id)
		if elder == nil {
			return nil, errors.New("unknown elder id")
		}
		participants = append(participants, *elder)
	}
	return participants, nil
}

// recordWin applies the single leaderboard increment for this debate. A write
// failure is logged and swallowed: the already-concluded debate still gets
// its result delivered, the point is just lost.
func (c *DebateController) recordWin(g *gin.Context, sessionID string, participants []council.Elder, verdict *council.Verdict) {
	for _, e := range participants {
		if e.Name != verdict.Winner {
			continue
		}
		if _, err := c.eldersStorage.IncrementPoints(g.Request.Context(), e.ID, e.Name); err != nil {
			logging.Log.Errorf("DEBATE %s: failed to record win for %s: %v", sessionID, e.Name, err)
		}
		return
	}
	logging.Log.Warnf("DEBATE %s: winner %q not found among participants", sessionID, verdict.Winner)
}

func (c *DebateController) logInteraction(g *gin.Context, sessionID, question, summary string, transcript []council.Turn) {
	var lines strings.Builder
	for _, t := range transcript {
		lines.WriteString(t.Speaker.Name)
		lines.WriteString(": ")
		lines.WriteString(t.Text)
		lines.WriteString("\n")
	}

	err := c.interactions.Put(g.Request.Context(), &storage.Interaction{
		ID:       sessionID,
		Question: question,
		Answer:   summary,
		Context:  lines.String(),
	})
	if err != nil {
		logging.Log.Errorf("DEBATE %s: failed to log interaction: %v", sessionID, err)
	}
}
