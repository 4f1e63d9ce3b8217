package council

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// DefaultRounds is how many times each elder speaks in a debate.
const DefaultRounds = 2

// Orchestrator drives the turn-taking protocol: announce the question, let
// every elder speak rounds times in one shuffled order, then adjudicate.
// Turns are strictly sequential; each turn's context contains every earlier
// turn's finalized text.
type Orchestrator struct {
	responder   *Responder
	adjudicator *Adjudicator
	rng         *rand.Rand

	Rounds    int
	TurnDelay time.Duration
	Stream    bool
}

func NewOrchestrator(responder *Responder, adjudicator *Adjudicator, rng *rand.Rand) *Orchestrator {
	return &Orchestrator{
		responder:   responder,
		adjudicator: adjudicator,
		rng:         rng,
		Rounds:      DefaultRounds,
	}
}

// Run executes one debate session end to end. The caller owns what happens
// after: leaderboard update, summary, persistence. An empty question or
// council fails before any model call. Cancellation between turns fails the
// session; the partial transcript is still returned for inspection.
func (o *Orchestrator) Run(ctx context.Context, question string, participants []Elder, observer Observer) (*Session, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}

	session := &Session{
		Question:     question,
		Participants: participants,
		Transcript:   make([]Turn, 0, o.Rounds*len(participants)),
		Status:       StatusPending,
	}
	order := SpeakingOrder(o.rng, participants)

	session.Status = StatusInProgress
	observer.SystemMessage(fmt.Sprintf("The Council convenes to discuss: %q", question))

	for round := 0; round < o.Rounds; round++ {
		for _, elder := range order {
			if err := ctx.Err(); err != nil {
				session.Status = StatusFailed
				return session, ErrDebateCancelled
			}

			observer.ElderTyping(elder)
			if o.TurnDelay > 0 {
				select {
				case <-time.After(o.TurnDelay):
				case <-ctx.Done():
					session.Status = StatusFailed
					return session, ErrDebateCancelled
				}
			}

			debateContext := BuildDebateContext(question, participants, session.Transcript)

			var text string
			if o.Stream {
				var partial strings.Builder
				text = o.responder.RespondStream(ctx, elder, debateContext, func(chunk string) {
					partial.WriteString(chunk)
					observer.ElderSpeak(elder, partial.String(), false)
				})
			} else {
				text = o.responder.Respond(ctx, elder, debateContext)
			}

			session.Transcript = append(session.Transcript, Turn{Speaker: elder, Round: round, Text: text, Final: true})
			observer.ElderSpeak(elder, text, true)
		}
	}

	session.Status = StatusAwaitingVerdict
	observer.SystemMessage("The Council has reached a decision...")

	session.Verdict = o.adjudicator.Adjudicate(ctx, question, participants, session.Transcript)
	session.Status = StatusConcluded
	observer.DebateComplete(session.Verdict)

	return session, nil
}
