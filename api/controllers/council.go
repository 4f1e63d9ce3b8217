package controllers

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vincenzo-scotto001/fantastic-giggle/api/models"
	"github.com/vincenzo-scotto001/fantastic-giggle/council"
	"github.com/vincenzo-scotto001/fantastic-giggle/logging"
	"github.com/vincenzo-scotto001/fantastic-giggle/storage"
)

// CouncilController serves the action-dispatch endpoint the frontend drives
// the debate with, plus the leaderboard read.
type CouncilController struct {
	eldersStorage storage.ElderStorage
	responder     *council.Responder
	adjudicator   *council.Adjudicator
	summarizer    *council.Summarizer
}

func NewCouncilController(eldersStorage storage.ElderStorage, responder *council.Responder, adjudicator *council.Adjudicator, summarizer *council.Summarizer) *CouncilController {
	return &CouncilController{
		eldersStorage: eldersStorage,
		responder:     responder,
		adjudicator:   adjudicator,
		summarizer:    summarizer,
	}
}

func (c *CouncilController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api")

	group.POST("/council", c.dispatch)
	group.GET("/council", c.getCouncil)
	group.GET("/leaderboard", c.getLeaderboard)
}

// dispatch godoc
// @Summary Council action dispatch
// @Description Accepts {action, data} and routes to elderResponse, voting, summary or updatePoints
// @Tags council
// @Accept json
// @Produce json
// @Param request body models.CouncilRequest true "Council action"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse "Invalid action or data"
// @Failure 500 {object} models.ErrorResponse
// @Router /api/council [post]
func (c *CouncilController) dispatch(g *gin.Context) {
	var req models.CouncilRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}

	switch req.Action {
	case models.ActionElderResponse:
		c.elderResponse(g, req.Data)
	case models.ActionVoting:
		c.voting(g, req.Data)
	case models.ActionSummary:
		c.summary(g, req.Data)
	case models.ActionUpdatePoints:
		c.updatePoints(g, req.Data)
	default:
		logging.Log.Warnf("COUNCIL: invalid action requested: %q", req.Action)
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid action"})
	}
}

func (c *CouncilController) elderResponse(g *gin.Context, data json.RawMessage) {
	var req models.ElderResponseRequest
	if err := json.Unmarshal(data, &req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid elder response data"})
		return
	}
	if strings.TrimSpace(req.Question) == "" || req.Elder.Name == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "question and elder are required"})
		return
	}

	// Respond never fails; a model error degrades to the deflection line.
	text := c.responder.Respond(g.Request.Context(), req.Elder, req.DebateContext)
	g.JSON(http.StatusOK, &models.ElderResponseResponse{Response: text})
}

func (c *CouncilController) voting(g *gin.Context, data json.RawMessage) {
	var req models.VotingRequest
	if err := json.Unmarshal(data, &req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid voting data"})
		return
	}
	if len(req.Elders) == 0 {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "voting requires at least one elder"})
		return
	}

	transcript := make([]council.Turn, 0, len(req.DebateMessages))
	for _, m := range req.DebateMessages {
		transcript = append(transcript, council.Turn{
			Speaker: council.Elder{Name: m.Elder},
			Text:    m.Content,
			Final:   true,
		})
	}

	verdict := c.adjudicator.Adjudicate(g.Request.Context(), req.Question, req.Elders, transcript)
	g.JSON(http.StatusOK, verdict)
}

func (c *CouncilController) summary(g *gin.Context, data json.RawMessage) {
	var req models.SummaryRequest
	if err := json.Unmarshal(data, &req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid summary data"})
		return
	}
	if req.Winner == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "winner is required"})
		return
	}

	text := c.summarizer.Summarize(g.Request.Context(), req.Question, req.Winner, req.Reasoning)
	g.JSON(http.StatusOK, &models.SummaryResponse{Summary: text})
}

func (c *CouncilController) updatePoints(g *gin.Context, data json.RawMessage) {
	var req models.UpdatePointsRequest
	if err := json.Unmarshal(data, &req); err != nil || req.ElderID == 0 || req.ElderName == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid update points data"})
		return
	}

	elder, err := c.eldersStorage.IncrementPoints(g.Request.Context(), req.ElderID, req.ElderName)
	if err != nil {
		logging.Log.Errorf("COUNCIL: failed to update points for %s: %v", req.ElderName, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "failed to update points"})
		return
	}

	g.JSON(http.StatusOK, &models.UpdatePointsResponse{
		Success: true,
		Elder:   models.TransformElderFromStorage(elder),
	})
}

// getCouncil keeps the legacy query-string contract the page polls with:
// GET /api/council?action=getLeaderboard.
func (c *CouncilController) getCouncil(g *gin.Context) {
	if g.Query("action") == models.ActionLeaderboard {
		c.getLeaderboard(g)
		return
	}
	g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid action"})
}

// getLeaderboard godoc
// @Summary Leaderboard
// @Description Returns all elders with points, sorted by points descending
// @Tags council
// @Produce json
// @Success 200 {object} models.LeaderboardResponse
// @Router /api/leaderboard [get]
func (c *CouncilController) getLeaderboard(g *gin.Context) {
	elders, err := c.eldersStorage.GetAll(g.Request.Context())
	if err != nil {
		// Degraded read: the page renders zero points rather than an error.
		logging.Log.Errorf("COUNCIL: failed to fetch leaderboard: %v", err)
		g.JSON(http.StatusOK, &models.LeaderboardResponse{Elders: []models.ElderStanding{}})
		return
	}

	sort.Slice(elders, func(i, j int) bool { return elders[i].Points > elders[j].Points })

	standings := make([]models.ElderStanding, 0, len(elders))
	for _, e := range elders {
		standings = append(standings, models.TransformElderFromStorage(e))
	}
	g.JSON(http.StatusOK, &models.LeaderboardResponse{Elders: standings})
}
