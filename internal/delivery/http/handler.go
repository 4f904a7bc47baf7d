package http

import (
	"net/http"
	"time"

	"mtgsim/internal/session"
	"mtgsim/internal/state"

	"github.com/gin-gonic/gin"
)

// GameHandler serves the RL session control surface over HTTP, delegating
// every game rule to internal/session (spec.md §6).
type GameHandler struct {
	manager *session.Manager
}

// NewGameHandler builds a GameHandler bound to a session manager.
func NewGameHandler(manager *session.Manager) *GameHandler {
	return &GameHandler{manager: manager}
}

// HealthCheck reports process liveness.
func (h *GameHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "mtgsim", "sessions": h.manager.Count()})
}

func seedOrNow(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return time.Now().UnixNano()
}

func (h *GameHandler) createOne(req createRequest) (createResponse, error) {
	seed := seedOrNow(req.Seed)
	opponent, resolvedKind := session.ResolveOpponent(req.Opponent, seed+1)
	s, err := h.manager.Create(req.PlayerDeck, req.OpponentDeck, opponent, resolvedKind, seed)
	if err != nil {
		return createResponse{}, err
	}
	return createResponse{SessionID: s.ID, Seed: seed, InitialStepResponse: toStepResponse(s.State())}, nil
}

// Create handles POST /sessions.
func (h *GameHandler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	resp, err := h.createOne(req)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateBatch handles POST /sessions/batch, bounded at MaxBatchSize items.
func (h *GameHandler) CreateBatch(c *gin.Context) {
	var reqs []createRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if len(reqs) > MaxBatchSize {
		reqs = reqs[:MaxBatchSize]
	}
	out := make([]createResponse, 0, len(reqs))
	for _, req := range reqs {
		resp, err := h.createOne(req)
		if err != nil {
			continue
		}
		out = append(out, resp)
	}
	c.JSON(http.StatusOK, out)
}

func (h *GameHandler) session(c *gin.Context) (*session.Session, bool) {
	id := c.Param("sessionId")
	s, ok := h.manager.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, errorResponse{Error: "session not found"})
	}
	return s, ok
}

// Step handles POST /sessions/:sessionId/step.
func (h *GameHandler) Step(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var req stepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, toStepResponse(s.Step(req.ActionIndex)))
}

// StepBatch handles POST /sessions/batch/step.
func (h *GameHandler) StepBatch(c *gin.Context) {
	var reqs map[string]stepRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	out := make(map[string]stepResponse, len(reqs))
	count := 0
	for id, req := range reqs {
		if count >= MaxBatchSize {
			break
		}
		s, ok := h.manager.Get(id)
		if !ok {
			continue
		}
		out[id] = toStepResponse(s.Step(req.ActionIndex))
		count++
	}
	c.JSON(http.StatusOK, out)
}

// OpponentStep handles POST /sessions/:sessionId/opponent-step (only legal
// when the opponent slot is "external").
func (h *GameHandler) OpponentStep(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	if s.OpponentKind != "external" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "opponentStep requires opponent kind \"external\""})
		return
	}
	var req stepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, toStepResponse(s.OpponentStep(req.ActionIndex)))
}

// Reset handles POST /sessions/:sessionId/reset.
func (h *GameHandler) Reset(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var req resetRequest
	_ = c.ShouldBindJSON(&req)
	c.JSON(http.StatusOK, toStepResponse(s.Reset(req.Seed)))
}

// ResetBatch handles POST /sessions/batch/reset.
func (h *GameHandler) ResetBatch(c *gin.Context) {
	var reqs map[string]resetRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	out := make(map[string]stepResponse, len(reqs))
	count := 0
	for id, req := range reqs {
		if count >= MaxBatchSize {
			break
		}
		s, ok := h.manager.Get(id)
		if !ok {
			continue
		}
		out[id] = toStepResponse(s.Reset(req.Seed))
		count++
	}
	c.JSON(http.StatusOK, out)
}

// GetState handles GET /sessions/:sessionId/state.
func (h *GameHandler) GetState(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toStepResponse(s.State()))
}

// GetLegalActions handles GET /sessions/:sessionId/legal-actions?perspective=player|opponent.
func (h *GameHandler) GetLegalActions(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	pid := state.Player
	if c.Query("perspective") == "opponent" {
		pid = state.Opponent
	}
	legal := s.Legal(pid)
	out := make([]legalActionDTO, len(legal))
	for i, a := range legal {
		out[i] = legalActionDTO{Kind: a.Kind, Description: a.Description}
	}
	c.JSON(http.StatusOK, out)
}

// QueryExpert handles GET /sessions/:sessionId/query-expert?kind=random.
func (h *GameHandler) QueryExpert(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	kind := c.Query("kind")
	expert, _ := session.ResolveOpponent(kind, time.Now().UnixNano())
	if expert == nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "expertKind must resolve to a concrete policy"})
		return
	}
	idx, desc, err := s.QueryExpertAction(expert)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, queryExpertResponse{ActionIndex: idx, Description: desc})
}

// Delete handles DELETE /sessions/:sessionId.
func (h *GameHandler) Delete(c *gin.Context) {
	id := c.Param("sessionId")
	c.JSON(http.StatusOK, gin.H{"deleted": h.manager.Delete(id)})
}

// DeleteBatch handles POST /sessions/batch/delete.
func (h *GameHandler) DeleteBatch(c *gin.Context) {
	var ids []string
	if err := c.ShouldBindJSON(&ids); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if len(ids) > MaxBatchSize {
		ids = ids[:MaxBatchSize]
	}
	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = h.manager.Delete(id)
	}
	c.JSON(http.StatusOK, out)
}
