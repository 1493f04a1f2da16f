// Package httpadapter exposes the puzzle service over a JSON API.
package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"svw.info/puzzler/internal/domain"
	"svw.info/puzzler/internal/puzzles"
	"svw.info/puzzler/internal/solver"
	"svw.info/puzzler/internal/usecase"
)

type Handler struct {
	UC  *usecase.Service
	Log *slog.Logger
	// Timeout bounds each search the API runs; zero means no bound.
	Timeout time.Duration
}

func New(uc *usecase.Service, log *slog.Logger, timeout time.Duration) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{UC: uc, Log: log, Timeout: timeout}
}

// Router builds the gin engine with all routes and middleware attached.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(h.Log), observeRequests())

	r.POST("/api/solve", h.handleSolve)
	r.POST("/api/scramble", h.handleScramble)
	r.POST("/api/hint", h.handleHint)
	r.POST("/api/validate", h.handleValidate)
	r.POST("/api/save", h.handleSave)
	r.GET("/api/puzzles", h.handleList)
	r.GET("/api/puzzles/:id", h.handleLoad)
	r.DELETE("/api/puzzles/:id", h.handleDelete)

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}

// requestLogger logs method, path, status, bytes, and duration per request.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"dur", time.Since(start).Round(time.Millisecond),
		)
	}
}

// ---- Parsing ----

// parseMethod and parseDifficulty tolerate absent or unknown values so the
// optional request fields default sensibly.
func parseMethod(s string) domain.Method {
	if m, err := domain.ParseMethod(s); err == nil {
		return m
	}
	return domain.BreadthFirst
}

func parseDifficulty(s string) domain.Difficulty {
	if d, err := domain.ParseDifficulty(s); err == nil {
		return d
	}
	return domain.Medium
}

// decodePuzzle parses the kind and definition of a request, answering the
// request itself when either is invalid.
func (h *Handler) decodePuzzle(c *gin.Context, kindStr string, def json.RawMessage) (domain.Puzzle, domain.Kind, bool) {
	kind, err := domain.ParseKind(kindStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, 0, false
	}
	p, err := puzzles.Decode(kind, def)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, 0, false
	}
	return p, kind, true
}

func (h *Handler) searchContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.Timeout <= 0 {
		return c.Request.Context(), func() {}
	}
	return context.WithTimeout(c.Request.Context(), h.Timeout)
}

// ---- Solve ----

type solveReq struct {
	Kind       string          `json:"kind"`
	Definition json.RawMessage `json:"definition"`
	Method     string          `json:"method,omitempty"`
}

type solveResp struct {
	Solved     bool     `json:"solved"`
	Chain      []string `json:"chain,omitempty"`
	Moves      int      `json:"moves,omitempty"`
	Nodes      int      `json:"nodes,omitempty"`
	DurationMs int64    `json:"durationMs,omitempty"`
	Error      string   `json:"error,omitempty"`
}

func (h *Handler) handleSolve(c *gin.Context) {
	var req solveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	p, kind, ok := h.decodePuzzle(c, req.Kind, req.Definition)
	if !ok {
		return
	}
	method := parseMethod(req.Method)

	ctx, cancel := h.searchContext(c)
	defer cancel()
	node, st, err := h.UC.Solve(ctx, p, method)

	outcome := "solved"
	switch {
	case errors.Is(err, solver.ErrNoSolution):
		outcome = "no_solution"
	case errors.Is(err, solver.ErrBudget):
		outcome = "budget_exhausted"
	case errors.Is(err, context.DeadlineExceeded):
		solveRuns.WithLabelValues(kind.String(), method.String(), "timeout").Inc()
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "search timed out"})
		return
	case err != nil:
		solveRuns.WithLabelValues(kind.String(), method.String(), "error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	solveRuns.WithLabelValues(kind.String(), method.String(), outcome).Inc()
	solveNodes.Observe(float64(st.Nodes))

	resp := solveResp{
		Solved:     err == nil,
		Nodes:      st.Nodes,
		DurationMs: st.Duration.Milliseconds(),
	}
	if err != nil {
		resp.Error = err.Error()
	} else {
		for _, n := range node.Chain() {
			resp.Chain = append(resp.Chain, n.Puzzle.String())
		}
		resp.Moves = st.Depth
	}
	c.JSON(http.StatusOK, resp)
}

// ---- Scramble ----

type scrambleReq struct {
	Kind       string `json:"kind"`
	Seed       int64  `json:"seed,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

type scrambleResp struct {
	Kind       string          `json:"kind"`
	Seed       int64           `json:"seed"`
	Difficulty string          `json:"difficulty"`
	Definition json.RawMessage `json:"definition"`
	Rendering  string          `json:"rendering,omitempty"`
	DurationMs int64           `json:"durationMs,omitempty"`
}

func (h *Handler) handleScramble(c *gin.Context) {
	var req scrambleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	kind, err := domain.ParseKind(req.Kind)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	diff := parseDifficulty(req.Difficulty)

	p, st, err := h.UC.Scramble(c.Request.Context(), kind, seed, diff)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	_, def, err := puzzles.Encode(p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	scrambles.WithLabelValues(kind.String(), diff.String()).Inc()
	c.JSON(http.StatusOK, scrambleResp{
		Kind:       kind.String(),
		Seed:       seed,
		Difficulty: diff.String(),
		Definition: def,
		Rendering:  p.String(),
		DurationMs: st.Duration.Milliseconds(),
	})
}

// ---- Hint ----

type hintReq struct {
	Kind       string          `json:"kind"`
	Definition json.RawMessage `json:"definition"`
}

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (h *Handler) handleHint(c *gin.Context) {
	var req hintReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	p, _, ok := h.decodePuzzle(c, req.Kind, req.Definition)
	if !ok {
		return
	}

	ctx, cancel := h.searchContext(c)
	defer cancel()
	hint, found, err := h.UC.Hint(ctx, p)
	if errors.Is(err, context.DeadlineExceeded) {
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "search timed out"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, hintResp{Found: found, Hint: hint})
}

// ---- Validate ----

type validateReq struct {
	Kind       string          `json:"kind"`
	Definition json.RawMessage `json:"definition"`
}

type validateResp struct {
	OK     bool   `json:"ok"`
	Solved bool   `json:"solved,omitempty"`
	Stuck  bool   `json:"stuck,omitempty"`
	Error  string `json:"error,omitempty"`
}

// handleValidate reports construction errors as a result, not a request
// failure: a malformed definition is a valid question to ask.
func (h *Handler) handleValidate(c *gin.Context) {
	var req validateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	kind, err := domain.ParseKind(req.Kind)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := puzzles.Decode(kind, req.Definition)
	if err != nil {
		c.JSON(http.StatusOK, validateResp{OK: false, Error: err.Error()})
		return
	}
	solved := p.Solved()
	c.JSON(http.StatusOK, validateResp{
		OK:     true,
		Solved: solved,
		Stuck:  !solved && p.FailFast(),
	})
}

// ---- Save / Load / List / Delete ----

type saveReq struct {
	Kind       string          `json:"kind"`
	Definition json.RawMessage `json:"definition"`
	Name       string          `json:"name,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	Seed       int64           `json:"seed,omitempty"`
	Difficulty string          `json:"difficulty,omitempty"`
}

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(c *gin.Context) {
	var req saveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	_, kind, ok := h.decodePuzzle(c, req.Kind, req.Definition)
	if !ok {
		return
	}
	rec := &domain.SavedPuzzle{
		Kind:       kind,
		Seed:       req.Seed,
		Difficulty: parseDifficulty(req.Difficulty),
		Definition: req.Definition,
		Name:       req.Name,
		Notes:      req.Notes,
	}
	id, err := h.UC.Save(c.Request.Context(), rec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, saveResp{ID: id})
}

type loadResp struct {
	Puzzle    *domain.SavedPuzzle `json:"puzzle,omitempty"`
	Rendering string              `json:"rendering,omitempty"`
	Error     string              `json:"error,omitempty"`
}

func (h *Handler) handleLoad(c *gin.Context) {
	rec, err := h.UC.Load(c.Request.Context(), c.Param("id"))
	if errors.Is(err, os.ErrNotExist) {
		c.JSON(http.StatusNotFound, gin.H{"error": "puzzle not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	resp := loadResp{Puzzle: rec}
	if p, err := puzzles.Decode(rec.Kind, rec.Definition); err == nil {
		resp.Rendering = p.String()
	}
	c.JSON(http.StatusOK, resp)
}

type listResp struct {
	Puzzles []domain.SavedPuzzleMeta `json:"puzzles"`
	Error   string                   `json:"error,omitempty"`
}

func (h *Handler) handleList(c *gin.Context) {
	metas, err := h.UC.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, listResp{Puzzles: metas})
}

func (h *Handler) handleDelete(c *gin.Context) {
	id := c.Param("id")
	err := h.UC.Delete(c.Request.Context(), id)
	if errors.Is(err, os.ErrNotExist) {
		c.JSON(http.StatusNotFound, gin.H{"error": "puzzle not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
