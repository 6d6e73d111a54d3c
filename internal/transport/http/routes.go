// Package http is the engine's thin gin wrapper: stateless solve and
// generate endpoints, no sessions, scoring or daily-puzzle concerns —
// those belonged to the product the teacher's routes.go served, not to
// this engine.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sudoku-engine/internal/core"
	"sudoku-engine/internal/generator"
	"sudoku-engine/internal/rules"
	"sudoku-engine/internal/solver"
	"sudoku-engine/pkg/config"
)

var cfg *config.Config

// RegisterRoutes wires the health check plus the three stateless engine
// endpoints onto r.
func RegisterRoutes(r *gin.Engine, c *config.Config) {
	cfg = c

	r.GET("/health", healthHandler)

	api := r.Group("/api")
	{
		api.POST("/solve", solveHandler)
		api.POST("/solve/steps", solveStepsHandler)
		api.POST("/generate", generateHandler)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type solveRequest struct {
	Board  string `json:"board" binding:"required"`
	Filter string `json:"rule_filter"`
}

type solveResponse struct {
	Solved     bool        `json:"solved"`
	PercentPct float64     `json:"percent_complete"`
	Board      string      `json:"board"`
	Moves      []core.Move `json:"moves"`
}

func parseSolveRequest(c *gin.Context) (*core.Grid, []rules.Rule, bool) {
	var req solveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, false
	}
	g, err := core.Parse(req.Board)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return nil, nil, false
	}
	filterVal := req.Filter
	if filterVal == "" {
		filterVal = cfg.DefaultRuleFilter
	}
	enabled, err := rules.ParseFilter(filterVal)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, false
	}
	return g, enabled, true
}

func solveHandler(c *gin.Context) {
	g, enabled, ok := parseSolveRequest(c)
	if !ok {
		return
	}
	solved, moves, err := solver.Solve(g, enabled)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, solveResponse{
		Solved:     solved,
		PercentPct: g.PercentComplete() * 100,
		Board:      g.String(),
		Moves:      moves,
	})
}

func solveStepsHandler(c *gin.Context) {
	g, enabled, ok := parseSolveRequest(c)
	if !ok {
		return
	}
	g.AutoPromote = false
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()
	solved, moves, err := solver.StepSolve(ctx, g, enabled, nil)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, solveResponse{
		Solved:     solved,
		PercentPct: g.PercentComplete() * 100,
		Board:      g.String(),
		Moves:      moves,
	})
}

type generateRequest struct {
	Filter string `json:"rule_filter"`
}

type generateResponse struct {
	ID         string `json:"id"`
	RuleFilter string `json:"rule_filter"`
	Board      string `json:"board"`
	Givens     int    `json:"givens"`
}

func generateHandler(c *gin.Context) {
	var req generateRequest
	if c.Request.Body != nil {
		if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	filterVal := req.Filter
	if filterVal == "" {
		filterVal = cfg.DefaultRuleFilter
	}
	enabled, err := rules.ParseFilter(filterVal)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	g, err := generator.Generate(enabled, time.Now().UnixNano())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, generateResponse{
		ID:         uuid.NewString(),
		RuleFilter: filterVal,
		Board:      g.String(),
		Givens:     g.StartingCellCount,
	})
}
