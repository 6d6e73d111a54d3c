// Package constants holds the grid geometry and solver/generator limits
// shared across the engine, kept together the way the teacher's own
// pkg/constants did rather than scattered as magic numbers per package.
package constants

// Grid geometry
const (
	GridSize   = 9
	BoxSize    = 3
	TotalCells = 81
	MinGivens  = 17
)

// Solver limits
const (
	MaxSolverSteps = 500
)

// DefaultPort is the HTTP server's fallback listen port.
const DefaultPort = "8080"

// DefaultRuleFilter selects the full ladder when no -g flag is given.
const DefaultRuleFilter = ""

// DefaultPacingMillis is how long step mode waits between auto-advanced
// steps when -a is set.
const DefaultPacingMillis = 1000
