package core

// Move is a single step a solver rule took: either an assignment or a set
// of eliminations, plus enough context for the step-mode renderer to
// explain it.
type Move struct {
	StepIndex    int          `json:"step_index"`
	Rule         string       `json:"rule"`
	Action       string       `json:"action"` // "assign" or "eliminate"
	Digit        int          `json:"digit,omitempty"`
	Targets      []CellRef    `json:"targets"`
	Eliminations []Candidate  `json:"eliminations,omitempty"`
	Explanation  string       `json:"explanation"`
	Refs         TechniqueRef `json:"refs"`
	Highlights   Highlights   `json:"highlights"`
}

// CellRef addresses a single cell by row/col for JSON transport, independent
// of the internal linear index.
type CellRef struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Candidate names a single digit eliminated from a single cell.
type Candidate struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Digit int `json:"digit"`
}

// TechniqueRef identifies which rule produced a Move, for callers (the HTTP
// transport, the step-mode CLI) that want a stable slug rather than the
// free-text explanation.
type TechniqueRef struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// Highlights groups the cells a renderer should draw attention to when
// presenting a Move: the cells the rule fired on, and the cells it affected.
type Highlights struct {
	Primary   []CellRef `json:"primary"`
	Secondary []CellRef `json:"secondary,omitempty"`
}
