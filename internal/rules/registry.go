package rules

// Ladder is the full eight-rule ladder in ascending difficulty order — the
// order the solver driver always restarts from the top of after any rule
// succeeds, and the order original_source's SOLVERS array enumerated them
// in.
var Ladder = []Rule{
	NakedSingle{},
	HiddenSingle{},
	NakedPair{},
	HiddenPair{},
	NakedTriple{},
	NakedQuad{},
	LockedCandidates{},
	XWing{},
}

// ByAbbreviation looks up a rule by its two-letter code.
func ByAbbreviation(abbr string) (Rule, bool) {
	for _, r := range Ladder {
		if r.Abbreviation() == abbr {
			return r, true
		}
	}
	return nil, false
}

// ParseFilter parses a rule-filter string of concatenated two-letter codes,
// e.g. "N1H1LC", into the subset of Ladder it names, preserving Ladder's
// order regardless of the order codes appear in the filter. An empty
// filter selects every rule, matching the original source's
// get_solvers("") behavior. Unknown pairs are ignored rather than
// rejected, e.g. "N1XYH1" enables N1 and H1 and silently drops "XY"; a
// trailing unpaired character is likewise ignored.
func ParseFilter(filter string) ([]Rule, error) {
	if filter == "" {
		return append([]Rule(nil), Ladder...), nil
	}
	wanted := make(map[string]bool)
	for i := 0; i+1 < len(filter); i += 2 {
		code := filter[i : i+2]
		if _, ok := ByAbbreviation(code); ok {
			wanted[code] = true
		}
	}
	var out []Rule
	for _, r := range Ladder {
		if wanted[r.Abbreviation()] {
			out = append(out, r)
		}
	}
	return out, nil
}
