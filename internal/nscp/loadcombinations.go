package nscp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gosap/internal/sap"
	"github.com/alexiusacademia/gosap/internal/sap/enums"
)

// LoadType is a kind of nominal load.
type LoadType int

const (
	Dead       LoadType = iota // D
	Live                       // L
	Roof                       // Lr
	Wind                       // W
	Earthquake                 // E
	Rain                       // R
)

var loadSymbols = [...]string{"D", "L", "Lr", "W", "E", "R"}

func (l LoadType) String() string {
	if l < 0 || int(l) >= len(loadSymbols) {
		return "LoadType(" + strconv.Itoa(int(l)) + ")"
	}
	return loadSymbols[l]
}

// ParseLoadType accepts the symbols D, L, Lr, W, E and R.
func ParseLoadType(s string) (LoadType, error) {
	for i, sym := range loadSymbols {
		if strings.EqualFold(sym, strings.TrimSpace(s)) {
			return LoadType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown load type %q, want one of %s", s, strings.Join(loadSymbols[:], ", "))
}

// Factor scales one load type.
type Factor struct {
	Load   LoadType
	Factor float64
}

// LoadCombination represents an NSCP load combination
// Based on NSCP 2015 Section 203.3 - Load Combinations Using Strength Design
type LoadCombination struct {
	ID          string
	Description string
	Always      []Factor
	// OneOf groups contribute exactly one of their factors, such as
	// 0.5(Lr or R).
	OneOf [][]Factor
}

// NSCP 2015 Section 203.3.1 - Basic Load Combinations
var LoadCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Always:      []Factor{{Dead, 1.4}},
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L + 0.5(Lr or R)",
		Always:      []Factor{{Dead, 1.2}, {Live, 1.6}},
		OneOf:       [][]Factor{{{Roof, 0.5}, {Rain, 0.5}}},
	},
	{
		ID:          "3",
		Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)",
		Always:      []Factor{{Dead, 1.2}},
		OneOf:       [][]Factor{{{Roof, 1.6}, {Rain, 1.6}}, {{Live, 1.0}, {Wind, 0.5}}},
	},
	{
		ID:          "4",
		Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)",
		Always:      []Factor{{Dead, 1.2}, {Wind, 1.0}, {Live, 1.0}},
		OneOf:       [][]Factor{{{Roof, 0.5}, {Rain, 0.5}}},
	},
	{
		ID:          "5",
		Description: "1.2D + 1.0E + 1.0L",
		Always:      []Factor{{Dead, 1.2}, {Earthquake, 1.0}, {Live, 1.0}},
	},
	{
		ID:          "6",
		Description: "0.9D + 1.0W",
		Always:      []Factor{{Dead, 0.9}, {Wind, 1.0}},
	},
	{
		ID:          "7",
		Description: "0.9D + 1.0E",
		Always:      []Factor{{Dead, 0.9}, {Earthquake, 1.0}},
	},
}

// SimplifiedCombinations for common beam design scenarios
// These are the most frequently used combinations for gravity loads
var SimplifiedCombinations = []LoadCombination{
	LoadCombinations[0],
	{
		ID:          "2",
		Description: "1.2D + 1.6L",
		Always:      []Factor{{Dead, 1.2}, {Live, 1.6}},
	},
}

// Cases names the load case that carries each load type. Unassigned load
// types are left out of every combination.
type Cases map[LoadType]string

// Term is one scaled load case of a generated combination.
type Term struct {
	Load   LoadType
	Case   string
	Factor float64
}

// Generated is a combination ready to be defined in the model.
type Generated struct {
	Name        string
	Description string
	Terms       []Term
}

// Expand turns lc into concrete combinations for cases: one per choice of
// the OneOf groups, leaving out unassigned load types. Variants are
// suffixed a, b, c in order.
func (lc LoadCombination) Expand(prefix string, cases Cases) []Generated {
	variants := [][]Term{lc.terms(lc.Always, cases)}
	for _, group := range lc.OneOf {
		var options [][]Term
		for _, f := range group {
			if t := lc.terms([]Factor{f}, cases); len(t) > 0 {
				options = append(options, t)
			}
		}
		if len(options) == 0 {
			continue
		}
		var next [][]Term
		for _, v := range variants {
			for _, o := range options {
				next = append(next, append(append([]Term(nil), v...), o...))
			}
		}
		variants = next
	}

	var out []Generated
	for i, terms := range variants {
		if len(terms) == 0 {
			continue
		}
		name := prefix + lc.ID
		if len(variants) > 1 {
			name += string(rune('a' + i))
		}
		out = append(out, Generated{Name: name, Description: describe(terms), Terms: terms})
	}
	return out
}

func (lc LoadCombination) terms(factors []Factor, cases Cases) []Term {
	var out []Term
	for _, f := range factors {
		if name, ok := cases[f.Load]; ok && name != "" {
			out = append(out, Term{Load: f.Load, Case: name, Factor: f.Factor})
		}
	}
	return out
}

func describe(terms []Term) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = strconv.FormatFloat(t.Factor, 'f', -1, 64) + t.Load.String()
	}
	return strings.Join(parts, " + ")
}

// key identifies a term set regardless of order.
func key(terms []Term) string {
	var by [len(loadSymbols)]float64
	for _, t := range terms {
		by[t.Load] += t.Factor
	}
	return fmt.Sprint(by)
}

// Expand generates the combinations of set for cases, dropping any that
// repeats an earlier one once unassigned loads are left out.
func Expand(set []LoadCombination, prefix string, cases Cases) []Generated {
	seen := map[string]bool{}
	var out []Generated
	for _, lc := range set {
		for _, g := range lc.Expand(prefix, cases) {
			k := key(g.Terms)
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, g)
		}
	}
	return out
}

// DefineCombinations adds the combinations of set to the model as linear
// additive combinations of load cases and returns what it defined.
func DefineCombinations(combo sap.RespComboV14, cases Cases, set []LoadCombination, prefix string) ([]Generated, error) {
	gens := Expand(set, prefix, cases)
	for _, g := range gens {
		status, err := combo.Add(g.Name, enums.LinearAdditive)
		if err := sap.Check("RespCombo.Add "+g.Name, status, err); err != nil {
			return nil, err
		}
		for _, t := range g.Terms {
			status, err := combo.SetCaseList(g.Name, enums.LoadCase, t.Case, t.Factor)
			if err := sap.Check("RespCombo.SetCaseList "+g.Name, status, err); err != nil {
				return nil, err
			}
		}
	}
	return gens, nil
}
