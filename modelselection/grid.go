package modelselection

import "sort"

// Params is one point of a hyperparameter grid.
type Params map[string]float64

// ParamGrid declares the candidate values per hyperparameter name.
type ParamGrid map[string][]float64

// Combinations enumerates the full cartesian product of the grid. Keys are
// walked in sorted order, so the enumeration order is stable across runs.
func (g ParamGrid) Combinations() []Params {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	combos := []Params{{}}
	for _, key := range keys {
		next := make([]Params, 0, len(combos)*len(g[key]))
		for _, base := range combos {
			for _, v := range g[key] {
				p := make(Params, len(base)+1)
				for bk, bv := range base {
					p[bk] = bv
				}
				p[key] = v
				next = append(next, p)
			}
		}
		combos = next
	}
	return combos
}
