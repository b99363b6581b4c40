package inherit

import (
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/rry-lang/rryc/internal/ident"
)

// Components runs Tarjan's strongly-connected-components algorithm
// over m's directed graph (A → B iff B ∈ mentions(A)) and returns an
// ordered sequence of SCC sets: Tarjan's own completion order already
// guarantees that if A mentions B and they land in different
// components, B's component is finished — and therefore appears in the
// result — before A's, which is exactly spec.md §4.5's required
// ordering for building the subtyping lattice one component at a time.
// Within one SCC, iteration order is unspecified, as the spec allows.
func Components(m Mentions) []*treeset.Set {
	t := &tarjan{
		mentions: m,
		index:    map[ident.Name]int{},
		lowlink:  map[ident.Name]int{},
		onStack:  map[ident.Name]bool{},
	}

	keys := make([]ident.Name, 0, len(m))
	for n := range m {
		keys = append(keys, n)
	}
	for _, n := range newNameSet(keys...).Values() {
		name := n.(ident.Name)
		if _, seen := t.index[name]; !seen {
			t.strongConnect(name)
		}
	}
	return t.result
}

type tarjan struct {
	mentions Mentions
	index    map[ident.Name]int
	lowlink  map[ident.Name]int
	onStack  map[ident.Name]bool
	stack    []ident.Name
	counter  int
	result   []*treeset.Set
}

func (t *tarjan) strongConnect(v ident.Name) {
	t.index[v] = t.counter
	t.lowlink[v] = t.counter
	t.counter++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	if children, ok := t.mentions[v]; ok {
		for _, raw := range children.Values() {
			w := raw.(ident.Name)
			if _, seen := t.index[w]; !seen {
				t.strongConnect(w)
				if t.lowlink[w] < t.lowlink[v] {
					t.lowlink[v] = t.lowlink[w]
				}
			} else if t.onStack[w] {
				if t.index[w] < t.lowlink[v] {
					t.lowlink[v] = t.index[w]
				}
			}
		}
	}

	if t.lowlink[v] != t.index[v] {
		return
	}

	set := newNameSet()
	for {
		n := len(t.stack) - 1
		w := t.stack[n]
		t.stack = t.stack[:n]
		t.onStack[w] = false
		set.Add(w)
		if w == v {
			break
		}
	}
	t.result = append(t.result, set)
}
