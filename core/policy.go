package core

import "sort"

// Pair is a single (state, action) entry of a Policy.
type Pair struct {
	State  StateID
	Action Action
}

// ScopeMode is the evaluator's scope flag: it decides whether Prune
// discards pairs whose state is already covered by an accumulator.
type ScopeMode int

const (
	// ScopeMin prunes already-covered states — the default, used by μ
	// computations (eu, au, ef, af and the μ phase of eg/ag).
	ScopeMin ScopeMode = iota
	// ScopeMax disables pruning — used while computing the ν phase's
	// argument formula inside eg/ag (spec §4.7 step 1).
	ScopeMax
)

// Policy is a canonically sorted, deduplicated set of (state, action)
// pairs — sorted arrays keep Equals O(n) and the set operations O(n log n).
type Policy []Pair

func lessPair(a, b Pair) bool {
	if a.State != b.State {
		return a.State < b.State
	}
	return a.Action < b.Action
}

// NewPolicy builds a Policy from pairs, sorting and deduplicating.
func NewPolicy(pairs ...Pair) Policy {
	if len(pairs) == 0 {
		return nil
	}
	cp := append([]Pair(nil), pairs...)
	sort.Slice(cp, func(i, j int) bool { return lessPair(cp[i], cp[j]) })
	out := cp[:1]
	for _, p := range cp[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return Policy(out)
}

// Has reports whether pair is a member of p.
func (p Policy) Has(pair Pair) bool {
	i := sort.Search(len(p), func(i int) bool { return !lessPair(p[i], pair) })
	return i < len(p) && p[i] == pair
}

// Union returns p ∪ o.
func (p Policy) Union(o Policy) Policy {
	return NewPolicy(append(append([]Pair(nil), p...), o...)...)
}

// Intersect returns p ∩ o.
func (p Policy) Intersect(o Policy) Policy {
	out := make([]Pair, 0, len(p))
	for _, pair := range p {
		if o.Has(pair) {
			out = append(out, pair)
		}
	}
	return Policy(out)
}

// Difference returns p \ o.
func (p Policy) Difference(o Policy) Policy {
	out := make([]Pair, 0, len(p))
	for _, pair := range p {
		if !o.Has(pair) {
			out = append(out, pair)
		}
	}
	return Policy(out)
}

// Equals reports structural equality; both sides must already be
// canonically sorted, which every Policy constructor guarantees.
func (p Policy) Equals(o Policy) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// Dom returns Δ, the set of states covered by p.
func (p Policy) Dom() StateSet {
	ids := make([]StateID, 0, len(p))
	for _, pair := range p {
		ids = append(ids, pair.State)
	}
	return NewStateSet(ids...)
}

// Inter retains the pairs of p whose state lies in states.
func (p Policy) Inter(states StateSet) Policy {
	out := make([]Pair, 0, len(p))
	for _, pair := range p {
		if states.Has(pair.State) {
			out = append(out, pair)
		}
	}
	return Policy(out)
}

// Prune drops pairs of p whose state is already covered by acc, when scope
// is ScopeMin. Under ScopeMax it returns p unchanged.
func (p Policy) Prune(acc Policy, scope ScopeMode) Policy {
	if scope == ScopeMax {
		return p
	}
	dom := acc.Dom()
	out := make([]Pair, 0, len(p))
	for _, pair := range p {
		if !dom.Has(pair.State) {
			out = append(out, pair)
		}
	}
	return Policy(out)
}

// Goals retains only the τ-labeled pairs of p.
func (p Policy) Goals() Policy {
	out := make([]Pair, 0, len(p))
	for _, pair := range p {
		if pair.Action == Tau {
			out = append(out, pair)
		}
	}
	return Policy(out)
}
