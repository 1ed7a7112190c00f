// Package core implements the α-CTL evaluator: the LTS model, policy
// algebra, preimage operators, fixed-point driver and formula evaluator
// described by the planning-domain model checker this module builds.
package core

import "sort"

// ordered constrains the set utilities below to the string-shaped tokens
// (StateID, Action, Prop) the data model is built from (spec §4.1).
type ordered interface{ ~string }

// dedupeSorted returns xs deduplicated and sorted, without mutating xs.
func dedupeSorted[T ordered](xs []T) []T {
	if len(xs) == 0 {
		return nil
	}
	cp := append([]T(nil), xs...)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	out := cp[:1]
	for _, x := range cp[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}

func toIndex[T ordered](xs []T) map[T]struct{} {
	m := make(map[T]struct{}, len(xs))
	for _, x := range xs {
		m[x] = struct{}{}
	}
	return m
}

func setUnion[T ordered](a, b []T) []T {
	return dedupeSorted(append(append([]T(nil), a...), b...))
}

func setIntersect[T ordered](a, b []T) []T {
	idx := toIndex(b)
	out := make([]T, 0, len(a))
	for _, x := range dedupeSorted(a) {
		if _, ok := idx[x]; ok {
			out = append(out, x)
		}
	}
	return out
}

func setDifference[T ordered](a, b []T) []T {
	idx := toIndex(b)
	out := make([]T, 0, len(a))
	for _, x := range dedupeSorted(a) {
		if _, ok := idx[x]; !ok {
			out = append(out, x)
		}
	}
	return out
}

func setSubset[T ordered](a, b []T) bool {
	idx := toIndex(b)
	for _, x := range a {
		if _, ok := idx[x]; !ok {
			return false
		}
	}
	return true
}

// setBuild is the "comprehension" utility of spec §4.1: build(X, predicate).
func setBuild[T ordered](universe []T, pred func(T) bool) []T {
	out := make([]T, 0, len(universe))
	for _, x := range universe {
		if pred(x) {
			out = append(out, x)
		}
	}
	return dedupeSorted(out)
}

// StateSet is a canonically sorted, deduplicated set of StateIDs.
type StateSet []StateID

// NewStateSet builds a StateSet from ids, sorting and deduplicating.
func NewStateSet(ids ...StateID) StateSet { return StateSet(dedupeSorted(ids)) }

// Has reports whether id is a member of s.
func (s StateSet) Has(id StateID) bool {
	i := sort.Search(len(s), func(i int) bool { return s[i] >= id })
	return i < len(s) && s[i] == id
}

func (s StateSet) Union(o StateSet) StateSet {
	return StateSet(setUnion([]StateID(s), []StateID(o)))
}

func (s StateSet) Intersect(o StateSet) StateSet {
	return StateSet(setIntersect([]StateID(s), []StateID(o)))
}

func (s StateSet) Difference(o StateSet) StateSet {
	return StateSet(setDifference([]StateID(s), []StateID(o)))
}

func (s StateSet) Subset(o StateSet) bool {
	return setSubset([]StateID(s), []StateID(o))
}

func (s StateSet) Equals(o StateSet) bool {
	return len(s) == len(o) && s.Subset(o)
}

// BuildStates filters universe by pred, returning a canonical StateSet.
func BuildStates(universe []StateID, pred func(StateID) bool) StateSet {
	return StateSet(setBuild(universe, pred))
}
