package core

// isSelfLoop reports whether t's only possible outcome is its own source —
// a pure self-loop contributes nothing toward "progress", so both preimage
// operators exclude it unless it is the synthetic τ goal-loop.
func isSelfLoop(t Transition) bool {
	return len(t.To) == 1 && t.To[0] == t.From
}

func preimage(l *LTS, target Policy, include func(to []StateID, dom StateSet) bool) Policy {
	dom := target.Dom()
	out := make([]Pair, 0, len(l.Trans))
	for _, t := range l.Trans {
		if t.Action != Tau && isSelfLoop(t) {
			continue
		}
		if include(t.To, dom) {
			out = append(out, Pair{t.From, t.Action})
		}
	}
	return NewPolicy(out...)
}

// Wpi computes the weak preimage of target: pairs (S, A) for which some
// outcome of the transition lands in dom(target) — "this action might
// make progress".
func Wpi(l *LTS, target Policy) Policy {
	return preimage(l, target, func(to []StateID, dom StateSet) bool {
		for _, s := range to {
			if dom.Has(s) {
				return true
			}
		}
		return false
	})
}

// Spi computes the strong preimage of target: pairs (S, A) for which every
// outcome of the transition lands in dom(target) — "this action is
// guaranteed to make progress".
func Spi(l *LTS, target Policy) Policy {
	return preimage(l, target, func(to []StateID, dom StateSet) bool {
		for _, s := range to {
			if !dom.Has(s) {
				return false
			}
		}
		return true
	})
}
