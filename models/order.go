package models

import "alphactl/core"

// Order adapts the teacher's OrderGraph: a single order moves from New to
// Accepted, then nondeterministically to Delivered or Cancelled, both of
// which are absorbing. Unlike the teacher's version (plain reachability
// over a Kripke structure), resolve's two outcomes are modeled as one
// nondeterministic transition so ag(ef(delivered)) is a genuine test of
// the evaluator rather than trivially true.
func Order() *core.LTS {
	return &core.LTS{
		States: []core.LabeledState{
			{ID: "new"},
			{ID: "accepted"},
			{ID: "delivered", Labels: []core.Prop{"delivered"}},
			{ID: "cancelled", Labels: []core.Prop{"cancelled"}},
		},
		Trans: []core.Transition{
			{From: "new", Action: "accept", To: []core.StateID{"accepted"}},
			{From: "accepted", Action: "resolve", To: []core.StateID{"delivered", "cancelled"}},
			{From: "delivered", Action: "idle", To: []core.StateID{"delivered"}},
			{From: "cancelled", Action: "idle", To: []core.StateID{"cancelled"}},
		},
	}
}
