package models

import "alphactl/core"

// Model1 builds the five-state example: state 3's only forward action (c)
// nondeterministically lands on a state (4) that fails the target
// proposition, so ag(ef(...)) must drop state 3 from its policy.
//
// States: 0:[p,q]  1:[p]  2:[r]  3:[q]  4:[p,q,r]
// Transitions: (0,a,{1}) (0,b,{3}) (1,b,{1,2}) (3,a,{3}) (3,c,{2,4})
func Model1() *core.LTS {
	return &core.LTS{
		States: []core.LabeledState{
			{ID: "0", Labels: []core.Prop{"p", "q"}},
			{ID: "1", Labels: []core.Prop{"p"}},
			{ID: "2", Labels: []core.Prop{"r"}},
			{ID: "3", Labels: []core.Prop{"q"}},
			{ID: "4", Labels: []core.Prop{"p", "q", "r"}},
		},
		Trans: []core.Transition{
			{From: "0", Action: "a", To: []core.StateID{"1"}},
			{From: "0", Action: "b", To: []core.StateID{"3"}},
			{From: "1", Action: "b", To: []core.StateID{"1", "2"}},
			{From: "3", Action: "a", To: []core.StateID{"3"}},
			{From: "3", Action: "c", To: []core.StateID{"2", "4"}},
		},
	}
}
