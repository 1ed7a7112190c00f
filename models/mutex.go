package models

import "alphactl/core"

// Mutex adapts the teacher's mutual-exclusion example: two processes each
// cycle through non-critical / trying / critical, and no transition ever
// reaches a state where both are critical at once. Every transition here is
// deterministic (a single outcome), unlike the planning-style models above.
func Mutex() *core.LTS {
	det := func(from, action string, to string) core.Transition {
		return core.Transition{From: core.StateID(from), Action: core.Action(action), To: []core.StateID{core.StateID(to)}}
	}
	return &core.LTS{
		States: []core.LabeledState{
			{ID: "n1n2"},
			{ID: "t1n2", Labels: []core.Prop{"trying1"}},
			{ID: "c1n2", Labels: []core.Prop{"critical1"}},
			{ID: "n1t2", Labels: []core.Prop{"trying2"}},
			{ID: "n1c2", Labels: []core.Prop{"critical2"}},
			{ID: "t1t2", Labels: []core.Prop{"trying1", "trying2"}},
			{ID: "c1t2", Labels: []core.Prop{"critical1", "trying2"}},
			{ID: "t1c2", Labels: []core.Prop{"trying1", "critical2"}},
		},
		Trans: []core.Transition{
			det("n1n2", "req1", "t1n2"),
			det("n1n2", "req2", "n1t2"),
			det("t1n2", "enter1", "c1n2"),
			det("t1n2", "req2", "t1t2"),
			det("n1t2", "req1", "t1t2"),
			det("n1t2", "enter2", "n1c2"),
			det("c1n2", "exit1", "n1n2"),
			det("n1c2", "exit2", "n1n2"),
			det("t1t2", "enter1", "c1t2"),
			det("t1t2", "enter2", "t1c2"),
			det("c1t2", "exit1", "n1t2"),
			det("t1c2", "exit2", "t1n2"),
		},
	}
}
