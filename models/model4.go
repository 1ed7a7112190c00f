package models

import "alphactl/core"

// Model4 is Model1 with an added state 5 (labeled r, like state 2) and an
// added action d from state 3 straight to it. Action d gives state 3 a
// second, deterministic, always-successful route into the target region,
// so ag(ef(r ∧ ¬p)) now covers every state but the pure dead end (4).
func Model4() *core.LTS {
	m := Model1()
	m.States = append(m.States, core.LabeledState{ID: "5", Labels: []core.Prop{"r"}})
	m.Trans = append(m.Trans, core.Transition{From: "3", Action: "d", To: []core.StateID{"5"}})
	return m
}
