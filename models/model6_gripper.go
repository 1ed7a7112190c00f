package models

import "alphactl/core"

// Gripper builds the two-room, one-ball planning domain: a robot in room 1
// grabs a ball (which may nondeterministically fail and leave it back where
// it started), moves to room 2, and drops it. This is the canonical
// strong-cyclic-planning example: grab's failure outcome loops back to the
// start, but because the other outcome still makes progress, ag(ef(...))
// still covers the initial state under the fairness assumption the μ phase
// of ag encodes (an action retried forever eventually produces every one of
// its possible outcomes).
//
// States:
//
//	s0: robot@1, ball@1, not holding
//	s1: robot@1, holding ball
//	s2: robot@2, holding ball
//	s3: robot@2, ball@2 (delivered)
//
// Transitions:
//
//	(s0, grab, {s0, s1})  -- may fail and stay put
//	(s1, move, {s2})
//	(s2, drop, {s3})
//	(s3, idle, {s3})      -- true self-loop, excluded from preimages
func Gripper() *core.LTS {
	return &core.LTS{
		States: []core.LabeledState{
			{ID: "s0", Labels: []core.Prop{"at(robot,1)", "at(ball,1)"}},
			{ID: "s1", Labels: []core.Prop{"at(robot,1)", "holding"}},
			{ID: "s2", Labels: []core.Prop{"at(robot,2)", "holding"}},
			{ID: "s3", Labels: []core.Prop{"at(robot,2)", "at(ball,2)"}},
		},
		Trans: []core.Transition{
			{From: "s0", Action: "grab", To: []core.StateID{"s0", "s1"}},
			{From: "s1", Action: "move", To: []core.StateID{"s2"}},
			{From: "s2", Action: "drop", To: []core.StateID{"s3"}},
			{From: "s3", Action: "idle", To: []core.StateID{"s3"}},
		},
	}
}
