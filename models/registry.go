// Package models is the consumer-provided model registry: a small set of
// named LTSes and formulas of interest, the way a production user of the
// evaluator would wire up its own planning domains. None of this is part
// of the evaluator's correctness surface.
package models

import "alphactl/core"

// Spec names a registered model and the formulas worth checking against it,
// mirroring the teacher's ModelSpec interface shape.
type Spec struct {
	ID          int
	Name        string
	Description string
	Build       func() *core.LTS
	Formulas    []FormulaSpec
}

// FormulaSpec names a formula worth checking, for display/docs use.
type FormulaSpec struct {
	Name    string
	Formula core.Formula
}

// Registry lists every model this module ships.
var Registry = []Spec{
	{
		ID:          1,
		Name:        "model1",
		Description: "five-state example with a nondeterministic self-looping trap at state 3",
		Build:       Model1,
		Formulas: []FormulaSpec{
			{"reach-r-not-p", core.EF{Arg: core.And{Left: core.Atomic{Prop: "r"}, Right: core.Not{Arg: core.Atomic{Prop: "p"}}}}},
			{"always-can-reach-r-not-p", core.AG{Arg: core.EF{Arg: core.And{Left: core.Atomic{Prop: "r"}, Right: core.Not{Arg: core.Atomic{Prop: "p"}}}}}},
		},
	},
	{
		ID:          4,
		Name:        "model4",
		Description: "model1 with an added action that dissolves state 3's trap",
		Build:       Model4,
		Formulas: []FormulaSpec{
			{"always-can-reach-r-not-p", core.AG{Arg: core.EF{Arg: core.And{Left: core.Atomic{Prop: "r"}, Right: core.Not{Arg: core.Atomic{Prop: "p"}}}}}},
			{"always-p-or-q-until-r", core.AG{Arg: core.EU{Until: core.Or{Left: core.Atomic{Prop: "p"}, Right: core.Atomic{Prop: "q"}}, Goal: core.Atomic{Prop: "r"}}}},
		},
	},
	{
		ID:          6,
		Name:        "gripper",
		Description: "two-room, one-ball gripper domain with a nondeterministic grab action",
		Build:       Gripper,
		Formulas: []FormulaSpec{
			{"always-can-deliver-ball", core.AG{Arg: core.EF{Arg: core.Atomic{Prop: "at(ball,2)"}}}},
		},
	},
	{
		ID:          100,
		Name:        "order",
		Description: "order lifecycle: new, accepted, delivered or cancelled",
		Build:       Order,
		Formulas: []FormulaSpec{
			{"always-can-deliver", core.AG{Arg: core.EF{Arg: core.Atomic{Prop: "delivered"}}}},
		},
	},
	{
		ID:          101,
		Name:        "mutex",
		Description: "two-process mutual exclusion in their critical sections",
		Build:       Mutex,
		Formulas: []FormulaSpec{
			{"never-both-critical", core.AG{Arg: core.Not{Arg: core.Atomic{Prop: "both-critical"}}}},
		},
	},
}

// Lookup finds a registered model by id.
func Lookup(id int) (Spec, bool) {
	for _, s := range Registry {
		if s.ID == id {
			return s, true
		}
	}
	return Spec{}, false
}
