package core

import "testing"

// model1 is the five-state example from the worked scenarios: state 3's
// only onward action (c) nondeterministically lands on state 4, which
// fails the "r and not p" target.
func model1() *LTS {
	return &LTS{
		States: []LabeledState{
			{ID: "0", Labels: []Prop{"p", "q"}},
			{ID: "1", Labels: []Prop{"p"}},
			{ID: "2", Labels: []Prop{"r"}},
			{ID: "3", Labels: []Prop{"q"}},
			{ID: "4", Labels: []Prop{"p", "q", "r"}},
		},
		Trans: []Transition{
			{From: "0", Action: "a", To: []StateID{"1"}},
			{From: "0", Action: "b", To: []StateID{"3"}},
			{From: "1", Action: "b", To: []StateID{"1", "2"}},
			{From: "3", Action: "a", To: []StateID{"3"}},
			{From: "3", Action: "c", To: []StateID{"2", "4"}},
		},
	}
}

// model4 adds a state 5 (also labeled r) and an action d from state 3
// straight to it, giving 3 a second, always-successful route into the
// target region.
func model4() *LTS {
	m := model1()
	m.States = append(m.States, LabeledState{ID: "5", Labels: []Prop{"r"}})
	m.Trans = append(m.Trans, Transition{From: "3", Action: "d", To: []StateID{"5"}})
	return m
}

func reachRNotP() Formula {
	return EF{Arg: And{Left: Atomic{Prop: "r"}, Right: Not{Arg: Atomic{Prop: "p"}}}}
}

func TestT1_ExistsPathToRAndNotP(t *testing.T) {
	p, err := Sat(model1(), reachRNotP())
	if err != nil {
		t.Fatalf("Sat returned error: %v", err)
	}
	for _, want := range []Pair{{"0", "b"}, {"1", "b"}, {"3", "c"}, {"2", Tau}} {
		if !p.Has(want) {
			t.Errorf("policy %v missing expected pair %v", p, want)
		}
	}
}

func TestT2_AlwaysCanReachRAndNotP(t *testing.T) {
	p, err := Sat(model1(), AG{Arg: reachRNotP()})
	if err != nil {
		t.Fatalf("Sat returned error: %v", err)
	}
	want := NewPolicy(Pair{"0", "a"}, Pair{"1", "b"}, Pair{"2", Tau})
	if !p.Equals(want) {
		t.Errorf("ag(ef(r and not p)) over model1 = %v, want %v (state 3's trap must be dropped)", p, want)
	}

	induced := Induced(model1(), p)
	ids := induced.stateIDs()
	if len(ids) != 3 {
		t.Errorf("induced LTS has %d states, want 3 ({0,1,2})", len(ids))
	}
	for _, id := range []StateID{"0", "1", "2"} {
		found := false
		for _, s := range ids {
			if s == id {
				found = true
			}
		}
		if !found {
			t.Errorf("induced LTS missing state %s", id)
		}
	}
}

func TestT3_AddingActionDDissolvesTheTrap(t *testing.T) {
	p, err := Sat(model4(), AG{Arg: reachRNotP()})
	if err != nil {
		t.Fatalf("Sat returned error: %v", err)
	}
	want := NewPolicy(
		Pair{"0", "a"}, Pair{"0", "b"}, Pair{"1", "b"},
		Pair{"2", Tau}, Pair{"3", "d"}, Pair{"5", Tau},
	)
	if !p.Equals(want) {
		t.Errorf("ag(ef(r and not p)) over model4 = %v, want %v", p, want)
	}
	if !p.Dom().Equals(NewStateSet("0", "1", "2", "3", "5")) {
		t.Errorf("expected every state but the dead end 4 to be covered, got dom %v", p.Dom())
	}
}

func TestT4_AlwaysPOrQUntilR(t *testing.T) {
	phi := AG{Arg: EU{
		Until: Or{Left: Atomic{Prop: "p"}, Right: Atomic{Prop: "q"}},
		Goal:  Atomic{Prop: "r"},
	}}
	p, err := Sat(model4(), phi)
	if err != nil {
		t.Fatalf("Sat returned error: %v", err)
	}
	if !p.Dom().Equals(NewStateSet("0", "1", "2", "3", "4", "5")) {
		t.Errorf("expected every state covered, got dom %v", p.Dom())
	}
}

// gripper is the two-room, one-ball planning domain: grab may
// nondeterministically fail and loop back to the start, but the other
// outcome still makes progress.
func gripper() *LTS {
	return &LTS{
		States: []LabeledState{
			{ID: "s0", Labels: []Prop{"at(robot,1)", "at(ball,1)"}},
			{ID: "s1", Labels: []Prop{"at(robot,1)", "holding"}},
			{ID: "s2", Labels: []Prop{"at(robot,2)", "holding"}},
			{ID: "s3", Labels: []Prop{"at(robot,2)", "at(ball,2)"}},
		},
		Trans: []Transition{
			{From: "s0", Action: "grab", To: []StateID{"s0", "s1"}},
			{From: "s1", Action: "move", To: []StateID{"s2"}},
			{From: "s2", Action: "drop", To: []StateID{"s3"}},
			{From: "s3", Action: "idle", To: []StateID{"s3"}},
		},
	}
}

func TestGripper_AlwaysCanDeliverDespiteNondeterministicGrab(t *testing.T) {
	p, err := Sat(gripper(), AG{Arg: EF{Arg: Atomic{Prop: "at(ball,2)"}}})
	if err != nil {
		t.Fatalf("Sat returned error: %v", err)
	}
	want := NewPolicy(
		Pair{"s0", "grab"}, Pair{"s1", "move"}, Pair{"s2", "drop"}, Pair{"s3", Tau},
	)
	if !p.Equals(want) {
		t.Errorf("ag(ef(at(ball,2))) over gripper = %v, want %v", p, want)
	}
}

func TestNotRejectsNonAtomicArgument(t *testing.T) {
	_, err := Sat(model1(), Not{Arg: And{Left: Atomic{Prop: "p"}, Right: Atomic{Prop: "q"}}})
	if err == nil {
		t.Fatal("expected an error negating a compound formula")
	}
	if KindOf(err) != ErrNonAtomicNegation {
		t.Errorf("KindOf(err) = %s, want %s", KindOf(err), ErrNonAtomicNegation)
	}
}

func TestValidateRejectsMalformedLTS(t *testing.T) {
	bad := &LTS{
		States: []LabeledState{{ID: "0"}},
		Trans:  []Transition{{From: "0", Action: "a", To: []StateID{"9"}}},
	}
	_, err := Sat(bad, Atomic{Prop: True})
	if err == nil {
		t.Fatal("expected an error for a transition to an unknown state")
	}
	if KindOf(err) != ErrMalformedLTS {
		t.Errorf("KindOf(err) = %s, want %s", KindOf(err), ErrMalformedLTS)
	}
}

// unknownFormula is a test-only Formula variant used to exercise the
// evaluator's closed type switch default case; it cannot be constructed
// outside this package since isFormula is unexported.
type unknownFormula struct{}

func (unknownFormula) isFormula() {}

func TestSatRejectsUnknownFormulaShape(t *testing.T) {
	_, err := Sat(model1(), unknownFormula{})
	if err == nil {
		t.Fatal("expected an error for an unrecognised formula shape")
	}
	if KindOf(err) != ErrUnknownOperator {
		t.Errorf("KindOf(err) = %s, want %s", KindOf(err), ErrUnknownOperator)
	}
}

func TestScopeIsRestoredAfterAG(t *testing.T) {
	l := model1()
	ctx := &evalContext{lts: l, scope: ScopeMin, log: NewRunLogger()}
	if _, err := ctx.satAG(AG{Arg: reachRNotP()}); err != nil {
		t.Fatalf("satAG returned error: %v", err)
	}
	if ctx.scope != ScopeMin {
		t.Errorf("scope after satAG = %v, want ScopeMin restored", ctx.scope)
	}
}
