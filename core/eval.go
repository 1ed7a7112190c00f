package core

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Formula is the closed sum type the evaluator dispatches over. The
// unexported marker method keeps it sealed to the variants below.
type Formula interface {
	isFormula()
}

// Atomic is satisfied by states labeled with Prop (or by every state, when
// Prop is True).
type Atomic struct{ Prop Prop }

// Not is satisfied by every state that does not satisfy Arg. Arg must
// itself be Atomic; negating a compound formula is not supported
// (spec.md's non-goal: "no normalization of arbitrary negation").
type Not struct{ Arg Formula }

// And is satisfied by states satisfying both Left and Right.
type And struct{ Left, Right Formula }

// Or is satisfied by states satisfying either Left or Right.
type Or struct{ Left, Right Formula }

// EX is satisfied by states with some action, some outcome of which
// satisfies Arg.
type EX struct{ Arg Formula }

// AX is satisfied by states with some action, every outcome of which
// satisfies Arg.
type AX struct{ Arg Formula }

// EU is satisfied by states from which Until can be maintained until Goal
// becomes reachable via a chain of weak-preimage witnesses.
type EU struct{ Until, Goal Formula }

// AU is EU's strong-preimage counterpart.
type AU struct{ Until, Goal Formula }

// EF is satisfied by states that can reach Arg via some chain of
// weak-preimage witnesses.
type EF struct{ Arg Formula }

// AF is EF's strong-preimage counterpart.
type AF struct{ Arg Formula }

// EG is AG's weak-preimage counterpart: states with some action that may
// keep them inside the Arg region, from which a goal of that region stays
// reachable. It shares AG's two-phase construction, so nonprogressing traps
// are removed.
type EG struct{ Arg Formula }

// AG is satisfied by states for which Arg holds along every policy-chosen
// step and can be maintained without falling into a nonprogressing trap —
// the "strong cyclic plan" construction.
type AG struct{ Arg Formula }

func (Atomic) isFormula() {}
func (Not) isFormula()    {}
func (And) isFormula()    {}
func (Or) isFormula()     {}
func (EX) isFormula()     {}
func (AX) isFormula()     {}
func (EU) isFormula()     {}
func (AU) isFormula()     {}
func (EF) isFormula()     {}
func (AF) isFormula()     {}
func (EG) isFormula()     {}
func (AG) isFormula()     {}

func isAtomic(f Formula) bool { _, ok := f.(Atomic); return ok }

// evalContext carries the LTS and the scope flag the evaluator threads
// through a single Sat call. It is never a package-level global: eg/ag
// save and restore it via defer around their two-phase construction.
type evalContext struct {
	lts   *LTS
	scope ScopeMode
	log   *logrus.Entry
}

// Sat evaluates phi over l using a fresh run logger tagged with a new run id.
func Sat(l *LTS, phi Formula) (Policy, error) {
	return SatWithLogger(l, phi, NewRunLogger())
}

// SatWithLogger evaluates phi over l, routing trace lines through log.
func SatWithLogger(l *LTS, phi Formula, log *logrus.Entry) (Policy, error) {
	if err := l.Validate(); err != nil {
		log.WithError(err).Error("malformed LTS")
		return nil, err
	}
	ctx := &evalContext{lts: l, scope: ScopeMin, log: log}
	observeScope(ctx.scope)
	p, err := ctx.sat(phi)
	if err != nil {
		log.WithError(err).WithField("kind", KindOf(err)).Error("sat failed")
		return nil, err
	}
	policySizeHist.Observe(float64(len(p)))
	log.WithField("policy_size", len(p)).Info("sat")
	return p, nil
}

// SatTop evaluates phi over l and returns the induced LTS lts(Π) rather
// than the raw policy, resetting scope to min at entry (spec §4.9).
func SatTop(l *LTS, phi Formula) (*LTS, error) {
	p, err := Sat(l, phi)
	if err != nil {
		return nil, err
	}
	return Induced(l, p), nil
}

func (c *evalContext) sat(phi Formula) (Policy, error) {
	switch f := phi.(type) {
	case Atomic:
		return c.satAtomic(f), nil
	case Not:
		return c.satNot(f)
	case And:
		return c.satAnd(f)
	case Or:
		return c.satOr(f)
	case EX:
		return c.satEX(f)
	case AX:
		return c.satAX(f)
	case EU:
		return c.satEU(f)
	case AU:
		return c.satAU(f)
	case EF:
		return c.satEF(f)
	case AF:
		return c.satAF(f)
	case EG:
		return c.satEG(f)
	case AG:
		return c.satAG(f)
	default:
		return nil, errUnknownOperator(fmt.Sprintf("%T", phi))
	}
}

func (c *evalContext) satAtomic(f Atomic) Policy {
	states := BuildStates(c.lts.stateIDs(), func(s StateID) bool { return c.lts.HasProp(s, f.Prop) })
	return toGoals(states)
}

func toGoals(states StateSet) Policy {
	pairs := make([]Pair, 0, len(states))
	for _, s := range states {
		pairs = append(pairs, Pair{s, Tau})
	}
	return NewPolicy(pairs...)
}

func (c *evalContext) satNot(f Not) (Policy, error) {
	if !isAtomic(f.Arg) {
		return nil, errNonAtomicNegation(fmt.Sprintf("%T", f.Arg))
	}
	all := c.satAtomic(Atomic{Prop: True})
	sub := c.satAtomic(f.Arg.(Atomic))
	return all.Difference(sub), nil
}

func (c *evalContext) satAnd(f And) (Policy, error) {
	left, err := c.sat(f.Left)
	if err != nil {
		return nil, err
	}
	right, err := c.sat(f.Right)
	if err != nil {
		return nil, err
	}
	return left.Intersect(right), nil
}

func (c *evalContext) satOr(f Or) (Policy, error) {
	left, err := c.sat(f.Left)
	if err != nil {
		return nil, err
	}
	right, err := c.sat(f.Right)
	if err != nil {
		return nil, err
	}
	return left.Union(right), nil
}

func (c *evalContext) satEX(f EX) (Policy, error) {
	sub, err := c.sat(f.Arg)
	if err != nil {
		return nil, err
	}
	return toGoals(Wpi(c.lts, sub).Dom()), nil
}

func (c *evalContext) satAX(f AX) (Policy, error) {
	sub, err := c.sat(f.Arg)
	if err != nil {
		return nil, err
	}
	return toGoals(Spi(c.lts, sub).Dom()), nil
}

func (c *evalContext) satEU(f EU) (Policy, error) {
	untilP, err := c.sat(f.Until)
	if err != nil {
		return nil, err
	}
	goalP, err := c.sat(f.Goal)
	if err != nil {
		return nil, err
	}
	return c.runFixpoint("eu", func() (Policy, error) {
		return Lfp(c.lts, omegaEU(c.lts, untilP.Dom(), goalP, c.scope))
	})
}

func (c *evalContext) satAU(f AU) (Policy, error) {
	untilP, err := c.sat(f.Until)
	if err != nil {
		return nil, err
	}
	goalP, err := c.sat(f.Goal)
	if err != nil {
		return nil, err
	}
	return c.runFixpoint("au", func() (Policy, error) {
		return Lfp(c.lts, omegaAU(c.lts, untilP.Dom(), goalP, c.scope))
	})
}

func (c *evalContext) satEF(f EF) (Policy, error) {
	goalP, err := c.sat(f.Arg)
	if err != nil {
		return nil, err
	}
	return c.runFixpoint("ef", func() (Policy, error) {
		return Lfp(c.lts, omegaEF(c.lts, goalP, c.scope))
	})
}

func (c *evalContext) satAF(f AF) (Policy, error) {
	goalP, err := c.sat(f.Arg)
	if err != nil {
		return nil, err
	}
	return c.runFixpoint("af", func() (Policy, error) {
		return Lfp(c.lts, omegaAF(c.lts, goalP, c.scope))
	})
}

func (c *evalContext) satEG(f EG) (Policy, error) {
	return c.globalFixpoint("eg", f.Arg, omegaEG)
}

func (c *evalContext) satAG(f AG) (Policy, error) {
	return c.globalFixpoint("ag", f.Arg, omegaAG)
}

// globalFixpoint implements the two-phase ν-then-μ construction shared by
// eg and ag: a greatest-fixed-point phase (computed with scope forced to
// max, over the induced+τ structure for Arg) removes states from which
// progress can escape the region, then a least-fixed-point phase removes
// nonprogressing traps that phase survives but never actually reach a goal.
func (c *evalContext) globalFixpoint(name string, phi Formula, omegaPhase1 func(*LTS) StepFn) (Policy, error) {
	saved := c.scope
	defer func() {
		c.scope = saved
		observeScope(c.scope)
	}()

	c.scope = ScopeMax
	observeScope(c.scope)
	phiPolicy, err := c.sat(phi)
	if err != nil {
		return nil, err
	}
	sigma0 := InducedTau(c.lts, phiPolicy)

	p1, err := Gfp(sigma0, omegaPhase1(sigma0))
	if err != nil {
		return nil, err
	}

	sigma1 := InducedTau(c.lts, p1)
	goalSeed := p1.Goals()

	c.scope = ScopeMin
	observeScope(c.scope)
	return c.runFixpoint(name, func() (Policy, error) {
		return Lfp(sigma1, omegaEF(sigma1, goalSeed, c.scope))
	})
}

func (c *evalContext) runFixpoint(op string, run func() (Policy, error)) (Policy, error) {
	p, err := run()
	if err != nil {
		c.log.WithError(err).WithField("op", op).Error("fixed point failed")
		return nil, err
	}
	c.log.WithFields(logrus.Fields{"op": op, "policy_size": len(p), "scope": c.scope}).Debug("fixed point converged")
	return p, nil
}
