package core

// The ω constructors close over an LTS (and, where relevant, an "until"
// domain and a goal seed) and return a StepFn the fixed-point driver
// iterates. Each mirrors one global temporal operator's recursive
// characterization.

// omegaEU builds the step function for e[ψ U φ]: at each iteration, widen
// the accumulator by one more weak-preimage step restricted to ψ-states,
// pruned against what is already covered, seeded with φ's own states.
func omegaEU(l *LTS, untilDom StateSet, goalSeed Policy, scope ScopeMode) StepFn {
	return func(x Policy) Policy {
		pre := Wpi(l, x).Inter(untilDom)
		pre = pre.Prune(x, scope)
		return pre.Union(x).Union(goalSeed)
	}
}

// omegaAU is omegaEU's strong-preimage counterpart, for a[ψ U φ].
func omegaAU(l *LTS, untilDom StateSet, goalSeed Policy, scope ScopeMode) StepFn {
	return func(x Policy) Policy {
		pre := Spi(l, x).Inter(untilDom)
		pre = pre.Prune(x, scope)
		return pre.Union(x).Union(goalSeed)
	}
}

// omegaEF builds the step function for ef(φ): e[true U φ].
func omegaEF(l *LTS, goalSeed Policy, scope ScopeMode) StepFn {
	return func(x Policy) Policy {
		pre := Wpi(l, x).Prune(x, scope)
		return pre.Union(x).Union(goalSeed)
	}
}

// omegaAF is omegaEF's strong-preimage counterpart, for af(φ): a[true U φ].
func omegaAF(l *LTS, goalSeed Policy, scope ScopeMode) StepFn {
	return func(x Policy) Policy {
		pre := Spi(l, x).Prune(x, scope)
		return pre.Union(x).Union(goalSeed)
	}
}

// omegaEG builds the greatest-fixed-point step for eg(φ): repeatedly shrink
// the accumulator to states with a weak-preimage witness still inside it.
func omegaEG(l *LTS) StepFn {
	universe := Universe(l)
	return func(x Policy) Policy { return Wpi(l, x).Intersect(universe) }
}

// omegaAG is omegaEG's strong-preimage counterpart, for ag(φ).
func omegaAG(l *LTS) StepFn {
	universe := Universe(l)
	return func(x Policy) Policy { return Spi(l, x).Intersect(universe) }
}
