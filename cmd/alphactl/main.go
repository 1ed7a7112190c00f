// Command alphactl evaluates α-CTL formulas over the registered
// nondeterministic-planning models and can serve rendered diagrams of the
// resulting policies.
package main

func main() {
	Execute()
}
