// Package display turns an LTS and an optional policy overlay into
// Graphviz DOT text and rendered images — a pretty-printing collaborator,
// not part of the evaluator's correctness surface.
package display

import (
	"fmt"
	"strings"

	"alphactl/core"
)

// DOT generates a Graphviz DOT representation of l. When p is non-nil, the
// transitions p selects are drawn in a distinguishing color and goal
// states get a double circle, the way a policy overlay would be read.
func DOT(l *core.LTS, p core.Policy) string {
	var sb strings.Builder

	sb.WriteString("digraph LTS {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=circle];\n\n")

	goals := map[core.StateID]bool{}
	if p != nil {
		for _, pair := range p.Goals() {
			goals[pair.State] = true
		}
	}

	for _, s := range l.States {
		shape := "circle"
		if goals[s.ID] {
			shape = "doublecircle"
		}
		labelStr := labelText(s)
		sb.WriteString(fmt.Sprintf("  %q [label=%q, shape=%s];\n", s.ID, labelStr, shape))
	}
	sb.WriteString("\n")

	for _, t := range l.Trans {
		chosen := p != nil && p.Has(core.Pair{State: t.From, Action: t.Action})
		for _, to := range t.To {
			edge := fmt.Sprintf("  %q -> %q [label=%q", t.From, to, string(t.Action))
			if chosen {
				edge += ", color=red, penwidth=2"
			}
			edge += "];\n"
			sb.WriteString(edge)
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}

func labelText(s core.LabeledState) string {
	if len(s.Labels) == 0 {
		return string(s.ID)
	}
	names := make([]string, len(s.Labels))
	for i, p := range s.Labels {
		names[i] = string(p)
	}
	return fmt.Sprintf("%s\\n{%s}", s.ID, strings.Join(names, ", "))
}
