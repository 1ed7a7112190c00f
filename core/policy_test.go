package core

import "testing"

func TestNewPolicyDedupesAndSorts(t *testing.T) {
	p := NewPolicy(Pair{"1", "b"}, Pair{"0", "a"}, Pair{"1", "b"}, Pair{"0", "b"})
	want := []Pair{{"0", "a"}, {"0", "b"}, {"1", "b"}}
	if len(p) != len(want) {
		t.Fatalf("len(p) = %d, want %d", len(p), len(want))
	}
	for i := range want {
		if p[i] != want[i] {
			t.Errorf("p[%d] = %v, want %v", i, p[i], want[i])
		}
	}
}

func TestPolicyUnionIntersectDifference(t *testing.T) {
	a := NewPolicy(Pair{"0", "a"}, Pair{"1", "b"})
	b := NewPolicy(Pair{"1", "b"}, Pair{"2", "c"})

	if !a.Union(b).Equals(NewPolicy(Pair{"0", "a"}, Pair{"1", "b"}, Pair{"2", "c"})) {
		t.Errorf("Union = %v", a.Union(b))
	}
	if !a.Intersect(b).Equals(NewPolicy(Pair{"1", "b"})) {
		t.Errorf("Intersect = %v", a.Intersect(b))
	}
	if !a.Difference(b).Equals(NewPolicy(Pair{"0", "a"})) {
		t.Errorf("Difference = %v", a.Difference(b))
	}
}

func TestPolicyDomInterGoals(t *testing.T) {
	p := NewPolicy(Pair{"0", "a"}, Pair{"1", Tau}, Pair{"2", "b"})

	if !p.Dom().Equals(NewStateSet("0", "1", "2")) {
		t.Errorf("Dom = %v", p.Dom())
	}
	if !p.Inter(NewStateSet("0", "2")).Equals(NewPolicy(Pair{"0", "a"}, Pair{"2", "b"})) {
		t.Errorf("Inter = %v", p.Inter(NewStateSet("0", "2")))
	}
	if !p.Goals().Equals(NewPolicy(Pair{"1", Tau})) {
		t.Errorf("Goals = %v", p.Goals())
	}
}

func TestPolicyPruneScope(t *testing.T) {
	p := NewPolicy(Pair{"0", "a"}, Pair{"1", "b"})
	acc := NewPolicy(Pair{"1", "c"})

	min := p.Prune(acc, ScopeMin)
	if !min.Equals(NewPolicy(Pair{"0", "a"})) {
		t.Errorf("Prune(min) = %v, want {(0,a)}", min)
	}

	max := p.Prune(acc, ScopeMax)
	if !max.Equals(p) {
		t.Errorf("Prune(max) = %v, want p unchanged", max)
	}
}
