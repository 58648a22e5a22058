package matching

import "testing"

func TestSynonymEquivalence_ExactAndNormalized(t *testing.T) {
	eq := NewSynonymEquivalence(DefaultSynonyms)

	cases := [][2]string{
		{"React", "react"},
		{"  JavaScript ", "javascript"},
		{"PostgreSQL", "postgresql"},
	}
	for _, c := range cases {
		if !eq.Equivalent(c[0], c[1]) {
			t.Fatalf("expected %q ~ %q", c[0], c[1])
		}
	}
}

func TestSynonymEquivalence_SynonymGroups(t *testing.T) {
	eq := NewSynonymEquivalence(DefaultSynonyms)

	cases := [][2]string{
		{"js", "JavaScript"},
		{"ES6", "ecmascript"},
		{"ts", "TypeScript"},
		{"reactjs", "react.js"},
		{"node.js", "NodeJS"},
		{"postgres", "psql"},
		{"k8s", "Kubernetes"},
	}
	for _, c := range cases {
		if !eq.Equivalent(c[0], c[1]) {
			t.Fatalf("expected synonym %q ~ %q", c[0], c[1])
		}
		if !eq.Equivalent(c[1], c[0]) {
			t.Fatalf("expected symmetric synonym %q ~ %q", c[1], c[0])
		}
	}
}

func TestSynonymEquivalence_SubstringFallback(t *testing.T) {
	eq := NewSynonymEquivalence(DefaultSynonyms)

	if !eq.Equivalent("React Developer", "react") {
		t.Fatalf("expected substring fallback to match")
	}
	if !eq.Equivalent("react", "React Developer") {
		t.Fatalf("expected substring fallback to be symmetric")
	}

	// Known false positive on short names; behavior is intentional.
	if !eq.Equivalent("C", "Objective-C") {
		t.Fatalf("expected short-name substring match")
	}
}

func TestSynonymEquivalence_NoMatch(t *testing.T) {
	eq := NewSynonymEquivalence(DefaultSynonyms)

	if eq.Equivalent("Rust", "Haskell") {
		t.Fatalf("expected no match")
	}
	if eq.Equivalent("", "react") {
		t.Fatalf("expected empty name to never match")
	}
	if eq.Equivalent("  ", "  ") {
		t.Fatalf("expected blank names to never match")
	}
}

func TestSynonymEquivalence_InjectedTable(t *testing.T) {
	eq := NewSynonymEquivalence(map[string][]string{
		"spreadsheet": {"excel", "sheets"},
	})

	if !eq.Equivalent("Excel", "sheets") {
		t.Fatalf("expected injected table to drive equivalence")
	}
	if eq.Equivalent("js", "javascript") {
		t.Fatalf("expected default groups to be absent with injected table")
	}
}
