package matching

import "strings"

type Equivalence interface {
	Equivalent(a, b string) bool
}

type SynonymEquivalence struct {
	canonical map[string]string
}

func NewSynonymEquivalence(groups map[string][]string) *SynonymEquivalence {
	canonical := make(map[string]string, len(groups)*4)
	for canon, variants := range groups {
		canon = normalizeSkillName(canon)
		if canon == "" {
			continue
		}
		canonical[canon] = canon
		for _, v := range variants {
			v = normalizeSkillName(v)
			if v == "" {
				continue
			}
			canonical[v] = canon
		}
	}
	return &SynonymEquivalence{canonical: canonical}
}

func (e *SynonymEquivalence) Equivalent(a, b string) bool {
	na := normalizeSkillName(a)
	nb := normalizeSkillName(b)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}

	if e != nil {
		ca, okA := e.canonical[na]
		cb, okB := e.canonical[nb]
		if okA && okB && ca == cb {
			return true
		}
	}

	// Substring fallback for unlisted variants ("React Developer" vs "react").
	// Known to over-match on very short names, e.g. "C" vs "Objective-C".
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}

func normalizeSkillName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
