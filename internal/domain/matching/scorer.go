package matching

import "math"

const (
	requiredWeight  = 0.7
	preferredWeight = 0.3

	adjustFloor = 0.7
	adjustSpan  = 0.6

	// Assumed when a matched skill carries no numeric proficiency, so the
	// adjustment stays neutral and the score reduces to pure coverage.
	neutralProficiency = 50.0
)

type ScoreBreakdown struct {
	Score          int
	MatchingSkills []Skill
	SkillGaps      []Skill
}

type Scorer struct {
	eq                   Equivalence
	proficiencyWeighting bool
}

func NewScorer(eq Equivalence, proficiencyWeighting bool) *Scorer {
	if eq == nil {
		eq = NewSynonymEquivalence(DefaultSynonyms)
	}
	return &Scorer{eq: eq, proficiencyWeighting: proficiencyWeighting}
}

func (s *Scorer) Score(candidateSkills, requiredSkills, preferredSkills []Skill) ScoreBreakdown {
	matchedRequired, matchedRequiredCand, gaps := s.matchAgainst(requiredSkills, candidateSkills)
	matchedPreferred, matchedPreferredCand, _ := s.matchAgainst(preferredSkills, candidateSkills)

	// An empty required list is vacuously satisfied; an empty preferred list
	// has nothing to reward, so the asymmetry is deliberate.
	requiredCoverage := 100.0
	if len(requiredSkills) > 0 {
		requiredCoverage = 100.0 * float64(len(matchedRequired)) / float64(len(requiredSkills))
	}
	preferredCoverage := 0.0
	if len(preferredSkills) > 0 {
		preferredCoverage = 100.0 * float64(len(matchedPreferred)) / float64(len(preferredSkills))
	}

	weightedRequired := requiredCoverage * s.adjust(matchedRequiredCand)
	weightedPreferred := preferredCoverage * s.adjust(matchedPreferredCand)

	score := int(math.Round(weightedRequired*requiredWeight + weightedPreferred*preferredWeight))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	matching := make([]Skill, 0, len(matchedRequired)+len(matchedPreferred))
	matching = append(matching, matchedRequired...)
	matching = append(matching, matchedPreferred...)

	return ScoreBreakdown{
		Score:          score,
		MatchingSkills: matching,
		SkillGaps:      gaps,
	}
}

// matchAgainst resolves each requirement to the first equivalent candidate
// skill. It returns the satisfied requirements, the candidate skills that
// satisfied them, and the requirements left unmatched.
func (s *Scorer) matchAgainst(reqs, candidateSkills []Skill) (matched, matchedCandidate, unmatched []Skill) {
	matched = make([]Skill, 0, len(reqs))
	matchedCandidate = make([]Skill, 0, len(reqs))
	unmatched = make([]Skill, 0)

	for _, r := range reqs {
		found := false
		for _, cs := range candidateSkills {
			if s.eq.Equivalent(r.Name, cs.Name) {
				matched = append(matched, r)
				matchedCandidate = append(matchedCandidate, cs)
				found = true
				break
			}
		}
		if !found {
			unmatched = append(unmatched, r)
		}
	}
	return matched, matchedCandidate, unmatched
}

// adjust scales a coverage score by the mean proficiency of the matched
// candidate skills, bounded to [0.7, 1.3]. Neutral when the toggle is off,
// when nothing matched, or when proficiency averages to the midpoint.
func (s *Scorer) adjust(matchedCandidate []Skill) float64 {
	if !s.proficiencyWeighting || len(matchedCandidate) == 0 {
		return 1.0
	}

	sum := 0.0
	for _, cs := range matchedCandidate {
		if cs.Proficiency == nil {
			sum += neutralProficiency
			continue
		}
		p := float64(*cs.Proficiency)
		if p < 0 {
			p = 0
		}
		if p > 100 {
			p = 100
		}
		sum += p
	}
	avg := sum / float64(len(matchedCandidate))

	factor := adjustFloor + (avg/100.0)*adjustSpan
	if factor < adjustFloor {
		factor = adjustFloor
	}
	if factor > adjustFloor+adjustSpan {
		factor = adjustFloor + adjustSpan
	}
	return factor
}
