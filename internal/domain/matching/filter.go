package matching

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidFilter = errors.New("invalid filter parameters")

// Filter narrows the pool before and after scoring. Zero values switch the
// corresponding criterion off.
type Filter struct {
	MinScore        int
	Skills          []string
	ExperienceLevel string
	Location        string
	RemoteOnly      bool
	AvailableFrom   *time.Time
	AvailableTo     *time.Time
}

func (f Filter) Validate() error {
	if f.MinScore < 0 || f.MinScore > 100 {
		return ErrInvalidFilter
	}
	if f.AvailableFrom != nil && f.AvailableTo != nil && f.AvailableTo.Before(*f.AvailableFrom) {
		return ErrInvalidFilter
	}
	return nil
}

func (f Filter) matchesCandidate(eq Equivalence, c Candidate) bool {
	if f.ExperienceLevel != "" && !strings.EqualFold(strings.TrimSpace(f.ExperienceLevel), strings.TrimSpace(c.ExperienceLevel)) {
		return false
	}
	if f.RemoteOnly && !c.Remote {
		return false
	}
	if f.Location != "" && !containsFold(c.Location, f.Location) {
		return false
	}
	if f.AvailableFrom != nil && c.AvailableTo != nil && c.AvailableTo.Before(*f.AvailableFrom) {
		return false
	}
	if f.AvailableTo != nil && c.AvailableFrom != nil && c.AvailableFrom.After(*f.AvailableTo) {
		return false
	}
	return hasAllSkills(eq, c.Skills, f.Skills)
}

func (f Filter) matchesJob(eq Equivalence, j JobRequirement) bool {
	if f.RemoteOnly && !j.Remote {
		return false
	}
	if f.Location != "" && !containsFold(j.Location, f.Location) {
		return false
	}
	mentioned := make([]Skill, 0, len(j.RequiredSkills)+len(j.PreferredSkills))
	mentioned = append(mentioned, j.RequiredSkills...)
	mentioned = append(mentioned, j.PreferredSkills...)
	return hasAllSkills(eq, mentioned, f.Skills)
}

func hasAllSkills(eq Equivalence, have []Skill, want []string) bool {
	for _, w := range want {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		found := false
		for _, s := range have {
			if eq.Equivalent(w, s.Name) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(strings.TrimSpace(haystack)), strings.ToLower(strings.TrimSpace(needle)))
}
