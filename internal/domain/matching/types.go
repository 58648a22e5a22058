package matching

import (
	"time"

	"github.com/google/uuid"
)

type Skill struct {
	ID          uuid.UUID
	Name        string
	Proficiency *int
	Category    string
}

type JobRequirement struct {
	ID              uuid.UUID
	Title           string
	CompanyName     string
	Location        string
	Remote          bool
	RequiredSkills  []Skill
	PreferredSkills []Skill
}

type Candidate struct {
	ID              uuid.UUID
	Name            string
	Email           string
	ExperienceLevel string
	Location        string
	Remote          bool
	AvailableFrom   *time.Time
	AvailableTo     *time.Time
	Skills          []Skill
}

type MatchResult struct {
	CandidateID    uuid.UUID
	Score          int
	MatchingSkills []Skill
	SkillGaps      []Skill
	OverallFit     Fit
}

type CandidateMatch struct {
	Candidate Candidate
	Result    MatchResult
}

type JobMatch struct {
	Job    JobRequirement
	Result MatchResult
}

type Pagination struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

type CandidatePage struct {
	Items      []CandidateMatch
	Pagination Pagination
}

type JobPage struct {
	Items      []JobMatch
	Pagination Pagination
}
