package dto

import (
	"time"

	"talent-match/internal/domain/matching"

	"github.com/google/uuid"
)

type SkillResponse struct {
	SkillID     uuid.UUID `json:"skill_id"`
	Name        string    `json:"name"`
	Category    string    `json:"category,omitempty"`
	Proficiency *int      `json:"proficiency,omitempty"`
}

type MatchResultResponse struct {
	Score          int             `json:"score"`
	OverallFit     string          `json:"overall_fit"`
	MatchingSkills []SkillResponse `json:"matching_skills"`
	SkillGaps      []SkillResponse `json:"skill_gaps"`
}

type CandidateResponse struct {
	CandidateID     uuid.UUID  `json:"candidate_id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	ExperienceLevel string     `json:"experience_level,omitempty"`
	Location        string     `json:"location,omitempty"`
	Remote          bool       `json:"remote"`
	AvailableFrom   *time.Time `json:"available_from,omitempty"`
	AvailableTo     *time.Time `json:"available_to,omitempty"`
}

type CandidateMatchResponse struct {
	Candidate CandidateResponse   `json:"candidate"`
	Match     MatchResultResponse `json:"match"`
}

type JobResponse struct {
	JobID       uuid.UUID `json:"job_id"`
	Title       string    `json:"title"`
	CompanyName string    `json:"company_name"`
	Location    string    `json:"location,omitempty"`
	Remote      bool      `json:"remote"`
}

type JobMatchResponse struct {
	Job   JobResponse         `json:"job"`
	Match MatchResultResponse `json:"match"`
}

type PaginationResponse struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

type CandidateMatchListResponse struct {
	Items      []CandidateMatchResponse `json:"items"`
	Pagination PaginationResponse       `json:"pagination"`
}

type JobMatchListResponse struct {
	Items      []JobMatchResponse `json:"items"`
	Pagination PaginationResponse `json:"pagination"`
}

type SkillFrequencyResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type MatchSummaryResponse struct {
	JobID           uuid.UUID                `json:"job_id"`
	CandidateCount  int                      `json:"candidate_count"`
	AverageScore    float64                  `json:"average_score"`
	FitDistribution map[string]int           `json:"fit_distribution"`
	TopSkills       []SkillFrequencyResponse `json:"top_skills"`
}

func NewSkillResponses(skills []matching.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, SkillResponse{
			SkillID:     s.ID,
			Name:        s.Name,
			Category:    s.Category,
			Proficiency: s.Proficiency,
		})
	}
	return out
}

func NewMatchResultResponse(r matching.MatchResult) MatchResultResponse {
	return MatchResultResponse{
		Score:          r.Score,
		OverallFit:     string(r.OverallFit),
		MatchingSkills: NewSkillResponses(r.MatchingSkills),
		SkillGaps:      NewSkillResponses(r.SkillGaps),
	}
}

func NewCandidateMatchListResponse(page matching.CandidatePage) CandidateMatchListResponse {
	items := make([]CandidateMatchResponse, 0, len(page.Items))
	for _, it := range page.Items {
		items = append(items, CandidateMatchResponse{
			Candidate: CandidateResponse{
				CandidateID:     it.Candidate.ID,
				Name:            it.Candidate.Name,
				Email:           it.Candidate.Email,
				ExperienceLevel: it.Candidate.ExperienceLevel,
				Location:        it.Candidate.Location,
				Remote:          it.Candidate.Remote,
				AvailableFrom:   it.Candidate.AvailableFrom,
				AvailableTo:     it.Candidate.AvailableTo,
			},
			Match: NewMatchResultResponse(it.Result),
		})
	}
	return CandidateMatchListResponse{Items: items, Pagination: NewPaginationResponse(page.Pagination)}
}

func NewJobMatchListResponse(page matching.JobPage) JobMatchListResponse {
	items := make([]JobMatchResponse, 0, len(page.Items))
	for _, it := range page.Items {
		items = append(items, JobMatchResponse{
			Job: JobResponse{
				JobID:       it.Job.ID,
				Title:       it.Job.Title,
				CompanyName: it.Job.CompanyName,
				Location:    it.Job.Location,
				Remote:      it.Job.Remote,
			},
			Match: NewMatchResultResponse(it.Result),
		})
	}
	return JobMatchListResponse{Items: items, Pagination: NewPaginationResponse(page.Pagination)}
}

func NewPaginationResponse(p matching.Pagination) PaginationResponse {
	return PaginationResponse{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      p.Total,
		TotalPages: p.TotalPages,
		HasNext:    p.HasNext,
		HasPrev:    p.HasPrev,
	}
}
