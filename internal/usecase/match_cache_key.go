package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

type matchCacheKeyInput struct {
	MinScore        int      `json:"min_score"`
	Skills          []string `json:"skills"`
	ExperienceLevel string   `json:"experience_level"`
	Location        string   `json:"location"`
	RemoteOnly      bool     `json:"remote_only"`
	AvailableFrom   string   `json:"available_from"`
	AvailableTo     string   `json:"available_to"`
	Page            int      `json:"page"`
	Limit           int      `json:"limit"`
}

func normalizeCacheValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

func matchParamsHash(params MatchParams) string {
	skills := make([]string, 0, len(params.Skills))
	for _, s := range params.Skills {
		s = normalizeCacheValue(s)
		if s == "" {
			continue
		}
		skills = append(skills, s)
	}

	in := matchCacheKeyInput{
		MinScore:        params.MinScore,
		Skills:          skills,
		ExperienceLevel: normalizeCacheValue(params.ExperienceLevel),
		Location:        normalizeCacheValue(params.Location),
		RemoteOnly:      params.RemoteOnly,
		AvailableFrom:   formatCacheTime(params.AvailableFrom),
		AvailableTo:     formatCacheTime(params.AvailableTo),
		Page:            params.Page,
		Limit:           params.Limit,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func JobMatchesCacheKey(jobID uuid.UUID, params MatchParams) string {
	return "matches:job:" + jobID.String() + ":" + matchParamsHash(params)
}

func CandidateMatchesCacheKey(candidateID uuid.UUID, params MatchParams) string {
	return "matches:candidate:" + candidateID.String() + ":" + matchParamsHash(params)
}

func JobMatchesLockKey(jobID uuid.UUID) string {
	return "matches:lock:job:" + jobID.String()
}

func formatCacheTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
