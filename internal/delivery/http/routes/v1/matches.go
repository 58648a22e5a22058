package v1

import (
	"talent-match/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterMatches(r fiber.Router, matchHandler *handler.MatchHandler, jobRecHandler *handler.JobRecommendationHandler) {
	if r == nil {
		return
	}

	if matchHandler != nil {
		matchHandler.RegisterRoutes(r)
	}
	if jobRecHandler != nil {
		jobRecHandler.RegisterRoutes(r)
	}
}
