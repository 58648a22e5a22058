package v1

import (
	"talent-match/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterSkillProfiles(r fiber.Router, skillHandler *handler.SkillProfileHandler) {
	if r == nil {
		return
	}
	if skillHandler == nil {
		return
	}

	skillHandler.RegisterRoutes(r)
}
