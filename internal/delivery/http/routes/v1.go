package routes

import (
	"log"

	"talent-match/internal/config"
	"talent-match/internal/database"
	v1 "talent-match/internal/delivery/http/routes/v1"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, redis *cache.Redis, hub *ws.Hub, logger *log.Logger) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db, redis, hub, logger)
}
