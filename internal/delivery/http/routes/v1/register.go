package v1

import (
	"log"

	"talent-match/internal/config"
	"talent-match/internal/database"
	"talent-match/internal/delivery/http/handler"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/domain/matching"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/pkg/jwt"
	"talent-match/internal/repository"
	"talent-match/internal/usecase"
	"talent-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, redis *cache.Redis, hub *ws.Hub, logger *log.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	candidateRepo := repository.NewPostgresCandidateRepository(db)
	matchRepo := repository.NewPostgresMatchRepository(db)

	engine := matching.NewEngine(
		matching.NewSynonymEquivalence(matching.DefaultSynonyms),
		matching.Config{
			ProficiencyWeighting: cfg.Match.ProficiencyWeighting,
			Workers:              cfg.Match.Workers,
		},
	)

	var matchCache usecase.MatchCache
	var invalidator usecase.MatchInvalidator
	if redis != nil {
		matchCache = redis
		invalidator = redis
	}

	var notifier usecase.MatchNotifier
	if hub != nil {
		notifier = ws.NewNotifier(hub)
	}

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	matchUC := usecase.NewMatchUsecase(jobRepo, candidateRepo, matchRepo, engine, matchCache, notifier, logger)
	jobRecUC := usecase.NewJobRecommendationUsecase(jobRepo, candidateRepo, engine, matchCache, logger)
	skillUC := usecase.NewSkillProfileUsecase(jobRepo, candidateRepo, invalidator, logger)

	authHandler := handler.NewAuthHandler(authUC)
	matchHandler := handler.NewMatchHandler(matchUC)
	jobRecHandler := handler.NewJobRecommendationHandler(jobRecUC)
	skillHandler := handler.NewSkillProfileHandler(skillUC)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())

	RegisterMatches(protected, matchHandler, jobRecHandler)
	RegisterSkillProfiles(protected, skillHandler)
}
