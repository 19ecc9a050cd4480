package v1

import (
	"log"

	"skillmatch/internal/config"
	"skillmatch/internal/database"
	"skillmatch/internal/delivery/http/handler"
	"skillmatch/internal/delivery/http/middleware"
	"skillmatch/internal/infrastructure/gemini"
	"skillmatch/internal/pkg/jwt"
	"skillmatch/internal/repository"
	"skillmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Deps carries the shared infrastructure the v1 surface is built on.
type Deps struct {
	DB        database.DB
	Cache     usecase.MatchCache
	Generator gemini.Generator
	Logger    *log.Logger
}

func Register(r fiber.Router, cfg config.Config, deps Deps) {
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

	userRepo := repository.NewPostgresUserRepository(deps.DB)
	skillRepo := repository.NewPostgresSkillRepository(deps.DB)
	userSkillRepo := repository.NewPostgresUserSkillRepository(deps.DB)
	teamRepo := repository.NewPostgresTeamRepository(deps.DB)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	userUC := usecase.NewUserUsecase(userRepo, userSkillRepo, deps.Cache, deps.Logger)
	skillUC := usecase.NewSkillUsecase(skillRepo)
	teamUC := usecase.NewTeamUsecase(teamRepo, skillRepo)
	matchUC := usecase.NewMatchUsecase(skillRepo, userSkillRepo, userRepo, deps.Cache, deps.Logger)
	gapUC := usecase.NewGapUsecase(userRepo, teamRepo, userSkillRepo, deps.Generator, deps.Logger)
	extractUC := usecase.NewExtractUsecase(deps.Generator)

	authGroup := r.Group("/auth")
	handler.NewAuthHandler(authUC).RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())

	handler.NewUserHandler(userUC).RegisterRoutes(protected)
	handler.NewSkillHandler(skillUC).RegisterRoutes(protected)
	handler.NewTeamHandler(teamUC).RegisterRoutes(protected)
	handler.NewMatchHandler(matchUC).RegisterRoutes(protected)
	handler.NewGapHandler(gapUC).RegisterRoutes(protected)
	handler.NewExtractHandler(extractUC).RegisterRoutes(protected)
}
