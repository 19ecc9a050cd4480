package routes

import (
	"skillmatch/internal/config"
	v1 "skillmatch/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, deps v1.Deps) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, deps)
}
