package controllers

import (
	"time"

	"eduplatform/backend/config"
	"eduplatform/backend/gateway"
	"eduplatform/backend/store"

	"github.com/gofiber/fiber/v2"
)

type HealthController struct {
	Store   *store.Store
	Gateway *gateway.Gateway // nil in demo mode
	Cfg     *config.Config
}

func NewHealthController(st *store.Store, gw *gateway.Gateway, cfg *config.Config) *HealthController {
	return &HealthController{Store: st, Gateway: gw, Cfg: cfg}
}

// Check reports service liveness plus the health of each backing dependency.
// Any failing check degrades the overall status without failing the request.
func (hc *HealthController) Check(c *fiber.Ctx) error {
	status := "ok"
	checks := fiber.Map{
		"store": "ok",
	}

	if hc.Gateway != nil {
		checks["database"] = "ok"
		sqlDB, err := hc.Gateway.DB.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			checks["database"] = err.Error()
			status = "degraded"
		}
	}

	return c.JSON(fiber.Map{
		"status":    status,
		"mode":      hc.Cfg.Mode(),
		"checks":    checks,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
