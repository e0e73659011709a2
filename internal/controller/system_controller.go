package controller

import (
	"time"

	"brandkit-admin-be/internal/dto"
	"brandkit-admin-be/internal/pkg/serverutils"
	"brandkit-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISystemController interface {
	RegisterRoutes(r fiber.Router)
	Ping(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error
	GetLogDetail(ctx *fiber.Ctx) error
}

type systemController struct {
	logService service.ISystemLogService
}

func NewSystemController(logService service.ISystemLogService) ISystemController {
	return &systemController{logService: logService}
}

func (c *systemController) RegisterRoutes(r fiber.Router) {
	r.Get("/ping", c.Ping)

	h := r.Group("/admin")
	h.Get("/logs", c.GetLogs)
	h.Get("/logs/:id", c.GetLogDetail)
}

// Ping answers with the bare body, not the envelope; uptime probes match on it.
func (c *systemController) Ping(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.PingResponse{Ok: true, Ts: time.Now()})
}

func (c *systemController) GetLogs(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 20)
	level := ctx.Query("level", "")

	logs, err := c.logService.GetLogs(ctx.Context(), page, limit, level)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("System logs", logs))
}

func (c *systemController) GetLogDetail(ctx *fiber.Ctx) error {
	l, err := c.logService.GetLogDetail(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Log detail", l))
}
