package controller

import (
	"brandkit-admin-be/internal/dto"
	"brandkit-admin-be/internal/pkg/serverutils"
	"brandkit-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IEntityController interface {
	RegisterRoutes(r fiber.Router)
	GetBySubtopic(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	GetImages(ctx *fiber.Ctx) error
	CreateImage(ctx *fiber.Ctx) error
}

type entityController struct {
	service service.IEntityService
}

func NewEntityController(service service.IEntityService) IEntityController {
	return &entityController{service: service}
}

func (c *entityController) RegisterRoutes(r fiber.Router) {
	r.Get("/subtopics/:subtopicId/entities", c.GetBySubtopic)
	r.Post("/entities", c.Create)
	r.Get("/entities/:id", c.Show)
	r.Put("/entities/:id", c.Update)
	r.Get("/entities/:id/images", c.GetImages)
	r.Post("/entities/:id/images", c.CreateImage)
}

func (c *entityController) GetBySubtopic(ctx *fiber.Ctx) error {
	subtopicId, err := paramID(ctx, "subtopicId")
	if err != nil {
		return err
	}

	res, err := c.service.GetBySubtopic(ctx.Context(), subtopicId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get entities", res))
}

func (c *entityController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateEntityRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errInvalidBody
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create entity", res))
}

func (c *entityController) Show(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show entity", res))
}

func (c *entityController) Update(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateEntityRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errInvalidBody
	}
	req.Id = id

	res, err := c.service.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update entity", res))
}

func (c *entityController) GetImages(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.GetImages(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get entity images", res))
}

func (c *entityController) CreateImage(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.CreateEntityImageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errInvalidBody
	}
	req.EntityId = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateImage(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create entity image", res))
}
