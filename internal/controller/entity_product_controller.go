package controller

import (
	"brandkit-admin-be/internal/dto"
	"brandkit-admin-be/internal/pkg/serverutils"
	"brandkit-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IEntityProductController interface {
	RegisterRoutes(r fiber.Router)
	GetByEntity(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Generate(ctx *fiber.Ctx) error
}

type entityProductController struct {
	service           service.IEntityProductService
	generationService service.IGenerationService
}

func NewEntityProductController(
	service service.IEntityProductService,
	generationService service.IGenerationService,
) IEntityProductController {
	return &entityProductController{
		service:           service,
		generationService: generationService,
	}
}

func (c *entityProductController) RegisterRoutes(r fiber.Router) {
	r.Get("/entities/:id/products", c.GetByEntity)
	r.Post("/entity_products", c.Create)
	r.Get("/entity_products/:id", c.Show)
	r.Put("/entity_products/:id", c.Update)
	r.Post("/generate", c.Generate)
}

func (c *entityProductController) GetByEntity(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.GetByEntity(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get entity products", res))
}

func (c *entityProductController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateEntityProductRequest
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
	return ctx.JSON(serverutils.SuccessResponse("Success create entity product", res))
}

func (c *entityProductController) Show(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show entity product", res))
}

func (c *entityProductController) Update(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateEntityProductRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errInvalidBody
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.generationService.UpdateStatus(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update entity product", res))
}

func (c *entityProductController) Generate(ctx *fiber.Ctx) error {
	var req dto.GenerateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errInvalidBody
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.generationService.RequestGeneration(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success request generation", res))
}
