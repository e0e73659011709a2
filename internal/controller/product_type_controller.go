package controller

import (
	"brandkit-admin-be/internal/dto"
	"brandkit-admin-be/internal/pkg/serverutils"
	"brandkit-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProductTypeController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
}

type productTypeController struct {
	service service.IProductTypeService
}

func NewProductTypeController(service service.IProductTypeService) IProductTypeController {
	return &productTypeController{service: service}
}

func (c *productTypeController) RegisterRoutes(r fiber.Router) {
	r.Get("/product_types", c.GetAll)
	r.Post("/product_types", c.Create)
}

func (c *productTypeController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all product types", res))
}

func (c *productTypeController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateProductTypeRequest
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
	return ctx.JSON(serverutils.SuccessResponse("Success create product type", res))
}
