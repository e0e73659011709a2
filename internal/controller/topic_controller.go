package controller

import (
	"brandkit-admin-be/internal/dto"
	"brandkit-admin-be/internal/pkg/serverutils"
	"brandkit-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITopicController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	GetSubtopics(ctx *fiber.Ctx) error
	CreateSubtopic(ctx *fiber.Ctx) error
}

type topicController struct {
	service service.ITopicService
}

func NewTopicController(service service.ITopicService) ITopicController {
	return &topicController{service: service}
}

func (c *topicController) RegisterRoutes(r fiber.Router) {
	r.Get("/topics", c.GetAll)
	r.Post("/topics", c.Create)
	r.Get("/topics/:topicId/subtopics", c.GetSubtopics)
	r.Post("/subtopics", c.CreateSubtopic)
}

func (c *topicController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all topics", res))
}

func (c *topicController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateTopicRequest
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
	return ctx.JSON(serverutils.SuccessResponse("Success create topic", res))
}

func (c *topicController) GetSubtopics(ctx *fiber.Ctx) error {
	topicId, err := paramID(ctx, "topicId")
	if err != nil {
		return err
	}

	res, err := c.service.GetSubtopics(ctx.Context(), topicId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get subtopics", res))
}

func (c *topicController) CreateSubtopic(ctx *fiber.Ctx) error {
	var req dto.CreateSubtopicRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errInvalidBody
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateSubtopic(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create subtopic", res))
}
