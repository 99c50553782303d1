package controller

import (
	"qa-live-be/internal/dto"
	"qa-live-be/internal/pkg/apperror"
	"qa-live-be/internal/pkg/serverutils"
	"qa-live-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IQAController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type qaController struct {
	service service.IQAService
}

func NewQAController(service service.IQAService) IQAController {
	return &qaController{service: service}
}

func (c *qaController) RegisterRoutes(r fiber.Router) {
	r.Post("/qa", c.Create)
	r.Get("/qa/:qa_id", c.Show)
}

func (c *qaController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateQARequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("Invalid request payload")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("", res))
}

func (c *qaController) Show(ctx *fiber.Ctx) error {
	qaId, err := uuid.Parse(ctx.Params("qa_id"))
	if err != nil {
		return apperror.NewNotFound("No Matching QA ID in Our Records")
	}

	res, err := c.service.Show(ctx.Context(), qaId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("", res))
}
