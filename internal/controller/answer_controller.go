package controller

import (
	"qa-live-be/internal/dto"
	"qa-live-be/internal/pkg/apperror"
	"qa-live-be/internal/pkg/serverutils"
	"qa-live-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAnswerController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
}

type answerController struct {
	service service.IAnswerService
}

func NewAnswerController(service service.IAnswerService) IAnswerController {
	return &answerController{service: service}
}

func (c *answerController) RegisterRoutes(r fiber.Router) {
	r.Post("/answer/:question_id", c.Create)
}

func (c *answerController) Create(ctx *fiber.Ctx) error {
	questionId, err := uuid.Parse(ctx.Params("question_id"))
	if err != nil {
		return apperror.NewValidation("Invalid Question ID")
	}

	var req dto.CreateAnswerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("Invalid request payload")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), questionId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("", res))
}
