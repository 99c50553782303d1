package controller

import (
	"qa-live-be/internal/dto"
	"qa-live-be/internal/pkg/apperror"
	"qa-live-be/internal/pkg/serverutils"
	"qa-live-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IQuestionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetList(ctx *fiber.Ctx) error
}

type questionController struct {
	service service.IQuestionService
}

func NewQuestionController(service service.IQuestionService) IQuestionController {
	return &questionController{service: service}
}

func (c *questionController) RegisterRoutes(r fiber.Router) {
	r.Post("/question/:qa_id", c.Create)
	r.Get("/qa/:qa_id/questions", c.GetList)
}

func (c *questionController) Create(ctx *fiber.Ctx) error {
	qaId, err := uuid.Parse(ctx.Params("qa_id"))
	if err != nil {
		return apperror.NewValidation("Invalid QA ID")
	}

	var req dto.CreateQuestionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("Invalid request payload")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), qaId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("", res))
}

func (c *questionController) GetList(ctx *fiber.Ctx) error {
	qaId, err := uuid.Parse(ctx.Params("qa_id"))
	if err != nil {
		return apperror.NewValidation("Invalid QA ID")
	}

	// hasAnswer absent means no partition; any value other than "true"
	// selects the unanswered side, which is what clients have always sent.
	filter := service.FilterAll
	if hasAnswer := ctx.Query("hasAnswer"); hasAnswer != "" {
		if hasAnswer == "true" {
			filter = service.FilterAnswered
		} else {
			filter = service.FilterUnanswered
		}
	}

	res, err := c.service.List(ctx.Context(), qaId, filter)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("", res))
}
