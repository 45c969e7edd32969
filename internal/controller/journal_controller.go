package controller

import (
	"edge-journal-be/internal/dto"
	"edge-journal-be/internal/pkg/serverutils"
	"edge-journal-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IJournalController interface {
	RegisterRoutes(r fiber.Router)
	EndSession(ctx *fiber.Ctx) error
	Poll(ctx *fiber.Ctx) error
}

type journalController struct {
	journalService service.IJournalService
}

func NewJournalController(journalService service.IJournalService) IJournalController {
	return &journalController{
		journalService: journalService,
	}
}

func (c *journalController) RegisterRoutes(r fiber.Router) {
	r.Post("/session/end", c.EndSession)
	r.Post("/journal", c.Poll)
}

func (c *journalController) EndSession(ctx *fiber.Ctx) error {
	var req dto.SessionEndRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.journalService.EndSession(ctx.Context(), &req)
	if err != nil {
		return err
	}

	// Poll-loop clients read the fields top-level, no envelope
	return ctx.JSON(res)
}

func (c *journalController) Poll(ctx *fiber.Ctx) error {
	var req dto.JournalRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.journalService.Poll(ctx.Context(), req.SessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
