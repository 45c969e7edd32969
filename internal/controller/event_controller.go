package controller

import (
	"edge-journal-be/internal/dto"
	"edge-journal-be/internal/pkg/serverutils"
	"edge-journal-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IEventController interface {
	RegisterRoutes(r fiber.Router)
	Store(ctx *fiber.Ctx) error
	GetContext(ctx *fiber.Ctx) error
}

type eventController struct {
	eventService service.IEventService
}

func NewEventController(eventService service.IEventService) IEventController {
	return &eventController{
		eventService: eventService,
	}
}

func (c *eventController) RegisterRoutes(r fiber.Router) {
	r.Post("/events", c.Store)
	r.Post("/context", c.GetContext)
}

func (c *eventController) Store(ctx *fiber.Ctx) error {
	var req dto.StoreEventRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.eventService.Store(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *eventController) GetContext(ctx *fiber.Ctx) error {
	var req dto.ContextRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.eventService.GetContext(ctx.Context(), req.SessionId, req.Count)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
