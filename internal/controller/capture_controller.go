package controller

import (
	"edge-journal-be/internal/dto"
	"edge-journal-be/internal/pkg/serverutils"
	"edge-journal-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICaptureController interface {
	RegisterRoutes(r fiber.Router)
	Capture(ctx *fiber.Ctx) error
	Transcribe(ctx *fiber.Ctx) error
}

type captureController struct {
	captureService service.ICaptureService
}

func NewCaptureController(captureService service.ICaptureService) ICaptureController {
	return &captureController{
		captureService: captureService,
	}
}

// Capture endpoints live at the app root, not under /api, because the
// capture agents predate the /api surface.
func (c *captureController) RegisterRoutes(r fiber.Router) {
	r.Post("/capture", c.Capture)
	r.Post("/asr", c.Transcribe)
}

func (c *captureController) Capture(ctx *fiber.Ctx) error {
	var req dto.CaptureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.captureService.ProcessCapture(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *captureController) Transcribe(ctx *fiber.Ctx) error {
	var req dto.TranscribeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.captureService.TranscribeLatest(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
