package controller

import (
	"github.com/gofiber/fiber/v2"

	"shelf-assist-be/internal/constant"
	"shelf-assist-be/internal/dto"
	"shelf-assist-be/internal/pkg/apperrors"
	"shelf-assist-be/internal/pkg/serverutils"
	"shelf-assist-be/internal/repository/memory"
	"shelf-assist-be/internal/service"
	"shelf-assist-be/pkg/store"
)

// SessionHeader optionally pins an audio upload to the image upload that
// produced its candidates. Absent, the most recent session is used.
const SessionHeader = "X-Session-ID"

type IUploadController interface {
	RegisterRoutes(r fiber.Router)
	UploadMode(ctx *fiber.Ctx) error
	UploadImage(ctx *fiber.Ctx) error
	UploadAudio(ctx *fiber.Ctx) error
}

type uploadController struct {
	modeService   service.IModeService
	extraction    service.IExtractionService
	currency      service.ICurrencyService
	transcription service.ITranscriptionService
	matching      service.IMatchingService
	feedback      service.IFeedbackService
	sessions      *memory.SessionRepository
}

func NewUploadController(
	modeService service.IModeService,
	extraction service.IExtractionService,
	currency service.ICurrencyService,
	transcription service.ITranscriptionService,
	matching service.IMatchingService,
	feedback service.IFeedbackService,
	sessions *memory.SessionRepository,
) IUploadController {
	return &uploadController{
		modeService:   modeService,
		extraction:    extraction,
		currency:      currency,
		transcription: transcription,
		matching:      matching,
		feedback:      feedback,
		sessions:      sessions,
	}
}

func (c *uploadController) RegisterRoutes(r fiber.Router) {
	r.Post("/uploadMode", c.UploadMode)
	r.Post("/uploadImage", c.UploadImage)
	r.Post("/uploadAudio", c.UploadAudio)
}

func (c *uploadController) UploadMode(ctx *fiber.Ctx) error {
	raw := string(ctx.Body())

	mode, changed, err := c.modeService.Set(ctx.Context(), raw)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindInvalidInput {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid mode value"))
		}
		c.feedback.Announce(constant.AnnounceModeError)
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse("Mode change failed"))
	}

	return ctx.JSON(dto.ModeResponse{
		Message:     "Mode updated successfully",
		Mode:        int(mode),
		ModeChanged: changed,
	})
}

func (c *uploadController) UploadImage(ctx *fiber.Ctx) error {
	body := ctx.Body()
	if len(body) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("No file data received"))
	}

	imagePath, filename, err := c.extraction.SaveUpload(ctx.Context(), body)
	if err != nil {
		return err
	}

	if c.modeService.Current() == service.ModeCurrency {
		if _, err := c.currency.Detect(ctx.Context(), imagePath); err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse("Currency detection failed"))
		}
		return ctx.JSON(dto.ImageCurrencyResponse{
			Message:  "Currency detection completed",
			Filename: filename,
		})
	}

	session, err := c.extraction.ExtractCandidates(ctx.Context(), imagePath)
	if err != nil {
		// The image was saved; only the downstream processing degraded.
		return ctx.JSON(dto.ImageWarningResponse{Warning: "Image saved but processing failed"})
	}

	return ctx.JSON(dto.ImageProductResponse{
		Message:       "Image uploaded successfully (product mode)",
		Filename:      filename,
		CroppedImages: session.Candidates,
		SessionID:     session.ID,
	})
}

func (c *uploadController) UploadAudio(ctx *fiber.Ctx) error {
	if c.modeService.Current() == service.ModeCurrency {
		return ctx.JSON(dto.MessageResponse{Message: "Audio processing disabled in currency mode"})
	}

	body := ctx.Body()
	if len(body) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("No file data received"))
	}

	transcript, err := c.transcription.Transcribe(ctx.Context(), body)
	if err != nil {
		c.feedback.Announce(constant.AnnounceBadAudio)
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Transcription failed"))
	}

	var session *store.Session
	if id := ctx.Get(SessionHeader); id != "" {
		session, _ = c.sessions.Get(id)
	} else {
		session, _ = c.sessions.Current()
	}

	var candidates []string
	if session != nil {
		candidates = session.Candidates
	}

	result, err := c.matching.MatchProduct(ctx.Context(), candidates, transcript)
	if err != nil {
		return err
	}

	if result.Matched {
		return ctx.JSON(dto.AudioMatchResponse{
			Message:    "PRODUCT IDENTIFIED",
			Product:    result.Product,
			Confidence: result.Confidence,
		})
	}

	c.feedback.Announce(constant.AnnounceNoMatch)
	return ctx.JSON(dto.MessageResponse{Message: "NO PRODUCT MATCH FOUND"})
}
