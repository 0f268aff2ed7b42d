package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/chaudhary64/resume-pro-ats-api/internal/models"
	"github.com/chaudhary64/resume-pro-ats-api/internal/services"
)

type AnalyzeHandler struct {
	extractor services.ExtractorService
	analyzer  services.AnalyzerService
}

func NewAnalyzeHandler(extractor services.ExtractorService, analyzer services.AnalyzerService) *AnalyzeHandler {
	return &AnalyzeHandler{
		extractor: extractor,
		analyzer:  analyzer,
	}
}

// HandleAnalyzeResume runs the extract -> analyze -> respond pipeline for
// one request. Every request ends in exactly one response: the model's JSON
// on success, or a JSON error body.
func (h *AnalyzeHandler) HandleAnalyzeResume(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "failed to parse multipart form",
		})
	}

	files := form.File["file"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "'file' form field is required",
		})
	}

	jobDescriptions := form.Value["job_description"]
	if len(jobDescriptions) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "'job_description' form field is required",
		})
	}
	jobDescription := jobDescriptions[0]

	file, err := files[0].Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "failed to open uploaded file: " + err.Error(),
		})
	}
	defer file.Close()

	resumeText, err := h.extractor.ExtractText(c.UserContext(), file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: err.Error(),
		})
	}

	if strings.TrimSpace(resumeText) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: models.ErrUnreadableDocument.Error(),
		})
	}

	raw, err := h.analyzer.AnalyzeResume(c.UserContext(), resumeText, jobDescription)
	if err != nil {
		var malformed *models.MalformedOutputError
		if errors.As(err, &malformed) {
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
				Error:       malformed.Error(),
				RawResponse: malformed.Raw,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: err.Error(),
		})
	}

	// Relay the model output byte for byte.
	return c.Status(fiber.StatusOK).Type("json").Send(raw)
}
