package handlers

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"resume-match-pro/internal/models"
	"resume-match-pro/internal/services"
)

type ExtractHandler struct {
	extractor   services.ExtractorService
	maxFileSize int64
}

func NewExtractHandler(extractor services.ExtractorService, maxFileSize int64) *ExtractHandler {
	return &ExtractHandler{
		extractor:   extractor,
		maxFileSize: maxFileSize,
	}
}

// HandleExtract handles POST /extract. It turns an uploaded PDF, DOCX or
// plain-text document into text the UI can drop into the resume field. The
// file is processed in memory and discarded.
func (h *ExtractHandler) HandleExtract(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("document")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "document file is required",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to open uploaded file",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to read uploaded file",
		})
	}

	text, err := h.extractor.ExtractText(fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to extract text: %v", err),
		})
	}

	return c.JSON(models.ExtractResponse{
		Text:       text,
		Characters: len(text),
	})
}
