package handlers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/interfaces"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/pkg/utils"
)

type UploadResponse struct {
	URL string `json:"url"`
}

type UploadHandler struct {
	uploader interfaces.Uploader
}

func NewUploadHandler(uploader interfaces.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// POST /api/uploads/evidence
// form-data: file=<image or pdf>
func (h *UploadHandler) UploadEvidence(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "file is required"})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowed := map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".pdf": true}
	if !allowed[ext] {
		return c.Status(400).JSON(fiber.Map{"message": "only jpg/jpeg/png/webp/pdf allowed"})
	}

	const maxSize = 5 * 1024 * 1024 // 5MB
	if file.Size > maxSize {
		return c.Status(400).JSON(fiber.Map{"message": "file too large (max 5MB)"})
	}

	f, err := file.Open()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "cannot open uploaded file"})
	}
	defer f.Close()

	b, err := utils.ReadAllLimit(f, maxSize)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": err.Error()})
	}

	publicID := uuid.NewString()
	url, err := h.uploader.UploadBytes(c.UserContext(), "placement/evidence", publicID, b)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": fmt.Sprintf("upload failed: %v", err)})
	}

	return c.JSON(UploadResponse{URL: url})
}
