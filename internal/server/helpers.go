package server

import (
	"io"
	"strconv"

	"socialite/internal/blob"
	"socialite/internal/models"

	"github.com/gofiber/fiber/v2"
)

// currentUserID returns the authenticated user's ID set by the auth middleware.
func currentUserID(c *fiber.Ctx) string {
	if id, ok := c.Locals("userID").(string); ok {
		return id
	}
	return ""
}

// parsePagination reads limit and offset query params with sane bounds.
func parsePagination(c *fiber.Ctx, defaultLimit int) (limit, offset int) {
	limit = defaultLimit
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			offset = v
		}
	}
	return limit, offset
}

// serviceError maps a service-layer error onto its HTTP status and responds.
func serviceError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.HTTPStatus(err), err)
}

// readImageFile extracts an uploaded image from the multipart form. A missing
// file is not an error; the caller decides whether the image is required.
func readImageFile(c *fiber.Ctx, field string) ([]byte, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	if fileHeader.Size > blob.MaxImageBytes {
		return nil, models.NewValidationError("Image exceeds the maximum allowed size")
	}
	f, err := fileHeader.Open()
	if err != nil {
		return nil, models.NewValidationError("Could not read uploaded file")
	}
	defer f.Close()
	content, err := io.ReadAll(io.LimitReader(f, blob.MaxImageBytes+1))
	if err != nil {
		return nil, models.NewValidationError("Could not read uploaded file")
	}
	if len(content) > blob.MaxImageBytes {
		return nil, models.NewValidationError("Image exceeds the maximum allowed size")
	}
	return content, nil
}
