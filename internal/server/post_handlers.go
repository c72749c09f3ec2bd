package server

import (
	"strings"

	"socialite/internal/models"
	"socialite/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts. Accepts either a JSON body with a text
// field or a multipart form with text plus an optional image file.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	in := service.CreatePostInput{AuthorID: currentUserID(c)}

	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		in.Text = c.FormValue("text")
		content, err := readImageFile(c, "image")
		if err != nil {
			return serviceError(c, err)
		}
		in.ImageBytes = content
	} else {
		var req struct {
			Text string `json:"text"`
		}
		if err := c.BodyParser(&req); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid request body"))
		}
		in.Text = req.Text
	}

	post, err := s.postService.CreatePost(c.UserContext(), in)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// ListPosts handles GET /api/posts. Returns the public timeline, newest first.
func (s *Server) ListPosts(c *fiber.Ctx) error {
	limit, offset := parsePagination(c, 20)
	posts, err := s.postService.ListRecent(c.UserContext(), limit, offset, currentUserID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"posts": posts})
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	post, err := s.postService.GetPost(c.UserContext(), c.Params("id"), currentUserID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(post)
}

// GetUserPosts handles GET /api/users/:id/posts
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	limit, offset := parsePagination(c, 20)
	posts, err := s.postService.ListByAuthor(
		c.UserContext(), c.Params("id"), limit, offset, currentUserID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"posts": posts})
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	var patch models.PostPatch
	if err := c.BodyParser(&patch); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(
		c.UserContext(), c.Params("id"), currentUserID(c), patch)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	if err := s.postService.DeletePost(
		c.UserContext(), c.Params("id"), currentUserID(c)); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
