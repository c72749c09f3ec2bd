package server

import (
	"socialite/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.profileService.Get(c.UserContext(), currentUserID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(user)
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	user, err := s.profileService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/users/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	userID := currentUserID(c)
	user := &models.User{
		ID:    userID,
		Name:  req.Name,
		Email: req.Email,
	}
	if err := s.profileService.Save(c.UserContext(), user); err != nil {
		return serviceError(c, err)
	}

	updated, err := s.profileService.Get(c.UserContext(), userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(updated)
}

// UpdateAvatar handles PUT /api/users/me/avatar
func (s *Server) UpdateAvatar(c *fiber.Ctx) error {
	content, err := readImageFile(c, "avatar")
	if err != nil {
		return serviceError(c, err)
	}
	if content == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Avatar file is required"))
	}

	ref, err := s.profileService.UpdateAvatar(c.UserContext(), currentUserID(c), content)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"avatar_url": ref})
}

// ListUsers handles GET /api/users, paged profile browsing.
func (s *Server) ListUsers(c *fiber.Ctx) error {
	limit, offset := parsePagination(c, 20)
	users, err := s.profileService.List(c.UserContext(), limit, offset)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"users": users})
}

// SearchUsers handles GET /api/users/search?q=
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	limit, offset := parsePagination(c, 20)
	users, err := s.profileService.Search(c.UserContext(), c.Query("q"), limit, offset)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"users": users})
}
