package server

import (
	"github.com/gofiber/fiber/v2"
)

// ToggleLike handles POST /api/posts/:id/like
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	post, err := s.engagementService.ToggleLike(
		c.UserContext(), c.Params("id"), currentUserID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(post)
}

// GetLikers handles GET /api/posts/:id/likes
func (s *Server) GetLikers(c *fiber.Ctx) error {
	users, err := s.engagementService.Likers(c.UserContext(), c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"users": users})
}

// ToggleFavorite handles POST /api/posts/:id/favorite
func (s *Server) ToggleFavorite(c *fiber.Ctx) error {
	favorited, err := s.engagementService.ToggleFavorite(
		c.UserContext(), c.Params("id"), currentUserID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"favorited": favorited})
}

// GetFavorites handles GET /api/favorites
func (s *Server) GetFavorites(c *fiber.Ctx) error {
	posts, err := s.engagementService.Favorites(c.UserContext(), currentUserID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"posts": posts})
}
