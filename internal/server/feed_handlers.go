package server

import (
	"socialite/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/feed
func (s *Server) GetFeed(c *fiber.Ctx) error {
	limit, offset := parsePagination(c, service.DefaultFeedLimit)
	posts, err := s.feedService.ComposeFeed(c.UserContext(), currentUserID(c), limit, offset)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"posts": posts})
}
