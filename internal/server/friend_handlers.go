package server

import (
	"github.com/gofiber/fiber/v2"
)

// SendFriendRequest handles POST /api/friends/requests/:userId
func (s *Server) SendFriendRequest(c *fiber.Ctx) error {
	request, err := s.relationshipService.SendRequest(
		c.UserContext(), currentUserID(c), c.Params("userId"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(request)
}

// GetIncomingRequests handles GET /api/friends/requests
func (s *Server) GetIncomingRequests(c *fiber.Ctx) error {
	requests, err := s.relationshipService.IncomingRequests(c.UserContext(), currentUserID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"requests": requests})
}

// GetOutgoingRequests handles GET /api/friends/requests/sent
func (s *Server) GetOutgoingRequests(c *fiber.Ctx) error {
	requests, err := s.relationshipService.OutgoingRequests(c.UserContext(), currentUserID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"requests": requests})
}

// AcceptFriendRequest handles POST /api/friends/requests/:requestId/accept
func (s *Server) AcceptFriendRequest(c *fiber.Ctx) error {
	request, err := s.relationshipService.Accept(
		c.UserContext(), c.Params("requestId"), currentUserID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(request)
}

// DeclineFriendRequest handles POST /api/friends/requests/:requestId/decline
func (s *Server) DeclineFriendRequest(c *fiber.Ctx) error {
	request, err := s.relationshipService.Decline(
		c.UserContext(), c.Params("requestId"), currentUserID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(request)
}

// RemoveFriend handles DELETE /api/friends/:userId
func (s *Server) RemoveFriend(c *fiber.Ctx) error {
	if err := s.relationshipService.RemoveFriend(
		c.UserContext(), currentUserID(c), c.Params("userId")); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetFriends handles GET /api/friends
func (s *Server) GetFriends(c *fiber.Ctx) error {
	friends, err := s.relationshipService.Friends(c.UserContext(), currentUserID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"friends": friends})
}
