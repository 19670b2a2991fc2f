package gateway

import (
	"strings"

	appErrors "parley/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const localsUserID = "userID"

// requireIdentity resolves the caller's identity for the read-only
// projections. Every rejection is synchronous and leaves no state behind.
func (g *Gateway) requireIdentity(c *fiber.Ctx) error {
	token := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	if token == "" {
		token = c.Query("token")
	}

	userID, err := g.auth.Authenticate(c.UserContext(), token)
	if err != nil {
		return respondError(c, appErrors.ErrNotAuthenticated)
	}

	c.Locals(localsUserID, userID)
	return c.Next()
}

func (g *Gateway) listFriends(c *fiber.Ctx) error {
	userID := c.Locals(localsUserID).(uuid.UUID)

	relationships, err := g.friends.List(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(relationships)
}

func (g *Gateway) messageHistory(c *fiber.Ctx) error {
	userID := c.Locals(localsUserID).(uuid.UUID)

	otherID, err := uuid.Parse(c.Params("userID"))
	if err != nil {
		return respondError(c, appErrors.InvalidArg("invalid user id"))
	}

	history, err := g.dms.History(c.UserContext(), userID, otherID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(history)
}

func (g *Gateway) presence(c *fiber.Ctx) error {
	targetID, err := uuid.Parse(c.Params("userID"))
	if err != nil {
		return respondError(c, appErrors.InvalidArg("invalid user id"))
	}

	presence, err := g.users.Presence(c.UserContext(), targetID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(presence)
}

func (g *Gateway) groupHistory(c *fiber.Ctx) error {
	userID := c.Locals(localsUserID).(uuid.UUID)

	groupID, err := uuid.Parse(c.Params("groupID"))
	if err != nil {
		return respondError(c, appErrors.InvalidArg("invalid group id"))
	}

	history, err := g.groups.History(c.UserContext(), userID, groupID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(history)
}

func respondError(c *fiber.Ctx, err error) error {
	code, message := appErrors.Classify(err)
	return c.Status(httpStatus(code)).JSON(errorPayload{Code: string(code), Message: message})
}

func httpStatus(code appErrors.Code) int {
	switch code {
	case appErrors.CodeInvalidArgument:
		return fiber.StatusBadRequest
	case appErrors.CodeNotFound:
		return fiber.StatusNotFound
	case appErrors.CodeAlreadyExists:
		return fiber.StatusConflict
	case appErrors.CodeUnauthenticated:
		return fiber.StatusUnauthorized
	case appErrors.CodePermissionDenied:
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}
