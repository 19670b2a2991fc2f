package gateway

import (
	"context"
	"encoding/json"

	"parley/internal/dm"
	"parley/internal/friend"
	"parley/internal/group"
	"parley/internal/user"
	appErrors "parley/pkg/errors"
	"parley/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Authenticator resolves a session token to an identity. Credential storage
// and verification live outside this engine.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (uuid.UUID, error)
}

// Gateway is the websocket transport adapter: it turns connection lifecycle
// and inbound frames into engine operations and exposes the read-only query
// endpoints.
type Gateway struct {
	users   user.UserUsecase
	friends friend.FriendUsecase
	dms     dm.MessageUsecase
	groups  group.GroupUsecase
	auth    Authenticator
	logger  logger.Logger
}

func New(users user.UserUsecase, friends friend.FriendUsecase, dms dm.MessageUsecase, groups group.GroupUsecase, auth Authenticator, logger logger.Logger) *Gateway {
	return &Gateway{
		users:   users,
		friends: friends,
		dms:     dms,
		groups:  groups,
		auth:    auth,
		logger:  logger,
	}
}

// MapRoutes wires the websocket endpoint and the read-only projections.
func (g *Gateway) MapRoutes(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(g.handleWebSocket))

	api := app.Group("/api", g.requireIdentity)
	api.Get("/friends", g.listFriends)
	api.Get("/messages/:userID", g.messageHistory)
	api.Get("/presence/:userID", g.presence)
	api.Get("/groups/:groupID/messages", g.groupHistory)
}

// handleWebSocket owns one connection for its whole life: register on entry,
// dispatch frames in a loop, release on exit. Handlers for the same identity
// never interleave because they all run on this goroutine.
func (g *Gateway) handleWebSocket(c *websocket.Conn) {
	ctx := context.Background()

	userID, err := g.auth.Authenticate(ctx, c.Query("token"))
	if err != nil {
		_ = c.WriteJSON(Frame{Type: typeError, Payload: errorPayload{
			Code:    string(appErrors.CodeUnauthenticated),
			Message: appErrors.ErrNotAuthenticated.Error(),
		}})
		_ = c.Close()
		return
	}

	conn := newWSConn(c)

	if err := g.users.Connect(ctx, userID, conn); err != nil {
		g.logger.Error("failed to register connection", "user_id", userID, "err", err)
	}
	defer func() {
		if err := g.users.Disconnect(ctx, userID, conn); err != nil {
			g.logger.Error("failed to release connection", "user_id", userID, "err", err)
		}
	}()

	g.logger.Info("websocket connected", "user_id", userID)

	for {
		_, raw, err := c.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				g.logger.Info("websocket closed", "user_id", userID)
			} else {
				g.logger.Warn("websocket read error", "user_id", userID, "err", err)
			}
			return
		}

		var frame inboundFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			g.pushError(conn, appErrors.InvalidArg("invalid frame"))
			continue
		}

		if err := g.dispatch(ctx, userID, conn, frame); err != nil {
			g.pushError(conn, err)
		}
	}
}

func (g *Gateway) dispatch(ctx context.Context, userID uuid.UUID, conn *wsConn, frame inboundFrame) error {
	switch frame.Type {
	case typeSendDirectMessage:
		var req sendDirectMessageRequest
		if err := json.Unmarshal(frame.Payload, &req); err != nil {
			return appErrors.InvalidArg("invalid send_direct_message payload")
		}
		_, err := g.dms.Send(ctx, dm.SendCommand{
			SenderID:   userID,
			ReceiverID: req.To,
			Payload:    req.Payload,
		})
		return err

	case typeMarkRead:
		var req markReadRequest
		if err := json.Unmarshal(frame.Payload, &req); err != nil {
			return appErrors.InvalidArg("invalid mark_read payload")
		}
		_, err := g.dms.MarkRead(ctx, userID, req.SenderID)
		return err

	case typeRequestFriend:
		var req requestFriendRequest
		if err := json.Unmarshal(frame.Payload, &req); err != nil {
			return appErrors.InvalidArg("invalid request_friend payload")
		}
		return g.friends.Request(ctx, userID, req.TargetID)

	case typeAcceptFriend:
		var req acceptFriendRequest
		if err := json.Unmarshal(frame.Payload, &req); err != nil {
			return appErrors.InvalidArg("invalid accept_friend payload")
		}
		return g.friends.Accept(ctx, userID, req.RequesterID)

	case typeCreateGroup:
		var req createGroupRequest
		if err := json.Unmarshal(frame.Payload, &req); err != nil {
			return appErrors.InvalidArg("invalid create_group payload")
		}
		_, err := g.groups.Create(ctx, group.CreateCommand{
			OwnerID:   userID,
			Name:      req.Name,
			MemberIDs: req.MemberIDs,
		})
		return err

	case typeAcceptGroupInvite:
		var req acceptGroupInviteRequest
		if err := json.Unmarshal(frame.Payload, &req); err != nil {
			return appErrors.InvalidArg("invalid accept_group_invite payload")
		}
		return g.groups.AcceptInvite(ctx, userID, req.GroupID)

	case typeSendGroupMessage:
		var req sendGroupMessageRequest
		if err := json.Unmarshal(frame.Payload, &req); err != nil {
			return appErrors.InvalidArg("invalid send_group_message payload")
		}
		_, err := g.groups.Post(ctx, userID, req.GroupID, req.Text)
		return err

	default:
		return appErrors.InvalidArg("unknown event type: " + frame.Type)
	}
}

func (g *Gateway) pushError(conn *wsConn, err error) {
	code, message := appErrors.Classify(err)

	if pushErr := conn.Push(typeError, errorPayload{Code: string(code), Message: message}); pushErr != nil {
		g.logger.Warn("failed to push error frame", "err", pushErr)
	}
}
