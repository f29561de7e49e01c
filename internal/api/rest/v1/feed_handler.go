package v1

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/PHedro/recipes/internal/infrastructure/realtime"
	"github.com/PHedro/recipes/internal/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	feedReadLimit = 1 << 20
	feedPongWait  = 60 * time.Second
)

// feedFrame is a subscription command a feed client sends over the socket.
type feedFrame struct {
	Action   string `json:"action"`
	RecipeID string `json:"recipe_id"`
}

// FeedHandler defines the methods for handling the live activity feed in the API
type FeedHandler interface {
	Stream(ctx *gin.Context)
}

// feedHandler struct holds the hub feed connections are attached to
type feedHandler struct {
	hub    *realtime.Hub
	logger logger.Logger
}

// NewFeedHandler creates a new instance of feedHandler
func NewFeedHandler(hub *realtime.Hub, logger logger.Logger) FeedHandler {
	return &feedHandler{
		hub:    hub,
		logger: logger,
	}
}

// Clients authenticate by token, so cross-origin upgrades are allowed.
var feedUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Stream godoc
// @Summary Stream the live activity feed
// @Description Upgrades the request to a websocket. Clients send subscribe and unsubscribe frames naming a recipe and receive the comment and like events happening on their subscribed recipes, except their own.
// @Tags Feed
// @Param token query string false "API token, for clients that cannot set the Authorization header"
// @Success 101
// @Failure 401 {object} ErrorResponse
// @Router /feed/ws [get]
func (handler *feedHandler) Stream(ctx *gin.Context) {
	user := CurrentUser(ctx)
	if user == nil {
		var errorResponse ErrorResponse
		errorResponse.Message = "authentication credentials were not provided"
		ctx.JSON(http.StatusUnauthorized, errorResponse)
		return
	}

	ws, err := feedUpgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		handler.logger.Warn("Failed to upgrade feed connection for user ", user.ID, ": ", err)
		return
	}

	conn := realtime.NewConnection(user.ID, ws)
	handler.hub.Attach(conn)
	handler.logger.Info("Feed connection opened for user ", user.ID)

	defer func() {
		handler.hub.Detach(conn)
		conn.Close(websocket.CloseNormalClosure, "client disconnected")
		handler.logger.Info("Feed connection closed for user ", user.ID)
	}()

	ws.SetReadLimit(feedReadLimit)
	_ = ws.SetReadDeadline(time.Now().Add(feedPongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(feedPongWait))
	})

	for {
		_, message, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				handler.logger.Warn("Feed connection error for user ", user.ID, ": ", err)
			}
			return
		}

		var frame feedFrame
		if err := json.Unmarshal(message, &frame); err != nil || len(frame.RecipeID) == 0 {
			continue
		}

		switch frame.Action {
		case "subscribe":
			handler.hub.Subscribe(frame.RecipeID, conn)
		case "unsubscribe":
			handler.hub.Unsubscribe(frame.RecipeID, conn)
		}
	}
}
