package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/yeremiapane/restaurant-system/kds"
	"github.com/yeremiapane/restaurant-system/utils"
)

type LiveController struct {
	Hub      *kds.Hub
	upgrader websocket.Upgrader
}

// NewLiveController builds the websocket endpoint. checkOrigin may be nil to
// accept any origin.
func NewLiveController(hub *kds.Hub, checkOrigin func(r *http.Request) bool) *LiveController {
	if checkOrigin == nil {
		checkOrigin = func(r *http.Request) bool { return true }
	}
	return &LiveController{
		Hub:      hub,
		upgrader: websocket.Upgrader{CheckOrigin: checkOrigin},
	}
}

// Stream -> websocket endpoint, ?view=all|kitchen|floor
func (lc *LiveController) Stream(c *gin.Context) {
	view := c.DefaultQuery("view", kds.ViewAll)
	if !kds.ValidView(view) {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidView)
		return
	}

	ws, err := lc.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.InfoLogger.WithError(err).Warn("websocket upgrade failed")
		return
	}

	lc.Hub.RegisterClient(ws, view)
	utils.InfoLogger.WithField("view", view).Debug("live client connected")

	// clients only listen; reading detects the disconnect
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	lc.Hub.UnregisterClient(ws)
}
