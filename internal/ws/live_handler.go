package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Dashboards connect from arbitrary origins.
		return true
	},
}

// LiveHandler upgrades the connection and subscribes it to the live feed.
func LiveHandler(hub *LiveHub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		client := newLiveClient(hub, conn)
		hub.register <- client

		go client.writePump()
		client.readPump()
	}
}
