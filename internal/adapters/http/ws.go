package httpadapter

import (
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The UI is served from the same origin; tools like wscat send none.
	CheckOrigin: func(r *http.Request) bool { return true },
}
