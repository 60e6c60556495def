package httpadapter

import (
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialLive(t *testing.T, httpURL string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(httpURL, "http") + "/api/solve/live"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestSolveLiveEndpoint(t *testing.T) {
	srv := newTestServer(t)
	conn := dialLive(t, srv.URL)

	require.NoError(t, conn.WriteJSON(solveReq{Rows: []string{"RrR"}}))
	var msg liveMsg
	for {
		require.NoError(t, conn.ReadJSON(&msg))
		if msg.Type == "result" {
			break
		}
		assert.Equal(t, "progress", msg.Type)
	}
	assert.True(t, msg.Solvable)
	require.NotNil(t, msg.Solution)
	assert.Contains(t, msg.Trace, "red:")
}

func TestSolveLiveEndpointMalformed(t *testing.T) {
	srv := newTestServer(t)
	conn := dialLive(t, srv.URL)

	require.NoError(t, conn.WriteJSON(solveReq{Rows: []string{"Rx"}}))
	var msg liveMsg
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "result", msg.Type)
	assert.NotEmpty(t, msg.Error)
}
