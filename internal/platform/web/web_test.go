package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/void-runner/internal/config"
	"github.com/vovakirdan/void-runner/internal/core"
	"github.com/vovakirdan/void-runner/internal/games/runner"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s := NewServer(":0", HandlerConfig{
		Logger:   log.New(io.Discard),
		Runner:   config.DefaultRunnerConfig(),
		TickRate: 120,
	})
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws" + query
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if resp != nil {
		resp.Body.Close()
	}
	require.NoError(t, err)
	t.Cleanup(func() {
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		conn.Close()
	})
	return conn
}

// readUntil reads messages until match accepts one or limit messages pass.
func readUntil(t *testing.T, conn *websocket.Conn, limit int, match func(raw map[string]any) bool) map[string]any {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	for i := 0; i < limit; i++ {
		_, payload, err := conn.ReadMessage()
		require.NoError(t, err)
		var raw map[string]any
		require.NoError(t, json.Unmarshal(payload, &raw))
		if match(raw) {
			return raw
		}
	}
	t.Fatalf("no matching message within %d reads", limit)
	return nil
}

func TestFeedSendsMenuFrameOnConnect(t *testing.T) {
	conn := dial(t, newTestServer(t), "?seed=7")

	var frame FrameMessage
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, conn.ReadJSON(&frame))

	assert.Equal(t, ProtocolVersion, frame.Ver)
	assert.Equal(t, "frame", frame.Type)
	assert.Equal(t, uint64(0), frame.Tick)
	assert.Equal(t, "menu", frame.Phase)
	assert.Equal(t, "third", frame.Camera)
	assert.NotEmpty(t, frame.Drawables)
}

func TestFeedAppliesClientInput(t *testing.T) {
	conn := dial(t, newTestServer(t), "?seed=7")
	readUntil(t, conn, 1, func(map[string]any) bool { return true })

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: "input", Action: "confirm"}))
	readUntil(t, conn, 600, func(raw map[string]any) bool {
		return raw["type"] == "frame" && raw["phase"] == "playing"
	})

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: "input", Action: "camera"}))
	readUntil(t, conn, 600, func(raw map[string]any) bool {
		return raw["type"] == "frame" && raw["camera"] == "first"
	})
}

func TestFeedRejectsUnknownActions(t *testing.T) {
	conn := dial(t, newTestServer(t), "")
	require.NoError(t, conn.WriteJSON(ClientMessage{Type: "input", Action: "teleport"}))

	msg := readUntil(t, conn, 600, func(raw map[string]any) bool {
		return raw["type"] == "error"
	})
	assert.Contains(t, msg["reason"], "teleport")
}

func TestFeedRejectsBadSeed(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/ws?seed=abc")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSchemaEndpoint(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/schema")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "blackHoleRadius")
	assert.Contains(t, string(body), "Void Runner Frame Feed")
}

func TestFrameMessageMirrorsScene(t *testing.T) {
	g, err := runner.NewWithConfig(config.DefaultRunnerConfig())
	require.NoError(t, err)
	g.Reset(runnerRuntime())

	scene := g.Scene()
	msg := NewFrameMessage(g, 3)

	require.Len(t, msg.Drawables, len(scene.Drawables))
	for i, d := range scene.Drawables {
		assert.Equal(t, d.Mesh.String(), msg.Drawables[i].Mesh)
		assert.Equal(t, [16]float32(d.Model), msg.Drawables[i].Model)
	}
	assert.Equal(t, [16]float32(scene.View), msg.View)
	assert.Equal(t, uint64(3), msg.Tick)
	assert.Empty(t, msg.HitKind)
}

func runnerRuntime() core.RuntimeConfig {
	rt := core.DefaultConfig()
	rt.Seed = 1
	return rt
}
