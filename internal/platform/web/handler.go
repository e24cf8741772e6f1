package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/void-runner/internal/config"
	"github.com/vovakirdan/void-runner/internal/core"
	"github.com/vovakirdan/void-runner/internal/games/runner"
	"github.com/vovakirdan/void-runner/internal/headless"
	"github.com/vovakirdan/void-runner/internal/storage"
)

// inputBuffer bounds the actions queued between two ticks.
const inputBuffer = 64

// HandlerConfig configures the feed handler.
type HandlerConfig struct {
	Logger *log.Logger

	// Runner is the config every connection's game is built from.
	Runner config.RunnerConfig

	// TickRate is the fixed simulation and frame rate.
	TickRate int

	// Store journals finished runs when set.
	Store *storage.Store
}

// Handler serves one runner session per websocket connection.
type Handler struct {
	cfg      HandlerConfig
	logger   *log.Logger
	upgrader websocket.Upgrader
}

// NewHandler constructs a feed handler.
func NewHandler(cfg HandlerConfig) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return &Handler{
		cfg:      cfg,
		logger:   logger,
		upgrader: upgrader,
	}
}

// Handle upgrades the request and runs the session until the client leaves.
// An optional "seed" query parameter fixes the session seed.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	seed := time.Now().UnixNano()
	if raw := r.URL.Query().Get("seed"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			http.Error(w, "invalid seed", http.StatusBadRequest)
			return
		}
		seed = parsed
	}

	game, err := runner.NewWithConfig(h.cfg.Runner)
	if err != nil {
		h.logger.Error("cannot build runner", "error", err)
		http.Error(w, "runner unavailable", http.StatusInternalServerError)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.Close()

	h.logger.Info("feed connected", "remote", r.RemoteAddr, "seed", seed)
	defer h.logger.Info("feed disconnected", "remote", r.RemoteAddr)

	rt := core.DefaultConfig()
	rt.TickRate = h.cfg.TickRate
	rt.Seed = seed
	session := headless.NewSession(game, rt)
	if h.cfg.Store != nil {
		session.OnRunEnd(func(rec storage.RunRecord, edges []storage.InputEdge) {
			if _, err := h.cfg.Store.SaveRun(rec, edges); err != nil {
				h.logger.Warn("could not journal run", "error", err)
			}
		})
	}

	actions := make(chan core.Action, inputBuffer)
	rejects := make(chan string, inputBuffer)
	done := make(chan struct{})
	go h.readLoop(conn, actions, rejects, done, r.RemoteAddr)

	var tick uint64
	if !h.writeJSON(conn, NewFrameMessage(game, tick)) {
		return
	}

	ticker := time.NewTicker(time.Second / time.Duration(h.cfg.TickRate))
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-done:
			return
		case <-ticker.C:
		}

		in := core.NewInputFrame()
	drain:
		for {
			select {
			case a := <-actions:
				in.Set(a)
			case reason := <-rejects:
				if !h.writeJSON(conn, ErrorMessage{Ver: ProtocolVersion, Type: "error", Reason: reason}) {
					return
				}
			default:
				break drain
			}
		}

		session.Step(in)
		tick++
		if !h.writeJSON(conn, NewFrameMessage(game, tick)) {
			return
		}
	}
}

// readLoop decodes client messages until the connection fails.
func (h *Handler) readLoop(conn *websocket.Conn, actions chan<- core.Action, rejects chan<- string, done chan<- struct{}, remote string) {
	defer close(done)

	reject := func(reason string) {
		select {
		case rejects <- reason:
		default:
		}
	}

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			h.logger.Debug("discarding malformed message", "remote", remote, "error", err)
			reject("malformed message")
			continue
		}
		if msg.Type != "input" {
			reject("unknown message type " + strconv.Quote(msg.Type))
			continue
		}

		action := core.ParseAction(msg.Action)
		switch action {
		case core.ActionNone, core.ActionQuit, core.ActionBack:
			h.logger.Debug("ignoring action", "remote", remote, "action", msg.Action)
			reject("unknown action " + strconv.Quote(msg.Action))
			continue
		}

		select {
		case actions <- action:
		default:
			h.logger.Debug("input queue full", "remote", remote)
		}
	}
}

// writeJSON sends one message; it reports false once the connection is gone.
func (h *Handler) writeJSON(conn *websocket.Conn, payload any) bool {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("failed to marshal message", "error", err)
		return true
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return false
	}
	return true
}
