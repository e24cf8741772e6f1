// Package web streams scene snapshots of a runner session over a websocket so
// an external renderer (a browser WebGL client) can draw them, and feeds the
// client's input back into the session.
package web

import (
	"github.com/invopop/jsonschema"

	"github.com/vovakirdan/void-runner/internal/games/runner"
)

// ProtocolVersion is carried in every server message.
const ProtocolVersion = 1

// ClientMessage is sent by the renderer.
type ClientMessage struct {
	Ver    int    `json:"ver,omitempty" jsonschema:"description=Protocol version the client speaks"`
	Type   string `json:"type" jsonschema:"enum=input,description=Message kind"`
	Action string `json:"action,omitempty" jsonschema:"enum=left,enum=right,enum=jump,enum=camera,enum=pause,enum=confirm,enum=restart,description=Action triggered this frame"`
}

// DrawableMessage is one mesh instance of the scene.
type DrawableMessage struct {
	Mesh     string      `json:"mesh" jsonschema:"enum=box,enum=pyramid,enum=track,enum=disc,enum=cylinder,enum=sphere"`
	Model    [16]float32 `json:"model" jsonschema:"description=Column-major model matrix"`
	Color    [3]float32  `json:"color" jsonschema:"description=Linear RGB in [0,1]"`
	Emissive bool        `json:"emissive,omitempty"`
}

// FrameMessage is the per-tick scene snapshot sent to the renderer.
type FrameMessage struct {
	Ver             int               `json:"ver"`
	Type            string            `json:"type" jsonschema:"enum=frame"`
	Tick            uint64            `json:"tick"`
	Phase           string            `json:"phase" jsonschema:"enum=menu,enum=playing,enum=gameover"`
	Paused          bool              `json:"paused,omitempty"`
	Score           int               `json:"score"`
	Speed           float64           `json:"speed"`
	Camera          string            `json:"camera" jsonschema:"enum=third,enum=first"`
	HitKind         string            `json:"hitKind,omitempty"`
	Eye             [3]float32        `json:"eye"`
	View            [16]float32       `json:"view" jsonschema:"description=Column-major view matrix"`
	Proj            [16]float32       `json:"proj" jsonschema:"description=Column-major projection matrix"`
	Drawables       []DrawableMessage `json:"drawables"`
	BlackHoleRadius float32           `json:"blackHoleRadius"`
	TrackOffset     float32           `json:"trackOffset"`
}

// ErrorMessage reports a rejected client message.
type ErrorMessage struct {
	Ver    int    `json:"ver"`
	Type   string `json:"type" jsonschema:"enum=error"`
	Reason string `json:"reason"`
}

// NewFrameMessage snapshots the game's scene.
func NewFrameMessage(g *runner.Game, tick uint64) FrameMessage {
	scene := g.Scene()
	state := g.State()

	msg := FrameMessage{
		Ver:             ProtocolVersion,
		Type:            "frame",
		Tick:            tick,
		Phase:           state.Phase.String(),
		Paused:          state.Paused,
		Score:           state.Score,
		Speed:           g.Speed(),
		Camera:          g.Camera().String(),
		Eye:             scene.Eye,
		View:            scene.View,
		Proj:            scene.Projection,
		Drawables:       make([]DrawableMessage, 0, len(scene.Drawables)),
		BlackHoleRadius: scene.BlackHoleRadius,
		TrackOffset:     scene.TrackOffset,
	}
	if hit, ok := g.Hit(); ok {
		msg.HitKind = hit.Kind.String()
	}
	for _, d := range scene.Drawables {
		msg.Drawables = append(msg.Drawables, DrawableMessage{
			Mesh:     d.Mesh.String(),
			Model:    d.Model,
			Color:    d.Color,
			Emissive: d.Emissive,
		})
	}
	return msg
}

// Protocol groups the feed's message types for schema generation.
type Protocol struct {
	Client ClientMessage `json:"client" jsonschema:"description=Renderer to server"`
	Frame  FrameMessage  `json:"frame" jsonschema:"description=Server to renderer, once per tick"`
	Error  ErrorMessage  `json:"error" jsonschema:"description=Server to renderer on a rejected message"`
}

// Schema returns the JSON schema of the feed protocol.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(Protocol))
	schema.Title = "Void Runner Frame Feed"
	schema.Description = "Messages exchanged on the /ws websocket"
	return schema
}
