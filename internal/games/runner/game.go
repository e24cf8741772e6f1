// Package runner implements Void Runner, a three-lane endless runner heading
// into a black hole. Obstacles scroll toward the runner, who dodges by
// switching lanes and jumps laser gates.
package runner

import (
	"fmt"
	"math"
	"math/rand"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/void-runner/internal/config"
	"github.com/vovakirdan/void-runner/internal/core"
	"github.com/vovakirdan/void-runner/internal/registry"
)

// GameID is the registry identifier of the runner.
const GameID = "runner"

// CameraMode selects the scene camera.
type CameraMode int

const (
	CameraThirdPerson CameraMode = iota
	CameraFirstPerson
)

// String returns the wire name of the camera mode.
func (c CameraMode) String() string {
	if c == CameraFirstPerson {
		return "first"
	}
	return "third"
}

// Toggle switches between third and first person.
func (c CameraMode) Toggle() CameraMode {
	if c == CameraFirstPerson {
		return CameraThirdPerson
	}
	return CameraFirstPerson
}

// Game implements the Void Runner game logic.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.RunnerConfig
	hasCfg     bool // cfg was supplied by NewWithConfig
	ramp       *config.SpeedRamp
	physics    Physics
	rules      CollisionRules
	params     RegistryParams
	obstacles  *ObstacleRegistry
	runner     RunnerState

	phase  core.Phase
	paused bool
	camera CameraMode

	distance    float64 // Score accumulator
	speed       float64 // Scroll speed of the last frame
	trackOffset float64 // Track texture offset
	elapsed     float64 // Seconds since Reset, frozen while paused
	frames      int     // Simulated frames of the current run
	runTime     float64 // Simulated seconds of the current run
	runs        int     // Runs started since Reset
	runSeed     int64
	hit         *Obstacle
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// LoadConfig loads, applies the preset to, and fully validates a runner
// config, including the obstacle kind names.
func LoadConfig(path, preset string) (config.RunnerConfig, error) {
	cfg, err := config.LoadRunner(path)
	if err != nil {
		return cfg, err
	}
	config.ApplyRunnerPreset(&cfg, config.ParsePreset(preset))
	if _, err := ParamsFromConfig(cfg.Track); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// New creates a new game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game bound to an explicit config.
func NewWithConfig(cfg config.RunnerConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, err := ParamsFromConfig(cfg.Track); err != nil {
		return nil, err
	}
	return &Game{cfg: cfg, hasCfg: true}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Void Runner"
}

// Reset returns the game to the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.hasCfg {
		cfg, err := LoadConfig(configPath, string(difficultyPreset))
		if err != nil {
			cfg = config.DefaultRunnerConfig()
		}
		g.cfg = cfg
	}

	params, err := ParamsFromConfig(g.cfg.Track)
	if err != nil {
		g.cfg = config.DefaultRunnerConfig()
		params, _ = ParamsFromConfig(g.cfg.Track)
	}
	g.params = params
	g.physics = PhysicsFromConfig(g.cfg)
	g.rules = RulesFromConfig(g.cfg.Collision)
	g.ramp = config.NewSpeedRamp(g.cfg.Difficulty)

	g.phase = core.PhaseMenu
	g.paused = false
	g.camera = CameraThirdPerson
	g.elapsed = 0
	g.trackOffset = 0
	g.runs = 0
	g.resetRun(runtime.Seed)
}

// Resize adapts the projection to a new screen size without touching the run.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
}

// resetRun clears the per-run state and reseeds the spawn policy.
func (g *Game) resetRun(seed int64) {
	g.runSeed = seed
	g.obstacles, _ = NewObstacleRegistry(g.params, rand.New(rand.NewSource(seed)))
	g.runner = NewRunnerState(g.physics)
	g.distance = 0
	g.speed = g.cfg.Game.BaseSpeed
	g.frames = 0
	g.runTime = 0
	g.hit = nil
}

// startRun begins a new run. Each run gets its own seed so restarts differ
// while staying reproducible from the journal.
func (g *Game) startRun() {
	g.resetRun(g.runtime.Seed + int64(g.runs))
	g.runs++
	g.trackOffset = 0
	g.paused = false
	g.phase = core.PhasePlaying
}

// Step advances the game by dt seconds. dt must already be sanitized.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	var res core.StepResult

	if in.Has(core.ActionCamera) {
		g.camera = g.camera.Toggle()
	}

	switch g.phase {
	case core.PhaseMenu:
		g.elapsed += dt
		g.trackOffset += g.cfg.Game.MenuScrollRate * dt
		if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) {
			g.startRun()
			res.Started = true
		}

	case core.PhasePlaying:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			break
		}
		g.stepPlaying(dt, in, &res)

	case core.PhaseGameOver:
		g.elapsed += dt
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.startRun()
			res.Started = true
		}
	}

	res.State = g.State()
	return res
}

// stepPlaying runs one frame of a live run: registry, collision, physics.
func (g *Game) stepPlaying(dt float64, in core.InputFrame, res *core.StepResult) {
	g.elapsed += dt
	g.frames++
	g.runTime += dt

	g.runner.ApplyInput(InputFromFrame(in), g.physics)

	g.speed = g.ramp.Speed(g.cfg.Game.BaseSpeed, g.Score(), g.runTime)
	g.obstacles.Advance(dt, g.speed)
	g.distance += g.speed * dt * g.cfg.Game.ScoreRate
	if g.cfg.Game.TrackScrollDivisor > 0 {
		g.trackOffset += g.speed / g.cfg.Game.TrackScrollDivisor * dt
	}

	if hit, ok := FirstHit(g.runner.Pos(), g.obstacles.obstacles, g.rules); ok {
		g.hit = &hit
		g.phase = core.PhaseGameOver
		res.Collided = true
		res.HitKind = hit.Kind.String()
		return
	}

	g.runner.Update(dt, g.physics)
}

// Score returns the floored distance score of the current run.
func (g *Game) Score() int {
	return int(math.Floor(g.distance))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		Phase:    g.phase,
		GameOver: g.phase == core.PhaseGameOver,
		Paused:   g.paused,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() core.Phase { return g.phase }

// Runner returns a copy of the runner state.
func (g *Game) Runner() RunnerState { return g.runner }

// Obstacles returns a snapshot of the live obstacles.
func (g *Game) Obstacles() []Obstacle { return g.obstacles.Obstacles() }

// Speed returns the scroll speed of the last simulated frame.
func (g *Game) Speed() float64 { return g.speed }

// Distance returns the unfloored score accumulator.
func (g *Game) Distance() float64 { return g.distance }

// TrackOffset returns the track texture offset.
func (g *Game) TrackOffset() float64 { return g.trackOffset }

// Elapsed returns the animation time in seconds.
func (g *Game) Elapsed() float64 { return g.elapsed }

// Camera returns the active camera mode.
func (g *Game) Camera() CameraMode { return g.camera }

// RunSeed returns the seed of the current (or last) run.
func (g *Game) RunSeed() int64 { return g.runSeed }

// Frames returns the simulated frames of the current run.
func (g *Game) Frames() int { return g.frames }

// SpawnCount returns the obstacles spawned during the current run.
func (g *Game) SpawnCount() int { return g.obstacles.SpawnCount() }

// Hit returns the obstacle that ended the run, if any.
func (g *Game) Hit() (Obstacle, bool) {
	if g.hit == nil {
		return Obstacle{}, false
	}
	return *g.hit, true
}

// Config returns the active config.
func (g *Game) Config() config.RunnerConfig { return g.cfg }

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ConfigYAML returns the active config as YAML for the run journal.
func (g *Game) ConfigYAML() (string, error) {
	data, err := yaml.Marshal(g.cfg)
	if err != nil {
		return "", fmt.Errorf("runner: cannot encode config: %w", err)
	}
	return string(data), nil
}
