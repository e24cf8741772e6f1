package runner

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/void-runner/internal/config"
)

// Obstacle is one live obstacle travelling toward the runner.
type Obstacle struct {
	Lane           float64 // Lateral world x
	Kind           Kind
	VerticalOffset float64
	Depth          float64 // Increases toward the runner; the runner sits at 0
	Scale          mgl32.Vec3
	Color          mgl32.Vec3
}

// Rand is the uniform random source used by the spawn policy.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float32() float32
}

// RegistryParams holds the spawn and cull constants of a registry.
type RegistryParams struct {
	Lanes         []float64
	Kinds         []Kind
	SpawnInterval float64
	SpawnDepth    float64
	CullDepth     float64
}

// Registry construction errors.
var (
	ErrEmptyLanes = errors.New("runner: obstacle lane set is empty")
	ErrEmptyKinds = errors.New("runner: obstacle kind set is empty")
	ErrNilRand    = errors.New("runner: nil random source")
)

// ParamsFromConfig converts the track section of a config into registry params.
func ParamsFromConfig(track config.RunnerTrack) (RegistryParams, error) {
	kinds := make([]Kind, 0, len(track.Kinds))
	for _, name := range track.Kinds {
		k, err := ParseKind(name)
		if err != nil {
			return RegistryParams{}, err
		}
		kinds = append(kinds, k)
	}
	p := RegistryParams{
		Lanes:         append([]float64(nil), track.Lanes...),
		Kinds:         kinds,
		SpawnInterval: track.SpawnInterval,
		SpawnDepth:    track.SpawnDepth,
		CullDepth:     track.CullDepth,
	}
	return p, p.validate()
}

func (p RegistryParams) validate() error {
	if len(p.Lanes) == 0 {
		return ErrEmptyLanes
	}
	if len(p.Kinds) == 0 {
		return ErrEmptyKinds
	}
	return nil
}

// ObstacleRegistry owns the obstacle lifecycle: spawning, advancing and culling.
type ObstacleRegistry struct {
	obstacles  []Obstacle
	spawnTimer float64
	spawned    int
	params     RegistryParams
	rng        Rand
}

// NewObstacleRegistry creates an empty registry. It fails on an empty lane or
// kind table since every spawn picks one element of each.
func NewObstacleRegistry(params RegistryParams, rng Rand) (*ObstacleRegistry, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	return &ObstacleRegistry{
		obstacles: make([]Obstacle, 0, 16),
		params:    params,
		rng:       rng,
	}, nil
}

// Advance runs one frame: spawn, motion, cull. dt must be non-negative and finite.
// At most one obstacle spawns per call no matter how large dt is.
func (r *ObstacleRegistry) Advance(dt, speed float64) {
	r.spawnTimer += dt
	if r.spawnTimer >= r.params.SpawnInterval {
		r.spawn()
		r.spawnTimer = 0
	}

	for i := range r.obstacles {
		r.obstacles[i].Depth += speed * dt
	}

	// Filter in place, keeping survivor order
	live := r.obstacles[:0]
	for _, o := range r.obstacles {
		if o.Depth < r.params.CullDepth {
			live = append(live, o)
		}
	}
	r.obstacles = live
}

// spawn appends one obstacle at the spawn depth with a random lane and kind.
func (r *ObstacleRegistry) spawn() {
	lane := r.params.Lanes[r.rng.Intn(len(r.params.Lanes))]
	kind := r.params.Kinds[r.rng.Intn(len(r.params.Kinds))]
	attrs := kind.Attrs()

	color := attrs.FixedColor
	if attrs.RandomColor {
		color = mgl32.Vec3{r.rng.Float32(), r.rng.Float32(), r.rng.Float32()}
	}

	r.obstacles = append(r.obstacles, Obstacle{
		Lane:           lane,
		Kind:           kind,
		VerticalOffset: attrs.VerticalOffset,
		Depth:          r.params.SpawnDepth,
		Scale:          attrs.Scale,
		Color:          color,
	})
	r.spawned++
}

// Reset clears all obstacles and zeroes the spawn timer and counter.
func (r *ObstacleRegistry) Reset() {
	r.obstacles = r.obstacles[:0]
	r.spawnTimer = 0
	r.spawned = 0
}

// Obstacles returns a copy of the live obstacles in spawn order.
func (r *ObstacleRegistry) Obstacles() []Obstacle {
	out := make([]Obstacle, len(r.obstacles))
	copy(out, r.obstacles)
	return out
}

// Len returns the number of live obstacles.
func (r *ObstacleRegistry) Len() int {
	return len(r.obstacles)
}

// SpawnCount returns how many obstacles spawned since the last reset.
func (r *ObstacleRegistry) SpawnCount() int {
	return r.spawned
}

// SpawnTimer returns the seconds accumulated toward the next spawn.
func (r *ObstacleRegistry) SpawnTimer() float64 {
	return r.spawnTimer
}

// Params returns the registry's spawn and cull constants.
func (r *ObstacleRegistry) Params() RegistryParams {
	return r.params
}
