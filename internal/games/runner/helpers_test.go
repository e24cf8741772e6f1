package runner

import (
	"github.com/vovakirdan/void-runner/internal/config"
	"github.com/vovakirdan/void-runner/internal/core"
)

// seqRand replays fixed picks so spawn results are known in advance.
type seqRand struct {
	ints   []int
	floats []float32
	i, f   int
}

func (s *seqRand) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.i%len(s.ints)] % n
	s.i++
	return v
}

func (s *seqRand) Float32() float32 {
	if len(s.floats) == 0 {
		return 0.5
	}
	v := s.floats[s.f%len(s.floats)]
	s.f++
	return v
}

func testParams() RegistryParams {
	return RegistryParams{
		Lanes:         []float64{-6, 0, 6},
		Kinds:         []Kind{KindCube, KindPyramid, KindBlock, KindLaserGate},
		SpawnInterval: 0.5,
		SpawnDepth:    -150,
		CullDepth:     20,
	}
}

func defaultRules() CollisionRules {
	return RulesFromConfig(config.DefaultRunnerConfig().Collision)
}

// fixedConfig is the default config with the speed ramp disabled.
func fixedConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Difficulty.Enabled = false
	return cfg
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}
