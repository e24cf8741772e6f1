package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltins(t *testing.T) {
	cfg, err := ParseRunner(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded yaml failed to parse: %v", err)
	}
	def := DefaultRunnerConfig()

	if len(cfg.Track.Lanes) != len(def.Track.Lanes) {
		t.Fatalf("lanes = %v, want %v", cfg.Track.Lanes, def.Track.Lanes)
	}
	for i := range def.Track.Lanes {
		if cfg.Track.Lanes[i] != def.Track.Lanes[i] {
			t.Errorf("lane %d = %v, want %v", i, cfg.Track.Lanes[i], def.Track.Lanes[i])
		}
	}
	if cfg.Track.SpawnInterval != def.Track.SpawnInterval {
		t.Errorf("spawn_interval = %v, want %v", cfg.Track.SpawnInterval, def.Track.SpawnInterval)
	}
	if cfg.Player != def.Player {
		t.Errorf("player = %+v, want %+v", cfg.Player, def.Player)
	}
	if cfg.Game != def.Game {
		t.Errorf("game = %+v, want %+v", cfg.Game, def.Game)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded defaults invalid: %v", err)
	}
}

func TestLoadRunnerCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := []byte("track:\n  spawn_interval: 1.0\ngame:\n  base_speed: 80\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner: %v", err)
	}
	if cfg.Track.SpawnInterval != 1.0 {
		t.Errorf("spawn_interval = %v, want 1.0", cfg.Track.SpawnInterval)
	}
	if cfg.Game.BaseSpeed != 80 {
		t.Errorf("base_speed = %v, want 80", cfg.Game.BaseSpeed)
	}
	// Untouched sections keep their defaults
	if len(cfg.Track.Lanes) != 3 {
		t.Errorf("lanes = %v, want defaults", cfg.Track.Lanes)
	}
	if cfg.Player.Gravity != 0.03 {
		t.Errorf("gravity = %v, want 0.03", cfg.Player.Gravity)
	}
}

func TestLoadRunnerMissingCustomPath(t *testing.T) {
	_, err := LoadRunner(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadRunnerRejectsEmptyLanes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	if err := os.WriteFile(path, []byte("track:\n  lanes: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadRunner(path)
	if !errors.Is(err, ErrNoLanes) {
		t.Errorf("err = %v, want ErrNoLanes", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RunnerConfig)
		wantErr bool
	}{
		{"defaults", func(*RunnerConfig) {}, false},
		{"no lanes", func(c *RunnerConfig) { c.Track.Lanes = nil }, true},
		{"no kinds", func(c *RunnerConfig) { c.Track.Kinds = nil }, true},
		{"zero interval", func(c *RunnerConfig) { c.Track.SpawnInterval = 0 }, true},
		{"cull before spawn", func(c *RunnerConfig) { c.Track.CullDepth = -200 }, true},
		{"zero lane width", func(c *RunnerConfig) { c.Track.LaneWidth = 0 }, true},
		{"zero window", func(c *RunnerConfig) { c.Collision.Window = 0 }, true},
		{"zero gravity", func(c *RunnerConfig) { c.Player.Gravity = 0 }, true},
		{"zero speed", func(c *RunnerConfig) { c.Game.BaseSpeed = 0 }, true},
		{"single lane", func(c *RunnerConfig) { c.Track.Lanes = []float64{0} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyRunnerPreset(t *testing.T) {
	cfg := DefaultRunnerConfig()
	ApplyRunnerPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset = %+v", cfg.Difficulty)
	}

	ApplyRunnerPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should parse to empty")
	}
}
