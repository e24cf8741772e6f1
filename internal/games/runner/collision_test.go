package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollisionAfterScrollingIntoWindow(t *testing.T) {
	p := testParams()
	p.SpawnInterval = 10 // keep the spawn policy out of the way
	r, err := NewObstacleRegistry(p, &seqRand{})
	require.NoError(t, err)
	r.obstacles = append(r.obstacles, Obstacle{Lane: 0, Kind: KindCube, Depth: -150})

	r.Advance(1.0, 150)

	obs := r.Obstacles()
	require.Len(t, obs, 1)
	assert.Equal(t, 0.0, obs[0].Depth)
	assert.True(t, CheckCollision(PlayerPos{X: 0, Y: -2}, obs, defaultRules()))
}

func TestLaserGateHeightRule(t *testing.T) {
	gate := []Obstacle{{Lane: 0, Kind: KindLaserGate, Depth: 0}}
	rules := defaultRules()

	tests := []struct {
		name string
		y    float64
		want bool
	}{
		{"grounded", -2.0, true},
		{"just below threshold", -0.5 - 1e-9, true},
		{"at threshold", -0.5, false},
		{"high", 1.0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckCollision(PlayerPos{X: 0, Y: tt.y}, gate, rules))
		})
	}
}

func TestSolidKindsIgnoreHeight(t *testing.T) {
	for _, k := range []Kind{KindCube, KindPyramid, KindBlock} {
		obs := []Obstacle{{Lane: 0, Kind: k, Depth: 0}}
		assert.True(t, CheckCollision(PlayerPos{X: 0, Y: 5}, obs, defaultRules()), k.String())
	}
}

func TestLateralMarginBoundary(t *testing.T) {
	obs := []Obstacle{{Lane: 1.0, Kind: KindCube, Depth: 0}}
	rules := defaultRules()

	assert.False(t, CheckCollision(PlayerPos{X: 0, Y: -2}, obs, rules), "separation equal to margin")
	assert.True(t, CheckCollision(PlayerPos{X: 0.001, Y: -2}, obs, rules), "separation below margin")
	assert.False(t, CheckCollision(PlayerPos{X: 6, Y: -2}, obs, rules), "neighbouring lane")
}

func TestDepthWindowIsOpen(t *testing.T) {
	rules := defaultRules()
	p := PlayerPos{X: 0, Y: -2}

	tests := []struct {
		depth float64
		want  bool
	}{
		{-1.0, false},
		{-0.999, true},
		{0.999, true},
		{1.0, false},
		{-50, false},
	}
	for _, tt := range tests {
		obs := []Obstacle{{Lane: 0, Kind: KindCube, Depth: tt.depth}}
		assert.Equal(t, tt.want, CheckCollision(p, obs, rules), "depth %v", tt.depth)
	}
}

func TestCheckCollisionIsPure(t *testing.T) {
	obs := []Obstacle{
		{Lane: -6, Kind: KindBlock, Depth: 0.5},
		{Lane: 0, Kind: KindLaserGate, Depth: -0.2},
	}
	before := append([]Obstacle(nil), obs...)
	p := PlayerPos{X: 0, Y: -2}

	first := CheckCollision(p, obs, defaultRules())
	second := CheckCollision(p, obs, defaultRules())
	assert.Equal(t, first, second)
	assert.True(t, first)
	assert.Equal(t, before, obs)
}

func TestFirstHitReturnsFirstQualifying(t *testing.T) {
	obs := []Obstacle{
		{Lane: 6, Kind: KindCube, Depth: 0},
		{Lane: 0, Kind: KindPyramid, Depth: 0.5},
		{Lane: 0, Kind: KindBlock, Depth: -0.5},
	}
	hit, ok := FirstHit(PlayerPos{X: 0, Y: -2}, obs, defaultRules())
	require.True(t, ok)
	assert.Equal(t, KindPyramid, hit.Kind)

	_, ok = FirstHit(PlayerPos{X: 0, Y: -2}, nil, defaultRules())
	assert.False(t, ok)
}
