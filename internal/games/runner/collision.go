package runner

import (
	"math"

	"github.com/vovakirdan/void-runner/internal/config"
)

// CollisionRules are the thresholds of the proximity test.
type CollisionRules struct {
	Window        float64 // Obstacle depth must lie in (-Window, Window)
	LateralMargin float64 // Separation strictly below this overlaps
	HighThreshold float64 // Height-gated kinds hit only when y < HighThreshold
}

// RulesFromConfig converts the collision section of a config.
func RulesFromConfig(c config.RunnerCollision) CollisionRules {
	return CollisionRules{
		Window:        c.Window,
		LateralMargin: c.LateralMargin,
		HighThreshold: c.HighThreshold,
	}
}

// PlayerPos is the part of the runner state the collision test reads.
type PlayerPos struct {
	X, Y float64
}

// CheckCollision reports whether the player overlaps any obstacle.
func CheckCollision(p PlayerPos, obstacles []Obstacle, rules CollisionRules) bool {
	_, hit := FirstHit(p, obstacles, rules)
	return hit
}

// FirstHit returns the first obstacle, in slice order, that the player overlaps.
// It is an axis-aligned proximity test, not a geometric intersection.
func FirstHit(p PlayerPos, obstacles []Obstacle, rules CollisionRules) (Obstacle, bool) {
	for _, o := range obstacles {
		if o.Depth <= -rules.Window || o.Depth >= rules.Window {
			continue
		}
		if math.Abs(o.Lane-p.X) >= rules.LateralMargin {
			continue
		}
		if o.Kind.Attrs().HeightGated && p.Y >= rules.HighThreshold {
			continue
		}
		return o, true
	}
	return Obstacle{}, false
}
