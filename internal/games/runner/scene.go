package runner

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/void-runner/internal/core"
)

// Scene constants for camera, backdrop and robot.
const (
	FieldOfView = 45.0
	NearPlane   = 0.1
	FarPlane    = 400.0

	robotBodyLift = 3.2 // Body center above the runner's y
	limbSwingRate = 15.0
	limbSwingAmp  = 0.6
)

var (
	blackHolePos   = mgl32.Vec3{0, 5, -220}
	blackHoleScale = mgl32.Vec3{100, 100, 1}
	robotColor     = mgl32.Vec3{0.85, 0.85, 0.9}
	neonGreen      = mgl32.Vec3{0.2, 1.0, 0.4}
	upAxis         = mgl32.Vec3{0, 1, 0}
)

// Drawable is one mesh instance for a renderer.
type Drawable struct {
	Mesh     Mesh
	Model    mgl32.Mat4
	Color    mgl32.Vec3
	Emissive bool
}

// Scene is a render-ready snapshot of one frame.
type Scene struct {
	Eye             mgl32.Vec3
	Target          mgl32.Vec3
	View            mgl32.Mat4
	Projection      mgl32.Mat4
	Drawables       []Drawable
	BlackHoleRadius float32
	TrackOffset     float32
}

// ViewProjection returns Projection * View.
func (s Scene) ViewProjection() mgl32.Mat4 {
	return s.Projection.Mul4(s.View)
}

// BlackHoleRadius returns the animated event-horizon radius at time t.
// It grows to 0.35 over the first three seconds and then pulses.
func BlackHoleRadius(t float64) float32 {
	r := math.Min(0.35, 0.05+t*0.1) + 0.01*math.Sin(5*t)
	return float32(r)
}

// LimbAngles returns the arm and leg swing of the robot.
func LimbAngles(t float64, playing, airborne bool) (arm, leg float32) {
	switch {
	case playing && !airborne:
		a := float32(math.Sin(t*limbSwingRate) * limbSwingAmp)
		return a, a
	case playing:
		return -0.5, 0.5
	default:
		return 0, 0
	}
}

// CameraEye returns the eye and look-at target for a camera mode.
func CameraEye(mode CameraMode, r RunnerState) (eye, target mgl32.Vec3) {
	x, y := float32(r.X), float32(r.Y)
	if mode == CameraFirstPerson {
		return mgl32.Vec3{x, y + 5, 0}, mgl32.Vec3{x, y + 5, -20}
	}
	return mgl32.Vec3{x * 0.5, 6, 15}, mgl32.Vec3{0, 0, -10}
}

// ObstacleDrawables expands an obstacle into drawables: one for solid kinds,
// one per part for composite kinds.
func ObstacleDrawables(o Obstacle) []Drawable {
	base := mgl32.Translate3D(float32(o.Lane), float32(o.VerticalOffset), float32(o.Depth))
	parts := o.Kind.Parts(o.Color)
	if parts == nil {
		return []Drawable{{
			Mesh:  o.Kind.Attrs().Mesh,
			Model: base.Mul4(scaleMat(o.Scale)),
			Color: o.Color,
		}}
	}
	out := make([]Drawable, 0, len(parts))
	for _, p := range parts {
		out = append(out, Drawable{
			Mesh:     MeshBox,
			Model:    base.Mul4(mgl32.Translate3D(p.Offset.Elem())).Mul4(scaleMat(p.Scale)),
			Color:    p.Color,
			Emissive: p.Emissive,
		})
	}
	return out
}

func scaleMat(v mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Scale3D(v.Elem())
}

// robotDrawables builds the robot from boxes, cylinders and spheres.
func robotDrawables(r RunnerState, arm, leg float32) []Drawable {
	x := float32(r.X)
	baseY := float32(r.Y) + robotBodyLift
	headY := baseY + 1.5

	out := []Drawable{
		{Mesh: MeshBox, Model: mgl32.Translate3D(x, baseY, 0).Mul4(mgl32.Scale3D(0.8, 2.2, 0.8)), Color: robotColor},
		{Mesh: MeshSphere, Model: mgl32.Translate3D(x, headY, 0).Mul4(mgl32.Scale3D(0.8, 0.8, 0.8)), Color: robotColor},
	}
	for _, side := range []float32{-1, 1} {
		shoulder := mgl32.Translate3D(x+side*0.54, baseY+0.9, 0).Mul4(mgl32.HomogRotate3DX(side * -arm))
		out = append(out, Drawable{
			Mesh:  MeshCylinder,
			Model: shoulder.Mul4(mgl32.Translate3D(0, -0.9, 0)).Mul4(mgl32.Scale3D(0.2, 1.9, 0.2)),
			Color: robotColor,
		})
		hip := mgl32.Translate3D(x+side*0.3, baseY-0.8, 0).Mul4(mgl32.HomogRotate3DX(side * leg))
		out = append(out, Drawable{
			Mesh:  MeshCylinder,
			Model: hip.Mul4(mgl32.Translate3D(0, -1.5, 0)).Mul4(mgl32.Scale3D(0.25, 3, 0.25)),
			Color: neonGreen,
		})
	}
	return out
}

// Scene builds the render snapshot for the current frame.
func (g *Game) Scene() Scene {
	eye, target := CameraEye(g.camera, g.runner)
	s := Scene{
		Eye:             eye,
		Target:          target,
		View:            mgl32.LookAtV(eye, target, upAxis),
		Projection:      mgl32.Perspective(mgl32.DegToRad(FieldOfView), g.runtime.Aspect(), NearPlane, FarPlane),
		BlackHoleRadius: BlackHoleRadius(g.elapsed),
		TrackOffset:     float32(g.trackOffset),
	}

	s.Drawables = append(s.Drawables,
		Drawable{Mesh: MeshDisc, Model: mgl32.Translate3D(blackHolePos.Elem()).Mul4(scaleMat(blackHoleScale))},
		Drawable{Mesh: MeshTrack, Model: mgl32.Ident4()},
	)
	for _, o := range g.obstacles.obstacles {
		s.Drawables = append(s.Drawables, ObstacleDrawables(o)...)
	}
	if g.camera == CameraThirdPerson {
		arm, leg := LimbAngles(g.elapsed, g.phase == core.PhasePlaying, g.runner.Airborne)
		s.Drawables = append(s.Drawables, robotDrawables(g.runner, arm, leg)...)
	}
	return s
}
