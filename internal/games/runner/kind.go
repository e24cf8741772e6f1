package runner

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Kind is the closed set of obstacle variants.
type Kind int

const (
	KindCube Kind = iota
	KindPyramid
	KindBlock
	KindLaserGate
)

// AllKinds lists every obstacle kind in table order.
var AllKinds = []Kind{KindCube, KindPyramid, KindBlock, KindLaserGate}

// String returns the config/wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindCube:
		return "cube"
	case KindPyramid:
		return "pyramid"
	case KindBlock:
		return "block"
	case KindLaserGate:
		return "laser_gate"
	default:
		return "unknown"
	}
}

// ParseKind maps a config name to a Kind.
func ParseKind(name string) (Kind, error) {
	for _, k := range AllKinds {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("runner: unknown obstacle kind %q", name)
}

// Mesh identifies the geometry a renderer should draw for a drawable.
type Mesh int

const (
	MeshBox Mesh = iota
	MeshPyramid
	MeshTrack
	MeshDisc
	MeshCylinder
	MeshSphere
)

// String returns the wire name of the mesh.
func (m Mesh) String() string {
	switch m {
	case MeshBox:
		return "box"
	case MeshPyramid:
		return "pyramid"
	case MeshTrack:
		return "track"
	case MeshDisc:
		return "disc"
	case MeshCylinder:
		return "cylinder"
	case MeshSphere:
		return "sphere"
	default:
		return "unknown"
	}
}

// KindAttrs holds the fixed per-kind attributes.
type KindAttrs struct {
	Mesh           Mesh
	Scale          mgl32.Vec3
	VerticalOffset float64
	// FixedColor is used instead of a random color when RandomColor is false.
	RandomColor bool
	FixedColor  mgl32.Vec3
	// HeightGated kinds only collide with a runner below the high threshold.
	HeightGated bool
}

var kindTable = [...]KindAttrs{
	KindCube: {
		Mesh:           MeshBox,
		Scale:          mgl32.Vec3{5, 5, 5},
		VerticalOffset: -0.5,
		RandomColor:    true,
	},
	KindPyramid: {
		Mesh:           MeshPyramid,
		Scale:          mgl32.Vec3{3.5, 3.5, 3.5},
		VerticalOffset: -0.5,
		RandomColor:    true,
	},
	KindBlock: {
		Mesh:           MeshBox,
		Scale:          mgl32.Vec3{5, 10, 12},
		VerticalOffset: -0.5,
		RandomColor:    true,
	},
	KindLaserGate: {
		Mesh:           MeshBox,
		Scale:          mgl32.Vec3{1, 1, 1},
		VerticalOffset: -2.0,
		FixedColor:     mgl32.Vec3{0.3, 0.3, 0.3},
		HeightGated:    true,
	},
}

// Attrs returns the fixed attributes of the kind.
func (k Kind) Attrs() KindAttrs {
	if k < 0 || int(k) >= len(kindTable) {
		return kindTable[KindCube]
	}
	return kindTable[k]
}

// Part is one box of a multi-part obstacle, relative to the obstacle origin.
type Part struct {
	Offset   mgl32.Vec3
	Scale    mgl32.Vec3
	Color    mgl32.Vec3
	Emissive bool
}

// BeamColor is the emissive color of a laser gate beam.
var BeamColor = mgl32.Vec3{1.0, 0.0, 0.2}

// Parts returns the sub-parts of a composite kind, or nil for single-mesh kinds.
func (k Kind) Parts(color mgl32.Vec3) []Part {
	if k != KindLaserGate {
		return nil
	}
	return []Part{
		{Offset: mgl32.Vec3{-1.8, 1.5, 0}, Scale: mgl32.Vec3{0.5, 3, 0.5}, Color: color},
		{Offset: mgl32.Vec3{1.8, 1.5, 0}, Scale: mgl32.Vec3{0.5, 3, 0.5}, Color: color},
		{Offset: mgl32.Vec3{0, 2, 0}, Scale: mgl32.Vec3{3.6, 0.15, 0.15}, Color: BeamColor, Emissive: true},
	}
}
