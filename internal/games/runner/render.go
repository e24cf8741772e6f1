package runner

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/void-runner/internal/core"
)

// Visual characters for rendering
const (
	TrackChar     = '·'
	LaneMarkChar  = '╎'
	HorizonChar   = '─'
	CubeChar      = '▓'
	PyramidChar   = '▲'
	BlockChar     = '█'
	SupportChar   = '║'
	BeamChar      = '═'
	RobotBodyChar = '█'
	RobotHeadChar = '◆'
	HoleCoreChar  = '●'
	HoleRingChar  = '○'
)

// projector maps world points to screen cells through a view-projection matrix.
type projector struct {
	vp   mgl32.Mat4
	w, h int
}

// project returns the screen cell of a world point, or ok=false when the
// point is behind the near plane.
func (p projector) project(v mgl32.Vec3) (x, y int, ok bool) {
	clip := p.vp.Mul4x1(v.Vec4(1))
	if clip.W() <= NearPlane {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	fx := (float64(ndc.X()) + 1) / 2 * float64(p.w)
	fy := (1 - float64(ndc.Y())) / 2 * float64(p.h)
	return int(math.Floor(fx)), int(math.Floor(fy)), true
}

// projectBox returns the screen rect covered by the front face of an
// axis-aligned box with the given center and size.
func (p projector) projectBox(center, size mgl32.Vec3) (core.Rect, bool) {
	half := size.Mul(0.5)
	front := center.Z() + half.Z()
	x0, y0, ok0 := p.project(mgl32.Vec3{center.X() - half.X(), center.Y() + half.Y(), front})
	x1, y1, ok1 := p.project(mgl32.Vec3{center.X() + half.X(), center.Y() - half.Y(), front})
	if !ok0 || !ok1 {
		return core.Rect{}, false
	}
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0)), true
}

// Render projects the scene onto the terminal screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() <= 0 || dst.Height() <= 0 {
		return
	}

	scene := g.Scene()
	p := projector{vp: scene.ViewProjection(), w: dst.Width(), h: dst.Height()}

	g.drawBlackHole(dst, p, scene.BlackHoleRadius)
	g.drawTrack(dst, p)

	// Far to near so nearer obstacles overdraw
	obs := g.obstacles.Obstacles()
	sort.SliceStable(obs, func(i, j int) bool { return obs[i].Depth < obs[j].Depth })
	for _, o := range obs {
		g.drawObstacle(dst, p, o)
	}

	if g.camera == CameraThirdPerson {
		g.drawRobot(dst, p)
	}

	g.drawHUD(dst)
}

func (g *Game) drawBlackHole(dst *core.Screen, p projector, radius float32) {
	cx, cy, ok := p.project(blackHolePos)
	if !ok {
		return
	}
	// Radius is in disc units; the disc spans 100 world units
	r := float64(radius) * 10
	for dy := -int(r) - 1; dy <= int(r)+1; dy++ {
		for dx := -int(2*r) - 2; dx <= int(2*r)+2; dx++ {
			d := math.Hypot(float64(dx)/2, float64(dy))
			switch {
			case d <= r*0.6:
				dst.SetColored(cx+dx, cy+dy, HoleCoreChar, core.ColorGray)
			case d <= r:
				dst.SetColored(cx+dx, cy+dy, HoleRingChar, core.ColorPurple)
			}
		}
	}
}

func (g *Game) drawTrack(dst *core.Screen, p projector) {
	ground := float32(g.physics.GroundY)
	half := float32(g.physics.LaneWidth) * 1.5

	if _, hy, ok := p.project(mgl32.Vec3{0, ground, float32(g.params.SpawnDepth)}); ok {
		dst.DrawHLine(0, hy, dst.Width(), HorizonChar, core.ColorMagenta)
	}

	// Lane dividers scroll with the track offset
	scroll := g.trackOffset * g.cfg.Game.TrackScrollDivisor
	edges := []float32{-half, -half / 3, half / 3, half}
	for i, ex := range edges {
		ch, c := LaneMarkChar, core.ColorCyan
		if i == 0 || i == len(edges)-1 {
			ch, c = TrackChar, core.ColorBlue
		}
		for z := g.params.SpawnDepth; z < 10; z += 2 {
			if i != 0 && i != len(edges)-1 && int(math.Floor((z+scroll)/4))%2 == 0 {
				continue
			}
			x, y, ok := p.project(mgl32.Vec3{ex, ground, float32(z)})
			if ok {
				dst.SetColored(x, y, ch, c)
			}
		}
	}
}

func (g *Game) drawObstacle(dst *core.Screen, p projector, o Obstacle) {
	origin := mgl32.Vec3{float32(o.Lane), float32(o.VerticalOffset), float32(o.Depth)}
	parts := o.Kind.Parts(o.Color)
	if parts == nil {
		r, ok := p.projectBox(origin, o.Scale)
		if !ok {
			return
		}
		ch := CubeChar
		switch o.Kind {
		case KindPyramid:
			ch = PyramidChar
		case KindBlock:
			ch = BlockChar
		}
		dst.Fill(r, ch, core.NearestColor(o.Color.Elem()))
		return
	}

	for _, part := range parts {
		r, ok := p.projectBox(origin.Add(part.Offset), part.Scale)
		if !ok {
			continue
		}
		ch := SupportChar
		if part.Emissive {
			ch = BeamChar
		}
		dst.Fill(r, ch, core.NearestColor(part.Color.Elem()))
	}
}

func (g *Game) drawRobot(dst *core.Screen, p projector) {
	x := float32(g.runner.X)
	baseY := float32(g.runner.Y) + robotBodyLift

	body, ok := p.projectBox(mgl32.Vec3{x, baseY, 0}, mgl32.Vec3{0.8, 2.2, 0.8})
	if !ok {
		return
	}
	dst.Fill(body, RobotBodyChar, core.ColorWhite)
	headX := body.X + body.W/2
	dst.SetColored(headX, body.Y-1, RobotHeadChar, core.ColorBrightCyan)

	// Legs alternate with the limb swing
	_, leg := LimbAngles(g.elapsed, g.phase == core.PhasePlaying, g.runner.Airborne)
	left, right := '╱', '╲'
	if leg < 0 {
		left, right = '╲', '╱'
	}
	legY := body.Bottom()
	dst.SetColored(body.X, legY, left, core.ColorBrightGreen)
	dst.SetColored(body.Right()-1, legY, right, core.ColorBrightGreen)
}

func (g *Game) drawHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf(" Score: %d ", g.Score())
	dst.DrawText(2, 0, scoreText)

	info := fmt.Sprintf(" Spd: %.0f  Cam: %s ", g.speed, g.camera)
	dst.DrawText(dst.Width()-len(info)-2, 0, info)

	switch {
	case g.phase == core.PhaseMenu:
		g.drawCenteredMessage(dst, "VOID RUNNER", "Enter/Space to start  |  C camera")
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.phase == core.PhaseGameOver:
		sub := fmt.Sprintf("Score: %d  |  Press R to restart", g.Score())
		if g.hit != nil {
			sub = fmt.Sprintf("Hit a %s  |  Score: %d  |  R to restart", g.hit.Kind, g.Score())
		}
		g.drawCenteredMessage(dst, "GAME OVER", sub)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	titleW, subW := len([]rune(title)), len([]rune(subtitle))
	box := core.Centered(max(titleW, subW)+4, 5, dst.Width(), dst.Height())

	dst.DrawPanel(box)
	dst.DrawText(box.X+(box.W-titleW)/2, box.Y+1, title)
	dst.DrawText(box.X+(box.W-subW)/2, box.Y+3, subtitle)
}
