// Package viewer provides the Letter Scene 3D demo: letter models and a tree
// placed in a 3D scene, seen through a perspective camera the player moves.
package viewer

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/letter-workshop/internal/assets"
	"github.com/vovakirdan/letter-workshop/internal/config"
	"github.com/vovakirdan/letter-workshop/internal/core"
	"github.com/vovakirdan/letter-workshop/internal/registry"
)

const (
	hudHeight = 2
	// Beyond this depth a model is drawn as a single character.
	lodDepth = 25.0
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

func init() {
	registry.Register("viewer", func() registry.Game {
		return New()
	})
}

// object is a model placed in the scene.
type object struct {
	model string
	pos   core.Vec3
	color core.Color
}

// Game implements the 3D letter scene.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.ViewerConfig
	library *assets.Library
	camera  core.Camera
	objects []object
	paused  bool
	ticks   uint64
}

// New creates a new scene viewer.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "viewer"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Letter Scene 3D"
}

// KeepsScore reports that the viewer never records a score.
func (g *Game) KeepsScore() bool {
	return false
}

// Resize records the new terminal size. Projection reads the screen size
// on every Render, so the camera stays where it is.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime = runtime
}

// Reset loads the scene and puts the camera back at its start.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadViewer(configPath)
	if err != nil {
		logger().Warn("using default config", "error", err)
		cfg = config.DefaultViewerConfig()
	}
	g.cfg = cfg

	if g.library == nil {
		g.library = assets.DefaultLibrary(logger())
	}

	g.camera = core.Camera{
		Eye:    cfg.Camera.Eye.Vec(),
		Target: cfg.Camera.Target.Vec(),
		Up:     core.V3(0, 1, 0),
		FOV:    cfg.Camera.FOV,
		Near:   cfg.Camera.Near,
		Far:    cfg.Camera.Far,
	}

	g.objects = g.objects[:0]
	for _, l := range cfg.Letters {
		g.objects = append(g.objects, object{
			model: assets.LetterModel([]rune(l.Letter)[0]),
			pos:   l.Position.Vec(),
			color: core.ColorBrightYellow,
		})
	}
	if cfg.Tree.Model != "" {
		g.objects = append(g.objects, object{
			model: cfg.Tree.Model,
			pos:   cfg.Tree.Position.Vec(),
			color: core.ColorGreen,
		})
	}

	g.paused = false
	g.ticks = 0
}

// Step moves the camera. W/S dolly along z, A/D strafe along x; the camera
// keeps looking at its target.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	speed := g.cfg.Camera.MoveSpeed
	if in.Has(core.ActionUp) {
		g.camera.Eye.Z -= speed
	}
	if in.Has(core.ActionDown) {
		g.camera.Eye.Z += speed
	}
	if in.Has(core.ActionLeft) {
		g.camera.Eye.X -= speed
	}
	if in.Has(core.ActionRight) {
		g.camera.Eye.X += speed
	}

	g.ticks++
	return core.StepResult{State: g.State()}
}

// State returns the current game state. The scene has no score and never ends.
func (g *Game) State() core.GameState {
	return core.GameState{Paused: g.paused}
}

// Camera returns the current camera.
func (g *Game) Camera() core.Camera {
	return g.camera
}

type placed struct {
	obj   object
	model *assets.Model
	at    core.Projected
}

// Render draws the scene far to near so closer models cover farther ones.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	eye := g.camera.Eye
	hud := fmt.Sprintf(" %s | %s | Camera: (%.1f, %.1f, %.1f)  WASD move, R reset",
		g.Title(), g.cfg.Name, eye.X, eye.Y, eye.Z)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	w, h := dst.Width(), dst.Height()-hudHeight
	if w <= 0 || h <= 0 {
		return
	}
	// Terminal cells are about twice as tall as wide
	aspect := float64(w) / float64(2*h)

	var visible []placed
	for _, obj := range g.objects {
		res := g.library.Load(obj.model)
		if !res.OK() {
			continue
		}
		at, ok := g.camera.Project(obj.pos, w, h, aspect)
		if !ok {
			continue
		}
		visible = append(visible, placed{obj: obj, model: res.Model, at: at})
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].at.Depth > visible[j].at.Depth
	})

	for _, p := range visible {
		x, y := p.at.X, hudHeight+p.at.Y
		if p.at.Depth > lodDepth {
			dst.SetColored(x, y, iconOf(p.model), p.obj.color)
			continue
		}
		drawModel(dst, p.model, x-p.model.W/2, y-p.model.H/2, p.obj.color)
	}
}

// drawModel copies the model's visible cells; spaces are transparent.
func drawModel(dst *core.Screen, m *assets.Model, x, y int, c core.Color) {
	for row, line := range m.Lines {
		if y+row < hudHeight {
			continue
		}
		col := 0
		for _, r := range line {
			if r != ' ' {
				dst.SetColored(x+col, y+row, r, c)
			}
			col++
		}
	}
}

// iconOf returns the first visible rune of a model.
func iconOf(m *assets.Model) rune {
	for _, line := range m.Lines {
		for _, r := range line {
			if r != ' ' {
				return r
			}
		}
	}
	return '*'
}

func logger() *log.Logger {
	return log.WithPrefix("viewer")
}
