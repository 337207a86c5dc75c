package letters

import (
	"fmt"

	"github.com/vovakirdan/letter-workshop/internal/assets"
	"github.com/vovakirdan/letter-workshop/internal/config"
	"github.com/vovakirdan/letter-workshop/internal/core"
	"github.com/vovakirdan/letter-workshop/internal/games/letters/levels"
	"github.com/vovakirdan/letter-workshop/internal/games/letters/sim"
	"github.com/vovakirdan/letter-workshop/internal/registry"
)

// Layout constants
const (
	hudHeight  = 2 // status line + separator
	minScreenW = 40
	minScreenH = 12

	PlatformChar = '█'
)

func init() {
	registry.Register("letters", func() registry.Game {
		return New()
	})
}

// Game implements the Letter Collector platformer.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.LettersConfig
	level   levels.Level
	font    *assets.Font
	state   *sim.State
	pick    string // Level chosen for this instance; overrides SetLevel

	paused   bool
	won      bool
	fell     bool
	tooSmall bool
}

// New creates a new Letter Collector game.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "letters"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Letter Collector"
}

// Resize records the new terminal size. The world is scaled at render
// time, so the round keeps going.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.tooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
}

// Reset loads config, level and font, and starts a fresh round.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.Resize(runtime)

	cfg, err := config.LoadLetters(configPath)
	if err != nil {
		logger().Warn("using default config", "error", err)
		cfg = config.DefaultLettersConfig()
	}
	if difficultyPreset != "" {
		config.ApplyLettersPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	id := levelID
	if g.pick != "" {
		id = g.pick
	}
	g.level = loadLevel(id)
	if g.font == nil {
		g.font = assets.DefaultFont(logger())
	}

	g.state = sim.NewState(g.level, sim.ParamsFromConfig(cfg), cfg.Player.Width, cfg.Player.Height)
	g.resizePlayer()
	for _, p := range g.state.Pickups.All() {
		p.Visual = g.font.RenderText(string(p.Letter))
		g.state.Pickups.Add(p)
	}

	g.paused = false
	g.won = false
	g.fell = false
}

// loadLevel resolves the selected level, falling back to the first built-in
// level when the selection cannot be loaded.
func loadLevel(id string) levels.Level {
	loader := Loader()

	if id != "" {
		lvl, err := loader.LoadByID(id)
		if err == nil {
			return lvl
		}
		logger().Warn("level unavailable", "level", id, "error", err)
	} else {
		all, err := loader.LoadAll()
		if err == nil && len(all) > 0 {
			return all[0]
		}
		logger().Warn("no levels found", "dir", levelDir, "error", err)
	}

	all, err := levels.DefaultLoader().LoadAll()
	if err != nil || len(all) == 0 {
		// The built-in set is embedded, so this only happens in a broken build.
		panic(fmt.Sprintf("letters: no built-in levels: %v", err))
	}
	return all[0]
}

// SelectLevel picks the level for this game instance. It takes effect on
// the next Reset.
func (g *Game) SelectLevel(id string) {
	g.pick = id
}

// resizePlayer fits the player box to the glyph of the current name. When
// the glyph is missing the previous size is kept.
func (g *Game) resizePlayer() {
	name := g.state.Name()
	res := g.font.RenderText(name)
	if !res.OK() {
		logger().Warn("cannot render player name, keeping size", "name", name)
		return
	}
	g.state.Player.W = res.Glyph.W
	g.state.Player.H = res.Glyph.H
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && (g.won || g.fell) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.won && !g.fell {
		g.paused = !g.paused
	}

	if g.paused || g.won || g.fell {
		return core.StepResult{State: g.State()}
	}

	ev := sim.Step(g.state, sim.Input{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Jump:  in.Has(core.ActionJump) || in.Has(core.ActionUp),
	})

	if ev.NameChanged {
		g.resizePlayer()
	}
	for _, r := range ev.Penalized {
		logger().Debug("decoy letter", "letter", string(r), "score", g.state.Player.Score)
	}

	switch {
	case g.state.TargetRemaining() == 0:
		g.won = true
		logger().Info("name complete", "name", g.state.Name(), "score", g.state.Player.Score, "ticks", g.state.Tick)
	case g.cfg.World.FallLimit > 0 && g.state.Player.Pos.Y > g.cfg.World.FallLimit:
		g.fell = true
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		GameOver: g.won || g.fell,
		Paused:   g.paused,
	}
	if g.state != nil {
		st.Score = g.state.Player.Score
		st.Label = g.state.Name()
	}
	return st
}

// Snapshot returns the simulation snapshot, or a zero snapshot before the
// first Reset.
func (g *Game) Snapshot() sim.Snapshot {
	if g.state == nil {
		return sim.Snapshot{}
	}
	return g.state.Snapshot()
}

// Level returns the level being played.
func (g *Game) Level() levels.Level {
	return g.level
}

// Won reports whether the target name has been completed.
func (g *Game) Won() bool {
	return g.won
}
