// Package asteroids implements the vector arcade shooter on a character
// grid. The world is measured in units where a terminal column is one
// unit wide and a terminal row is two units tall.
package asteroids

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-classics/internal/config"
	"github.com/vovakirdan/tui-classics/internal/core"
	"github.com/vovakirdan/tui-classics/internal/registry"
)

// GameID is the registry identifier.
const GameID = "asteroids"

const (
	hudHeight    = 2
	rowUnits     = 2.0 // World units per terminal row
	respawnDelay = 1.5 // Seconds between losing a ship and the next one
	spawnRing    = 0.35
	minWorldW    = 30
	minWorldRows = 10
)

// Game implements Asteroids.
type Game struct {
	cfg        config.AsteroidsConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	ship      *Ship
	bullets   []*Bullet
	asteroids []*Asteroid

	score    int
	lives    int
	wave     int
	ticks    int
	respawn  float64 // Seconds until the ship returns, 0 when flying
	gameOver bool
	paused   bool

	dt       float64 // Seconds per tick
	screenW  int
	screenH  int
	worldW   float64
	worldH   float64
	tooSmall bool
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParseDifficultyPreset(preset)
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// New creates a new Asteroids game.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Asteroids"
}

// Reset starts a new game sized to the screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadAsteroids(configPath)
	if err != nil {
		log.Warn("asteroids config", "error", err)
		cfg = config.DefaultAsteroidsConfig()
	}
	config.ApplyAsteroidsPreset(&cfg, difficultyPreset)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.dt = runtime.TickDuration().Seconds()

	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH
	g.worldW = float64(runtime.ScreenW)
	g.worldH = float64(runtime.ScreenH-hudHeight) * rowUnits
	g.tooSmall = runtime.ScreenW < minWorldW || runtime.ScreenH-hudHeight < minWorldRows

	g.score = 0
	g.lives = cfg.Ship.Lives
	g.wave = 0
	g.ticks = 0
	g.respawn = 0
	g.gameOver = false
	g.paused = false
	g.bullets = nil
	g.asteroids = nil
	g.ship = NewShip(g.center(), cfg.Ship.Scale)

	g.nextWave()
}

// center returns the middle of the world.
func (g *Game) center() core.Vec {
	return core.V(g.worldW/2, g.worldH/2)
}

func (g *Game) progress() config.Progress {
	return config.Progress{Score: g.score, Ticks: g.ticks, Wave: g.wave}
}

// nextWave spawns large asteroids on a ring around the center.
func (g *Game) nextWave() {
	g.wave++
	base := g.cfg.Asteroids.InitialCount + g.cfg.Asteroids.WaveIncrement*(g.wave-1)
	count := g.difficulty.Count(base, g.progress())

	radius := g.worldW * spawnRing
	for i := 0; i < count; i++ {
		angle := float64(g.rng.Intn(360))
		pos := g.center().Add(core.FromAngle(angle, radius))
		g.asteroids = append(g.asteroids, g.newAsteroid(pos, SizeLarge))
	}
	log.Debug("asteroids wave", "wave", g.wave, "count", count)
}

// newAsteroid creates an asteroid heading in a random direction.
func (g *Game) newAsteroid(pos core.Vec, size Size) *Asteroid {
	rotation := float64(g.rng.Intn(360))
	return &Asteroid{
		Pos:      pos,
		Dir:      core.FromAngle(rotation, 1),
		Rotation: rotation,
		Size:     size,
		Scale:    class(g.cfg.Asteroids, size).Scale,
		Alive:    true,
	}
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.ticks++

	if g.ship.Alive {
		g.steer(in)
		g.ship.update(g.dt, g.cfg.Ship, g.worldW, g.worldH)
	} else if g.lives > 0 {
		g.respawn -= g.dt
		if g.respawn <= 0 {
			g.respawnShip()
		}
	}

	for _, b := range g.bullets {
		b.update(g.dt, g.cfg.Bullets.Wrap, g.worldW, g.worldH)
	}

	speedFactor := g.difficulty.Speed(1.0, g.progress())
	for _, a := range g.asteroids {
		speed := class(g.cfg.Asteroids, a.Size).Speed * speedFactor
		a.update(g.dt, speed, g.worldW, g.worldH)
	}

	g.collide()
	g.sweep()

	if len(g.asteroids) == 0 {
		g.nextWave()
	}

	return core.StepResult{State: g.State()}
}

// steer applies one tick of discrete input to the ship.
func (g *Game) steer(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.ship.Rotate(g.cfg.Ship.RotationStep)
	}
	if in.Has(core.ActionRight) {
		g.ship.Rotate(-g.cfg.Ship.RotationStep)
	}
	if in.Has(core.ActionUp) {
		g.ship.Thrust(g.cfg.Ship.Thrust)
	}
	if in.Has(core.ActionDown) {
		g.ship.Vel = g.ship.Vel.Scale(0.5)
	}
	if in.Has(core.ActionFire) || in.Has(core.ActionConfirm) {
		g.fire()
	}
}

// fire spawns a bullet at the nose when the cooldown allows.
func (g *Game) fire() {
	if g.ship.cooldown > 0 {
		return
	}
	if g.cfg.Bullets.Max > 0 && len(g.bullets) >= g.cfg.Bullets.Max {
		return
	}
	g.ship.cooldown = g.cfg.Ship.FireCooldown
	g.bullets = append(g.bullets, &Bullet{
		Pos:   g.ship.Nose(),
		Vel:   core.FromAngle(g.ship.Rotation, g.cfg.Bullets.Speed),
		Life:  g.cfg.Bullets.Lifetime,
		Alive: true,
	})
}

// collide resolves bullet hits and ship crashes.
func (g *Game) collide() {
	var fragments []*Asteroid

	for _, a := range g.asteroids {
		for _, b := range g.bullets {
			if !b.Alive || !a.Contains(b.Pos) {
				continue
			}
			b.Alive = false
			a.Alive = false
			g.score += class(g.cfg.Asteroids, a.Size).Score
			if a.Size != SizeSmall {
				for i := 0; i < g.cfg.Asteroids.Fragments; i++ {
					fragments = append(fragments, g.newAsteroid(a.Pos, a.Size-1))
				}
			}
			break
		}
		if !a.Alive {
			continue
		}

		if g.ship.Alive && !g.ship.Invulnerable() {
			for _, p := range g.ship.Points() {
				if a.Contains(p) {
					a.Alive = false
					g.destroyShip()
					break
				}
			}
		}
	}

	g.asteroids = append(g.asteroids, fragments...)
}

// destroyShip removes the ship and schedules a respawn or ends the game.
func (g *Game) destroyShip() {
	g.ship.Alive = false
	g.lives--
	log.Debug("asteroids ship lost", "lives", g.lives, "score", g.score)
	if g.lives <= 0 {
		g.gameOver = true
		log.Info("asteroids game over", "score", g.score, "wave", g.wave)
		return
	}
	g.respawn = respawnDelay
}

// respawnShip returns the ship to the center with a grace period.
func (g *Game) respawnShip() {
	g.ship = NewShip(g.center(), g.cfg.Ship.Scale)
	g.ship.invulnerable = g.cfg.Ship.Invulnerable
	g.respawn = 0
}

// sweep drops dead bullets and asteroids.
func (g *Game) sweep() {
	bullets := g.bullets[:0]
	for _, b := range g.bullets {
		if b.Alive {
			bullets = append(bullets, b)
		}
	}
	g.bullets = bullets

	rocks := g.asteroids[:0]
	for _, a := range g.asteroids {
		if a.Alive {
			rocks = append(rocks, a)
		}
	}
	g.asteroids = rocks
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Ship returns the player ship.
func (g *Game) Ship() *Ship { return g.ship }

// Asteroids returns the live asteroids.
func (g *Game) Asteroids() []*Asteroid { return g.asteroids }

// Bullets returns the bullets in flight.
func (g *Game) Bullets() []*Bullet { return g.bullets }

// Lives returns the remaining ships.
func (g *Game) Lives() int { return g.lives }

// Wave returns the current wave number, starting at 1.
func (g *Game) Wave() int { return g.wave }

// WorldSize returns the world dimensions in units.
func (g *Game) WorldSize() (w, h float64) { return g.worldW, g.worldH }

