package asteroids

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-classics/internal/core"
	"github.com/vovakirdan/tui-classics/internal/registry"
)

func newTestGame(t *testing.T, preset string) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	SetDifficultyPreset(preset)
	t.Cleanup(func() { SetDifficultyPreset("") })

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 1})
	return g
}

// isolate replaces the field with a single rock parked in a corner so
// tests control every collision.
func isolate(g *Game) {
	g.asteroids = []*Asteroid{{Pos: core.V(3, 3), Scale: 2, Size: SizeSmall, Alive: true}}
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatalf("%q not registered", GameID)
	}
}

func TestReset(t *testing.T) {
	g := newTestGame(t, "")

	if w, h := g.WorldSize(); w != 80 || h != 44 {
		t.Errorf("WorldSize() = %v x %v, expected 80 x 44", w, h)
	}
	if g.Lives() != 3 {
		t.Errorf("Lives() = %d, expected 3", g.Lives())
	}
	if g.Wave() != 1 || len(g.Asteroids()) != 4 {
		t.Errorf("wave %d with %d asteroids, expected wave 1 with 4", g.Wave(), len(g.Asteroids()))
	}
	for _, a := range g.Asteroids() {
		if a.Size != SizeLarge {
			t.Errorf("first wave asteroid is %v", a.Size)
		}
		if d := a.Pos.Sub(core.V(40, 22)).Len(); d < 27.9 || d > 28.1 {
			t.Errorf("spawned %v from center, expected on the 28-unit ring", d)
		}
	}
	if !g.Ship().Alive || g.Ship().Rotation != 90 {
		t.Error("ship should start alive and pointing up")
	}
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		preset        string
		expectedLives int
		expectedRocks int
	}{
		{"easy", 5, 3},
		{"normal", 3, 4},
		{"hard", 2, 8},
		{"fixed", 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			g := newTestGame(t, tt.preset)
			if g.Lives() != tt.expectedLives {
				t.Errorf("Lives() = %d, expected %d", g.Lives(), tt.expectedLives)
			}
			if len(g.Asteroids()) != tt.expectedRocks {
				t.Errorf("%d asteroids, expected %d", len(g.Asteroids()), tt.expectedRocks)
			}
		})
	}
}

func TestDeterministic(t *testing.T) {
	a := newTestGame(t, "")
	b := newTestGame(t, "")

	inputs := []core.InputFrame{
		core.FrameOf(core.ActionUp),
		core.FrameOf(core.ActionLeft, core.ActionFire),
		core.NewInputFrame(),
		core.FrameOf(core.ActionFire),
	}
	for i := 0; i < 50; i++ {
		in := inputs[i%len(inputs)]
		a.Step(in)
		b.Step(in)
	}

	if a.State() != b.State() || a.Ship().Pos != b.Ship().Pos || len(a.Asteroids()) != len(b.Asteroids()) {
		t.Error("same seed and input should give the same game")
	}
}

func TestFireCooldown(t *testing.T) {
	g := newTestGame(t, "")
	isolate(g)

	fire := core.FrameOf(core.ActionFire)
	g.Step(fire)
	g.Step(fire)
	if len(g.Bullets()) != 1 {
		t.Fatalf("%d bullets, expected 1 during cooldown", len(g.Bullets()))
	}

	g.Step(core.NewInputFrame())
	g.Step(core.NewInputFrame())
	g.Step(fire)
	if len(g.Bullets()) != 2 {
		t.Errorf("%d bullets, expected 2 after cooldown", len(g.Bullets()))
	}
}

func TestBulletLimit(t *testing.T) {
	g := newTestGame(t, "")
	isolate(g)
	g.cfg.Ship.FireCooldown = 0
	g.cfg.Bullets.Max = 2

	for i := 0; i < 5; i++ {
		g.Step(core.FrameOf(core.ActionConfirm))
	}
	if len(g.Bullets()) != 2 {
		t.Errorf("%d bullets, expected limit of 2", len(g.Bullets()))
	}
}

func TestBulletSplitsAsteroid(t *testing.T) {
	tests := []struct {
		size          Size
		expectedScore int
		expectedRocks int
		fragmentSize  Size
	}{
		{SizeLarge, 20, 3, SizeMedium},
		{SizeMedium, 50, 3, SizeSmall},
		{SizeSmall, 100, 0, SizeSmall},
	}

	for _, tt := range tests {
		t.Run(tt.size.String(), func(t *testing.T) {
			g := newTestGame(t, "")
			rock := g.newAsteroid(core.V(40, 8), tt.size)
			g.asteroids = []*Asteroid{rock}
			g.bullets = []*Bullet{{Pos: rock.Pos, Life: 1, Alive: true}}

			g.collide()
			g.sweep()

			if g.score != tt.expectedScore {
				t.Errorf("score = %d, expected %d", g.score, tt.expectedScore)
			}
			if len(g.asteroids) != tt.expectedRocks {
				t.Fatalf("%d asteroids, expected %d", len(g.asteroids), tt.expectedRocks)
			}
			for _, a := range g.asteroids {
				if a.Size != tt.fragmentSize || a.Pos != rock.Pos {
					t.Errorf("fragment %v at %v", a.Size, a.Pos)
				}
			}
			if len(g.bullets) != 0 {
				t.Error("bullet should be consumed")
			}
		})
	}
}

func TestShipCollisionAndRespawn(t *testing.T) {
	g := newTestGame(t, "")
	rock := &Asteroid{Pos: g.Ship().Pos, Scale: 5, Size: SizeLarge, Alive: true}
	g.asteroids = []*Asteroid{rock}

	g.collide()
	g.sweep()

	if g.Ship().Alive {
		t.Fatal("ship should be destroyed")
	}
	if g.Lives() != 2 {
		t.Errorf("Lives() = %d, expected 2", g.Lives())
	}
	if len(g.asteroids) != 0 {
		t.Error("rock should be destroyed with the ship")
	}
	if g.score != 0 {
		t.Error("crashing scores nothing")
	}

	isolate(g)
	for i := 0; i < 20; i++ {
		g.Step(core.NewInputFrame())
	}
	if !g.Ship().Alive {
		t.Fatal("ship should respawn")
	}
	if !g.Ship().Invulnerable() {
		t.Error("respawned ship should be invulnerable")
	}
}

func TestInvulnerableShipIgnoresRocks(t *testing.T) {
	g := newTestGame(t, "")
	g.Ship().invulnerable = 1
	g.asteroids = []*Asteroid{{Pos: g.Ship().Pos, Scale: 5, Size: SizeLarge, Alive: true}}

	g.collide()
	if !g.Ship().Alive || g.Lives() != 3 {
		t.Error("invulnerable ship was destroyed")
	}
}

func TestGameOver(t *testing.T) {
	g := newTestGame(t, "")
	g.lives = 1
	g.asteroids = []*Asteroid{{Pos: g.Ship().Pos, Scale: 5, Size: SizeLarge, Alive: true}}

	g.collide()
	if !g.State().GameOver {
		t.Fatal("last ship lost should end the game")
	}

	ticks := g.ticks
	g.Step(core.NewInputFrame())
	if g.ticks != ticks {
		t.Error("simulation advanced after game over")
	}
}

func TestNextWave(t *testing.T) {
	g := newTestGame(t, "")
	g.asteroids = nil

	g.Step(core.NewInputFrame())
	if g.Wave() != 2 || len(g.Asteroids()) != 5 {
		t.Errorf("wave %d with %d asteroids, expected wave 2 with 5", g.Wave(), len(g.Asteroids()))
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(t, "")
	pos := g.Asteroids()[0].Pos

	g.Step(core.FrameOf(core.ActionPause))
	g.Step(core.NewInputFrame())
	if !g.State().Paused || g.Asteroids()[0].Pos != pos {
		t.Error("asteroids moved while paused")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, "")
	g.asteroids = append(g.asteroids, &Asteroid{Pos: core.V(10, 10), Scale: 3, Size: SizeMedium, Alive: true})

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.Row(0), "Score: 0") {
		t.Errorf("HUD = %q", scr.Row(0))
	}
	if !strings.Contains(scr.String(), string(noseArrow(90))) {
		t.Error("ship not drawn")
	}
	if !strings.ContainsRune(scr.String(), RockChar) {
		t.Error("asteroids not drawn")
	}

	small := New()
	small.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 8, TickRate: 10, Seed: 1})
	small.Render(scr)
	if !strings.Contains(scr.String(), "Window too small") {
		t.Error("expected too-small message")
	}
}

func TestNoseArrow(t *testing.T) {
	tests := []struct {
		rotation float64
		expected rune
	}{
		{0, '→'},
		{90, '↑'},
		{180, '←'},
		{270, '↓'},
		{350, '→'},
		{45, '↗'},
	}
	for _, tt := range tests {
		if got := noseArrow(tt.rotation); got != tt.expected {
			t.Errorf("noseArrow(%v) = %q, expected %q", tt.rotation, got, tt.expected)
		}
	}
}
