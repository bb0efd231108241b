// Package invaders implements two fixed-shooter variants: "Juan Claudio's
// Revenge", with descending waves and a boss on every third level, and a
// classic bouncing formation without enemy fire.
package invaders

import (
	"math/rand"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

// Game state constants
const (
	StateMenu          = "menu"           // Title screen, Enter to begin
	StatePlaying       = "playing"        // Simulation running
	StateLevelComplete = "level_complete" // Wave or boss cleared, Enter to continue
	StateBossIntro     = "boss_intro"     // Boss announced, Enter to fight
	StateGameOver      = "game_over"      // Ship destroyed or overrun
)

// Mode selects the variant.
type Mode int

const (
	ModeRevenge Mode = iota
	ModeClassic
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
	registry.Register("invaders_classic", func() registry.Game {
		return NewClassic()
	})
}

// Game implements both invaders variants.
type Game struct {
	mode       Mode
	cfg        config.InvadersConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	runtime    core.RuntimeConfig

	state        string
	paused       bool
	level        int
	score        int
	best         int
	tick         int
	bossDefeated bool // Last cleared level ended with a boss kill

	ship         Ship
	enemies      []Enemy
	dir          float64 // Formation direction, +1 right, -1 left
	boss         *Boss
	bullets      []Bullet // Player shots
	enemyBullets []Bullet
	explosions   []Explosion

	tooSmall bool // Set by Render; the simulation waits while the window is too small
}

// New creates a Revenge game. Call Reset before use.
func New() *Game {
	return &Game{mode: ModeRevenge}
}

// NewClassic creates a classic game. Call Reset before use.
func NewClassic() *Game {
	return &Game{mode: ModeClassic}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return "invaders_classic"
	}
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Invaders Classic"
	}
	return "Juan Claudio's Revenge"
}

// Reset loads the config and shows the title screen (Revenge) or starts
// the first formation right away (classic).
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		cfg = config.DefaultInvadersConfig()
	}
	if difficultyPreset != "" {
		config.ApplyInvadersPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tooSmall = false

	g.start()
	if g.mode == ModeRevenge {
		g.state = StateMenu
	}
}

// SetHighScore records the best stored score for display.
func (g *Game) SetHighScore(score int) {
	g.best = score
}

// start begins a new run at level 1.
func (g *Game) start() {
	g.score = 0
	g.level = 1
	g.tick = 0
	g.paused = false
	g.bossDefeated = false
	g.boss = nil
	g.clearField()

	if g.mode == ModeClassic {
		g.enemies = newClassicWave(g.cfg.Classic, g.cfg.Enemies.Width)
	} else {
		g.enemies = newWave(g.cfg.Enemies, g.level)
	}
	g.state = StatePlaying
}

// nextLevel advances past a cleared level. Every Nth level is a boss level.
func (g *Game) nextLevel() {
	g.level++
	g.bossDefeated = false
	g.clearField()

	if g.level%g.cfg.Boss.Every == 0 {
		g.enemies = nil
		g.boss = newBoss(g.cfg.Boss, g.level, g.cfg.Field.Width)
		g.state = StateBossIntro
		return
	}

	g.boss = nil
	g.enemies = newWave(g.cfg.Enemies, g.level)
	g.state = StatePlaying
}

// clearField recentres the ship and removes every shot and effect.
func (g *Game) clearField() {
	w := g.cfg.Player.Width
	g.ship = Ship{
		X: float64((g.cfg.Field.Width - w) / 2),
		Y: g.cfg.Field.Height - 2,
		W: w,
	}
	g.dir = 1
	g.bullets = nil
	g.enemyBullets = nil
	g.explosions = nil
}

func newBoss(cfg config.InvadersBoss, level, fieldW int) *Boss {
	hp := cfg.BaseHP + cfg.HPPerLevel*level
	return &Boss{
		X:        float64((fieldW - cfg.Width) / 2),
		Y:        cfg.Y,
		W:        cfg.Width,
		H:        cfg.Height,
		HP:       hp,
		MaxHP:    hp,
		Dir:      1,
		Speed:    cfg.Speed + float64(level)*cfg.SpeedPerLevel,
		Cooldown: cfg.FirstShot,
	}
}

// Step applies the frame's actions in order, then advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Actions {
		g.apply(a)
	}

	if g.tooSmall || g.paused {
		return core.StepResult{State: g.State()}
	}

	g.updateExplosions()
	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	if g.mode == ModeClassic {
		g.updateClassic()
	} else {
		g.updateRevenge()
	}

	return core.StepResult{State: g.State()}
}

// apply handles one action. Movement and fire only act while playing.
func (g *Game) apply(a core.Action) {
	switch a {
	case core.ActionConfirm:
		switch g.state {
		case StateMenu, StateGameOver:
			g.start()
		case StateLevelComplete:
			g.nextLevel()
		case StateBossIntro:
			g.state = StatePlaying
		}
		return
	case core.ActionRestart:
		g.start()
		return
	case core.ActionPause:
		if g.state == StatePlaying {
			g.paused = !g.paused
		}
		return
	}

	if g.paused || g.state != StatePlaying {
		return
	}

	switch a {
	case core.ActionLeft:
		g.moveShip(-1)
	case core.ActionRight:
		g.moveShip(1)
	case core.ActionPrimary, core.ActionUp:
		g.fire()
	}
}

func (g *Game) moveShip(dir float64) {
	maxX := float64(g.cfg.Field.Width - g.ship.W)
	g.ship.X = core.Clamp(g.ship.X+dir*g.cfg.Player.Step, 0, maxX)
}

// fire launches a shot from the ship. Revenge enforces the cooldown,
// classic fires freely.
func (g *Game) fire() {
	speed := g.cfg.Player.BulletSpeed
	if g.mode == ModeClassic {
		speed = g.cfg.Classic.BulletSpeed
	} else {
		if g.ship.Cooldown > 0 {
			return
		}
		g.ship.Cooldown = g.cfg.Player.FireCooldown
	}

	g.bullets = append(g.bullets, Bullet{
		X:     g.ship.CenterX(),
		Y:     float64(g.ship.Y - 1),
		Speed: speed,
	})
}

func (g *Game) updateRevenge() {
	if g.ship.Cooldown > 0 {
		g.ship.Cooldown--
	}

	g.moveBullets()
	if g.boss != nil {
		g.updateBoss()
	} else {
		speed := g.difficulty.Speed(g.cfg.Enemies.Speed+float64(g.level)*g.cfg.Enemies.SpeedPerLevel, g.score, g.tick)
		stepFormation(g.enemies, &g.dir, speed, g.cfg.Field.Width, true)
		if lowestRow(g.enemies) >= float64(g.ship.Y) {
			g.endRun()
			return
		}
		g.enemyFire()
	}
	g.moveEnemyBullets()

	g.resolvePlayerHits()
	if g.state != StatePlaying {
		return
	}
	if g.shipHit() {
		g.endRun()
		return
	}

	if g.boss == nil && aliveCount(g.enemies) == 0 {
		g.state = StateLevelComplete
	}
}

func (g *Game) updateClassic() {
	g.moveBullets()

	speed := g.difficulty.Speed(g.cfg.Classic.Speed, g.score, g.tick)
	stepFormation(g.enemies, &g.dir, speed, g.cfg.Field.Width, false)

	g.resolvePlayerHits()
	if aliveCount(g.enemies) == 0 {
		g.enemies = newClassicWave(g.cfg.Classic, g.cfg.Enemies.Width)
		g.dir = 1
	}
}

// enemyFire rolls once per living enemy.
func (g *Game) enemyFire() {
	base := g.cfg.Enemies.FireBase + float64(g.level)*g.cfg.Enemies.FirePerLevel
	chance := g.difficulty.FireChance(base, g.score, g.tick)
	speed := g.cfg.Enemies.BulletSpeed + float64(g.level)*g.cfg.Enemies.BulletSpeedPerLevel

	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Alive || g.rng.Float64() >= chance {
			continue
		}
		g.enemyBullets = append(g.enemyBullets, Bullet{
			X:     e.X + float64(e.W/2),
			Y:     e.Y + 1,
			Speed: speed,
		})
	}
}

// updateBoss bounces the boss between the walls and fires on its cooldown.
func (g *Game) updateBoss() {
	b := g.boss
	b.X += b.Dir * g.difficulty.Speed(b.Speed, g.score, g.tick)

	maxX := float64(g.cfg.Field.Width - b.W)
	if b.X <= 0 {
		b.X, b.Dir = 0, 1
	} else if b.X >= maxX {
		b.X, b.Dir = maxX, -1
	}

	b.Cooldown--
	if b.Cooldown <= 0 {
		g.enemyBullets = append(g.enemyBullets, Bullet{
			X:     b.X + float64(b.W/2),
			Y:     float64(b.Y + b.H),
			Speed: g.cfg.Boss.BulletSpeed,
			Boss:  true,
		})
		b.Cooldown = g.cfg.Boss.ShotCooldown
	}
}

// moveBullets advances player shots and drops those past the top.
func (g *Game) moveBullets() {
	kept := g.bullets[:0]
	for _, b := range g.bullets {
		b.Y -= b.Speed
		if b.Y > -1 {
			kept = append(kept, b)
		}
	}
	g.bullets = kept
}

// moveEnemyBullets advances enemy shots and drops those past the bottom.
func (g *Game) moveEnemyBullets() {
	h := float64(g.cfg.Field.Height)
	kept := g.enemyBullets[:0]
	for _, b := range g.enemyBullets {
		b.Y += b.Speed
		if b.Y < h {
			kept = append(kept, b)
		}
	}
	g.enemyBullets = kept
}

// resolvePlayerHits removes every shot that struck an enemy or the boss.
func (g *Game) resolvePlayerHits() {
	kept := g.bullets[:0]
	for _, b := range g.bullets {
		if g.hitEnemy(b) || g.hitBoss(b) {
			continue
		}
		kept = append(kept, b)
	}
	g.bullets = kept
}

func (g *Game) hitEnemy(b Bullet) bool {
	r := b.Rect()
	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Alive || !r.Intersects(e.Rect()) {
			continue
		}
		e.Alive = false
		if g.mode == ModeClassic {
			g.score += g.cfg.Classic.Points
		} else {
			g.score += g.cfg.Enemies.Points
		}
		cx, cy := e.Rect().Center()
		g.explode(cx, cy, false)
		return true
	}
	return false
}

func (g *Game) hitBoss(b Bullet) bool {
	if g.boss == nil || !b.Rect().Intersects(g.boss.Rect()) {
		return false
	}

	g.boss.HP--
	g.score += g.cfg.Boss.Points
	g.explode(int(b.X), int(b.Y), false)

	if g.boss.HP <= 0 {
		cx, cy := g.boss.Rect().Center()
		g.explode(cx, cy, true)
		g.boss = nil
		g.bossDefeated = true
		g.enemyBullets = nil
		g.state = StateLevelComplete
	}
	return true
}

// shipHit reports whether an enemy shot reached the ship.
func (g *Game) shipHit() bool {
	r := g.ship.Rect()
	for _, b := range g.enemyBullets {
		if b.Rect().Intersects(r) {
			return true
		}
	}
	return false
}

func (g *Game) endRun() {
	cx, cy := g.ship.Rect().Center()
	g.explode(cx, cy, true)
	g.state = StateGameOver
}

func (g *Game) explode(x, y int, big bool) {
	life := explosionLife
	if big {
		life = bigExplosionLife
	}
	g.explosions = append(g.explosions, Explosion{X: x, Y: y, Life: life, Big: big})
}

func (g *Game) updateExplosions() {
	kept := g.explosions[:0]
	for _, e := range g.explosions {
		e.Life--
		if e.Life > 0 {
			kept = append(kept, e)
		}
	}
	g.explosions = kept
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver,
		Paused:   g.paused,
	}
}

// Mode returns the variant.
func (g *Game) Mode() Mode {
	return g.mode
}
