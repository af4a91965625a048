//go:build ebiten

package app

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/halninethousand/3d-cell-automata/internal/core"
	"github.com/halninethousand/3d-cell-automata/internal/lattice"
	"github.com/halninethousand/3d-cell-automata/internal/render"
	"github.com/halninethousand/3d-cell-automata/internal/rule"
)

// Game adapts the 3D automaton to the ebiten.Game interface, showing one z
// slice of the lattice at a time. Up/Down move through slices, Space pauses,
// N single-steps, R reseeds with the same seed, S reseeds from the clock.
type Game struct {
	grid   *lattice.Grid
	rule   rule.Rule
	colors lattice.Colors
	ticker *core.FixedStep

	cfg   Config
	seed  int64
	slice int
	steps int
	stats lattice.StepStats

	paused   bool
	tickOnce bool

	img *ebiten.Image
	buf []byte
}

// New constructs a seeded Game from the resolved configuration.
func New(cfg Config, r rule.Rule) (*Game, error) {
	g := &Game{
		rule:   r,
		colors: cfg.Colors(),
		ticker: core.NewFixedStep(cfg.TPS),
		cfg:    cfg,
		seed:   cfg.Seed,
	}
	if err := g.reseed(cfg.Seed); err != nil {
		return nil, err
	}
	g.slice = cfg.Size / 2
	g.img = ebiten.NewImage(cfg.Size, cfg.Size)
	g.buf = make([]byte, cfg.Size*cfg.Size*4)
	return g, nil
}

// reseed rebuilds the lattice and places a fresh center cluster.
func (g *Game) reseed(seed int64) error {
	grid, err := lattice.New(g.cfg.Size)
	if err != nil {
		return err
	}
	grid.SeedCluster(g.rule, core.NewRNG(seed), g.cfg.Radius, g.cfg.Amount)
	g.grid = grid
	g.seed = seed
	g.steps = 0
	g.stats = lattice.StepStats{}
	g.tickOnce = false
	return nil
}

// Update handles input and advances the simulation at the configured rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.reseed(g.seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.reseed(time.Now().UnixNano()); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.slice = (g.slice + 1) % g.cfg.Size
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.slice = (g.slice - 1 + g.cfg.Size) % g.cfg.Size
	}

	step := g.ticker.ShouldStep() && !g.paused
	if step || g.tickOnce {
		g.stats = g.grid.Step(g.rule)
		g.steps++
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current z slice with a status line.
func (g *Game) Draw(screen *ebiten.Image) {
	render.SliceRGBA(g.buf, g.grid, g.slice, g.colors, g.rule.MaxState())
	g.img.WritePixels(g.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.cfg.Scale), float64(g.cfg.Scale))
	screen.DrawImage(g.img, op)

	status := fmt.Sprintf("z=%d/%d step=%d live=%d (+%d -%d)",
		g.slice, g.cfg.Size-1, g.steps, g.grid.LiveCount(), g.stats.Spawns, g.stats.Deaths)
	if g.paused {
		status += " [paused]"
	}
	ebitenutil.DebugPrint(screen, status)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Size * g.cfg.Scale, g.cfg.Size * g.cfg.Scale
}
