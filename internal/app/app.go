//go:build ebiten

package app

import (
	"fmt"
	"log"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"

	"torsnake/internal/audio"
	"torsnake/internal/core"
	"torsnake/internal/render"
	"torsnake/internal/sim"
	"torsnake/internal/stats"
	"torsnake/internal/ui"
)

// Game bridges ebiten's frame callbacks and the engine's session loop. The
// loop runs on its own goroutine; Update feeds it input through a buffered
// command queue and Draw paints the most recent snapshot it rendered.
type Game struct {
	cfg     *Config
	state   *sim.State
	queue   *commandQueue
	prompt  *modalPrompt
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	grid    *core.ByteGrid
	sounds  *audio.System
	session *stats.Session

	snap  atomic.Pointer[sim.Snapshot]
	title atomic.Value // string
	fps   atomic.Int64

	done      chan struct{}
	final     sim.Snapshot
	lastTitle string

	// prevScore/prevAlive are touched only by Render on the loop goroutine.
	prevScore int
	prevAlive bool
}

// New builds the full session: engine state, loop, input queue, prompt,
// painter and stats, and starts the loop goroutine.
func New(cfg *Config) (*Game, error) {
	state, err := sim.NewState(cfg.SimConfig())
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:     cfg,
		state:   state,
		queue:   &commandQueue{},
		prompt:  newModalPrompt(),
		painter: render.NewGridPainter(cfg.Width, cfg.Height),
		hud:     ui.NewHUD(),
		overlay: ui.NewOverlay(),
		grid:    core.NewByteGrid(cfg.Width, cfg.Height),
		session: stats.NewSession(),
		done:    make(chan struct{}),
	}
	g.prevAlive = true

	if !cfg.Mute {
		sounds, err := audio.Init()
		if err != nil {
			log.Printf("audio init failed (continuing without sound): %v", err)
		}
		g.sounds = sounds
	}

	loop := sim.NewLoop(state, g.queue, g, stats.NewRecorder(g.prompt, g.session))
	go func() {
		g.final = loop.Run()
		g.prompt.shutdown()
		close(g.done)
	}()
	return g, nil
}

// Update pumps input into the engine and applies pending title changes.
func (g *Game) Update() error {
	select {
	case <-g.done:
		return ebiten.Termination
	default:
	}

	if active, _ := g.prompt.pending(); active {
		g.pumpPromptKeys()
	} else {
		g.queue.pumpKeys()
	}

	if t, ok := g.title.Load().(string); ok && t != g.lastTitle {
		ebiten.SetWindowTitle(t)
		g.lastTitle = t
	}
	return nil
}

// Draw paints the latest snapshot, the HUD, and the game-over overlay when
// the prompt is outstanding.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.snap.Load()
	if snap == nil {
		return
	}

	g.grid.Clear()
	for _, seg := range snap.Segments {
		g.grid.Set(seg.X, seg.Y, render.CellBody)
	}
	g.grid.Set(snap.Head.X, snap.Head.Y, render.CellHead)
	g.grid.Set(snap.Food.X, snap.Food.Y, render.CellFood)
	g.painter.Blit(screen, g.grid.Cells(), render.Palette, g.cfg.Scale)

	g.hud.Draw(screen, snap.Score, snap.Size, int(g.fps.Load()))

	if active, score := g.prompt.pending(); active {
		g.overlay.Draw(screen, score)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width * g.cfg.Scale, g.cfg.Height * g.cfg.Scale
}

// Render implements sim.Renderer: it publishes the snapshot for Draw and
// fires sound cues on score and liveness transitions.
func (g *Game) Render(snap sim.Snapshot) {
	if snap.Score > g.prevScore {
		g.sounds.Play(audio.KindEat)
	}
	if g.prevAlive && !snap.Alive {
		g.sounds.Play(audio.KindGameOver)
	}
	g.prevScore = snap.Score
	g.prevAlive = snap.Alive

	g.snap.Store(&snap)
}

// UpdateTitle implements sim.Renderer; the title itself is applied on the
// next Update since ebiten window calls belong on the main thread.
func (g *Game) UpdateTitle(score, fps int) {
	g.fps.Store(int64(fps))
	g.title.Store(fmt.Sprintf("torsnake | score %d | %d fps", score, fps))
}

// Final returns the last snapshot of the finished session. Valid once
// RunGame has returned.
func (g *Game) Final() sim.Snapshot { return g.final }

// Session exposes the round statistics collected so far.
func (g *Game) Session() *stats.Session { return g.session }

func (g *Game) pumpPromptKeys() {
	switch {
	case justPressedAny(ebiten.KeyY, ebiten.KeyEnter):
		g.prompt.respond(true)
	case justPressedAny(ebiten.KeyN, ebiten.KeyEscape):
		g.prompt.respond(false)
	}
}
