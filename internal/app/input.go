//go:build ebiten

package app

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"torsnake/internal/sim"
)

// commandQueue buffers input commands between the ebiten update callback and
// the session loop goroutine. It implements sim.Controller.
type commandQueue struct {
	mu   sync.Mutex
	cmds []sim.Command
}

func (q *commandQueue) push(c sim.Command) {
	q.mu.Lock()
	q.cmds = append(q.cmds, c)
	q.mu.Unlock()
}

// Poll drains and returns the commands buffered since the previous call.
func (q *commandQueue) Poll() []sim.Command {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.cmds
	q.cmds = nil
	return out
}

var keyBindings = []struct {
	key ebiten.Key
	cmd sim.Command
}{
	{ebiten.KeyArrowUp, sim.CmdUp},
	{ebiten.KeyW, sim.CmdUp},
	{ebiten.KeyArrowDown, sim.CmdDown},
	{ebiten.KeyS, sim.CmdDown},
	{ebiten.KeyArrowLeft, sim.CmdLeft},
	{ebiten.KeyA, sim.CmdLeft},
	{ebiten.KeyArrowRight, sim.CmdRight},
	{ebiten.KeyD, sim.CmdRight},
	{ebiten.KeyEscape, sim.CmdQuit},
	{ebiten.KeyQ, sim.CmdQuit},
}

// pumpKeys translates just-pressed keys into buffered commands.
func (q *commandQueue) pumpKeys() {
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			q.push(b.cmd)
		}
	}
}

func justPressedAny(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
