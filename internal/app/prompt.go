//go:build ebiten

package app

import (
	"errors"
	"sync"
)

var errPromptCancelled = errors.New("app: prompt cancelled by shutdown")

// modalPrompt implements sim.Prompt on top of the in-window overlay. Ask
// blocks the game-over worker until the update callback feeds an answer (or
// shutdown cancels the wait); the simulation lock is never held here.
type modalPrompt struct {
	cancel chan struct{}

	mu     sync.Mutex
	active bool
	score  int
	answer chan bool
}

func newModalPrompt() *modalPrompt {
	return &modalPrompt{cancel: make(chan struct{})}
}

// Ask blocks until the player answers Y or N.
func (p *modalPrompt) Ask(score int) (bool, error) {
	answer := make(chan bool, 1)
	p.mu.Lock()
	p.active = true
	p.score = score
	p.answer = answer
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.active = false
		p.mu.Unlock()
	}()

	select {
	case a := <-answer:
		return a, nil
	case <-p.cancel:
		return false, errPromptCancelled
	}
}

// pending reports whether the prompt is awaiting an answer, and for what
// score.
func (p *modalPrompt) pending() (bool, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active, p.score
}

// respond delivers the player's answer, if one is awaited.
func (p *modalPrompt) respond(again bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.active {
		return
	}
	select {
	case p.answer <- again:
	default:
	}
}

// shutdown cancels any outstanding and future Ask calls.
func (p *modalPrompt) shutdown() {
	select {
	case <-p.cancel:
	default:
		close(p.cancel)
	}
}
