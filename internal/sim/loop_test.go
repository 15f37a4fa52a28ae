package sim

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type nullRenderer struct{}

func (nullRenderer) Render(Snapshot)      {}
func (nullRenderer) UpdateTitle(int, int) {}

// scriptController replays a fixed command sequence, one batch per frame.
type scriptController struct {
	mu      sync.Mutex
	batches [][]Command
}

func (c *scriptController) Poll() []Command {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.batches) == 0 {
		return nil
	}
	b := c.batches[0]
	c.batches = c.batches[1:]
	return b
}

// blockingPrompt counts Ask calls and blocks until an answer is scripted.
type blockingPrompt struct {
	calls   atomic.Int32
	answers chan bool
}

func (p *blockingPrompt) Ask(int) (bool, error) {
	p.calls.Add(1)
	return <-p.answers, nil
}

type failingPrompt struct{}

func (failingPrompt) Ask(int) (bool, error) {
	return true, errors.New("prompt surface unavailable")
}

func testLoopConfig() Config {
	cfg := DefaultConfig()
	cfg.WakeInterval = 5 * time.Millisecond
	cfg.FrameRate = 200
	return cfg
}

func kill(s *State) {
	s.mu.Lock()
	s.body.Alive = false
	s.mu.Unlock()
	s.notify()
}

func runLoopAsync(l *Loop) <-chan Snapshot {
	out := make(chan Snapshot, 1)
	go func() { out <- l.Run() }()
	return out
}

func waitSnapshot(t *testing.T, s *State, pred func(Snapshot) bool, what string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if pred(s.Snapshot()) {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestDeathSpawnsExactlyOneGameOverWorker(t *testing.T) {
	s := newTestState(t, testLoopConfig())
	prompt := &blockingPrompt{answers: make(chan bool)}
	loop := NewLoop(s, &scriptController{}, nullRenderer{}, prompt)
	done := runLoopAsync(loop)

	time.Sleep(20 * time.Millisecond)
	kill(s)

	// Many frames pass with liveness false while the prompt blocks; only
	// one worker may exist.
	time.Sleep(100 * time.Millisecond)
	if got := prompt.calls.Load(); got != 1 {
		t.Fatalf("prompt invoked %d times for one death, want 1", got)
	}

	prompt.answers <- false
	select {
	case final := <-done:
		if final.Running {
			t.Fatal("loop exited with running still true")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not exit after a negative prompt answer")
	}
}

func TestAffirmativeAnswerResetsTheRound(t *testing.T) {
	s := newTestState(t, testLoopConfig())
	prompt := &blockingPrompt{answers: make(chan bool, 1)}
	loop := NewLoop(s, &scriptController{}, nullRenderer{}, prompt)
	done := runLoopAsync(loop)

	time.Sleep(20 * time.Millisecond)
	kill(s)
	prompt.answers <- true

	waitSnapshot(t, s, func(snap Snapshot) bool {
		return snap.Alive && snap.Score == 0 && snap.Size == 1
	}, "round reset after affirmative answer")

	// The fresh round has a live update worker: the body keeps moving.
	before := s.Snapshot()
	waitSnapshot(t, s, func(snap Snapshot) bool {
		return snap.HeadX != before.HeadX || snap.HeadY != before.HeadY
	}, "movement after reset")

	kill(s)
	prompt.answers <- false
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not exit after the second death")
	}
	if got := prompt.calls.Load(); got != 2 {
		t.Fatalf("prompt invoked %d times across two deaths, want 2", got)
	}
}

func TestQuitCommandStopsTheLoop(t *testing.T) {
	s := newTestState(t, testLoopConfig())
	ctrl := &scriptController{batches: [][]Command{{CmdQuit}}}
	loop := NewLoop(s, ctrl, nullRenderer{}, &blockingPrompt{answers: make(chan bool)})

	select {
	case final := <-runLoopAsync(loop):
		if final.Running {
			t.Fatal("running still true after quit command")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("quit command did not stop the loop")
	}
	if err := s.Err(); err != nil {
		t.Fatalf("unexpected terminal error: %v", err)
	}
}

func TestPromptFailureTerminatesGracefully(t *testing.T) {
	s := newTestState(t, testLoopConfig())
	loop := NewLoop(s, &scriptController{}, nullRenderer{}, failingPrompt{})
	done := runLoopAsync(loop)

	time.Sleep(20 * time.Millisecond)
	kill(s)

	select {
	case final := <-done:
		if final.Running {
			t.Fatal("prompt failure must shut the session down")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not exit after prompt failure")
	}
}

func TestDirectionCommandsReachTheBody(t *testing.T) {
	s := newTestState(t, testLoopConfig())
	s.Apply(CmdRight)
	if got := s.Snapshot().Direction; got.String() != "right" {
		t.Fatalf("direction after CmdRight = %v", got)
	}
	// Reversal is filtered for a grown body.
	s.mu.Lock()
	s.body.Size = 2
	s.mu.Unlock()
	s.Apply(CmdLeft)
	if got := s.Snapshot().Direction; got.String() != "right" {
		t.Fatalf("reversal applied for size 2 body, direction = %v", got)
	}
}
