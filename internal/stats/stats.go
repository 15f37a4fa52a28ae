// Package stats collects per-round results for a play session and can
// persist them as JSON.
package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Round records the outcome of a single play-through.
type Round struct {
	Score    int     `json:"score"`
	PeakSize int     `json:"peak_size"`
	Seconds  float64 `json:"seconds"`
}

// Session aggregates the rounds played by one process run under a unique id.
type Session struct {
	UUID      string    `json:"uuid"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Rounds    []Round   `json:"rounds"`

	mu sync.Mutex
}

// Summary condenses a session into headline numbers.
type Summary struct {
	Rounds      int     `json:"rounds"`
	BestScore   int     `json:"best_score"`
	MeanScore   float64 `json:"mean_score"`
	MeanSeconds float64 `json:"mean_seconds"`
}

// NewSession starts a session record stamped with a fresh uuid.
func NewSession() *Session {
	return &Session{
		UUID:      uuid.New().String(),
		StartTime: time.Now(),
	}
}

// Record appends one round result. Safe for concurrent use.
func (s *Session) Record(r Round) {
	s.mu.Lock()
	s.Rounds = append(s.Rounds, r)
	s.mu.Unlock()
}

// RoundsSnapshot returns a copy of the rounds recorded so far.
func (s *Session) RoundsSnapshot() []Round {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Round(nil), s.Rounds...)
}

// Summary computes aggregate numbers over the recorded rounds.
func (s *Session) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := Summary{Rounds: len(s.Rounds)}
	if sum.Rounds == 0 {
		return sum
	}
	var scores, seconds float64
	for _, r := range s.Rounds {
		if r.Score > sum.BestScore {
			sum.BestScore = r.Score
		}
		scores += float64(r.Score)
		seconds += r.Seconds
	}
	sum.MeanScore = scores / float64(sum.Rounds)
	sum.MeanSeconds = seconds / float64(sum.Rounds)
	return sum
}

// WriteFile stamps the end time and writes the session as indented JSON.
func (s *Session) WriteFile(path string) error {
	s.mu.Lock()
	s.EndTime = time.Now()
	data, err := json.MarshalIndent(s, "", "  ")
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("stats: encode session: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("stats: write %s: %w", path, err)
	}
	return nil
}
