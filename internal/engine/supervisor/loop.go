package supervisor

import (
	"context"
	"sync"
	"time"

	"go.trai.ch/cloister/internal/core/domain"
	"go.trai.ch/cloister/internal/core/ports"
)

// State is the supervision loop's current phase.
type State int

const (
	// StateRunning means the game process is (believed to be) running.
	StateRunning State = iota
	// StateRestarting means the loop is waiting out the fixed delay before
	// the next launch.
	StateRestarting
)

// Starter launches one game attempt and blocks until the process exits.
type Starter interface {
	Start(ctx context.Context) error
}

// StarterFunc adapts a function to the Starter interface.
type StarterFunc func(ctx context.Context) error

// Start calls f.
func (f StarterFunc) Start(ctx context.Context) error {
	return f(ctx)
}

// Loop is the in-process restart-on-exit supervisor. It alternates between
// Running and Restarting forever: every exit, clean or not, is followed by
// the fixed delay and a relaunch. There is no terminal state, no backoff
// growth, and no retry cap; the only exit path is the context ending with
// the session.
type Loop struct {
	policy  domain.RestartPolicy
	starter Starter
	logger  ports.Logger

	mu       sync.Mutex
	state    State
	launches int
}

// NewLoop creates a supervision loop with the given policy.
func NewLoop(policy domain.RestartPolicy, starter Starter, logger ports.Logger) *Loop {
	if policy.Delay <= 0 {
		policy.Delay = domain.DefaultRestartDelay
	}
	return &Loop{
		policy:  policy,
		starter: starter,
		logger:  logger,
	}
}

// Run drives the loop until ctx is done and returns ctx's error. Launch
// failures are absorbed, not propagated: a kiosk must always come back.
func (l *Loop) Run(ctx context.Context) error {
	for {
		l.setState(StateRunning)
		l.mu.Lock()
		l.launches++
		l.mu.Unlock()

		if err := l.starter.Start(ctx); err != nil {
			l.logger.Error(err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		l.setState(StateRestarting)
		timer := time.NewTimer(l.policy.Delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// State returns the loop's current phase.
func (l *Loop) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Launches returns how many launch attempts have been made.
func (l *Loop) Launches() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.launches
}

func (l *Loop) setState(s State) {
	l.mu.Lock()
	l.state = s
	l.mu.Unlock()
}
