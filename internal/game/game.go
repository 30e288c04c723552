// Package game implements the dodge-or-die simulation: a player avoids
// monsters streaming in from the field edges and collects apples for
// temporary armor. The package is synchronous and has no platform
// bindings; callers drive it through Game.Start and Game.Tick.
package game

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Phase is the session state machine position.
type Phase int

const (
	PhaseIdle    Phase = iota // Start screen, nothing played yet
	PhaseRunning              // Ticking
	PhaseOver                 // Game over screen, waiting for a restart
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Options configures a Game. Zero values select sensible defaults.
type Options struct {
	Width, Height float64
	Rand          *rand.Rand
	Presenter     Presenter
	Store         ScoreStore
	Logger        *log.Logger
}

// Game owns one session and drives it through Idle, Running and Over.
type Game struct {
	session   *Session
	phase     Phase
	best      int
	rng       *rand.Rand
	presenter Presenter
	store     ScoreStore
	logger    *log.Logger
}

// New creates a game in the Idle phase and shows the start screen.
func New(opts Options) *Game {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = CanvasWidth, CanvasHeight
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Presenter == nil {
		opts.Presenter = NopPresenter{}
	}
	if opts.Store == nil {
		opts.Store = &MemoryStore{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	g := &Game{
		session:   NewSession(opts.Width, opts.Height),
		phase:     PhaseIdle,
		best:      max(0, opts.Store.BestScore()),
		rng:       opts.Rand,
		presenter: opts.Presenter,
		store:     opts.Store,
		logger:    opts.Logger,
	}
	g.presenter.ShowStart(g.best)
	return g
}

// Start resets the session and begins ticking. It is used both for the
// first game and for restarts.
func (g *Game) Start() {
	g.session.Reset()
	g.phase = PhaseRunning

	g.presenter.ShowScore(0)
	g.presenter.ShowTimer(0)
	g.presenter.ShowArmor(false, 0)
	g.presenter.HideOverlays()
	g.presenter.Cue(CueMusicStart)

	g.logger.Debug("game started", "best", g.best)
}

// Tick advances a running game by one frame. Outside the Running phase it does nothing.
func (g *Game) Tick(c Controls) StepResult {
	if g.phase != PhaseRunning {
		return StepResult{}
	}

	res := Step(g.session, c, g.rng)

	for i := 0; i < res.ApplesEaten; i++ {
		g.presenter.Cue(CueApplePickup)
		g.presenter.Cue(CueArmorGained)
	}

	switch {
	case g.session.Player.Armor:
		g.presenter.ShowArmor(true, g.session.ArmorTime)
	case res.ArmorExpired:
		g.presenter.ShowArmor(false, 0)
	}

	if res.GameOver {
		g.finish()
		return res
	}

	if res.SecondPassed {
		g.presenter.ShowTimer(g.session.Elapsed)
		g.presenter.ShowScore(g.session.Score)
	}
	return res
}

// finish enters the Over phase and records a new best score.
func (g *Game) finish() {
	g.phase = PhaseOver
	g.presenter.Cue(CueMusicStop)
	g.presenter.Cue(CueGameOver)

	score := g.session.Score
	if score > g.best {
		g.best = score
		if err := g.store.SaveBestScore(score); err != nil {
			g.logger.Warn("failed to save best score", "score", score, "err", err)
		}
	}

	g.logger.Info("game over", "score", score, "best", g.best, "seconds", g.session.Elapsed)
	g.presenter.ShowGameOver(score, g.best)
}

// Phase returns the current state machine phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Session returns the live session. Callers must treat it as read-only.
func (g *Game) Session() *Session {
	return g.session
}

// BestScore returns the best score known to this game.
func (g *Game) BestScore() int {
	return g.best
}

// MemoryStore is a ScoreStore that keeps the best score in memory only.
type MemoryStore struct {
	Best int
}

// BestScore implements ScoreStore.
func (m *MemoryStore) BestScore() int {
	return max(0, m.Best)
}

// SaveBestScore implements ScoreStore.
func (m *MemoryStore) SaveBestScore(score int) error {
	m.Best = score
	return nil
}
