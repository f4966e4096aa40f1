package session

import (
	"context"
	"ctchen222/Tic-Tac-Toe-CPU/internal/bot"
	"ctchen222/Tic-Tac-Toe-CPU/internal/game"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultThinkDelay is the pause between the human's move and the computer's.
const DefaultThinkDelay = 500 * time.Millisecond

var (
	ErrNotStarted  = errors.New("no game in progress, choose a difficulty first")
	ErrNotYourTurn = errors.New("not the human player's turn")
)

// Session is one human (X) against the computer (O). The human's moves come
// in through SubmitHumanMove; the computer answers after the think delay.
type Session struct {
	id         string
	mu         sync.Mutex
	game       *game.Game
	difficulty bot.Difficulty
	state      State
	generation uint64
	pending    *time.Timer
	thinkDelay time.Duration
	renderer   Renderer
	selector   MoveSelector
}

// Option configures a Session.
type Option func(*Session)

// WithThinkDelay sets the pause before the computer moves. Zero makes the
// computer answer within SubmitHumanMove.
func WithThinkDelay(d time.Duration) Option {
	return func(s *Session) { s.thinkDelay = d }
}

// WithID overrides the generated session id.
func WithID(id string) Option {
	return func(s *Session) { s.id = id }
}

// New creates a session waiting for a difficulty to be chosen.
func New(renderer Renderer, selector MoveSelector, opts ...Option) *Session {
	s := &Session{
		id:         uuid.NewString(),
		game:       game.NewGame(),
		state:      SelectingDifficulty,
		thinkDelay: DefaultThinkDelay,
		renderer:   renderer,
		selector:   selector,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) ID() string {
	return s.id
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// State returns where the session is in its turn cycle.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start begins a new game at the given difficulty. Any game in progress is
// abandoned.
func (s *Session) Start(ctx context.Context, difficulty bot.Difficulty) error {
	if !slices.Contains(bot.Difficulties, difficulty) {
		return fmt.Errorf("%w: %q", bot.ErrUnknownDifficulty, difficulty)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.restartLocked()
	s.difficulty = difficulty
	s.state = AwaitingHumanMove

	slog.InfoContext(ctx, "game started", "session.id", s.id, "game.difficulty", difficulty)
	s.renderer.RenderState(ctx, s.snapshotLocked())
	return nil
}

// Reset abandons the current game and waits for a new difficulty.
func (s *Session) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.restartLocked()
	s.difficulty = ""
	s.state = SelectingDifficulty

	slog.InfoContext(ctx, "session reset", "session.id", s.id)
	s.renderer.RenderState(ctx, s.snapshotLocked())
}

// Close cancels a pending computer move. The session must not be used after.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelPendingLocked()
	s.generation++
}

// SubmitHumanMove plays X at index. A rejected move leaves the session
// untouched.
func (s *Session) SubmitHumanMove(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case SelectingDifficulty:
		return ErrNotStarted
	case AwaitingComputerMove:
		return ErrNotYourTurn
	case GameOver:
		return game.ErrGameOver
	}

	if err := s.game.Move(index); err != nil {
		return fmt.Errorf("move %d rejected: %w", index, err)
	}
	s.renderer.RenderMove(ctx, index, game.PlayerX)

	if s.finishIfOverLocked(ctx) {
		return nil
	}

	s.state = AwaitingComputerMove
	s.renderer.RenderTurn(ctx, s.game.CurrentTurn)
	s.scheduleComputerMoveLocked(ctx)
	return nil
}

func (s *Session) scheduleComputerMoveLocked(ctx context.Context) {
	generation := s.generation
	if s.thinkDelay <= 0 {
		s.computerMoveLocked(ctx, generation)
		return
	}

	ctx = context.WithoutCancel(ctx)
	s.pending = time.AfterFunc(s.thinkDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.computerMoveLocked(ctx, generation)
	})
}

func (s *Session) computerMoveLocked(ctx context.Context, generation uint64) {
	if generation != s.generation || s.state != AwaitingComputerMove {
		slog.DebugContext(ctx, "dropping stale computer move", "session.id", s.id)
		return
	}
	s.pending = nil

	index := s.selector.SelectMove(ctx, s.game.Board, s.difficulty)
	if err := s.game.Move(index); err != nil {
		panic(fmt.Sprintf("session: computer chose illegal cell %d: %v", index, err))
	}
	s.renderer.RenderMove(ctx, index, game.PlayerO)

	if s.finishIfOverLocked(ctx) {
		return
	}

	s.state = AwaitingHumanMove
	s.renderer.RenderTurn(ctx, s.game.CurrentTurn)
}

func (s *Session) finishIfOverLocked(ctx context.Context) bool {
	if !s.game.IsOver() {
		return false
	}
	s.state = GameOver
	slog.InfoContext(ctx, "game over", "session.id", s.id,
		"game.status", s.game.Outcome.Status, "game.winner", s.game.Outcome.Winner)
	s.renderer.RenderOutcome(ctx, s.game.Outcome)
	return true
}

// restartLocked drops the current game and invalidates any scheduled move.
func (s *Session) restartLocked() {
	s.cancelPendingLocked()
	s.generation++
	s.game = game.NewGame()
}

func (s *Session) cancelPendingLocked() {
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		ID:          s.id,
		State:       s.state,
		Difficulty:  s.difficulty,
		Board:       s.game.Board,
		CurrentTurn: s.game.CurrentTurn,
		Outcome:     s.game.Outcome,
	}
}
