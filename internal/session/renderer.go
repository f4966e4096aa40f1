package session

//go:generate mockgen -source=renderer.go -destination=mocks/renderer.go -package=mocks

import (
	"context"
	"ctchen222/Tic-Tac-Toe-CPU/internal/bot"
	"ctchen222/Tic-Tac-Toe-CPU/internal/game"
)

// Renderer is the presentation side of a session. Every method is called with
// the session lock held, so implementations must not call back into the
// session.
type Renderer interface {
	// RenderState shows the whole board, e.g. after Start or Reset.
	RenderState(ctx context.Context, snapshot Snapshot)
	// RenderMove shows a committed move.
	RenderMove(ctx context.Context, index int, mark game.PlayerMark)
	// RenderTurn shows whose turn it is.
	RenderTurn(ctx context.Context, next game.PlayerMark)
	// RenderOutcome shows the final verdict.
	RenderOutcome(ctx context.Context, outcome game.Outcome)
}

// MoveSelector chooses the computer's move. bot.MoveCalculator implements it.
type MoveSelector interface {
	SelectMove(ctx context.Context, board game.Board, difficulty bot.Difficulty) int
}
