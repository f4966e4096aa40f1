package game

import (
	"errors"
)

var ErrGameOver = errors.New("game already finished")

// Game is a single match. X always moves first.
type Game struct {
	Board       Board
	CurrentTurn PlayerMark
	Outcome     Outcome
}

func NewGame() *Game {
	return &Game{
		CurrentTurn: PlayerX,
		Outcome:     Outcome{Status: InProgress},
	}
}

// Move places the current player's mark at index and passes the turn.
func (g *Game) Move(index int) error {
	if g.Outcome.IsTerminal() {
		return ErrGameOver
	}
	if err := g.Board.Place(index, g.CurrentTurn); err != nil {
		return err
	}

	g.Outcome = Evaluate(g.Board)
	if !g.Outcome.IsTerminal() {
		g.CurrentTurn = Opponent(g.CurrentTurn)
	}
	return nil
}

// IsOver reports whether the last move ended the game.
func (g *Game) IsOver() bool {
	return g.Outcome.IsTerminal()
}
