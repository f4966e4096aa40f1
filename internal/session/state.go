package session

import (
	"ctchen222/Tic-Tac-Toe-CPU/internal/bot"
	"ctchen222/Tic-Tac-Toe-CPU/internal/game"
)

// State is where a session is in its turn cycle.
type State string

const (
	SelectingDifficulty  State = "selecting_difficulty"
	AwaitingHumanMove    State = "awaiting_human_move"
	AwaitingComputerMove State = "awaiting_computer_move"
	GameOver             State = "game_over"
)

// Snapshot is a copy of the session's observable state.
type Snapshot struct {
	ID          string
	State       State
	Difficulty  bot.Difficulty
	Board       game.Board
	CurrentTurn game.PlayerMark
	Outcome     game.Outcome
}
