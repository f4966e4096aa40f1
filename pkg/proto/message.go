package proto

import "ctchen222/Tic-Tac-Toe-CPU/internal/game"

// Client message types.
const (
	TypeStart = "start"
	TypeMove  = "move"
	TypeReset = "reset"
)

// Server message types.
const (
	TypeState    = "state"
	TypeMoved    = "move"
	TypeTurn     = "turn"
	TypeGameOver = "game_over"
	TypeError    = "error"
)

// ClientToServerMessage represents a message from the client to the server.
type ClientToServerMessage struct {
	Type       string `json:"type" validate:"required,oneof=start move reset"`
	Index      *int   `json:"index,omitempty" validate:"omitempty,min=0,max=8"`
	Difficulty string `json:"difficulty,omitempty" validate:"required_if=Type start,omitempty,difficulty"`
}

// ServerToClientMessage represents a message from the server to the client.
type ServerToClientMessage struct {
	Type       string            `json:"type" validate:"required"`
	SessionID  string            `json:"sessionId,omitempty"`
	Reason     string            `json:"reason,omitempty"`
	State      string            `json:"state,omitempty"`
	Difficulty string            `json:"difficulty,omitempty"`
	Board      []game.PlayerMark `json:"board,omitempty"`
	Index      *int              `json:"index,omitempty"`
	Mark       game.PlayerMark   `json:"mark,omitempty"`
	Next       game.PlayerMark   `json:"next,omitempty"`
	Winner     game.PlayerMark   `json:"winner,omitempty"`
	Draw       bool              `json:"draw,omitempty"`
}
