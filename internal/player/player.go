package player

import (
	"ctchen222/Tic-Tac-Toe-CPU/internal/game"
	"errors"
	"sync"
)

// Connection is an interface that abstracts the websocket connection.
type Connection interface {
	WriteMessage(messageType int, data []byte) error
	ReadMessage() (int, []byte, error)
	Close() error
}

// Status of the player's connection.
type Status string

const (
	StatusConnected    Status = "connected"
	StatusDisconnected Status = "disconnected"
)

// Player is the human at the other end of a socket. The human always plays X.
type Player struct {
	ID   string
	Mark game.PlayerMark
	Conn Connection

	mu     sync.Mutex
	status Status
}

// NewPlayer creates a connected human player.
func NewPlayer(id string, conn Connection) *Player {
	return &Player{
		ID:     id,
		Mark:   game.PlayerX,
		Conn:   conn,
		status: StatusConnected,
	}
}

var ErrDisconnected = errors.New("player disconnected")

// Write sends one frame. Gorilla connections allow a single concurrent
// writer, and both the read loop and the computer's timer write here.
func (p *Player) Write(messageType int, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.status != StatusConnected {
		return ErrDisconnected
	}
	return p.Conn.WriteMessage(messageType, data)
}

func (p *Player) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// Disconnect marks the player gone and closes the connection.
func (p *Player) Disconnect() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.status == StatusDisconnected {
		return nil
	}
	p.status = StatusDisconnected
	return p.Conn.Close()
}
