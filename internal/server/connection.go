package server

import (
	"context"
	"ctchen222/Tic-Tac-Toe-CPU/internal/game"
	"ctchen222/Tic-Tac-Toe-CPU/internal/player"
	"ctchen222/Tic-Tac-Toe-CPU/internal/session"
	"ctchen222/Tic-Tac-Toe-CPU/pkg/proto"
	"encoding/json"
	"log/slog"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// socketRenderer draws a session onto the player's websocket.
type socketRenderer struct {
	player *player.Player
}

func newSocketRenderer(p *player.Player) *socketRenderer {
	return &socketRenderer{player: p}
}

func (r *socketRenderer) RenderState(ctx context.Context, snap session.Snapshot) {
	r.send(ctx, &proto.ServerToClientMessage{
		Type:       proto.TypeState,
		SessionID:  snap.ID,
		State:      string(snap.State),
		Difficulty: string(snap.Difficulty),
		Board:      snap.Board[:],
		Next:       snap.CurrentTurn,
	})
}

func (r *socketRenderer) RenderMove(ctx context.Context, index int, mark game.PlayerMark) {
	r.send(ctx, &proto.ServerToClientMessage{Type: proto.TypeMoved, Index: &index, Mark: mark})
}

func (r *socketRenderer) RenderTurn(ctx context.Context, next game.PlayerMark) {
	r.send(ctx, &proto.ServerToClientMessage{Type: proto.TypeTurn, Next: next})
}

func (r *socketRenderer) RenderOutcome(ctx context.Context, outcome game.Outcome) {
	r.send(ctx, &proto.ServerToClientMessage{
		Type:   proto.TypeGameOver,
		Winner: outcome.Winner,
		Draw:   outcome.Status == game.Draw,
	})
}

func (r *socketRenderer) renderError(ctx context.Context, reason string) {
	r.send(ctx, &proto.ServerToClientMessage{Type: proto.TypeError, Reason: reason})
}

// send writes one message to the player.
func (r *socketRenderer) send(ctx context.Context, message *proto.ServerToClientMessage) {
	_, span := tracer.Start(ctx, "server.send", trace.WithAttributes(
		attribute.String("player.id", r.player.ID),
		attribute.String("message.type", message.Type),
	))
	defer span.End()

	data, err := json.Marshal(message)
	if err != nil {
		slog.ErrorContext(ctx, "error marshalling message", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Error marshalling message")
		return
	}

	if err := r.player.Write(websocket.TextMessage, data); err != nil {
		slog.WarnContext(ctx, "error writing message to player", "player.id", r.player.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Error writing message to player")
	}
}

// client ties one socket to one session.
type client struct {
	player   *player.Player
	session  *session.Session
	renderer *socketRenderer
}

// readPump feeds the player's messages to the session until the socket closes.
func (cl *client) readPump(ctx context.Context) {
	ctx, span := tracer.Start(ctx, "server.readPump", trace.WithAttributes(
		attribute.String("player.id", cl.player.ID),
		attribute.String("session.id", cl.session.ID()),
	))
	defer span.End()

	defer func() {
		cl.session.Close()
		if err := cl.player.Disconnect(); err != nil {
			slog.DebugContext(ctx, "error closing player connection", "player.id", cl.player.ID, "error", err)
		}
		slog.InfoContext(ctx, "player disconnected", "player.id", cl.player.ID, "session.id", cl.session.ID())
	}()

	for {
		_, msg, err := cl.player.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.WarnContext(ctx, "player connection error", "player.id", cl.player.ID, "error", err)
				span.RecordError(err)
				span.SetStatus(codes.Error, "Player connection error")
			}
			return
		}
		cl.handleMessage(ctx, msg)
	}
}
