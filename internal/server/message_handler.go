package server

import (
	"context"
	"ctchen222/Tic-Tac-Toe-CPU/internal/bot"
	"ctchen222/Tic-Tac-Toe-CPU/internal/validator"
	"ctchen222/Tic-Tac-Toe-CPU/pkg/proto"
	"encoding/json"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// handleMessage handles a message from the player. It acts as a dispatcher.
// Anything malformed or illegal is answered with an error and otherwise
// ignored.
func (cl *client) handleMessage(ctx context.Context, rawMessage []byte) {
	ctx, span := tracer.Start(ctx, "server.handleMessage", trace.WithAttributes(
		attribute.String("player.id", cl.player.ID),
		attribute.String("session.id", cl.session.ID()),
	))
	defer span.End()

	var message proto.ClientToServerMessage
	if err := json.Unmarshal(rawMessage, &message); err != nil {
		slog.WarnContext(ctx, "error unmarshalling message", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Error unmarshalling message")
		cl.renderer.renderError(ctx, "malformed message")
		return
	}

	if err := validator.GetValidator().Struct(message); err != nil {
		slog.WarnContext(ctx, "invalid message from player", "player.id", cl.player.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid message format")
		cl.renderer.renderError(ctx, "invalid message")
		return
	}

	span.SetAttributes(attribute.String("message.type", message.Type))

	switch message.Type {
	case proto.TypeStart:
		cl.handleStart(ctx, &message)
	case proto.TypeMove:
		cl.handleMove(ctx, &message)
	case proto.TypeReset:
		cl.session.Reset(ctx)
	}
}

func (cl *client) handleStart(ctx context.Context, message *proto.ClientToServerMessage) {
	difficulty, err := bot.ParseDifficulty(message.Difficulty)
	if err == nil {
		err = cl.session.Start(ctx, difficulty)
	}
	if err != nil {
		slog.WarnContext(ctx, "cannot start game", "session.id", cl.session.ID(), "error", err)
		cl.renderer.renderError(ctx, err.Error())
	}
}

// handleMove processes the human's move.
func (cl *client) handleMove(ctx context.Context, message *proto.ClientToServerMessage) {
	if message.Index == nil {
		cl.renderer.renderError(ctx, "move requires an index")
		return
	}

	ctx, moveSpan := tracer.Start(ctx, "server.handleMove", trace.WithAttributes(
		attribute.String("session.id", cl.session.ID()),
		attribute.Int("move.index", *message.Index),
	))
	defer moveSpan.End()

	if err := cl.session.SubmitHumanMove(ctx, *message.Index); err != nil {
		slog.InfoContext(ctx, "move rejected", "session.id", cl.session.ID(), "move.index", *message.Index, "error", err)
		moveSpan.SetAttributes(attribute.Bool("move.valid", false))
		moveSpan.RecordError(err)
		moveSpan.SetStatus(codes.Error, "Invalid move")
		cl.renderer.renderError(ctx, err.Error())
		return
	}
	moveSpan.SetAttributes(attribute.Bool("move.valid", true))
}
