package server

import (
	"ctchen222/Tic-Tac-Toe-CPU/internal/api/controller"
	"ctchen222/Tic-Tac-Toe-CPU/internal/api/response"
	"ctchen222/Tic-Tac-Toe-CPU/internal/bot"
	"ctchen222/Tic-Tac-Toe-CPU/internal/player"
	"ctchen222/Tic-Tac-Toe-CPU/internal/session"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("server")

type Server struct {
	engine         *gin.Engine
	upgrader       websocket.Upgrader
	selector       session.MoveSelector
	gameController *controller.GameController
	thinkDelay     time.Duration
}

func NewServer(selector session.MoveSelector, gameController *controller.GameController, thinkDelay time.Duration) *Server {
	s := &Server{
		selector:       selector,
		gameController: gameController,
		thinkDelay:     thinkDelay,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
	s.engine = gin.New()
	s.engine.Use(gin.Recovery())
	s.RegisterHandlers()
	return s
}

// Engine returns the gin engine to mount on an http.Server.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) RegisterHandlers() {
	s.engine.GET("/healthz", s.gameController.Health)

	api := s.engine.Group("/api")
	api.GET("/difficulties", s.gameController.Difficulties)

	s.engine.GET("/ws", s.handleWebSocket)
}

// handleWebSocket upgrades the connection and gives it a session of its own.
// The handler blocks for as long as the socket stays open.
func (s *Server) handleWebSocket(c *gin.Context) {
	r := c.Request
	ctx, span := tracer.Start(r.Context(), "server.handleWebSocket", trace.WithAttributes(
		attribute.String("http.url", r.URL.String()),
		attribute.String("http.method", r.Method),
	))

	var difficulty bot.Difficulty
	if raw := c.Query("difficulty"); raw != "" {
		d, err := bot.ParseDifficulty(raw)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Invalid difficulty")
			span.End()
			response.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		difficulty = d
	}

	conn, err := s.upgrader.Upgrade(c.Writer, r, nil)
	if err != nil {
		slog.WarnContext(ctx, "failed to upgrade connection", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to upgrade connection")
		span.End()
		return
	}

	// Get playerID from URL, or generate a new one.
	playerID := c.Query("playerId")
	if playerID == "" {
		playerID = uuid.New().String()
	}

	p := player.NewPlayer(playerID, conn)
	renderer := newSocketRenderer(p)
	sess := session.New(renderer, s.selector, session.WithThinkDelay(s.thinkDelay))
	span.SetAttributes(
		attribute.String("player.id", playerID),
		attribute.String("session.id", sess.ID()),
		attribute.String("game.difficulty", string(difficulty)),
	)
	slog.InfoContext(ctx, "player connected", "player.id", playerID, "session.id", sess.ID())

	if difficulty != "" {
		if err := sess.Start(ctx, difficulty); err != nil {
			slog.ErrorContext(ctx, "failed to start session", "session.id", sess.ID(), "error", err)
		}
	} else {
		renderer.RenderState(ctx, sess.Snapshot())
	}
	span.End()

	cl := &client{player: p, session: sess, renderer: renderer}
	cl.readPump(ctx)
}
