package bot

import (
	"context"
	"ctchen222/Tic-Tac-Toe-CPU/internal/game"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "ctchen222/Tic-Tac-Toe-CPU/internal/bot"

// MoveCalculator picks the computer's moves and reports how long it thought.
type MoveCalculator struct {
	tracer    trace.Tracer
	thinkTime metric.Float64Histogram
	moves     metric.Int64Counter
}

// Option configures a MoveCalculator.
type Option func(*options)

type options struct {
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tracerProvider = tp }
}

// WithMeterProvider overrides the global meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) { o.meterProvider = mp }
}

// NewMoveCalculator creates a calculator instrumented with OpenTelemetry.
func NewMoveCalculator(opts ...Option) (*MoveCalculator, error) {
	o := options{
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	meter := o.meterProvider.Meter(instrumentationName)
	thinkTime, err := meter.Float64Histogram("bot.think.duration",
		metric.WithDescription("Time spent choosing a move"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create think time histogram: %w", err)
	}
	moves, err := meter.Int64Counter("bot.moves",
		metric.WithDescription("Number of moves played by the computer"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create move counter: %w", err)
	}

	return &MoveCalculator{
		tracer:    o.tracerProvider.Tracer(instrumentationName),
		thinkTime: thinkTime,
		moves:     moves,
	}, nil
}

// SelectMove calls the package-level strategy and records telemetry around it.
func (c *MoveCalculator) SelectMove(ctx context.Context, board game.Board, difficulty Difficulty) int {
	ctx, span := c.tracer.Start(ctx, "bot.SelectMove", trace.WithAttributes(
		attribute.String("game.difficulty", string(difficulty)),
		attribute.Int("board.empty_cells", len(board.EmptyCells())),
	))
	defer span.End()

	start := time.Now()
	index := CalculateNextMove(board, difficulty)
	elapsed := time.Since(start)

	attrs := metric.WithAttributes(attribute.String("game.difficulty", string(difficulty)))
	c.thinkTime.Record(ctx, float64(elapsed.Microseconds())/1000, attrs)
	c.moves.Add(ctx, 1, attrs)

	span.SetAttributes(attribute.Int("move.index", index))
	slog.DebugContext(ctx, "bot selected move", "game.difficulty", difficulty, "move.index", index, "elapsed", elapsed)
	return index
}
