package session_test

import (
	"context"
	"ctchen222/Tic-Tac-Toe-CPU/internal/bot"
	"ctchen222/Tic-Tac-Toe-CPU/internal/game"
	"ctchen222/Tic-Tac-Toe-CPU/internal/session"
	"ctchen222/Tic-Tac-Toe-CPU/internal/session/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	x = game.PlayerX
	o = game.PlayerO
	e = game.None
)

// firstEmpty is a selector stand-in that always takes the lowest free cell.
func firstEmpty(_ context.Context, board game.Board, _ bot.Difficulty) int {
	return board.EmptyCells()[0]
}

func quietRenderer(ctrl *gomock.Controller) *mocks.MockRenderer {
	r := mocks.NewMockRenderer(ctrl)
	r.EXPECT().RenderState(gomock.Any(), gomock.Any()).AnyTimes()
	r.EXPECT().RenderMove(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	r.EXPECT().RenderTurn(gomock.Any(), gomock.Any()).AnyTimes()
	r.EXPECT().RenderOutcome(gomock.Any(), gomock.Any()).AnyTimes()
	return r
}

func TestSession_HumanWinEndsGameWithoutComputerReply(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockRenderer(ctrl)
	sel := mocks.NewMockMoveSelector(ctrl)
	ctx := context.Background()

	s := session.New(r, sel, session.WithThinkDelay(0), session.WithID("test-session"))

	gomock.InOrder(
		r.EXPECT().RenderState(gomock.Any(), gomock.Any()).Do(func(_ context.Context, snap session.Snapshot) {
			assert.Equal(t, "test-session", snap.ID)
			assert.Equal(t, session.AwaitingHumanMove, snap.State)
			assert.Equal(t, bot.Normal, snap.Difficulty)
			assert.Equal(t, game.Board{}, snap.Board)
			assert.Equal(t, x, snap.CurrentTurn)
		}),
		r.EXPECT().RenderMove(gomock.Any(), 0, x),
		r.EXPECT().RenderTurn(gomock.Any(), o),
		sel.EXPECT().SelectMove(gomock.Any(), game.Board{x, e, e, e, e, e, e, e, e}, bot.Normal).Return(3),
		r.EXPECT().RenderMove(gomock.Any(), 3, o),
		r.EXPECT().RenderTurn(gomock.Any(), x),
		r.EXPECT().RenderMove(gomock.Any(), 1, x),
		r.EXPECT().RenderTurn(gomock.Any(), o),
		sel.EXPECT().SelectMove(gomock.Any(), gomock.Any(), bot.Normal).Return(4),
		r.EXPECT().RenderMove(gomock.Any(), 4, o),
		r.EXPECT().RenderTurn(gomock.Any(), x),
		r.EXPECT().RenderMove(gomock.Any(), 2, x),
		r.EXPECT().RenderOutcome(gomock.Any(), game.Outcome{Status: game.Win, Winner: x}),
	)

	require.NoError(t, s.Start(ctx, bot.Normal))
	for _, index := range []int{0, 1, 2} {
		require.NoError(t, s.SubmitHumanMove(ctx, index))
	}

	snap := s.Snapshot()
	assert.Equal(t, session.GameOver, snap.State)
	assert.Equal(t, game.Board{x, x, x, o, o, e, e, e, e}, snap.Board)
	assert.ErrorIs(t, s.SubmitHumanMove(ctx, 5), game.ErrGameOver)
}

func TestSession_RejectedMovesAreNoOps(t *testing.T) {
	ctrl := gomock.NewController(t)
	sel := mocks.NewMockMoveSelector(ctrl)
	sel.EXPECT().SelectMove(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(firstEmpty).AnyTimes()
	ctx := context.Background()

	s := session.New(quietRenderer(ctrl), sel, session.WithThinkDelay(0))
	assert.ErrorIs(t, s.SubmitHumanMove(ctx, 4), session.ErrNotStarted)
	assert.Equal(t, session.SelectingDifficulty, s.State())

	require.NoError(t, s.Start(ctx, bot.Easy))
	assert.ErrorIs(t, s.SubmitHumanMove(ctx, 9), game.ErrInvalidIndex)
	assert.ErrorIs(t, s.SubmitHumanMove(ctx, -1), game.ErrInvalidIndex)
	assert.Equal(t, game.Board{}, s.Snapshot().Board)

	require.NoError(t, s.SubmitHumanMove(ctx, 4))
	before := s.Snapshot()
	assert.Equal(t, game.Board{o, e, e, e, x, e, e, e, e}, before.Board)

	assert.ErrorIs(t, s.SubmitHumanMove(ctx, 0), game.ErrCellOccupied)
	assert.ErrorIs(t, s.SubmitHumanMove(ctx, 4), game.ErrCellOccupied)
	assert.Equal(t, before, s.Snapshot())
}

func TestSession_StartRejectsUnknownDifficulty(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := session.New(mocks.NewMockRenderer(ctrl), mocks.NewMockMoveSelector(ctrl))

	err := s.Start(context.Background(), bot.Difficulty("nightmare"))
	assert.ErrorIs(t, err, bot.ErrUnknownDifficulty)
	assert.Equal(t, session.SelectingDifficulty, s.State())
}

func TestSession_ComputerMovesAfterThinkDelay(t *testing.T) {
	ctrl := gomock.NewController(t)
	sel := mocks.NewMockMoveSelector(ctrl)
	sel.EXPECT().SelectMove(gomock.Any(), gomock.Any(), bot.Hard).DoAndReturn(firstEmpty).Times(1)
	ctx := context.Background()

	s := session.New(quietRenderer(ctrl), sel, session.WithThinkDelay(50*time.Millisecond))
	t.Cleanup(s.Close)

	require.NoError(t, s.Start(ctx, bot.Hard))
	require.NoError(t, s.SubmitHumanMove(ctx, 4))
	assert.Equal(t, session.AwaitingComputerMove, s.State())
	assert.ErrorIs(t, s.SubmitHumanMove(ctx, 0), session.ErrNotYourTurn)

	assert.Eventually(t, func() bool {
		return s.State() == session.AwaitingHumanMove
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, o, s.Snapshot().Board[0])
	assert.Equal(t, x, s.Snapshot().CurrentTurn)
}

func TestSession_ResetCancelsPendingComputerMove(t *testing.T) {
	ctrl := gomock.NewController(t)
	sel := mocks.NewMockMoveSelector(ctrl)
	sel.EXPECT().SelectMove(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	ctx := context.Background()

	s := session.New(quietRenderer(ctrl), sel, session.WithThinkDelay(30*time.Millisecond))

	require.NoError(t, s.Start(ctx, bot.Normal))
	require.NoError(t, s.SubmitHumanMove(ctx, 4))
	s.Reset(ctx)

	time.Sleep(100 * time.Millisecond)
	snap := s.Snapshot()
	assert.Equal(t, session.SelectingDifficulty, snap.State)
	assert.Equal(t, game.Board{}, snap.Board)
	assert.Empty(t, snap.Difficulty)
}

func TestSession_RestartDropsPendingComputerMove(t *testing.T) {
	ctrl := gomock.NewController(t)
	sel := mocks.NewMockMoveSelector(ctrl)
	sel.EXPECT().SelectMove(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	ctx := context.Background()

	s := session.New(quietRenderer(ctrl), sel, session.WithThinkDelay(30*time.Millisecond))

	require.NoError(t, s.Start(ctx, bot.Normal))
	require.NoError(t, s.SubmitHumanMove(ctx, 4))
	require.NoError(t, s.Start(ctx, bot.Easy))

	time.Sleep(100 * time.Millisecond)
	snap := s.Snapshot()
	assert.Equal(t, session.AwaitingHumanMove, snap.State)
	assert.Equal(t, bot.Easy, snap.Difficulty)
	assert.Equal(t, game.Board{}, snap.Board)
}

func TestSession_CloseDropsPendingComputerMove(t *testing.T) {
	ctrl := gomock.NewController(t)
	sel := mocks.NewMockMoveSelector(ctrl)
	sel.EXPECT().SelectMove(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	ctx := context.Background()

	s := session.New(quietRenderer(ctrl), sel, session.WithThinkDelay(30*time.Millisecond))
	require.NoError(t, s.Start(ctx, bot.Hard))
	require.NoError(t, s.SubmitHumanMove(ctx, 0))
	s.Close()

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, session.AwaitingComputerMove, s.State())
}

func TestSession_HardComputerNeverLoses(t *testing.T) {
	ctrl := gomock.NewController(t)
	calc, err := bot.NewMoveCalculator()
	require.NoError(t, err)
	ctx := context.Background()

	s := session.New(quietRenderer(ctrl), calc, session.WithThinkDelay(0))
	require.NoError(t, s.Start(ctx, bot.Hard))

	for s.State() == session.AwaitingHumanMove {
		board := s.Snapshot().Board
		require.NoError(t, s.SubmitHumanMove(ctx, board.EmptyCells()[0]))
	}

	snap := s.Snapshot()
	assert.Equal(t, session.GameOver, snap.State)
	assert.True(t, snap.Outcome.IsTerminal())
	assert.NotEqual(t, x, snap.Outcome.Winner, "final board:\n%s", snap.Board)
}
