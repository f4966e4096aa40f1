package bot

import (
	"ctchen222/Tic-Tac-Toe-CPU/internal/game"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = game.PlayerX
	o = game.PlayerO
	e = game.None
)

func TestParseDifficulty(t *testing.T) {
	for _, in := range []string{"easy", "Normal", " HARD "} {
		d, err := ParseDifficulty(in)
		require.NoError(t, err, in)
		assert.Contains(t, Difficulties, d)
	}

	_, err := ParseDifficulty("impossible")
	assert.ErrorIs(t, err, ErrUnknownDifficulty)
}

func TestFindWinningMove(t *testing.T) {
	tests := []struct {
		name      string
		board     game.Board
		mark      game.PlayerMark
		wantIndex int
		wantFound bool
	}{
		{
			name:      "No winning move - empty board",
			board:     game.Board{},
			mark:      x,
			wantIndex: -1, wantFound: false,
		},
		{
			name: "X can win - first row",
			board: game.Board{
				x, x, e,
				o, o, e,
				e, e, e,
			},
			mark:      x,
			wantIndex: 2, wantFound: true,
		},
		{
			name: "O can win - second column",
			board: game.Board{
				x, o, e,
				x, o, e,
				e, e, e,
			},
			mark:      o,
			wantIndex: 7, wantFound: true,
		},
		{
			name: "X can win - main diagonal",
			board: game.Board{
				x, e, e,
				e, x, e,
				e, e, e,
			},
			mark:      x,
			wantIndex: 8, wantFound: true,
		},
		{
			name: "O can win - anti-diagonal",
			board: game.Board{
				e, e, o,
				e, o, e,
				e, e, e,
			},
			mark:      o,
			wantIndex: 6, wantFound: true,
		},
		{
			name: "Full board, no win possible",
			board: game.Board{
				x, o, x,
				o, x, o,
				o, x, o,
			},
			mark:      x,
			wantIndex: -1, wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.board
			index, found := findWinningMove(tt.board, tt.mark)
			assert.Equal(t, tt.wantIndex, index)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, before, tt.board)
		})
	}
}

func TestEasyMove(t *testing.T) {
	t.Run("Only one spot left", func(t *testing.T) {
		board := game.Board{
			x, o, x,
			x, o, o,
			o, e, x,
		}
		assert.Equal(t, 7, easyMove(board))
	})

	t.Run("Never picks an occupied cell", func(t *testing.T) {
		board := game.Board{
			x, e, o,
			e, x, e,
			o, e, e,
		}
		seen := map[int]bool{}
		for range 200 {
			index := CalculateNextMove(board, Easy)
			require.Equal(t, e, board[index], "easy picked occupied cell %d", index)
			seen[index] = true
		}
		assert.Len(t, seen, len(board.EmptyCells()), "every empty cell should come up over 200 draws")
	})
}

func TestNormalMove(t *testing.T) {
	t.Run("Takes the win over a block", func(t *testing.T) {
		board := game.Board{
			o, o, e,
			x, x, e,
			x, e, e,
		}
		assert.Equal(t, 2, CalculateNextMove(board, Normal))
	})

	t.Run("Blocks when it cannot win", func(t *testing.T) {
		board := game.Board{
			x, x, e,
			e, o, e,
			e, e, e,
		}
		assert.Equal(t, 2, CalculateNextMove(board, Normal))
	})

	t.Run("Falls back to an empty cell", func(t *testing.T) {
		board := game.Board{
			x, e, e,
			e, e, e,
			e, e, e,
		}
		for range 100 {
			index := CalculateNextMove(board, Normal)
			require.NotEqual(t, 0, index)
			require.True(t, game.ValidIndex(index))
		}
	})
}

func TestTwoInARowScenarios(t *testing.T) {
	block := game.Board{x, x, e, e, e, e, e, e, e}
	win := game.Board{o, o, e, e, e, e, e, e, e}

	for _, d := range []Difficulty{Normal, Hard} {
		t.Run(string(d), func(t *testing.T) {
			assert.Equal(t, 2, CalculateNextMove(block, d), "must block X at 2")
			assert.Equal(t, 2, CalculateNextMove(win, d), "must complete the line at 2")
		})
	}
}

func TestHardMove(t *testing.T) {
	t.Run("Empty board opens on a corner or the center", func(t *testing.T) {
		index := CalculateNextMove(game.Board{}, Hard)
		assert.Contains(t, []int{0, 2, 4, 6, 8}, index)
	})

	t.Run("Takes the win over a block", func(t *testing.T) {
		board := game.Board{
			o, o, e,
			x, x, e,
			x, e, e,
		}
		assert.Equal(t, 2, CalculateNextMove(board, Hard))
	})

	t.Run("Blocks a fork-free threat", func(t *testing.T) {
		board := game.Board{
			x, x, e,
			e, o, e,
			e, e, e,
		}
		assert.Equal(t, 2, CalculateNextMove(board, Hard))
	})

	t.Run("Is deterministic", func(t *testing.T) {
		board := game.Board{
			x, e, e,
			e, e, e,
			e, e, e,
		}
		first := CalculateNextMove(board, Hard)
		for range 5 {
			assert.Equal(t, first, CalculateNextMove(board, Hard))
		}
		assert.Equal(t, 4, first, "the only non-losing reply to a corner opening is the center")
	})
}

func TestMinimaxRestoresBoard(t *testing.T) {
	boards := []game.Board{
		{},
		{x, e, e, e, o, e, e, e, e},
		{x, x, e, e, o, e, e, e, e},
		{x, o, x, x, o, o, o, x, x},
	}
	for _, board := range boards {
		before := board
		minimax(&board, true)
		minimax(&board, false)
		assert.Equal(t, before, board)
	}
}

// playEveryLine lets X try every legal move at every turn while O answers
// with the hard strategy, and fails if X ever completes a line.
func playEveryLine(t *testing.T, board game.Board) {
	t.Helper()
	for _, index := range board.EmptyCells() {
		next := board
		next[index] = x
		if outcome := game.Evaluate(next); outcome.IsTerminal() {
			require.NotEqual(t, x, outcome.Winner, "X won against hard:\n%s", next)
			continue
		}

		next[CalculateNextMove(next, Hard)] = o
		if game.Evaluate(next).IsTerminal() {
			continue
		}
		playEveryLine(t, next)
	}
}

func TestHardNeverLoses(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive search over every X strategy")
	}
	playEveryLine(t, game.Board{})
}

func TestHardVersusHardIsADraw(t *testing.T) {
	g := game.NewGame()
	for !g.IsOver() {
		var index int
		if g.CurrentTurn == x {
			index = bestMove(g.Board, x)
		} else {
			index = CalculateNextMove(g.Board, Hard)
		}
		require.NoError(t, g.Move(index))
	}
	assert.Equal(t, game.Outcome{Status: game.Draw}, g.Outcome, "final board:\n%s", g.Board)
}

func TestCalculateNextMovePanicsOnFinishedBoard(t *testing.T) {
	full := game.Board{
		x, o, x,
		x, o, o,
		o, x, x,
	}
	won := game.Board{
		x, x, x,
		o, o, e,
		e, e, e,
	}

	for _, d := range Difficulties {
		assert.Panics(t, func() { CalculateNextMove(full, d) }, string(d))
		assert.Panics(t, func() { CalculateNextMove(won, d) }, string(d))
	}
	assert.Panics(t, func() { CalculateNextMove(game.Board{}, Difficulty("insane")) })
}
