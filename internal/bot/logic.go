package bot

import (
	"ctchen222/Tic-Tac-Toe-CPU/internal/game"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
)

// Difficulty selects the strategy the computer plays with.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Normal Difficulty = "normal"
	Hard   Difficulty = "hard"
)

// Difficulties lists every supported difficulty, easiest first.
var Difficulties = []Difficulty{Easy, Normal, Hard}

var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Minimax scores, always from O's point of view.
const (
	scoreWin  = 10
	scoreLoss = -10
	scoreDraw = 0
)

// ParseDifficulty converts user input into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case Easy, Normal, Hard:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// CalculateNextMove returns the index O will occupy. The board must have an
// empty cell and no winner; anything else is a programming error and panics.
func CalculateNextMove(board game.Board, difficulty Difficulty) int {
	if outcome := game.Evaluate(board); outcome.IsTerminal() {
		panic(fmt.Sprintf("bot: move requested on a finished board (%s)", outcome.Status))
	}

	switch difficulty {
	case Easy:
		return easyMove(board)
	case Normal:
		return normalMove(board)
	case Hard:
		return hardMove(board)
	default:
		panic(fmt.Sprintf("bot: %v: %q", ErrUnknownDifficulty, difficulty))
	}
}

// easyMove picks a random empty cell.
func easyMove(board game.Board) int {
	available := board.EmptyCells()
	return available[rand.IntN(len(available))]
}

// normalMove will win if it can, block if it must, otherwise move randomly.
func normalMove(board game.Board) int {
	// 1. Win
	if index, ok := findWinningMove(board, game.PlayerO); ok {
		return index
	}

	// 2. Block
	if index, ok := findWinningMove(board, game.PlayerX); ok {
		return index
	}

	// 3. Random
	return easyMove(board)
}

// findWinningMove returns the first empty cell that completes a line for mark.
func findWinningMove(board game.Board, mark game.PlayerMark) (int, bool) {
	for _, index := range board.EmptyCells() {
		candidate := board
		candidate[index] = mark
		if game.HasWon(candidate, mark) {
			return index, true
		}
	}
	return -1, false
}

// hardMove plays the minimax-optimal move for O.
func hardMove(board game.Board) int {
	return bestMove(board, game.PlayerO)
}

// bestMove searches every reply for mark and keeps the first best-scoring
// index. O maximises the score, X minimises it.
func bestMove(board game.Board, mark game.PlayerMark) int {
	maximizing := mark == game.PlayerO
	bestScore := math.MaxInt
	if maximizing {
		bestScore = math.MinInt
	}
	best := -1

	for _, index := range board.EmptyCells() {
		board[index] = mark
		score := minimax(&board, !maximizing)
		board[index] = game.None

		if (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			bestScore = score
			best = index
		}
	}
	return best
}

// minimax scores the board with full-depth search. It places and retracts
// marks on board in place, so the board is unchanged when it returns.
func minimax(board *game.Board, isMaximizing bool) int {
	switch outcome := game.Evaluate(*board); outcome.Status {
	case game.Win:
		if outcome.Winner == game.PlayerO {
			return scoreWin
		}
		return scoreLoss
	case game.Draw:
		return scoreDraw
	}

	mark := game.PlayerX
	bestScore := math.MaxInt
	if isMaximizing {
		mark = game.PlayerO
		bestScore = math.MinInt
	}

	for i := range board {
		if board[i] != game.None {
			continue
		}
		board[i] = mark
		score := minimax(board, !isMaximizing)
		board[i] = game.None

		if isMaximizing {
			bestScore = max(bestScore, score)
		} else {
			bestScore = min(bestScore, score)
		}
	}
	return bestScore
}
