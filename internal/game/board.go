package game

import (
	"errors"
	"strings"
)

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

const (
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"
)

// BoardSize is the number of cells on the 3x3 board.
const BoardSize = 9

var (
	ErrInvalidIndex = errors.New("cell index out of range")
	ErrCellOccupied = errors.New("cell already occupied")
)

// Board is a 3x3 grid stored row-major, indices 0-8.
type Board [BoardSize]PlayerMark

// Lines holds every winning combination: rows, then columns, then diagonals.
var Lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// ValidIndex reports whether i addresses a cell on the board.
func ValidIndex(i int) bool {
	return i >= 0 && i < BoardSize
}

// Opponent returns the other player's mark.
func Opponent(mark PlayerMark) PlayerMark {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Place puts mark on the cell at index. The board is left untouched on error.
func (b *Board) Place(index int, mark PlayerMark) error {
	if !ValidIndex(index) {
		return ErrInvalidIndex
	}
	if b[index] != None {
		return ErrCellOccupied
	}
	b[index] = mark
	return nil
}

// EmptyCells returns the indices of empty cells in ascending order.
func (b Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range b {
		if cell == None {
			cells = append(cells, i)
		}
	}
	return cells
}

// IsFull reports whether no empty cell remains.
func (b Board) IsFull() bool {
	for _, cell := range b {
		if cell == None {
			return false
		}
	}
	return true
}

// String renders the board as three rows, using '.' for empty cells.
func (b Board) String() string {
	var sb strings.Builder
	for i, cell := range b {
		if cell == None {
			sb.WriteByte('.')
		} else {
			sb.WriteString(string(cell))
		}
		if i%3 == 2 && i != BoardSize-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
