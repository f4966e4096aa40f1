package game

// Status is the coarse state of a board.
type Status string

const (
	InProgress Status = "in_progress"
	Win        Status = "win"
	Draw       Status = "draw"
)

// Outcome is the verdict for a board. Winner is only set when Status is Win.
type Outcome struct {
	Status Status     `json:"status"`
	Winner PlayerMark `json:"winner,omitempty"`
}

// IsTerminal reports whether the game is over.
func (o Outcome) IsTerminal() bool {
	return o.Status == Win || o.Status == Draw
}

// Evaluate scans the lines in order and returns a win for the first complete
// one. A full board without a complete line is a draw.
func Evaluate(b Board) Outcome {
	for _, line := range Lines {
		first := b[line[0]]
		if first != None && first == b[line[1]] && first == b[line[2]] {
			return Outcome{Status: Win, Winner: first}
		}
	}

	if b.IsFull() {
		return Outcome{Status: Draw}
	}

	return Outcome{Status: InProgress}
}

// HasWon reports whether some line is fully occupied by mark. Unlike
// Evaluate it ignores lines completed by the other player.
func HasWon(b Board, mark PlayerMark) bool {
	if mark == None {
		return false
	}
	for _, line := range Lines {
		if b[line[0]] == mark && b[line[1]] == mark && b[line[2]] == mark {
			return true
		}
	}
	return false
}
