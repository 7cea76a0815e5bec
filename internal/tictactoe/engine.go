package tictactoe

import (
	"slices"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type GameResult int

const (
	XWins GameResult = iota
	OWins
	Draw
)

func (that GameResult) String() string {
	switch that {
	case XWins:
		return "x-wins"
	case OWins:
		return "o-wins"
	default:
		return "draw"
	}
}

// Minimax classifies the board under perfect play from both sides.
// X's triple is checked before O's, so a board holding both counts as an X win.
func Minimax(board entity.Board, next entity.Player) GameResult {
	if board.HasTriple(entity.PlayerX) {
		return XWins
	}

	if board.HasTriple(entity.PlayerO) {
		return OWins
	}

	children := board.Children(next)
	if len(children) == 0 {
		return Draw
	}

	results := make([]GameResult, 0, len(children))
	for _, child := range children {
		results = append(results, Minimax(child, next.Opponent()))
	}

	return fold(results, next)
}

// fold picks the best result for the mover: its own win, else a draw, else the opponent's win.
func fold(results []GameResult, mover entity.Player) GameResult {
	win, loss := OWins, XWins
	if mover == entity.PlayerX {
		win, loss = XWins, OWins
	}

	switch {
	case slices.Contains(results, win):
		return win
	case slices.Contains(results, Draw):
		return Draw
	default:
		return loss
	}
}

// Play makes one move for O: the first winning child, else the first drawing child,
// else the first child in cell order.
func Play(board entity.Board) (entity.Board, error) {
	if board.IsFull() {
		return entity.Board{}, apperror.ErrBoardFull
	}

	if !board.IsOTurn() {
		return entity.Board{}, apperror.ErrNotOTurn
	}

	children := board.Children(entity.PlayerO)
	drawAt := -1

	for i, child := range children {
		switch Minimax(child, entity.PlayerX) {
		case OWins:
			return child, nil
		case Draw:
			if drawAt < 0 {
				drawAt = i
			}
		case XWins:
		}
	}

	if drawAt >= 0 {
		return children[drawAt], nil
	}

	return children[0], nil
}
