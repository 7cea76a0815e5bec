package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const BoardSize = 9

type Marker int

const (
	Empty Marker = iota
	X
	O
)

type Player int

const (
	PlayerX Player = iota
	PlayerO
)

var (
	ErrWrongLength        = errors.New("board must be exactly 9 characters")
	ErrInvalidChar        = errors.New("invalid board character")
	ErrInconsistentCounts = errors.New("inconsistent marker counts")

	WinCombos = [8][3]int{
		// rows
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		// columns
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		// diagonals
		{0, 4, 8},
		{2, 4, 6},
	}
)

// Marker returns the grid symbol the player places.
func (that Player) Marker() Marker {
	if that == PlayerX {
		return X
	}
	return O
}

// Opponent returns the player moving after this one.
func (that Player) Opponent() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Player) String() string {
	if that == PlayerX {
		return "X"
	}
	return "O"
}

func markerFromChar(c byte) (Marker, error) {
	switch c {
	case 'x':
		return X, nil
	case 'o':
		return O, nil
	case '+', ' ':
		return Empty, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrInvalidChar, c)
	}
}

func (that Marker) char() byte {
	switch that {
	case X:
		return 'x'
	case O:
		return 'o'
	default:
		return ' '
	}
}

// Board is the 3x3 grid, read left-to-right, top-to-bottom:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// It is a value type; moves produce new boards.
type Board struct {
	markers [BoardSize]Marker
}

// NewBoard builds a board from markers without validating counts.
func NewBoard(markers [BoardSize]Marker) Board {
	return Board{markers: markers}
}

// Parse reads the 9-character text form. 'x' and 'o' are markers, '+' and ' ' are empty cells.
// Unless the board is empty, X and O counts must be equal with at least one empty cell left.
func Parse(text string) (Board, error) {
	board, err := ParseMarkers(text)
	if err != nil {
		return Board{}, err
	}

	counts := [3]int{board.count(Empty), board.count(X), board.count(O)}
	if counts[Empty] == BoardSize {
		return board, nil
	}

	if counts[O] != counts[X] || counts[Empty] == 0 {
		return Board{}, fmt.Errorf("%w: %w: x=%d o=%d empty=%d",
			apperror.ErrBoardNotParsed, ErrInconsistentCounts, counts[X], counts[O], counts[Empty])
	}

	return board, nil
}

// ParseMarkers reads the cells of the text form without checking whose turn it is.
func ParseMarkers(text string) (Board, error) {
	if len(text) != BoardSize {
		return Board{}, fmt.Errorf("%w: %w: got %d", apperror.ErrBoardNotParsed, ErrWrongLength, len(text))
	}

	var board Board
	for i := 0; i < BoardSize; i++ {
		marker, err := markerFromChar(text[i])
		if err != nil {
			return Board{}, fmt.Errorf("%w: %w at index %d", apperror.ErrBoardNotParsed, err, i)
		}

		board.markers[i] = marker
	}

	return board, nil
}

// String renders the board back to text, using a space for empty cells.
func (that Board) String() string {
	var sb strings.Builder
	sb.Grow(BoardSize)

	for _, marker := range that.markers {
		sb.WriteByte(marker.char())
	}

	return sb.String()
}

// At returns the marker at index i.
func (that Board) At(i int) Marker {
	return that.markers[i]
}

// Markers returns a copy of the cells.
func (that Board) Markers() [BoardSize]Marker {
	return that.markers
}

func (that Board) count(marker Marker) int {
	n := 0
	for _, m := range that.markers {
		if m == marker {
			n++
		}
	}
	return n
}

// IsFull reports whether no empty cell is left.
func (that Board) IsFull() bool {
	return that.count(Empty) == 0
}

// IsOTurn reports whether O is the next mover: equal counts and at least one empty cell.
func (that Board) IsOTurn() bool {
	return that.count(O) == that.count(X) && !that.IsFull()
}

// HasTriple reports whether the player holds any of the 8 winning lines.
func (that Board) HasTriple(player Player) bool {
	marker := player.Marker()

	for _, combo := range WinCombos {
		if that.markers[combo[0]] == marker && that.markers[combo[1]] == marker && that.markers[combo[2]] == marker {
			return true
		}
	}

	return false
}

// Winner returns the player holding a triple, checking X before O.
func (that Board) Winner() (Player, bool) {
	switch {
	case that.HasTriple(PlayerX):
		return PlayerX, true
	case that.HasTriple(PlayerO):
		return PlayerO, true
	default:
		return PlayerX, false
	}
}

// Children returns every board reachable by one move of player, in increasing cell index order.
func (that Board) Children(player Player) []Board {
	children := make([]Board, 0, that.count(Empty))

	for i, marker := range that.markers {
		if marker != Empty {
			continue
		}

		child := that
		child.markers[i] = player.Marker()
		children = append(children, child)
	}

	return children
}
