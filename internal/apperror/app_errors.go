package apperror

import "errors"

var (
	ErrBoardNotParsed = errors.New("board could not be parsed")
	ErrNotOTurn       = errors.New("it is not O's turn")
	ErrBoardFull      = errors.New("board is full")
)
