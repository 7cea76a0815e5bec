package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type moveRepo interface {
	Save(ctx context.Context, board, reply entity.Board) error
	GetByBoard(ctx context.Context, board entity.Board) (entity.Board, error)
}

// Engine answers a board with O's reply, consulting the move cache when one is configured.
type Engine struct {
	logger   *slog.Logger
	moveRepo moveRepo
}

// NewEngine - moveRepo may be nil, in which case every reply is searched.
func NewEngine(logger *slog.Logger, moveRepo moveRepo) *Engine {
	return &Engine{
		logger:   logger.With("component", "engine"),
		moveRepo: moveRepo,
	}
}

// NextMove parses text and returns the board after O's move.
func (that *Engine) NextMove(ctx context.Context, text string) (entity.Board, error) {
	board, err := entity.Parse(text)
	if err != nil {
		return entity.Board{}, fmt.Errorf("failed to parse board: %w", err)
	}

	log := that.logger.With("method", "NextMove", "board", board.String())

	if reply, ok := that.cached(ctx, log, board); ok {
		return reply, nil
	}

	reply, err := tictactoe.Play(board)
	if err != nil {
		return entity.Board{}, fmt.Errorf("failed to play: %w", err)
	}

	log.Debug("move searched", "reply", reply.String())

	if that.moveRepo != nil {
		if err = that.moveRepo.Save(ctx, board, reply); err != nil {
			log.Error("failed to cache move", "error", err)
		}
	}

	return reply, nil
}

func (that *Engine) cached(ctx context.Context, log *slog.Logger, board entity.Board) (entity.Board, bool) {
	if that.moveRepo == nil {
		return entity.Board{}, false
	}

	reply, err := that.moveRepo.GetByBoard(ctx, board)
	switch {
	case err == nil:
		log.Debug("move served from cache", "reply", reply.String())
		return reply, true
	case errors.Is(err, repository.ErrMoveNotFound):
		return entity.Board{}, false
	default:
		log.Error("failed to read move cache", "error", err)
		return entity.Board{}, false
	}
}
