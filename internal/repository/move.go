package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrMoveNotFound = errors.New("move not found")

// MoveRepository caches the engine reply for a board. Keys and values are rendered board text.
type MoveRepository interface {
	Save(ctx context.Context, board, reply entity.Board) error
	GetByBoard(ctx context.Context, board entity.Board) (entity.Board, error)
	DeleteByBoard(ctx context.Context, board entity.Board) error
}

type dbMove struct {
	client *redis.Client
	ttl    time.Duration
}

func NewMoveRepository(client *redis.Client, ttl time.Duration) MoveRepository {
	return &dbMove{
		client: client,
		ttl:    ttl,
	}
}

func moveKey(board entity.Board) string {
	return "move:" + board.String()
}

func (that *dbMove) Save(ctx context.Context, board, reply entity.Board) error {
	err := that.client.Set(ctx, moveKey(board), reply.String(), that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set move: %w", err)
	}

	return nil
}

func (that *dbMove) GetByBoard(ctx context.Context, board entity.Board) (entity.Board, error) {
	response, err := that.client.Get(ctx, moveKey(board)).Result()

	if errors.Is(err, redis.Nil) {
		return entity.Board{}, ErrMoveNotFound
	}

	if err != nil {
		return entity.Board{}, fmt.Errorf("failed to get move by board: %w", err)
	}

	// a reply may be a full board, which Parse rejects, so read the cells only
	reply, err := entity.ParseMarkers(response)
	if err != nil {
		return entity.Board{}, fmt.Errorf("failed to decode cached move: %w", err)
	}

	return reply, nil
}

func (that *dbMove) DeleteByBoard(ctx context.Context, board entity.Board) error {
	deleted, err := that.client.Del(ctx, moveKey(board)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete move: %w", err)
	}

	if deleted == 0 {
		return ErrMoveNotFound
	}

	return nil
}
