package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
)

var errRedisDown = errors.New("redis down")

type mockMoveRepo struct {
	mock.Mock
}

func (that *mockMoveRepo) Save(ctx context.Context, board, reply entity.Board) error {
	args := that.Called(ctx, board, reply)
	return args.Error(0)
}

func (that *mockMoveRepo) GetByBoard(ctx context.Context, board entity.Board) (entity.Board, error) {
	args := that.Called(ctx, board)
	return args.Get(0).(entity.Board), args.Error(1)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustMarkers(t *testing.T, text string) entity.Board {
	t.Helper()

	board, err := entity.ParseMarkers(text)
	require.NoError(t, err)

	return board
}

func TestEngine_NextMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Searches the move without a cache", func(t *testing.T) {
		// Given: an engine with no move cache
		engine := NewEngine(newTestLogger(), nil)

		// When: asking for the reply to the empty board
		reply, err := engine.NextMove(ctx, "+++++++++")

		// Then: O takes the first corner
		require.NoError(t, err)
		assert.Equal(t, "o        ", reply.String())
	})

	t.Run("Returns a parse error for a malformed board", func(t *testing.T) {
		// Given: an engine with a cache that must not be touched
		repo := &mockMoveRepo{}
		engine := NewEngine(newTestLogger(), repo)

		// When: asking for the reply to a short board
		_, err := engine.NextMove(ctx, "xx")

		// Then: the parse error is returned
		require.ErrorIs(t, err, apperror.ErrBoardNotParsed)
		assert.ErrorIs(t, err, entity.ErrWrongLength)
		repo.AssertNotCalled(t, "GetByBoard", mock.Anything, mock.Anything)
	})

	t.Run("Serves a cached reply", func(t *testing.T) {
		// Given: a cache holding the reply
		repo := &mockMoveRepo{}
		board := mustMarkers(t, "o+++x++++")
		cached := mustMarkers(t, "oo  x    ")
		repo.On("GetByBoard", mock.Anything, board).Return(cached, nil).Once()
		engine := NewEngine(newTestLogger(), repo)

		// When: asking for the reply
		reply, err := engine.NextMove(ctx, "o+++x++++")

		// Then: the cached reply is returned without saving
		require.NoError(t, err)
		assert.Equal(t, cached, reply)
		repo.AssertExpectations(t)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Searches and saves on a cache miss", func(t *testing.T) {
		// Given: an empty cache
		repo := &mockMoveRepo{}
		board := mustMarkers(t, "oox+x++++")
		want := mustMarkers(t, "oox x o  ")
		repo.On("GetByBoard", mock.Anything, board).Return(entity.Board{}, repository.ErrMoveNotFound).Once()
		repo.On("Save", mock.Anything, board, want).Return(nil).Once()
		engine := NewEngine(newTestLogger(), repo)

		// When: asking for the reply
		reply, err := engine.NextMove(ctx, "oox+x++++")

		// Then: the searched reply is returned and cached
		require.NoError(t, err)
		assert.Equal(t, want, reply)
		repo.AssertExpectations(t)
	})

	t.Run("Ignores cache failures", func(t *testing.T) {
		// Given: a cache that is down
		repo := &mockMoveRepo{}
		board := mustMarkers(t, "ooxxx+o++")
		want := mustMarkers(t, "ooxxxoo  ")
		repo.On("GetByBoard", mock.Anything, board).Return(entity.Board{}, errRedisDown).Once()
		repo.On("Save", mock.Anything, board, want).Return(errRedisDown).Once()
		engine := NewEngine(newTestLogger(), repo)

		// When: asking for the reply
		reply, err := engine.NextMove(ctx, "ooxxx+o++")

		// Then: the searched reply is still returned
		require.NoError(t, err)
		assert.Equal(t, want, reply)
		repo.AssertExpectations(t)
	})
}
