package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type engineUseCase interface {
	NextMove(ctx context.Context, text string) (entity.Board, error)
}

type moveHandler struct {
	logger *slog.Logger
	engine engineUseCase
}

// play answers GET /?board=... with the board after O's move.
func (that *moveHandler) play(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "play")

	reply, err := that.engine.NextMove(r.Context(), r.URL.Query().Get("board"))
	if err != nil {
		status, message := errorResponse(err)
		if status == http.StatusInternalServerError {
			log.Error("failed to play", "error", err)
		} else {
			log.Debug("rejected board", "error", err)
		}

		http.Error(w, message, status)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write([]byte(reply.String() + "\n")); err != nil {
		log.Error("failed to write response", "error", err)
	}
}

func errorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, apperror.ErrBoardNotParsed):
		return http.StatusBadRequest, "Board could not be parsed"
	case errors.Is(err, apperror.ErrNotOTurn):
		return http.StatusBadRequest, "It is not O's turn"
	case errors.Is(err, apperror.ErrBoardFull):
		return http.StatusBadRequest, "Board is full"
	default:
		return http.StatusInternalServerError, "Internal Server Error"
	}
}
