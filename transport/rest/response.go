package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-solo/internal/usecase"
)

var errBadRequest = errors.New("bad request")

// gameResponse is the saved snapshot plus what the board needs to render it.
type gameResponse struct {
	entity.Snapshot
	BotTurn     bool            `json:"botTurn"`
	WinningLine *tictactoe.Line `json:"winningLine,omitempty"`
}

type turnResponse struct {
	Game    gameResponse `json:"game"`
	Mark    entity.Mark  `json:"mark"`
	Cell    int          `json:"cell"`
	Outcome string       `json:"outcome"`
	Winner  entity.Mark  `json:"winner,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newGameResponse(game *entity.Game) gameResponse {
	response := gameResponse{
		Snapshot: tictactoe.Serialize(*game),
		BotTurn:  game.IsBotTurn(),
	}

	if line, ok := tictactoe.WinningLine(game.Session.Board); ok {
		response.WinningLine = &line
	}

	return response
}

func newTurnResponse(result *usecase.TurnResult) turnResponse {
	return turnResponse{
		Game:    newGameResponse(result.Game),
		Mark:    result.Mark,
		Cell:    result.Cell,
		Outcome: result.State.Outcome.String(),
		Winner:  result.State.Winner,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError - maps domain errors to a status code. Internal errors are logged and not exposed.
func writeError(logger *slog.Logger, w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
		writeJSON(w, status, errorResponse{Error: http.StatusText(status)})
		return
	}

	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, apperror.ErrIllegalMove),
		errors.Is(err, apperror.ErrInvalidMode),
		errors.Is(err, apperror.ErrInvalidTier),
		errors.Is(err, apperror.ErrInvalidSettings):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrNoLegalMoves):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
