package rest

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/usecase"
)

type handlers struct {
	logger      *slog.Logger
	gameUseCase usecase.GameUseCase
}

type startGameRequest struct {
	Mode string `json:"mode"`
	Tier string `json:"tier"`
}

type turnRequest struct {
	Cell *int `json:"cell"`
}

func (that *handlers) currentGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameUseCase.CurrentGame(r.Context())
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(w, http.StatusOK, newGameResponse(game))
}

func (that *handlers) startGame(w http.ResponseWriter, r *http.Request) {
	var request startGameRequest
	if err := decode(r, &request); err != nil {
		writeError(that.logger, w, err)
		return
	}

	mode, err := entity.ParseMode(request.Mode)
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	var tier entity.Tier
	if request.Tier != "" {
		if tier, err = entity.ParseTier(request.Tier); err != nil {
			writeError(that.logger, w, err)
			return
		}
	}

	game, err := that.gameUseCase.StartGame(r.Context(), mode, tier)
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, newGameResponse(game))
}

func (that *handlers) makeTurn(w http.ResponseWriter, r *http.Request) {
	var request turnRequest
	if err := decode(r, &request); err != nil {
		writeError(that.logger, w, err)
		return
	}

	if request.Cell == nil {
		writeError(that.logger, w, fmt.Errorf("%w: cell is required", errBadRequest))
		return
	}

	result, err := that.gameUseCase.MakeTurn(r.Context(), *request.Cell)
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(w, http.StatusOK, newTurnResponse(result))
}

func (that *handlers) makeBotTurn(w http.ResponseWriter, r *http.Request) {
	result, err := that.gameUseCase.MakeBotTurn(r.Context())
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(w, http.StatusOK, newTurnResponse(result))
}

func (that *handlers) resetScores(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameUseCase.ResetScores(r.Context())
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(w, http.StatusOK, newGameResponse(game))
}

func (that *handlers) clearGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameUseCase.ClearGame(r.Context())
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(w, http.StatusOK, newGameResponse(game))
}

func (that *handlers) leaderboard(w http.ResponseWriter, r *http.Request) {
	standings, err := that.gameUseCase.Leaderboard(r.Context())
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(w, http.StatusOK, standings)
}

func (that *handlers) resetLeaderboard(w http.ResponseWriter, r *http.Request) {
	standings, err := that.gameUseCase.ResetLeaderboard(r.Context())
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(w, http.StatusOK, standings)
}

func (that *handlers) settings(w http.ResponseWriter, r *http.Request) {
	settings, err := that.gameUseCase.Settings(r.Context())
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

// updateSettings - fields missing from the body keep their current values.
func (that *handlers) updateSettings(w http.ResponseWriter, r *http.Request) {
	var patch entity.SettingsPatch
	if err := decode(r, &patch); err != nil {
		writeError(that.logger, w, err)
		return
	}

	updated, err := that.gameUseCase.UpdateSettings(r.Context(), patch)
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (that *handlers) resetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := that.gameUseCase.ResetSettings(r.Context())
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

func decode(r *http.Request, target any) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return fmt.Errorf("%w: invalid payload: %v", errBadRequest, err)
	}

	return nil
}
