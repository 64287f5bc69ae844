package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-solo/internal/usecase"
)

var errPayloadRequired = errors.New("payload is required")

func (that *Server) handleGameState(ctx context.Context, msg *Message) []byte {
	game, err := that.gameUseCase.CurrentGame(ctx)
	if err != nil {
		return that.failure(msg.Action, err)
	}

	return gameMessage(msg.Action, game)
}

func (that *Server) handleNewGame(ctx context.Context, msg *Message) []byte {
	payload, err := requestPayload(msg)
	if err != nil {
		return that.failure(msg.Action, err)
	}

	mode, err := entity.ParseMode(payload.Mode)
	if err != nil {
		return that.failure(msg.Action, err)
	}

	var tier entity.Tier
	if payload.Tier != "" {
		if tier, err = entity.ParseTier(payload.Tier); err != nil {
			return that.failure(msg.Action, err)
		}
	}

	game, err := that.gameUseCase.StartGame(ctx, mode, tier)
	if err != nil {
		return that.failure(msg.Action, err)
	}

	return gameMessage(msg.Action, game)
}

func (that *Server) handleGameTurn(ctx context.Context, msg *Message) []byte {
	payload, err := requestPayload(msg)
	if err != nil {
		return that.failure(msg.Action, err)
	}

	if payload.Cell == nil {
		return errorMessage(msg.Action, "cell is required")
	}

	result, err := that.gameUseCase.MakeTurn(ctx, *payload.Cell)
	if err != nil {
		return that.failure(msg.Action, err)
	}

	return turnMessage(msg.Action, result)
}

func (that *Server) handleBotTurn(ctx context.Context, msg *Message) []byte {
	result, err := that.gameUseCase.MakeBotTurn(ctx)
	if err != nil {
		return that.failure(msg.Action, err)
	}

	return turnMessage(msg.Action, result)
}

// failure - domain errors are returned to the client as is, everything else is logged.
func (that *Server) failure(action string, err error) []byte {
	switch {
	case errors.Is(err, errPayloadRequired),
		errors.Is(err, apperror.ErrIllegalMove),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrNoLegalMoves),
		errors.Is(err, apperror.ErrInvalidMode),
		errors.Is(err, apperror.ErrInvalidTier):
		return errorMessage(action, err.Error())
	default:
		that.logger.Error("failed to process message", "action", action, "error", err)
		return errorMessage(action, "internal error")
	}
}

func requestPayload(msg *Message) (RequestPayload, error) {
	var payload RequestPayload

	if len(msg.Payload) == 0 {
		return payload, errPayloadRequired
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, errPayloadRequired
	}

	return payload, nil
}

func gameMessage(action string, game *entity.Game) []byte {
	snapshot := tictactoe.Serialize(*game)

	return encode(action, ResponsePayload{Game: &snapshot})
}

func turnMessage(action string, result *usecase.TurnResult) []byte {
	snapshot := tictactoe.Serialize(*result.Game)
	cell := result.Cell

	return encode(action, ResponsePayload{
		Game:    &snapshot,
		Cell:    &cell,
		Outcome: result.State.String(),
	})
}

func errorMessage(action, text string) []byte {
	return encode(action, ResponsePayload{Error: text})
}
