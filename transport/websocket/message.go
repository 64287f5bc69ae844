package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/notify"
)

const (
	actionGameState   = "game:state"
	actionGameNew     = "game:new"
	actionGameTurn    = "game:turn"
	actionGameBotTurn = "game:bot-turn"
	actionEvent       = "event"
	actionPing        = "ping"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	Mode string `json:"mode,omitempty"`
	Tier string `json:"tier,omitempty"`
	Cell *int   `json:"cell,omitempty"`
}

type ResponsePayload struct {
	Game    *entity.Snapshot `json:"game,omitempty"`
	Cell    *int             `json:"cell,omitempty"`
	Outcome string           `json:"outcome,omitempty"`
	Error   string           `json:"error,omitempty"`
}

func mustMarshal(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}

	return b
}

func encode(action string, payload any) []byte {
	return mustMarshal(Message{Action: action, Payload: mustMarshal(payload)})
}

// EncodeEvent - wraps a hub event into a feed message.
func EncodeEvent(event notify.Event) ([]byte, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	data, err := json.Marshal(Message{Action: actionEvent, Payload: payload})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	return data, nil
}
