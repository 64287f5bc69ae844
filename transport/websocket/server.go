package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-solo/internal/notify"
	"github.com/rocketscienceinc/tictactoe-solo/internal/usecase"
)

// Server is the event feed of the front-end. It relays hub events and accepts the same game
// actions as the REST routes.
type Server struct {
	logger      *slog.Logger
	gameUseCase usecase.GameUseCase
	hub         *notify.Hub

	upgrader     websocket.Upgrader
	pingInterval time.Duration

	handlers map[string]func(ctx context.Context, message *Message) []byte
}

func New(logger *slog.Logger, gameUseCase usecase.GameUseCase, hub *notify.Hub) *Server {
	server := &Server{
		logger:      logger.With("component", "websocket"),
		gameUseCase: gameUseCase,
		hub:         hub,

		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		pingInterval: idlePingInterval,
	}

	server.handlers = map[string]func(context.Context, *Message) []byte{
		actionGameState:   server.handleGameState,
		actionGameNew:     server.handleNewGame,
		actionGameTurn:    server.handleGameTurn,
		actionGameBotTurn: server.handleBotTurn,
	}

	return server
}

// ServeHTTP - upgrades the connection and serves it until the client goes away.
func (that *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	client := notify.NewClient()
	that.hub.Register(client)

	log.Info("WebSocket connection established", "remote_addr", r.RemoteAddr)

	ctx := r.Context()
	client.Push(that.handleGameState(ctx, &Message{Action: actionGameState}))

	go func() {
		defer conn.Close()

		if err := writeWithHeartbeat(conn, client.Messages(), that.pingInterval); err != nil {
			log.Error("failed to write message", "error", err)
		}
	}()

	that.handleMessages(ctx, conn, client)

	that.hub.Unregister(client)
	log.Info("WebSocket connection closed")
}

// handleMessages - processes messages from the client until the connection fails.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn, client *notify.Client) {
	log := that.logger.With("method", "handleMessages")

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Error("error reading message", "error", err)
			}
			return
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			client.Push(errorMessage(message.Action, "unknown action"))
			continue
		}

		client.Push(handler(ctx, &message))
	}
}
