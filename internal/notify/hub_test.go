package notify

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

func newTestHub() *Hub {
	return NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func receive(t *testing.T, client *Client) Event {
	t.Helper()

	select {
	case data, ok := <-client.Messages():
		require.True(t, ok, "client channel closed")

		var event Event
		require.NoError(t, json.Unmarshal(data, &event))

		return event
	case <-time.After(time.Second):
		require.FailNow(t, "no event delivered")
	}

	return Event{}
}

func TestHub(t *testing.T) {
	t.Run("Publish_DeliversToEveryClient", func(t *testing.T) {
		// Given: a running hub with two clients
		hub := newTestHub()
		done := make(chan struct{})
		defer close(done)
		go hub.Run(done)

		first, second := NewClient(), NewClient()
		hub.Register(first)
		hub.Register(second)

		session := entity.Session{ID: "game-1"}
		session.Board[4] = entity.MarkX

		// When: a move is published
		hub.Publish(MoveEvent(session, entity.MarkX, 4))

		// Then: both clients receive it
		for _, client := range []*Client{first, second} {
			event := receive(t, client)
			assert.Equal(t, KindMove, event.Kind)
			assert.Equal(t, "game-1", event.GameID)
			assert.Equal(t, entity.MarkX, event.Mark)
			assert.Equal(t, 4, event.Cell)
			assert.Equal(t, "x", event.Board[4])
		}
	})

	t.Run("Publish_DoesNotBlockWithoutRun", func(t *testing.T) {
		// Given: a hub whose loop is not running
		hub := newTestHub()

		// When: more events than the buffer holds are published
		finished := make(chan struct{})
		go func() {
			for i := 0; i < broadcastBuffer*2; i++ {
				hub.Publish(Event{Kind: KindMove, Cell: i % entity.BoardSize})
			}
			close(finished)
		}()

		// Then: Publish returns anyway
		select {
		case <-finished:
		case <-time.After(time.Second):
			require.FailNow(t, "Publish blocked")
		}
	})

	t.Run("Unregister_ClosesClient", func(t *testing.T) {
		hub := newTestHub()
		client := NewClient()
		hub.Register(client)
		require.Equal(t, 1, hub.ClientsCount())

		hub.Unregister(client)
		hub.Unregister(client)

		assert.Equal(t, 0, hub.ClientsCount())
		_, ok := <-client.Messages()
		assert.False(t, ok)
	})
}

func TestResultEvent(t *testing.T) {
	session := entity.Session{ID: "game-2"}

	tests := []struct {
		name  string
		state entity.TerminalState
		kind  Kind
		mark  entity.Mark
	}{
		{name: "x wins", state: entity.Won(entity.MarkX), kind: KindWin, mark: entity.MarkX},
		{name: "o wins", state: entity.Won(entity.MarkO), kind: KindLose, mark: entity.MarkO},
		{name: "draw", state: entity.TerminalState{Outcome: entity.Draw}, kind: KindTie, mark: entity.Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := ResultEvent(session, tt.state, 8)

			assert.Equal(t, tt.kind, event.Kind)
			assert.Equal(t, tt.mark, event.Mark)
			assert.Equal(t, 8, event.Cell)
			assert.Len(t, event.Board, entity.BoardSize)
		})
	}
}

func TestEvent_JSON(t *testing.T) {
	data, err := json.Marshal(ResultEvent(entity.Session{ID: "g"}, entity.TerminalState{Outcome: entity.Draw}, 0))
	require.NoError(t, err)

	assert.JSONEq(t, `{"type":"tie","gameId":"g","cell":0,"board":["","","","","","","","",""]}`, string(data))
}

func TestHub_WithEncoder(t *testing.T) {
	// Given: a hub that wraps events
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)), WithEncoder(func(event Event) ([]byte, error) {
		return []byte("wrapped:" + string(event.Kind)), nil
	}))
	done := make(chan struct{})
	defer close(done)
	go hub.Run(done)

	client := NewClient()
	hub.Register(client)

	// When: an event is published
	hub.Publish(Event{Kind: KindTie})

	// Then: the client receives the encoder output
	select {
	case data := <-client.Messages():
		assert.Equal(t, "wrapped:tie", string(data))
	case <-time.After(time.Second):
		require.FailNow(t, "no event delivered")
	}
}
