package notify

import "github.com/rocketscienceinc/tictactoe-solo/internal/entity"

type Kind string

const (
	KindMove Kind = "move"
	KindWin  Kind = "win"
	KindLose Kind = "lose"
	KindTie  Kind = "tie"
)

// Event is what the feed clients receive. Win and lose are from the point of view of X.
type Event struct {
	Kind   Kind        `json:"type"`
	GameID string      `json:"gameId"`
	Mark   entity.Mark `json:"mark,omitempty"`
	Cell   int         `json:"cell"`
	Board  []string    `json:"board"`
}

// MoveEvent - event for an accepted move.
func MoveEvent(session entity.Session, mark entity.Mark, cell int) Event {
	return Event{
		Kind:   KindMove,
		GameID: session.ID,
		Mark:   mark,
		Cell:   cell,
		Board:  session.Board.Strings(),
	}
}

// ResultEvent - event for a finished game, cell is the move that finished it.
func ResultEvent(session entity.Session, state entity.TerminalState, cell int) Event {
	event := Event{
		Kind:   KindTie,
		GameID: session.ID,
		Cell:   cell,
		Board:  session.Board.Strings(),
	}

	if state.Outcome == entity.Win {
		event.Mark = state.Winner
		event.Kind = KindLose
		if state.Winner == entity.MarkX {
			event.Kind = KindWin
		}
	}

	return event
}
