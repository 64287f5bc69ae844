package tictactoe

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

// Serialize - converts a game into its persisted shape.
func Serialize(game entity.Game) entity.Snapshot {
	snapshot := entity.Snapshot{
		ID:            game.Session.ID,
		Board:         game.Session.Board.Strings(),
		CurrentPlayer: game.Session.Turn.String(),
		AITier:        string(game.Tier),
		Active:        game.Session.Active,
		Scores:        game.Scores,
	}

	if game.Session.Mode != entity.ModeNone {
		mode := string(game.Session.Mode)
		snapshot.Mode = &mode
	}

	return snapshot
}

// Resume rebuilds a game from a snapshot. Snapshots that could not come out of legal play are rejected
// with apperror.ErrInvalidSnapshot.
func Resume(snapshot entity.Snapshot) (entity.Game, error) {
	var game entity.Game

	if len(snapshot.Board) != entity.BoardSize {
		return game, invalid("board has %d cells", len(snapshot.Board))
	}

	var board entity.Board
	for i, text := range snapshot.Board {
		mark, err := entity.ParseMark(text)
		if err != nil {
			return game, invalid("cell %d: %v", i, err)
		}
		board[i] = mark
	}

	turn, err := entity.ParseMark(snapshot.CurrentPlayer)
	if err != nil || turn == entity.Empty {
		return game, invalid("current player %q", snapshot.CurrentPlayer)
	}

	mode := entity.ModeNone
	if snapshot.Mode != nil {
		if mode, err = entity.ParseMode(*snapshot.Mode); err != nil {
			return game, invalid("%v", err)
		}
	}

	tier := entity.DefaultTier
	if snapshot.AITier != "" {
		if tier, err = entity.ParseTier(snapshot.AITier); err != nil {
			return game, invalid("%v", err)
		}
	}

	if snapshot.Scores.X < 0 || snapshot.Scores.O < 0 || snapshot.Scores.Tie < 0 {
		return game, invalid("negative scores %+v", snapshot.Scores)
	}

	if snapshot.Active && mode == entity.ModeNone {
		return game, invalid("active session without a mode")
	}

	if err = checkReachable(board, turn, snapshot.Active); err != nil {
		return game, err
	}

	id := snapshot.ID
	if id == "" {
		id = uuid.NewString()
	}

	game.Session = entity.Session{
		ID:     id,
		Board:  board,
		Turn:   turn,
		Active: snapshot.Active,
		Mode:   mode,
	}
	game.Tier = tier
	game.Scores = snapshot.Scores

	return game, nil
}

// checkReachable - rejects boards that alternating legal moves from an empty board cannot produce.
func checkReachable(board entity.Board, turn entity.Mark, active bool) error {
	xCount, oCount := board.Count(entity.MarkX), board.Count(entity.MarkO)
	if xCount != oCount && xCount != oCount+1 {
		return invalid("%d x marks against %d o marks", xCount, oCount)
	}

	xWins, oWins := ownsLine(board, entity.MarkX), ownsLine(board, entity.MarkO)
	switch {
	case xWins && oWins:
		return invalid("both marks own a winning line")
	case xWins && xCount != oCount+1, oWins && xCount != oCount:
		return invalid("winner moved out of turn")
	}

	state := EvaluateTerminal(board)
	if !active {
		return checkFinished(board, turn, state)
	}

	if state.IsTerminal() {
		return invalid("active session on a finished board (%s)", state)
	}

	expected := entity.MarkX
	if xCount > oCount {
		expected = entity.MarkO
	}
	if turn != expected {
		return invalid("%s to move but %s is current player", expected, turn)
	}

	return nil
}

// checkFinished - an inactive session is either waiting for a mode on an empty board or over,
// and a won game keeps the winner as current player.
func checkFinished(board entity.Board, turn entity.Mark, state entity.TerminalState) error {
	switch {
	case state.Outcome == entity.Continuing && board.Count(entity.Empty) != entity.BoardSize:
		return invalid("inactive session on an unfinished board")
	case state.Outcome == entity.Win && turn != state.Winner:
		return invalid("%s won but %s is current player", state.Winner, turn)
	}

	return nil
}

func ownsLine(board entity.Board, mark entity.Mark) bool {
	for _, cells := range entity.WinLines {
		if board[cells[0]] == mark && board[cells[1]] == mark && board[cells[2]] == mark {
			return true
		}
	}

	return false
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperror.ErrInvalidSnapshot, fmt.Sprintf(format, args...))
}
