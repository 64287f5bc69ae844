package tictactoe

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

// NewSession - returns an empty board with X to move.
func NewSession(mode entity.Mode) entity.Session {
	return entity.Session{
		ID:     uuid.NewString(),
		Turn:   entity.MarkX,
		Active: true,
		Mode:   mode,
	}
}

// ApplyMove places the mover's mark on cell and returns the updated session.
// The session argument is a copy, so a rejected move leaves the caller's session as it was.
func ApplyMove(session entity.Session, cell int) (entity.Session, entity.TerminalState, error) {
	if err := validateMove(session, cell); err != nil {
		return session, entity.TerminalState{}, err
	}

	session.Board[cell] = session.Turn

	state := EvaluateTerminal(session.Board)
	if state.IsTerminal() {
		session.Active = false
		return session, state, nil
	}

	session.Turn = session.Turn.Opponent()

	return session, state, nil
}

// validateMove - checks if the move is legal.
func validateMove(session entity.Session, cell int) error {
	if !session.Active {
		return fmt.Errorf("%w: session is not active", apperror.ErrIllegalMove)
	}

	if !entity.InBounds(cell) {
		return fmt.Errorf("%w: cell %d is out of range", apperror.ErrIllegalMove, cell)
	}

	if session.Board[cell] != entity.Empty {
		return fmt.Errorf("%w: cell %d is already occupied", apperror.ErrIllegalMove, cell)
	}

	return nil
}

// EvaluateTerminal reports a win for the first fully owned line, a draw on a full board, or continuing.
func EvaluateTerminal(board entity.Board) entity.TerminalState {
	if line, ok := WinningLine(board); ok {
		return entity.Won(board[line.Cells[0]])
	}

	if board.IsFull() {
		return entity.TerminalState{Outcome: entity.Draw}
	}

	return entity.TerminalState{Outcome: entity.Continuing}
}

// LegalMoves returns the empty cells in ascending order.
func LegalMoves(board entity.Board) []int {
	moves := make([]int, 0, len(board))
	for i, cell := range board {
		if cell == entity.Empty {
			moves = append(moves, i)
		}
	}

	return moves
}
