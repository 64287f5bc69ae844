package bot

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
)

const winScore = 10

// BestMove returns the minimax-optimal cell for mark. Among equal scores the lowest cell wins.
// The board is taken by value; every hypothetical placement happens on a copy.
func BestMove(board entity.Board, mark entity.Mark) (int, error) {
	bestMove, bestScore := -1, math.MinInt

	for _, cell := range tictactoe.LegalMoves(board) {
		next := board
		next[cell] = mark

		if score := minimax(next, 0, false, mark); score > bestScore {
			bestMove, bestScore = cell, score
		}
	}

	if bestMove < 0 {
		return -1, apperror.ErrNoLegalMoves
	}

	return bestMove, nil
}

// minimax scores board from bot's point of view: faster wins and slower losses score higher.
func minimax(board entity.Board, depth int, maximizing bool, bot entity.Mark) int {
	state := tictactoe.EvaluateTerminal(board)
	switch {
	case state.Outcome == entity.Win && state.Winner == bot:
		return winScore - depth
	case state.Outcome == entity.Win:
		return depth - winScore
	case state.Outcome == entity.Draw:
		return 0
	}

	mover, best := bot.Opponent(), math.MaxInt
	if maximizing {
		mover, best = bot, math.MinInt
	}

	for cell, occupant := range board {
		if occupant != entity.Empty {
			continue
		}

		next := board
		next[cell] = mover

		score := minimax(next, depth+1, !maximizing, bot)
		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}
