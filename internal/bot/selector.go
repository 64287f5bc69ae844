package bot

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
)

// mediumSmartChance is the share of medium-tier moves that use the hard strategy.
const mediumSmartChance = 0.7

// Selector picks moves for the automated player.
type Selector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector - seed 0 seeds from the clock.
func NewSelector(seed uint64) *Selector {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return NewSelectorWithSource(rand.NewSource(seed))
}

func NewSelectorWithSource(source rand.Source) *Selector {
	return &Selector{rng: rand.New(source)}
}

// SelectMove returns the cell mark should play on board at the given tier.
func (that *Selector) SelectMove(board entity.Board, mark entity.Mark, tier entity.Tier) (int, error) {
	if mark == entity.Empty {
		return -1, fmt.Errorf("%w: nobody to move", apperror.ErrIllegalMove)
	}

	availableCells := tictactoe.LegalMoves(board)
	if len(availableCells) == 0 {
		return -1, apperror.ErrNoLegalMoves
	}

	switch tier {
	case entity.EasyTier:
		return that.randomMove(availableCells), nil
	case entity.MediumTier:
		if that.chance() < mediumSmartChance {
			return BestMove(board, mark)
		}
		return that.randomMove(availableCells), nil
	case entity.HardTier:
		return BestMove(board, mark)
	default:
		return -1, fmt.Errorf("%w: %q", apperror.ErrInvalidTier, tier)
	}
}

func (that *Selector) randomMove(availableCells []int) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return availableCells[that.rng.Intn(len(availableCells))]
}

func (that *Selector) chance() float64 {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rng.Float64()
}
