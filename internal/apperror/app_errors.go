package apperror

import "errors"

var (
	ErrIllegalMove     = errors.New("illegal move")
	ErrNoLegalMoves    = errors.New("no legal moves")
	ErrNotYourTurn     = errors.New("it's not your turn")
	ErrNotFound        = errors.New("not found")
	ErrInvalidSnapshot = errors.New("invalid game snapshot")
	ErrInvalidSettings = errors.New("invalid settings")
	ErrInvalidTier     = errors.New("unknown ai difficulty")
	ErrInvalidMode     = errors.New("unknown game mode")
)
