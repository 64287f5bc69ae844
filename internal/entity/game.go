package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
)

// Mode tells who plays MarkO.
type Mode string

const (
	ModeNone   Mode = ""
	ModeAI     Mode = "ai"
	ModePlayer Mode = "player"
)

func ParseMode(text string) (Mode, error) {
	switch mode := Mode(text); mode {
	case ModeNone, ModeAI, ModePlayer:
		return mode, nil
	default:
		return ModeNone, fmt.Errorf("%w: %q", apperror.ErrInvalidMode, text)
	}
}

// IsWithBot - MarkO is played by the move selector.
func (that Mode) IsWithBot() bool {
	return that == ModeAI
}

// Tier is the difficulty of the automated player.
type Tier string

const (
	EasyTier   Tier = "easy"
	MediumTier Tier = "medium"
	HardTier   Tier = "hard"

	DefaultTier = MediumTier
)

func ParseTier(text string) (Tier, error) {
	switch tier := Tier(text); tier {
	case EasyTier, MediumTier, HardTier:
		return tier, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidTier, text)
	}
}

// Title returns the capitalized tier name used in leaderboard rows.
func (that Tier) Title() string {
	switch that {
	case EasyTier:
		return "Easy"
	case MediumTier:
		return "Medium"
	case HardTier:
		return "Hard"
	default:
		return string(that)
	}
}

type Outcome uint8

const (
	Continuing Outcome = iota
	Win
	Draw
)

func (that Outcome) String() string {
	switch that {
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "continuing"
	}
}

// TerminalState is the result of evaluating a board. Winner is set only for Win.
type TerminalState struct {
	Outcome Outcome
	Winner  Mark
}

func Won(mark Mark) TerminalState {
	return TerminalState{Outcome: Win, Winner: mark}
}

func (that TerminalState) IsTerminal() bool {
	return that.Outcome != Continuing
}

func (that TerminalState) String() string {
	if that.Outcome == Win {
		return fmt.Sprintf("win(%s)", that.Winner)
	}

	return that.Outcome.String()
}

// Session is the mutable state of one game. Once Active is false it only changes through a new session.
type Session struct {
	ID     string `json:"id"`
	Board  Board  `json:"board"`
	Turn   Mark   `json:"turn"`
	Active bool   `json:"active"`
	Mode   Mode   `json:"mode"`
}

// Scoreboard counts finished games per outcome.
type Scoreboard struct {
	X   int `json:"x"`
	O   int `json:"o"`
	Tie int `json:"tie"`
}

// Record - increments the counter matching a terminal state. Continuing is ignored.
func (that *Scoreboard) Record(state TerminalState) {
	switch {
	case state.Outcome == Draw:
		that.Tie++
	case state.Outcome == Win && state.Winner == MarkX:
		that.X++
	case state.Outcome == Win && state.Winner == MarkO:
		that.O++
	}
}

// Game is everything the persistence collaborator stores about the current match.
type Game struct {
	Session Session    `json:"session"`
	Tier    Tier       `json:"tier"`
	Scores  Scoreboard `json:"scores"`
}

// BotMark is the mark played by the automated player in ai mode.
const BotMark = MarkO

// IsBotTurn reports whether the automated player should move next.
func (that *Game) IsBotTurn() bool {
	return that.Session.Active && that.Session.Mode.IsWithBot() && that.Session.Turn == BotMark
}
