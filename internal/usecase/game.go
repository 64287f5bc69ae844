package usecase

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

//go:generate mockery --name=GameUseCase --output=../../mocks/transport --outpkg=transport --with-expecter

type GameUseCase interface {
	CurrentGame(ctx context.Context) (*entity.Game, error)
	StartGame(ctx context.Context, mode entity.Mode, tier entity.Tier) (*entity.Game, error)

	MakeTurn(ctx context.Context, cell int) (*TurnResult, error)
	MakeBotTurn(ctx context.Context) (*TurnResult, error)

	ResetScores(ctx context.Context) (*entity.Game, error)
	ClearGame(ctx context.Context) (*entity.Game, error)

	Leaderboard(ctx context.Context) ([]entity.Standing, error)
	ResetLeaderboard(ctx context.Context) ([]entity.Standing, error)

	Settings(ctx context.Context) (*entity.Settings, error)
	UpdateSettings(ctx context.Context, patch entity.SettingsPatch) (*entity.Settings, error)
	ResetSettings(ctx context.Context) (*entity.Settings, error)
}

// TurnResult is an accepted move together with the game it produced.
type TurnResult struct {
	Game  *entity.Game
	Mark  entity.Mark
	Cell  int
	State entity.TerminalState
}
