package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/notify"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
)

//go:generate mockery --name="gameRepoDep|settingsRepoDep|leaderboardRepoDep|moveSelectorDep|notifierDep" --output=../../mocks/usecase --outpkg=usecase --with-expecter

type gameRepoDep interface {
	Save(ctx context.Context, snapshot *entity.Snapshot) error
	Get(ctx context.Context) (*entity.Snapshot, error)
	Delete(ctx context.Context) error
}

type settingsRepoDep interface {
	Save(ctx context.Context, settings *entity.Settings) error
	Get(ctx context.Context) (*entity.Settings, error)
	Delete(ctx context.Context) error
}

type leaderboardRepoDep interface {
	Apply(ctx context.Context, deltas []entity.RecordDelta) error
	GetAll(ctx context.Context) (entity.Leaderboard, error)
	Reset(ctx context.Context) error
}

type moveSelectorDep interface {
	SelectMove(board entity.Board, mark entity.Mark, tier entity.Tier) (int, error)
}

type notifierDep interface {
	Publish(event notify.Event)
}

var _ GameUseCase = (*GameManager)(nil)

// GameManager runs the single local game. Every exported method holds mu for its whole duration,
// so moves submitted concurrently are applied one after another.
type GameManager struct {
	logger *slog.Logger
	mu     sync.Mutex

	gameRepo        gameRepoDep
	settingsRepo    settingsRepoDep
	leaderboardRepo leaderboardRepoDep
	selector        moveSelectorDep
	notifier        notifierDep
}

func NewGameManager(
	logger *slog.Logger,
	gameRepo gameRepoDep,
	settingsRepo settingsRepoDep,
	leaderboardRepo leaderboardRepoDep,
	selector moveSelectorDep,
	notifier notifierDep,
) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo:        gameRepo,
		settingsRepo:    settingsRepo,
		leaderboardRepo: leaderboardRepo,
		selector:        selector,
		notifier:        notifier,
	}
}

// CurrentGame - returns the saved game, or a fresh one waiting for a mode when nothing usable is saved.
func (that *GameManager) CurrentGame(ctx context.Context) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.loadGame(ctx)
}

// StartGame - begins a new session and keeps the scores of the previous one.
// An empty tier means the difficulty from the settings.
func (that *GameManager) StartGame(ctx context.Context, mode entity.Mode, tier entity.Tier) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "StartGame")

	if _, err := entity.ParseMode(string(mode)); err != nil {
		return nil, err
	}

	if mode == entity.ModeNone {
		return nil, fmt.Errorf("%w: mode is required", apperror.ErrInvalidMode)
	}

	if tier == "" {
		settings, err := that.loadSettings(ctx)
		if err != nil {
			return nil, err
		}

		tier = settings.AITier
	}

	if _, err := entity.ParseTier(string(tier)); err != nil {
		return nil, err
	}

	previous, err := that.loadGame(ctx)
	if err != nil {
		return nil, err
	}

	game := &entity.Game{
		Session: tictactoe.NewSession(mode),
		Tier:    tier,
		Scores:  previous.Scores,
	}

	if err = that.saveGame(ctx, game); err != nil {
		return nil, err
	}

	log.Info("game started", "game_id", game.Session.ID, "mode", mode, "tier", tier)

	return game, nil
}

// MakeTurn - applies the move of the human side to move.
func (that *GameManager) MakeTurn(ctx context.Context, cell int) (*TurnResult, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.loadGame(ctx)
	if err != nil {
		return nil, err
	}

	if game.IsBotTurn() {
		return nil, apperror.ErrNotYourTurn
	}

	return that.applyMove(ctx, game, cell)
}

// MakeBotTurn - asks the selector for the automated player's move and applies it.
func (that *GameManager) MakeBotTurn(ctx context.Context) (*TurnResult, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.loadGame(ctx)
	if err != nil {
		return nil, err
	}

	if !game.Session.Active {
		return nil, fmt.Errorf("%w: session is not active", apperror.ErrIllegalMove)
	}

	if !game.IsBotTurn() {
		return nil, fmt.Errorf("%w: automated player is not to move", apperror.ErrNotYourTurn)
	}

	cell, err := that.selector.SelectMove(game.Session.Board, entity.BotMark, game.Tier)
	if err != nil {
		return nil, fmt.Errorf("failed to select move: %w", err)
	}

	return that.applyMove(ctx, game, cell)
}

// ResetScores - zeroes the scoreboard of the current game.
func (that *GameManager) ResetScores(ctx context.Context) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.loadGame(ctx)
	if err != nil {
		return nil, err
	}

	game.Scores = entity.Scoreboard{}
	if err = that.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

// ClearGame - forgets the saved game together with its scores and returns a new idle game.
func (that *GameManager) ClearGame(ctx context.Context) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.gameRepo.Delete(ctx); err != nil {
		return nil, fmt.Errorf("failed to delete game: %w", err)
	}

	game, err := that.newIdleGame(ctx)
	if err != nil {
		return nil, err
	}

	that.logger.With("method", "ClearGame").Info("game cleared", "game_id", game.Session.ID)

	return game, nil
}

func (that *GameManager) Leaderboard(ctx context.Context) ([]entity.Standing, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rankedLeaderboard(ctx)
}

func (that *GameManager) ResetLeaderboard(ctx context.Context) ([]entity.Standing, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.leaderboardRepo.Reset(ctx); err != nil {
		return nil, fmt.Errorf("failed to reset leaderboard: %w", err)
	}

	return that.rankedLeaderboard(ctx)
}

func (that *GameManager) Settings(ctx context.Context) (*entity.Settings, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.loadSettings(ctx)
}

// UpdateSettings - writes the patch over the current settings and saves the result.
func (that *GameManager) UpdateSettings(ctx context.Context, patch entity.SettingsPatch) (*entity.Settings, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	current, err := that.loadSettings(ctx)
	if err != nil {
		return nil, err
	}

	settings := patch.Apply(*current)
	if err = settings.Validate(); err != nil {
		return nil, err
	}

	if err = that.settingsRepo.Save(ctx, &settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return &settings, nil
}

// ResetSettings - forgets the saved settings, the defaults apply afterwards.
func (that *GameManager) ResetSettings(ctx context.Context) (*entity.Settings, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.settingsRepo.Delete(ctx); err != nil {
		return nil, fmt.Errorf("failed to delete settings: %w", err)
	}

	settings := entity.DefaultSettings()

	return &settings, nil
}

func (that *GameManager) applyMove(ctx context.Context, game *entity.Game, cell int) (*TurnResult, error) {
	mark := game.Session.Turn

	session, state, err := tictactoe.ApplyMove(game.Session, cell)
	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	game.Session = session

	if state.IsTerminal() {
		game.Scores.Record(state)
	}

	if err = that.saveGame(ctx, game); err != nil {
		return nil, err
	}

	that.notifier.Publish(notify.MoveEvent(session, mark, cell))

	if state.IsTerminal() {
		that.finishGame(ctx, game, state, cell)
	}

	return &TurnResult{
		Game:  game,
		Mark:  mark,
		Cell:  cell,
		State: state,
	}, nil
}

// finishGame - records a finished game on the leaderboard and announces the result.
func (that *GameManager) finishGame(ctx context.Context, game *entity.Game, state entity.TerminalState, cell int) {
	log := that.logger.With("method", "finishGame", "game_id", game.Session.ID)

	deltas := entity.LeaderboardUpdate(game.Session.Mode, game.Tier, state)
	if err := that.leaderboardRepo.Apply(ctx, deltas); err != nil {
		log.Error("failed to update leaderboard", "error", err)
	}

	that.notifier.Publish(notify.ResultEvent(game.Session, state, cell))

	log.Info("game finished", "result", state.String(), "scores", game.Scores)
}

func (that *GameManager) loadGame(ctx context.Context) (*entity.Game, error) {
	log := that.logger.With("method", "loadGame")

	snapshot, err := that.gameRepo.Get(ctx)
	if errors.Is(err, apperror.ErrNotFound) {
		return that.newIdleGame(ctx)
	}

	if errors.Is(err, apperror.ErrInvalidSnapshot) {
		log.Warn("saved game is unreadable, starting over", "error", err)
		return that.newIdleGame(ctx)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	game, err := tictactoe.Resume(*snapshot)
	if err != nil {
		log.Warn("saved game is malformed, starting over", "error", err)
		return that.newIdleGame(ctx)
	}

	// Resume generated the id, keep it for the next read.
	if snapshot.ID == "" {
		if err = that.saveGame(ctx, &game); err != nil {
			return nil, err
		}
	}

	return &game, nil
}

// newIdleGame - an empty inactive session, the state before a mode is picked.
// It is saved right away so every read reports the same id.
func (that *GameManager) newIdleGame(ctx context.Context) (*entity.Game, error) {
	settings, err := that.loadSettings(ctx)
	if err != nil {
		return nil, err
	}

	session := tictactoe.NewSession(entity.ModeNone)
	session.Active = false

	game := &entity.Game{
		Session: session,
		Tier:    settings.AITier,
	}

	if err = that.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

func (that *GameManager) saveGame(ctx context.Context, game *entity.Game) error {
	snapshot := tictactoe.Serialize(*game)
	if err := that.gameRepo.Save(ctx, &snapshot); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

func (that *GameManager) loadSettings(ctx context.Context) (*entity.Settings, error) {
	settings, err := that.settingsRepo.Get(ctx)
	if errors.Is(err, apperror.ErrNotFound) {
		defaults := entity.DefaultSettings()
		return &defaults, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return settings, nil
}

func (that *GameManager) rankedLeaderboard(ctx context.Context) ([]entity.Standing, error) {
	leaderboard, err := that.leaderboardRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return leaderboard.Ranked(), nil
}
