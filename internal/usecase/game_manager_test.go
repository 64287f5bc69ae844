package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/notify"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-solo/mocks/usecase"
)

var (
	errRedisDown     = errors.New("redis down")
	errStorageIsFull = errors.New("storage is full")
)

type managerDeps struct {
	gameRepo        *mockedUseCase.MockgameRepoDep
	settingsRepo    *mockedUseCase.MocksettingsRepoDep
	leaderboardRepo *mockedUseCase.MockleaderboardRepoDep
	selector        *mockedUseCase.MockmoveSelectorDep
	notifier        *mockedUseCase.MocknotifierDep
}

func newTestManager(t *testing.T) (*GameManager, managerDeps) {
	deps := managerDeps{
		gameRepo:        mockedUseCase.NewMockgameRepoDep(t),
		settingsRepo:    mockedUseCase.NewMocksettingsRepoDep(t),
		leaderboardRepo: mockedUseCase.NewMockleaderboardRepoDep(t),
		selector:        mockedUseCase.NewMockmoveSelectorDep(t),
		notifier:        mockedUseCase.NewMocknotifierDep(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := NewGameManager(logger, deps.gameRepo, deps.settingsRepo, deps.leaderboardRepo, deps.selector, deps.notifier)

	return manager, deps
}

func snapshotOf(mode entity.Mode, current string, active bool, cells [entity.BoardSize]string) *entity.Snapshot {
	snapshot := &entity.Snapshot{
		ID:            "game-1",
		Board:         cells[:],
		CurrentPlayer: current,
		AITier:        string(entity.MediumTier),
		Active:        active,
	}

	if mode != entity.ModeNone {
		text := string(mode)
		snapshot.Mode = &text
	}

	return snapshot
}

func idleSnapshot() interface{} {
	return mock.MatchedBy(func(snapshot *entity.Snapshot) bool {
		return !snapshot.Active && snapshot.Mode == nil && snapshot.ID != ""
	})
}

func eventOfKind(kind notify.Kind) interface{} {
	return mock.MatchedBy(func(event notify.Event) bool {
		return event.Kind == kind
	})
}

func TestGameManager_CurrentGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns an idle game when nothing is saved", func(t *testing.T) {
		// Given: empty storage
		manager, deps := newTestManager(t)

		var saved *entity.Snapshot

		deps.gameRepo.EXPECT().Get(mock.Anything).Return(nil, apperror.ErrNotFound).Once()
		deps.settingsRepo.EXPECT().Get(mock.Anything).Return(nil, apperror.ErrNotFound).Once()
		deps.gameRepo.EXPECT().
			Save(mock.Anything, idleSnapshot()).
			Run(func(_ context.Context, snapshot *entity.Snapshot) { saved = snapshot }).
			Return(nil).
			Once()

		// When: CurrentGame is called
		game, err := manager.CurrentGame(ctx)

		// Then: an inactive session without a mode is returned and saved under its id
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, saved.ID, game.Session.ID)
		assert.NotEmpty(t, game.Session.ID)
		assert.False(t, game.Session.Active)
		assert.Equal(t, entity.ModeNone, game.Session.Mode)
		assert.Equal(t, entity.MarkX, game.Session.Turn)
		assert.Equal(t, entity.Board{}, game.Session.Board)
		assert.Equal(t, entity.DefaultTier, game.Tier)
	})

	t.Run("Resumes the saved game", func(t *testing.T) {
		// Given: a saved game in progress
		manager, deps := newTestManager(t)

		deps.gameRepo.EXPECT().
			Get(mock.Anything).
			Return(snapshotOf(entity.ModeAI, "x", true, [9]string{"x", "o", "", "", "", "", "", "", ""}), nil).
			Once()

		// When: CurrentGame is called
		game, err := manager.CurrentGame(ctx)

		// Then: the session matches the snapshot
		require.NoError(t, err)
		assert.Equal(t, "game-1", game.Session.ID)
		assert.Equal(t, entity.ModeAI, game.Session.Mode)
		assert.Equal(t, entity.MarkX, game.Session.Board[0])
		assert.Equal(t, entity.MarkO, game.Session.Board[1])
		assert.True(t, game.Session.Active)
	})

	t.Run("Falls back to an idle game on a malformed snapshot", func(t *testing.T) {
		// Given: a snapshot with two x marks and no o mark
		manager, deps := newTestManager(t)

		settings := entity.DefaultSettings()
		settings.AITier = entity.HardTier

		deps.gameRepo.EXPECT().
			Get(mock.Anything).
			Return(snapshotOf(entity.ModeAI, "o", true, [9]string{"x", "x", "", "", "", "", "", "", ""}), nil).
			Once()
		deps.settingsRepo.EXPECT().Get(mock.Anything).Return(&settings, nil).Once()
		deps.gameRepo.EXPECT().Save(mock.Anything, idleSnapshot()).Return(nil).Once()

		// When: CurrentGame is called
		game, err := manager.CurrentGame(ctx)

		// Then: no error is returned and the tier comes from the settings
		require.NoError(t, err)
		assert.False(t, game.Session.Active)
		assert.Equal(t, entity.HardTier, game.Tier)
	})

	t.Run("Keeps the id generated for a snapshot without one", func(t *testing.T) {
		// Given: a saved game in progress without an id
		manager, deps := newTestManager(t)

		snapshot := snapshotOf(entity.ModeAI, "x", true, [9]string{"x", "o", "", "", "", "", "", "", ""})
		snapshot.ID = ""

		var saved *entity.Snapshot

		deps.gameRepo.EXPECT().Get(mock.Anything).Return(snapshot, nil).Once()
		deps.gameRepo.EXPECT().
			Save(mock.Anything, mock.Anything).
			Run(func(_ context.Context, snapshot *entity.Snapshot) { saved = snapshot }).
			Return(nil).
			Once()

		// When: CurrentGame is called
		game, err := manager.CurrentGame(ctx)

		// Then: the generated id is saved with the rest of the game
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.NotEmpty(t, game.Session.ID)
		assert.Equal(t, game.Session.ID, saved.ID)
		assert.Equal(t, snapshot.Board, saved.Board)
		assert.True(t, saved.Active)
	})

	t.Run("Returns the error when the idle game cannot be saved", func(t *testing.T) {
		manager, deps := newTestManager(t)

		deps.gameRepo.EXPECT().Get(mock.Anything).Return(nil, apperror.ErrNotFound).Once()
		deps.settingsRepo.EXPECT().Get(mock.Anything).Return(nil, apperror.ErrNotFound).Once()
		deps.gameRepo.EXPECT().Save(mock.Anything, mock.Anything).Return(errStorageIsFull).Once()

		game, err := manager.CurrentGame(ctx)

		require.ErrorIs(t, err, errStorageIsFull)
		assert.Nil(t, game)
	})

	t.Run("Returns storage errors", func(t *testing.T) {
		manager, deps := newTestManager(t)

		deps.gameRepo.EXPECT().Get(mock.Anything).Return(nil, errRedisDown).Once()

		game, err := manager.CurrentGame(ctx)

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, game)
	})
}

func TestGameManager_StartGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Starts an ai game with the settings tier and keeps scores", func(t *testing.T) {
		// Given: a finished game with scores and saved settings on the hard tier
		manager, deps := newTestManager(t)

		finished := snapshotOf(entity.ModeAI, "x", false, [9]string{"x", "x", "x", "o", "o", "", "", "", ""})
		finished.Scores = entity.Scoreboard{X: 2, O: 1, Tie: 3}

		settings := entity.DefaultSettings()
		settings.AITier = entity.HardTier

		deps.settingsRepo.EXPECT().Get(mock.Anything).Return(&settings, nil).Once()
		deps.gameRepo.EXPECT().Get(mock.Anything).Return(finished, nil).Once()
		deps.gameRepo.EXPECT().
			Save(mock.Anything, mock.MatchedBy(func(snapshot *entity.Snapshot) bool {
				return snapshot.Active &&
					*snapshot.Mode == "ai" &&
					snapshot.AITier == "hard" &&
					snapshot.CurrentPlayer == "x" &&
					snapshot.Scores == entity.Scoreboard{X: 2, O: 1, Tie: 3}
			})).
			Return(nil).
			Once()

		// When: StartGame is called without a tier
		game, err := manager.StartGame(ctx, entity.ModeAI, "")

		// Then: a new active session is returned
		require.NoError(t, err)
		assert.NotEqual(t, "game-1", game.Session.ID)
		assert.Equal(t, entity.Board{}, game.Session.Board)
		assert.Equal(t, entity.HardTier, game.Tier)
		assert.Equal(t, entity.Scoreboard{X: 2, O: 1, Tie: 3}, game.Scores)
	})

	t.Run("Rejects a missing mode", func(t *testing.T) {
		manager, _ := newTestManager(t)

		_, err := manager.StartGame(ctx, entity.ModeNone, entity.EasyTier)

		require.ErrorIs(t, err, apperror.ErrInvalidMode)
	})

	t.Run("Rejects an unknown mode", func(t *testing.T) {
		manager, _ := newTestManager(t)

		_, err := manager.StartGame(ctx, entity.Mode("online"), entity.EasyTier)

		require.ErrorIs(t, err, apperror.ErrInvalidMode)
	})

	t.Run("Rejects an unknown tier", func(t *testing.T) {
		manager, _ := newTestManager(t)

		_, err := manager.StartGame(ctx, entity.ModeAI, entity.Tier("impossible"))

		require.ErrorIs(t, err, apperror.ErrInvalidTier)
	})

	t.Run("Returns save errors", func(t *testing.T) {
		manager, deps := newTestManager(t)

		deps.gameRepo.EXPECT().Get(mock.Anything).Return(nil, apperror.ErrNotFound).Once()
		deps.settingsRepo.EXPECT().Get(mock.Anything).Return(nil, apperror.ErrNotFound).Once()
		deps.gameRepo.EXPECT().Save(mock.Anything, mock.Anything).Return(errStorageIsFull).Once()

		_, err := manager.StartGame(ctx, entity.ModePlayer, entity.EasyTier)

		require.ErrorIs(t, err, errStorageIsFull)
	})
}

func TestGameManager_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Places the human mark and passes the turn", func(t *testing.T) {
		// Given: a fresh ai game
		manager, deps := newTestManager(t)

		deps.gameRepo.EXPECT().Get(mock.Anything).Return(snapshotOf(entity.ModeAI, "x", true, [9]string{}), nil).Once()
		deps.gameRepo.EXPECT().
			Save(mock.Anything, mock.MatchedBy(func(snapshot *entity.Snapshot) bool {
				return snapshot.Board[4] == "x" && snapshot.CurrentPlayer == "o" && snapshot.Active
			})).
			Return(nil).
			Once()
		deps.notifier.EXPECT().
			Publish(mock.MatchedBy(func(event notify.Event) bool {
				return event.Kind == notify.KindMove && event.Mark == entity.MarkX && event.Cell == 4
			})).
			Once()

		// When: X plays the center
		result, err := manager.MakeTurn(ctx, 4)

		// Then: the game continues with O to move
		require.NoError(t, err)
		assert.Equal(t, entity.MarkX, result.Mark)
		assert.Equal(t, 4, result.Cell)
		assert.False(t, result.State.IsTerminal())
		assert.True(t, result.Game.IsBotTurn())
	})

	t.Run("Rejects a move while the automated player is to move", func(t *testing.T) {
		// Given: an ai game waiting for O
		manager, deps := newTestManager(t)

		deps.gameRepo.EXPECT().
			Get(mock.Anything).
			Return(snapshotOf(entity.ModeAI, "o", true, [9]string{"", "", "", "", "x", "", "", "", ""}), nil).
			Once()

		// When: the human tries to move
		result, err := manager.MakeTurn(ctx, 0)

		// Then: ErrNotYourTurn is returned and nothing is saved
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Nil(t, result)
	})

	t.Run("Rejects an occupied cell without saving", func(t *testing.T) {
		manager, deps := newTestManager(t)

		deps.gameRepo.EXPECT().
			Get(mock.Anything).
			Return(snapshotOf(entity.ModePlayer, "o", true, [9]string{"", "", "", "", "x", "", "", "", ""}), nil).
			Once()

		_, err := manager.MakeTurn(ctx, 4)

		require.ErrorIs(t, err, apperror.ErrIllegalMove)
	})

	t.Run("Rejects moves before a mode is picked", func(t *testing.T) {
		manager, deps := newTestManager(t)

		deps.gameRepo.EXPECT().Get(mock.Anything).Return(nil, apperror.ErrNotFound).Once()
		deps.settingsRepo.EXPECT().Get(mock.Anything).Return(nil, apperror.ErrNotFound).Once()
		deps.gameRepo.EXPECT().Save(mock.Anything, idleSnapshot()).Return(nil).Once()

		_, err := manager.MakeTurn(ctx, 0)

		require.ErrorIs(t, err, apperror.ErrIllegalMove)
	})

	t.Run("Records a human win against the automated player", func(t *testing.T) {
		// Given: X can complete the top row
		manager, deps := newTestManager(t)

		deps.gameRepo.EXPECT().
			Get(mock.Anything).
			Return(snapshotOf(entity.ModeAI, "x", true, [9]string{"x", "x", "", "o", "o", "", "", "", ""}), nil).
			Once()
		deps.gameRepo.EXPECT().
			Save(mock.Anything, mock.MatchedBy(func(snapshot *entity.Snapshot) bool {
				return !snapshot.Active && snapshot.Scores == entity.Scoreboard{X: 1}
			})).
			Return(nil).
			Once()
		deps.leaderboardRepo.EXPECT().
			Apply(mock.Anything, []entity.RecordDelta{
				{Name: entity.HumanName, Record: entity.Record{Wins: 1}},
				{Name: "AI (Medium)", Record: entity.Record{Losses: 1}},
			}).
			Return(nil).
			Once()
		deps.notifier.EXPECT().Publish(eventOfKind(notify.KindMove)).Once()
		deps.notifier.EXPECT().Publish(eventOfKind(notify.KindWin)).Once()

		// When: X plays cell 2
		result, err := manager.MakeTurn(ctx, 2)

		// Then: the game is over and X is the winner
		require.NoError(t, err)
		assert.Equal(t, entity.Won(entity.MarkX), result.State)
		assert.False(t, result.Game.Session.Active)
		assert.Equal(t, entity.Scoreboard{X: 1}, result.Game.Scores)
	})

	t.Run("Records a win of O in player mode", func(t *testing.T) {
		// Given: O can complete the middle row
		manager, deps := newTestManager(t)

		deps.gameRepo.EXPECT().
			Get(mock.Anything).
			Return(snapshotOf(entity.ModePlayer, "o", true, [9]string{"x", "x", "", "o", "o", "", "x", "", ""}), nil).
			Once()
		deps.gameRepo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
		deps.leaderboardRepo.EXPECT().
			Apply(mock.Anything, []entity.RecordDelta{
				{Name: entity.PlayerXName, Record: entity.Record{Losses: 1}},
				{Name: entity.PlayerOName, Record: entity.Record{Wins: 1}},
			}).
			Return(nil).
			Once()
		deps.notifier.EXPECT().Publish(eventOfKind(notify.KindMove)).Once()
		deps.notifier.EXPECT().Publish(eventOfKind(notify.KindLose)).Once()

		// When: O plays cell 5
		result, err := manager.MakeTurn(ctx, 5)

		// Then: O wins
		require.NoError(t, err)
		assert.Equal(t, entity.Won(entity.MarkO), result.State)
		assert.Equal(t, entity.Scoreboard{O: 1}, result.Game.Scores)
	})

	t.Run("Finishes the game when the leaderboard is unavailable", func(t *testing.T) {
		// Given: the last cell of a drawn board
		manager, deps := newTestManager(t)

		deps.gameRepo.EXPECT().
			Get(mock.Anything).
			Return(snapshotOf(entity.ModeAI, "x", true, [9]string{"x", "o", "x", "x", "o", "o", "o", "x", ""}), nil).
			Once()
		deps.gameRepo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
		deps.leaderboardRepo.EXPECT().Apply(mock.Anything, mock.Anything).Return(errRedisDown).Once()
		deps.notifier.EXPECT().Publish(eventOfKind(notify.KindMove)).Once()
		deps.notifier.EXPECT().Publish(eventOfKind(notify.KindTie)).Once()

		// When: X fills the board
		result, err := manager.MakeTurn(ctx, 8)

		// Then: the draw is still reported
		require.NoError(t, err)
		assert.Equal(t, entity.Draw, result.State.Outcome)
		assert.Equal(t, entity.Scoreboard{Tie: 1}, result.Game.Scores)
	})
}

func TestGameManager_MakeBotTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Applies the selected move", func(t *testing.T) {
		// Given: a hard ai game where O is to move
		manager, deps := newTestManager(t)

		snapshot := snapshotOf(entity.ModeAI, "o", true, [9]string{"", "", "", "", "x", "", "", "", ""})
		snapshot.AITier = string(entity.HardTier)

		var board entity.Board
		board[4] = entity.MarkX

		deps.gameRepo.EXPECT().Get(mock.Anything).Return(snapshot, nil).Once()
		deps.selector.EXPECT().SelectMove(board, entity.MarkO, entity.HardTier).Return(0, nil).Once()
		deps.gameRepo.EXPECT().
			Save(mock.Anything, mock.MatchedBy(func(snapshot *entity.Snapshot) bool {
				return snapshot.Board[0] == "o" && snapshot.CurrentPlayer == "x"
			})).
			Return(nil).
			Once()
		deps.notifier.EXPECT().Publish(eventOfKind(notify.KindMove)).Once()

		// When: MakeBotTurn is called
		result, err := manager.MakeBotTurn(ctx)

		// Then: O took the corner
		require.NoError(t, err)
		assert.Equal(t, entity.MarkO, result.Mark)
		assert.Equal(t, 0, result.Cell)
		assert.False(t, result.Game.IsBotTurn())
	})

	t.Run("Rejects when the human is to move", func(t *testing.T) {
		manager, deps := newTestManager(t)

		deps.gameRepo.EXPECT().Get(mock.Anything).Return(snapshotOf(entity.ModeAI, "x", true, [9]string{}), nil).Once()

		_, err := manager.MakeBotTurn(ctx)

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Rejects in player mode", func(t *testing.T) {
		manager, deps := newTestManager(t)

		deps.gameRepo.EXPECT().
			Get(mock.Anything).
			Return(snapshotOf(entity.ModePlayer, "o", true, [9]string{"x", "", "", "", "", "", "", "", ""}), nil).
			Once()

		_, err := manager.MakeBotTurn(ctx)

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Rejects on a finished game", func(t *testing.T) {
		manager, deps := newTestManager(t)

		deps.gameRepo.EXPECT().
			Get(mock.Anything).
			Return(snapshotOf(entity.ModeAI, "x", false, [9]string{"x", "x", "x", "o", "o", "", "", "", ""}), nil).
			Once()

		_, err := manager.MakeBotTurn(ctx)

		require.ErrorIs(t, err, apperror.ErrIllegalMove)
	})

	t.Run("Returns selector errors", func(t *testing.T) {
		manager, deps := newTestManager(t)

		deps.gameRepo.EXPECT().
			Get(mock.Anything).
			Return(snapshotOf(entity.ModeAI, "o", true, [9]string{"x", "", "", "", "", "", "", "", ""}), nil).
			Once()
		deps.selector.EXPECT().
			SelectMove(mock.Anything, entity.MarkO, entity.MediumTier).
			Return(-1, apperror.ErrNoLegalMoves).
			Once()

		_, err := manager.MakeBotTurn(ctx)

		require.ErrorIs(t, err, apperror.ErrNoLegalMoves)
	})
}

func TestGameManager_ResetScores(t *testing.T) {
	// Given: a saved game with scores
	manager, deps := newTestManager(t)

	snapshot := snapshotOf(entity.ModeAI, "x", true, [9]string{})
	snapshot.Scores = entity.Scoreboard{X: 4, O: 2, Tie: 1}

	deps.gameRepo.EXPECT().Get(mock.Anything).Return(snapshot, nil).Once()
	deps.gameRepo.EXPECT().
		Save(mock.Anything, mock.MatchedBy(func(snapshot *entity.Snapshot) bool {
			return snapshot.Scores == entity.Scoreboard{} && snapshot.Active
		})).
		Return(nil).
		Once()

	// When: ResetScores is called
	game, err := manager.ResetScores(context.Background())

	// Then: the scores are zero and the session is untouched
	require.NoError(t, err)
	assert.Equal(t, entity.Scoreboard{}, game.Scores)
	assert.Equal(t, "game-1", game.Session.ID)
}

func TestGameManager_ClearGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Replaces the saved game with an idle one", func(t *testing.T) {
		// Given: settings on the easy tier
		manager, deps := newTestManager(t)

		settings := entity.DefaultSettings()
		settings.AITier = entity.EasyTier

		deps.gameRepo.EXPECT().Delete(mock.Anything).Return(nil).Once()
		deps.settingsRepo.EXPECT().Get(mock.Anything).Return(&settings, nil).Once()
		deps.gameRepo.EXPECT().
			Save(mock.Anything, mock.MatchedBy(func(snapshot *entity.Snapshot) bool {
				return !snapshot.Active && snapshot.Mode == nil && snapshot.Scores == entity.Scoreboard{}
			})).
			Return(nil).
			Once()

		// When: ClearGame is called
		game, err := manager.ClearGame(ctx)

		// Then: an idle game without scores is returned
		require.NoError(t, err)
		assert.False(t, game.Session.Active)
		assert.Equal(t, entity.EasyTier, game.Tier)
		assert.Equal(t, entity.Scoreboard{}, game.Scores)
	})

	t.Run("Returns delete errors", func(t *testing.T) {
		manager, deps := newTestManager(t)

		deps.gameRepo.EXPECT().Delete(mock.Anything).Return(errRedisDown).Once()

		game, err := manager.ClearGame(ctx)

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, game)
	})
}

func TestGameManager_Leaderboard(t *testing.T) {
	ctx := context.Background()

	t.Run("Ranks the rows", func(t *testing.T) {
		manager, deps := newTestManager(t)

		deps.leaderboardRepo.EXPECT().
			GetAll(mock.Anything).
			Return(entity.Leaderboard{
				entity.HumanName:               {Wins: 1, Losses: 3},
				entity.AIName(entity.HardTier): {Wins: 3, Losses: 1},
			}, nil).
			Once()

		standings, err := manager.Leaderboard(ctx)

		require.NoError(t, err)
		require.Len(t, standings, 2)
		assert.Equal(t, "AI (Hard)", standings[0].Name)
		assert.Equal(t, 1, standings[0].Rank)
		assert.Equal(t, entity.HumanName, standings[1].Name)
	})

	t.Run("Reset recreates the rows", func(t *testing.T) {
		manager, deps := newTestManager(t)

		deps.leaderboardRepo.EXPECT().Reset(mock.Anything).Return(nil).Once()
		deps.leaderboardRepo.EXPECT().GetAll(mock.Anything).Return(entity.DefaultLeaderboard(), nil).Once()

		standings, err := manager.ResetLeaderboard(ctx)

		require.NoError(t, err)
		assert.Len(t, standings, 4)
		for _, standing := range standings {
			assert.Equal(t, entity.Record{}, standing.Record)
		}
	})

	t.Run("Reset returns storage errors", func(t *testing.T) {
		manager, deps := newTestManager(t)

		deps.leaderboardRepo.EXPECT().Reset(mock.Anything).Return(errRedisDown).Once()

		_, err := manager.ResetLeaderboard(ctx)

		require.ErrorIs(t, err, errRedisDown)
	})
}

func TestGameManager_Settings(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults when nothing is saved", func(t *testing.T) {
		manager, deps := newTestManager(t)

		deps.settingsRepo.EXPECT().Get(mock.Anything).Return(nil, apperror.ErrNotFound).Once()

		settings, err := manager.Settings(ctx)

		require.NoError(t, err)
		assert.Equal(t, entity.DefaultSettings(), *settings)
	})

	t.Run("Update merges the patch into the saved settings", func(t *testing.T) {
		// Given: saved settings with the hard tier
		manager, deps := newTestManager(t)

		current := entity.DefaultSettings()
		current.AITier = entity.HardTier

		musicEnabled := false
		expected := current
		expected.MusicEnabled = false

		deps.settingsRepo.EXPECT().Get(mock.Anything).Return(&current, nil).Once()
		deps.settingsRepo.EXPECT().Save(mock.Anything, &expected).Return(nil).Once()

		// When: only the music flag is sent
		updated, err := manager.UpdateSettings(ctx, entity.SettingsPatch{MusicEnabled: &musicEnabled})

		// Then: the other fields keep their saved values
		require.NoError(t, err)
		assert.Equal(t, expected, *updated)
	})

	t.Run("Update starts from the defaults when nothing is saved", func(t *testing.T) {
		manager, deps := newTestManager(t)

		tier := entity.EasyTier
		expected := entity.DefaultSettings()
		expected.AITier = tier

		deps.settingsRepo.EXPECT().Get(mock.Anything).Return(nil, apperror.ErrNotFound).Once()
		deps.settingsRepo.EXPECT().Save(mock.Anything, &expected).Return(nil).Once()

		updated, err := manager.UpdateSettings(ctx, entity.SettingsPatch{AITier: &tier})

		require.NoError(t, err)
		assert.Equal(t, expected, *updated)
	})

	t.Run("Update rejects invalid settings", func(t *testing.T) {
		manager, deps := newTestManager(t)

		gridColor := "grey"

		deps.settingsRepo.EXPECT().Get(mock.Anything).Return(nil, apperror.ErrNotFound).Once()

		_, err := manager.UpdateSettings(ctx, entity.SettingsPatch{GridColor: &gridColor})

		require.ErrorIs(t, err, apperror.ErrInvalidSettings)
	})

	t.Run("Reset deletes the saved settings", func(t *testing.T) {
		manager, deps := newTestManager(t)

		deps.settingsRepo.EXPECT().Delete(mock.Anything).Return(nil).Once()

		settings, err := manager.ResetSettings(ctx)

		require.NoError(t, err)
		assert.Equal(t, entity.DefaultSettings(), *settings)
	})
}
