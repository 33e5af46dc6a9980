package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/gobblet-backend/internal/apperror"
	"github.com/rocketscienceinc/gobblet-backend/internal/entity"
	"github.com/rocketscienceinc/gobblet-backend/internal/gobblet"
	"github.com/rocketscienceinc/gobblet-backend/internal/pkg"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager keeps every running game keyed by session id.
// Calls for one id are serialized, different ids run in parallel.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	settings entity.Settings

	mu    sync.Mutex
	locks map[string]*gameLock
}

// gameLock is dropped from the map once refs falls to zero.
type gameLock struct {
	sync.Mutex
	refs int
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, settings entity.Settings) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
		settings: settings,

		locks: make(map[string]*gameLock),
	}
}

// lock - acquires the mutex of one game, the returned func releases it.
func (that *GameManager) lock(id string) func() {
	that.mu.Lock()
	entry, ok := that.locks[id]
	if !ok {
		entry = &gameLock{}
		that.locks[id] = entry
	}
	entry.refs++
	that.mu.Unlock()

	entry.Lock()

	return func() {
		entry.Unlock()

		that.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(that.locks, id)
		}
		that.mu.Unlock()
	}
}

func (that *GameManager) CreateGame(ctx context.Context) (*entity.Game, error) {
	if err := that.settings.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidSettings, err)
	}

	game := entity.NewGame(pkg.GenerateGameID(), that.settings)

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// GetOrCreateGame - returns the game for id, or a brand new one when id is empty or unknown.
func (that *GameManager) GetOrCreateGame(ctx context.Context, id string) (*entity.Game, error) {
	if id == "" {
		return that.CreateGame(ctx)
	}

	game, err := that.GetGame(ctx, id)
	if errors.Is(err, apperror.ErrGameNotFound) {
		return that.CreateGame(ctx)
	}

	if err != nil {
		return nil, err
	}

	return game, nil
}

// TakeTurn - plays one action for whoever is to move in the game.
// A rejected action is reported through the outcome, err covers storage failures only.
func (that *GameManager) TakeTurn(ctx context.Context, id string, action gobblet.Action) (*entity.Game, gobblet.Outcome, error) {
	log := that.logger.With("method", "TakeTurn", "gameID", id)

	unlock := that.lock(id)
	defer unlock()

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, gobblet.Outcome{}, err
	}

	player := game.Turn
	outcome := gobblet.TakeTurn(game, action)

	log.Info("turn taken", "player", player, "action", action.String(), "status", outcome.Status())

	if outcome.Kind == gobblet.InvalidAction {
		log.Debug("action rejected", "reason", outcome.Err)
		return game, outcome, nil
	}

	log.Debug("game state", "board", game.Board, "inventory", game.Inventory)

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, gobblet.Outcome{}, fmt.Errorf("failed to update game: %w", err)
	}

	return game, outcome, nil
}

// ResetGame - starts the game over regardless of its state.
func (that *GameManager) ResetGame(ctx context.Context, id string) (*entity.Game, error) {
	unlock := that.lock(id)
	defer unlock()

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	gobblet.Reset(game)

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	that.logger.Info("game reset", "gameID", id)

	return game, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	unlock := that.lock(id)
	defer unlock()

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "gameID", id)

	return nil
}
