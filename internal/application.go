package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/config"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/repository"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/repository/storage/sqlite"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/service"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/tui"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	sqliteStorage, err := sqlite.New(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open history storage: %w", err)
	}

	defer func() {
		if err = sqliteStorage.Close(); err != nil {
			log.Error("could not close history storage", "error", err)
		}
	}()

	if err = sqliteStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init history storage: %w", err)
	}

	historyRepo := repository.NewHistoryRepository(sqliteStorage.Connection)

	// redis is optional: without it the game simply cannot be resumed
	// across restarts.
	var sessionRepo repository.SessionRepository
	if addr := conf.Redis.GetRedisAddr(); addr != "" {
		redisStorage, redisErr := storage.NewRedisStorage(ctx, addr)
		if redisErr != nil {
			log.Warn("could not connect to redis storage, resume disabled", "error", redisErr)
		} else {
			defer func() {
				if closeErr := redisStorage.Close(); closeErr != nil {
					log.Error("could not close redis storage", "error", closeErr)
				}
			}()

			sessionRepo = repository.NewSessionRepository(redisStorage.Connection)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // it's ok
	botService := service.NewBotService(rng)
	gameManager := usecase.NewGameManager(logger, historyRepo, sessionRepo, botService)

	resumed := false
	if _, resumeErr := gameManager.ResumeGame(ctx); resumeErr == nil {
		resumed = true
		log.Info("resumed unfinished game")
	} else {
		gameManager.NewGame(ctx, conf.DefaultMode)
	}

	log.Info("Starting UI")

	program := tea.NewProgram(tui.New(ctx, gameManager, resumed), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err = program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("UI error: %w", err)
	}

	return nil
}
