package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

// RunApp - plays one game on stdin/stdout. SIGINT and SIGTERM stop it at any point,
// including a pending read, and count as a clean shutdown.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	terminal := console.New(os.Stdin, os.Stdout)
	random := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint: gosec // it's ok

	outcome, err := Run(ctx, logger, conf, terminal, random)
	if errors.Is(err, context.Canceled) {
		log.Info("Game interrupted")
		return nil
	}

	if err != nil {
		return err
	}

	log.Info("Game over", "outcome", outcome)

	return nil
}

// Run - wires the game from its dependencies and plays it.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, terminal *console.Console, random service.Randomizer) (entity.Outcome, error) {
	symbols := entity.Symbols{
		Player:   conf.Symbols.Player,
		Computer: conf.Symbols.Computer,
	}

	playerService := service.NewPlayerService(logger, terminal, conf.Pacing.InvalidMoveDelay)
	botService := service.NewBotService(logger, terminal, random, service.Thinking{
		Frames:     conf.Pacing.ThinkingFrames,
		FrameDelay: conf.Pacing.ThinkingFrameDelay,
	})

	gameManager := usecase.NewGameManager(logger, terminal, symbols, playerService, botService)

	outcome, err := gameManager.Play(ctx)
	if err != nil {
		return outcome, fmt.Errorf("game failed: %w", err)
	}

	return outcome, nil
}

// NewLogger - JSON logs on w at the configured level.
func NewLogger(w io.Writer, level string) *slog.Logger {
	var slogLevel slog.Level

	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slogLevel}))
}
