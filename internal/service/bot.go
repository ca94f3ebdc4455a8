package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const thinkingMessage = "Computer is thinking"

// Randomizer - satisfied by *rand.Rand from math/rand/v2.
type Randomizer interface {
	IntN(n int) int
}

// Thinking - the animation shown before the computer moves.
type Thinking struct {
	Frames     int
	FrameDelay time.Duration
}

type BotService interface {
	MakeTurn(ctx context.Context, board *entity.Board) (entity.Position, error)
}

type botService struct {
	logger   *slog.Logger
	terminal terminal
	random   Randomizer
	thinking Thinking
}

func NewBotService(logger *slog.Logger, terminal terminal, random Randomizer, thinking Thinking) BotService {
	return &botService{
		logger:   logger.With("component", "bot"),
		terminal: terminal,
		random:   random,
		thinking: thinking,
	}
}

// MakeTurn - samples positions 1-9 uniformly until one is a valid move and plays it.
func (that *botService) MakeTurn(ctx context.Context, board *entity.Board) (entity.Position, error) {
	if board.CountEmpty() == 0 {
		return 0, apperror.ErrNoAvailableMoves
	}

	if err := that.think(ctx); err != nil {
		return 0, err
	}

	var (
		input    string
		attempts int
	)
	for {
		attempts++
		input = entity.Position(that.random.IntN(int(entity.MaxPosition)) + 1).String()
		if tictactoe.IsValidMove(board, input) {
			break
		}
	}

	pos, err := tictactoe.MakeTurn(board, input, entity.ComputerCell)
	if err != nil {
		return 0, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.DebugContext(ctx, "bot picked position", "position", pos, "attempts", attempts)

	if err = that.terminal.Println("\rComputer moved: " + pos.String() + "      "); err != nil {
		return 0, err
	}

	return pos, nil
}

// think - each frame ends in "\r" so the next one overwrites it.
// Stops between frames once ctx is done.
func (that *botService) think(ctx context.Context) error {
	var message strings.Builder
	message.WriteString(thinkingMessage)

	for range that.thinking.Frames {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("computer turn canceled: %w", err)
		}

		if err := that.terminal.Print(message.String() + "\r"); err != nil {
			return err
		}

		message.WriteString(".")
		that.terminal.Pause(that.thinking.FrameDelay)
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("computer turn canceled: %w", err)
	}

	return nil
}
