package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const (
	PromptMove         = "Where would you like to play?(0-9): "
	MessageInvalidMove = "Invalid Move! Please try another move."
)

type PlayerService interface {
	MakeTurn(ctx context.Context, board *entity.Board) (entity.Position, error)
}

type terminal interface {
	ReadLine(ctx context.Context) (string, error)
	Print(text string) error
	Println(text string) error
	Pause(d time.Duration)
}

type playerService struct {
	logger   *slog.Logger
	terminal terminal

	invalidMoveDelay time.Duration
}

func NewPlayerService(logger *slog.Logger, terminal terminal, invalidMoveDelay time.Duration) PlayerService {
	return &playerService{
		logger:           logger.With("component", "player"),
		terminal:         terminal,
		invalidMoveDelay: invalidMoveDelay,
	}
}

// MakeTurn - prompts until a valid position is entered, then places the player's cell there.
func (that *playerService) MakeTurn(ctx context.Context, board *entity.Board) (entity.Position, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("player turn canceled: %w", err)
		}

		if err := that.terminal.Print(PromptMove); err != nil {
			return 0, err
		}

		input, err := that.terminal.ReadLine(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to read player move: %w", err)
		}

		pos, err := tictactoe.MakeTurn(board, input, entity.PlayerCell)
		if err == nil {
			return pos, nil
		}

		if !errors.Is(err, apperror.ErrInvalidMove) {
			return 0, fmt.Errorf("failed to make player turn: %w", err)
		}

		that.logger.DebugContext(ctx, "rejected player input", "input", input, "error", err)

		if err = that.terminal.Println(MessageInvalidMove); err != nil {
			return 0, err
		}

		that.terminal.Pause(that.invalidMoveDelay)
	}
}
