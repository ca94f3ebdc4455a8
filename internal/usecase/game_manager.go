package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

type turn int

const (
	playerTurn turn = iota
	computerTurn
)

func (that turn) String() string {
	if that == playerTurn {
		return "player"
	}
	return "computer"
}

type mover interface {
	MakeTurn(ctx context.Context, board *entity.Board) (entity.Position, error)
}

type display interface {
	Println(text string) error
}

type GameManager struct {
	logger  *slog.Logger
	display display
	symbols entity.Symbols

	player   mover
	computer mover
}

func NewGameManager(logger *slog.Logger, display display, symbols entity.Symbols, player, computer mover) *GameManager {
	return &GameManager{
		logger:  logger.With("component", "game_manager"),
		display: display,
		symbols: symbols,

		player:   player,
		computer: computer,
	}
}

// Play - runs one game to its end: the player moves first, the board is
// shown before the first move and after every move, and the outcome is
// checked after every move.
func (that *GameManager) Play(ctx context.Context) (entity.Outcome, error) {
	log := that.logger.With("game_id", uuid.NewString())
	log.InfoContext(ctx, "game started")

	board := entity.NewBoard()
	if err := that.render(board); err != nil {
		return entity.InProgress, err
	}

	current := playerTurn
	for {
		if err := ctx.Err(); err != nil {
			log.InfoContext(ctx, "game interrupted", "turn", current)
			return entity.InProgress, fmt.Errorf("game interrupted: %w", err)
		}

		pos, err := that.moverFor(current).MakeTurn(ctx, board)
		if err != nil {
			return entity.InProgress, fmt.Errorf("failed %s turn: %w", current, err)
		}

		log.DebugContext(ctx, "move applied", "turn", current, "position", pos)

		if err = that.render(board); err != nil {
			return entity.InProgress, err
		}

		if outcome := tictactoe.CheckGameOver(board); outcome.IsFinished() {
			if err = that.display.Println(outcome.Message()); err != nil {
				return outcome, err
			}

			log.InfoContext(ctx, "game finished", "outcome", outcome)

			return outcome, nil
		}

		current = that.next(current)
	}
}

func (that *GameManager) moverFor(current turn) mover {
	if current == playerTurn {
		return that.player
	}
	return that.computer
}

func (that *GameManager) next(current turn) turn {
	if current == playerTurn {
		return computerTurn
	}
	return playerTurn
}

func (that *GameManager) render(board *entity.Board) error {
	if err := that.display.Println(board.Render(that.symbols)); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	return nil
}
