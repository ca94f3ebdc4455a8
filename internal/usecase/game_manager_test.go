package usecase

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
	mockedService "github.com/rocketscienceinc/tictactoe-console/mocks/service"
	"github.com/rocketscienceinc/tictactoe-console/testing/suite"
)

const emptyBoard = " | | \n-+-+-\n | | \n-+-+-\n | | "

// newGameManager - player moves come from lines, computer moves from botPositions in order.
func newGameManager(t *testing.T, botPositions []entity.Position, lines ...string) (context.Context, *suite.Suite, *GameManager) {
	t.Helper()

	ctx, st := suite.New(t, lines...)

	random := mockedService.NewMockRandomizer(t)
	for _, pos := range botPositions {
		random.EXPECT().IntN(int(entity.MaxPosition)).Return(int(pos) - 1).Once()
	}

	playerService := service.NewPlayerService(st.Logger, st.Console, 0)
	botService := service.NewBotService(st.Logger, st.Console, random, service.Thinking{})

	return ctx, st, NewGameManager(st.Logger, st.Console, entity.DefaultSymbols, playerService, botService)
}

func TestGameManager_Play(t *testing.T) {
	t.Run("Player wins on the top row", func(t *testing.T) {
		// Given: the player plays 1, 2, 3 and the computer 4, 5
		ctx, st, manager := newGameManager(t, []entity.Position{4, 5}, "1", "2", "3")

		// When: the game is played
		outcome, err := manager.Play(ctx)

		// Then: the player won and the final board is shown before the message
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerWon, outcome)

		output := st.Output.String()
		assert.True(t, strings.HasPrefix(output, emptyBoard+"\n"+service.PromptMove))
		assert.True(t, strings.HasSuffix(output, "X|X|X\n-+-+-\nO|O| \n-+-+-\n | | \nYou Won!\n"))
	})

	t.Run("Board is rendered after every move", func(t *testing.T) {
		ctx, st, manager := newGameManager(t, []entity.Position{4, 5}, "1", "2", "3")

		_, err := manager.Play(ctx)
		require.NoError(t, err)

		// Then: the initial board plus one per move (five moves)
		assert.Equal(t, 6*2, strings.Count(st.Output.String(), "-+-+-"))
	})

	t.Run("Computer wins on the middle row", func(t *testing.T) {
		// Given: the player plays 1, 2, 9 and the computer 4, 5, 6
		ctx, st, manager := newGameManager(t, []entity.Position{4, 5, 6}, "1", "2", "9")

		// When: the game is played
		outcome, err := manager.Play(ctx)

		// Then: the computer won
		require.NoError(t, err)
		assert.Equal(t, entity.ComputerWon, outcome)
		assert.True(t, strings.HasSuffix(st.Output.String(), "X|X| \n-+-+-\nO|O|O\n-+-+-\n | |X\nComputer Won!\n"))
	})

	t.Run("Tie", func(t *testing.T) {
		// Given: moves that fill the board without a line
		ctx, st, manager := newGameManager(t, []entity.Position{2, 5, 7, 6}, "1", "3", "8", "4", "9")

		// When: the game is played
		outcome, err := manager.Play(ctx)

		// Then: the game ended in a tie
		require.NoError(t, err)
		assert.Equal(t, entity.Tie, outcome)
		assert.True(t, strings.HasSuffix(st.Output.String(), "X|O|X\n-+-+-\nX|O|O\n-+-+-\nO|X|X\nThe game ended in a tie!\n"))
	})

	t.Run("Winning move that fills the board", func(t *testing.T) {
		// Given: the player's ninth-move 3 completes the top row on a full board
		ctx, st, manager := newGameManager(t, []entity.Position{4, 5, 7, 9}, "6", "8", "1", "2", "3")

		// When: the game is played
		outcome, err := manager.Play(ctx)

		// Then: the win is reported, not the tie
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerWon, outcome)
		assert.True(t, strings.HasSuffix(st.Output.String(), "X|X|X\n-+-+-\nO|O|X\n-+-+-\nO|X|O\nYou Won!\n"))
		assert.NotContains(t, st.Output.String(), entity.MessageTie)
	})

	t.Run("Invalid input is retried", func(t *testing.T) {
		// Given: the player tries the computer's cell and garbage before each real move
		ctx, st, manager := newGameManager(t, []entity.Position{4, 5}, "1", "4", "abc", "2", "0", "3")

		// When: the game is played
		outcome, err := manager.Play(ctx)

		// Then: the game still ends with the player's win
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerWon, outcome)
		assert.Equal(t, 3, strings.Count(st.Output.String(), service.MessageInvalidMove))
	})

	t.Run("Input closed mid game", func(t *testing.T) {
		// Given: the player only types one move
		ctx, _, manager := newGameManager(t, []entity.Position{5}, "1")

		// When: the game is played
		outcome, err := manager.Play(ctx)

		// Then: the game stops with ErrInputClosed
		require.ErrorIs(t, err, apperror.ErrInputClosed)
		assert.Equal(t, entity.InProgress, outcome)
	})

	t.Run("Canceled before the first move", func(t *testing.T) {
		ctx, st, manager := newGameManager(t, nil, "1")

		// Given: a canceled context
		ctx, cancel := context.WithCancel(ctx)
		cancel()

		// When: the game is played
		outcome, err := manager.Play(ctx)

		// Then: only the empty board was shown
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, entity.InProgress, outcome)
		assert.Equal(t, emptyBoard+"\n", st.Output.String())
	})

	t.Run("Canceled while waiting for the player", func(t *testing.T) {
		ctx, st := suite.New(t)
		ctx, cancel := context.WithCancel(ctx)

		// Given: a game reading from a pipe the player never types into
		pr, pw := io.Pipe()
		defer pw.Close()

		out := &bytes.Buffer{}
		terminal := console.New(pr, out)
		random := mockedService.NewMockRandomizer(t)
		manager := NewGameManager(st.Logger, terminal, entity.DefaultSymbols,
			service.NewPlayerService(st.Logger, terminal, 0),
			service.NewBotService(st.Logger, terminal, random, service.Thinking{}))

		type result struct {
			outcome entity.Outcome
			err     error
		}
		done := make(chan result, 1)

		go func() {
			outcome, err := manager.Play(ctx)
			done <- result{outcome: outcome, err: err}
		}()

		// When: the game is canceled at the prompt
		time.Sleep(50 * time.Millisecond)
		cancel()

		// Then: Play returns promptly without a finished outcome
		select {
		case res := <-done:
			require.ErrorIs(t, res.err, context.Canceled)
			assert.Equal(t, entity.InProgress, res.outcome)
		case <-time.After(2 * time.Second):
			t.Fatal("Play did not return after cancel")
		}

		assert.Equal(t, emptyBoard+"\n"+service.PromptMove, out.String())
	})

	t.Run("Canceled while the computer is thinking", func(t *testing.T) {
		ctx, st := suite.New(t)
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		// Given: the player plays 1 and the first thinking frame cancels the game
		out := &bytes.Buffer{}
		terminal := console.New(strings.NewReader(suite.Script("1")), out, console.WithSleep(func(time.Duration) {
			cancel()
		}))
		random := mockedService.NewMockRandomizer(t)
		thinking := service.Thinking{Frames: 4, FrameDelay: time.Millisecond}
		manager := NewGameManager(st.Logger, terminal, entity.DefaultSymbols,
			service.NewPlayerService(st.Logger, terminal, 0),
			service.NewBotService(st.Logger, terminal, random, thinking))

		// When: the game is played
		outcome, err := manager.Play(ctx)

		// Then: the computer never moved
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, entity.InProgress, outcome)
		assert.True(t, strings.HasSuffix(out.String(), "X| | \n-+-+-\n | | \n-+-+-\n | | \nComputer is thinking\r"))
		assert.NotContains(t, out.String(), "Computer moved")
	})
}
