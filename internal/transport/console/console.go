package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Console - line-oriented terminal: one line per read, plain text writes.
// Not safe for concurrent use; the game loop is its only user.
type Console struct {
	scanner *bufio.Scanner
	writer  *bufio.Writer
	sleep   func(time.Duration)

	// lines is fed by a single reader goroutine, started on the first read,
	// so a read abandoned on cancel never loses a line.
	lines      chan line
	readerOnce sync.Once
}

type line struct {
	text string
	err  error
}

type Option func(*Console)

// WithSleep - replaces the pacing sleep, tests pass a no-op.
func WithSleep(sleep func(time.Duration)) Option {
	return func(that *Console) {
		that.sleep = sleep
	}
}

func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	console := &Console{
		scanner: bufio.NewScanner(in),
		writer:  bufio.NewWriter(out),
		sleep:   time.Sleep,
		lines:   make(chan line, 1),
	}

	for _, opt := range opts {
		opt(console)
	}

	return console
}

// ReadLine - blocks until a full line is read or ctx is done.
// End of input is ErrInputClosed.
func (that *Console) ReadLine(ctx context.Context) (string, error) {
	that.readerOnce.Do(func() {
		go that.readLines()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case next, ok := <-that.lines:
		if !ok {
			return "", apperror.ErrInputClosed
		}

		return next.text, next.err
	}
}

func (that *Console) readLines() {
	defer close(that.lines)

	for that.scanner.Scan() {
		that.lines <- line{text: strings.TrimSuffix(that.scanner.Text(), "\r")}
	}

	if err := that.scanner.Err(); err != nil {
		that.lines <- line{err: fmt.Errorf("failed to read line: %w", err)}
	}
}

// Print - writes text without a newline and flushes, so prompts show before a read.
func (that *Console) Print(text string) error {
	if _, err := that.writer.WriteString(text); err != nil {
		return fmt.Errorf("failed to write: %w", err)
	}

	if err := that.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush: %w", err)
	}

	return nil
}

func (that *Console) Println(text string) error {
	return that.Print(text + "\n")
}

// Pause - fixed UX delay, not cancellable. Non-positive durations return at once.
func (that *Console) Pause(d time.Duration) {
	if d <= 0 {
		return
	}

	that.sleep(d)
}
