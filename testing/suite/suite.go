package suite

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
)

const (
	maxWaitDuration = 10 * time.Second

	seed1 = 42
	seed2 = 1024
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Console *console.Console
	Output  *bytes.Buffer
	Rand    *rand.Rand

	// Pauses records every pacing delay requested through Console.
	Pauses []time.Duration
}

// New - builds a console fed with the given lines and writing into Output.
// Pacing delays are recorded, never slept.
func New(t *testing.T, lines ...string) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	st := &Suite{
		T:      t,
		Logger: slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})),
		Output: &bytes.Buffer{},
		Rand:   rand.New(rand.NewPCG(seed1, seed2)), //nolint: gosec // deterministic on purpose
	}

	st.Console = console.New(strings.NewReader(Script(lines...)), st.Output, console.WithSleep(func(d time.Duration) {
		st.Pauses = append(st.Pauses, d)
	}))

	return ctx, st
}

// Script - joins lines the way a user would type them.
func Script(lines ...string) string {
	if len(lines) == 0 {
		return ""
	}

	return strings.Join(lines, "\n") + "\n"
}
