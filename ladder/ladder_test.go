package ladder_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/weavesolve/bfs"
	"github.com/katalvlaran/weavesolve/dictionary"
	"github.com/katalvlaran/weavesolve/ladder"
)

func newEmbedded(t *testing.T, opts ...ladder.Option) *ladder.Ladder {
	t.Helper()
	l, err := ladder.New(dictionary.Embedded(), opts...)
	require.NoError(t, err)
	return l
}

// TestSolve_Embedded checks known ladders over the built-in dictionary.
func TestSolve_Embedded(t *testing.T) {
	l := newEmbedded(t)
	assert.Equal(t, 4, l.WordLength())

	cases := []struct {
		start, stop string
		want        []string
	}{
		{"cold", "warm", []string{"cold", "cord", "card", "ward", "warm"}},
		{"head", "tail", []string{"head", "heal", "hell", "hall", "hail", "tail"}},
		{"love", "hate", []string{"love", "cove", "cave", "have", "hate"}},
		{"COLD", " Warm ", []string{"cold", "cord", "card", "ward", "warm"}},
		{"card", "card", []string{"card"}},
	}
	for _, tc := range cases {
		t.Run(tc.start+"→"+tc.stop, func(t *testing.T) {
			path, err := l.Solve(context.Background(), tc.start, tc.stop)
			require.NoError(t, err)
			assert.Equal(t, tc.want, path)
		})
	}
}

// TestSolve_Errors maps each failure to its sentinel.
func TestSolve_Errors(t *testing.T) {
	l := newEmbedded(t)
	ctx := context.Background()

	_, err := l.Solve(ctx, "qzxj", "warm")
	require.ErrorIs(t, err, bfs.ErrInvalidWord)
	var werr *bfs.WordError
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, "qzxj", werr.Word)

	_, err = l.Solve(ctx, "cold", "warmer")
	assert.ErrorIs(t, err, ladder.ErrLengthMismatch)

	// "able" has no neighbors in the built-in list.
	_, err = l.Solve(ctx, "cold", "able")
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

// TestSolve_MaxDepth turns ladders beyond the bound into ErrNoPath.
func TestSolve_MaxDepth(t *testing.T) {
	l := newEmbedded(t, ladder.WithMaxDepth(3))

	_, err := l.Solve(context.Background(), "cold", "warm")
	assert.ErrorIs(t, err, bfs.ErrNoPath)

	path, err := l.Solve(context.Background(), "cold", "card")
	require.NoError(t, err)
	assert.Len(t, path, 3)
}

// TestNew_Validation rejects unusable dictionaries and options.
func TestNew_Validation(t *testing.T) {
	_, err := ladder.New(nil)
	assert.ErrorIs(t, err, dictionary.ErrEmpty)

	_, err = ladder.New([]string{"cold", "colder"})
	assert.ErrorIs(t, err, dictionary.ErrMixedLength)

	_, err = ladder.New([]string{"cold"}, ladder.WithMaxDepth(-2))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestSolve_Concurrent shares one Ladder across goroutines.
func TestSolve_Concurrent(t *testing.T) {
	l := newEmbedded(t)
	want := []string{"cold", "cord", "card", "ward", "warm"}

	const workers = 16
	results := make([][]string, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = l.Solve(context.Background(), "cold", "warm")
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, want, results[i])
	}
}

// TestSolve_Logs emits debug records through the supplied logger.
func TestSolve_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l := newEmbedded(t, ladder.WithLogger(logger))

	_, err := l.Solve(context.Background(), "cold", "warm")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "word graph built")
	assert.Contains(t, out, "ladder found")
	assert.Contains(t, out, "steps=4")
}
