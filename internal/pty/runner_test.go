package pty

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openOrSkip(t *testing.T) *Terminal {
	t.Helper()
	term, err := Open(Size{Rows: 24, Cols: 80})
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	t.Cleanup(func() { term.Close() })
	return term
}

func TestTerminal_ExpectSeesProgramOutput(t *testing.T) {
	term := openOrSkip(t)

	_, err := io.WriteString(term.Tty(), "\x1b[1mhello\x1b[0m toast\r\n")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, term.Expect(ctx, "hello toast"))
}

func TestTerminal_ExpectTimesOut(t *testing.T) {
	term := openOrSkip(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := term.Expect(ctx, "never")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTerminal_Resize(t *testing.T) {
	term := openOrSkip(t)
	assert.NoError(t, term.Resize(Size{Rows: 40, Cols: 120}))
}

func TestTerminal_CloseTwice(t *testing.T) {
	term := openOrSkip(t)
	assert.NoError(t, term.Close())
	assert.NoError(t, term.Close())
}
