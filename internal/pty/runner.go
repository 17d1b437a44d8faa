// Package pty opens pseudo-terminals for driving Bubble Tea programs in tests.
package pty

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"github.com/creack/pty"
)

// Size represents terminal dimensions in rows and columns.
type Size struct {
	Rows uint16
	Cols uint16
}

// Terminal is a pseudo-terminal pair. Programs under test read from and write
// to Tty; the test side types into and reads the screen stream from the master.
type Terminal struct {
	master *os.File
	tty    *os.File

	mu     sync.Mutex
	out    bytes.Buffer
	notify chan struct{}
	done   chan struct{}
	closed bool
}

// Open allocates a pseudo-terminal of the given size and starts collecting
// everything written to it.
func Open(size Size) (*Terminal, error) {
	master, tty, err := pty.Open()
	if err != nil {
		return nil, fmt.Errorf("open pty: %w", err)
	}
	if err := pty.Setsize(master, &pty.Winsize{Rows: size.Rows, Cols: size.Cols}); err != nil {
		master.Close()
		tty.Close()
		return nil, fmt.Errorf("set pty size: %w", err)
	}
	t := &Terminal{
		master: master,
		tty:    tty,
		notify: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	go t.collect()
	return t, nil
}

// Tty returns the slave side, suitable for tea.WithInput and tea.WithOutput.
func (t *Terminal) Tty() *os.File {
	return t.tty
}

// Resize changes the terminal dimensions. The program receives SIGWINCH.
func (t *Terminal) Resize(size Size) error {
	return pty.Setsize(t.master, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
}

// Type sends input as if typed at the keyboard.
func (t *Terminal) Type(s string) error {
	_, err := io.WriteString(t.master, s)
	return err
}

// Output returns everything written so far with escape sequences removed.
func (t *Terminal) Output() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return ansi.Strip(t.out.String())
}

// Expect blocks until the stripped output contains want or ctx is done.
func (t *Terminal) Expect(ctx context.Context, want string) error {
	for {
		if strings.Contains(t.Output(), want) {
			return nil
		}
		select {
		case <-t.notify:
		case <-t.done:
			if strings.Contains(t.Output(), want) {
				return nil
			}
			return fmt.Errorf("terminal closed before %q appeared", want)
		case <-ctx.Done():
			return fmt.Errorf("waiting for %q: %w", want, ctx.Err())
		}
	}
}

// Close releases both ends of the pair.
func (t *Terminal) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	t.mu.Unlock()

	err := t.tty.Close()
	if mErr := t.master.Close(); err == nil {
		err = mErr
	}
	return err
}

func (t *Terminal) collect() {
	defer close(t.done)
	buf := make([]byte, 4096)
	for {
		n, err := t.master.Read(buf)
		if n > 0 {
			t.mu.Lock()
			t.out.Write(buf[:n])
			t.mu.Unlock()
			select {
			case t.notify <- struct{}{}:
			default:
			}
		}
		if err != nil {
			return
		}
	}
}
