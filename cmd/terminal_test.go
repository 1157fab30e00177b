package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"
)

func TestTerminalDeviceNames(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		in  string
		out string
	}{
		"windows": {in: "CONIN$", out: "CONOUT$"},
		"linux":   {in: "/dev/tty", out: "/dev/tty"},
		"darwin":  {in: "/dev/tty", out: "/dev/tty"},
		"freebsd": {in: "/dev/tty", out: "/dev/tty"},
	}

	for goos, expected := range tests {
		t.Run(goos, func(t *testing.T) {
			t.Parallel()

			in, out := terminalDeviceNames(goos)
			require.Equal(t, expected.in, in)
			require.Equal(t, expected.out, out)
		})
	}
}

func TestOpenTerminalDevicesClosesInputWhenOutputFails(t *testing.T) {
	inPath := filepath.Join(t.TempDir(), "conin")
	require.NoError(t, os.WriteFile(inPath, nil, 0o600))

	var opened []*os.File
	orig := openFile
	openFile = func(name string, flag int, perm os.FileMode) (*os.File, error) {
		f, err := orig(name, flag, perm)
		if f != nil {
			opened = append(opened, f)
		}
		return f, err
	}
	t.Cleanup(func() { openFile = orig })

	in, out, err := openTerminalDevices(inPath, filepath.Join(t.TempDir(), "missing", "conout"))
	require.Error(t, err)
	require.Nil(t, in)
	require.Nil(t, out)
	require.Len(t, opened, 1)
	require.ErrorIs(t, opened[0].Close(), os.ErrClosed)
}

func TestOpenTerminalDevicesSharesSingleDevice(t *testing.T) {
	p := filepath.Join(t.TempDir(), "tty")
	require.NoError(t, os.WriteFile(p, nil, 0o600))

	in, out, err := openTerminalDevices(p, p)
	require.NoError(t, err)
	t.Cleanup(func() { _ = in.Close() })
	require.Same(t, in, out)
}

func swapPipeDetection(t *testing.T, stdin, stdout bool, open func() (*os.File, *os.File, error)) {
	t.Helper()
	origIn, origOut, origOpen := stdinIsPiped, stdoutIsPiped, openTerminalIOFn
	stdinIsPiped = func() bool { return stdin }
	stdoutIsPiped = func() bool { return stdout }
	openTerminalIOFn = open
	t.Cleanup(func() {
		stdinIsPiped, stdoutIsPiped, openTerminalIOFn = origIn, origOut, origOpen
	})
}

func TestGetProgramOptions_RedirectedUsesTTYAndCleansUp(t *testing.T) {
	for _, tc := range []struct {
		name          string
		stdin, stdout bool
	}{
		{name: "stdin piped", stdin: true},
		{name: "stdout captured", stdout: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			inFile, err := os.CreateTemp(t.TempDir(), "tty-in-*")
			require.NoError(t, err)
			outFile, err := os.CreateTemp(t.TempDir(), "tty-out-*")
			require.NoError(t, err)
			swapPipeDetection(t, tc.stdin, tc.stdout, func() (*os.File, *os.File, error) {
				return inFile, outFile, nil
			})

			opts, cleanup := getProgramOptions()
			require.NotNil(t, cleanup)
			require.GreaterOrEqual(t, len(opts), 1)

			// Both handles are closed; closing again fails.
			cleanup()
			require.Error(t, inFile.Close())
			require.Error(t, outFile.Close())
		})
	}
}

func TestGetProgramOptions_TerminalUsesDefaults(t *testing.T) {
	swapPipeDetection(t, false, false, func() (*os.File, *os.File, error) {
		return nil, nil, fmt.Errorf("should not be called")
	})

	opts, cleanup := getProgramOptions()
	require.NotNil(t, cleanup)
	require.Nil(t, opts)
	require.NotPanics(t, cleanup)
}

func TestGetProgramOptions_NoTTYFallsBack(t *testing.T) {
	swapPipeDetection(t, true, true, func() (*os.File, *os.File, error) {
		return nil, nil, fmt.Errorf("no controlling terminal")
	})

	opts, cleanup := getProgramOptions()
	require.Nil(t, opts)
	require.NotPanics(t, cleanup)
}

type fakeResizeTicker struct {
	ch <-chan time.Time
}

func (f *fakeResizeTicker) C() <-chan time.Time { return f.ch }
func (f *fakeResizeTicker) Stop()               {}

func makePipe(t *testing.T) (*os.File, *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	t.Cleanup(func() {
		_ = r.Close()
		_ = w.Close()
	})
	return r, w
}

// swapResizeWatcher installs fakes and returns the tick and message channels.
func swapResizeWatcher(t *testing.T, sizes func(call int32) (int, int)) (chan<- time.Time, <-chan tea.WindowSizeMsg) {
	t.Helper()
	origTermGetSize, origTicker, origSend := termGetSize, newResizeTicker, sendWindowSize
	t.Cleanup(func() {
		termGetSize, newResizeTicker, sendWindowSize = origTermGetSize, origTicker, origSend
	})

	calls := atomic.Int32{}
	termGetSize = func(_ int) (int, int, error) {
		w, h := sizes(calls.Add(1))
		return w, h, nil
	}
	ticks := make(chan time.Time, 3)
	newResizeTicker = func(time.Duration) resizeTicker {
		return &fakeResizeTicker{ch: ticks}
	}
	msgs := make(chan tea.WindowSizeMsg, 3)
	sendWindowSize = func(_ *tea.Program, msg tea.WindowSizeMsg) {
		msgs <- msg
	}
	return ticks, msgs
}

func recvResize(t *testing.T, msgs <-chan tea.WindowSizeMsg) tea.WindowSizeMsg {
	t.Helper()
	select {
	case m := <-msgs:
		return m
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("timed out waiting for resize message")
		return tea.WindowSizeMsg{}
	}
}

func TestWithTTYResizeWatcherSendsOnSizeChange(t *testing.T) {
	ticks, msgs := swapResizeWatcher(t, func(call int32) (int, int) {
		if call == 1 {
			return 80, 24
		}
		return 81, 24
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, out := makePipe(t)
	var p tea.Program
	withTTYResizeWatcher(ctx, out)(&p)

	ticks <- time.Now()
	ticks <- time.Now()

	require.Equal(t, tea.WindowSizeMsg{Width: 80, Height: 24}, recvResize(t, msgs))
	require.Equal(t, tea.WindowSizeMsg{Width: 81, Height: 24}, recvResize(t, msgs))
}

func TestWithTTYResizeWatcherSkipsUnchangedSize(t *testing.T) {
	ticks, msgs := swapResizeWatcher(t, func(call int32) (int, int) {
		if call <= 2 {
			return 80, 24
		}
		return 81, 24
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, out := makePipe(t)
	var p tea.Program
	withTTYResizeWatcher(ctx, out)(&p)

	ticks <- time.Now()
	require.Equal(t, tea.WindowSizeMsg{Width: 80, Height: 24}, recvResize(t, msgs))

	ticks <- time.Now()
	select {
	case m := <-msgs:
		t.Fatalf("unexpected resize message on unchanged size: %+v", m)
	case <-time.After(150 * time.Millisecond):
	}

	ticks <- time.Now()
	require.Equal(t, tea.WindowSizeMsg{Width: 81, Height: 24}, recvResize(t, msgs))
}

func TestWithTTYResizeWatcherIgnoresNilFile(t *testing.T) {
	var p tea.Program
	require.NotPanics(t, func() { withTTYResizeWatcher(context.Background(), nil)(&p) })
}
