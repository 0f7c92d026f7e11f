package engine

import (
	"io"
	"sync"
	"time"
)

// VibrationPattern is played when a rest period ends: buzz, pause, buzz.
var VibrationPattern = []time.Duration{200 * time.Millisecond, 100 * time.Millisecond, 200 * time.Millisecond}

// Notifier announces the end of a rest period. Implementations are best
// effort: they must not block for long and report nothing back.
type Notifier interface {
	Sound()
	Vibrate(pattern []time.Duration)
}

// NoopNotifier discards every notification.
type NoopNotifier struct{}

func (NoopNotifier) Sound()                  {}
func (NoopNotifier) Vibrate([]time.Duration) {}

// TerminalNotifier rings the terminal bell. Terminals cannot vibrate, so
// Vibrate does nothing.
type TerminalNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

// NewTerminalNotifier writes the bell character to w (usually os.Stderr).
func NewTerminalNotifier(w io.Writer) *TerminalNotifier {
	return &TerminalNotifier{w: w}
}

func (n *TerminalNotifier) Sound() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.w == nil {
		return
	}
	_, _ = io.WriteString(n.w, "\a")
}

func (n *TerminalNotifier) Vibrate([]time.Duration) {}

// notifySafely runs fn and swallows any panic from a misbehaving notifier.
func notifySafely(fn func()) {
	defer func() { _ = recover() }()
	fn()
}
