package tui

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/jask/jaskfocus/internal/timer"
)

// notice is one queued host notification.
type notice struct {
	text string
	sev  timer.Severity
}

// hostBridge implements timer.Host for the shell. Notices queue up during a
// synchronous machine call and are drained into the status bar by Update.
// Sound playback runs on its own goroutine so a slow or absent audio server
// cannot stall the event loop; its failure is logged and otherwise discarded.
type hostBridge struct {
	logger *slog.Logger
	play   func() error
	queue  []notice
}

func (b *hostBridge) ShowNotice(text string, sev timer.Severity) {
	b.queue = append(b.queue, notice{text: text, sev: sev})
}

func (b *hostBridge) PlayCompletionSound() error {
	if b.play == nil {
		return nil
	}
	go func() {
		if err := b.play(); err != nil {
			b.logger.Warn("completion sound failed", "err", err)
		}
	}()
	return nil
}

// drain hands the queued notices over exactly once.
func (b *hostBridge) drain() []notice {
	q := b.queue
	b.queue = nil
	return q
}

func newSessionID() string { return uuid.NewString() }
