package cli

import (
	"fmt"
	"io"
	"sync"
)

// Notifier reports operation feedback to the user. Progress and Success are
// transient lines; Error is sticky — it stays pending until acknowledged, so
// a failure is never scrolled away unseen. The REPL acknowledges on the next
// command, after the pending marker has been shown in the prompt.
type Notifier interface {
	Progress(msg string)
	Success(msg string)
	Error(msg string)

	// Pending returns the last unacknowledged error message, "" if none.
	Pending() string

	// Ack clears the pending error.
	Ack()
}

// ConsoleNotifier writes feedback lines to w.
type ConsoleNotifier struct {
	mu  sync.Mutex
	w   io.Writer
	err string
}

func NewConsoleNotifier(w io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{w: w}
}

func (n *ConsoleNotifier) Progress(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintln(n.w, "... "+msg)
}

func (n *ConsoleNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintln(n.w, "ok: "+msg)
}

func (n *ConsoleNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.err = msg
	fmt.Fprintln(n.w, "error: "+msg)
}

func (n *ConsoleNotifier) Pending() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.err
}

func (n *ConsoleNotifier) Ack() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.err = ""
}
