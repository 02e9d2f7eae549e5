package snapshot

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rare-disease-dx/internal/workflow"
)

const writeTimeout = 5 * time.Second

// Writer keeps the slot in step with a workflow controller. States past the
// first step are saved after every committed change; Reset clears the slot.
// Step 1 states are never written, so a fresh visit does not resume stale data.
type Writer struct {
	session *Session
	logger  *logrus.Logger

	mu        sync.Mutex
	lastToken Token
	saved     bool
	failures  int
}

// NewWriter returns a Writer saving through session.
func NewWriter(session *Session, logger *logrus.Logger) *Writer {
	if logger == nil {
		logger = logrus.New()
	}
	return &Writer{session: session, logger: logger}
}

// Attach subscribes the writer to c and returns the unsubscribe function.
func (w *Writer) Attach(c *workflow.Controller) func() {
	return c.Subscribe(w.Observe)
}

// Observe handles one committed state change.
func (w *Writer) Observe(change workflow.StateChange) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if change.Cause == workflow.KindReset {
		if err := w.session.Clear(ctx); err != nil {
			w.fail(err, change)
			return
		}
		w.mu.Lock()
		w.saved = false
		w.lastToken = Token{}
		w.mu.Unlock()
		return
	}

	if change.State.Step <= 1 {
		return
	}

	token, err := w.session.Save(ctx, change.State)
	if err != nil {
		w.fail(err, change)
		return
	}

	w.mu.Lock()
	w.lastToken = token
	w.saved = true
	w.mu.Unlock()
}

// LastToken returns the token of the most recent save since the last reset.
func (w *Writer) LastToken() (Token, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastToken, w.saved
}

// Failures returns how many writes have failed.
func (w *Writer) Failures() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.failures
}

func (w *Writer) fail(err error, change workflow.StateChange) {
	w.mu.Lock()
	w.failures++
	w.mu.Unlock()

	w.logger.WithError(err).WithFields(logrus.Fields{
		"cause": change.Cause,
		"step":  change.State.Step,
	}).Warn("Failed to persist session snapshot")
}
