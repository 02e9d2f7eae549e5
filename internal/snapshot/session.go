package snapshot

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rare-disease-dx/internal/domain"
)

// Token identifies one saved snapshot.
type Token struct {
	SessionID string
	SavedAt   time.Time
}

func (t Token) String() string {
	return fmt.Sprintf("%s@%s", t.SessionID, t.SavedAt.Format(time.RFC3339Nano))
}

// Session saves and loads the workflow state of one diagnosis session.
type Session struct {
	store  Store
	logger *logrus.Logger
	now    func() time.Time

	mu sync.Mutex
	id string
}

// NewSession returns a Session writing to store under a fresh session id.
func NewSession(store Store, logger *logrus.Logger) *Session {
	if logger == nil {
		logger = logrus.New()
	}
	return &Session{
		store:  store,
		logger: logger,
		now:    time.Now,
		id:     uuid.NewString(),
	}
}

// ID returns the session id stamped on saved snapshots.
func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// Save writes state to the slot, replacing any previous snapshot.
func (s *Session) Save(ctx context.Context, state domain.WorkflowState) (Token, error) {
	token := Token{SessionID: s.ID(), SavedAt: s.now().UTC()}

	data, err := Encode(token.SessionID, state, token.SavedAt)
	if err != nil {
		return Token{}, err
	}
	if err := s.store.Put(ctx, data); err != nil {
		return Token{}, fmt.Errorf("failed to save snapshot: %w", err)
	}
	return token, nil
}

// Load returns the saved state. ok is false when the slot is empty, unreadable
// or holds a snapshot that does not match the current shape; the cause is
// logged and never returned. A loaded snapshot's session id is adopted so that
// later saves continue the same session.
func (s *Session) Load(ctx context.Context) (state domain.WorkflowState, ok bool) {
	data, err := s.store.Get(ctx)
	if errors.Is(err, domain.ErrSnapshotAbsent) {
		return domain.WorkflowState{}, false
	}
	if err != nil {
		s.logger.WithError(err).Warn("Snapshot unavailable, starting fresh session")
		return domain.WorkflowState{}, false
	}

	env, err := Decode(data)
	if err != nil {
		s.logger.WithError(err).WithField("bytes", len(data)).Warn("Discarding unreadable snapshot")
		return domain.WorkflowState{}, false
	}

	s.mu.Lock()
	s.id = env.SessionID
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"session_id": env.SessionID,
		"saved_at":   env.SavedAt,
		"step":       env.State.Step,
	}).Debug("Loaded snapshot")
	return env.State, true
}

// Clear empties the slot and starts a new session id.
func (s *Session) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}
	s.mu.Lock()
	s.id = uuid.NewString()
	s.mu.Unlock()
	return nil
}
