package snapshot

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rare-disease-dx/internal/catalog"
	"github.com/rare-disease-dx/internal/domain"
	"github.com/rare-disease-dx/internal/matching"
	"github.com/rare-disease-dx/internal/profile"
	"github.com/rare-disease-dx/internal/workflow"
)

type pureScorer struct{}

func (pureScorer) Score(p domain.PatientProfile) []domain.MatchResult {
	return matching.Score(p, catalog.MustDefault())
}

// reachableStates drives a controller through a full session and records
// every committed state.
func reachableStates(t *testing.T) []domain.WorkflowState {
	t.Helper()
	c := workflow.NewController(pureScorer{}, workflow.Options{Logger: quietLogger()})
	var (
		mu     sync.Mutex
		states []domain.WorkflowState
	)
	c.Subscribe(func(change workflow.StateChange) {
		mu.Lock()
		defer mu.Unlock()
		states = append(states, change.State)
	})

	c.Dispatch(workflow.UpdateSymptoms{IDs: []string{"neuro_003", "neuro_004", "neuro_005", "neuro_007", "neuro_010"}})
	c.Dispatch(workflow.Advance{})
	c.Dispatch(workflow.UpdateGeneticMarkers{Text: "HTT CAG expansion"})
	c.Dispatch(workflow.Advance{})
	c.Dispatch(workflow.ToggleFamilyHistory{Category: "Neurological disorders", Present: true})
	c.Dispatch(workflow.UpdateDemographics{AgeRange: profile.StringPtr("30-50"), Gender: profile.StringPtr("Male")})
	outcome := c.Dispatch(workflow.Advance{})
	require.NotNil(t, outcome.Computation)
	<-outcome.Computation.Done()
	c.Dispatch(workflow.Retreat{})

	// A run that keeps nothing is still a computed state.
	c.Dispatch(workflow.Reset{})
	c.Dispatch(workflow.UpdateSymptoms{IDs: []string{"endo_003"}})
	c.Dispatch(workflow.Advance{})
	c.Dispatch(workflow.Advance{})
	c.Dispatch(workflow.UpdateDemographics{AgeRange: profile.StringPtr("0-5"), Gender: profile.StringPtr("Other")})
	outcome = c.Dispatch(workflow.Advance{})
	require.NotNil(t, outcome.Computation)
	<-outcome.Computation.Done()

	// Free-form text is stored verbatim, including bytes that are not UTF-8.
	c.Dispatch(workflow.UpdateGeneticMarkers{Text: "HTT\xff\xfe"})

	mu.Lock()
	defer mu.Unlock()
	return states
}

func TestSession_RoundTripReachableStates(t *testing.T) {
	states := reachableStates(t)
	require.NotEmpty(t, states)
	var sawEmpty, sawResults, sawComputing bool

	for name, factory := range storeFactories() {
		t.Run(name, func(t *testing.T) {
			session := NewSession(factory(t), quietLogger())
			for _, state := range states {
				_, err := session.Save(context.Background(), state)
				require.NoError(t, err)

				loaded, ok := session.Load(context.Background())

				require.True(t, ok)
				assert.Equal(t, state, loaded)
				sawEmpty = sawEmpty || (state.Computed() && len(state.Results) == 0)
				sawResults = sawResults || len(state.Results) > 0
				sawComputing = sawComputing || state.Status == domain.COMPUTING
			}
		})
	}

	assert.True(t, sawEmpty, "empty computed results must be covered")
	assert.True(t, sawResults)
	assert.True(t, sawComputing)
}

func TestSession_LoadAbsent(t *testing.T) {
	session := NewSession(NewMemoryStore(), quietLogger())

	_, ok := session.Load(context.Background())

	assert.False(t, ok)
}

func TestSession_CorruptSnapshotIsAbsent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Put(ctx, []byte(`{"version":1,"state":`)))
	session := NewSession(store, quietLogger())
	idBefore := session.ID()

	_, ok := session.Load(ctx)

	assert.False(t, ok)
	assert.Equal(t, idBefore, session.ID())
}

func TestSession_StoreErrorIsAbsent(t *testing.T) {
	session := NewSession(&failingStore{err: errors.New("permission denied")}, quietLogger())

	_, ok := session.Load(context.Background())

	assert.False(t, ok)
}

func TestSession_SaveTokenAndAdoptedID(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session-default.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	first := NewSession(store, quietLogger())
	fixed := time.Date(2026, 5, 4, 3, 2, 1, 0, time.UTC)
	first.now = func() time.Time { return fixed }

	// Act
	token, err := first.Save(ctx, sampleState())
	require.NoError(t, err)

	second := NewSession(store, quietLogger())
	_, ok := second.Load(ctx)

	// Assert
	require.True(t, ok)
	assert.Equal(t, first.ID(), token.SessionID)
	assert.True(t, fixed.Equal(token.SavedAt))
	assert.Equal(t, first.ID(), second.ID())
	_, err = uuid.Parse(token.SessionID)
	assert.NoError(t, err)
	assert.Contains(t, token.String(), token.SessionID)
}

func TestSession_SaveInvalidState(t *testing.T) {
	session := NewSession(NewMemoryStore(), quietLogger())
	state := sampleState()
	state.Status = "done"

	_, err := session.Save(context.Background(), state)

	assert.ErrorIs(t, err, domain.ErrInvalidSnapshot)
}

func TestSession_SaveStoreError(t *testing.T) {
	session := NewSession(&failingStore{err: errors.New("disk full")}, quietLogger())

	_, err := session.Save(context.Background(), sampleState())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestSession_ClearRotatesID(t *testing.T) {
	ctx := context.Background()
	session := NewSession(NewMemoryStore(), quietLogger())
	_, err := session.Save(ctx, sampleState())
	require.NoError(t, err)
	before := session.ID()

	require.NoError(t, session.Clear(ctx))

	_, ok := session.Load(ctx)
	assert.False(t, ok)
	assert.NotEqual(t, before, session.ID())
}
