// Package workflow drives a diagnosis session through its three data-collection
// steps and the scoring run that follows them.
//
// The Controller owns the session state. Every transition is applied under one
// lock, so concurrent callers always observe a state some sequence of accepted
// actions could have produced. While a scoring run is outstanding the
// controller rejects every action, including Reset; this keeps exactly one
// computation in flight and means its results always land on the session that
// requested them.
package workflow

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rare-disease-dx/internal/domain"
	"github.com/rare-disease-dx/internal/profile"
)

// Scorer ranks candidate conditions for a profile. *matching.Engine satisfies it.
type Scorer interface {
	Score(profile domain.PatientProfile) []domain.MatchResult
}

// Options configures a Controller.
type Options struct {
	// Delay is applied before scoring starts, once per computation.
	Delay  time.Duration
	Logger *logrus.Logger
}

// Outcome reports what Dispatch did with an action.
type Outcome struct {
	Accepted bool
	// Computation is set when the action started a scoring run.
	Computation *Computation
}

var stepNames = map[int]string{
	1: "Symptoms",
	2: "Genetic Markers",
	3: "Demographics",
}

// StepName returns the display label of a workflow step.
func StepName(step int) string {
	if name, ok := stepNames[step]; ok {
		return name
	}
	return fmt.Sprintf("Step %d", step)
}

// StepComplete reports whether the data for step is sufficient to advance.
func StepComplete(step int, p domain.PatientProfile) bool {
	switch step {
	case 1:
		return len(p.SelectedSymptomIDs) > 0
	case 2:
		return true
	case 3:
		return p.AgeRange != "" && p.Gender != ""
	default:
		return false
	}
}

// Controller is the session state machine.
type Controller struct {
	scorer Scorer
	delay  time.Duration
	logger *logrus.Logger

	mu       sync.Mutex
	step     int
	status   domain.Status
	acc      *profile.Accumulator
	results  []domain.MatchResult
	lastErr  string
	inflight *Computation
	seq      uint64

	notify *notifier
	wg     sync.WaitGroup
}

// NewController returns a Controller in the initial state.
func NewController(scorer Scorer, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.New()
	}
	c := &Controller{
		scorer: scorer,
		delay:  opts.Delay,
		logger: logger,
		notify: newNotifier(logger),
	}
	c.resetLocked()
	return c
}

// State returns a deep copy of the current session state.
func (c *Controller) State() domain.WorkflowState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// CanAdvance reports whether Advance would currently be accepted.
func (c *Controller) CanAdvance() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status == domain.EDITING && StepComplete(c.step, c.acc.Profile())
}

// Pending returns the outstanding computation, or nil when none is running.
func (c *Controller) Pending() *Computation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inflight
}

// Subscribe registers fn for every committed transition and returns a function
// that removes it. fn may call Dispatch; the resulting change is delivered after
// the one fn is handling.
func (c *Controller) Subscribe(fn Listener) func() {
	return c.notify.subscribe(fn)
}

// Dispatch applies a. Rejected actions leave the state untouched and notify no one.
// Unless a delivery is already in progress on another goroutine or in an
// enclosing listener, listeners have seen the change when Dispatch returns.
func (c *Controller) Dispatch(a Action) Outcome {
	if a == nil {
		return Outcome{}
	}
	c.mu.Lock()

	if c.status == domain.COMPUTING {
		c.mu.Unlock()
		c.logRejected(a, "computation in progress")
		return Outcome{}
	}

	var comp *Computation
	switch act := a.(type) {
	case UpdateSymptoms:
		c.acc.SetSymptoms(act.IDs)
	case UpdateGeneticMarkers:
		c.acc.SetGeneticMarkerText(act.Text)
	case UpdateDemographics:
		c.acc.SetDemographics(profile.Demographics{AgeRange: act.AgeRange, Gender: act.Gender})
	case ToggleFamilyHistory:
		c.acc.ToggleFamilyHistory(act.Category, act.Present)
	case Advance:
		if !StepComplete(c.step, c.acc.Profile()) {
			step := c.step
			c.mu.Unlock()
			c.logRejected(a, fmt.Sprintf("step %d incomplete", step))
			return Outcome{}
		}
		if c.step < domain.LastStep {
			c.step++
		} else {
			comp = c.startLocked()
		}
	case Retreat:
		if c.step <= domain.FirstStep {
			c.mu.Unlock()
			c.logRejected(a, "already at first step")
			return Outcome{}
		}
		c.step--
	case Reset:
		c.resetLocked()
	default:
		c.mu.Unlock()
		c.logRejected(a, "unknown action")
		return Outcome{}
	}

	seq, change := c.commitLocked(a.Kind())
	c.mu.Unlock()

	c.notify.deliver(seq, change, nil)
	return Outcome{Accepted: true, Computation: comp}
}

// Restore replaces the session with state, typically one loaded from a
// snapshot. A restored computing status is treated as editing, since the run
// that produced it no longer exists. Restore fails while a computation is running.
func (c *Controller) Restore(state domain.WorkflowState) error {
	if state.Step < domain.FirstStep || state.Step > domain.LastStep {
		return domain.NewValidationError("step", "out of range", state.Step)
	}

	c.mu.Lock()
	if c.status == domain.COMPUTING {
		c.mu.Unlock()
		return fmt.Errorf("cannot restore session: %w", ErrBusy)
	}

	c.step = state.Step
	c.status = domain.EDITING
	c.acc = profile.FromProfile(state.Profile)
	c.results = state.Clone().Results
	c.lastErr = state.LastError

	seq, change := c.commitLocked(KindRestore)
	c.mu.Unlock()

	c.notify.deliver(seq, change, nil)
	c.logger.WithFields(logrus.Fields{
		"step":     change.State.Step,
		"computed": change.State.Computed(),
	}).Info("Restored diagnosis session")
	return nil
}

// Close waits for an outstanding computation to finish and reach every listener.
func (c *Controller) Close() {
	c.wg.Wait()
}

func (c *Controller) resetLocked() {
	c.step = domain.FirstStep
	c.status = domain.EDITING
	c.acc = profile.NewAccumulator()
	c.results = nil
	c.lastErr = ""
}

func (c *Controller) stateLocked() domain.WorkflowState {
	s := domain.WorkflowState{
		Step:      c.step,
		Status:    c.status,
		Profile:   c.acc.Profile(),
		Results:   c.results,
		LastError: c.lastErr,
	}
	return s.Clone()
}

// commitLocked stamps the current state with the next delivery sequence number.
func (c *Controller) commitLocked(cause ActionKind) (uint64, StateChange) {
	seq := c.seq
	c.seq++
	return seq, StateChange{Cause: cause, State: c.stateLocked()}
}

// startLocked moves the session to computing and launches the scoring run on a
// copy of the profile as it is now.
func (c *Controller) startLocked() *Computation {
	c.status = domain.COMPUTING
	c.lastErr = ""
	comp := newComputation()
	c.inflight = comp
	captured := c.acc.Profile()

	c.wg.Add(1)
	go c.compute(comp, captured)
	return comp
}

func (c *Controller) compute(comp *Computation, p domain.PatientProfile) {
	if c.delay > 0 {
		timer := time.NewTimer(c.delay)
		<-timer.C
	}

	start := time.Now()
	results, err := c.runScorer(p)

	c.mu.Lock()
	c.status = domain.EDITING
	c.inflight = nil
	if err != nil {
		c.results = []domain.MatchResult{}
		c.lastErr = err.Error()
	} else {
		c.results = results
		c.lastErr = ""
	}
	seq, change := c.commitLocked(KindComputationDone)
	c.mu.Unlock()

	fields := logrus.Fields{
		"symptoms": len(p.SelectedSymptomIDs),
		"results":  len(change.State.Results),
		"duration": time.Since(start),
	}
	if err != nil {
		c.logger.WithFields(fields).WithError(err).Error("Diagnosis computation failed")
	} else {
		c.logger.WithFields(fields).Info("Diagnosis computation completed")
	}

	c.notify.deliver(seq, change, func() {
		comp.finish(change.State.Results, err)
		c.wg.Done()
	})
}

// runScorer converts a scorer panic into an error so the session is never
// left stuck in computing.
func (c *Controller) runScorer(p domain.PatientProfile) (results []domain.MatchResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			results = nil
			err = fmt.Errorf("%w: %v", ErrScoringFailed, r)
		}
	}()
	results = c.scorer.Score(p)
	if results == nil {
		results = []domain.MatchResult{}
	}
	return results, nil
}

func (c *Controller) logRejected(a Action, reason string) {
	c.logger.WithFields(logrus.Fields{
		"action": a.Kind(),
		"reason": reason,
	}).Debug("Action rejected")
}
