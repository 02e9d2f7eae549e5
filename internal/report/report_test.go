package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rare-disease-dx/internal/catalog"
	"github.com/rare-disease-dx/internal/domain"
	"github.com/rare-disease-dx/internal/matching"
)

var generatedAt = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

func huntingtonState() domain.WorkflowState {
	state := domain.NewWorkflowState()
	state.Step = 3
	state.Profile.SelectedSymptomIDs = []string{"neuro_003", "neuro_004", "neuro_005", "neuro_007", "neuro_010"}
	state.Profile.AgeRange = "30-50"
	state.Profile.Gender = "Male"
	state.Results = matching.Score(state.Profile, catalog.MustDefault())
	return state
}

func TestBuild(t *testing.T) {
	// Act
	r := Build(huntingtonState(), generatedAt)

	// Assert
	assert.True(t, r.Completed)
	assert.Equal(t, 5, r.ResultCount)
	assert.Equal(t, 5, r.SymptomsAnalyzed)
	// 93 is the only result at or above 60
	assert.Equal(t, 1, r.HighConfidenceCount)
	assert.Equal(t, Disclaimer, r.Disclaimer)
	require.Len(t, r.Results, 5)

	top := r.Results[0]
	assert.Equal(t, 1, top.Rank)
	assert.Equal(t, "disease_001", top.ConditionID)
	assert.Equal(t, 93, top.Confidence)
	assert.Equal(t, matching.HIGH, top.Level)
	assert.Equal(t, 5, r.Results[4].Rank)
	assert.Equal(t, matching.LOW, r.Results[4].Level)
}

func TestBuild_NotComputed(t *testing.T) {
	state := domain.NewWorkflowState()

	r := Build(state, generatedAt)

	assert.False(t, r.Completed)
	assert.Zero(t, r.ResultCount)
	assert.NotNil(t, r.Results)
	assert.Empty(t, r.Results)
}

func TestBuild_ComputedEmpty(t *testing.T) {
	state := domain.NewWorkflowState()
	state.Step = 3
	state.Profile.SelectedSymptomIDs = []string{"endo_003"}
	state.Results = []domain.MatchResult{}

	r := Build(state, generatedAt)

	assert.True(t, r.Completed)
	assert.Zero(t, r.ResultCount)
	assert.Equal(t, 1, r.SymptomsAnalyzed)
}

func TestBuild_DoesNotShareSlices(t *testing.T) {
	state := huntingtonState()
	r := Build(state, generatedAt)

	r.Results[0].RiskFactors[0] = "mutated"

	assert.Equal(t, matching.RiskGeneticPredisposition, state.Results[0].RiskFactors[0])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer

	err := WriteJSON(&buf, Build(huntingtonState(), generatedAt))

	require.NoError(t, err)
	var decoded Export
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, ExportVersion, decoded.Version)
	assert.Equal(t, 5, decoded.Report.ResultCount)
	assert.True(t, generatedAt.Equal(decoded.Report.GeneratedAt))
	assert.Contains(t, buf.String(), "\n  \"report\"")
}

func TestWriteText(t *testing.T) {
	tests := []struct {
		name  string
		state domain.WorkflowState
		want  []string
	}{
		{
			name:  "completed",
			state: huntingtonState(),
			want:  []string{"1. Huntington", "Confidence: 93% (High Confidence)", "Risk factors: Genetic predisposition, Age group match, Multiple symptom match"},
		},
		{
			name:  "not computed",
			state: domain.NewWorkflowState(),
			want:  []string{"No results available"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteText(&buf, Build(tt.state, generatedAt)))
			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
			assert.Contains(t, buf.String(), Disclaimer)
		})
	}
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("pipe closed") }

func TestWriters_PropagateErrors(t *testing.T) {
	r := Build(huntingtonState(), generatedAt)

	assert.Error(t, WriteJSON(brokenWriter{}, r))
	assert.EqualError(t, WriteText(brokenWriter{}, r), "pipe closed")
}
