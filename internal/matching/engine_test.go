package matching

import (
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rare-disease-dx/internal/catalog"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestEngine_MatchesPureScore(t *testing.T) {
	store := catalog.MustDefault()
	engine, err := NewEngine(store, 16, quietLogger())
	require.NoError(t, err)
	p := profileWith("neuro_003", "neuro_004", "neuro_005", "neuro_007", "neuro_010")
	p.AgeRange = "30-50"

	assert.Equal(t, Score(p, store), engine.Score(p))
}

func TestEngine_CachesRepeatedProfiles(t *testing.T) {
	store := catalog.MustDefault()
	engine, err := NewEngine(store, 16, quietLogger())
	require.NoError(t, err)
	p := profileWith("resp_001", "resp_003")

	// Act
	first := engine.Score(p)
	first[0].Confidence = -1
	first[0].MatchingSymptomIDs[0] = "mutated"
	second := engine.Score(p)

	// Assert
	assert.Equal(t, Score(p, store), second, "cached results must not share memory with callers")
	stats := engine.Stats()
	assert.Equal(t, int64(2), stats.Runs)
	assert.Equal(t, int64(1), stats.CacheHits)
	assert.Equal(t, int64(1), stats.CacheMisses)
}

func TestEngine_CacheKeyCoversScoredFields(t *testing.T) {
	store := catalog.MustDefault()
	engine, err := NewEngine(store, 16, quietLogger())
	require.NoError(t, err)

	base := profileWith("neuro_003")
	withText := profileWith("neuro_003")
	withText.GeneticMarkerText = "HTT"
	withAge := profileWith("neuro_003")
	withAge.AgeRange = "30-50"

	engine.Score(base)
	engine.Score(withText)
	engine.Score(withAge)

	assert.Equal(t, int64(0), engine.Stats().CacheHits)
}

func TestEngine_SeparatorBytesDoNotCollide(t *testing.T) {
	store := catalog.MustDefault()
	engine, err := NewEngine(store, 16, quietLogger())
	require.NoError(t, err)
	ids := []string{"neuro_003", "neuro_004", "neuro_005", "neuro_007", "neuro_010"}
	huntington := profileWith(ids...)
	joined := profileWith(strings.Join(ids, "\x1f"))
	shifted := profileWith("neuro_003")
	shifted.GeneticMarkerText = "\x00"
	textOnly := profileWith("neuro_003\x00")

	// Act
	engine.Score(huntington)
	got := engine.Score(joined)
	engine.Score(shifted)
	gotText := engine.Score(textOnly)

	// Assert
	assert.Empty(t, got, "an unknown id never matches")
	assert.Equal(t, Score(joined, store), got)
	assert.Equal(t, Score(textOnly, store), gotText)
	assert.Equal(t, int64(0), engine.Stats().CacheHits)
}

func TestEngine_CacheDisabled(t *testing.T) {
	store := catalog.MustDefault()
	engine, err := NewEngine(store, 0, nil)
	require.NoError(t, err)
	engine.logger.SetOutput(io.Discard)
	p := profileWith("resp_001")

	engine.Score(p)
	engine.Score(p)

	stats := engine.Stats()
	assert.Equal(t, int64(2), stats.Runs)
	assert.Zero(t, stats.CacheHits)
	assert.Zero(t, stats.CacheMisses)
}
