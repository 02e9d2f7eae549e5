package matching

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"

	"github.com/rare-disease-dx/internal/domain"
)

// Engine binds Score to a condition source, memoises repeated profiles in an
// LRU cache and logs each run. The scoring itself stays in the pure Score function.
type Engine struct {
	source ConditionSource
	cache  *lru.Cache[string, []domain.MatchResult]
	logger *logrus.Logger

	statsMu sync.Mutex
	stats   EngineStats
}

// EngineStats counts scoring runs served by the engine.
type EngineStats struct {
	Runs        int64 `json:"runs"`
	CacheHits   int64 `json:"cache_hits"`
	CacheMisses int64 `json:"cache_misses"`
}

// NewEngine creates an engine over source. cacheSize <= 0 disables memoisation.
func NewEngine(source ConditionSource, cacheSize int, logger *logrus.Logger) (*Engine, error) {
	if logger == nil {
		logger = logrus.New()
	}
	e := &Engine{
		source: source,
		logger: logger,
	}
	if cacheSize > 0 {
		cache, err := lru.New[string, []domain.MatchResult](cacheSize)
		if err != nil {
			return nil, err
		}
		e.cache = cache
	}
	return e, nil
}

// Score ranks the catalog against profile. Results are fresh copies; callers
// may keep them without affecting later runs.
func (e *Engine) Score(profile domain.PatientProfile) []domain.MatchResult {
	start := time.Now()

	var key string
	if e.cache != nil {
		key = fingerprint(profile)
		if cached, ok := e.cache.Get(key); ok {
			e.record(true)
			e.logger.WithFields(logrus.Fields{
				"results":     len(cached),
				"cache_hit":   true,
				"symptoms":    len(profile.SelectedSymptomIDs),
				"duration_ms": time.Since(start).Milliseconds(),
			}).Debug("Scoring served from cache")
			return cloneResults(cached)
		}
	}

	results := Score(profile, e.source)
	if e.cache != nil {
		e.cache.Add(key, cloneResults(results))
	}
	e.record(false)

	e.logger.WithFields(logrus.Fields{
		"results":     len(results),
		"cache_hit":   false,
		"symptoms":    len(profile.SelectedSymptomIDs),
		"top_match":   topMatch(results),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Completed condition scoring")

	return results
}

// Stats returns a copy of the engine counters.
func (e *Engine) Stats() EngineStats {
	e.statsMu.Lock()
	defer e.statsMu.Unlock()
	return e.stats
}

func (e *Engine) record(hit bool) {
	e.statsMu.Lock()
	defer e.statsMu.Unlock()
	e.stats.Runs++
	if e.cache == nil {
		return
	}
	if hit {
		e.stats.CacheHits++
	} else {
		e.stats.CacheMisses++
	}
}

// fingerprint keys the cache on every profile field Score reads. Each value is
// length-prefixed so distinct profiles never share a key.
func fingerprint(p domain.PatientProfile) string {
	h := sha256.New()
	writeLen(h, len(p.SelectedSymptomIDs))
	for _, id := range p.SelectedSymptomIDs {
		writeField(h, id)
	}
	writeField(h, p.GeneticMarkerText)
	writeField(h, p.AgeRange)
	return hex.EncodeToString(h.Sum(nil))
}

func writeField(h hash.Hash, s string) {
	writeLen(h, len(s))
	h.Write([]byte(s))
}

func writeLen(h hash.Hash, n int) {
	var buf [binary.MaxVarintLen64]byte
	h.Write(buf[:binary.PutUvarint(buf[:], uint64(n))])
}

func cloneResults(in []domain.MatchResult) []domain.MatchResult {
	out := make([]domain.MatchResult, len(in))
	for i, r := range in {
		out[i] = r.Clone()
	}
	return out
}

func topMatch(results []domain.MatchResult) string {
	if len(results) == 0 {
		return ""
	}
	return results[0].Condition.ID
}
