package history

import (
	"fmt"
	"testing"

	"tariffwatch/internal/model"

	"github.com/go-playground/assert/v2"
)

func batchAt(ts string) model.AnalysisBatch {
	return model.AnalysisBatch{Timestamp: ts, Results: []model.MatchRecord{}}
}

func TestEmptyStore(t *testing.T) {
	s := NewStore()

	_, ok := s.Latest()
	assert.Equal(t, false, ok)
	assert.Equal(t, 0, len(s.All()))
	assert.Equal(t, 0, len(s.Previous()))
	assert.Equal(t, 0, s.Len())
}

func TestAppendIsMonotonic(t *testing.T) {
	s := NewStore()

	for i := 1; i <= 5; i++ {
		b := batchAt(fmt.Sprintf("2025-04-09 10:0%d:00", i))
		s.Append(b)

		assert.Equal(t, i, len(s.All()))
		latest, ok := s.Latest()
		assert.Equal(t, true, ok)
		assert.Equal(t, b, latest)
	}

	all := s.All()
	assert.Equal(t, "2025-04-09 10:01:00", all[0].Timestamp)
	assert.Equal(t, "2025-04-09 10:05:00", all[4].Timestamp)
}

func TestPreviousIsMostRecentFirstWithoutLatest(t *testing.T) {
	s := NewStore()
	s.Append(batchAt("a"))
	assert.Equal(t, 0, len(s.Previous()))

	s.Append(batchAt("b"))
	s.Append(batchAt("c"))

	prev := s.Previous()
	assert.Equal(t, 2, len(prev))
	assert.Equal(t, "b", prev[0].Timestamp)
	assert.Equal(t, "a", prev[1].Timestamp)
}

func TestAllReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Append(batchAt("a"))

	all := s.All()
	all[0].Timestamp = "changed"

	latest, _ := s.Latest()
	assert.Equal(t, "a", latest.Timestamp)
}

func TestEmptyBatchIsStored(t *testing.T) {
	s := NewStore()
	s.Append(batchAt("empty"))

	latest, ok := s.Latest()
	assert.Equal(t, true, ok)
	assert.Equal(t, true, latest.Empty())
}
