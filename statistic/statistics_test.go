package statistic

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriodKeys(t *testing.T) {
	at := time.Date(2023, 12, 21, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, []string{"2023-12-21", "2023-12", "2023-Q4", "2023"}, periodKeys(at))
}

func TestMemDateStatistics(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "statistics.json")
	stat := NewMemDateStatistics(time.UTC, fileName, nil)

	const reportID = "a1-27"

	at := time.Date(2023, 12, 21, 10, 0, 0, 0, time.UTC)

	assert.Nil(t, stat.Record(reportID, at, OutcomeAnswered))
	assert.Nil(t, stat.Record(reportID, at.Add(time.Hour), OutcomeOutOfEnvelope))
	assert.Nil(t, stat.Record(reportID, time.Date(2023, 11, 2, 0, 0, 0, 0, time.UTC), OutcomeFailed))

	counts, ok := stat.GetDayOn(reportID, at)
	assert.True(t, ok)
	assert.Equal(t, Counts{Queries: 2, Answered: 1, OutOfEnvelope: 1}, counts)

	counts, ok = stat.GetMonthOn(reportID, at)
	assert.True(t, ok)
	assert.EqualValues(t, 2, counts.Queries)

	counts, ok = stat.GetSeasonOn(reportID, at)
	assert.True(t, ok)
	assert.Equal(t, Counts{Queries: 3, Answered: 1, OutOfEnvelope: 1, Failed: 1}, counts)

	counts, ok = stat.GetYearOn(reportID, at)
	assert.True(t, ok)
	assert.EqualValues(t, 3, counts.Queries)

	_, ok = stat.GetDayOn(reportID, at.AddDate(0, 0, 1))
	assert.False(t, ok)

	_, ok = stat.GetYearOn("other", at)
	assert.False(t, ok)

	reopened := NewMemDateStatistics(time.UTC, fileName, nil)

	counts, ok = reopened.GetYearOn(reportID, at)
	assert.True(t, ok)
	assert.EqualValues(t, 3, counts.Queries)
}
