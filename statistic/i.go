package statistic

import "time"

type Outcome int

const (
	OutcomeAnswered Outcome = iota
	OutcomeOutOfEnvelope
	OutcomeFailed
)

// Counts totals the selection calls made against one report over a period.
type Counts struct {
	Queries       int64 `json:"queries,omitempty"`
	Answered      int64 `json:"answered,omitempty"`
	OutOfEnvelope int64 `json:"out_of_envelope,omitempty"`
	Failed        int64 `json:"failed,omitempty"`
}

type Recorder interface {
	Record(reportID string, at time.Time, outcome Outcome) error

	GetDayOn(reportID string, at time.Time) (counts Counts, exists bool)
	GetMonthOn(reportID string, at time.Time) (counts Counts, exists bool)
	GetSeasonOn(reportID string, at time.Time) (counts Counts, exists bool)
	GetYearOn(reportID string, at time.Time) (counts Counts, exists bool)
}
