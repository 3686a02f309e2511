package statistic

import (
	"fmt"
	"time"

	"github.com/jinzhu/now"
)

func (c Counts) add(outcome Outcome) Counts {
	c.Queries++

	switch outcome {
	case OutcomeAnswered:
		c.Answered++
	case OutcomeOutOfEnvelope:
		c.OutOfEnvelope++
	default:
		c.Failed++
	}

	return c
}

func dayKey(at time.Time) string {
	return now.With(at).BeginningOfDay().Format("2006-01-02")
}

func monthKey(at time.Time) string {
	return now.With(at).BeginningOfMonth().Format("2006-01")
}

func seasonKey(at time.Time) string {
	return fmt.Sprintf("%d-Q%d", at.Year(), now.With(at).Quarter())
}

func yearKey(at time.Time) string {
	return now.With(at).BeginningOfYear().Format("2006")
}

func periodKeys(at time.Time) []string {
	return []string{dayKey(at), monthKey(at), seasonKey(at), yearKey(at)}
}
