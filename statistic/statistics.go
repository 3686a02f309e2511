package statistic

import (
	"sync"
	"time"

	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/mwf"
)

// NewMemDateStatistics keeps per report counts by day, month, season and year in fileName.
func NewMemDateStatistics(loc *time.Location, fileName string, storage stg.FileStorage) Recorder {
	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	if loc == nil {
		loc = time.Local
	}

	return &memDateStatisticsImpl{
		loc: loc,
		d: mwf.NewMemWithFile[map[string]map[string]Counts, mwf.Serial, mwf.Lock](
			make(map[string]map[string]Counts), &mwf.JSONSerial{}, &sync.RWMutex{}, fileName, storage),
	}
}

type memDateStatisticsImpl struct {
	loc *time.Location
	d   *mwf.MemWithFile[map[string]map[string]Counts, mwf.Serial, mwf.Lock]
}

func (impl *memDateStatisticsImpl) Record(reportID string, at time.Time, outcome Outcome) error {
	at = at.In(impl.loc)

	return impl.d.Change(func(oldM map[string]map[string]Counts) (newM map[string]map[string]Counts, err error) {
		newM = oldM
		if len(newM) == 0 {
			newM = make(map[string]map[string]Counts)
		}

		periods, ok := newM[reportID]
		if !ok {
			periods = make(map[string]Counts)
			newM[reportID] = periods
		}

		for _, key := range periodKeys(at) {
			periods[key] = periods[key].add(outcome)
		}

		return
	})
}

func (impl *memDateStatisticsImpl) get(reportID, key string) (counts Counts, exists bool) {
	impl.d.Read(func(m map[string]map[string]Counts) {
		counts, exists = m[reportID][key]
	})

	return
}

func (impl *memDateStatisticsImpl) GetDayOn(reportID string, at time.Time) (Counts, bool) {
	return impl.get(reportID, dayKey(at.In(impl.loc)))
}

func (impl *memDateStatisticsImpl) GetMonthOn(reportID string, at time.Time) (Counts, bool) {
	return impl.get(reportID, monthKey(at.In(impl.loc)))
}

func (impl *memDateStatisticsImpl) GetSeasonOn(reportID string, at time.Time) (Counts, bool) {
	return impl.get(reportID, seasonKey(at.In(impl.loc)))
}

func (impl *memDateStatisticsImpl) GetYearOn(reportID string, at time.Time) (Counts, bool) {
	return impl.get(reportID, yearKey(at.In(impl.loc)))
}
