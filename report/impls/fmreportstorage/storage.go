package fmreportstorage

import (
	"context"
	"path/filepath"
	"sort"
	"sync"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/mwf"
	"github.com/sgostarter/libfanperf/report"
	"github.com/sgostarter/libfanperf/standards"
)

func NewFMReportStorage(root string, storage stg.FileStorage) report.Storage {
	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	return &fmReportStorageImpl{
		a1Storage: mwf.NewMemWithFile[map[string]*standards.A1Report, mwf.Serial, mwf.Lock](
			make(map[string]*standards.A1Report), &mwf.JSONSerial{}, &sync.RWMutex{}, filepath.Join(root, "a1Reports.json"), storage),
		a2Storage: mwf.NewMemWithFile[map[string]*standards.A2Report, mwf.Serial, mwf.Lock](
			make(map[string]*standards.A2Report), &mwf.JSONSerial{}, &sync.RWMutex{}, filepath.Join(root, "a2Reports.json"), storage),
	}
}

type fmReportStorageImpl struct {
	// held across the cross kind id check and the insert
	addLock sync.Mutex

	a1Storage *mwf.MemWithFile[map[string]*standards.A1Report, mwf.Serial, mwf.Lock]
	a2Storage *mwf.MemWithFile[map[string]*standards.A2Report, mwf.Serial, mwf.Lock]
}

func (impl *fmReportStorageImpl) hasA1Report(id string) (exists bool) {
	impl.a1Storage.Read(func(m map[string]*standards.A1Report) {
		_, exists = m[id]
	})

	return
}

func (impl *fmReportStorageImpl) hasA2Report(id string) (exists bool) {
	impl.a2Storage.Read(func(m map[string]*standards.A2Report) {
		_, exists = m[id]
	})

	return
}

func (impl *fmReportStorageImpl) AddA1Report(_ context.Context, r *standards.A1Report) (id string, err error) {
	if err = report.ValidateA1Report(r); err != nil {
		return
	}

	id = r.ID
	if id == "" {
		id = report.NewReportID()
	}

	impl.addLock.Lock()
	defer impl.addLock.Unlock()

	if impl.hasA2Report(id) {
		err = commerr.ErrAlreadyExists

		return
	}

	err = impl.a1Storage.Change(func(oldM map[string]*standards.A1Report) (newM map[string]*standards.A1Report, err error) {
		newM = oldM
		if len(newM) == 0 {
			newM = make(map[string]*standards.A1Report)
		}

		if _, ok := newM[id]; ok {
			err = commerr.ErrAlreadyExists

			return
		}

		stored := report.CloneA1Report(r)
		stored.ID = id
		newM[id] = stored

		return
	})

	return
}

func (impl *fmReportStorageImpl) GetA1Report(_ context.Context, id string) (r *standards.A1Report, err error) {
	impl.a1Storage.Read(func(m map[string]*standards.A1Report) {
		if stored, ok := m[id]; ok {
			r = report.CloneA1Report(stored)
		} else {
			err = commerr.ErrNotFound
		}
	})

	return
}

func (impl *fmReportStorageImpl) AddA2Report(_ context.Context, r *standards.A2Report) (id string, err error) {
	if err = report.ValidateA2Report(r); err != nil {
		return
	}

	id = r.ID
	if id == "" {
		id = report.NewReportID()
	}

	impl.addLock.Lock()
	defer impl.addLock.Unlock()

	if impl.hasA1Report(id) {
		err = commerr.ErrAlreadyExists

		return
	}

	err = impl.a2Storage.Change(func(oldM map[string]*standards.A2Report) (newM map[string]*standards.A2Report, err error) {
		newM = oldM
		if len(newM) == 0 {
			newM = make(map[string]*standards.A2Report)
		}

		if _, ok := newM[id]; ok {
			err = commerr.ErrAlreadyExists

			return
		}

		stored := report.CloneA2Report(r)
		stored.ID = id
		newM[id] = stored

		return
	})

	return
}

func (impl *fmReportStorageImpl) GetA2Report(_ context.Context, id string) (r *standards.A2Report, err error) {
	impl.a2Storage.Read(func(m map[string]*standards.A2Report) {
		if stored, ok := m[id]; ok {
			r = report.CloneA2Report(stored)
		} else {
			err = commerr.ErrNotFound
		}
	})

	return
}

func (impl *fmReportStorageImpl) ListReportIDs(_ context.Context) (ids []string, err error) {
	impl.a1Storage.Read(func(m map[string]*standards.A1Report) {
		for id := range m {
			ids = append(ids, id)
		}
	})

	impl.a2Storage.Read(func(m map[string]*standards.A2Report) {
		for id := range m {
			ids = append(ids, id)
		}
	})

	sort.Strings(ids)

	return
}
