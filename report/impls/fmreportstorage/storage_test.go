package fmreportstorage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libeasygo/pathutils"
	"github.com/sgostarter/libfanperf/standards"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utA1Report(id string) *standards.A1Report {
	return &standards.A1Report{
		ID:         id,
		FanSize:    standards.FanSize{ID: "size", FanSeriesID: "series", Diameter: 27},
		FanSeries:  standards.FanSeries{ID: "series", FanType: standards.FanTypeAxial},
		Parameters: standards.A1Parameters{RPM: 1750},
		Determinations: []standards.A1Determination{
			{CFM: 8884, StaticPressure: 2.593, BrakeHorsepower: 7.243},
			{CFM: 7749, StaticPressure: 3.789, BrakeHorsepower: 7.481},
		},
	}
}

func utA2Report(id string) *standards.A2Report {
	a1 := utA1Report("")

	return &standards.A2Report{
		ID:         id,
		A1Report:   a1,
		FanSize:    a1.FanSize,
		FanSeries:  a1.FanSeries,
		Parameters: standards.A2Parameters{RPM: 1750},
		Determinations: []standards.A2Determination{
			{CFM: 12386, StaticPressure: 2.537},
			{CFM: 10815, StaticPressure: 3.738},
		},
	}
}

func TestFMReportStorage(t *testing.T) {
	root := t.TempDir()

	_ = pathutils.MustDirExists(root)

	ctx := context.Background()
	storage := NewFMReportStorage(root, nil)

	id, err := storage.AddA1Report(ctx, utA1Report("a1"))
	assert.Nil(t, err)
	assert.Equal(t, "a1", id)

	_, err = storage.AddA1Report(ctx, utA1Report("a1"))
	assert.True(t, errors.Is(err, commerr.ErrAlreadyExists))

	generatedID, err := storage.AddA1Report(ctx, utA1Report(""))
	assert.Nil(t, err)
	assert.NotEmpty(t, generatedID)

	r, err := storage.GetA1Report(ctx, "a1")
	require.Nil(t, err)
	assert.Equal(t, utA1Report("a1"), r)

	r.Determinations[0].CFM = 1

	r, err = storage.GetA1Report(ctx, "a1")
	require.Nil(t, err)
	assert.Equal(t, 8884.0, r.Determinations[0].CFM)

	_, err = storage.GetA1Report(ctx, "missing")
	assert.True(t, errors.Is(err, commerr.ErrNotFound))

	a2ID, err := storage.AddA2Report(ctx, utA2Report("a2"))
	assert.Nil(t, err)
	assert.Equal(t, "a2", a2ID)

	_, err = storage.AddA2Report(ctx, utA2Report("a1"))
	assert.True(t, errors.Is(err, commerr.ErrAlreadyExists))

	a2, err := storage.GetA2Report(ctx, "a2")
	require.Nil(t, err)
	assert.Equal(t, utA2Report("a2"), a2)

	_, err = storage.GetA2Report(ctx, "a1")
	assert.True(t, errors.Is(err, commerr.ErrNotFound))

	ids, err := storage.ListReportIDs(ctx)
	assert.Nil(t, err)
	assert.ElementsMatch(t, []string{"a1", "a2", generatedID}, ids)

	reopened := NewFMReportStorage(root, nil)

	r, err = reopened.GetA1Report(ctx, "a1")
	require.Nil(t, err)
	assert.Equal(t, utA1Report("a1"), r)

	a2, err = reopened.GetA2Report(ctx, "a2")
	require.Nil(t, err)
	assert.Equal(t, utA2Report("a2"), a2)
}

func TestFMReportStorageRejectsInvalid(t *testing.T) {
	storage := NewFMReportStorage(t.TempDir(), nil)

	bad := utA1Report("bad")
	bad.Determinations = nil

	_, err := storage.AddA1Report(context.Background(), bad)
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))

	badA2 := utA2Report("bad")
	badA2.A1Report = nil

	_, err = storage.AddA2Report(context.Background(), badA2)
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))
}

func TestFMReportStorageConcurrentKinds(t *testing.T) {
	storage := NewFMReportStorage(t.TempDir(), nil)
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		id := fmt.Sprintf("r%d", i)

		var (
			wg        sync.WaitGroup
			succeeded int32
		)

		wg.Add(2)

		go func() {
			defer wg.Done()

			if _, err := storage.AddA1Report(ctx, utA1Report(id)); err == nil {
				atomic.AddInt32(&succeeded, 1)
			} else {
				assert.True(t, errors.Is(err, commerr.ErrAlreadyExists))
			}
		}()

		go func() {
			defer wg.Done()

			if _, err := storage.AddA2Report(ctx, utA2Report(id)); err == nil {
				atomic.AddInt32(&succeeded, 1)
			} else {
				assert.True(t, errors.Is(err, commerr.ErrAlreadyExists))
			}
		}()

		wg.Wait()

		assert.EqualValues(t, 1, atomic.LoadInt32(&succeeded), id)
	}

	ids, err := storage.ListReportIDs(ctx)
	assert.Nil(t, err)
	assert.Len(t, ids, 20)
}
