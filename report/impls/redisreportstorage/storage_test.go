// nolint
package redisreportstorage

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libfanperf/standards"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utRedisClient(t *testing.T) *redis.Client {
	opts, err := redis.ParseURL("redis://:@127.0.0.1:6379/15") // redis://<user>:<password>@<host>:<port>/<db_number>
	require.Nil(t, err)

	redisCli := redis.NewClient(opts)

	if err = redisCli.Ping(context.Background()).Err(); err != nil {
		_ = redisCli.Close()

		t.Skipf("no redis server: %v", err)
	}

	redisCli.FlushDB(context.Background())

	return redisCli
}

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

func TestRedisReportStorage(t *testing.T) {
	redisCli := utRedisClient(t)
	defer redisCli.Close()

	ctx := context.Background()
	storage := NewRedisReportStorage("ut", redisCli, l.NewConsoleLoggerWrapper())

	id, err := storage.AddA1Report(ctx, utA1Report("a1"))
	assert.Nil(t, err)
	assert.Equal(t, "a1", id)

	_, err = storage.AddA1Report(ctx, utA1Report("a1"))
	assert.True(t, errors.Is(err, commerr.ErrAlreadyExists))

	r, err := storage.GetA1Report(ctx, "a1")
	require.Nil(t, err)
	assert.Equal(t, utA1Report("a1"), r)

	_, err = storage.GetA1Report(ctx, "missing")
	assert.True(t, errors.Is(err, commerr.ErrNotFound))

	a1 := utA1Report("")
	a2 := &standards.A2Report{
		A1Report:   a1,
		FanSize:    a1.FanSize,
		FanSeries:  a1.FanSeries,
		Parameters: standards.A2Parameters{RPM: 1750},
		Determinations: []standards.A2Determination{
			{CFM: 12386, StaticPressure: 2.537},
			{CFM: 10815, StaticPressure: 3.738},
		},
	}

	a2ID, err := storage.AddA2Report(ctx, a2)
	require.Nil(t, err)
	assert.NotEmpty(t, a2ID)
	assert.Empty(t, a2.ID)

	stored, err := storage.GetA2Report(ctx, a2ID)
	require.Nil(t, err)
	assert.Equal(t, a2ID, stored.ID)
	assert.Equal(t, a2.Determinations, stored.Determinations)
	assert.Equal(t, a1, stored.A1Report)

	a2.ID = "a1"
	_, err = storage.AddA2Report(ctx, a2)
	assert.True(t, errors.Is(err, commerr.ErrAlreadyExists))

	ids, err := storage.ListReportIDs(ctx)
	assert.Nil(t, err)
	assert.ElementsMatch(t, []string{"a1", a2ID}, ids)
}
