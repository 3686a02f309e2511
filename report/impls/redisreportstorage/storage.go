package redisreportstorage

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libfanperf/report"
	"github.com/sgostarter/libfanperf/standards"
)

func NewRedisReportStorage(preKey string, redisCli *redis.Client, logger l.Wrapper) report.Storage {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "redisReportStorage"))

	if redisCli == nil {
		logger.Fatal("no redis client")
	}

	return &redisReportStorageImpl{
		logger:   logger,
		preKey:   preKey,
		redisCli: redisCli,
	}
}

type redisReportStorageImpl struct {
	logger   l.Wrapper
	preKey   string
	redisCli *redis.Client
}

func (impl *redisReportStorageImpl) a1Key(id string) string {
	return impl.preKey + ":a1:" + id
}

func (impl *redisReportStorageImpl) a2Key(id string) string {
	return impl.preKey + ":a2:" + id
}

func (impl *redisReportStorageImpl) idsKey() string {
	return impl.preKey + ":reports"
}

func (impl *redisReportStorageImpl) add(ctx context.Context, id, key, otherKindKey string, r interface{}) (err error) {
	d, err := json.Marshal(r)
	if err != nil {
		return
	}

	err = addReportScript.Run(ctx, impl.redisCli, []string{key, otherKindKey, impl.idsKey()}, id, string(d)).Err()
	if err != nil && strings.Contains(err.Error(), errReportExists) {
		err = commerr.ErrAlreadyExists
	}

	if err != nil {
		impl.logger.WithFields(l.StringField("id", id), l.ErrorField(err)).Error("add report failed")
	}

	return
}

func (impl *redisReportStorageImpl) get(ctx context.Context, key string, r interface{}) (err error) {
	d, err := impl.redisCli.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = commerr.ErrNotFound
		}

		return
	}

	err = json.Unmarshal(d, r)

	return
}

func (impl *redisReportStorageImpl) AddA1Report(ctx context.Context, r *standards.A1Report) (id string, err error) {
	if err = report.ValidateA1Report(r); err != nil {
		return
	}

	id = r.ID
	if id == "" {
		id = report.NewReportID()
	}

	stored := report.CloneA1Report(r)
	stored.ID = id

	err = impl.add(ctx, id, impl.a1Key(id), impl.a2Key(id), stored)

	return
}

func (impl *redisReportStorageImpl) GetA1Report(ctx context.Context, id string) (r *standards.A1Report, err error) {
	r = &standards.A1Report{}

	err = impl.get(ctx, impl.a1Key(id), r)
	if err != nil {
		r = nil
	}

	return
}

func (impl *redisReportStorageImpl) AddA2Report(ctx context.Context, r *standards.A2Report) (id string, err error) {
	if err = report.ValidateA2Report(r); err != nil {
		return
	}

	id = r.ID
	if id == "" {
		id = report.NewReportID()
	}

	stored := report.CloneA2Report(r)
	stored.ID = id

	err = impl.add(ctx, id, impl.a2Key(id), impl.a1Key(id), stored)

	return
}

func (impl *redisReportStorageImpl) GetA2Report(ctx context.Context, id string) (r *standards.A2Report, err error) {
	r = &standards.A2Report{}

	err = impl.get(ctx, impl.a2Key(id), r)
	if err != nil {
		r = nil
	}

	return
}

func (impl *redisReportStorageImpl) ListReportIDs(ctx context.Context) (ids []string, err error) {
	ids, err = impl.redisCli.SMembers(ctx, impl.idsKey()).Result()
	if err != nil {
		return
	}

	sort.Strings(ids)

	return
}
