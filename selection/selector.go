package selection

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libfanperf/curve"
	"github.com/sgostarter/libfanperf/report"
	"github.com/sgostarter/libfanperf/standards"
	"github.com/sgostarter/libfanperf/statistic"
	"github.com/sgostarter/libfanperf/units"
	"github.com/spf13/cast"
)

func NewSelector(storage report.Storage, cfg *Config, logger l.Wrapper, opts ...Option) Selector {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if storage == nil {
		logger.Error("no storage")

		return nil
	}

	if cfg == nil {
		cfg = &Config{}
	}

	if cfg.ReportCacheExpiration <= 0 {
		cfg.ReportCacheExpiration = defaultReportCacheExpiration
	}

	return &selectorImpl{
		logger:  logger.WithFields(l.StringField(l.ClsKey, "selectorImpl")),
		storage: storage,
		cfg:     cfg,
		reports: cache.New(cfg.ReportCacheExpiration, cfg.ReportCacheExpiration),
		opts:    optionNew(opts...),
	}
}

type selectorImpl struct {
	logger  l.Wrapper
	storage report.Storage
	cfg     *Config

	reports *cache.Cache
	opts    *Options
}

func (impl *selectorImpl) record(reportID string, err error) {
	if impl.opts.recorder == nil {
		return
	}

	outcome := statistic.OutcomeAnswered
	if errors.Is(err, curve.ErrOutOfBounds) {
		outcome = statistic.OutcomeOutOfEnvelope
	} else if err != nil {
		outcome = statistic.OutcomeFailed
	}

	if e := impl.opts.recorder.Record(reportID, time.Now(), outcome); e != nil {
		impl.logger.WithFields(l.StringField("id", reportID), l.ErrorField(e)).Error("record statistics failed")
	}
}

func validPositive(name string, v float64) error {
	if v > 0 && !math.IsInf(v, 0) {
		return nil
	}

	return fmt.Errorf("%w: %s %v", commerr.ErrInvalidArgument, name, v)
}

func validNonNegative(name string, v float64) error {
	if v >= 0 && !math.IsInf(v, 0) {
		return nil
	}

	return fmt.Errorf("%w: %s %v", commerr.ErrInvalidArgument, name, v)
}

func (impl *selectorImpl) a1Report(ctx context.Context, id string) (r *standards.A1Report, err error) {
	key := "a1:" + id

	if v, ok := impl.reports.Get(key); ok {
		r = v.(*standards.A1Report)

		return
	}

	r, err = impl.storage.GetA1Report(ctx, id)
	if err != nil {
		impl.logger.WithFields(l.StringField("id", id), l.ErrorField(err)).Error("get a1 report failed")

		return
	}

	impl.reports.Set(key, r, cache.DefaultExpiration)

	return
}

func (impl *selectorImpl) a2Report(ctx context.Context, id string) (r *standards.A2Report, err error) {
	key := "a2:" + id

	if v, ok := impl.reports.Get(key); ok {
		r = v.(*standards.A2Report)

		return
	}

	r, err = impl.storage.GetA2Report(ctx, id)
	if err != nil {
		impl.logger.WithFields(l.StringField("id", id), l.ErrorField(err)).Error("get a2 report failed")

		return
	}

	impl.reports.Set(key, r, cache.DefaultExpiration)

	return
}

func (impl *selectorImpl) OperatingPointFor(ctx context.Context, a1ReportID string, q Query) (
	res *OperatingPointResult, err error) {
	res, err = impl.operatingPointFor(ctx, a1ReportID, q)

	impl.record(a1ReportID, err)

	return
}

func (impl *selectorImpl) operatingPointFor(ctx context.Context, a1ReportID string, q Query) (
	*OperatingPointResult, error) {
	if err := validPositive("fan diameter", q.FanDiameter); err != nil {
		return nil, err
	}

	if err := validPositive("inlet airflow", q.InletCFM); err != nil {
		return nil, err
	}

	if err := validNonNegative("static pressure", q.StaticPressure); err != nil {
		return nil, err
	}

	r, err := impl.a1Report(ctx, a1ReportID)
	if err != nil {
		return nil, err
	}

	ip, err := r.OperatingPointFor(units.NewFanDiameter(q.FanDiameter), units.NewInletAirflow(q.InletCFM),
		units.NewStaticPressure(q.StaticPressure))
	if err != nil {
		impl.logger.WithFields(l.StringField("id", a1ReportID), l.StringField("staticPressure", cast.ToString(q.StaticPressure)),
			l.ErrorField(err)).Debug("no operating point")

		return nil, err
	}

	return &OperatingPointResult{
		FanSpeedRPM:     ip.Speed.RPM(),
		BrakeHorsepower: ip.BrakeHorsepower.HP(),
	}, nil
}

func (impl *selectorImpl) InducedFlowCurve(ctx context.Context, a2ReportID string, fanDiameterInches float64) (
	[]standards.A1A2Row, error) {
	if err := validPositive("fan diameter", fanDiameterInches); err != nil {
		return nil, err
	}

	r, err := impl.a2Report(ctx, a2ReportID)
	if err != nil {
		return nil, err
	}

	var opts []standards.Option
	if impl.cfg.StrictInducedRange {
		opts = append(opts, standards.StrictRangeOption())
	}

	c, err := r.A1A2FanCurve(units.NewFanDiameter(fanDiameterInches), opts...)
	if err != nil {
		impl.logger.WithFields(l.StringField("id", a2ReportID), l.ErrorField(err)).Debug("no induced flow curve")

		return nil, err
	}

	if dropped := len(r.A1Report.Determinations) - c.Len(); dropped > 0 {
		impl.logger.WithFields(l.StringField("id", a2ReportID), l.IntField("dropped", dropped),
			l.StringField("diameter", cast.ToString(fanDiameterInches))).Debug(
			"a1 points outside the a2 pressure range dropped")
	}

	return standards.A1A2Rows(c), nil
}
