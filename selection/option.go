package selection

import "github.com/sgostarter/libfanperf/statistic"

type Options struct {
	recorder statistic.Recorder
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{}
	for _, o := range option {
		o(opts)
	}

	return opts
}

// StatisticsOption counts the outcome of every fan selection query per report.
func StatisticsOption(recorder statistic.Recorder) Option {
	return func(o *Options) {
		o.recorder = recorder
	}
}
