package report

import (
	"context"

	"github.com/sgostarter/libfanperf/standards"
)

// Storage holds the test reports the engine computes from. Reports added without an ID get one.
type Storage interface {
	AddA1Report(ctx context.Context, r *standards.A1Report) (id string, err error)
	GetA1Report(ctx context.Context, id string) (r *standards.A1Report, err error)
	AddA2Report(ctx context.Context, r *standards.A2Report) (id string, err error)
	GetA2Report(ctx context.Context, id string) (r *standards.A2Report, err error)
	ListReportIDs(ctx context.Context) (ids []string, err error)
}
