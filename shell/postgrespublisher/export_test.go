package postgrespublisher

import (
	"context"

	"github.com/AntonStoeckl/library-lending-go/shell/postgrespublisher/internal/adapters"
)

// ExecFunc stands in for a database in tests.
type ExecFunc func(ctx context.Context, query string) error

type fakeAdapter struct {
	exec ExecFunc
}

type fakeResult struct{}

func (fakeResult) RowsAffected() (int64, error) { return 1, nil }

func (f fakeAdapter) Exec(ctx context.Context, query string) (adapters.DBResult, error) {
	if err := f.exec(ctx, query); err != nil {
		return nil, err
	}

	return fakeResult{}, nil
}

func (fakeAdapter) Ping(context.Context) error { return nil }

func (fakeAdapter) Close() error { return nil }

// NewPublisherWithExec creates a Publisher whose statements go to exec.
func NewPublisherWithExec(exec ExecFunc, options ...Option) (*Publisher, error) {
	return newPublisher(fakeAdapter{exec: exec}, options...)
}
