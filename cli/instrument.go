package cli

import (
	"errors"

	"github.com/AntonStoeckl/library-lending-go/console"
	"github.com/AntonStoeckl/library-lending-go/features/command/lendbook"
	"github.com/AntonStoeckl/library-lending-go/features/command/registerbook"
	"github.com/AntonStoeckl/library-lending-go/features/command/registerpatron"
	"github.com/AntonStoeckl/library-lending-go/features/command/returnbook"
	"github.com/AntonStoeckl/library-lending-go/features/query/activeloans"
	"github.com/AntonStoeckl/library-lending-go/features/query/availablebooks"
	"github.com/AntonStoeckl/library-lending-go/features/query/booksonloan"
	"github.com/AntonStoeckl/library-lending-go/features/query/registeredpatrons"
	"github.com/AntonStoeckl/library-lending-go/features/query/searchbooks"
	"github.com/AntonStoeckl/library-lending-go/shell"
	"github.com/AntonStoeckl/library-lending-go/shell/observable"
)

// observability holds the collectors every wrapper receives. Nil members are skipped.
type observability struct {
	logger           shell.Logger
	contextualLogger shell.ContextualLogger
	metrics          shell.MetricsCollector
	tracing          shell.TracingCollector
}

// instrument wraps every handler with its observable wrapper.
func instrument(h console.Handlers, obs observability) (console.Handlers, error) {
	var errs [9]error

	h.RegisterBook, errs[0] = wrapCommand[registerbook.Command](h.RegisterBook, obs)
	h.RegisterPatron, errs[1] = wrapCommand[registerpatron.Command](h.RegisterPatron, obs)
	h.LendBook, errs[2] = wrapCommand[lendbook.Command](h.LendBook, obs)
	h.ReturnBook, errs[3] = wrapCommand[returnbook.Command](h.ReturnBook, obs)
	h.SearchBooks, errs[4] = wrapQuery[searchbooks.Query, searchbooks.SearchResult](h.SearchBooks, obs)
	h.AvailableBooks, errs[5] = wrapQuery[availablebooks.Query, availablebooks.AvailableBooks](h.AvailableBooks, obs)
	h.BooksOnLoan, errs[6] = wrapQuery[booksonloan.Query, booksonloan.BooksOnLoan](h.BooksOnLoan, obs)
	h.RegisteredPatrons, errs[7] = wrapQuery[registeredpatrons.Query, registeredpatrons.RegisteredPatrons](h.RegisteredPatrons, obs)
	h.ActiveLoans, errs[8] = wrapQuery[activeloans.Query, activeloans.ActiveLoans](h.ActiveLoans, obs)

	return h, errors.Join(errs[:]...)
}

func wrapCommand[C shell.Command](handler shell.CommandHandler[C], obs observability) (shell.CommandHandler[C], error) {
	var opts []observable.CommandOption[C]

	if obs.logger != nil {
		opts = append(opts, observable.WithCommandLogging[C](obs.logger))
	}

	if obs.contextualLogger != nil {
		opts = append(opts, observable.WithCommandContextualLogging[C](obs.contextualLogger))
	}

	if obs.metrics != nil {
		opts = append(opts, observable.WithCommandMetrics[C](obs.metrics))
	}

	if obs.tracing != nil {
		opts = append(opts, observable.WithCommandTracing[C](obs.tracing))
	}

	wrapper, err := observable.NewCommandWrapper[C](handler, opts...)
	if err != nil {
		return nil, err
	}

	return wrapper, nil
}

func wrapQuery[Q shell.Query, R shell.QueryResult](handler shell.QueryHandler[Q, R], obs observability) (shell.QueryHandler[Q, R], error) {
	var opts []observable.QueryOption[Q, R]

	if obs.logger != nil {
		opts = append(opts, observable.WithQueryLogging[Q, R](obs.logger))
	}

	if obs.contextualLogger != nil {
		opts = append(opts, observable.WithQueryContextualLogging[Q, R](obs.contextualLogger))
	}

	if obs.metrics != nil {
		opts = append(opts, observable.WithQueryMetrics[Q, R](obs.metrics))
	}

	if obs.tracing != nil {
		opts = append(opts, observable.WithQueryTracing[Q, R](obs.tracing))
	}

	wrapper, err := observable.NewQueryWrapper[Q, R](handler, opts...)
	if err != nil {
		return nil, err
	}

	return wrapper, nil
}
